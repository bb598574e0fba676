package style

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/diinject/pkg/container"
	"github.com/arthur-debert/diinject/pkg/errors"
)

func sampleEntries() []container.EntryInfo {
	return []container.EntryInfo{
		{ID: "logger", Scope: container.Singleton, Built: true, Builds: 1},
		{ID: "requestid", Scope: container.Transient, Builds: 3},
		{ID: "store", Scope: container.Singleton},
	}
}

func TestRenderEntries_Table(t *testing.T) {
	ApplyColor(false)

	var buf bytes.Buffer
	require.NoError(t, RenderEntries(&buf, sampleEntries(), FormatTable))

	out := buf.String()
	for _, want := range []string{"ID", "SCOPE", "logger", "requestid", "store", "built", "unbuilt", "transient"} {
		assert.Contains(t, out, want)
	}
}

func TestRenderEntries_EmptyTable(t *testing.T) {
	ApplyColor(false)

	var buf bytes.Buffer
	require.NoError(t, RenderEntries(&buf, nil, FormatTable))
	assert.Contains(t, buf.String(), "No services registered")
}

func TestRenderEntries_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderEntries(&buf, sampleEntries(), FormatJSON))

	var got []container.EntryInfo
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sampleEntries(), got)

	buf.Reset()
	require.NoError(t, RenderEntries(&buf, nil, FormatJSON))
	assert.JSONEq(t, `[]`, buf.String())
}

func TestRenderEntries_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderEntries(&buf, sampleEntries(), FormatYAML))

	assert.Contains(t, buf.String(), "scope: transient")

	var got []container.EntryInfo
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sampleEntries(), got)
}

func TestRenderEntries_TOML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderEntries(&buf, sampleEntries(), FormatTOML))

	assert.Contains(t, buf.String(), "[[services]]")

	var got tomlDocument
	require.NoError(t, toml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sampleEntries(), got.Services)
}

func TestRenderEntries_UnknownFormat(t *testing.T) {
	err := RenderEntries(&bytes.Buffer{}, nil, Format("xml"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestParseFormat(t *testing.T) {
	for _, f := range Formats {
		got, err := ParseFormat(string(f))
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
	got, err := ParseFormat(" YAML ")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, got)

	_, err = ParseFormat("xml")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		in      string
		want    ColorMode
		wantErr bool
	}{
		{"auto", ColorAuto, false},
		{"Always", ColorAlways, false},
		{"never", ColorNever, false},
		{"sometimes", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColorMode(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestColorEnabled(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })

	assert.True(t, ColorEnabled(ColorAlways, f))
	assert.False(t, ColorEnabled(ColorNever, f))
	assert.False(t, ColorEnabled(ColorAuto, f), "a regular file is not a terminal")
	assert.False(t, ColorEnabled(ColorAuto, nil))

	t.Setenv("NO_COLOR", "1")
	assert.False(t, ColorEnabled(ColorAuto, os.Stdout))
}

func TestScopeLabel(t *testing.T) {
	ApplyColor(false)
	assert.Equal(t, "singleton", ScopeLabel(container.Singleton))
	assert.Equal(t, "transient", ScopeLabel(container.Transient))
	assert.Equal(t, "other", ScopeLabel(container.Scope("other")))
}
