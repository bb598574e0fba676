package style

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/pelletier/go-toml/v2"
	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/diinject/pkg/container"
	"github.com/arthur-debert/diinject/pkg/errors"
)

// tomlDocument wraps entries since TOML has no top-level arrays
type tomlDocument struct {
	Services []container.EntryInfo `toml:"services"`
}

// RenderEntries writes a container snapshot to w in the given format
func RenderEntries(w io.Writer, entries []container.EntryInfo, format Format) error {
	var err error
	switch format {
	case FormatTable:
		err = renderTable(w, entries)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if entries == nil {
			entries = []container.EntryInfo{}
		}
		err = enc.Encode(entries)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		err = enc.Encode(entries)
		if err == nil {
			err = enc.Close()
		}
	case FormatTOML:
		err = toml.NewEncoder(w).Encode(tomlDocument{Services: entries})
	default:
		return errors.Newf(errors.ErrInvalidInput, "unknown format %q", format)
	}
	if err != nil {
		return errors.Wrapf(err, errors.ErrRender, "failed to render %s", format)
	}
	return nil
}

func renderTable(w io.Writer, entries []container.EntryInfo) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, Muted("No services registered"))
		return err
	}

	data := pterm.TableData{{"ID", "SCOPE", "STATE", "BUILDS"}}
	for _, e := range entries {
		data = append(data, []string{
			string(e.ID),
			ScopeLabel(e.Scope),
			entryState(e),
			strconv.FormatInt(e.Builds, 10),
		})
	}

	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out)
	return err
}

func entryState(e container.EntryInfo) string {
	switch {
	case e.Scope == container.Transient:
		return "-"
	case e.Built:
		return "built"
	default:
		return "unbuilt"
	}
}
