package container

import (
	"reflect"
	"strconv"
	"strings"
)

// ID identifies a capability within a container.
type ID string

// Key is an ID bound to the static type T its instances are expected to have.
type Key[T any] struct {
	id ID
}

// NewKey returns a key for the given name.
func NewKey[T any](name string) Key[T] {
	return Key[T]{id: ID(name)}
}

// TypeKey returns a key whose ID is derived from T's fully qualified type
// name, e.g. "github.com/acme/app/log.Logger" or "*net/http.Client".
func TypeKey[T any]() Key[T] {
	return Key[T]{id: ID(typeName(reflect.TypeFor[T]()))}
}

// ID returns the untyped identifier.
func (k Key[T]) ID() ID { return k.id }

// String returns the identifier as a string.
func (k Key[T]) String() string {
	if k.id == "" {
		return "<empty>"
	}
	return string(k.id)
}

func typeName(t reflect.Type) string {
	if t.Name() != "" && t.PkgPath() != "" {
		return t.PkgPath() + "." + t.Name()
	}
	switch t.Kind() {
	case reflect.Pointer:
		return "*" + typeName(t.Elem())
	case reflect.Slice:
		return "[]" + typeName(t.Elem())
	case reflect.Array:
		return "[" + strconv.Itoa(t.Len()) + "]" + typeName(t.Elem())
	case reflect.Map:
		return "map[" + typeName(t.Key()) + "]" + typeName(t.Elem())
	case reflect.Chan:
		switch t.ChanDir() {
		case reflect.RecvDir:
			return "<-chan " + typeName(t.Elem())
		case reflect.SendDir:
			return "chan<- " + typeName(t.Elem())
		default:
			return "chan " + typeName(t.Elem())
		}
	case reflect.Func:
		return funcTypeName(t)
	case reflect.Struct:
		return structTypeName(t)
	default:
		// builtins and unnamed interfaces
		return t.String()
	}
}

func funcTypeName(t reflect.Type) string {
	var b strings.Builder
	b.WriteString("func(")
	for i := 0; i < t.NumIn(); i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		if t.IsVariadic() && i == t.NumIn()-1 {
			b.WriteString("..." + typeName(t.In(i).Elem()))
			continue
		}
		b.WriteString(typeName(t.In(i)))
	}
	b.WriteString(")")

	switch t.NumOut() {
	case 0:
	case 1:
		b.WriteString(" " + typeName(t.Out(0)))
	default:
		b.WriteString(" (")
		for i := 0; i < t.NumOut(); i++ {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(typeName(t.Out(i)))
		}
		b.WriteString(")")
	}
	return b.String()
}

func structTypeName(t reflect.Type) string {
	if t.NumField() == 0 {
		return "struct {}"
	}
	var b strings.Builder
	b.WriteString("struct { ")
	for i := 0; i < t.NumField(); i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		f := t.Field(i)
		// unexported field names are scoped to their package
		if f.PkgPath != "" {
			b.WriteString(f.PkgPath + ".")
		}
		b.WriteString(f.Name + " " + typeName(f.Type))
		if f.Tag != "" {
			b.WriteString(" " + strconv.Quote(string(f.Tag)))
		}
	}
	b.WriteString(" }")
	return b.String()
}
