package we

import (
	"reflect"
	"strings"

	"github.com/iancoleman/strcase"
)

type Named interface {
	TypeName() string
}

// NameOf returns the explicit TypeName of value when it has one, otherwise a
// "package:kebab-type" name derived from its Go type.
func NameOf(value any) string {
	if typed, ok := value.(Named); ok {
		return typed.TypeName()
	}

	split := strings.Split(reflect.TypeOf(value).String(), ".")
	segments := make([]string, len(split))
	for i, segment := range split {
		s := strings.TrimLeft(segment, "*")
		segments[i] = strcase.ToKebab(s)
	}

	namespace := segments[0]
	name := strings.Join(segments[1:], "-")

	return namespace + ":" + name
}
