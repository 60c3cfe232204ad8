package host

import (
	"fmt"
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"

	"apprepl/pkg/repltypes"
)

const commandMarker = "[command]"

// Format renders an evaluation result for display. Composite values are shown
// as YAML; nil renders as an empty string.
func Format(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case error:
		return v.Error()
	case fmt.Stringer:
		return v.String()
	case repltypes.Namespace:
		return marshal(displayable(v))
	}
	if _, ok := asCommand(value); ok {
		return commandMarker
	}

	switch reflect.ValueOf(value).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct, reflect.Pointer:
		return marshal(value)
	case reflect.Func, reflect.Chan:
		return commandMarker
	default:
		return fmt.Sprintf("%v", value)
	}
}

// displayable replaces commands, which cannot be marshalled, with a marker.
func displayable(ns repltypes.Namespace) map[string]any {
	display := make(map[string]any, len(ns))
	for name, member := range ns {
		switch m := member.(type) {
		case repltypes.Namespace:
			display[name] = displayable(m)
		default:
			if _, ok := asCommand(member); ok {
				display[name] = commandMarker
				continue
			}
			display[name] = member
		}
	}
	return display
}

func marshal(value any) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = fmt.Sprintf("%v", value)
		}
	}()

	data, err := yaml.Marshal(value)
	if err != nil {
		return fmt.Sprintf("%v", value)
	}
	return strings.TrimRight(string(data), "\n")
}
