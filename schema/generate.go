package schema

import (
	"reflect"
	"strings"
	"time"
)

// FromType derives a schema from a Go type using reflection.
// The schema describes the structure that the type represents, not the values.
//
// Mapping:
//   - struct: "object", with "properties" and "required" keywords built from exported fields
//   - slice/array: "array", with an "items" keyword
//   - map: "object"
//   - string: "string"; time.Time: "string" with format date-time
//   - int*, uint*: "integer"; float*: "number"; bool: "boolean"
//   - pointer to T: the union [T, "null"]
//   - interface{}/any and anything else: no type
//
// Struct tags:
//   - `json:"name"`: uses the JSON tag name for the property
//   - `json:"-"`: skips the field
//   - `json:"name,omitempty"`: field is optional (not in required list)
//   - `description:"..."`: sets the property description
func FromType(t any) JSON {
	if t == nil {
		return JSON{}
	}
	return fromReflectType(reflect.TypeOf(t), make(map[reflect.Type]bool))
}

// fromReflectType tracks the structs on the current path so recursive types terminate.
func fromReflectType(t reflect.Type, seen map[reflect.Type]bool) JSON {
	if t.Kind() == reflect.Pointer {
		inner := fromReflectType(t.Elem(), seen)
		if inner.Type.Kind() != TypeSingle {
			return inner
		}
		inner.Type = Atoms(inner.Type.Atom(), AtomNull)
		return inner
	}

	if t == reflect.TypeOf(time.Time{}) {
		return String().WithKeyword("format", "date-time")
	}

	switch t.Kind() {
	case reflect.Struct:
		if seen[t] {
			return Object()
		}
		seen[t] = true
		defer delete(seen, t)
		return fromStruct(t, seen)
	case reflect.Slice, reflect.Array:
		// encoding/json writes []byte as a base64 string.
		if t.Kind() == reflect.Slice && t.Elem().Kind() == reflect.Uint8 {
			return String()
		}
		return Array().WithKeyword("items", fromReflectType(t.Elem(), seen))
	case reflect.Map:
		return Object()
	case reflect.String:
		return String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Int()
	case reflect.Float32, reflect.Float64:
		return Number()
	case reflect.Bool:
		return Bool()
	default:
		return Any()
	}
}

func fromStruct(t reflect.Type, seen map[reflect.Type]bool) JSON {
	properties := make(map[string]any)
	var required []any

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		jsonTag := field.Tag.Get("json")
		if jsonTag == "-" {
			continue
		}

		fieldName := field.Name
		isOmitempty := false
		if jsonTag != "" {
			parts := strings.Split(jsonTag, ",")
			if parts[0] != "" {
				fieldName = parts[0]
			}
			for _, part := range parts[1:] {
				if part == "omitempty" {
					isOmitempty = true
					break
				}
			}
		}

		fieldSchema := fromReflectType(field.Type, seen)
		if desc := field.Tag.Get("description"); desc != "" {
			fieldSchema.Description = desc
		}
		properties[fieldName] = fieldSchema

		if !isOmitempty {
			required = append(required, fieldName)
		}
	}

	s := Object().WithKeyword("properties", properties)
	if len(required) > 0 {
		s = s.WithKeyword("required", required)
	}
	return s
}
