// Package kind classifies decoded values by their runtime kind.
//
// Values are whatever encoding/json (with UseNumber), gopkg.in/yaml.v3 or
// plain Go code produce. Of maps them onto a small set of JSON-oriented
// kinds; Label renders a kind for diagnostics.
package kind

import (
	"encoding/json"
	"reflect"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Kind is the low-level kind of a value.
type Kind string

const (
	Null    Kind = "null"
	Boolean Kind = "boolean"
	Integer Kind = "integer"
	Double  Kind = "double"
	String  Kind = "string"
	Array   Kind = "array"
	Object  Kind = "object"
)

var numberType = reflect.TypeOf(json.Number(""))

// Of returns the kind of v. Pointers and interfaces are followed; a nil one
// is Null. json.Number is an Integer when it parses as int64 and a Double
// otherwise. Values outside the JSON model report their reflect kind name,
// including maps without string keys ("map") and byte slices ("slice").
func Of(v any) Kind {
	if v == nil {
		return Null
	}
	return of(reflect.ValueOf(v))
}

func of(rv reflect.Value) Kind {
	if rv.Type() == numberType {
		if _, err := json.Number(rv.String()).Int64(); err == nil {
			return Integer
		}
		return Double
	}

	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null
		}
		return of(rv.Elem())
	case reflect.Bool:
		return Boolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Integer
	case reflect.Float32, reflect.Float64:
		return Double
	case reflect.String:
		return String
	case reflect.Slice:
		// Byte slices are binary payloads, not JSON arrays.
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return Kind(rv.Kind().String())
		}
		return Array
	case reflect.Array:
		return Array
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return Kind(rv.Kind().String())
		}
		return Object
	case reflect.Struct:
		return Object
	default:
		return Kind(rv.Kind().String())
	}
}

// Label returns the kind of v capitalised per word, e.g. "Double" for a
// float64 and "Integer" for an int.
func Label(v any) string {
	// A Caser keeps state between calls, so each label gets its own.
	return cases.Title(language.Und).String(string(Of(v)))
}

// IsNumeric reports whether k is Integer or Double.
func (k Kind) IsNumeric() bool {
	return k == Integer || k == Double
}
