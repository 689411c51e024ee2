package kind

import (
	"fmt"
	"reflect"
	"strings"
)

// Classifier decides which values count as structural objects and arrays.
//
// It is chosen once per validator; implementations must be safe for
// concurrent use.
type Classifier interface {
	IsObject(v any) bool
	IsArray(v any) bool
}

// Classification names accepted by ByName.
const (
	ClassificationStrict = "strict"
	ClassificationLoose  = "loose"
)

var (
	// Strict treats string-keyed maps and structs as objects, and slices and
	// arrays (other than byte slices) as arrays.
	Strict Classifier = strict{}

	// Loose extends Strict for legacy decoders: maps with non-string keys,
	// such as map[any]any, are objects too.
	Loose Classifier = loose{}
)

// ByName returns the classifier registered under name. An empty name selects Strict.
func ByName(name string) (Classifier, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", ClassificationStrict:
		return Strict, nil
	case ClassificationLoose:
		return Loose, nil
	default:
		return nil, fmt.Errorf("unknown classification %q (want %q or %q)", name, ClassificationStrict, ClassificationLoose)
	}
}

type strict struct{}

func (strict) IsObject(v any) bool {
	rv, ok := deref(v)
	if !ok {
		return false
	}
	switch rv.Kind() {
	case reflect.Map:
		return rv.Type().Key().Kind() == reflect.String
	case reflect.Struct:
		return true
	default:
		return false
	}
}

func (strict) IsArray(v any) bool {
	rv, ok := deref(v)
	if !ok {
		return false
	}
	switch rv.Kind() {
	case reflect.Slice:
		return rv.Type().Elem().Kind() != reflect.Uint8
	case reflect.Array:
		return true
	default:
		return false
	}
}

type loose struct {
	strict
}

func (l loose) IsObject(v any) bool {
	rv, ok := deref(v)
	if !ok {
		return false
	}
	if rv.Kind() == reflect.Map {
		return true
	}
	return l.strict.IsObject(v)
}

// deref follows pointers and interfaces. It reports false for nil.
func deref(v any) (reflect.Value, bool) {
	if v == nil {
		return reflect.Value{}, false
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return reflect.Value{}, false
		}
		rv = rv.Elem()
	}
	return rv, true
}
