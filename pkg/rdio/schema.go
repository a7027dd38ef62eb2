package rdio

import (
	"fmt"
	"reflect"
	"strings"
)

// fieldKind is the semantic type of a wire field, derived from the Go type
// of the struct field it decodes into.
type fieldKind int

const (
	kindString fieldKind = iota
	kindInt
	kindFloat
	kindBool
	kindDate
	kindTimestamp
	kindMicroTimestamp
	kindStringList
	kindShape
	kindShapeList
	kindEntity
	kindEntityList
	kindOpaque
)

var kindNames = map[fieldKind]string{
	kindString:         "string",
	kindInt:            "integer",
	kindFloat:          "number",
	kindBool:           "boolean",
	kindDate:           "date (" + DateLayout + ")",
	kindTimestamp:      "timestamp (" + TimestampLayout + " or Unix seconds)",
	kindMicroTimestamp: "timestamp (" + MicroTimestampLayout + ")",
	kindStringList:     "array of strings",
	kindShape:          "object",
	kindShapeList:      "array of objects",
	kindEntity:         "tagged object",
	kindEntityList:     "array of tagged objects",
	kindOpaque:         "any JSON value",
}

func (k fieldKind) String() string {
	return kindNames[k]
}

var (
	entityType         = reflect.TypeFor[Entity]()
	entitiesType       = reflect.TypeFor[Entities]()
	opaqueType         = reflect.TypeFor[any]()
	dateType           = reflect.TypeFor[Date]()
	timestampType      = reflect.TypeFor[Timestamp]()
	microTimestampType = reflect.TypeFor[MicroTimestamp]()
)

// field is one entry of a shape's schema.
type field struct {
	wire  string       // JSON name
	index []int        // path for reflect.Value.FieldByIndex
	kind  fieldKind    // semantic type
	elem  reflect.Type // nested struct type for kindShape and kindShapeList
}

// shape is the decoded form of one struct type.
type shape struct {
	name   string
	tag    string // discriminator, empty for aggregate shapes
	typ    reflect.Type
	fields []field
}

// buildShape derives the schema of struct type t. Embedded structs without
// a json tag are flattened, as encoding/json does.
func buildShape(t reflect.Type, tag string) (*shape, error) {
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("rdio: shape %s is not a struct", t)
	}

	s := &shape{name: t.Name(), tag: tag, typ: t}
	seen := make(map[string]bool)
	if err := collectFields(t, nil, s, seen); err != nil {
		return nil, err
	}
	return s, nil
}

func collectFields(t reflect.Type, index []int, s *shape, seen map[string]bool) error {
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		idx := append(append([]int(nil), index...), i)

		jsonTag := sf.Tag.Get("json")
		if sf.Anonymous && sf.Type.Kind() == reflect.Struct && jsonTag == "" {
			if err := collectFields(sf.Type, idx, s, seen); err != nil {
				return err
			}
			continue
		}
		if !sf.IsExported() {
			continue
		}

		wire, _, _ := strings.Cut(jsonTag, ",")
		if wire == "-" {
			continue
		}
		if wire == "" {
			wire = sf.Name
		}
		if seen[wire] {
			return fmt.Errorf("rdio: shape %s declares wire field %q twice", s.name, wire)
		}
		seen[wire] = true

		kind, elem, err := kindOf(sf.Type)
		if err != nil {
			return fmt.Errorf("rdio: shape %s field %s: %w", s.name, sf.Name, err)
		}
		s.fields = append(s.fields, field{wire: wire, index: idx, kind: kind, elem: elem})
	}
	return nil
}

// kindOf maps a Go field type onto a semantic kind.
func kindOf(t reflect.Type) (fieldKind, reflect.Type, error) {
	switch t {
	case entityType:
		return kindEntity, nil, nil
	case entitiesType:
		return kindEntityList, nil, nil
	case opaqueType:
		return kindOpaque, nil, nil
	}

	switch t.Kind() {
	case reflect.Pointer:
		e := t.Elem()
		switch e {
		case dateType:
			return kindDate, nil, nil
		case timestampType:
			return kindTimestamp, nil, nil
		case microTimestampType:
			return kindMicroTimestamp, nil, nil
		}
		switch e.Kind() {
		case reflect.String:
			return kindString, nil, nil
		case reflect.Int:
			return kindInt, nil, nil
		case reflect.Float64:
			return kindFloat, nil, nil
		case reflect.Bool:
			return kindBool, nil, nil
		case reflect.Struct:
			return kindShape, e, nil
		}
	case reflect.Slice:
		e := t.Elem()
		if e.Kind() == reflect.String {
			return kindStringList, nil, nil
		}
		if e.Kind() == reflect.Pointer && e.Elem().Kind() == reflect.Struct {
			return kindShapeList, e.Elem(), nil
		}
	}

	return 0, nil, fmt.Errorf("unsupported field type %s", t)
}
