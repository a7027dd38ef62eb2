package rdio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"reflect"
	"strconv"
	"time"
)

// DefaultMaxDepth bounds how deeply objects may nest inside a result.
// Station graphs need about six levels; the rest is headroom.
const DefaultMaxDepth = 32

// rootPath names the top of a decoded value in error messages.
const rootPath = "result"

// maxJSONDepth is the nesting limit of encoding/json.
const maxJSONDepth = 10000

// Decoder turns raw result JSON into entities.
//
// The zero Decoder uses DefaultMaxDepth. A Decoder holds no state between
// calls and is safe for concurrent use.
type Decoder struct {
	MaxDepth int
}

var defaultDecoder = &Decoder{MaxDepth: DefaultMaxDepth}

// DecodeEntity decodes one tagged object, resolving its concrete shape from
// the "type" field.
func DecodeEntity(raw []byte) (Entity, error) {
	return defaultDecoder.Entity(raw)
}

// DecodeEntities decodes an array of tagged objects, resolving each element
// independently. A JSON object is treated as a keyed collection and its
// values are decoded in source order.
func DecodeEntities(raw []byte) ([]Entity, error) {
	return defaultDecoder.Entities(raw)
}

// DecodeAs decodes one object against the schema of T, without looking at
// a discriminator. It is used for untagged aggregates such as SearchResult.
func DecodeAs[T any](raw []byte) (*T, error) {
	return decodeAs[T](defaultDecoder, raw)
}

func decodeAs[T any](d *Decoder, raw []byte) (*T, error) {
	v, err := d.Shape(reflect.TypeFor[T](), raw)
	if err != nil {
		return nil, err
	}
	return v.Interface().(*T), nil
}

// Entity decodes one tagged object.
func (d *Decoder) Entity(raw []byte) (Entity, error) {
	st := d.state()
	if err := st.checkNesting(raw, 0, rootPath); err != nil {
		return nil, err
	}
	return st.entity(raw, rootPath, 1)
}

// Entities decodes a collection of tagged objects.
func (d *Decoder) Entities(raw []byte) ([]Entity, error) {
	st := d.state()
	if err := st.checkNesting(raw, 0, rootPath); err != nil {
		return nil, err
	}
	return st.entities(raw, rootPath, 1)
}

// Shape decodes one object against the registered struct type t and returns
// a pointer to the new value.
func (d *Decoder) Shape(t reflect.Type, raw []byte) (reflect.Value, error) {
	s, ok := shapes.byType[t]
	if !ok {
		return reflect.Value{}, fmt.Errorf("rdio: %s is not a registered shape", t)
	}
	st := d.state()
	if err := st.checkNesting(raw, 0, rootPath); err != nil {
		return reflect.Value{}, err
	}
	return st.shape(s, raw, rootPath, 1)
}

// Shapes decodes an array of objects against the registered struct type t.
// Elements are not discriminated.
func (d *Decoder) Shapes(t reflect.Type, raw []byte) ([]reflect.Value, error) {
	s, ok := shapes.byType[t]
	if !ok {
		return nil, fmt.Errorf("rdio: %s is not a registered shape", t)
	}
	st := d.state()
	if err := st.checkNesting(raw, 0, rootPath); err != nil {
		return nil, err
	}
	items, err := st.array(raw, s.name, rootPath)
	if err != nil {
		return nil, err
	}
	out := make([]reflect.Value, 0, len(items))
	for i, item := range items {
		v, err := st.shape(s, item, indexPath(rootPath, i), 2)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (d *Decoder) state() *decodeState {
	max := d.MaxDepth
	if max <= 0 {
		max = DefaultMaxDepth
	}
	return &decodeState{maxDepth: max}
}

type decodeState struct {
	maxDepth int
}

func (s *decodeState) checkDepth(depth int, path string) error {
	if depth > s.maxDepth {
		return &PayloadTooLargeError{Limit: "depth", Max: int64(s.maxDepth), Location: path}
	}
	return nil
}

// checkNesting rejects raw when its container nesting, plus the levels
// wrapping it, could never decode within maxDepth. One decoded level spans
// at most an object and an array. The bound stays below maxJSONDepth so
// unknown fields that are ignored during decoding are caught too.
func (s *decodeState) checkNesting(raw []byte, wrapping int, location string) error {
	limit := min(2*s.maxDepth+wrapping, maxJSONDepth-1)
	if nestingDepth(raw) > limit {
		return &PayloadTooLargeError{Limit: "depth", Max: int64(s.maxDepth), Location: location}
	}
	return nil
}

// checkBody applies the nesting check to a whole response body, which
// wraps the result in one envelope object.
func (d *Decoder) checkBody(body []byte) error {
	return d.state().checkNesting(body, 1, "response")
}

// entity resolves the discriminator of one object and decodes it.
func (s *decodeState) entity(raw json.RawMessage, path string, depth int) (Entity, error) {
	if err := s.checkDepth(depth, path); err != nil {
		return nil, err
	}
	obj, err := s.object(raw, "Entity", path)
	if err != nil {
		return nil, err
	}

	tagRaw, ok := obj[TagField]
	if !ok || isNull(tagRaw) {
		return nil, &UnknownTypeError{Path: path}
	}
	var tag string
	if err := json.Unmarshal(tagRaw, &tag); err != nil {
		return nil, mismatch("Entity", path+"."+TagField, kindString, tagRaw, err)
	}
	sh, ok := shapes.byTag[tag]
	if !ok {
		return nil, &UnknownTypeError{Tag: tag, Path: path}
	}

	v := reflect.New(sh.typ)
	if err := s.fill(v.Elem(), sh, obj, path, depth); err != nil {
		return nil, err
	}
	return v.Interface().(Entity), nil
}

// entities decodes an array, or a keyed object, of tagged objects.
func (s *decodeState) entities(raw json.RawMessage, path string, depth int) ([]Entity, error) {
	if err := s.checkDepth(depth, path); err != nil {
		return nil, err
	}

	var items []json.RawMessage
	var paths []string
	switch firstByte(raw) {
	case '[':
		arr, err := s.array(raw, "Entity", path)
		if err != nil {
			return nil, err
		}
		items = arr
		for i := range arr {
			paths = append(paths, indexPath(path, i))
		}
	case '{':
		keys, values, err := orderedObject(raw)
		if err != nil {
			return nil, mismatch("Entity", path, kindEntityList, raw, err)
		}
		items = values
		for _, k := range keys {
			paths = append(paths, path+"."+k)
		}
	default:
		return nil, mismatch("Entity", path, kindEntityList, raw, nil)
	}

	out := make([]Entity, 0, len(items))
	for i, item := range items {
		e, err := s.entity(item, paths[i], depth+1)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// shape decodes one object against a known shape.
func (s *decodeState) shape(sh *shape, raw json.RawMessage, path string, depth int) (reflect.Value, error) {
	if err := s.checkDepth(depth, path); err != nil {
		return reflect.Value{}, err
	}
	obj, err := s.object(raw, sh.name, path)
	if err != nil {
		return reflect.Value{}, err
	}
	v := reflect.New(sh.typ)
	if err := s.fill(v.Elem(), sh, obj, path, depth); err != nil {
		return reflect.Value{}, err
	}
	return v, nil
}

// fill decodes every schema field present in obj into dst. Absent and null
// fields are left unset; wire fields outside the schema are ignored.
func (s *decodeState) fill(dst reflect.Value, sh *shape, obj map[string]json.RawMessage, path string, depth int) error {
	for _, f := range sh.fields {
		raw, ok := obj[f.wire]
		if !ok || isNull(raw) {
			continue
		}
		fv := dst.FieldByIndex(f.index)
		if err := s.field(fv, sh, f, raw, path+"."+f.wire, depth); err != nil {
			return err
		}
	}
	return nil
}

func (s *decodeState) field(fv reflect.Value, sh *shape, f field, raw json.RawMessage, path string, depth int) error {
	switch f.kind {
	case kindString:
		str, err := decodeString(raw)
		if err != nil {
			return mismatch(sh.name, path, f.kind, raw, err)
		}
		fv.Set(reflect.ValueOf(&str))

	case kindInt:
		n, err := decodeInt(raw)
		if err != nil {
			return mismatch(sh.name, path, f.kind, raw, err)
		}
		fv.Set(reflect.ValueOf(&n))

	case kindFloat:
		x, err := decodeFloat(raw)
		if err != nil {
			return mismatch(sh.name, path, f.kind, raw, err)
		}
		fv.Set(reflect.ValueOf(&x))

	case kindBool:
		b, err := decodeBool(raw)
		if err != nil {
			return mismatch(sh.name, path, f.kind, raw, err)
		}
		fv.Set(reflect.ValueOf(&b))

	case kindDate:
		str, err := decodeString(raw)
		if err != nil {
			return mismatch(sh.name, path, f.kind, raw, err)
		}
		t, err := parseDate(str)
		if err != nil {
			return mismatch(sh.name, path, f.kind, raw, err)
		}
		fv.Set(reflect.ValueOf(&Date{Time: t}))

	case kindTimestamp:
		var t time.Time
		var err error
		if isNumber(raw) {
			t, err = parseUnixSeconds(string(raw))
		} else {
			var str string
			if str, err = decodeString(raw); err == nil {
				t, err = parseTimestamp(str)
			}
		}
		if err != nil {
			return mismatch(sh.name, path, f.kind, raw, err)
		}
		fv.Set(reflect.ValueOf(&Timestamp{Time: t}))

	case kindMicroTimestamp:
		str, err := decodeString(raw)
		if err != nil {
			return mismatch(sh.name, path, f.kind, raw, err)
		}
		t, err := parseMicroTimestamp(str)
		if err != nil {
			return mismatch(sh.name, path, f.kind, raw, err)
		}
		fv.Set(reflect.ValueOf(&MicroTimestamp{Time: t}))

	case kindStringList:
		items, err := s.array(raw, sh.name, path)
		if err != nil {
			return err
		}
		list := make([]string, 0, len(items))
		for i, item := range items {
			str, err := decodeString(item)
			if err != nil {
				return mismatch(sh.name, indexPath(path, i), kindString, item, err)
			}
			list = append(list, str)
		}
		fv.Set(reflect.ValueOf(list))

	case kindShape:
		v, err := s.shape(shapes.byType[f.elem], raw, path, depth+1)
		if err != nil {
			return err
		}
		fv.Set(v)

	case kindShapeList:
		items, err := s.array(raw, sh.name, path)
		if err != nil {
			return err
		}
		nested := shapes.byType[f.elem]
		list := reflect.MakeSlice(fv.Type(), 0, len(items))
		for i, item := range items {
			v, err := s.shape(nested, item, indexPath(path, i), depth+1)
			if err != nil {
				return err
			}
			list = reflect.Append(list, v)
		}
		fv.Set(list)

	case kindEntity:
		e, err := s.entity(raw, path, depth+1)
		if err != nil {
			return err
		}
		fv.Set(reflect.ValueOf(e))

	case kindEntityList:
		list, err := s.entities(raw, path, depth+1)
		if err != nil {
			return err
		}
		fv.Set(reflect.ValueOf(Entities(list)))

	case kindOpaque:
		if depth+nestingDepth(raw) > s.maxDepth {
			return &PayloadTooLargeError{Limit: "depth", Max: int64(s.maxDepth), Location: path}
		}
		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			return mismatch(sh.name, path, f.kind, raw, err)
		}
		fv.Set(reflect.ValueOf(v))

	default:
		return fmt.Errorf("rdio: unhandled field kind %d", f.kind)
	}
	return nil
}

// object splits a JSON object into its raw members.
func (s *decodeState) object(raw json.RawMessage, shapeName, path string) (map[string]json.RawMessage, error) {
	if firstByte(raw) != '{' {
		return nil, mismatch(shapeName, path, kindShape, raw, nil)
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, mismatch(shapeName, path, kindShape, raw, err)
	}
	return obj, nil
}

// array splits a JSON array into its raw elements.
func (s *decodeState) array(raw json.RawMessage, shapeName, path string) ([]json.RawMessage, error) {
	if firstByte(raw) != '[' {
		return nil, mismatch(shapeName, path, kindShapeList, raw, nil)
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, mismatch(shapeName, path, kindShapeList, raw, err)
	}
	return items, nil
}

// orderedObject returns the members of a JSON object in source order.
func orderedObject(raw json.RawMessage) ([]string, []json.RawMessage, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	if _, err := dec.Token(); err != nil {
		return nil, nil, err
	}

	var keys []string
	var values []json.RawMessage
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, nil, fmt.Errorf("object key is %T", tok)
		}
		var v json.RawMessage
		if err := dec.Decode(&v); err != nil {
			return nil, nil, err
		}
		keys = append(keys, key)
		values = append(values, v)
	}
	if _, err := dec.Token(); err != nil && err != io.EOF {
		return nil, nil, err
	}
	return keys, values, nil
}

func decodeString(raw json.RawMessage) (string, error) {
	if firstByte(raw) != '"' {
		return "", errNotA("string")
	}
	var s string
	err := json.Unmarshal(raw, &s)
	return s, err
}

func decodeInt(raw json.RawMessage) (int, error) {
	if !isNumber(raw) {
		return 0, errNotA("number")
	}
	str := string(bytes.TrimSpace(raw))
	if n, err := strconv.ParseInt(str, 10, 64); err == nil {
		return int(n), nil
	}
	f, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("%s is not an integer", str)
	}
	if !inInt64Range(f) {
		return 0, fmt.Errorf("%s is out of integer range", str)
	}
	return int(f), nil
}

// inInt64Range reports whether f converts to int64 without wrapping. The
// upper bound is exclusive since float64(math.MaxInt64) rounds up to 2^63.
func inInt64Range(f float64) bool {
	return f >= -(1<<63) && f < 1<<63
}

func decodeFloat(raw json.RawMessage) (float64, error) {
	if !isNumber(raw) {
		return 0, errNotA("number")
	}
	return strconv.ParseFloat(string(bytes.TrimSpace(raw)), 64)
}

func decodeBool(raw json.RawMessage) (bool, error) {
	switch string(bytes.TrimSpace(raw)) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, errNotA("boolean")
}

func errNotA(what string) error {
	return fmt.Errorf("value is not a JSON %s", what)
}

func mismatch(shapeName, path string, kind fieldKind, raw json.RawMessage, err error) *TypeMismatchError {
	return &TypeMismatchError{
		Shape:    shapeName,
		Field:    path,
		Expected: kind.String(),
		Value:    snippet(raw),
		Err:      err,
	}
}

func snippet(raw json.RawMessage) string {
	const max = 64
	s := string(bytes.TrimSpace(raw))
	if len(s) > max {
		return s[:max] + "..."
	}
	if s == "" {
		return "nothing"
	}
	return s
}

func firstByte(raw json.RawMessage) byte {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 {
		return 0
	}
	return trimmed[0]
}

func isNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}

func isNumber(raw json.RawMessage) bool {
	c := firstByte(raw)
	return c == '-' || (c >= '0' && c <= '9')
}

func indexPath(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}

// nestingDepth returns the deepest object/array nesting in raw, ignoring
// brackets inside strings. It does not validate the JSON.
func nestingDepth(raw []byte) int {
	depth, max := 0, 0
	inString, escaped := false, false
	for _, c := range raw {
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{', '[':
			depth++
			if depth > max {
				max = depth
			}
		case '}', ']':
			depth--
		}
	}
	return max
}
