package rdio

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Entities is a polymorphic list. It marshals each element with its
// discriminator tag so the output decodes back into the same shapes.
type Entities []Entity

// MarshalJSON implements json.Marshaler.
func (es Entities) MarshalJSON() ([]byte, error) {
	if es == nil {
		return []byte("null"), nil
	}
	items := make([]json.RawMessage, len(es))
	for i, e := range es {
		b, err := MarshalEntity(e)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		items[i] = b
	}
	return json.Marshal(items)
}

// MarshalEntity encodes e with its "type" tag, producing the same object
// DecodeEntity accepts.
func MarshalEntity(e Entity) ([]byte, error) {
	tag, ok := TagOf(e)
	if !ok {
		return nil, fmt.Errorf("rdio: %T is not a registered entity", e)
	}

	body, err := json.Marshal(e)
	if err != nil {
		return nil, err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, err
	}
	fields[TagField] = json.RawMessage(strconv.Quote(tag))

	return json.Marshal(fields)
}
