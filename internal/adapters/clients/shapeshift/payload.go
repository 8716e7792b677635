package shapeshift

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"
)

// PayloadKind tags the shape of a decoded payload.
type PayloadKind int

const (
	// PayloadScalar holds a string, json.Number, bool or nil.
	PayloadScalar PayloadKind = iota

	// PayloadObject holds a field → Payload mapping.
	PayloadObject

	// PayloadArray holds an ordered sequence of Payload.
	PayloadArray
)

// String returns the kind name.
func (k PayloadKind) String() string {
	switch k {
	case PayloadObject:
		return "object"
	case PayloadArray:
		return "array"
	default:
		return "scalar"
	}
}

// Payload is a schema-less decoded response body.
// Exactly one of object, array or scalar is meaningful, selected by kind.
type Payload struct {
	kind   PayloadKind
	object map[string]Payload
	array  []Payload
	scalar any
}

// errEmptyBody is returned by Decode for a body with no JSON value.
var errEmptyBody = errors.New("empty response body")

// Decode parses a response body into a Payload.
// Numbers are kept as json.Number so amounts keep their exact text.
// The body must hold exactly one JSON value.
func Decode(body []byte) (Payload, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return Payload{}, errEmptyBody
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return Payload{}, fmt.Errorf("decoding JSON: %w", err)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return Payload{}, errors.New("decoding JSON: unexpected data after top-level value")
	}

	return fromRaw(raw), nil
}

// fromRaw converts the generic encoding/json tree into a Payload.
func fromRaw(raw any) Payload {
	switch v := raw.(type) {
	case map[string]any:
		obj := make(map[string]Payload, len(v))
		for k, field := range v {
			obj[k] = fromRaw(field)
		}

		return Payload{kind: PayloadObject, object: obj}

	case []any:
		arr := make([]Payload, len(v))
		for i, el := range v {
			arr[i] = fromRaw(el)
		}

		return Payload{kind: PayloadArray, array: arr}

	default:
		return Payload{kind: PayloadScalar, scalar: v}
	}
}

// NewObject builds an object payload. Used by tests and normalisation.
func NewObject(fields map[string]Payload) Payload {
	if fields == nil {
		fields = map[string]Payload{}
	}

	return Payload{kind: PayloadObject, object: fields}
}

// NewArray builds an array payload.
func NewArray(elements ...Payload) Payload {
	return Payload{kind: PayloadArray, array: elements}
}

// NewScalar builds a scalar payload from a string, json.Number, bool or nil.
func NewScalar(v any) Payload {
	return Payload{kind: PayloadScalar, scalar: v}
}

// Kind returns the payload's shape.
func (p Payload) Kind() PayloadKind {
	return p.kind
}

// IsObject reports whether p is an object.
func (p Payload) IsObject() bool { return p.kind == PayloadObject }

// IsArray reports whether p is an array.
func (p Payload) IsArray() bool { return p.kind == PayloadArray }

// IsNull reports whether p is the JSON null scalar.
func (p Payload) IsNull() bool { return p.kind == PayloadScalar && p.scalar == nil }

// Field returns the named field of an object payload.
// ok is false for non-objects and absent fields.
func (p Payload) Field(name string) (Payload, bool) {
	if p.kind != PayloadObject {
		return Payload{}, false
	}

	f, ok := p.object[name]

	return f, ok
}

// Has reports whether an object payload carries a non-null field.
func (p Payload) Has(name string) bool {
	f, ok := p.Field(name)
	return ok && !f.IsNull()
}

// Fields returns a copy of an object payload's fields; nil for non-objects.
func (p Payload) Fields() map[string]Payload {
	if p.kind != PayloadObject {
		return nil
	}

	out := make(map[string]Payload, len(p.object))
	for k, v := range p.object {
		out[k] = v
	}

	return out
}

// Elements returns the elements of an array payload; nil for non-arrays.
func (p Payload) Elements() []Payload {
	if p.kind != PayloadArray {
		return nil
	}

	return p.array
}

// Text returns the textual form of a scalar: strings as-is, numbers as
// their literal, booleans as "true"/"false". ok is false for null and non-scalars.
func (p Payload) Text() (string, bool) {
	if p.kind != PayloadScalar {
		return "", false
	}

	switch v := p.scalar.(type) {
	case string:
		return v, true
	case json.Number:
		return v.String(), true
	case bool:
		return strconv.FormatBool(v), true
	default:
		return "", false
	}
}

// StringField returns the text of a field, or "" when absent or not a scalar.
func (p Payload) StringField(name string) string {
	f, ok := p.Field(name)
	if !ok {
		return ""
	}

	s, _ := f.Text()

	return s
}

// Float parses a numeric or numeric-string scalar.
func (p Payload) Float() (float64, error) {
	s, ok := p.Text()
	if !ok {
		return 0, fmt.Errorf("%s is not a number", p.describe())
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing %q as number: %w", s, err)
	}

	return f, nil
}

// Decimal parses a numeric or numeric-string scalar without rounding.
func (p Payload) Decimal() (decimal.Decimal, error) {
	s, ok := p.Text()
	if !ok {
		return decimal.Zero, fmt.Errorf("%s is not a number", p.describe())
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing %q as decimal: %w", s, err)
	}

	return d, nil
}

// Bool reads a boolean scalar. The strings "true" and "false" are accepted too.
func (p Payload) Bool() (value, ok bool) {
	if p.kind != PayloadScalar {
		return false, false
	}

	switch v := p.scalar.(type) {
	case bool:
		return v, true
	case string:
		b, err := strconv.ParseBool(v)
		return b, err == nil
	default:
		return false, false
	}
}

// JSON re-encodes the payload. Used to render non-string error values.
func (p Payload) JSON() string {
	b, err := json.Marshal(p.toRaw())
	if err != nil {
		return p.describe()
	}

	return string(b)
}

// toRaw converts back to the generic encoding/json tree.
func (p Payload) toRaw() any {
	switch p.kind {
	case PayloadObject:
		m := make(map[string]any, len(p.object))
		for k, v := range p.object {
			m[k] = v.toRaw()
		}

		return m
	case PayloadArray:
		a := make([]any, len(p.array))
		for i, v := range p.array {
			a[i] = v.toRaw()
		}

		return a
	default:
		return p.scalar
	}
}

// describe names the payload for error messages.
func (p Payload) describe() string {
	if p.IsNull() {
		return "null"
	}

	return p.kind.String()
}
