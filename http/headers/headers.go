package headers

import (
	"github.com/indigo-web/iter"
	"github.com/indigo-web/utils/strcomp"
)

// Field is a single header field. Name is always stored upper-cased.
type Field struct {
	Name, Value string
}

// Headers is an ordered list of header fields. The order of insertion is preserved, as it
// is the order they are serialized in. Fields are never removed.
type Headers struct {
	fields []Field
}

// NewPrealloc returns an instance with pre-allocated room for n fields
func NewPrealloc(n int) *Headers {
	return &Headers{
		fields: make([]Field, 0, n),
	}
}

func New() *Headers {
	return NewPrealloc(0)
}

// Add appends a new field. The name is upper-cased on store
func (h *Headers) Add(name, value string) *Headers {
	h.fields = append(h.fields, Field{
		Name:  Normalize(name),
		Value: value,
	})

	return h
}

// Set overrides the value of the first field with the name. If there's no such field,
// it'll be appended
func (h *Headers) Set(name, value string) *Headers {
	for i, field := range h.fields {
		if strcomp.EqualFold(field.Name, name) {
			h.fields[i].Value = value
			return h
		}
	}

	return h.Add(name, value)
}

// Get returns a value corresponding to the name and a bool, indicating whether the field
// exists. In case it doesn't, empty string will be returned either
func (h *Headers) Get(name string) (string, bool) {
	for _, field := range h.fields {
		if strcomp.EqualFold(field.Name, name) {
			return field.Value, true
		}
	}

	return "", false
}

// Value returns the first value, corresponding to the name. Otherwise, empty string is returned
func (h *Headers) Value(name string) string {
	value, _ := h.Get(name)
	return value
}

// Has indicates, whether there's a field with the name
func (h *Headers) Has(name string) bool {
	_, found := h.Get(name)
	return found
}

// Count returns how many fields carry the name
func (h *Headers) Count(name string) (n int) {
	for _, field := range h.fields {
		if strcomp.EqualFold(field.Name, name) {
			n++
		}
	}

	return n
}

// Len returns the total number of fields
func (h *Headers) Len() int {
	return len(h.fields)
}

// Merge combines fields with duplicate names into the first one of them. Its value
// becomes the comma-space-joined concatenation of all the occurrences, in their order.
// Later occurrences are dropped, so the order of the first appearances is kept
func (h *Headers) Merge() {
	merged := h.fields[:0]

	for i, field := range h.fields {
		if seen(merged, field.Name) {
			continue
		}

		for _, next := range h.fields[i+1:] {
			if strcomp.EqualFold(field.Name, next.Name) {
				field.Value += ", " + next.Value
			}
		}

		merged = append(merged, field)
	}

	h.fields = merged
}

// Iter returns an iterator over the fields
func (h *Headers) Iter() iter.Iterator[Field] {
	return iter.Slice(h.fields)
}

// Unwrap reveals underlying data structure. The returned slice must not be modified
func (h *Headers) Unwrap() []Field {
	return h.fields
}

func seen(fields []Field, name string) bool {
	for _, field := range fields {
		if strcomp.EqualFold(field.Name, name) {
			return true
		}
	}

	return false
}

// Normalize upper-cases ASCII letters of the name. Returns the name as-is if there's
// nothing to convert
func Normalize(name string) string {
	for i := 0; i < len(name); i++ {
		if c := name[i]; c >= 'a' && c <= 'z' {
			return toUpper(name, i)
		}
	}

	return name
}

func toUpper(name string, from int) string {
	b := []byte(name)
	for i := from; i < len(b); i++ {
		if b[i] >= 'a' && b[i] <= 'z' {
			b[i] &^= 0x20
		}
	}

	return string(b)
}
