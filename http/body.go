package http

import "github.com/indigo-web/utils/uf"

// Body is an owned byte sequence of a fixed length. The content is arbitrary binary
// data, so its length is always taken from the slice and never from a terminator.
type Body struct {
	data []byte
}

// NewBody copies the data into a new Body
func NewBody(data []byte) *Body {
	owned := make([]byte, len(data))
	copy(owned, data)

	return &Body{data: owned}
}

// WrapBody takes the ownership over the data without copying. The caller must not
// touch the slice afterward
func WrapBody(data []byte) *Body {
	if data == nil {
		data = []byte{}
	}

	return &Body{data: data}
}

// Bytes returns the content. The returned slice must not be modified
func (b *Body) Bytes() []byte {
	return b.data
}

// String returns the content as a string without copying it
func (b *Body) String() string {
	return uf.B2S(b.data)
}

func (b *Body) Len() int {
	return len(b.data)
}
