package list

import (
	"bytes"
	"encoding/json"
	"strings"
)

// MarshalJSON produces a JSON array representing the items in the
// list. By supporting json.Marshaler and json.Unmarshaler, Elements
// and lists can behave as arrays in larger json objects, and can be
// used as the output/input of json.Marshal and json.Unmarshal.
func (l *List[T]) MarshalJSON() ([]byte, error) {
	buf := &compactingBuffer{}
	enc := json.NewEncoder(buf)

	_ = buf.WriteByte('[')

	for i := l.Front(); i.Ok(); i = i.Next() {
		if i != l.Front() {
			_ = buf.WriteByte(',')
		}
		if err := enc.Encode(i.Value()); err != nil {
			return nil, err
		}
	}

	_ = buf.WriteByte(']')

	return buf.Bytes(), nil
}

// UnmarshalJSON reads json input and appends the values to the
// list. If there are elements in the list, they are not removed. By
// supporting json.Marshaler and json.Unmarshaler, Elements and lists
// can behave as arrays in larger json objects, and can be used as
// the output/input of json.Marshal and json.Unmarshal.
func (l *List[T]) UnmarshalJSON(in []byte) error {
	rv := []json.RawMessage{}

	if err := json.Unmarshal(in, &rv); err != nil {
		return err
	}
	var zero T
	tail := l.Back()
	for idx := range rv {
		elem := NewElement(zero)
		if err := elem.UnmarshalJSON(rv[idx]); err != nil {
			return err
		}
		tail = tail.Append(elem)
	}
	return nil
}

// compactingBuffer strips the trailing newlines that json.Encoder
// emits after every value, so encoded elements concatenate into one
// array literal.
type compactingBuffer struct {
	bytes.Buffer
}

func (b *compactingBuffer) Write(in []byte) (int, error) {
	_, _ = b.Buffer.Write(bytes.TrimSpace(in))
	return len(in), nil
}

func (b *compactingBuffer) WriteString(in string) (int, error) {
	_, _ = b.Buffer.WriteString(strings.TrimSpace(in))
	return len(in), nil
}
