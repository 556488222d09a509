package jsonrpc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// RequestID is a JSON-RPC id. It holds either a string or a number; a nil
// *RequestID and the zero value both stand for an absent id. Numbers keep
// their literal text so they go back out exactly as they came in.
type RequestID struct {
	text  string
	isNum bool
	set   bool
}

// NewRequestID wraps a string or numeric id. Any other type yields an
// absent id.
func NewRequestID(value any) *RequestID {
	switch v := value.(type) {
	case string:
		return &RequestID{text: v, set: true}
	case json.Number:
		return &RequestID{text: v.String(), isNum: true, set: true}
	case int:
		return numericID(strconv.FormatInt(int64(v), 10))
	case int32:
		return numericID(strconv.FormatInt(int64(v), 10))
	case int64:
		return numericID(strconv.FormatInt(v, 10))
	case uint32:
		return numericID(strconv.FormatUint(uint64(v), 10))
	case uint64:
		return numericID(strconv.FormatUint(v, 10))
	case float64:
		return numericID(strconv.FormatFloat(v, 'f', -1, 64))
	default:
		return &RequestID{}
	}
}

func numericID(s string) *RequestID { return &RequestID{text: s, isNum: true, set: true} }

// String is the id text, empty when absent. A string id and a number with
// the same digits render alike.
func (id *RequestID) String() string {
	if id.IsNil() {
		return ""
	}
	return id.text
}

// IsNumber reports whether the id was sent as a JSON number.
func (id *RequestID) IsNumber() bool { return !id.IsNil() && id.isNum }

// IsNil reports whether the id is absent.
func (id *RequestID) IsNil() bool { return id == nil || !id.set }

func (id *RequestID) MarshalJSON() ([]byte, error) {
	switch {
	case id.IsNil():
		return []byte("null"), nil
	case id.isNum:
		return []byte(id.text), nil
	default:
		return json.Marshal(id.text)
	}
}

func (id *RequestID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*id = RequestID{}
	switch {
	case bytes.Equal(data, []byte("null")):
		return nil
	case len(data) > 0 && data[0] == '"':
		if err := json.Unmarshal(data, &id.text); err != nil {
			return err
		}
		id.set = true
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var n json.Number
	if err := dec.Decode(&n); err != nil {
		return fmt.Errorf("JSON-RPC ID must be a string or number, got: %s", data)
	}
	*id = *numericID(n.String())
	return nil
}
