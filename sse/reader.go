package sse

import (
	"bufio"
	"encoding/json"
	"io"
	"strings"
)

// Frame is one decoded text/event-stream event.
type Frame struct {
	Event string
	Data  json.RawMessage
}

// Reader decodes the frames ServeSSE writes. It understands the subset of
// the event-stream format the server produces: event and data fields,
// comments, and blank-line dispatch.
type Reader struct {
	sc *bufio.Scanner
}

func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	return &Reader{sc: sc}
}

// Next returns the next complete frame, or io.EOF when the stream ends.
func (r *Reader) Next() (Frame, error) {
	var (
		f    Frame
		data []string
		seen bool
	)
	for r.sc.Scan() {
		line := r.sc.Text()
		if line == "" {
			if !seen {
				continue
			}
			f.Data = json.RawMessage(strings.Join(data, "\n"))
			if f.Event == "" {
				f.Event = "message"
			}
			return f, nil
		}
		if strings.HasPrefix(line, ":") {
			continue
		}
		field, value, _ := strings.Cut(line, ":")
		value = strings.TrimPrefix(value, " ")
		switch field {
		case "event":
			f.Event = value
			seen = true
		case "data":
			data = append(data, value)
			seen = true
		}
	}
	if err := r.sc.Err(); err != nil {
		return Frame{}, err
	}
	return Frame{}, io.EOF
}
