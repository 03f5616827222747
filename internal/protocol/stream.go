// internal/protocol/stream.go
package protocol

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// StreamWriter delivers status lines in the i3bar output format:
// a header object, then an unterminated JSON array with one item array
// per line. It performs delivery only; no interpretation of segments.
type StreamWriter struct {
	w       io.Writer
	started bool
}

func NewStreamWriter(w io.Writer) *StreamWriter {
	return &StreamWriter{w: w}
}

// WriteHeader emits the protocol header and opens the infinite array.
// Must be called exactly once, before the first WriteLine.
func (s *StreamWriter) WriteHeader(clickEvents bool) error {
	hdr, err := json.Marshal(Header{Version: 1, ClickEvents: clickEvents})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(s.w, "%s\n[\n", hdr)
	return err
}

// WriteLine emits one full status line.
func (s *StreamWriter) WriteLine(segments []Rendered) error {
	line, err := json.Marshal(segments)
	if err != nil {
		return fmt.Errorf("protocol: encode status line: %w", err)
	}

	prefix := ""
	if s.started {
		prefix = ","
	}
	s.started = true

	_, err = fmt.Fprintf(s.w, "%s%s\n", prefix, line)
	return err
}

// ClickDecoder reads the click-event array the bar writes to our stdin.
// Events arrive one per line, wrapped in an unterminated JSON array.
type ClickDecoder struct {
	sc *bufio.Scanner
}

func NewClickDecoder(r io.Reader) *ClickDecoder {
	return &ClickDecoder{sc: bufio.NewScanner(r)}
}

// Next returns the next click event, or io.EOF when the stream ends.
func (d *ClickDecoder) Next() (ClickEvent, error) {
	for d.sc.Scan() {
		line := strings.TrimSpace(d.sc.Text())
		line = strings.TrimPrefix(line, "[")
		line = strings.TrimPrefix(line, ",")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var ev ClickEvent
		if err := json.UnmarshalFromString(line, &ev); err != nil {
			return ClickEvent{}, fmt.Errorf("protocol: decode click event: %w", err)
		}
		return ev, nil
	}

	if err := d.sc.Err(); err != nil {
		return ClickEvent{}, err
	}
	return ClickEvent{}, io.EOF
}
