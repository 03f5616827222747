// internal/protocol/item.go
package protocol

import (
	"errors"
	"fmt"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Item is one i3bar status-line segment.
// Field set per the i3bar protocol; zero values stay off the wire.
type Item struct {
	FullText            string `json:"full_text"`
	ShortText           string `json:"short_text,omitempty"`
	Color               string `json:"color,omitempty"`
	Background          string `json:"background,omitempty"`
	Border              string `json:"border,omitempty"`
	MinWidth            int    `json:"min_width,omitempty"`
	Align               string `json:"align,omitempty"`
	Name                string `json:"name,omitempty"`
	Instance            string `json:"instance,omitempty"`
	Urgent              bool   `json:"urgent,omitempty"`
	Separator           *bool  `json:"separator,omitempty"`
	SeparatorBlockWidth int    `json:"separator_block_width,omitempty"`
	Markup              string `json:"markup,omitempty"`

	// CachedUntil is a host-side cache hint. Not part of the wire format.
	CachedUntil time.Time `json:"-"`
}

// Header opens an i3bar output stream.
type Header struct {
	Version     int  `json:"version"`
	StopSignal  int  `json:"stop_signal,omitempty"`
	ContSignal  int  `json:"cont_signal,omitempty"`
	ClickEvents bool `json:"click_events,omitempty"`
}

// ClickEvent is one pointer event delivered by the bar.
type ClickEvent struct {
	Name     string `json:"name"`
	Instance string `json:"instance,omitempty"`
	Button   int    `json:"button"`
	X        int    `json:"x,omitempty"`
	Y        int    `json:"y,omitempty"`
}

// Rendered is one segment ready for delivery: either a typed item built by
// the adapter, or a verbatim payload produced by an i3bar-mode script.
// Exactly one of the two is set.
type Rendered struct {
	Item *Item
	Raw  jsoniter.RawMessage
}

func (r Rendered) MarshalJSON() ([]byte, error) {
	if r.Raw != nil {
		return r.Raw, nil
	}
	if r.Item == nil {
		return nil, errors.New("protocol: empty rendered segment")
	}
	return json.Marshal(r.Item)
}

// ParseItem decodes a single display item from raw script output.
// The payload must be one JSON object; anything else is a hard error.
func ParseItem(raw string) (*Item, error) {
	trimmed := strings.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, errors.New("protocol: not a valid i3bar item: expected a JSON object")
	}
	var it Item
	if err := json.UnmarshalFromString(trimmed, &it); err != nil {
		return nil, fmt.Errorf("protocol: not a valid i3bar item: %w", err)
	}
	return &it, nil
}
