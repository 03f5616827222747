// internal/protocol/protocol_test.go
package protocol

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestParseItem_Valid(t *testing.T) {
	it, err := ParseItem(`{"full_text":"It is now: Wed Feb 22 22:24:13","color":"#00FF00"}`)
	if err != nil {
		t.Fatalf("ParseItem err=%v", err)
	}
	if it.FullText != "It is now: Wed Feb 22 22:24:13" {
		t.Fatalf("full_text=%q", it.FullText)
	}
	if it.Color != "#00FF00" {
		t.Fatalf("color=%q", it.Color)
	}
}

func TestParseItem_Rejected(t *testing.T) {
	bad := []string{
		"",
		"plain text output",
		`"a json string"`,
		`[{"full_text":"x"}]`,
		"null",
		"42",
		`{"full_text": }`,
	}

	for _, raw := range bad {
		if _, err := ParseItem(raw); err == nil {
			t.Fatalf("ParseItem(%q): expected error, got nil", raw)
		}
	}
}

func TestRendered_MarshalPassthrough(t *testing.T) {
	raw := `{"full_text":"x","custom":1}`
	out, err := json.Marshal(Rendered{Raw: []byte(raw)})
	if err != nil {
		t.Fatalf("marshal err=%v", err)
	}
	if string(out) != raw {
		t.Fatalf("marshal=%s, want verbatim payload", out)
	}
}

func TestRendered_MarshalItem(t *testing.T) {
	out, err := json.Marshal(Rendered{Item: &Item{FullText: "hi", Color: "#FF0000", Name: "m1"}})
	if err != nil {
		t.Fatalf("marshal err=%v", err)
	}

	var it Item
	if err := json.Unmarshal(out, &it); err != nil {
		t.Fatalf("unmarshal err=%v", err)
	}
	if it.FullText != "hi" || it.Color != "#FF0000" || it.Name != "m1" {
		t.Fatalf("round-trip mismatch: %+v", it)
	}
}

func TestRendered_MarshalEmpty(t *testing.T) {
	if _, err := json.Marshal(Rendered{}); err == nil {
		t.Fatal("expected error for an empty segment")
	}
}

func TestStreamWriter_Framing(t *testing.T) {
	var buf bytes.Buffer
	w := NewStreamWriter(&buf)

	if err := w.WriteHeader(true); err != nil {
		t.Fatalf("WriteHeader err=%v", err)
	}
	if err := w.WriteLine([]Rendered{{Item: &Item{FullText: "a"}}}); err != nil {
		t.Fatalf("WriteLine err=%v", err)
	}
	if err := w.WriteLine([]Rendered{{Item: &Item{FullText: "b"}}}); err != nil {
		t.Fatalf("WriteLine err=%v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines: %q", len(lines), lines)
	}

	var hdr Header
	if err := json.UnmarshalFromString(lines[0], &hdr); err != nil {
		t.Fatalf("header decode err=%v", err)
	}
	if hdr.Version != 1 || !hdr.ClickEvents {
		t.Fatalf("header=%+v", hdr)
	}
	if lines[1] != "[" {
		t.Fatalf("line 2=%q, want the array opener", lines[1])
	}
	if strings.HasPrefix(lines[2], ",") {
		t.Fatalf("first status line must not be comma-prefixed: %q", lines[2])
	}
	if !strings.HasPrefix(lines[3], ",") {
		t.Fatalf("later status lines must be comma-prefixed: %q", lines[3])
	}
}

func TestClickDecoder(t *testing.T) {
	input := "[\n" +
		`{"name":"whoami","button":3,"x":1400,"y":12}` + "\n" +
		`,{"name":"k8s","instance":"prod","button":1}` + "\n"

	dec := NewClickDecoder(strings.NewReader(input))

	ev, err := dec.Next()
	if err != nil {
		t.Fatalf("Next err=%v", err)
	}
	if ev.Name != "whoami" || ev.Button != 3 || ev.X != 1400 {
		t.Fatalf("event=%+v", ev)
	}

	ev, err = dec.Next()
	if err != nil {
		t.Fatalf("Next err=%v", err)
	}
	if ev.Name != "k8s" || ev.Instance != "prod" || ev.Button != 1 {
		t.Fatalf("event=%+v", ev)
	}

	if _, err := dec.Next(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}
