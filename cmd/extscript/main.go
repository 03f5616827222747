// cmd/extscript/main.go
package main

import (
	"context"
	"errors"
	"io"
	"log"
	"os"

	"github.com/jpicht/py3status/internal/config"
	"github.com/jpicht/py3status/internal/notify"
	"github.com/jpicht/py3status/internal/protocol"
	"github.com/jpicht/py3status/internal/script"
	"github.com/jpicht/py3status/internal/status"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: extscript <config.yaml>")
	}

	cfgPath := os.Args[1]

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	if err := config.Validate(cfg); err != nil {
		log.Fatalf("config validation failed: %v", err)
	}

	config.Normalize(cfg)

	ctx := context.Background()

	// --------------------
	// Notification transport
	// --------------------

	var notifier notify.Notifier
	if desktop, err := notify.NewDesktop(cfg.Bar.NotifyApp); err != nil {
		log.Printf("notifications disabled: %v", err)
		notifier = notify.Nop{}
	} else {
		defer desktop.Close()
		notifier = desktop
	}

	// --------------------
	// Build per-module adapters
	// --------------------

	updates := make(chan script.Update)
	adapters := make(map[string]*script.Adapter, len(cfg.Bar.Modules))
	order := make([]string, 0, len(cfg.Bar.Modules))

	for _, m := range cfg.Bar.Modules {
		a, err := script.Build(m, notifier)
		if err != nil {
			log.Fatalf("module build failed (module=%s): %v", m.Name, err)
		}
		adapters[m.Name] = a
		order = append(order, m.Name)

		// refresh producer
		go a.Run(ctx, updates)
	}

	// --------------------
	// Click event routing
	// --------------------

	if cfg.Bar.ClickEvents {
		go routeClicks(os.Stdin, adapters)
	}

	// --------------------
	// Bar output stream
	// --------------------

	stream := protocol.NewStreamWriter(os.Stdout)
	if err := stream.WriteHeader(cfg.Bar.ClickEvents); err != nil {
		log.Fatalf("stream header failed: %v", err)
	}

	segments := make(map[string]protocol.Rendered, len(order))
	health := make(map[string]*status.Snapshot, len(order))
	for _, name := range order {
		health[name] = &status.Snapshot{}
	}

	for u := range updates {
		snap := health[u.Name]

		if u.Err != nil {
			text := u.ErrorText()
			if snap.ObserveFailure(text) {
				log.Printf("module %s: health=%s: %s", u.Name, snap.Health, text)
			}
			// A failed cycle produces no fresh item. The error replaces
			// the segment so the bar shows what went wrong; the previous
			// raw output stays available for notifications.
			segments[u.Name] = errorSegment(u.Name, text)
		} else {
			if snap.ObserveSuccess(u.At) {
				log.Printf("module %s: health=%s", u.Name, snap.Health)
			}
			segments[u.Name] = u.Rendered
		}

		line := make([]protocol.Rendered, 0, len(order))
		for _, name := range order {
			if seg, ok := segments[name]; ok {
				line = append(line, seg)
			}
		}
		if err := stream.WriteLine(line); err != nil {
			log.Fatalf("stream write failed: %v", err)
		}
	}
}

const errorColor = "#FF0000"

// errorSegment renders a failed cycle the way the bar shows it.
func errorSegment(name, text string) protocol.Rendered {
	return protocol.Rendered{Item: &protocol.Item{
		Name:     name,
		FullText: name + ": " + text,
		Color:    errorColor,
		Urgent:   true,
	}}
}

// routeClicks decodes the bar's click-event stream and hands each event
// to the owning module. Unknown names are ignored.
func routeClicks(r io.Reader, adapters map[string]*script.Adapter) {
	dec := protocol.NewClickDecoder(r)
	for {
		ev, err := dec.Next()
		if errors.Is(err, io.EOF) {
			return
		}
		if err != nil {
			log.Printf("click decode failed: %v", err)
			continue
		}

		a := adapters[ev.Name]
		if a == nil {
			continue
		}
		if err := a.HandleClick(ev); err != nil {
			log.Printf("click handling failed (module=%s): %v", ev.Name, err)
		}
	}
}
