// internal/script/types.go
package script

import (
	"errors"
	"time"

	"github.com/jpicht/py3status/internal/protocol"
)

// Update is the outcome of one refresh cycle.
type Update struct {
	Name string
	At   time.Time

	Rendered protocol.Rendered
	Err      error // non-nil means the cycle failed and Rendered is empty
}

// ErrorText returns the user-facing diagnostic for a failed cycle
// without assuming concrete error types. Command failures that captured
// output report that output; anything else reports the error string.
func (u Update) ErrorText() string {
	if u.Err == nil {
		return ""
	}

	type outputer interface{ Output() string }

	var o outputer
	if errors.As(u.Err, &o) {
		if out := o.Output(); out != "" {
			return out
		}
	}

	return u.Err.Error()
}
