// internal/format/template.go
package format

import (
	"fmt"
	"io"
	"strconv"

	"github.com/valyala/fasttemplate"
)

// Engine substitutes {placeholder} tags in display format strings.
// Placeholder semantics live here; callers only supply named values.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// Substitute renders template with the given values.
// Unknown placeholders are re-emitted literally; a malformed template
// (unclosed tag) is returned as-is. Substitution never fails.
func (e *Engine) Substitute(template string, values map[string]any) string {
	out, err := fasttemplate.ExecuteFuncStringWithErr(
		template, "{", "}",
		func(w io.Writer, tag string) (int, error) {
			v, ok := values[tag]
			if !ok {
				return fmt.Fprintf(w, "{%s}", tag)
			}
			return io.WriteString(w, Value(v))
		},
	)
	if err != nil {
		return template
	}
	return out
}

// Value renders a placeholder value the way the bar should display it.
// Numbers keep their shortest decimal form.
func Value(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}
