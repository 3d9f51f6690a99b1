package tracer

import (
	"fmt"
	"io"
	"strings"

	"github.com/AaronLay10/SaiScope/internal/scriptgraph"
	"github.com/AaronLay10/SaiScope/internal/smartai"
)

// Report is the result of one trace.
type Report struct {
	Start smartai.RowKey `json:"start"`
	// EntityName names the creature or gameobject owning the start row, when
	// the caller knows it.
	EntityName string                `json:"entity_name,omitempty"`
	MaxSteps   int                   `json:"max_steps"`
	Steps      []Step                `json:"steps"`
	Truncated  bool                  `json:"truncated"`
	Anomalies  []scriptgraph.Anomaly `json:"anomalies,omitempty"`
}

// Summary renders the condition part of a step line.
func (c Condition) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s chance=%d", c.EventName, c.Chance)
	if c.PhaseMask != 0 {
		fmt.Fprintf(&b, " phases=%d", c.PhaseMask)
	}
	if c.Flags != 0 {
		fmt.Fprintf(&b, " flags=%d", c.Flags)
	}
	if c.Once {
		b.WriteString(" once")
	}
	return b.String()
}

// Line renders a step as
// "<index> <source>/<entry>#<id> <via> <next> <condition> <class>".
func (s Step) Line() string {
	next := NextNone
	if len(s.Next) > 0 {
		next = strings.Join(s.Next, ",")
	}
	return fmt.Sprintf("%d %s %s %s %s %s", s.Index, s.Row, s.Via, next, s.Condition.Summary(), s.Class)
}

// Lines renders every step, then every anomaly prefixed with "! ".
func (r *Report) Lines() []string {
	out := make([]string, 0, len(r.Steps)+len(r.Anomalies))
	for _, s := range r.Steps {
		out = append(out, s.Line())
	}
	for _, a := range r.Anomalies {
		out = append(out, fmt.Sprintf("! %s %s: %s", a.Kind, a.Row, a.Message))
	}
	return out
}

// Render writes Lines to w, one per line.
func (r *Report) Render(w io.Writer) error {
	for _, line := range r.Lines() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// StepCounts tallies steps by class prefix: always, probabilistic, cycle and
// truncated.
func (r *Report) StepCounts() map[string]int {
	counts := make(map[string]int)
	for _, s := range r.Steps {
		class := s.Class
		if i := strings.IndexByte(class, ':'); i >= 0 {
			class = class[:i]
		}
		counts[class]++
	}
	return counts
}
