// Package tracer walks a script graph depth first from one row and lists
// every row that can run as a consequence, with the condition under which
// each step runs.
package tracer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AaronLay10/SaiScope/internal/definitions"
	"github.com/AaronLay10/SaiScope/internal/scriptgraph"
	"github.com/AaronLay10/SaiScope/internal/smartai"
)

// DefaultMaxSteps is the step budget used when the caller passes zero.
const DefaultMaxSteps = 256

// ViaStart marks the root step.
const ViaStart = "start"

// NextNone is the Next rendering of a row with no edges to follow.
const NextNone = "none"

// ErrStartNotInGraph is returned when the start row is not a node of the
// graph.
var ErrStartNotInGraph = errors.New("trace start is not in the graph")

// Step classes that carry no argument.
const (
	ClassAlways    = "always"
	ClassTruncated = "truncated"
)

// Condition summarizes when a step's row runs.
type Condition struct {
	EventType int64  `json:"event_type"`
	EventName string `json:"event_name"`
	Chance    int64  `json:"chance"`
	PhaseMask int64  `json:"phase_mask"`
	Flags     int64  `json:"flags"`
	Once      bool   `json:"once"`
}

// Step is one row reached by the trace.
type Step struct {
	Index int            `json:"index"`
	Row   smartai.RowKey `json:"row"`
	// Via is the kind of edge that led here, or "start" for the root.
	Via string `json:"via"`
	// Next lists the edges leaving the row as "<kind>-><target>", where the
	// target is "#<id>" inside the row's own group.
	Next      []string  `json:"next"`
	Parent    int       `json:"parent"`
	Condition Condition `json:"condition"`
	// Class is "always", "probabilistic:N%", "cycle:->stepK" or "truncated".
	Class   string   `json:"class"`
	CycleTo int      `json:"cycle_to"`
	Notes   []string `json:"notes,omitempty"`
	// Comment is the narrated comment of the row, when the caller adds one.
	Comment string `json:"comment,omitempty"`
}

// IsCycle reports whether the step closes a loop back to an earlier step.
func (s Step) IsCycle() bool {
	return s.CycleTo >= 0
}

// Trace walks g from start. It fails only when start is not a node of g.
// A maxSteps of zero or less means DefaultMaxSteps.
func Trace(g *scriptgraph.Graph, start smartai.RowKey, maxSteps int) (*Report, error) {
	root, ok := g.Lookup(start)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrStartNotInGraph, start)
	}
	if maxSteps <= 0 {
		maxSteps = DefaultMaxSteps
	}

	t := &walker{
		g:      g,
		max:    maxSteps,
		onPath: make(map[int]int),
	}
	t.visit(root, ViaStart, -1)

	if t.dropped != nil {
		d := *t.dropped
		d.Index = len(t.steps)
		d.Class = ClassTruncated
		d.CycleTo = -1
		d.Notes = []string{fmt.Sprintf("step budget of %d exhausted", maxSteps)}
		t.steps = append(t.steps, d)
	}

	return &Report{
		Start:     start,
		MaxSteps:  maxSteps,
		Steps:     t.steps,
		Truncated: t.dropped != nil,
		Anomalies: append([]scriptgraph.Anomaly(nil), g.Anomalies...),
	}, nil
}

type walker struct {
	g   *scriptgraph.Graph
	max int
	// onPath maps node index to the step that visited it on the current path.
	onPath  map[int]int
	steps   []Step
	dropped *Step
}

func (t *walker) visit(node int, via string, parent int) {
	n := t.g.Nodes[node]
	step := Step{
		Index:     len(t.steps),
		Row:       n.Key(),
		Via:       via,
		Next:      nextOf(n),
		Parent:    parent,
		Condition: conditionOf(n.Row),
		CycleTo:   -1,
	}

	if len(t.steps) >= t.max {
		if t.dropped == nil {
			t.dropped = &step
		}
		return
	}

	if k, ok := t.onPath[node]; ok {
		step.Class = fmt.Sprintf("cycle:->step%d", k)
		step.CycleTo = k
		t.steps = append(t.steps, step)
		return
	}

	step.Class = classify(n.Row.EventChance)
	if step.Condition.Once {
		step.Notes = append(step.Notes, "fires at most once")
	}
	for _, a := range t.g.AnomaliesFor(step.Row) {
		step.Notes = append(step.Notes, noteFor(a))
	}
	t.steps = append(t.steps, step)

	idx := step.Index
	t.onPath[node] = idx
	for _, e := range orderedEdges(n.Edges) {
		if e.Broken() {
			continue
		}
		t.visit(e.To, string(e.Kind), idx)
	}
	delete(t.onPath, node)
}

// orderedEdges returns successor edges first, then invocations, then data
// triggers, keeping the relative order within each group.
func orderedEdges(edges []scriptgraph.Edge) []scriptgraph.Edge {
	out := make([]scriptgraph.Edge, 0, len(edges))
	for _, pass := range [][]scriptgraph.EdgeKind{
		{scriptgraph.EdgeChain, scriptgraph.EdgeImplicit},
		{scriptgraph.EdgeInvoke},
		{scriptgraph.EdgeDataTrigger},
	} {
		for _, e := range edges {
			for _, k := range pass {
				if e.Kind == k {
					out = append(out, e)
				}
			}
		}
	}
	return out
}

func nextOf(n scriptgraph.Node) []string {
	var out []string
	for _, e := range orderedEdges(n.Edges) {
		if e.Broken() {
			continue
		}
		target := e.Target.String()
		if e.Target.GroupKey == n.Row.Group() {
			target = fmt.Sprintf("#%d", e.Target.ID)
		}
		out = append(out, fmt.Sprintf("%s->%s", e.Kind, target))
	}
	return out
}

func noteFor(a scriptgraph.Anomaly) string {
	if a.Kind == scriptgraph.AnomalyBrokenLink {
		return fmt.Sprintf("broken link -> #%d", a.Target.ID)
	}
	return strings.ReplaceAll(string(a.Kind), "_", " ") + ": " + a.Message
}

func conditionOf(row smartai.ScriptRow) Condition {
	ev, _ := definitions.Lookup(definitions.KindEvent, row.EventType)
	return Condition{
		EventType: row.EventType,
		EventName: ev.Name,
		Chance:    row.EventChance,
		PhaseMask: row.EventPhaseMask,
		Flags:     row.EventFlags,
		Once:      row.NotRepeatable(),
	}
}

func classify(chance int64) string {
	if chance >= 100 {
		return ClassAlways
	}
	return fmt.Sprintf("probabilistic:%d%%", chance)
}
