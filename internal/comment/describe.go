// Package comment renders SmartAI rows as text: a canonical one-line
// annotation with a fixed grammar and a readable narration in the style of
// database editors.
package comment

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/AaronLay10/SaiScope/internal/definitions"
	"github.com/AaronLay10/SaiScope/internal/smartai"
)

// Pool and timeout defaults.
const (
	DefaultWorkers         = 4
	DefaultResolverTimeout = 250 * time.Millisecond
)

// NameResolver looks up the display name of a foreign id. A miss returns
// ok=false with a nil error; an error means the backing store is unavailable.
type NameResolver interface {
	ResolveName(ctx context.Context, role definitions.ParamRole, id int64) (name string, ok bool, err error)
}

// Options tunes a Generator.
type Options struct {
	Workers         int
	ResolverTimeout time.Duration
}

// Result is the annotation of one row.
type Result struct {
	Text string `json:"text"`
	// Unresolved lists "role:id" for every foreign id rendered raw.
	Unresolved []string `json:"unresolved,omitempty"`
	// Partial is set when a resolver call timed out or failed.
	Partial bool `json:"partial,omitempty"`
}

// Generator renders annotations and narrations. The zero value uses the
// defaults.
type Generator struct {
	opts Options
}

// New returns a Generator with opts, filling unset fields with defaults.
func New(opts Options) *Generator {
	if opts.Workers <= 0 {
		opts.Workers = DefaultWorkers
	}
	if opts.ResolverTimeout <= 0 {
		opts.ResolverTimeout = DefaultResolverTimeout
	}
	return &Generator{opts: opts}
}

func (g *Generator) workers() int {
	if g == nil || g.opts.Workers <= 0 {
		return DefaultWorkers
	}
	return g.opts.Workers
}

func (g *Generator) timeout() time.Duration {
	if g == nil || g.opts.ResolverTimeout <= 0 {
		return DefaultResolverTimeout
	}
	return g.opts.ResolverTimeout
}

// Describe renders row as
// "<Event>(<p=v,...>) - <Action>(<p=v,...>) <Target>(<p=v,...>)".
// Resolver failures never fail the call; they leave the raw id in place.
func Describe(ctx context.Context, row smartai.ScriptRow, r NameResolver) Result {
	return (*Generator)(nil).Describe(ctx, row, r)
}

// Describe is the Generator form of the package level Describe.
func (g *Generator) Describe(ctx context.Context, row smartai.ScriptRow, r NameResolver) Result {
	d := describer{g: g, ctx: ctx, r: r, seen: make(map[string]bool)}

	ev := d.part(definitions.KindEvent, row.EventType, row.EventParams[:])
	act := d.part(definitions.KindAction, row.ActionType, row.ActionParams[:])
	tgt := d.part(definitions.KindTarget, row.TargetType, row.TargetParams[:])

	return Result{
		Text:       ev + " - " + act + " " + tgt,
		Unresolved: d.unresolved,
		Partial:    d.partial,
	}
}

type describer struct {
	g          *Generator
	ctx        context.Context
	r          NameResolver
	unresolved []string
	seen       map[string]bool
	partial    bool
}

func (d *describer) part(kind definitions.Kind, code int64, raw []int64) string {
	def, ok := definitions.Lookup(kind, code)
	if !ok {
		return def.Name
	}
	vals := make([]string, 0, len(def.Params))
	for i, spec := range def.Params {
		if i >= len(raw) {
			break
		}
		vals = append(vals, spec.Name+"="+d.value(spec, raw[i]))
	}
	return def.Name + "(" + strings.Join(vals, ",") + ")"
}

func (d *describer) value(spec definitions.ParamSpec, raw int64) string {
	if !spec.Role.IsForeign() || raw == 0 {
		return definitions.FormatValue(spec, raw)
	}
	name, found := d.lookup(spec.Role, raw)
	if !found {
		return strconv.FormatInt(raw, 10)
	}
	return "'" + name + "'"
}

// lookup resolves one foreign id and records misses.
func (d *describer) lookup(role definitions.ParamRole, id int64) (string, bool) {
	name, outcome := d.g.resolve(d.ctx, d.r, role, id)
	switch outcome {
	case resolved:
		return name, true
	case unavailable:
		d.partial = true
	}
	key := fmt.Sprintf("%s:%d", role, id)
	if !d.seen[key] {
		d.seen[key] = true
		d.unresolved = append(d.unresolved, key)
	}
	return "", false
}

type outcome int

const (
	resolved outcome = iota
	missing
	unavailable
)

// resolve calls r under the per-call timeout. The call runs in its own
// goroutine so a resolver that ignores ctx cannot stall the caller.
func (g *Generator) resolve(ctx context.Context, r NameResolver, role definitions.ParamRole, id int64) (string, outcome) {
	if r == nil || id == 0 {
		return "", missing
	}
	ctx, cancel := context.WithTimeout(ctx, g.timeout())
	defer cancel()

	type answer struct {
		name string
		ok   bool
		err  error
	}
	ch := make(chan answer, 1)
	go func() {
		name, ok, err := r.ResolveName(ctx, role, id)
		ch <- answer{name, ok, err}
	}()

	select {
	case a := <-ch:
		switch {
		case a.err != nil:
			return "", unavailable
		case !a.ok:
			return "", missing
		}
		return a.name, resolved
	case <-ctx.Done():
		return "", unavailable
	}
}
