package analyzer

import (
	"context"
	"fmt"

	"github.com/AaronLay10/SaiScope/internal/definitions"
	"github.com/AaronLay10/SaiScope/internal/smartai"
)

// Explanation holds the definitions asked for by Explain. Unmapped codes
// come back as Unknown placeholders.
type Explanation struct {
	Event  *definitions.TypeDefinition `json:"event,omitempty"`
	Action *definitions.TypeDefinition `json:"action,omitempty"`
	Target *definitions.TypeDefinition `json:"target,omitempty"`
}

// Explain looks up any combination of event, action and target codes.
func Explain(event, action, target *int64) Explanation {
	var out Explanation
	lookup := func(kind definitions.Kind, code *int64) *definitions.TypeDefinition {
		if code == nil {
			return nil
		}
		d, _ := definitions.Lookup(kind, *code)
		return &d
	}
	out.Event = lookup(definitions.KindEvent, event)
	out.Action = lookup(definitions.KindAction, action)
	out.Target = lookup(definitions.KindTarget, target)
	return out
}

// ListTypes returns every definition of kind ordered by code.
func ListTypes(kind definitions.Kind) []definitions.TypeDefinition {
	return definitions.All(kind)
}

// CompactRow is a row reduced to names and non-zero params.
type CompactRow struct {
	ID      int64            `json:"id"`
	Link    int64            `json:"link,omitempty"`
	Event   string           `json:"event"`
	Action  string           `json:"action"`
	Target  string           `json:"target"`
	Chance  int64            `json:"chance"`
	Phases  int64            `json:"phase_mask,omitempty"`
	Flags   int64            `json:"flags,omitempty"`
	Params  map[string]int64 `json:"params,omitempty"`
	Comment string           `json:"comment,omitempty"`
}

// CompactGroup lists the rows of key in compact form, ordered by id.
func (a *Analyzer) CompactGroup(ctx context.Context, key smartai.GroupKey) ([]CompactRow, error) {
	rows, err := a.fetch(ctx, key)
	if err != nil {
		a.reportError("fetch failed", key, err)
		return nil, fmt.Errorf("scripts %s: %w", key, err)
	}
	smartai.SortRows(rows)

	out := make([]CompactRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, Compact(r))
	}
	return out, nil
}

// Compact reduces one row.
func Compact(r smartai.ScriptRow) CompactRow {
	ev, _ := definitions.Lookup(definitions.KindEvent, r.EventType)
	act, _ := definitions.Lookup(definitions.KindAction, r.ActionType)
	tgt, _ := definitions.Lookup(definitions.KindTarget, r.TargetType)

	c := CompactRow{
		ID:      r.ID,
		Link:    r.Link,
		Event:   ev.Name,
		Action:  act.Name,
		Target:  tgt.Name,
		Chance:  r.EventChance,
		Phases:  r.EventPhaseMask,
		Flags:   r.EventFlags,
		Comment: r.Comment,
	}
	add := func(prefix string, def definitions.TypeDefinition, vals []int64) {
		for i, v := range vals {
			if v == 0 {
				continue
			}
			if c.Params == nil {
				c.Params = make(map[string]int64)
			}
			name := fmt.Sprintf("%s_param%d", prefix, i+1)
			if i < len(def.Params) {
				name = prefix + "." + def.Params[i].Name
			}
			c.Params[name] = v
		}
	}
	add("event", ev, r.EventParams[:])
	add("action", act, r.ActionParams[:])
	add("target", tgt, r.TargetParams[:])
	return c
}
