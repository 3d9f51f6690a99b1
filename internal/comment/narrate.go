package comment

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/AaronLay10/SaiScope/internal/definitions"
	"github.com/AaronLay10/SaiScope/internal/smartai"
)

// MissingLink replaces {prev} when no row links to a LINK row.
const MissingLink = "MISSING LINK"

// Fallback names used when a foreign id cannot be resolved.
var fallbackNames = map[definitions.ParamRole]string{
	definitions.RoleSpell:          "Spell",
	definitions.RoleCreature:       "Creature",
	definitions.RoleCreatureGUID:   "Creature GUID",
	definitions.RoleGameObject:     "Gameobject",
	definitions.RoleGameObjectGUID: "Gameobject GUID",
	definitions.RoleItem:           "Item",
	definitions.RoleQuest:          "Quest",
}

// Narrate renders row as "<entity> - <event> - <action><suffixes>", the
// comment style used by database editors. group holds every row of the
// row's group and is used to find the row that links to it.
func Narrate(ctx context.Context, group []smartai.ScriptRow, row smartai.ScriptRow, entityName string, r NameResolver) string {
	return (*Generator)(nil).Narrate(ctx, group, row, entityName, r)
}

// Narrate is the Generator form of the package level Narrate.
func (g *Generator) Narrate(ctx context.Context, group []smartai.ScriptRow, row smartai.ScriptRow, entityName string, r NameResolver) string {
	n := &narrator{g: g, ctx: ctx, r: r, row: row, eventRow: row}
	link, linked := linkSource(group, row)
	if linked && row.EventType == definitions.EventLink {
		n.eventRow = link
	}
	n.eventDef, _ = definitions.Lookup(definitions.KindEvent, n.eventRow.EventType)
	n.actionDef, _ = definitions.Lookup(definitions.KindAction, row.ActionType)
	n.targetDef, _ = definitions.Lookup(definitions.KindTarget, row.TargetType)

	flagsRow := row
	if linked {
		flagsRow = link
	}
	return n.eventLine(entityName, linked) + " - " + n.actionLine() + suffixes(flagsRow.EventPhaseMask, flagsRow.EventFlags)
}

// linkSource finds the row whose link names row, skipping over LINK rows so
// the result carries a real event.
func linkSource(group []smartai.ScriptRow, row smartai.ScriptRow) (smartai.ScriptRow, bool) {
	seen := map[int64]bool{}
	cur := row
	for cur.ID != 0 && !seen[cur.ID] {
		seen[cur.ID] = true
		prev, ok := linkedFrom(group, cur)
		if !ok {
			return smartai.ScriptRow{}, false
		}
		if prev.EventType != definitions.EventLink {
			return prev, true
		}
		cur = prev
	}
	return smartai.ScriptRow{}, false
}

func linkedFrom(group []smartai.ScriptRow, row smartai.ScriptRow) (smartai.ScriptRow, bool) {
	for _, r := range group {
		if r.Link == row.ID && r.Group() == row.Group() {
			return r, true
		}
	}
	return smartai.ScriptRow{}, false
}

type narrator struct {
	g   *Generator
	ctx context.Context
	r   NameResolver

	row smartai.ScriptRow
	// eventRow supplies event params; it is the link source for LINK rows.
	eventRow  smartai.ScriptRow
	eventDef  definitions.TypeDefinition
	actionDef definitions.TypeDefinition
	targetDef definitions.TypeDefinition
}

func (n *narrator) eventLine(entityName string, linked bool) string {
	var line string
	switch n.row.SourceType {
	case smartai.SourceCreature, smartai.SourceGameObject:
		tmpl := n.templateOr(definitions.KindEvent, n.row.EventType, "[Unknown Event %d]")
		line = entityName + " - " + tmpl
	case smartai.SourceAreaTrigger:
		if n.row.EventType == 46 || n.row.EventType == definitions.EventLink {
			return "Areatrigger - On Trigger"
		}
		return "Areatrigger - INCORRECT EVENT TYPE"
	case smartai.SourceTimedActionList:
		return entityName + " - Actionlist"
	default:
		return fmt.Sprintf("%s - [Unknown source type %d]", entityName, n.row.SourceType)
	}

	if strings.Contains(line, "{prev}") {
		prev := MissingLink
		if linked {
			prev = n.eventDef.Template
		}
		line = strings.ReplaceAll(line, "{prev}", prev)
	}
	return expand(line, n.placeholder)
}

func (n *narrator) actionLine() string {
	tmpl := n.templateOr(definitions.KindAction, n.row.ActionType, "[Unknown Action %d]")
	return strings.TrimRight(expand(tmpl, n.placeholder), " ")
}

func (n *narrator) templateOr(kind definitions.Kind, code int64, format string) string {
	def, ok := definitions.Lookup(kind, code)
	if !ok || def.Template == "" {
		return fmt.Sprintf(format, code)
	}
	return def.Template
}

// placeholder expands the body of one {...} token.
func (n *narrator) placeholder(token string) string {
	verb, ref, hasRef := strings.Cut(token, ":")
	if !hasRef {
		if v, _, ok := n.param(token); ok {
			return strconv.FormatInt(v, 10)
		}
		return n.computed(token)
	}

	v, spec, ok := n.param(ref)
	if !ok {
		return "{" + token + "}"
	}
	role := definitions.ParamRole(verb)
	if role.IsForeign() {
		return n.name(role, v)
	}
	switch verb {
	case "wp":
		if v > 0 {
			return strconv.FormatInt(v, 10)
		}
		return "Any"
	case "label":
		if label, ok := spec.Labels[v]; ok {
			return label
		}
		return "[Unknown Value]"
	case "flags":
		names := definitions.FlagNames(spec.Labels, v)
		if len(names) > 1 {
			return "s " + strings.Join(names, " & ")
		}
		return " " + strings.Join(names, " & ")
	case "onoff":
		return pick(v == 1, "On", "Off")
	case "startstop":
		return pick(v == 0, "Stop", "Start")
	case "enable":
		return pick(v == 0, "Disable", "Enable")
	case "disable":
		return pick(v == 0, "Enable", "Disable")
	case "count":
		return strconv.FormatInt(v, 10) + pick(v > 1, " Times", " Time")
	}
	return "{" + token + "}"
}

// param reads a reference such as "e1", "a3" or "t2".
func (n *narrator) param(ref string) (int64, definitions.ParamSpec, bool) {
	if len(ref) != 2 || ref[1] < '1' || ref[1] > '6' {
		return 0, definitions.ParamSpec{}, false
	}
	i := int(ref[1] - '1')
	var (
		raw []int64
		def definitions.TypeDefinition
	)
	switch ref[0] {
	case 'e':
		raw, def = n.eventRow.EventParams[:], n.eventDef
	case 'a':
		raw, def = n.row.ActionParams[:], n.actionDef
	case 't':
		raw, def = n.row.TargetParams[:], n.targetDef
	default:
		return 0, definitions.ParamSpec{}, false
	}
	if i >= len(raw) {
		return 0, definitions.ParamSpec{}, false
	}
	var spec definitions.ParamSpec
	if i < len(def.Params) {
		spec = def.Params[i]
	}
	return raw[i], spec, true
}

func (n *narrator) computed(token string) string {
	p := n.row.ActionParams
	switch token {
	case "target":
		return n.target()
	case "random":
		vals := []string{strconv.FormatInt(p[0], 10), strconv.FormatInt(p[1], 10)}
		for _, v := range p[2:] {
			if v > 0 {
				vals = append(vals, strconv.FormatInt(v, 10))
			}
		}
		return strings.Join(vals, ", ")
	case "followstart":
		return pick(n.row.TargetType == 0, "Stop", "Start")
	case "orientation":
		switch n.row.TargetType {
		case definitions.TargetSelf:
			return "Home Position"
		case 8:
			return strconv.FormatFloat(n.row.TargetO, 'f', -1, 64)
		}
		return n.target()
	case "morph":
		return n.entryOrModel("Morph", "Demorph")
	case "mount":
		return n.entryOrModel("Mount", "Dismount")
	case "despawn":
		if p[0] > 2 {
			return fmt.Sprintf("In %d ms", p[0])
		}
		return "Instant"
	case "invincibility":
		switch {
		case p[0] > 0:
			return fmt.Sprintf("Set Invincibility Hp %d", p[0])
		case p[1] > 0:
			return fmt.Sprintf("Set Invincibility Hp %d%%", p[1])
		case p[0] == 0 && p[1] == 0:
			return "Reset Invincibility Hp"
		}
		return "[Unsupported parameters]"
	case "incdec":
		switch {
		case p[0] == 1:
			return "Increment"
		case p[1] == 1:
			return "Decrement"
		}
		return "Increment or Decrement"
	}
	return "{" + token + "}"
}

func (n *narrator) entryOrModel(verb, reset string) string {
	p := n.row.ActionParams
	switch {
	case p[0] > 0:
		return verb + " To Creature " + n.name(definitions.RoleCreature, p[0])
	case p[1] > 0:
		return fmt.Sprintf("%s To Model %d", verb, p[1])
	}
	return reset
}

func (n *narrator) target() string {
	if n.row.TargetType == 0 {
		return ""
	}
	if n.targetDef.IsUnknown() || n.targetDef.Template == "" {
		return "[unsupported target type]"
	}
	return expand(n.targetDef.Template, n.placeholder)
}

func (n *narrator) name(role definitions.ParamRole, id int64) string {
	if name, outcome := n.g.resolve(n.ctx, n.r, role, id); outcome == resolved {
		return name
	}
	return fmt.Sprintf("%s %d", fallbackNames[role], id)
}

// suffixes renders the phase and event flag annotations.
func suffixes(phaseMask, flags int64) string {
	var b strings.Builder
	if phases := smartai.Phases(phaseMask); len(phases) > 0 {
		parts := make([]string, len(phases))
		for i, p := range phases {
			parts[i] = strconv.Itoa(p)
		}
		fmt.Fprintf(&b, " (Phase%s %s)", pick(len(phases) > 1, "s", ""), strings.Join(parts, " & "))
	}
	if flags == 0 {
		return b.String()
	}
	if flags&smartai.EventFlagNotRepeatable != 0 {
		b.WriteString(" (No Repeat)")
	}

	nd := flags&smartai.EventFlagNormalDungeon != 0
	hd := flags&smartai.EventFlagHeroicDungeon != 0
	nr := flags&smartai.EventFlagNormalRaid != 0
	hr := flags&smartai.EventFlagHeroicRaid != 0
	if nd && hd && nr && hr {
		b.WriteString(" (Dungeon & Raid)")
	} else {
		switch {
		case nd && hd:
			b.WriteString(" (Dungeon)")
		case nd:
			b.WriteString(" (Normal Dungeon)")
		case hd:
			b.WriteString(" (Heroic Dungeon)")
		}
		switch {
		case nr && hr:
			b.WriteString(" (Raid)")
		case nr:
			b.WriteString(" (Normal Raid)")
		case hr:
			b.WriteString(" (Heroic Raid)")
		}
	}
	if flags&smartai.EventFlagDebugOnly != 0 {
		b.WriteString(" (Debug)")
	}
	return b.String()
}

// expand replaces every {token} in tmpl with fn(token).
func expand(tmpl string, fn func(token string) string) string {
	var b strings.Builder
	for {
		i := strings.IndexByte(tmpl, '{')
		if i < 0 {
			break
		}
		j := strings.IndexByte(tmpl[i:], '}')
		if j < 0 {
			break
		}
		b.WriteString(tmpl[:i])
		b.WriteString(fn(tmpl[i+1 : i+j]))
		tmpl = tmpl[i+j+1:]
	}
	b.WriteString(tmpl)
	return b.String()
}

func pick(cond bool, yes, no string) string {
	if cond {
		return yes
	}
	return no
}
