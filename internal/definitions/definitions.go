// Package definitions maps the numeric event, action and target codes of
// SmartAI rows to immutable descriptive schemas.
//
// The tables are built once at package initialization and never written
// afterwards, so every exported function is safe for unbounded concurrent use.
package definitions

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/AaronLay10/SaiScope/internal/smartai"
)

// Kind selects one of the three tables.
type Kind string

const (
	KindEvent  Kind = "event"
	KindAction Kind = "action"
	KindTarget Kind = "target"
)

// ParseKind accepts the kind names used by the CLI and HTTP API.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "event", "events":
		return KindEvent, nil
	case "action", "actions":
		return KindAction, nil
	case "target", "targets":
		return KindTarget, nil
	}
	return "", fmt.Errorf("unknown definition kind: %q", s)
}

// ParamRole is the semantic role of a parameter slot.
type ParamRole string

const (
	RolePlain          ParamRole = "plain"
	RoleEnum           ParamRole = "enum"
	RolePercent        ParamRole = "percent"
	RoleBool           ParamRole = "bool"
	RoleMillis         ParamRole = "millis"
	RoleFlags          ParamRole = "flags"
	RolePhaseMask      ParamRole = "phase_mask"
	RoleSpell          ParamRole = "spell"
	RoleCreature       ParamRole = "creature"
	RoleCreatureGUID   ParamRole = "creature_guid"
	RoleGameObject     ParamRole = "gameobject"
	RoleGameObjectGUID ParamRole = "gameobject_guid"
	RoleItem           ParamRole = "item"
	RoleQuest          ParamRole = "quest"
	RoleActionList     ParamRole = "action_list"
	RoleDataField      ParamRole = "data_field"
	RoleDataValue      ParamRole = "data_value"
)

// IsForeign reports whether values in this role are ids of other game
// entities whose names can be looked up.
func (r ParamRole) IsForeign() bool {
	switch r {
	case RoleSpell, RoleCreature, RoleCreatureGUID, RoleGameObject, RoleGameObjectGUID, RoleItem, RoleQuest:
		return true
	}
	return false
}

// ParamSpec describes one parameter slot.
type ParamSpec struct {
	Name   string           `json:"name"`
	Role   ParamRole        `json:"role"`
	Labels map[int64]string `json:"labels,omitempty"`
}

// TypeDefinition describes one event, action or target code.
type TypeDefinition struct {
	Kind        Kind        `json:"kind"`
	Code        int64       `json:"code"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Template    string      `json:"template,omitempty"`
	Params      []ParamSpec `json:"params"`
	// Chainable events run back to back inside timed action lists.
	Chainable bool `json:"chainable,omitempty"`
	unknown   bool
}

// IsUnknown reports whether this is the placeholder for an unmapped code.
func (d TypeDefinition) IsUnknown() bool {
	return d.unknown
}

// Unknown returns the placeholder definition for an unmapped code.
func Unknown(kind Kind, code int64) TypeDefinition {
	return TypeDefinition{
		Kind:        kind,
		Code:        code,
		Name:        fmt.Sprintf("Unknown(%d)", code),
		Description: fmt.Sprintf("unmapped %s type %d", kind, code),
		unknown:     true,
	}
}

var tables = map[Kind]map[int64]TypeDefinition{
	KindEvent:  index(KindEvent, eventDefs),
	KindAction: index(KindAction, actionDefs),
	KindTarget: index(KindTarget, targetDefs),
}

func index(kind Kind, defs []TypeDefinition) map[int64]TypeDefinition {
	m := make(map[int64]TypeDefinition, len(defs))
	for _, d := range defs {
		if _, dup := m[d.Code]; dup {
			panic(fmt.Sprintf("definitions: duplicate %s code %d", kind, d.Code))
		}
		d.Kind = kind
		m[d.Code] = d
	}
	return m
}

// Lookup returns the definition for code. Unmapped codes yield the Unknown
// placeholder and false.
func Lookup(kind Kind, code int64) (TypeDefinition, bool) {
	if d, ok := tables[kind][code]; ok {
		return d.clone(), true
	}
	return Unknown(kind, code), false
}

// All returns every definition of kind ordered by code.
func All(kind Kind) []TypeDefinition {
	out := make([]TypeDefinition, 0, len(tables[kind]))
	for _, d := range tables[kind] {
		out = append(out, d.clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

func (d TypeDefinition) clone() TypeDefinition {
	d.Params = append([]ParamSpec(nil), d.Params...)
	for i, p := range d.Params {
		if p.Labels == nil {
			continue
		}
		labels := make(map[int64]string, len(p.Labels))
		for k, v := range p.Labels {
			labels[k] = v
		}
		d.Params[i].Labels = labels
	}
	return d
}

// DescribeParam formats a raw parameter value according to its spec.
// paramIndex is zero based. Unknown codes and out of range slots render the
// raw decimal value.
func DescribeParam(kind Kind, code int64, paramIndex int, raw int64) string {
	d, ok := tables[kind][code]
	if !ok || paramIndex < 0 || paramIndex >= len(d.Params) {
		return strconv.FormatInt(raw, 10)
	}
	return FormatValue(d.Params[paramIndex], raw)
}

// FormatValue formats raw according to spec without any name resolution.
func FormatValue(spec ParamSpec, raw int64) string {
	switch spec.Role {
	case RoleEnum:
		if label, ok := spec.Labels[raw]; ok {
			return label
		}
	case RolePercent:
		return strconv.FormatInt(raw, 10) + "%"
	case RoleBool:
		if raw != 0 {
			return "true"
		}
		return "false"
	case RoleMillis:
		return strconv.FormatInt(raw, 10) + "ms"
	case RolePhaseMask:
		return formatPhaseMask(raw)
	case RoleFlags:
		return formatFlags(spec.Labels, raw)
	}
	return strconv.FormatInt(raw, 10)
}

func formatPhaseMask(mask int64) string {
	if mask == 0 {
		return "all"
	}
	phases := smartai.Phases(mask)
	parts := make([]string, len(phases))
	for i, p := range phases {
		parts[i] = strconv.Itoa(p)
	}
	return "phases " + strings.Join(parts, "&")
}

// formatFlags joins the labels of every set bit with "|". Bits without a
// label are appended as a hex remainder.
func formatFlags(labels map[int64]string, raw int64) string {
	if raw == 0 || len(labels) == 0 {
		return strconv.FormatInt(raw, 10)
	}
	bits := make([]int64, 0, len(labels))
	for bit := range labels {
		bits = append(bits, bit)
	}
	sort.Slice(bits, func(i, j int) bool { return bits[i] < bits[j] })

	var parts []string
	rest := raw
	for _, bit := range bits {
		if raw&bit != 0 {
			parts = append(parts, labels[bit])
			rest &^= bit
		}
	}
	if rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%X", rest))
	}
	return strings.Join(parts, "|")
}

// FlagNames returns the labels of every set bit in raw, ordered by bit.
func FlagNames(labels map[int64]string, raw int64) []string {
	bits := make([]int64, 0, len(labels))
	for bit := range labels {
		bits = append(bits, bit)
	}
	sort.Slice(bits, func(i, j int) bool { return bits[i] < bits[j] })

	var out []string
	for _, bit := range bits {
		if raw&bit != 0 {
			out = append(out, labels[bit])
		}
	}
	return out
}

// param and the helpers below keep the tables compact.
func param(name string, role ParamRole) ParamSpec {
	return ParamSpec{Name: name, Role: role}
}

func plain(names ...string) []ParamSpec {
	out := make([]ParamSpec, len(names))
	for i, n := range names {
		out[i] = param(n, RolePlain)
	}
	return out
}

func enum(name string, labels map[int64]string) ParamSpec {
	return ParamSpec{Name: name, Role: RoleEnum, Labels: labels}
}

func flags(name string, labels map[int64]string) ParamSpec {
	return ParamSpec{Name: name, Role: RoleFlags, Labels: labels}
}

func params(specs ...ParamSpec) []ParamSpec {
	return specs
}

func concat(groups ...[]ParamSpec) []ParamSpec {
	var out []ParamSpec
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// repeat is the common (min, max) timer pair.
func repeat(prefix string) []ParamSpec {
	return params(param(prefix+"Min", RoleMillis), param(prefix+"Max", RoleMillis))
}
