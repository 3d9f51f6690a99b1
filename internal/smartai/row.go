// Package smartai holds the row model of the smart_scripts table and the
// identities used to address groups and rows across the analyzer.
package smartai

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// SourceType is the category of entity a script row belongs to.
type SourceType int

const (
	SourceCreature        SourceType = 0
	SourceGameObject      SourceType = 1
	SourceAreaTrigger     SourceType = 2
	SourceEvent           SourceType = 3
	SourceGossip          SourceType = 4
	SourceQuest           SourceType = 5
	SourceSpell           SourceType = 6
	SourceTransport       SourceType = 7
	SourceInstance        SourceType = 8
	SourceTimedActionList SourceType = 9
)

var sourceTypeNames = map[SourceType]string{
	SourceCreature:        "Creature",
	SourceGameObject:      "GameObject",
	SourceAreaTrigger:     "AreaTrigger",
	SourceEvent:           "Event",
	SourceGossip:          "Gossip",
	SourceQuest:           "Quest",
	SourceSpell:           "Spell",
	SourceTransport:       "Transport",
	SourceInstance:        "Instance",
	SourceTimedActionList: "TimedActionList",
}

func (s SourceType) String() string {
	if name, ok := sourceTypeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("SourceType(%d)", int(s))
}

// ParseSourceType accepts a numeric source type or a name such as
// "creature" or "TimedActionList". "tal" and "actionlist" name source 9.
func ParseSourceType(s string) (SourceType, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 {
			return 0, fmt.Errorf("invalid source type %d", n)
		}
		return SourceType(n), nil
	}
	switch strings.ToLower(s) {
	case "tal", "actionlist":
		return SourceTimedActionList, nil
	}
	for st, name := range sourceTypeNames {
		if strings.EqualFold(name, s) {
			return st, nil
		}
	}
	return 0, fmt.Errorf("unknown source type %q", s)
}

// Event flags stored in event_flags.
const (
	EventFlagNotRepeatable int64 = 0x01
	EventFlagNormalDungeon int64 = 0x02
	EventFlagHeroicDungeon int64 = 0x04
	EventFlagNormalRaid    int64 = 0x08
	EventFlagHeroicRaid    int64 = 0x10
	EventFlagDebugOnly     int64 = 0x80
)

const (
	maxPhaseBits       = 9
	defaultEventChance = 100
)

// GroupKey identifies all rows sharing (source_type, entryorguid).
type GroupKey struct {
	SourceType  SourceType `json:"source_type"`
	EntryOrGuid int64      `json:"entryorguid"`
}

func (k GroupKey) String() string {
	return fmt.Sprintf("%s/%d", k.SourceType, k.EntryOrGuid)
}

// Less orders keys by source type, then entry.
func (k GroupKey) Less(o GroupKey) bool {
	if k.SourceType != o.SourceType {
		return k.SourceType < o.SourceType
	}
	return k.EntryOrGuid < o.EntryOrGuid
}

// RowKey identifies a single row. (source_type, entryorguid, id) is unique.
type RowKey struct {
	GroupKey
	ID int64 `json:"id"`
}

func (k RowKey) String() string {
	return fmt.Sprintf("%s#%d", k.GroupKey, k.ID)
}

// Less orders keys by group, then id.
func (k RowKey) Less(o RowKey) bool {
	if k.GroupKey != o.GroupKey {
		return k.GroupKey.Less(o.GroupKey)
	}
	return k.ID < o.ID
}

// ScriptRow is one (event, action, target) behavior rule.
type ScriptRow struct {
	SourceType     SourceType
	EntryOrGuid    int64
	ID             int64
	Link           int64
	EventType      int64
	EventPhaseMask int64
	EventChance    int64
	EventFlags     int64
	EventParams    [6]int64
	ActionType     int64
	ActionParams   [6]int64
	TargetType     int64
	TargetParams   [4]int64
	TargetX        float64
	TargetY        float64
	TargetZ        float64
	TargetO        float64
	Comment        string
}

// Key returns the unique identity of the row.
func (r ScriptRow) Key() RowKey {
	return RowKey{GroupKey: r.Group(), ID: r.ID}
}

// Group returns the identity of the group the row belongs to.
func (r ScriptRow) Group() GroupKey {
	return GroupKey{SourceType: r.SourceType, EntryOrGuid: r.EntryOrGuid}
}

// NotRepeatable reports whether the row fires at most once.
func (r ScriptRow) NotRepeatable() bool {
	return r.EventFlags&EventFlagNotRepeatable != 0
}

// PhasesOverlap reports whether two phase masks can be active together.
// A zero mask matches every phase.
func PhasesOverlap(a, b int64) bool {
	if a == 0 || b == 0 {
		return true
	}
	return a&b != 0
}

// Phases returns the 1-based phase numbers set in mask.
func Phases(mask int64) []int {
	var out []int
	for i := 0; i < maxPhaseBits; i++ {
		if mask&(1<<i) != 0 {
			out = append(out, i+1)
		}
	}
	return out
}

// ScriptGroup is every row sharing a GroupKey, ordered by id.
type ScriptGroup struct {
	Key  GroupKey
	Rows []ScriptRow
}

// NewScriptGroup copies rows and sorts them by ascending id.
func NewScriptGroup(key GroupKey, rows []ScriptRow) ScriptGroup {
	cpy := append([]ScriptRow(nil), rows...)
	SortRows(cpy)
	return ScriptGroup{Key: key, Rows: cpy}
}

// SortRows sorts rows in place by group then id.
func SortRows(rows []ScriptRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Key().Less(rows[j].Key())
	})
}

// Find returns the row with the given id.
func (g ScriptGroup) Find(id int64) (ScriptRow, bool) {
	i := sort.Search(len(g.Rows), func(i int) bool { return g.Rows[i].ID >= id })
	if i < len(g.Rows) && g.Rows[i].ID == id {
		return g.Rows[i], true
	}
	return ScriptRow{}, false
}

// rowWire is the flat column layout used by exports and the HTTP API.
type rowWire struct {
	EntryOrGuid    int64   `json:"entryorguid" yaml:"entryorguid"`
	SourceType     int     `json:"source_type" yaml:"source_type"`
	ID             int64   `json:"id" yaml:"id"`
	Link           int64   `json:"link" yaml:"link"`
	EventType      int64   `json:"event_type" yaml:"event_type"`
	EventPhaseMask int64   `json:"event_phase_mask" yaml:"event_phase_mask"`
	EventChance    *int64  `json:"event_chance,omitempty" yaml:"event_chance,omitempty"`
	EventFlags     int64   `json:"event_flags" yaml:"event_flags"`
	EventParam1    int64   `json:"event_param1" yaml:"event_param1"`
	EventParam2    int64   `json:"event_param2" yaml:"event_param2"`
	EventParam3    int64   `json:"event_param3" yaml:"event_param3"`
	EventParam4    int64   `json:"event_param4" yaml:"event_param4"`
	EventParam5    int64   `json:"event_param5" yaml:"event_param5"`
	EventParam6    int64   `json:"event_param6" yaml:"event_param6"`
	ActionType     int64   `json:"action_type" yaml:"action_type"`
	ActionParam1   int64   `json:"action_param1" yaml:"action_param1"`
	ActionParam2   int64   `json:"action_param2" yaml:"action_param2"`
	ActionParam3   int64   `json:"action_param3" yaml:"action_param3"`
	ActionParam4   int64   `json:"action_param4" yaml:"action_param4"`
	ActionParam5   int64   `json:"action_param5" yaml:"action_param5"`
	ActionParam6   int64   `json:"action_param6" yaml:"action_param6"`
	TargetType     int64   `json:"target_type" yaml:"target_type"`
	TargetParam1   int64   `json:"target_param1" yaml:"target_param1"`
	TargetParam2   int64   `json:"target_param2" yaml:"target_param2"`
	TargetParam3   int64   `json:"target_param3" yaml:"target_param3"`
	TargetParam4   int64   `json:"target_param4" yaml:"target_param4"`
	TargetX        float64 `json:"target_x" yaml:"target_x"`
	TargetY        float64 `json:"target_y" yaml:"target_y"`
	TargetZ        float64 `json:"target_z" yaml:"target_z"`
	TargetO        float64 `json:"target_o" yaml:"target_o"`
	Comment        string  `json:"comment" yaml:"comment"`
}

func (r ScriptRow) toWire() rowWire {
	chance := r.EventChance
	return rowWire{
		EntryOrGuid:    r.EntryOrGuid,
		SourceType:     int(r.SourceType),
		ID:             r.ID,
		Link:           r.Link,
		EventType:      r.EventType,
		EventPhaseMask: r.EventPhaseMask,
		EventChance:    &chance,
		EventFlags:     r.EventFlags,
		EventParam1:    r.EventParams[0],
		EventParam2:    r.EventParams[1],
		EventParam3:    r.EventParams[2],
		EventParam4:    r.EventParams[3],
		EventParam5:    r.EventParams[4],
		EventParam6:    r.EventParams[5],
		ActionType:     r.ActionType,
		ActionParam1:   r.ActionParams[0],
		ActionParam2:   r.ActionParams[1],
		ActionParam3:   r.ActionParams[2],
		ActionParam4:   r.ActionParams[3],
		ActionParam5:   r.ActionParams[4],
		ActionParam6:   r.ActionParams[5],
		TargetType:     r.TargetType,
		TargetParam1:   r.TargetParams[0],
		TargetParam2:   r.TargetParams[1],
		TargetParam3:   r.TargetParams[2],
		TargetParam4:   r.TargetParams[3],
		TargetX:        r.TargetX,
		TargetY:        r.TargetY,
		TargetZ:        r.TargetZ,
		TargetO:        r.TargetO,
		Comment:        r.Comment,
	}
}

func (w rowWire) toRow() ScriptRow {
	// A missing event_chance column means the table default.
	chance := int64(defaultEventChance)
	if w.EventChance != nil {
		chance = *w.EventChance
	}
	return ScriptRow{
		SourceType:     SourceType(w.SourceType),
		EntryOrGuid:    w.EntryOrGuid,
		ID:             w.ID,
		Link:           w.Link,
		EventType:      w.EventType,
		EventPhaseMask: w.EventPhaseMask,
		EventChance:    chance,
		EventFlags:     w.EventFlags,
		EventParams:    [6]int64{w.EventParam1, w.EventParam2, w.EventParam3, w.EventParam4, w.EventParam5, w.EventParam6},
		ActionType:     w.ActionType,
		ActionParams:   [6]int64{w.ActionParam1, w.ActionParam2, w.ActionParam3, w.ActionParam4, w.ActionParam5, w.ActionParam6},
		TargetType:     w.TargetType,
		TargetParams:   [4]int64{w.TargetParam1, w.TargetParam2, w.TargetParam3, w.TargetParam4},
		TargetX:        w.TargetX,
		TargetY:        w.TargetY,
		TargetZ:        w.TargetZ,
		TargetO:        w.TargetO,
		Comment:        w.Comment,
	}
}

// MarshalJSON writes the row using smart_scripts column names.
func (r ScriptRow) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.toWire())
}

// UnmarshalJSON reads a row keyed by smart_scripts column names.
func (r *ScriptRow) UnmarshalJSON(data []byte) error {
	var w rowWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*r = w.toRow()
	return nil
}
