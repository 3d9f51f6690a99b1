package comment

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/AaronLay10/SaiScope/internal/definitions"
	"github.com/AaronLay10/SaiScope/internal/smartai"
)

type names map[string]string

func (n names) ResolveName(_ context.Context, role definitions.ParamRole, id int64) (string, bool, error) {
	name, ok := n[fmt.Sprintf("%s:%d", role, id)]
	return name, ok, nil
}

type failing struct{ calls atomic.Int32 }

func (f *failing) ResolveName(context.Context, definitions.ParamRole, int64) (string, bool, error) {
	f.calls.Add(1)
	return "", false, errors.New("connection refused")
}

// stuck ignores ctx and never answers until release is closed.
type stuck struct{ release chan struct{} }

func (s stuck) ResolveName(context.Context, definitions.ParamRole, int64) (string, bool, error) {
	<-s.release
	return "late", true, nil
}

func castRow() smartai.ScriptRow {
	return smartai.ScriptRow{
		SourceType:   smartai.SourceCreature,
		EntryOrGuid:  448,
		EventType:    4,
		EventChance:  100,
		ActionType:   11,
		ActionParams: [6]int64{8599},
		TargetType:   definitions.TargetSelf,
	}
}

func TestDescribeResolved(t *testing.T) {
	got := Describe(context.Background(), castRow(), names{"spell:8599": "Enrage"})

	want := Result{Text: "AGGRO() - CAST(spell='Enrage',castFlags=0,triggerFlags=0,limitTargets=0) SELF()"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Describe mismatch (-want +got):\n%s", diff)
	}
}

func TestDescribeUnresolvedKeepsRawID(t *testing.T) {
	got := Describe(context.Background(), castRow(), names{})

	want := Result{
		Text:       "AGGRO() - CAST(spell=8599,castFlags=0,triggerFlags=0,limitTargets=0) SELF()",
		Unresolved: []string{"spell:8599"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Describe mismatch (-want +got):\n%s", diff)
	}
}

func TestDescribeNilResolver(t *testing.T) {
	got := Describe(context.Background(), castRow(), nil)
	if got.Partial {
		t.Error("nil resolver should not mark the result partial")
	}
	if diff := cmp.Diff([]string{"spell:8599"}, got.Unresolved); diff != "" {
		t.Errorf("Unresolved mismatch (-want +got):\n%s", diff)
	}
}

func TestDescribeUnknownCodes(t *testing.T) {
	row := castRow()
	row.EventType = 999
	row.ActionType = 777
	row.TargetType = 555

	got := Describe(context.Background(), row, nil)
	if got.Text != "Unknown(999) - Unknown(777) Unknown(555)" {
		t.Errorf("Text = %q", got.Text)
	}
}

func TestDescribeFormatsParams(t *testing.T) {
	row := smartai.ScriptRow{
		SourceType:   smartai.SourceCreature,
		EntryOrGuid:  448,
		EventType:    definitions.EventUpdateIC,
		EventParams:  [6]int64{1000, 2000, 5000, 7000},
		ActionType:   18,
		ActionParams: [6]int64{0x102},
		TargetType:   2,
	}
	got := Describe(context.Background(), row, nil)
	want := "UPDATE_IC(initialMin=1000ms,initialMax=2000ms,repeatMin=5000ms,repeatMax=7000ms) - " +
		"SET_UNIT_FLAG(flags=Not Attackable|Immune To Players,type=0) VICTIM()"
	if got.Text != want {
		t.Errorf("Text = %q, want %q", got.Text, want)
	}
}

func TestDescribeNeverResolvesZero(t *testing.T) {
	f := &failing{}
	row := castRow()
	row.ActionParams[0] = 0

	got := Describe(context.Background(), row, f)
	if f.calls.Load() != 0 {
		t.Errorf("resolver called %d times for id 0", f.calls.Load())
	}
	if got.Partial || len(got.Unresolved) != 0 {
		t.Errorf("got %+v, want a complete result", got)
	}
}

func TestDescribeResolverErrorIsPartial(t *testing.T) {
	got := Describe(context.Background(), castRow(), &failing{})
	if !got.Partial {
		t.Error("expected Partial on resolver error")
	}
	if got.Text != "AGGRO() - CAST(spell=8599,castFlags=0,triggerFlags=0,limitTargets=0) SELF()" {
		t.Errorf("Text = %q", got.Text)
	}
}

func TestDescribeResolverTimeout(t *testing.T) {
	s := stuck{release: make(chan struct{})}
	defer close(s.release)

	g := New(Options{ResolverTimeout: 20 * time.Millisecond})
	start := time.Now()
	got := g.Describe(context.Background(), castRow(), s)

	if !got.Partial {
		t.Error("expected Partial on timeout")
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("Describe took %s with a stuck resolver", elapsed)
	}
}

func TestDescribeBatchIndependentOfWorkers(t *testing.T) {
	resolver := names{"spell:100": "Frostbolt", "creature:7": "Kobold"}
	var rows []smartai.ScriptRow
	for id := int64(0); id < 40; id++ {
		r := castRow()
		r.ID = id
		r.ActionParams[0] = 100 + id%3
		if id%5 == 0 {
			r.ActionType = 12
			r.ActionParams = [6]int64{7, 1, 30000}
		}
		rows = append(rows, r)
	}

	serial := New(Options{Workers: 1}).DescribeBatch(context.Background(), rows, resolver)
	parallel := New(Options{Workers: 8}).DescribeBatch(context.Background(), rows, resolver)

	if len(serial) != len(rows) {
		t.Fatalf("got %d results, want %d", len(serial), len(rows))
	}
	if diff := cmp.Diff(serial, parallel); diff != "" {
		t.Errorf("worker count changed output (-1 worker +8 workers):\n%s", diff)
	}
}

func TestDescribeBatchFirstDuplicateWins(t *testing.T) {
	a := castRow()
	b := castRow()
	b.ActionType = 999

	got := Texts(DescribeBatch(context.Background(), []smartai.ScriptRow{a, b}, nil))
	if len(got) != 1 {
		t.Fatalf("got %d results, want 1", len(got))
	}
	if got[a.Key()] != Describe(context.Background(), a, nil).Text {
		t.Errorf("duplicate key should keep the first row, got %q", got[a.Key()])
	}
}

func hogger(id int64) smartai.ScriptRow {
	return smartai.ScriptRow{SourceType: smartai.SourceCreature, EntryOrGuid: 448, ID: id, EventChance: 100, TargetType: definitions.TargetSelf}
}

func TestNarrate(t *testing.T) {
	resolver := names{"spell:8599": "Enrage", "creature:46": "Murloc Forager"}

	talk := hogger(0)
	talk.EventType = 4
	talk.ActionType = 1
	talk.EventPhaseMask = 1
	talk.EventFlags = smartai.EventFlagNotRepeatable

	flags := hogger(1)
	flags.EventType = 25
	flags.ActionType = 18
	flags.ActionParams[0] = 0x102

	despawn := hogger(2)
	despawn.EventType = 6
	despawn.ActionType = 41
	despawn.ActionParams[0] = 5000
	despawn.EventFlags = smartai.EventFlagNormalDungeon | smartai.EventFlagHeroicDungeon | smartai.EventFlagNormalRaid | smartai.EventFlagHeroicRaid

	follow := hogger(3)
	follow.EventType = 6
	follow.ActionType = 29
	follow.TargetType = 0

	summon := hogger(4)
	summon.EventType = 8
	summon.EventParams[0] = 8599
	summon.ActionType = 12
	summon.ActionParams[0] = 46
	summon.EventFlags = smartai.EventFlagHeroicDungeon | smartai.EventFlagNormalRaid | smartai.EventFlagDebugOnly

	group := []smartai.ScriptRow{talk, flags, despawn, follow, summon}
	got := New(Options{}).NarrateGroup(context.Background(), group, "Hogger", resolver)

	want := map[smartai.RowKey]string{
		talk.Key():    "Hogger - On Aggro - Say Line 0 (Phase 1) (No Repeat)",
		flags.Key():   "Hogger - On Reset - Set Flags Not Attackable & Immune To Players",
		despawn.Key(): "Hogger - On Just Died - Despawn In 5000 ms (Dungeon & Raid)",
		follow.Key():  "Hogger - On Just Died - Stop Follow",
		summon.Key():  "Hogger - On Spellhit 'Enrage' - Summon Creature 'Murloc Forager' (Heroic Dungeon) (Normal Raid) (Debug)",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("NarrateGroup mismatch (-want +got):\n%s", diff)
	}
}

func TestNarrateLinkInheritsEvent(t *testing.T) {
	health := hogger(0)
	health.EventType = 2
	health.EventParams = [6]int64{0, 30}
	health.EventPhaseMask = 5
	health.Link = 1
	health.ActionType = 1

	cast := hogger(1)
	cast.EventType = definitions.EventLink
	cast.ActionType = 11
	cast.ActionParams[0] = 8599

	group := []smartai.ScriptRow{health, cast}
	got := Narrate(context.Background(), group, cast, "Hogger", names{"spell:8599": "Enrage"})

	want := "Hogger - Between 0-30% Health - Cast 'Enrage' (Phases 1 & 3)"
	if got != want {
		t.Errorf("Narrate = %q, want %q", got, want)
	}
}

func TestNarrateLinkThroughLinkRows(t *testing.T) {
	aggro := hogger(0)
	aggro.EventType = 4
	aggro.Link = 1
	mid := hogger(1)
	mid.EventType = definitions.EventLink
	mid.Link = 2
	last := hogger(2)
	last.EventType = definitions.EventLink
	last.ActionType = 1
	last.ActionParams[0] = 3

	got := Narrate(context.Background(), []smartai.ScriptRow{aggro, mid, last}, last, "Hogger", nil)
	if got != "Hogger - On Aggro - Say Line 3" {
		t.Errorf("Narrate = %q", got)
	}
}

func TestNarrateMissingLink(t *testing.T) {
	orphan := hogger(5)
	orphan.EventType = definitions.EventLink
	orphan.ActionType = 1

	got := Narrate(context.Background(), []smartai.ScriptRow{orphan}, orphan, "Hogger", nil)
	if got != "Hogger - MISSING LINK - Say Line 0" {
		t.Errorf("Narrate = %q", got)
	}
}

func TestNarrateSourcePrefixes(t *testing.T) {
	tests := []struct {
		name string
		row  smartai.ScriptRow
		want string
	}{
		{
			name: "timed action list",
			row:  smartai.ScriptRow{SourceType: smartai.SourceTimedActionList, EntryOrGuid: 44800, ActionType: 1, ActionParams: [6]int64{2}},
			want: "Hogger - Actionlist - Say Line 2",
		},
		{
			name: "areatrigger",
			row:  smartai.ScriptRow{SourceType: smartai.SourceAreaTrigger, EntryOrGuid: 4422, EventType: 46, ActionType: 15, ActionParams: [6]int64{1}},
			want: "Areatrigger - On Trigger - Quest Credit 'Quest 1'",
		},
		{
			name: "areatrigger wrong event",
			row:  smartai.ScriptRow{SourceType: smartai.SourceAreaTrigger, EntryOrGuid: 4422, EventType: 4, ActionType: 27},
			want: "Areatrigger - INCORRECT EVENT TYPE - Stop Combat",
		},
		{
			name: "unknown event and action",
			row:  smartai.ScriptRow{SourceType: smartai.SourceCreature, EntryOrGuid: 448, EventType: 250, ActionType: 250},
			want: "Hogger - [Unknown Event 250] - [Unknown Action 250]",
		},
		{
			name: "unsupported source",
			row:  smartai.ScriptRow{SourceType: smartai.SourceSpell, EntryOrGuid: 1, EventType: 4, ActionType: 27},
			want: "Hogger - [Unknown source type 6] - Stop Combat",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Narrate(context.Background(), []smartai.ScriptRow{tt.row}, tt.row, "Hogger", nil)
			if got != tt.want {
				t.Errorf("Narrate = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExpand(t *testing.T) {
	got := expand("a {x} b {y}{z", func(tok string) string { return "<" + tok + ">" })
	if got != "a <x> b <y>{z" {
		t.Errorf("expand = %q", got)
	}
}
