package smartai

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseSourceType(t *testing.T) {
	tests := []struct {
		in   string
		want SourceType
	}{
		{"0", SourceCreature},
		{"creature", SourceCreature},
		{"GameObject", SourceGameObject},
		{" areatrigger ", SourceAreaTrigger},
		{"tal", SourceTimedActionList},
		{"ActionList", SourceTimedActionList},
		{"9", SourceTimedActionList},
		{"12", SourceType(12)},
	}
	for _, tt := range tests {
		got, err := ParseSourceType(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseSourceType(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
	for _, bad := range []string{"", "npc", "-1"} {
		if _, err := ParseSourceType(bad); err == nil {
			t.Errorf("ParseSourceType(%q): expected error", bad)
		}
	}
}

func TestKeyStrings(t *testing.T) {
	k := RowKey{GroupKey: GroupKey{SourceType: SourceTimedActionList, EntryOrGuid: 44800}, ID: 3}
	if got := k.String(); got != "TimedActionList/44800#3" {
		t.Errorf("String = %q", got)
	}
	if got := SourceType(42).String(); got != "SourceType(42)" {
		t.Errorf("String = %q", got)
	}
}

func TestPhases(t *testing.T) {
	if diff := cmp.Diff([]int{1, 3}, Phases(0b101)); diff != "" {
		t.Errorf("Phases mismatch (-want +got):\n%s", diff)
	}
	if Phases(0) != nil {
		t.Error("Phases(0) should be empty")
	}
	if !PhasesOverlap(0, 4) || !PhasesOverlap(6, 2) || PhasesOverlap(1, 2) {
		t.Error("PhasesOverlap mismatch")
	}
}

func TestScriptGroupFind(t *testing.T) {
	key := GroupKey{SourceType: SourceCreature, EntryOrGuid: 448}
	g := NewScriptGroup(key, []ScriptRow{{ID: 5}, {ID: 0}, {ID: 2}})
	if g.Rows[0].ID != 0 || g.Rows[2].ID != 5 {
		t.Fatalf("rows not sorted: %+v", g.Rows)
	}
	if r, ok := g.Find(2); !ok || r.ID != 2 {
		t.Errorf("Find(2) = %+v, %v", r, ok)
	}
	if _, ok := g.Find(3); ok {
		t.Error("Find(3) should miss")
	}
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadRowsFileJSON(t *testing.T) {
	path := writeFile(t, "rows.json", `{"version": 1, "rows": [
		{"entryorguid": 448, "source_type": 0, "id": 1, "event_type": 61, "action_type": 24},
		{"entryorguid": 448, "source_type": 0, "id": 0, "link": 1, "event_type": 4, "event_chance": 50, "action_type": 11, "action_param1": 8599}
	]}`)

	rows, err := LoadRowsFile(path)
	if err != nil {
		t.Fatalf("LoadRowsFile: %v", err)
	}
	if len(rows) != 2 || rows[0].ID != 0 {
		t.Fatalf("rows = %+v", rows)
	}
	if rows[0].EventChance != 50 || rows[0].ActionParams[0] != 8599 || rows[0].Link != 1 {
		t.Errorf("row 0 = %+v", rows[0])
	}
	if rows[1].EventChance != 100 {
		t.Errorf("missing event_chance = %d, want 100", rows[1].EventChance)
	}
}

func TestLoadRowsFileYAML(t *testing.T) {
	path := writeFile(t, "rows.yaml", `version: 1
rows:
  - entryorguid: 1731
    source_type: 1
    id: 0
    event_type: 64
    action_type: 80
    action_param1: 173100
    comment: Copper Vein - On Gossip Hello - Run Script
`)

	rows, err := LoadRowsFile(path)
	if err != nil {
		t.Fatalf("LoadRowsFile: %v", err)
	}
	want := ScriptRow{
		SourceType: SourceGameObject, EntryOrGuid: 1731, EventType: 64, EventChance: 100,
		ActionType: 80, ActionParams: [6]int64{173100}, Comment: "Copper Vein - On Gossip Hello - Run Script",
	}
	if diff := cmp.Diff([]ScriptRow{want}, rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadRowsFileErrors(t *testing.T) {
	if _, err := LoadRowsFile(writeFile(t, "rows.json", `{"version": 2, "rows": []}`)); err == nil {
		t.Error("expected version error")
	}
	if _, err := LoadRowsFile(writeFile(t, "rows.json", `{`)); err == nil {
		t.Error("expected parse error")
	}
	if _, err := LoadRowsFile(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want not exist", err)
	}
}

func TestRepositoryErrorUnwraps(t *testing.T) {
	cause := errors.New("connection refused")
	err := error(&RepositoryError{Op: "fetch", Key: GroupKey{EntryOrGuid: 448}, Err: cause})
	if !errors.Is(err, cause) {
		t.Error("RepositoryError should unwrap to its cause")
	}
	if err.Error() != "repository fetch Creature/448: connection refused" {
		t.Errorf("Error = %q", err.Error())
	}
	if IsNotFound(err) {
		t.Error("RepositoryError is not a not-found error")
	}
}
