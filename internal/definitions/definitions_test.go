package definitions

import (
	"sync"
	"testing"

	"github.com/AaronLay10/SaiScope/internal/smartai"
)

func TestLookupKnownCodes(t *testing.T) {
	cases := []struct {
		kind Kind
		code int64
		name string
	}{
		{KindEvent, EventDataSet, "DATA_SET"},
		{KindEvent, EventLink, "LINK"},
		{KindEvent, 4, "AGGRO"},
		{KindEvent, 25, "RESET"},
		{KindAction, ActionSetData, "SET_DATA"},
		{KindAction, ActionCallTimedActionList, "CALL_TIMED_ACTIONLIST"},
		{KindAction, 11, "CAST"},
		{KindTarget, TargetSelf, "SELF"},
		{KindTarget, TargetCreatureGUID, "CREATURE_GUID"},
	}

	for _, tc := range cases {
		d, ok := Lookup(tc.kind, tc.code)
		if !ok {
			t.Errorf("Lookup(%s, %d) not found", tc.kind, tc.code)
			continue
		}
		if d.Name != tc.name {
			t.Errorf("Lookup(%s, %d).Name = %q, want %q", tc.kind, tc.code, d.Name, tc.name)
		}
		if d.Kind != tc.kind {
			t.Errorf("Lookup(%s, %d).Kind = %q", tc.kind, tc.code, d.Kind)
		}
		if d.IsUnknown() {
			t.Errorf("Lookup(%s, %d) returned unknown placeholder", tc.kind, tc.code)
		}
	}
}

func TestLookupUnknownCode(t *testing.T) {
	d, ok := Lookup(KindAction, 9999)
	if ok {
		t.Fatal("expected unknown code to report false")
	}
	if !d.IsUnknown() {
		t.Error("expected IsUnknown")
	}
	if d.Name != "Unknown(9999)" {
		t.Errorf("Name = %q, want Unknown(9999)", d.Name)
	}
	if len(d.Params) != 0 {
		t.Errorf("unknown definition has %d params", len(d.Params))
	}
}

func TestLookupReturnsCopy(t *testing.T) {
	d, _ := Lookup(KindAction, 11)
	d.Params[0].Name = "mutated"

	d.Params[1].Labels[0x02] = "mutated"
	delete(d.Params[1].Labels, 0x01)

	again, _ := Lookup(KindAction, 11)
	if again.Params[0].Name != "spell" {
		t.Errorf("table was mutated through a lookup result: %q", again.Params[0].Name)
	}
	if again.Params[1].Labels[0x02] != "Triggered" || again.Params[1].Labels[0x01] != "Interrupt Previous" {
		t.Errorf("castFlags labels were mutated through a lookup result: %v", again.Params[1].Labels)
	}

	for _, d := range All(KindAction) {
		if d.Code == 11 {
			d.Params[1].Labels[0x40] = "mutated"
		}
	}
	if got := DescribeParam(KindAction, 11, 1, 0x40); got != "Combat Move" {
		t.Errorf("DescribeParam after mutating All result = %q", got)
	}
}

func TestChainableEvents(t *testing.T) {
	for _, d := range All(KindEvent) {
		want := d.Code == EventUpdateIC || d.Code == EventUpdateOOC || d.Code == EventUpdate
		if d.Chainable != want {
			t.Errorf("event %d (%s) Chainable = %v, want %v", d.Code, d.Name, d.Chainable, want)
		}
	}
}

func TestAllSortedByCode(t *testing.T) {
	for _, kind := range []Kind{KindEvent, KindAction, KindTarget} {
		defs := All(kind)
		if len(defs) == 0 {
			t.Fatalf("All(%s) is empty", kind)
		}
		for i := 1; i < len(defs); i++ {
			if defs[i-1].Code >= defs[i].Code {
				t.Errorf("All(%s) not sorted at %d: %d >= %d", kind, i, defs[i-1].Code, defs[i].Code)
			}
		}
	}
}

func TestGraphParamRoles(t *testing.T) {
	setData, _ := Lookup(KindAction, ActionSetData)
	if setData.Params[0].Role != RoleDataField || setData.Params[1].Role != RoleDataValue {
		t.Errorf("SET_DATA roles = %v, %v", setData.Params[0].Role, setData.Params[1].Role)
	}

	dataSet, _ := Lookup(KindEvent, EventDataSet)
	if dataSet.Params[0].Role != RoleDataField || dataSet.Params[1].Role != RoleDataValue {
		t.Errorf("DATA_SET roles = %v, %v", dataSet.Params[0].Role, dataSet.Params[1].Role)
	}

	random, _ := Lookup(KindAction, ActionCallRandomTimedActionList)
	if len(random.Params) != 6 {
		t.Fatalf("CALL_RANDOM_TIMED_ACTIONLIST has %d params, want 6", len(random.Params))
	}
	for i, p := range random.Params {
		if p.Role != RoleActionList {
			t.Errorf("param %d role = %s, want action_list", i, p.Role)
		}
	}
}

func TestDescribeParam(t *testing.T) {
	cases := []struct {
		name  string
		kind  Kind
		code  int64
		index int
		raw   int64
		want  string
	}{
		{"enum label", KindAction, 8, 0, 2, "Aggressive"},
		{"enum missing label", KindAction, 8, 0, 7, "7"},
		{"percent", KindEvent, 2, 0, 30, "30%"},
		{"bool true", KindAction, 47, 0, 1, "true"},
		{"bool false", KindAction, 47, 0, 0, "false"},
		{"millis", KindEvent, 0, 0, 5000, "5000ms"},
		{"phase mask", KindEvent, 66, 0, 5, "phases 1&3"},
		{"phase mask all", KindEvent, 66, 0, 0, "all"},
		{"foreign id is decimal", KindAction, 11, 0, 12345, "12345"},
		{"out of range index", KindAction, 11, 5, 9, "9"},
		{"negative index", KindAction, 11, -1, 9, "9"},
		{"unknown code", KindAction, 9999, 0, 42, "42"},
		{"flags", KindAction, 18, 0, 0x102, "Not Attackable|Immune To Players"},
		{"flags with unknown bits", KindAction, 104, 0, 0x1001, "In Use|0x1000"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DescribeParam(tc.kind, tc.code, tc.index, tc.raw)
			if got != tc.want {
				t.Errorf("DescribeParam(%s, %d, %d, %d) = %q, want %q", tc.kind, tc.code, tc.index, tc.raw, got, tc.want)
			}
		})
	}
}

func TestParamRoleIsForeign(t *testing.T) {
	foreign := []ParamRole{RoleSpell, RoleCreature, RoleCreatureGUID, RoleGameObject, RoleGameObjectGUID, RoleItem, RoleQuest}
	for _, r := range foreign {
		if !r.IsForeign() {
			t.Errorf("%s should be foreign", r)
		}
	}
	local := []ParamRole{RolePlain, RoleEnum, RolePercent, RoleBool, RoleMillis, RoleFlags, RolePhaseMask, RoleActionList, RoleDataField, RoleDataValue}
	for _, r := range local {
		if r.IsForeign() {
			t.Errorf("%s should not be foreign", r)
		}
	}
}

func TestParseKind(t *testing.T) {
	for in, want := range map[string]Kind{"event": KindEvent, "Actions": KindAction, " target ": KindTarget} {
		got, err := ParseKind(in)
		if err != nil {
			t.Fatalf("ParseKind(%q): %v", in, err)
		}
		if got != want {
			t.Errorf("ParseKind(%q) = %s, want %s", in, got, want)
		}
	}
	if _, err := ParseKind("condition"); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestTargetGroups(t *testing.T) {
	got := TargetGroups(TargetCreatureGUID, [4]int64{1234, 448, 0, 0})
	if len(got) != 2 {
		t.Fatalf("got %d groups, want 2", len(got))
	}
	if got[0] != (smartai.GroupKey{SourceType: smartai.SourceCreature, EntryOrGuid: -1234}) {
		t.Errorf("guid group = %v", got[0])
	}
	if got[1] != (smartai.GroupKey{SourceType: smartai.SourceCreature, EntryOrGuid: 448}) {
		t.Errorf("entry group = %v", got[1])
	}

	if got := TargetGroups(TargetClosestGameObject, [4]int64{0, 30, 0, 0}); len(got) != 0 {
		t.Errorf("entry 0 should name no group, got %v", got)
	}
	if got := TargetGroups(TargetSelf, [4]int64{}); len(got) != 0 {
		t.Errorf("self should name no group, got %v", got)
	}
}

func TestConcurrentLookup(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for code := int64(0); code < 240; code++ {
				Lookup(KindAction, code)
				DescribeParam(KindEvent, code, i%6, code)
			}
		}(i)
	}
	wg.Wait()
}
