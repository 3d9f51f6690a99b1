package events_test

import (
	"context"
	"testing"
	"time"

	"github.com/AaronLay10/SaiScope/internal/analyzer"
	"github.com/AaronLay10/SaiScope/internal/definitions"
	"github.com/AaronLay10/SaiScope/internal/events"
	"github.com/AaronLay10/SaiScope/internal/smartai"
	"github.com/AaronLay10/SaiScope/internal/storage"
)

// A trace publishes graph.built then trace.completed to live subscribers.
func TestTraceChainBroadcast(t *testing.T) {
	hogger := smartai.GroupKey{SourceType: smartai.SourceCreature, EntryOrGuid: 448}
	repo := storage.NewMemoryRepository([]smartai.ScriptRow{
		{SourceType: smartai.SourceCreature, EntryOrGuid: 448, ID: 0, Link: 1,
			EventType: 4, EventChance: 100, ActionType: 1, TargetType: definitions.TargetSelf},
		{SourceType: smartai.SourceCreature, EntryOrGuid: 448, ID: 1,
			EventType: definitions.EventLink, EventChance: 100, ActionType: 11, ActionParams: [6]int64{8599}},
	})

	sub := events.Subscribe()
	defer events.Unsubscribe(sub)

	a := analyzer.New(repo, nil, analyzer.Options{})
	if _, err := a.TraceChain(context.Background(), hogger, 0, 0); err != nil {
		t.Fatalf("TraceChain: %v", err)
	}

	var got []events.Event
	timeout := time.After(time.Second)
	for len(got) < 2 {
		select {
		case e := <-sub:
			if e.Name == "comment.batch" {
				continue
			}
			got = append(got, e)
		case <-timeout:
			t.Fatalf("received %d events, want 2: %+v", len(got), got)
		}
	}

	built, done := got[0], got[1]
	if built.Name != "graph.built" || built.Fields["root"] != "Creature/448" || built.Fields["nodes"] != 2 {
		t.Errorf("graph.built = %+v", built)
	}
	if done.Name != "trace.completed" || done.Level != "info" {
		t.Fatalf("second event = %+v, want trace.completed", done)
	}
	if done.Fields["start"] != "Creature/448#0" || done.Fields["steps"] != 2 {
		t.Errorf("trace.completed fields = %v", done.Fields)
	}
}
