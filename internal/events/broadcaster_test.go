package events

import (
	"testing"
	"time"
)

func receive(t *testing.T, sub Subscriber) Event {
	t.Helper()
	select {
	case e, ok := <-sub:
		if !ok {
			t.Fatal("subscriber closed")
		}
		return e
	case <-time.After(100 * time.Millisecond):
		t.Fatal("timeout waiting for broadcast event")
	}
	return Event{}
}

func TestSubscriberCountTracksStreams(t *testing.T) {
	initial := SubscriberCount()

	a, b := Subscribe(), Subscribe()
	if got := SubscriberCount(); got != initial+2 {
		t.Fatalf("SubscriberCount = %d, want %d", got, initial+2)
	}
	Unsubscribe(a)
	Unsubscribe(b)
	if got := SubscriberCount(); got != initial {
		t.Errorf("SubscriberCount = %d after unsubscribe, want %d", got, initial)
	}
}

func TestBroadcastCarriesFields(t *testing.T) {
	sub := Subscribe()
	defer Unsubscribe(sub)

	Emit("warn", "graph.anomaly", "link to missing row #9", map[string]interface{}{
		"kind": "broken_link",
		"row":  "Creature/448#0",
	})

	e := receive(t, sub)
	if e.Name != "graph.anomaly" || e.Level != "warn" || e.Message != "link to missing row #9" {
		t.Errorf("event = %+v", e)
	}
	if e.Fields["kind"] != "broken_link" || e.Fields["row"] != "Creature/448#0" {
		t.Errorf("fields = %v", e.Fields)
	}
}

func TestRejectedEventIsNotBroadcast(t *testing.T) {
	sub := Subscribe()
	defer Unsubscribe(sub)

	if _, err := Emit("info", "room.started", "", nil); err == nil {
		t.Fatal("expected unknown event to be rejected")
	}
	select {
	case e := <-sub:
		t.Errorf("unexpected broadcast %+v", e)
	case <-time.After(20 * time.Millisecond):
	}
}

func TestSlowSubscriberDoesNotBlockEmit(t *testing.T) {
	slow := Subscribe()
	defer Unsubscribe(slow)

	done := make(chan struct{})
	go func() {
		for i := 0; i < cap(slow)*2; i++ {
			Emit("info", "comment.batch", "", map[string]interface{}{"rows": i})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Emit blocked on a full subscriber")
	}
	if got := len(slow); got != cap(slow) {
		t.Errorf("buffered %d events, want %d", got, cap(slow))
	}
}

func TestRecentEventsReturnsNewest(t *testing.T) {
	Clear()
	for i := 0; i < 10; i++ {
		Emit("info", "comment.batch", "", map[string]interface{}{"rows": i})
	}

	recent := RecentEvents(3)
	if len(recent) != 3 || recent[0].Fields["rows"] != 7 || recent[2].Fields["rows"] != 9 {
		t.Errorf("RecentEvents(3) = %+v", recent)
	}
	if got := len(RecentEvents(100)); got != 10 {
		t.Errorf("RecentEvents(100) returned %d", got)
	}
	if got := len(RecentEvents(0)); got != 10 {
		t.Errorf("RecentEvents(0) returned %d", got)
	}
}

func TestUnsubscribeTwice(t *testing.T) {
	sub := Subscribe()
	Unsubscribe(sub)
	if _, ok := <-sub; ok {
		t.Error("channel should be closed")
	}
	Unsubscribe(sub)
}

func TestCloseAllSubscribers(t *testing.T) {
	CloseAllSubscribers()
	subs := []Subscriber{Subscribe(), Subscribe(), Subscribe()}

	CloseAllSubscribers()

	for i, sub := range subs {
		if _, ok := <-sub; ok {
			t.Errorf("subscriber %d still open", i)
		}
	}
	if SubscriberCount() != 0 {
		t.Errorf("SubscriberCount = %d, want 0", SubscriberCount())
	}
}
