package events

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"
)

var buffer = NewRingBuffer(256)

// Sink receives every emitted event, for example an MQTT publisher.
type Sink interface {
	Publish(e Event) error
}

var (
	outMu           sync.Mutex
	output          io.Writer
	sink            Sink
	sinkErrorLogged bool

	countMu sync.Mutex
	counts  = make(map[string]int64)
)

// SetOutput makes Emit write every event as a JSON line to w. nil disables.
func SetOutput(w io.Writer) {
	outMu.Lock()
	output = w
	outMu.Unlock()
}

// SetSink forwards every event to s. nil disables.
func SetSink(s Sink) {
	outMu.Lock()
	sink = s
	sinkErrorLogged = false
	outMu.Unlock()
}

type Event struct {
	Timestamp string                 `json:"ts"`
	Level     string                 `json:"level"`
	Name      string                 `json:"event"`
	Message   string                 `json:"msg,omitempty"`
	Fields    map[string]interface{} `json:"fields,omitempty"`
}

// Emit validates, buffers, broadcasts and forwards one event and returns
// its JSON encoding.
func Emit(level, name, msg string, fields map[string]interface{}) ([]byte, error) {
	if err := Validate(name); err != nil {
		return nil, err
	}

	e := Event{
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		Level:     level,
		Name:      name,
		Message:   msg,
		Fields:    fields,
	}

	b, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event: %w", err)
	}

	buffer.Add(e)
	countMu.Lock()
	counts[name]++
	countMu.Unlock()
	broadcast(e)

	outMu.Lock()
	w, s := output, sink
	outMu.Unlock()

	if w != nil {
		outMu.Lock()
		w.Write(append(b, '\n'))
		outMu.Unlock()
	}
	if s != nil {
		if err := s.Publish(e); err != nil {
			sinkFailed(err)
		}
	}

	return b, nil
}

// sinkFailed records the first sink failure as system.error. It adds to the
// buffer directly so a failing sink cannot recurse through Emit.
func sinkFailed(err error) {
	outMu.Lock()
	if sinkErrorLogged {
		outMu.Unlock()
		return
	}
	sinkErrorLogged = true
	outMu.Unlock()

	errEvent := Event{
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		Level:     "error",
		Name:      "system.error",
		Message:   "event sink publish failed",
		Fields: map[string]interface{}{
			"error": err.Error(),
		},
	}
	buffer.Add(errEvent)
	broadcast(errEvent)
}

func Snapshot() []Event {
	return buffer.Snapshot()
}

// Counts returns the number of events emitted per name since start or the
// last Clear.
func Counts() map[string]int64 {
	countMu.Lock()
	defer countMu.Unlock()
	out := make(map[string]int64, len(counts))
	for k, v := range counts {
		out[k] = v
	}
	return out
}

// TotalCount returns the number of events emitted.
func TotalCount() int64 {
	countMu.Lock()
	defer countMu.Unlock()
	var n int64
	for _, v := range counts {
		n += v
	}
	return n
}

// Clear resets the event buffer and counters. Used for testing.
func Clear() {
	buffer.Clear()
	countMu.Lock()
	counts = make(map[string]int64)
	countMu.Unlock()
}
