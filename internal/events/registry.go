package events

import "fmt"

var allowedEvents = map[string]struct{}{
	// graph
	"graph.built":   {},
	"graph.anomaly": {},

	// trace
	"trace.completed": {},
	"trace.truncated": {},

	// comments
	"comment.batch":        {},
	"resolver.unavailable": {},

	// storage
	"repository.error": {},

	// transport
	"api.request": {},

	// system
	"system.startup":  {},
	"system.shutdown": {},
	"system.error":    {},
}

// Validate rejects event names outside the allow-list.
func Validate(event string) error {
	if _, ok := allowedEvents[event]; !ok {
		return fmt.Errorf("unknown event: %s", event)
	}
	return nil
}

// Names returns every allowed event name.
func Names() []string {
	out := make([]string, 0, len(allowedEvents))
	for name := range allowedEvents {
		out = append(out, name)
	}
	return out
}
