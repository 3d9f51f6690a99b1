package api

import (
	"fmt"
	"net/http"
	"os"
	"sort"
	"time"

	"github.com/AaronLay10/SaiScope/internal/events"
	"github.com/AaronLay10/SaiScope/internal/version"
)

// metricsHandler returns Prometheus-compatible metrics in text format.
func (s *Server) metricsHandler(w http.ResponseWriter, r *http.Request) {
	hostname, _ := os.Hostname()
	if hostname == "" {
		hostname = "unknown"
	}
	labels := fmt.Sprintf(`instance="%s",version="%s"`, hostname, version.Version)

	w.Header().Set("Content-Type", "text/plain; version=0.0.4; charset=utf-8")

	header := func(name, mtype, help string) {
		fmt.Fprintf(w, "# HELP %s %s\n", name, help)
		fmt.Fprintf(w, "# TYPE %s %s\n", name, mtype)
	}
	writeMetric := func(name, mtype, help string, value interface{}) {
		header(name, mtype, help)
		fmt.Fprintf(w, "%s{%s} %v\n", name, labels, value)
	}

	writeMetric("saiscope_uptime_seconds", "gauge",
		"Number of seconds since the server started", time.Since(s.started).Seconds())
	writeMetric("saiscope_ws_clients", "gauge",
		"Number of active WebSocket client connections", events.SubscriberCount())

	counts := events.Counts()
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	header("saiscope_events_total", "counter", "Events emitted since startup by name")
	for _, name := range names {
		fmt.Fprintf(w, "saiscope_events_total{%s,event=\"%s\"} %d\n", labels, name, counts[name])
	}
}
