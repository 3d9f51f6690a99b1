package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/AaronLay10/SaiScope/internal/analyzer"
	"github.com/AaronLay10/SaiScope/internal/definitions"
	"github.com/AaronLay10/SaiScope/internal/smartai"
	"github.com/AaronLay10/SaiScope/internal/tracer"
)

// maxBatchRows bounds POST /comments.
const maxBatchRows = 5000

func definitionsHandler(w http.ResponseWriter, r *http.Request) {
	kind, err := definitions.ParseKind(r.PathValue("kind"))
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	writeJSON(w, http.StatusOK, analyzer.ListTypes(kind))
}

func explainHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	codes := make(map[string]*int64, 3)
	for _, name := range []string{"event", "action", "target"} {
		v := q.Get(name)
		if v == "" {
			continue
		}
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Errorf("invalid %s code %q", name, v))
			return
		}
		codes[name] = &n
	}
	if len(codes) == 0 {
		writeError(w, http.StatusBadRequest, errors.New("one of event, action or target is required"))
		return
	}
	writeJSON(w, http.StatusOK, analyzer.Explain(codes["event"], codes["action"], codes["target"]))
}

// groupKey reads ?source=&entry=.
func groupKey(r *http.Request) (smartai.GroupKey, error) {
	q := r.URL.Query()
	st, err := smartai.ParseSourceType(q.Get("source"))
	if err != nil {
		return smartai.GroupKey{}, err
	}
	entry, err := strconv.ParseInt(q.Get("entry"), 10, 64)
	if err != nil {
		return smartai.GroupKey{}, fmt.Errorf("invalid entry %q", q.Get("entry"))
	}
	return smartai.GroupKey{SourceType: st, EntryOrGuid: entry}, nil
}

func intParam(r *http.Request, name string) (int64, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, v)
	}
	return n, nil
}

// TraceResponse carries the report and its rendered lines.
type TraceResponse struct {
	*tracer.Report
	Lines []string `json:"lines"`
}

func (s *Server) traceHandler(w http.ResponseWriter, r *http.Request) {
	key, err := groupKey(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	start, err := intParam(r, "start")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	maxSteps, err := intParam(r, "max_steps")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	report, err := s.an.TraceChain(r.Context(), key, start, int(maxSteps))
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, TraceResponse{Report: report, Lines: report.Lines()})
}

func (s *Server) scriptsHandler(w http.ResponseWriter, r *http.Request) {
	key, err := groupKey(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	rows, err := s.an.CompactGroup(r.Context(), key)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (s *Server) style(name string) (analyzer.Style, error) {
	if name == "" {
		return s.opts.Style, nil
	}
	return analyzer.ParseStyle(name)
}

func (s *Server) commentsHandler(w http.ResponseWriter, r *http.Request) {
	key, err := groupKey(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	style, err := s.style(r.URL.Query().Get("style"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	out, err := s.an.GenerateComments(r.Context(), key, style)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// CommentBatchRequest is the body of POST /comments.
type CommentBatchRequest struct {
	EntityName string              `json:"entity_name"`
	Style      string              `json:"style"`
	Rows       []smartai.ScriptRow `json:"rows"`
}

// CommentBatchResponse answers POST /comments.
type CommentBatchResponse struct {
	Style analyzer.Style        `json:"style"`
	Rows  []analyzer.CommentRow `json:"rows"`
}

func (s *Server) commentBatchHandler(w http.ResponseWriter, r *http.Request) {
	var req CommentBatchRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 8<<20)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid JSON: %w", err))
		return
	}
	if len(req.Rows) == 0 {
		writeError(w, http.StatusBadRequest, errors.New("rows required"))
		return
	}
	if len(req.Rows) > maxBatchRows {
		writeError(w, http.StatusRequestEntityTooLarge, fmt.Errorf("at most %d rows per batch", maxBatchRows))
		return
	}
	style, err := s.style(req.Style)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	writeJSON(w, http.StatusOK, CommentBatchResponse{
		Style: style,
		Rows:  s.an.CommentRows(r.Context(), req.Rows, req.EntityName, style),
	})
}
