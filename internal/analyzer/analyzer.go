// Package analyzer ties the repository, name resolution, graph builder,
// tracer and comment generator together behind the operations exposed by
// the CLI and the HTTP API.
package analyzer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/AaronLay10/SaiScope/internal/comment"
	"github.com/AaronLay10/SaiScope/internal/events"
	"github.com/AaronLay10/SaiScope/internal/scriptgraph"
	"github.com/AaronLay10/SaiScope/internal/smartai"
	"github.com/AaronLay10/SaiScope/internal/tracer"
)

// Repository is what the analyzer needs from storage.
type Repository interface {
	scriptgraph.Repository
	EntityName(ctx context.Context, key smartai.GroupKey) (string, error)
}

// Style selects the comment renderer.
type Style string

const (
	StyleCanonical Style = "canonical"
	StyleNarrated  Style = "narrated"
)

// ParseStyle accepts "", "canonical" and "narrated".
func ParseStyle(s string) (Style, error) {
	switch Style(strings.ToLower(strings.TrimSpace(s))) {
	case "", StyleCanonical:
		return StyleCanonical, nil
	case StyleNarrated, "keira":
		return StyleNarrated, nil
	}
	return "", fmt.Errorf("unknown comment style %q", s)
}

// Options configures an Analyzer.
type Options struct {
	Graph    scriptgraph.Options
	MaxSteps int
	Comments comment.Options
}

// Analyzer runs analyses against one repository.
type Analyzer struct {
	repo     Repository
	resolver comment.NameResolver
	gen      *comment.Generator
	opts     Options
}

// New returns an Analyzer. resolver may be nil, in which case every foreign
// id renders raw.
func New(repo Repository, resolver comment.NameResolver, opts Options) *Analyzer {
	return &Analyzer{
		repo:     repo,
		resolver: resolver,
		gen:      comment.New(opts.Comments),
		opts:     opts,
	}
}

// BuildGraph builds the script graph rooted at key.
func (a *Analyzer) BuildGraph(ctx context.Context, key smartai.GroupKey) (*scriptgraph.Graph, error) {
	g, err := scriptgraph.Build(ctx, a.repo, key, a.opts.Graph)
	if err != nil {
		a.reportError("graph build failed", key, err)
		return nil, err
	}

	events.Emit("info", "graph.built", "", map[string]interface{}{
		"root":      key.String(),
		"nodes":     g.Len(),
		"groups":    len(g.Groups()),
		"anomalies": len(g.Anomalies),
	})
	for _, an := range g.Anomalies {
		events.Emit("warn", "graph.anomaly", an.Message, map[string]interface{}{
			"kind": string(an.Kind),
			"row":  an.Row.String(),
		})
	}
	return g, nil
}

// TraceChain builds the graph of key and traces it from row startID. Every
// step carries the narrated comment of its row. maxSteps <= 0 uses the
// configured budget, and larger requests are clamped to it.
func (a *Analyzer) TraceChain(ctx context.Context, key smartai.GroupKey, startID int64, maxSteps int) (*tracer.Report, error) {
	g, err := a.BuildGraph(ctx, key)
	if err != nil {
		return nil, err
	}

	report, err := tracer.Trace(g, smartai.RowKey{GroupKey: key, ID: startID}, a.stepBudget(maxSteps))
	if err != nil {
		return nil, err
	}
	report.EntityName = a.entityName(ctx, key)

	texts := a.narrateGraph(ctx, g, report.EntityName)
	for i := range report.Steps {
		report.Steps[i].Comment = texts[report.Steps[i].Row]
	}

	name, level := "trace.completed", "info"
	if report.Truncated {
		name, level = "trace.truncated", "warn"
	}
	events.Emit(level, name, "", map[string]interface{}{
		"start": report.Start.String(),
		"steps": len(report.Steps),
	})
	return report, nil
}

func (a *Analyzer) stepBudget(maxSteps int) int {
	limit := a.opts.MaxSteps
	if limit <= 0 {
		limit = tracer.DefaultMaxSteps
	}
	if maxSteps <= 0 || maxSteps > limit {
		return limit
	}
	return maxSteps
}

// narrateGraph narrates every group of g. Timed action lists run as the
// entity that called them, so they take the root's name.
func (a *Analyzer) narrateGraph(ctx context.Context, g *scriptgraph.Graph, rootName string) map[smartai.RowKey]string {
	byGroup := make(map[smartai.GroupKey][]smartai.ScriptRow)
	for _, n := range g.Nodes {
		byGroup[n.Row.Group()] = append(byGroup[n.Row.Group()], n.Row)
	}

	out := make(map[smartai.RowKey]string, len(g.Nodes))
	for _, key := range g.Groups() {
		name := rootName
		if key != g.Root && key.SourceType != smartai.SourceTimedActionList {
			name = a.entityName(ctx, key)
		}
		for k, v := range a.gen.NarrateGroup(ctx, byGroup[key], name, a.resolver) {
			out[k] = v
		}
	}
	return out
}

// entityName returns "" when the name cannot be looked up; it only
// decorates narration.
func (a *Analyzer) entityName(ctx context.Context, key smartai.GroupKey) string {
	name, err := a.repo.EntityName(ctx, key)
	if err != nil {
		return ""
	}
	return name
}

// CommentRow is the generated comment for one row.
type CommentRow struct {
	Key        smartai.RowKey `json:"key"`
	ID         int64          `json:"id"`
	EventType  int64          `json:"event_type"`
	ActionType int64          `json:"action_type"`
	TargetType int64          `json:"target_type"`
	Comment    string         `json:"comment"`
	// Current is the comment stored with the row.
	Current    string   `json:"current,omitempty"`
	Unresolved []string `json:"unresolved,omitempty"`
	Partial    bool     `json:"partial,omitempty"`
}

// GroupComments is the result of GenerateComments.
type GroupComments struct {
	Group      smartai.GroupKey `json:"group"`
	EntityName string           `json:"entity_name"`
	Style      Style            `json:"style"`
	Rows       []CommentRow     `json:"rows"`
}

// GenerateComments renders a comment for every row of key.
func (a *Analyzer) GenerateComments(ctx context.Context, key smartai.GroupKey, style Style) (*GroupComments, error) {
	rows, err := a.fetch(ctx, key)
	if err != nil {
		a.reportError("fetch failed", key, err)
		return nil, fmt.Errorf("comments %s: %w", key, err)
	}

	name := a.entityName(ctx, key)

	return &GroupComments{
		Group:      key,
		EntityName: name,
		Style:      style,
		Rows:       a.CommentRows(ctx, rows, name, style),
	}, nil
}

// CommentRows renders comments for rows that need not be stored anywhere,
// ordered by key. For narration rows are grouped by their own group so links
// resolve within it.
func (a *Analyzer) CommentRows(ctx context.Context, rows []smartai.ScriptRow, entityName string, style Style) []CommentRow {
	rows = append([]smartai.ScriptRow(nil), rows...)
	smartai.SortRows(rows)

	var out []CommentRow
	if style == StyleNarrated {
		byGroup := make(map[smartai.GroupKey][]smartai.ScriptRow)
		for _, r := range rows {
			byGroup[r.Group()] = append(byGroup[r.Group()], r)
		}
		texts := make(map[smartai.RowKey]string, len(rows))
		for _, group := range byGroup {
			for k, v := range a.gen.NarrateGroup(ctx, group, entityName, a.resolver) {
				texts[k] = v
			}
		}
		out = collect(rows, func(r smartai.ScriptRow) comment.Result {
			return comment.Result{Text: texts[r.Key()]}
		})
	} else {
		results := a.gen.DescribeBatch(ctx, rows, a.resolver)
		out = collect(rows, func(r smartai.ScriptRow) comment.Result { return results[r.Key()] })
	}

	var partial int
	for _, r := range out {
		if r.Partial {
			partial++
		}
	}
	events.Emit("info", "comment.batch", "", map[string]interface{}{
		"rows":    len(out),
		"style":   string(style),
		"partial": partial,
	})
	if partial > 0 {
		events.Emit("warn", "resolver.unavailable", "name lookups timed out or failed", map[string]interface{}{
			"rows": partial,
		})
	}
	return out
}

func collect(rows []smartai.ScriptRow, result func(smartai.ScriptRow) comment.Result) []CommentRow {
	seen := make(map[smartai.RowKey]bool, len(rows))
	out := make([]CommentRow, 0, len(rows))
	for _, r := range rows {
		if seen[r.Key()] {
			continue
		}
		seen[r.Key()] = true
		res := result(r)
		out = append(out, CommentRow{
			Key:        r.Key(),
			ID:         r.ID,
			EventType:  r.EventType,
			ActionType: r.ActionType,
			TargetType: r.TargetType,
			Comment:    res.Text,
			Current:    r.Comment,
			Unresolved: res.Unresolved,
			Partial:    res.Partial,
		})
	}
	return out
}

func (a *Analyzer) fetch(ctx context.Context, key smartai.GroupKey) ([]smartai.ScriptRow, error) {
	if key.SourceType == smartai.SourceTimedActionList {
		return a.repo.FetchTimedActionList(ctx, key.EntryOrGuid)
	}
	return a.repo.FetchGroup(ctx, key.SourceType, key.EntryOrGuid)
}

func (a *Analyzer) reportError(msg string, key smartai.GroupKey, err error) {
	var re *smartai.RepositoryError
	if !errors.As(err, &re) {
		return
	}
	events.Emit("error", "repository.error", msg, map[string]interface{}{
		"group": key.String(),
		"op":    re.Op,
		"error": re.Err.Error(),
	})
}
