package scriptgraph

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/AaronLay10/SaiScope/internal/definitions"
	"github.com/AaronLay10/SaiScope/internal/smartai"
)

// Repository supplies script rows. Both methods return
// smartai.ErrGroupNotFound when the group has no rows.
type Repository interface {
	FetchGroup(ctx context.Context, sourceType smartai.SourceType, entryOrGuid int64) ([]smartai.ScriptRow, error)
	FetchTimedActionList(ctx context.Context, listID int64) ([]smartai.ScriptRow, error)
}

// DataListenerFinder is implemented by repositories that can search the whole
// table for DATA_SET rows. It enables ScopeTable.
type DataListenerFinder interface {
	FindDataSetListeners(ctx context.Context, field, value int64) ([]smartai.ScriptRow, error)
}

// DataScope selects where SET_DATA looks for matching DATA_SET rows.
type DataScope string

const (
	// ScopeSelf searches only the group of the SET_DATA row.
	ScopeSelf DataScope = "self"
	// ScopeTargets also searches groups named by the row's target and
	// Options.ExtraGroups.
	ScopeTargets DataScope = "targets"
	// ScopeTable searches the whole table through DataListenerFinder.
	ScopeTable DataScope = "table"
)

// ParseDataScope accepts "", "self", "targets" and "table".
func ParseDataScope(s string) (DataScope, error) {
	switch DataScope(strings.ToLower(strings.TrimSpace(s))) {
	case "", ScopeTargets:
		return ScopeTargets, nil
	case ScopeSelf:
		return ScopeSelf, nil
	case ScopeTable:
		return ScopeTable, nil
	}
	return "", fmt.Errorf("unknown data scope: %q", s)
}

// DefaultMaxRandomRange caps the number of lists a random range invocation
// can name.
const DefaultMaxRandomRange = 32

// Options tunes a build.
type Options struct {
	DataScope      DataScope
	ExtraGroups    []smartai.GroupKey
	MaxRandomRange int
}

func (o Options) maxRandomRange() int {
	if o.MaxRandomRange <= 0 {
		return DefaultMaxRandomRange
	}
	return o.MaxRandomRange
}

// groupState memoizes one fetch per group per build.
type groupState struct {
	err error
	// nodes holds node indices in ascending id order.
	nodes []int
}

type builder struct {
	ctx    context.Context
	repo   Repository
	finder DataListenerFinder
	opts   Options
	g      *Graph
	groups map[smartai.GroupKey]*groupState
	queue  []int
}

// Build fetches the root group and everything reachable from it, and returns
// the resulting graph. Only a missing root group or a repository failure is
// an error; every other problem is recorded in Graph.Anomalies.
func Build(ctx context.Context, repo Repository, root smartai.GroupKey, opts Options) (*Graph, error) {
	scope := opts.DataScope
	if scope == "" {
		scope = ScopeTargets
	}
	finder, _ := repo.(DataListenerFinder)
	if scope == ScopeTable && finder == nil {
		scope = ScopeTargets
	}

	b := &builder{
		ctx:    ctx,
		repo:   repo,
		finder: finder,
		opts:   opts,
		g:      newGraph(root, scope),
		groups: make(map[smartai.GroupKey]*groupState),
	}

	st, err := b.load(root)
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", root, err)
	}
	if st.err != nil {
		return nil, fmt.Errorf("build %s: %w", root, st.err)
	}

	for len(b.queue) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		i := b.queue[0]
		b.queue = b.queue[1:]
		if err := b.process(i); err != nil {
			return nil, fmt.Errorf("build %s: %w", root, err)
		}
	}
	return b.g, nil
}

// load fetches a group once. A missing group is stored in the state; any
// other repository error is returned and ends the build.
func (b *builder) load(key smartai.GroupKey) (*groupState, error) {
	if st, ok := b.groups[key]; ok {
		return st, nil
	}

	var rows []smartai.ScriptRow
	var err error
	if key.SourceType == smartai.SourceTimedActionList {
		rows, err = b.repo.FetchTimedActionList(b.ctx, key.EntryOrGuid)
	} else {
		rows, err = b.repo.FetchGroup(b.ctx, key.SourceType, key.EntryOrGuid)
	}

	st := &groupState{}
	b.groups[key] = st
	if err == nil && len(rows) == 0 {
		err = smartai.ErrGroupNotFound
	}
	if err != nil {
		if errors.Is(err, smartai.ErrGroupNotFound) {
			st.err = smartai.ErrGroupNotFound
			return st, nil
		}
		var repoErr *smartai.RepositoryError
		if !errors.As(err, &repoErr) {
			err = &smartai.RepositoryError{Op: "fetch", Key: key, Err: err}
		}
		return nil, err
	}

	sorted := append([]smartai.ScriptRow(nil), rows...)
	smartai.SortRows(sorted)
	for _, row := range sorted {
		// Rows are keyed by the group they were requested as.
		row.SourceType = key.SourceType
		row.EntryOrGuid = key.EntryOrGuid

		if existing, dup := b.g.Lookup(row.Key()); dup {
			b.g.anomaly(Anomaly{
				Kind:    AnomalyDuplicateID,
				Row:     row.Key(),
				Target:  b.g.Nodes[existing].Key(),
				Message: fmt.Sprintf("duplicate row %s ignored", row.Key()),
			})
			continue
		}
		i := b.g.add(row)
		st.nodes = append(st.nodes, i)
		b.queue = append(b.queue, i)
	}
	return st, nil
}

func (b *builder) process(i int) error {
	row := b.g.Nodes[i].Row

	var edges []Edge
	edges = append(edges, b.successor(row)...)

	invokes, err := b.invokeEdges(row)
	if err != nil {
		return err
	}
	edges = append(edges, invokes...)

	triggers, err := b.dataTriggerEdges(row)
	if err != nil {
		return err
	}
	edges = append(edges, triggers...)

	b.g.Nodes[i].Edges = edges
	return nil
}

// successor returns the chain edge for a linked row, or the implicit edge of
// a chainable timed action list row. Only timed action lists run their rows
// in id order; rows of a creature or gameobject group fire independently on
// their own events, so an unlinked row there has no successor.
func (b *builder) successor(row smartai.ScriptRow) []Edge {
	if row.Link != 0 {
		target := smartai.RowKey{GroupKey: row.Group(), ID: row.Link}
		to, ok := b.g.Lookup(target)
		if !ok {
			to = -1
			b.g.anomaly(Anomaly{
				Kind:    AnomalyBrokenLink,
				Row:     row.Key(),
				Target:  target,
				Message: fmt.Sprintf("link to missing row #%d", row.Link),
			})
		}
		return []Edge{{Kind: EdgeChain, To: to, Target: target}}
	}

	if row.SourceType != smartai.SourceTimedActionList {
		return nil
	}
	ev, _ := definitions.Lookup(definitions.KindEvent, row.EventType)
	if !ev.Chainable {
		return nil
	}
	st := b.groups[row.Group()]
	for _, j := range st.nodes {
		next := b.g.Nodes[j].Row
		if next.ID > row.ID && smartai.PhasesOverlap(row.EventPhaseMask, next.EventPhaseMask) {
			return []Edge{{Kind: EdgeImplicit, To: j, Target: next.Key()}}
		}
	}
	return nil
}

// listIDs returns the timed action lists a row invokes, ascending.
func (b *builder) listIDs(row smartai.ScriptRow) []int64 {
	p := row.ActionParams
	var ids []int64
	switch row.ActionType {
	case definitions.ActionCallTimedActionList:
		ids = append(ids, p[0])
	case definitions.ActionCallRandomTimedActionList:
		for _, id := range p {
			if id != 0 {
				ids = append(ids, id)
			}
		}
	case definitions.ActionCallRandomRangeTimedActionList:
		lo, hi := p[0], p[1]
		if hi < lo {
			hi = lo
		}
		if limit := int64(b.opts.maxRandomRange()); hi-lo+1 > limit {
			hi = lo + limit - 1
		}
		for id := lo; id <= hi; id++ {
			ids = append(ids, id)
		}
	default:
		return nil
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := ids[:0]
	for i, id := range ids {
		if i == 0 || id != ids[i-1] {
			out = append(out, id)
		}
	}
	return out
}

func (b *builder) invokeEdges(row smartai.ScriptRow) ([]Edge, error) {
	var edges []Edge
	for _, id := range b.listIDs(row) {
		key := smartai.GroupKey{SourceType: smartai.SourceTimedActionList, EntryOrGuid: id}
		st, err := b.load(key)
		if err != nil {
			return nil, err
		}
		if st.err != nil || len(st.nodes) == 0 {
			b.g.anomaly(Anomaly{
				Kind:    AnomalyUnresolvedInvoke,
				Row:     row.Key(),
				Target:  smartai.RowKey{GroupKey: key},
				Param:   id,
				Message: fmt.Sprintf("timed action list %d not found", id),
			})
			continue
		}
		first := st.nodes[0]
		edges = append(edges, Edge{Kind: EdgeInvoke, To: first, Target: b.g.Nodes[first].Key(), Param: id})
	}
	return edges, nil
}

func (b *builder) dataTriggerEdges(row smartai.ScriptRow) ([]Edge, error) {
	if row.ActionType != definitions.ActionSetData {
		return nil, nil
	}
	field, value := row.ActionParams[0], row.ActionParams[1]

	var listeners []int
	var err error
	if b.g.DataScope == ScopeTable {
		listeners, err = b.tableListeners(field, value)
	} else {
		listeners, err = b.scopedListeners(row, field, value)
	}
	if err != nil {
		return nil, err
	}

	if len(listeners) == 0 {
		b.g.anomaly(Anomaly{
			Kind:    AnomalyUnresolvedTrigger,
			Row:     row.Key(),
			Param:   field,
			Message: fmt.Sprintf("no DATA_SET listener for field %d value %d", field, value),
		})
		return nil, nil
	}

	sort.Slice(listeners, func(i, j int) bool {
		return b.g.Nodes[listeners[i]].Key().Less(b.g.Nodes[listeners[j]].Key())
	})
	edges := make([]Edge, 0, len(listeners))
	for i, j := range listeners {
		if i > 0 && j == listeners[i-1] {
			continue
		}
		edges = append(edges, Edge{Kind: EdgeDataTrigger, To: j, Target: b.g.Nodes[j].Key(), Param: field})
	}
	return edges, nil
}

// scopedListeners searches the row's own group and, for ScopeTargets, the
// groups named by its target and the configured extra groups.
func (b *builder) scopedListeners(row smartai.ScriptRow, field, value int64) ([]int, error) {
	// Each entry lists alternative groups for one addressee; a miss is an
	// anomaly only when none of the alternatives exist.
	candidates := [][]smartai.GroupKey{{row.Group()}}
	if b.g.DataScope == ScopeTargets {
		if named := definitions.TargetGroups(row.TargetType, row.TargetParams); len(named) > 0 {
			candidates = append(candidates, named)
		}
		for _, extra := range b.opts.ExtraGroups {
			candidates = append(candidates, []smartai.GroupKey{extra})
		}
	}

	var listeners []int
	for n, alternatives := range candidates {
		found := false
		for _, key := range alternatives {
			st, err := b.load(key)
			if err != nil {
				return nil, err
			}
			if st.err != nil {
				continue
			}
			found = true
			listeners = append(listeners, b.matching(st.nodes, field, value)...)
		}
		if !found && n > 0 {
			b.g.anomaly(Anomaly{
				Kind:    AnomalyUnresolvedTrigger,
				Row:     row.Key(),
				Target:  smartai.RowKey{GroupKey: alternatives[0]},
				Param:   field,
				Message: fmt.Sprintf("target group %s has no scripts", alternatives[0]),
			})
		}
	}
	return listeners, nil
}

func (b *builder) tableListeners(field, value int64) ([]int, error) {
	rows, err := b.finder.FindDataSetListeners(b.ctx, field, value)
	if err != nil && !errors.Is(err, smartai.ErrGroupNotFound) {
		return nil, err
	}

	var listeners []int
	for _, r := range rows {
		// Load the whole group so the listener's own links resolve.
		if _, err := b.load(r.Group()); err != nil {
			return nil, err
		}
		if j, ok := b.g.Lookup(r.Key()); ok {
			listeners = append(listeners, j)
		}
	}
	return listeners, nil
}

func (b *builder) matching(nodes []int, field, value int64) []int {
	var out []int
	for _, j := range nodes {
		r := b.g.Nodes[j].Row
		if r.EventType == definitions.EventDataSet && r.EventParams[0] == field && r.EventParams[1] == value {
			out = append(out, j)
		}
	}
	return out
}
