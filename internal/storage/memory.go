package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/AaronLay10/SaiScope/internal/definitions"
	"github.com/AaronLay10/SaiScope/internal/smartai"
)

// MemoryRepository serves rows held in memory, for offline analysis of
// exported row files and for tests.
type MemoryRepository struct {
	mu     sync.RWMutex
	groups map[smartai.GroupKey][]smartai.ScriptRow
	names  map[smartai.GroupKey]string
}

// NewMemoryRepository indexes rows by group.
func NewMemoryRepository(rows []smartai.ScriptRow) *MemoryRepository {
	m := &MemoryRepository{
		groups: make(map[smartai.GroupKey][]smartai.ScriptRow),
		names:  make(map[smartai.GroupKey]string),
	}
	m.Add(rows...)
	return m
}

// LoadMemoryRepository reads a JSON or YAML row file.
func LoadMemoryRepository(path string) (*MemoryRepository, error) {
	rows, err := smartai.LoadRowsFile(path)
	if err != nil {
		return nil, err
	}
	return NewMemoryRepository(rows), nil
}

// Add appends rows, keeping each group ordered by id.
func (m *MemoryRepository) Add(rows ...smartai.ScriptRow) {
	m.mu.Lock()
	defer m.mu.Unlock()
	touched := make(map[smartai.GroupKey]bool)
	for _, r := range rows {
		m.groups[r.Group()] = append(m.groups[r.Group()], r)
		touched[r.Group()] = true
	}
	for k := range touched {
		smartai.SortRows(m.groups[k])
	}
}

// SetName records the entity name returned by EntityName for key.
func (m *MemoryRepository) SetName(key smartai.GroupKey, name string) {
	m.mu.Lock()
	m.names[key] = name
	m.mu.Unlock()
}

// Groups lists every group key in order.
func (m *MemoryRepository) Groups() []smartai.GroupKey {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]smartai.GroupKey, 0, len(m.groups))
	for k := range m.groups {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// FetchGroup returns a copy of one group's rows.
func (m *MemoryRepository) FetchGroup(ctx context.Context, sourceType smartai.SourceType, entryOrGuid int64) ([]smartai.ScriptRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	rows, ok := m.groups[smartai.GroupKey{SourceType: sourceType, EntryOrGuid: entryOrGuid}]
	if !ok || len(rows) == 0 {
		return nil, smartai.ErrGroupNotFound
	}
	return append([]smartai.ScriptRow(nil), rows...), nil
}

// FetchTimedActionList returns the rows of a timed action list.
func (m *MemoryRepository) FetchTimedActionList(ctx context.Context, listID int64) ([]smartai.ScriptRow, error) {
	return m.FetchGroup(ctx, smartai.SourceTimedActionList, listID)
}

// FindDataSetListeners scans every group for matching DATA_SET rows.
func (m *MemoryRepository) FindDataSetListeners(ctx context.Context, field, value int64) ([]smartai.ScriptRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []smartai.ScriptRow
	for _, key := range m.Groups() {
		m.mu.RLock()
		for _, r := range m.groups[key] {
			if r.EventType == definitions.EventDataSet && r.EventParams[0] == field && r.EventParams[1] == value {
				out = append(out, r)
			}
		}
		m.mu.RUnlock()
	}
	return out, nil
}

// EntityName returns the name set with SetName, or a placeholder.
func (m *MemoryRepository) EntityName(_ context.Context, key smartai.GroupKey) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if name, ok := m.names[key]; ok {
		return name, nil
	}
	return fallbackEntityName(key), nil
}
