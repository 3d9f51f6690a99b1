package comment

import (
	"context"
	"sync"

	"github.com/remeh/sizedwaitgroup"

	"github.com/AaronLay10/SaiScope/internal/smartai"
)

// DescribeBatch annotates every row on a bounded worker pool. When rows
// repeat a key the first occurrence wins. The result does not depend on the
// pool size or scheduling.
func DescribeBatch(ctx context.Context, rows []smartai.ScriptRow, r NameResolver) map[smartai.RowKey]Result {
	return (*Generator)(nil).DescribeBatch(ctx, rows, r)
}

// DescribeBatch is the Generator form of the package level DescribeBatch.
func (g *Generator) DescribeBatch(ctx context.Context, rows []smartai.ScriptRow, r NameResolver) map[smartai.RowKey]Result {
	out := make(map[smartai.RowKey]Result, len(rows))
	var mu sync.Mutex
	g.each(uniqueRows(rows), func(row smartai.ScriptRow) {
		res := g.Describe(ctx, row, r)
		mu.Lock()
		out[row.Key()] = res
		mu.Unlock()
	})
	return out
}

// NarrateGroup narrates every row of group, keyed by row.
func (g *Generator) NarrateGroup(ctx context.Context, group []smartai.ScriptRow, entityName string, r NameResolver) map[smartai.RowKey]string {
	out := make(map[smartai.RowKey]string, len(group))
	var mu sync.Mutex
	g.each(uniqueRows(group), func(row smartai.ScriptRow) {
		text := g.Narrate(ctx, group, row, entityName, r)
		mu.Lock()
		out[row.Key()] = text
		mu.Unlock()
	})
	return out
}

func (g *Generator) each(rows []smartai.ScriptRow, fn func(smartai.ScriptRow)) {
	wg := sizedwaitgroup.New(g.workers())
	for _, row := range rows {
		wg.Add()
		go func(row smartai.ScriptRow) {
			defer wg.Done()
			fn(row)
		}(row)
	}
	wg.Wait()
}

func uniqueRows(rows []smartai.ScriptRow) []smartai.ScriptRow {
	seen := make(map[smartai.RowKey]bool, len(rows))
	out := make([]smartai.ScriptRow, 0, len(rows))
	for _, row := range rows {
		if seen[row.Key()] {
			continue
		}
		seen[row.Key()] = true
		out = append(out, row)
	}
	return out
}

// Texts flattens batch results to their text.
func Texts(results map[smartai.RowKey]Result) map[smartai.RowKey]string {
	out := make(map[smartai.RowKey]string, len(results))
	for k, r := range results {
		out[k] = r.Text
	}
	return out
}
