// Package storage reads smart_scripts rows and entity names from a world
// database or from memory. It never writes.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/AaronLay10/SaiScope/internal/config"
	"github.com/AaronLay10/SaiScope/internal/definitions"
	"github.com/AaronLay10/SaiScope/internal/smartai"
)

const rowColumns = `entryorguid, source_type, id, link,
	event_type, event_phase_mask, event_chance, event_flags,
	event_param1, event_param2, event_param3, event_param4, event_param5, event_param6,
	action_type, action_param1, action_param2, action_param3, action_param4, action_param5, action_param6,
	target_type, target_param1, target_param2, target_param3, target_param4,
	target_x, target_y, target_z, target_o, comment`

// SQLRepository serves script rows from the smart_scripts table.
type SQLRepository struct {
	db      *sql.DB
	dialect Dialect

	mu          sync.Mutex
	errorLogged bool
}

// Open connects to the database described by cfg and pings it within the
// configured connect timeout.
func Open(ctx context.Context, cfg config.Database) (*SQLRepository, error) {
	dialect, err := ParseDialect(cfg.DriverName())
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(string(dialect), dialect.DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", dialect, err)
	}
	if dialect == SQLite {
		db.SetMaxOpenConns(1)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout())
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping %s: %w", dialect, err)
	}

	return NewSQLRepository(db, dialect), nil
}

// NewSQLRepository wraps an open handle.
func NewSQLRepository(db *sql.DB, dialect Dialect) *SQLRepository {
	return &SQLRepository{db: db, dialect: dialect}
}

// DB returns the underlying handle for name lookups.
func (r *SQLRepository) DB() *sql.DB {
	return r.db
}

// Dialect returns the repository's SQL dialect.
func (r *SQLRepository) Dialect() Dialect {
	return r.dialect
}

// Close releases the handle.
func (r *SQLRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

// FetchGroup returns every row of one group ordered by id.
func (r *SQLRepository) FetchGroup(ctx context.Context, sourceType smartai.SourceType, entryOrGuid int64) ([]smartai.ScriptRow, error) {
	key := smartai.GroupKey{SourceType: sourceType, EntryOrGuid: entryOrGuid}
	rows, err := r.query(ctx, `SELECT `+rowColumns+` FROM smart_scripts
		WHERE source_type = ? AND entryorguid = ? ORDER BY id`, int(sourceType), entryOrGuid)
	if err != nil {
		return nil, r.fail("fetch", key, err)
	}
	if len(rows) == 0 {
		return nil, smartai.ErrGroupNotFound
	}
	return rows, nil
}

// FetchTimedActionList returns the rows of a timed action list.
func (r *SQLRepository) FetchTimedActionList(ctx context.Context, listID int64) ([]smartai.ScriptRow, error) {
	return r.FetchGroup(ctx, smartai.SourceTimedActionList, listID)
}

// FindDataSetListeners returns every DATA_SET row in the table matching
// field and value.
func (r *SQLRepository) FindDataSetListeners(ctx context.Context, field, value int64) ([]smartai.ScriptRow, error) {
	rows, err := r.query(ctx, `SELECT `+rowColumns+` FROM smart_scripts
		WHERE event_type = ? AND event_param1 = ? AND event_param2 = ?
		ORDER BY source_type, entryorguid, id`, definitions.EventDataSet, field, value)
	if err != nil {
		return nil, r.fail("find listeners", smartai.GroupKey{}, err)
	}
	return rows, nil
}

// EntityName returns the template name of the creature or gameobject that
// owns key. Negative entries are spawn guids. Timed action lists are named
// after the creature entry they conventionally belong to (id / 100).
func (r *SQLRepository) EntityName(ctx context.Context, key smartai.GroupKey) (string, error) {
	var query string
	id := key.EntryOrGuid
	switch {
	case key.SourceType == smartai.SourceCreature && id >= 0:
		query = `SELECT name FROM creature_template WHERE entry = ?`
	case key.SourceType == smartai.SourceCreature:
		query = `SELECT ct.name FROM creature c JOIN creature_template ct ON c.id1 = ct.entry WHERE c.guid = ?`
		id = -id
	case key.SourceType == smartai.SourceGameObject && id >= 0:
		query = `SELECT name FROM gameobject_template WHERE entry = ?`
	case key.SourceType == smartai.SourceGameObject:
		query = `SELECT gt.name FROM gameobject g JOIN gameobject_template gt ON g.id = gt.entry WHERE g.guid = ?`
		id = -id
	case key.SourceType == smartai.SourceTimedActionList:
		query = `SELECT name FROM creature_template WHERE entry = ?`
		id /= 100
	default:
		return fallbackEntityName(key), nil
	}

	var name string
	err := r.db.QueryRowContext(ctx, r.dialect.Rebind(query), id).Scan(&name)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return fallbackEntityName(key), nil
	case err != nil:
		return "", r.fail("entity name", key, err)
	}
	return name, nil
}

func fallbackEntityName(key smartai.GroupKey) string {
	switch key.SourceType {
	case smartai.SourceAreaTrigger:
		return "Areatrigger"
	case smartai.SourceGameObject:
		return fmt.Sprintf("Gameobject %d", key.EntryOrGuid)
	}
	return fmt.Sprintf("Creature %d", key.EntryOrGuid)
}

func (r *SQLRepository) query(ctx context.Context, query string, args ...any) ([]smartai.ScriptRow, error) {
	rows, err := r.db.QueryContext(ctx, r.dialect.Rebind(query), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []smartai.ScriptRow
	for rows.Next() {
		row, err := scanRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func scanRow(rows *sql.Rows) (smartai.ScriptRow, error) {
	var (
		r          smartai.ScriptRow
		sourceType int
		comment    sql.NullString
	)
	err := rows.Scan(
		&r.EntryOrGuid, &sourceType, &r.ID, &r.Link,
		&r.EventType, &r.EventPhaseMask, &r.EventChance, &r.EventFlags,
		&r.EventParams[0], &r.EventParams[1], &r.EventParams[2], &r.EventParams[3], &r.EventParams[4], &r.EventParams[5],
		&r.ActionType, &r.ActionParams[0], &r.ActionParams[1], &r.ActionParams[2], &r.ActionParams[3], &r.ActionParams[4], &r.ActionParams[5],
		&r.TargetType, &r.TargetParams[0], &r.TargetParams[1], &r.TargetParams[2], &r.TargetParams[3],
		&r.TargetX, &r.TargetY, &r.TargetZ, &r.TargetO, &comment,
	)
	if err != nil {
		return r, err
	}
	r.SourceType = smartai.SourceType(sourceType)
	r.Comment = strings.TrimSpace(comment.String)
	return r, nil
}

// fail wraps a driver error and logs the first one only.
func (r *SQLRepository) fail(op string, key smartai.GroupKey, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	r.mu.Lock()
	if !r.errorLogged {
		log.Printf("storage: %s query failed: %v", r.dialect, err)
		r.errorLogged = true
	}
	r.mu.Unlock()
	return &smartai.RepositoryError{Op: op, Key: key, Err: err}
}
