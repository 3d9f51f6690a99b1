package resolver

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	"golang.org/x/time/rate"

	"github.com/AaronLay10/SaiScope/internal/definitions"
	"github.com/AaronLay10/SaiScope/internal/storage"
)

var worldQueries = map[definitions.ParamRole]string{
	definitions.RoleCreature:       `SELECT name FROM creature_template WHERE entry = ?`,
	definitions.RoleCreatureGUID:   `SELECT ct.name FROM creature c JOIN creature_template ct ON c.id1 = ct.entry WHERE c.guid = ?`,
	definitions.RoleGameObject:     `SELECT name FROM gameobject_template WHERE entry = ?`,
	definitions.RoleGameObjectGUID: `SELECT gt.name FROM gameobject g JOIN gameobject_template gt ON g.id = gt.entry WHERE g.guid = ?`,
	definitions.RoleQuest:          `SELECT LogTitle FROM quest_template WHERE ID = ?`,
	definitions.RoleItem:           `SELECT name FROM item_template WHERE entry = ?`,
}

// SQLResolver resolves names from the world database. Spell names are not
// stored there; spell lookups always miss.
type SQLResolver struct {
	db      *sql.DB
	dialect storage.Dialect
	limiter *rate.Limiter
}

// NewSQL returns a resolver over db allowing perSecond lookups with a burst
// of the same size. perSecond <= 0 disables limiting.
func NewSQL(db *sql.DB, dialect storage.Dialect, perSecond float64) *SQLResolver {
	r := &SQLResolver{db: db, dialect: dialect}
	if perSecond > 0 {
		burst := int(perSecond)
		if burst < 1 {
			burst = 1
		}
		r.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
	return r
}

func (r *SQLResolver) ResolveName(ctx context.Context, role definitions.ParamRole, id int64) (string, bool, error) {
	query, ok := worldQueries[role]
	if !ok {
		return "", false, nil
	}
	if r.limiter != nil {
		if err := r.limiter.Wait(ctx); err != nil {
			return "", false, err
		}
	}
	return queryName(ctx, r.db, r.dialect.Rebind(query), id)
}

// SpellDB resolves spell names from a Keira3 style sqlite file holding
// spells(ID, spellName).
type SpellDB struct {
	db *sql.DB
}

// OpenSpellDB opens the sqlite file at path. The file must exist.
func OpenSpellDB(ctx context.Context, path string) (*SpellDB, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("spell db: %w", err)
	}
	db, err := sql.Open(string(storage.SQLite), path)
	if err != nil {
		return nil, fmt.Errorf("spell db: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("spell db: %w", err)
	}
	return NewSpellDB(db), nil
}

// NewSpellDB wraps an open sqlite handle.
func NewSpellDB(db *sql.DB) *SpellDB {
	return &SpellDB{db: db}
}

// Close releases the handle.
func (s *SpellDB) Close() error {
	return s.db.Close()
}

func (s *SpellDB) ResolveName(ctx context.Context, role definitions.ParamRole, id int64) (string, bool, error) {
	if role != definitions.RoleSpell {
		return "", false, nil
	}
	return queryName(ctx, s.db, `SELECT spellName FROM spells WHERE ID = ?`, id)
}

func queryName(ctx context.Context, db *sql.DB, query string, id int64) (string, bool, error) {
	var name sql.NullString
	err := db.QueryRowContext(ctx, query, id).Scan(&name)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", false, nil
	case err != nil:
		return "", false, err
	}
	if !name.Valid || name.String == "" {
		return "", false, nil
	}
	return name.String, true, nil
}
