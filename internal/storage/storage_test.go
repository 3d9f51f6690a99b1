package storage

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/AaronLay10/SaiScope/internal/config"
	"github.com/AaronLay10/SaiScope/internal/definitions"
	"github.com/AaronLay10/SaiScope/internal/smartai"
)

const worldSchema = `
CREATE TABLE smart_scripts (
	entryorguid INTEGER NOT NULL, source_type INTEGER NOT NULL, id INTEGER NOT NULL, link INTEGER NOT NULL DEFAULT 0,
	event_type INTEGER NOT NULL DEFAULT 0, event_phase_mask INTEGER NOT NULL DEFAULT 0,
	event_chance INTEGER NOT NULL DEFAULT 100, event_flags INTEGER NOT NULL DEFAULT 0,
	event_param1 INTEGER NOT NULL DEFAULT 0, event_param2 INTEGER NOT NULL DEFAULT 0, event_param3 INTEGER NOT NULL DEFAULT 0,
	event_param4 INTEGER NOT NULL DEFAULT 0, event_param5 INTEGER NOT NULL DEFAULT 0, event_param6 INTEGER NOT NULL DEFAULT 0,
	action_type INTEGER NOT NULL DEFAULT 0,
	action_param1 INTEGER NOT NULL DEFAULT 0, action_param2 INTEGER NOT NULL DEFAULT 0, action_param3 INTEGER NOT NULL DEFAULT 0,
	action_param4 INTEGER NOT NULL DEFAULT 0, action_param5 INTEGER NOT NULL DEFAULT 0, action_param6 INTEGER NOT NULL DEFAULT 0,
	target_type INTEGER NOT NULL DEFAULT 0,
	target_param1 INTEGER NOT NULL DEFAULT 0, target_param2 INTEGER NOT NULL DEFAULT 0,
	target_param3 INTEGER NOT NULL DEFAULT 0, target_param4 INTEGER NOT NULL DEFAULT 0,
	target_x REAL NOT NULL DEFAULT 0, target_y REAL NOT NULL DEFAULT 0, target_z REAL NOT NULL DEFAULT 0, target_o REAL NOT NULL DEFAULT 0,
	comment TEXT,
	PRIMARY KEY (entryorguid, source_type, id)
);
CREATE TABLE creature_template (entry INTEGER PRIMARY KEY, name TEXT NOT NULL);
CREATE TABLE creature (guid INTEGER PRIMARY KEY, id1 INTEGER NOT NULL);
CREATE TABLE gameobject_template (entry INTEGER PRIMARY KEY, name TEXT NOT NULL);
CREATE TABLE gameobject (guid INTEGER PRIMARY KEY, id INTEGER NOT NULL);
INSERT INTO creature_template VALUES (448, 'Hogger');
INSERT INTO creature VALUES (79000, 448);
INSERT INTO gameobject_template VALUES (1731, 'Copper Vein');
INSERT INTO smart_scripts (entryorguid, source_type, id, link, event_type, action_type, action_param1, target_type, comment)
	VALUES (448, 0, 1, 0, 25, 11, 8599, 1, 'Hogger - On Reset - Cast Enrage');
INSERT INTO smart_scripts (entryorguid, source_type, id, link, event_type, action_type, action_param1, target_type, comment)
	VALUES (448, 0, 0, 1, 4, 1, 0, 1, NULL);
INSERT INTO smart_scripts (entryorguid, source_type, id, event_type, event_param1, event_param2, action_type, target_type, target_x, target_o)
	VALUES (449, 0, 0, 38, 1, 2, 24, 1, 12.5, 3.14);
INSERT INTO smart_scripts (entryorguid, source_type, id, event_type, action_type, action_param1)
	VALUES (44800, 9, 0, 0, 1, 3);
`

func openWorld(t *testing.T) *SQLRepository {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	if _, err := db.Exec(worldSchema); err != nil {
		t.Fatalf("create schema: %v", err)
	}
	return NewSQLRepository(db, SQLite)
}

func TestSQLFetchGroup(t *testing.T) {
	repo := openWorld(t)

	rows, err := repo.FetchGroup(context.Background(), smartai.SourceCreature, 448)
	if err != nil {
		t.Fatalf("FetchGroup: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].ID != 0 || rows[1].ID != 1 {
		t.Errorf("rows not ordered by id: %d, %d", rows[0].ID, rows[1].ID)
	}
	want := smartai.ScriptRow{
		SourceType: smartai.SourceCreature, EntryOrGuid: 448, ID: 1,
		EventType: 25, EventChance: 100, ActionType: 11, ActionParams: [6]int64{8599},
		TargetType: 1, Comment: "Hogger - On Reset - Cast Enrage",
	}
	if diff := cmp.Diff(want, rows[1]); diff != "" {
		t.Errorf("row mismatch (-want +got):\n%s", diff)
	}
	if rows[0].Link != 1 || rows[0].Comment != "" {
		t.Errorf("row 0 = %+v", rows[0])
	}
}

func TestSQLFetchGroupNotFound(t *testing.T) {
	repo := openWorld(t)
	_, err := repo.FetchGroup(context.Background(), smartai.SourceCreature, 1)
	if !smartai.IsNotFound(err) {
		t.Fatalf("err = %v, want ErrGroupNotFound", err)
	}
}

func TestSQLFetchTimedActionList(t *testing.T) {
	repo := openWorld(t)
	rows, err := repo.FetchTimedActionList(context.Background(), 44800)
	if err != nil {
		t.Fatalf("FetchTimedActionList: %v", err)
	}
	if len(rows) != 1 || rows[0].SourceType != smartai.SourceTimedActionList || rows[0].ActionParams[0] != 3 {
		t.Errorf("rows = %+v", rows)
	}
}

func TestSQLFindDataSetListeners(t *testing.T) {
	repo := openWorld(t)
	rows, err := repo.FindDataSetListeners(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("FindDataSetListeners: %v", err)
	}
	if len(rows) != 1 || rows[0].Key().String() != "Creature/449#0" {
		t.Fatalf("rows = %+v", rows)
	}
	if rows[0].TargetX != 12.5 || rows[0].TargetO != 3.14 {
		t.Errorf("coordinates = %v %v", rows[0].TargetX, rows[0].TargetO)
	}

	none, err := repo.FindDataSetListeners(context.Background(), 9, 9)
	if err != nil || len(none) != 0 {
		t.Errorf("no match = %v, %v", none, err)
	}
}

func TestSQLEntityName(t *testing.T) {
	repo := openWorld(t)
	tests := []struct {
		key  smartai.GroupKey
		want string
	}{
		{smartai.GroupKey{SourceType: smartai.SourceCreature, EntryOrGuid: 448}, "Hogger"},
		{smartai.GroupKey{SourceType: smartai.SourceCreature, EntryOrGuid: -79000}, "Hogger"},
		{smartai.GroupKey{SourceType: smartai.SourceTimedActionList, EntryOrGuid: 44800}, "Hogger"},
		{smartai.GroupKey{SourceType: smartai.SourceGameObject, EntryOrGuid: 1731}, "Copper Vein"},
		{smartai.GroupKey{SourceType: smartai.SourceCreature, EntryOrGuid: 5}, "Creature 5"},
		{smartai.GroupKey{SourceType: smartai.SourceAreaTrigger, EntryOrGuid: 4422}, "Areatrigger"},
	}
	for _, tt := range tests {
		got, err := repo.EntityName(context.Background(), tt.key)
		if err != nil {
			t.Fatalf("EntityName(%s): %v", tt.key, err)
		}
		if got != tt.want {
			t.Errorf("EntityName(%s) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestSQLDriverFailureIsRepositoryError(t *testing.T) {
	repo := openWorld(t)
	repo.DB().Close()

	_, err := repo.FetchGroup(context.Background(), smartai.SourceCreature, 448)
	var re *smartai.RepositoryError
	if !errors.As(err, &re) {
		t.Fatalf("err = %v, want RepositoryError", err)
	}
	if re.Op != "fetch" || re.Key.EntryOrGuid != 448 {
		t.Errorf("RepositoryError = %+v", re)
	}
	if smartai.IsNotFound(err) {
		t.Error("driver failure must not look like not found")
	}
}

func TestOpenSQLiteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.db")
	seed, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := seed.Exec(worldSchema); err != nil {
		t.Fatalf("seed: %v", err)
	}
	seed.Close()

	repo, err := Open(context.Background(), config.Database{Driver: "sqlite", Path: path})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer repo.Close()
	if repo.Dialect() != SQLite {
		t.Errorf("Dialect = %s", repo.Dialect())
	}
	if _, err := repo.FetchGroup(context.Background(), smartai.SourceCreature, 448); err != nil {
		t.Errorf("FetchGroup: %v", err)
	}
}

func TestOpenRejectsDriver(t *testing.T) {
	if _, err := Open(context.Background(), config.Database{Driver: "oracle"}); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}

func TestRebind(t *testing.T) {
	q := "SELECT a FROM t WHERE b = ? AND c = ?"
	if got := Postgres.Rebind(q); got != "SELECT a FROM t WHERE b = $1 AND c = $2" {
		t.Errorf("postgres Rebind = %q", got)
	}
	if got := MySQL.Rebind(q); got != q {
		t.Errorf("mysql Rebind = %q", got)
	}
}

func TestDSN(t *testing.T) {
	db := config.Database{Host: "db", User: "acore", Password: "p w", Name: "acore_world"}

	my := MySQL.DSN(db)
	if !strings.HasPrefix(my, "acore:p w@tcp(db:3306)/acore_world") {
		t.Errorf("mysql DSN = %q", my)
	}

	db.Driver = "postgres"
	pg := Postgres.DSN(db)
	for _, part := range []string{"host=db", "port=5432", "dbname=acore_world", "password='p w'", "sslmode=disable"} {
		if !strings.Contains(pg, part) {
			t.Errorf("postgres DSN %q missing %q", pg, part)
		}
	}

	if got := SQLite.DSN(config.Database{Path: "/tmp/world.db"}); got != "/tmp/world.db" {
		t.Errorf("sqlite DSN = %q", got)
	}
}

func TestParseDialect(t *testing.T) {
	for in, want := range map[string]Dialect{"": MySQL, "MariaDB": MySQL, "postgresql": Postgres, "sqlite3": SQLite} {
		got, err := ParseDialect(in)
		if err != nil || got != want {
			t.Errorf("ParseDialect(%q) = %s, %v; want %s", in, got, err, want)
		}
	}
}

func TestMemoryRepository(t *testing.T) {
	listener := smartai.ScriptRow{SourceType: smartai.SourceCreature, EntryOrGuid: 449, ID: 0, EventType: definitions.EventDataSet, EventParams: [6]int64{1, 2}}
	repo := NewMemoryRepository([]smartai.ScriptRow{
		{SourceType: smartai.SourceCreature, EntryOrGuid: 448, ID: 1},
		{SourceType: smartai.SourceCreature, EntryOrGuid: 448, ID: 0},
		listener,
	})
	repo.SetName(smartai.GroupKey{SourceType: smartai.SourceCreature, EntryOrGuid: 448}, "Hogger")
	ctx := context.Background()

	rows, err := repo.FetchGroup(ctx, smartai.SourceCreature, 448)
	if err != nil {
		t.Fatalf("FetchGroup: %v", err)
	}
	if rows[0].ID != 0 || rows[1].ID != 1 {
		t.Errorf("rows not ordered: %d %d", rows[0].ID, rows[1].ID)
	}
	rows[0].ID = 99
	again, _ := repo.FetchGroup(ctx, smartai.SourceCreature, 448)
	if again[0].ID != 0 {
		t.Error("FetchGroup must return a copy")
	}

	if _, err := repo.FetchTimedActionList(ctx, 1); !smartai.IsNotFound(err) {
		t.Errorf("missing list err = %v", err)
	}

	found, err := repo.FindDataSetListeners(ctx, 1, 2)
	if err != nil {
		t.Fatalf("FindDataSetListeners: %v", err)
	}
	if diff := cmp.Diff([]smartai.ScriptRow{listener}, found); diff != "" {
		t.Errorf("listeners mismatch (-want +got):\n%s", diff)
	}

	name, _ := repo.EntityName(ctx, smartai.GroupKey{SourceType: smartai.SourceCreature, EntryOrGuid: 448})
	if name != "Hogger" {
		t.Errorf("EntityName = %q", name)
	}
	if got := len(repo.Groups()); got != 2 {
		t.Errorf("Groups = %d, want 2", got)
	}
}

func TestMemoryRepositoryCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewMemoryRepository(nil).FetchGroup(ctx, smartai.SourceCreature, 1); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
