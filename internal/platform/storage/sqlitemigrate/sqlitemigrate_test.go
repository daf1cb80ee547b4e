package sqlitemigrate

import (
	"database/sql"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

const usersUp = `-- +migrate Up
CREATE TABLE users (
    id TEXT PRIMARY KEY,
    username TEXT NOT NULL UNIQUE,
    created_at INTEGER NOT NULL
);
-- +migrate Down
DROP TABLE users;
`

const postsUp = `-- +migrate Up
CREATE TABLE posts (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL REFERENCES users(id),
    body TEXT NOT NULL,
    created_at INTEGER NOT NULL
);
-- +migrate Down
DROP TABLE posts;
`

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open in-memory db: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Fatalf("close db: %v", err)
		}
	})
	return db
}

func countLedger(t *testing.T, db *sql.DB) int64 {
	t.Helper()
	var n int64
	if err := db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&n); err != nil {
		t.Fatalf("count ledger rows: %v", err)
	}
	return n
}

func hasTable(t *testing.T, db *sql.DB, table string) bool {
	t.Helper()
	var name string
	err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name = ?", table).Scan(&name)
	if err == sql.ErrNoRows {
		return false
	}
	if err != nil {
		t.Fatalf("look up table %s: %v", table, err)
	}
	return true
}

func TestApplyMigrationsRunsInOrder(t *testing.T) {
	db := openTestDB(t)

	migrations := fstest.MapFS{
		"001_users.sql": &fstest.MapFile{Data: []byte(usersUp)},
		"002_posts.sql": &fstest.MapFile{Data: []byte(postsUp)},
	}
	if err := ApplyMigrations(db, migrations, ""); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}

	if got := countLedger(t, db); got != 2 {
		t.Fatalf("ledger rows = %d, want 2", got)
	}
	for _, table := range []string{"users", "posts"} {
		if !hasTable(t, db, table) {
			t.Fatalf("expected table %s after migration", table)
		}
	}
	// Down sections must never execute.
	if _, err := db.Exec("INSERT INTO users (id, username, created_at) VALUES ('u1', 'alice', 0)"); err != nil {
		t.Fatalf("insert into migrated table: %v", err)
	}
}

func TestApplyMigrationsReplayIsIdempotent(t *testing.T) {
	db := openTestDB(t)

	migrations := fstest.MapFS{
		"001_users.sql": &fstest.MapFile{Data: []byte(usersUp)},
	}
	if err := ApplyMigrations(db, migrations, ""); err != nil {
		t.Fatalf("first apply: %v", err)
	}
	if err := ApplyMigrations(db, migrations, ""); err != nil {
		t.Fatalf("second apply: %v", err)
	}

	if got := countLedger(t, db); got != 1 {
		t.Fatalf("ledger rows after replay = %d, want 1", got)
	}
}

func TestApplyMigrationsLeavesFailedFileUnrecorded(t *testing.T) {
	db := openTestDB(t)

	broken := fstest.MapFS{
		"001_sessions.sql": &fstest.MapFile{
			Data: []byte("-- +migrate Up\nCREAT TABLE sessions (id TEXT PRIMARY KEY);"),
		},
	}
	if err := ApplyMigrations(db, broken, ""); err == nil {
		t.Fatal("expected broken migration to fail")
	}
	if got := countLedger(t, db); got != 0 {
		t.Fatalf("ledger rows after failure = %d, want 0", got)
	}

	fixed := fstest.MapFS{
		"001_sessions.sql": &fstest.MapFile{
			Data: []byte("-- +migrate Up\nCREATE TABLE sessions (id TEXT PRIMARY KEY, user_id TEXT NOT NULL, expires_at INTEGER NOT NULL);"),
		},
	}
	if err := ApplyMigrations(db, fixed, ""); err != nil {
		t.Fatalf("apply fixed migration: %v", err)
	}
	if got := countLedger(t, db); got != 1 {
		t.Fatalf("ledger rows after fix = %d, want 1", got)
	}
	if !hasTable(t, db, "sessions") {
		t.Fatal("expected sessions table after fixed migration")
	}
}

func TestApplyMigrationsScopedToRoot(t *testing.T) {
	db := openTestDB(t)

	migrations := fstest.MapFS{
		"sql/001_follows.sql": &fstest.MapFile{
			Data: []byte("-- +migrate Up\nCREATE TABLE follows (follower_id TEXT NOT NULL, followed_id TEXT NOT NULL, PRIMARY KEY (follower_id, followed_id));"),
		},
	}
	if err := ApplyMigrations(db, migrations, "sql"); err != nil {
		t.Fatalf("apply migrations under root: %v", err)
	}

	var key string
	if err := db.QueryRow("SELECT name FROM schema_migrations").Scan(&key); err != nil {
		t.Fatalf("read ledger key: %v", err)
	}
	if key != "sql/001_follows.sql" {
		t.Fatalf("ledger key = %q, want %q", key, "sql/001_follows.sql")
	}
	if !hasTable(t, db, "follows") {
		t.Fatal("expected follows table after scoped migration")
	}
}

func TestApplyMigrationsToleratesPreexistingSchema(t *testing.T) {
	db := openTestDB(t)

	if _, err := db.Exec("CREATE TABLE users (id TEXT PRIMARY KEY, username TEXT NOT NULL UNIQUE, created_at INTEGER NOT NULL)"); err != nil {
		t.Fatalf("seed preexisting schema: %v", err)
	}

	migrations := fstest.MapFS{
		"001_users.sql": &fstest.MapFile{Data: []byte(usersUp)},
	}
	if err := ApplyMigrations(db, migrations, ""); err != nil {
		t.Fatalf("apply over preexisting schema: %v", err)
	}
	if got := countLedger(t, db); got != 1 {
		t.Fatalf("ledger rows = %d, want 1", got)
	}
}
