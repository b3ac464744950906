package db

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	db.SetMaxOpenConns(1)

	_, err = db.Exec(`CREATE TABLE test_table (id INTEGER PRIMARY KEY, value TEXT)`)
	if err != nil {
		db.Close()
		t.Fatalf("failed to create table: %v", err)
	}

	return db
}

func countRows(t *testing.T, db *sql.DB) int {
	t.Helper()
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM test_table`).Scan(&count); err != nil {
		t.Fatalf("query failed: %v", err)
	}
	return count
}

func TestWithTx_Success(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	err := WithTx(t.Context(), db, func(tx *sql.Tx) error {
		for _, v := range []string{"first", "second"} {
			if _, err := tx.Exec(`INSERT INTO test_table (value) VALUES (?)`, v); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("WithTx failed: %v", err)
	}

	if got := countRows(t, db); got != 2 {
		t.Errorf("count = %d, want 2", got)
	}
}

func TestWithTx_Rollback(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	testErr := errors.New("test error")

	err := WithTx(t.Context(), db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT INTO test_table (value) VALUES (?)`, "test"); err != nil {
			return err
		}
		return testErr
	})

	if !errors.Is(err, testErr) {
		t.Fatalf("WithTx should return the error: got %v, want %v", err, testErr)
	}
	if got := countRows(t, db); got != 0 {
		t.Errorf("count = %d, want 0 (rolled back)", got)
	}
}

func TestWithTx_CancelledContext(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	called := false
	err := WithTx(ctx, db, func(*sql.Tx) error {
		called = true
		return nil
	})

	if err == nil {
		t.Fatal("WithTx should fail with a cancelled context")
	}
	if called {
		t.Error("fn should not run without a transaction")
	}
}

func TestNullString(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want sql.NullString
	}{
		{"empty is null", "", sql.NullString{}},
		{"text is valid", "apple", sql.NullString{String: "apple", Valid: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NullString(tt.in)
			if got != tt.want {
				t.Errorf("NullString(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
			if back := NullStringValue(got); back != tt.in {
				t.Errorf("NullStringValue() = %q, want %q", back, tt.in)
			}
		})
	}
}
