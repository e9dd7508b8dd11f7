package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	crerr "github.com/cockroachdb/errors"
	"github.com/lib/pq"
)

func TestIsNotFound(t *testing.T) {
	if !isNotFound(fmt.Errorf("select: %w", sql.ErrNoRows)) {
		t.Fatalf("expected wrapped sql.ErrNoRows to be not found")
	}
	if isNotFound(errors.New("boom")) {
		t.Fatalf("expected unrelated error not to be not found")
	}
}

func TestIsUniqueViolation(t *testing.T) {
	t.Run("matches 23505", func(t *testing.T) {
		err := fmt.Errorf("insert: %w", &pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"})
		if !isUniqueViolation(err) {
			t.Fatalf("expected true for unique violation")
		}
	})

	t.Run("ignores other codes", func(t *testing.T) {
		if isUniqueViolation(&pq.Error{Code: "42P01"}) {
			t.Fatalf("expected false for undefined table")
		}
	})
}

func TestWrapStorage(t *testing.T) {
	base := errors.New("connection refused")
	err := wrapStorage(base, "select matchdays")

	if !crerr.Is(err, errStorage) {
		t.Fatalf("expected storage marker")
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected original cause to be preserved")
	}
	if got := err.Error(); got != "select matchdays: connection refused" {
		t.Fatalf("unexpected message: %s", got)
	}
	if wrapStorage(nil, "noop") != nil {
		t.Fatalf("expected nil for nil error")
	}
}

func TestNullString(t *testing.T) {
	if nullString("").Valid {
		t.Fatalf("expected empty string to be null")
	}
	if got := nullString("p1"); !got.Valid || got.String != "p1" {
		t.Fatalf("unexpected null string: %+v", got)
	}
}
