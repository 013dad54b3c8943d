package pagination

import (
	"testing"
	"time"
)

func TestValidateClampsParams(t *testing.T) {
	p := &PaginationParams{Page: 0, PerPage: 500}
	p.Validate()
	if p.Page != 1 {
		t.Errorf("page = %d, want 1", p.Page)
	}
	if p.PerPage != 100 {
		t.Errorf("per page = %d, want 100", p.PerPage)
	}

	p = &PaginationParams{Page: 3, PerPage: 0}
	p.Validate()
	if p.PerPage != 15 {
		t.Errorf("per page = %d, want default 15", p.PerPage)
	}
	if p.Offset() != 30 {
		t.Errorf("offset = %d, want 30", p.Offset())
	}
}

func TestNewPagination(t *testing.T) {
	pag := NewPagination(2, 15, 31)
	if pag.TotalPages != 3 {
		t.Errorf("total pages = %d, want 3", pag.TotalPages)
	}
	if !pag.HasNext || !pag.HasPrev {
		t.Errorf("has next/prev = %v/%v, want true/true", pag.HasNext, pag.HasPrev)
	}

	pag = NewPagination(1, 15, 10)
	if pag.HasNext || pag.HasPrev {
		t.Errorf("single page should have no next/prev")
	}
}

func TestCursorRoundTrip(t *testing.T) {
	created := time.Date(2024, time.May, 1, 12, 0, 0, 0, time.UTC)
	encoded := EncodeCursor("abc-123", created)

	params := &CursorParams{Cursor: encoded}
	cursor, err := params.DecodeCursor()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cursor.ID != "abc-123" {
		t.Errorf("id = %q, want abc-123", cursor.ID)
	}
	if !cursor.CreatedAt.Equal(created) {
		t.Errorf("created at = %v, want %v", cursor.CreatedAt, created)
	}
}

func TestDecodeCursorRejectsGarbage(t *testing.T) {
	params := &CursorParams{Cursor: "!!not-base64!!"}
	if _, err := params.DecodeCursor(); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestNewCursorPaginationTrimsExtraItem(t *testing.T) {
	type row struct {
		id      string
		created time.Time
	}
	items := []row{
		{"a", time.Now()},
		{"b", time.Now()},
		{"c", time.Now()},
	}

	pag, trimmed := NewCursorPagination(items, 2,
		func(r row) string { return r.id },
		func(r row) time.Time { return r.created })

	if len(trimmed) != 2 {
		t.Fatalf("trimmed length = %d, want 2", len(trimmed))
	}
	if !pag.HasNext {
		t.Error("expected has_next with an extra fetched item")
	}
	if pag.NextCursor == nil {
		t.Error("next cursor not set")
	}
}
