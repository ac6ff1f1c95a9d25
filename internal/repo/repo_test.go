package repo

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"barkday/internal/model"
)

func newTestRepository(t *testing.T) Repository {
	t.Helper()

	db, err := OpenDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("OpenDB() failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	logger := zerolog.Nop()
	r, err := NewRepository(db, &logger)
	if err != nil {
		t.Fatalf("NewRepository() failed: %v", err)
	}
	if err := r.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("EnsureSchema() failed: %v", err)
	}
	return r
}

func TestEnsureSchema_Idempotent(t *testing.T) {
	r := newTestRepository(t)

	for i := 0; i < 3; i++ {
		if err := r.EnsureSchema(context.Background()); err != nil {
			t.Fatalf("EnsureSchema() iteration %d failed: %v", i, err)
		}
	}
}

func TestInsertGuestbookEntry_IncreasingIDs(t *testing.T) {
	r := newTestRepository(t)
	ctx := context.Background()

	var last int64
	for i := 0; i < 3; i++ {
		id, err := r.InsertGuestbookEntry(ctx, &model.GuestbookEntry{
			CreatedAt: "2026-08-31T12:00:00Z",
			Name:      "Ann",
			Message:   "Happy birthday!",
		})
		if err != nil {
			t.Fatalf("InsertGuestbookEntry() failed: %v", err)
		}
		if id <= last {
			t.Errorf("expected strictly increasing ids, got %d after %d", id, last)
		}
		last = id
	}
}

func TestListGuestbookEntries_NewestFirst(t *testing.T) {
	r := newTestRepository(t)
	ctx := context.Background()

	for _, msg := range []string{"first", "second", "third"} {
		if _, err := r.InsertGuestbookEntry(ctx, &model.GuestbookEntry{
			CreatedAt: "2026-08-31T12:00:00Z",
			Name:      "Ann",
			Message:   msg,
		}); err != nil {
			t.Fatalf("InsertGuestbookEntry() failed: %v", err)
		}
	}

	entries, err := r.ListGuestbookEntries(ctx, 10)
	if err != nil {
		t.Fatalf("ListGuestbookEntries() failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].Message != "third" || entries[2].Message != "first" {
		t.Errorf("expected newest-first order, got %q .. %q", entries[0].Message, entries[2].Message)
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].ID >= entries[i-1].ID {
			t.Errorf("ids not descending: %d then %d", entries[i-1].ID, entries[i].ID)
		}
	}

	limited, err := r.ListGuestbookEntries(ctx, 2)
	if err != nil {
		t.Fatalf("ListGuestbookEntries(limit=2) failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("expected 2 entries with limit=2, got %d", len(limited))
	}
}

func TestListGuestbookEntries_Empty(t *testing.T) {
	r := newTestRepository(t)

	entries, err := r.ListGuestbookEntries(context.Background(), 10)
	if err != nil {
		t.Fatalf("ListGuestbookEntries() failed: %v", err)
	}
	if entries == nil {
		t.Error("expected empty slice, got nil")
	}
	if len(entries) != 0 {
		t.Errorf("expected no entries, got %d", len(entries))
	}
}

func TestDeleteGuestbookEntry_Twice(t *testing.T) {
	r := newTestRepository(t)
	ctx := context.Background()

	id, err := r.InsertGuestbookEntry(ctx, &model.GuestbookEntry{
		CreatedAt: "2026-08-31T12:00:00Z",
		Name:      "Ann",
		Message:   "bye",
	})
	if err != nil {
		t.Fatalf("InsertGuestbookEntry() failed: %v", err)
	}

	if err := r.DeleteGuestbookEntry(ctx, id); err != nil {
		t.Fatalf("first DeleteGuestbookEntry() failed: %v", err)
	}
	if err := r.DeleteGuestbookEntry(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete: expected ErrNotFound, got %v", err)
	}
}

func TestDeleteGuestbookEntry_Missing(t *testing.T) {
	r := newTestRepository(t)

	if err := r.DeleteGuestbookEntry(context.Background(), 42); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestInsertAndListRSVPs(t *testing.T) {
	r := newTestRepository(t)
	ctx := context.Background()

	first := &model.RSVPResponse{
		CreatedAt: "2026-08-31T12:00:00Z",
		Name:      "Ben",
		Contact:   "ben@example.com",
		Attend:    "yes",
		People:    2,
		Memo:      "bringing treats",
	}
	second := &model.RSVPResponse{
		CreatedAt: "2026-08-31T12:01:00Z",
		Name:      "Cleo",
		Contact:   "+1 555 0100",
		Attend:    "maybe",
		People:    1,
	}

	if _, err := r.InsertRSVP(ctx, first); err != nil {
		t.Fatalf("InsertRSVP() failed: %v", err)
	}
	if _, err := r.InsertRSVP(ctx, second); err != nil {
		t.Fatalf("InsertRSVP() failed: %v", err)
	}

	responses, err := r.ListRSVPs(ctx, 10)
	if err != nil {
		t.Fatalf("ListRSVPs() failed: %v", err)
	}
	if len(responses) != 2 {
		t.Fatalf("expected 2 rsvps, got %d", len(responses))
	}

	got := responses[0]
	if got.Name != "Cleo" || got.Attend != "maybe" || got.People != 1 || got.Memo != "" {
		t.Errorf("unexpected newest rsvp: %+v", got)
	}
	got = responses[1]
	if got.Name != "Ben" || got.Contact != "ben@example.com" || got.Memo != "bringing treats" {
		t.Errorf("unexpected oldest rsvp: %+v", got)
	}
}
