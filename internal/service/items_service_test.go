package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"item-api/internal/models"
	"item-api/internal/repository"
)

// fakeAudit is an in-memory repository.Audit.
type fakeAudit struct {
	events []models.AuditEvent
	err    error
}

func (f *fakeAudit) Append(ctx context.Context, e models.AuditEvent) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, e)
	return nil
}

func (f *fakeAudit) List(ctx context.Context, from, to time.Time, action string) ([]models.AuditEvent, error) {
	return f.events, f.err
}

var testActor = models.Identity{UserID: 1, Username: "testuser"}

func newItemsService() (*ItemsService, *fakeAudit) {
	audit := &fakeAudit{}
	return NewItemsService(repository.NewItemStore(), audit), audit
}

func TestItemsService_CreateValidatesFields(t *testing.T) {
	s, audit := newItemsService()
	ctx := context.Background()

	for _, tc := range []struct {
		name string
		n, d string
	}{
		{"missing description", "A", ""},
		{"missing name", "", "B"},
		{"both missing", "", ""},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := s.Create(ctx, testActor, tc.n, tc.d); !errors.Is(err, ErrMissingFields) {
				t.Fatalf("want ErrMissingFields, got %v", err)
			}
		})
	}
	if len(audit.events) != 0 {
		t.Fatalf("rejected creates were audited: %+v", audit.events)
	}

	it, err := s.Create(ctx, testActor, "A", "B")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	got, err := s.Get(ctx, it.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != "A" || got.Description != "B" {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if len(audit.events) != 1 || audit.events[0].Action != ActionItemCreated || audit.events[0].Actor != "testuser" {
		t.Fatalf("unexpected audit trail: %+v", audit.events)
	}
}

func TestItemsService_PartialUpdate(t *testing.T) {
	s, _ := newItemsService()
	ctx := context.Background()

	it, err := s.Create(ctx, testActor, "X", "Y")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	upd, err := s.Update(ctx, testActor, it.ID, "Z", "")
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if upd.Name != "Z" || upd.Description != "Y" {
		t.Fatalf("partial update wrong: %+v", upd)
	}
}

func TestItemsService_UpdateCheckOrder(t *testing.T) {
	s, _ := newItemsService()
	ctx := context.Background()

	// unknown id beats empty body
	if _, err := s.Update(ctx, testActor, 999, "", ""); !errors.Is(err, repository.ErrItemNotFound) {
		t.Fatalf("want ErrItemNotFound, got %v", err)
	}
	// known id with empty body
	if _, err := s.Update(ctx, testActor, 1, "", ""); !errors.Is(err, repository.ErrEmptyUpdate) {
		t.Fatalf("want ErrEmptyUpdate, got %v", err)
	}
}

func TestItemsService_DeleteIdempotenceOfAbsence(t *testing.T) {
	s, audit := newItemsService()
	ctx := context.Background()

	before := len(s.List(ctx))
	for i := 0; i < 2; i++ {
		if err := s.Delete(ctx, testActor, 999); !errors.Is(err, repository.ErrItemNotFound) {
			t.Fatalf("attempt %d: want ErrItemNotFound, got %v", i+1, err)
		}
	}
	if got := len(s.List(ctx)); got != before {
		t.Fatalf("collection size changed: %d -> %d", before, got)
	}
	if len(audit.events) != 0 {
		t.Fatalf("failed deletes were audited: %+v", audit.events)
	}
}

func TestItemsService_MonotonicIDs(t *testing.T) {
	s, _ := newItemsService()
	ctx := context.Background()

	a, _ := s.Create(ctx, testActor, "a", "a")
	b, _ := s.Create(ctx, testActor, "b", "b")
	if b.ID <= a.ID {
		t.Fatalf("ids not increasing: %d then %d", a.ID, b.ID)
	}

	if err := s.Delete(ctx, testActor, b.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	c, _ := s.Create(ctx, testActor, "c", "c")
	if c.ID <= b.ID {
		t.Fatalf("id reused after delete: %d then %d", b.ID, c.ID)
	}
}

func TestItemsService_AuditFailurePropagates(t *testing.T) {
	audit := &fakeAudit{err: errors.New("db down")}
	s := NewItemsService(repository.NewItemStore(), audit)

	if _, err := s.Create(context.Background(), testActor, "A", "B"); err == nil {
		t.Fatalf("expected audit error to propagate")
	}
}
