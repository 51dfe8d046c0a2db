package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MrSnakeDoc/slatrack/internal/domain"
)

func testService(name string) *domain.Service {
	return domain.NewService(name, domain.StatusOnline, name+" service", time.Now().UTC())
}

func TestNewStore(t *testing.T) {
	s := NewStore()
	if s == nil {
		t.Fatal("NewStore() returned nil")
	}
	services, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("List() = %v", err)
	}
	if len(services) != 0 {
		t.Errorf("NewStore() should start empty, got %d services", len(services))
	}
}

func TestCreateAndGet(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	svc := testService("billing")

	if err := s.Create(ctx, svc); err != nil {
		t.Fatalf("Create() = %v", err)
	}

	got, err := s.Get(ctx, svc.ID)
	if err != nil {
		t.Fatalf("Get() = %v", err)
	}
	if got.Name != "billing" {
		t.Errorf("Get().Name = %q, want %q", got.Name, "billing")
	}
	if s.Count() != 1 {
		t.Errorf("Count() = %d, want 1", s.Count())
	}
}

func TestCreateDuplicateName(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	if err := s.Create(ctx, testService("billing")); err != nil {
		t.Fatalf("Create() = %v", err)
	}
	if err := s.Create(ctx, testService("billing")); !errors.Is(err, domain.ErrDuplicateName) {
		t.Errorf("Create() duplicate = %v, want %v", err, domain.ErrDuplicateName)
	}
}

func TestGetReturnsClone(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	svc := testService("billing")
	if err := s.Create(ctx, svc); err != nil {
		t.Fatalf("Create() = %v", err)
	}

	got, err := s.Get(ctx, svc.ID)
	if err != nil {
		t.Fatalf("Get() = %v", err)
	}
	got.Name = "mutated"
	got.Statuses = got.Statuses.Append(domain.StatusUnstable, time.Now())

	again, err := s.Get(ctx, svc.ID)
	if err != nil {
		t.Fatalf("Get() = %v", err)
	}
	if again.Name != "billing" || len(again.Statuses) != 1 {
		t.Error("Get() must hand out clones, stored document was mutated")
	}
}

func TestListPreservesInsertionOrder(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	for _, name := range []string{"alpha", "beta", "gamma"} {
		if err := s.Create(ctx, testService(name)); err != nil {
			t.Fatalf("Create(%s) = %v", name, err)
		}
	}

	services, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List() = %v", err)
	}
	want := []string{"alpha", "beta", "gamma"}
	if len(services) != len(want) {
		t.Fatalf("List() returned %d services, want %d", len(services), len(want))
	}
	for i, name := range want {
		if services[i].Name != name {
			t.Errorf("List()[%d].Name = %q, want %q", i, services[i].Name, name)
		}
	}
}

func TestUpdateAbortsOnMutationError(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	svc := testService("billing")
	if err := s.Create(ctx, svc); err != nil {
		t.Fatalf("Create() = %v", err)
	}

	boom := errors.New("boom")
	_, err := s.Update(ctx, svc.ID, func(svc *domain.Service) error {
		svc.Name = "half-applied"
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Update() = %v, want %v", err, boom)
	}

	got, err := s.Get(ctx, svc.ID)
	if err != nil {
		t.Fatalf("Get() = %v", err)
	}
	if got.Name != "billing" {
		t.Errorf("aborted update leaked: Name = %q", got.Name)
	}
}

func TestUpdateRename(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	svc := testService("billing")
	other := testService("search")
	if err := s.Create(ctx, svc); err != nil {
		t.Fatalf("Create() = %v", err)
	}
	if err := s.Create(ctx, other); err != nil {
		t.Fatalf("Create() = %v", err)
	}

	// Collision with another service's name.
	_, err := s.Update(ctx, svc.ID, func(svc *domain.Service) error {
		svc.Name = "search"
		return nil
	})
	if !errors.Is(err, domain.ErrDuplicateName) {
		t.Fatalf("Update() rename collision = %v, want %v", err, domain.ErrDuplicateName)
	}

	// Successful rename frees the old name.
	if _, err := s.Update(ctx, svc.ID, func(svc *domain.Service) error {
		svc.Name = "payments"
		return nil
	}); err != nil {
		t.Fatalf("Update() = %v", err)
	}
	if err := s.Create(ctx, testService("billing")); err != nil {
		t.Errorf("Create() after rename = %v, old name should be free", err)
	}
}

func TestDelete(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	svc := testService("billing")
	if err := s.Create(ctx, svc); err != nil {
		t.Fatalf("Create() = %v", err)
	}

	if err := s.Delete(ctx, svc.ID); err != nil {
		t.Fatalf("Delete() = %v", err)
	}
	if _, err := s.Get(ctx, svc.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Get() after delete = %v, want %v", err, domain.ErrNotFound)
	}
	if err := s.Delete(ctx, svc.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Delete() twice = %v, want %v", err, domain.ErrNotFound)
	}
}
