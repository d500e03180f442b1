package repo

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prisha-enterprises/backoffice/internal/models"
)

func TestInMemoryInquiryRepositoryCreateAssignsIdentity(t *testing.T) {
	r := NewInMemoryInquiryRepository()

	created, err := r.Create(models.Inquiry{Name: "Asha", Email: "asha@example.com", Source: models.SourceContactPage})
	if err != nil {
		t.Fatalf("error creating inquiry: %v", err)
	}

	if !strings.HasPrefix(created.ID, "INQ-") {
		t.Errorf("expected ID with INQ- prefix, got %q", created.ID)
	}
	if created.Date.IsZero() {
		t.Error("expected a creation date to be assigned")
	}
}

func TestInMemoryInquiryRepositoryStatusAlwaysStartsNew(t *testing.T) {
	r := NewInMemoryInquiryRepository()

	created, err := r.Create(models.Inquiry{Name: "Asha", Status: models.InquiryStatusClosed})
	if err != nil {
		t.Fatalf("error creating inquiry: %v", err)
	}
	if created.Status != models.InquiryStatusNew {
		t.Errorf("expected status %q, got %q", models.InquiryStatusNew, created.Status)
	}
}

func TestInMemoryInquiryRepositoryNewestFirst(t *testing.T) {
	r := NewInMemoryInquiryRepository()

	base := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	for i, name := range []string{"first", "second", "third"} {
		if _, err := r.Create(models.Inquiry{Name: name, Date: base.Add(time.Duration(i) * time.Hour)}); err != nil {
			t.Fatalf("error creating inquiry %q: %v", name, err)
		}
	}

	all, err := r.GetAll()
	if err != nil {
		t.Fatalf("error fetching inquiries: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 inquiries, got %d", len(all))
	}
	for i, want := range []string{"third", "second", "first"} {
		if all[i].Name != want {
			t.Errorf("expected %q at position %d, got %q", want, i, all[i].Name)
		}
	}
}

func TestInMemoryInquiryRepositorySetStatusUnguarded(t *testing.T) {
	r := NewInMemoryInquiryRepository()
	created, err := r.Create(models.Inquiry{Name: "Asha"})
	if err != nil {
		t.Fatalf("error creating inquiry: %v", err)
	}

	// Any status in the set may follow any other, including going back.
	for _, status := range []string{
		models.InquiryStatusClosed,
		models.InquiryStatusNew,
		models.InquiryStatusResponded,
	} {
		updated, err := r.SetStatus(created.ID, status)
		if err != nil {
			t.Fatalf("error setting status %q: %v", status, err)
		}
		if updated.Status != status {
			t.Errorf("expected status %q, got %q", status, updated.Status)
		}
	}
}

func TestInMemoryInquiryRepositorySetStatusNotFound(t *testing.T) {
	r := NewInMemoryInquiryRepository()
	if _, err := r.SetStatus("INQ-missing", models.InquiryStatusResponded); !errors.Is(err, ErrInquiryNotFound) {
		t.Errorf("expected ErrInquiryNotFound, got %v", err)
	}
}

func TestInMemoryInquiryRepositoryDelete(t *testing.T) {
	r := NewInMemoryInquiryRepository()
	created, err := r.Create(models.Inquiry{Name: "Asha"})
	if err != nil {
		t.Fatalf("error creating inquiry: %v", err)
	}

	if err := r.Delete(created.ID); err != nil {
		t.Fatalf("error deleting inquiry: %v", err)
	}
	if err := r.Delete(created.ID); !errors.Is(err, ErrInquiryNotFound) {
		t.Errorf("expected ErrInquiryNotFound on second delete, got %v", err)
	}
}
