package service

import (
	"context"
	"errors"
	"testing"

	"github.com/yamato-seiki/schedule-api/internal/core/domain"
)

func newFieldFixture() (*FieldService, *stubFieldRepo, *stubScheduleRepo) {
	fields := newStubFieldRepo()
	schedules := newStubScheduleRepo()
	svc := NewFieldService(fields, schedules, fixedClock{now: date(2024, 6, 12)}, discardLogger)
	return svc, fields, schedules
}

func TestFieldService_Create_GeneratesReference(t *testing.T) {
	svc, _, _ := newFieldFixture()

	result, err := svc.Create(context.Background(), domain.Viewer{ID: "sato"}, "wiring")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if result.Field.Name != "wiring" || result.Field.CreatedByID != "sato" {
		t.Fatalf("field not populated: %+v", result.Field)
	}
	if len(result.Reference) != 8 {
		t.Fatalf("reference code must be 8 characters, got %q", result.Reference)
	}
}

func TestFieldService_Create_ViewerForbidden(t *testing.T) {
	svc, _, _ := newFieldFixture()

	if _, err := svc.Create(context.Background(), domain.Viewer{ID: "audit", IsViewer: true}, "wiring"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestFieldService_Delete_BlockedWhileReferenced(t *testing.T) {
	svc, fields, schedules := newFieldFixture()
	fields.fields["f1"] = &domain.Field{ID: "f1", Name: "wiring"}
	schedules.add(&domain.Schedule{ID: "s1", ProjectID: "p1", FieldID: "f1", StartDate: date(2024, 6, 10), EndDate: date(2024, 6, 14)})

	err := svc.Delete(context.Background(), domain.Viewer{ID: "sato"}, "f1")
	if !errors.Is(err, domain.ErrFieldInUse) {
		t.Fatalf("expected ErrFieldInUse, got %v", err)
	}

	if err := schedules.Delete(context.Background(), "s1"); err != nil {
		t.Fatalf("fixture: %v", err)
	}
	if err := svc.Delete(context.Background(), domain.Viewer{ID: "sato"}, "f1"); err != nil {
		t.Fatalf("delete after unreferencing: %v", err)
	}
}

func TestFieldService_Update_Renames(t *testing.T) {
	svc, fields, _ := newFieldFixture()
	fields.fields["f1"] = &domain.Field{ID: "f1", Name: "wirng"}

	updated, err := svc.Update(context.Background(), domain.Viewer{ID: "sato"}, "f1", "wiring")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "wiring" {
		t.Fatalf("rename not applied, got %q", updated.Name)
	}
}

func TestFieldService_Update_NotFound(t *testing.T) {
	svc, _, _ := newFieldFixture()

	if _, err := svc.Update(context.Background(), domain.Viewer{ID: "sato"}, "missing", "x"); !errors.Is(err, domain.ErrFieldNotFound) {
		t.Fatalf("expected ErrFieldNotFound, got %v", err)
	}
}
