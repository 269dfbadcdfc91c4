package application

import (
	"context"
	"errors"
	"testing"

	"github.com/tgberrios/CRM-sub000/internal/persistence"
)

func TestCreatePersonnelValidation(t *testing.T) {
	t.Parallel()

	svc := NewPersonnelService(&stubPersonnelRepo{}, &stubWorkDayRepo{}, nil)

	_, err := svc.CreatePersonnel(context.Background(), PersonnelInput{Name: "  "})
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if _, ok := vErr.FieldErrors["name"]; !ok {
		t.Fatalf("expected name field error, got %+v", vErr.FieldErrors)
	}
}

func TestCreatePersonnelTrimsInput(t *testing.T) {
	t.Parallel()

	var created persistence.Personnel
	repo := &stubPersonnelRepo{createFn: func(ctx context.Context, person persistence.Personnel) (persistence.Personnel, error) {
		created = person
		person.ID = 1
		return person, nil
	}}

	svc := NewPersonnelService(repo, &stubWorkDayRepo{}, nil)
	if _, err := svc.CreatePersonnel(context.Background(), PersonnelInput{Name: " Alice ", Role: " tester, lead "}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.Name != "Alice" || created.Role != "tester, lead" {
		t.Fatalf("expected trimmed input, got %+v", created)
	}
}

func TestUpdatePersonnelMapsNotFound(t *testing.T) {
	t.Parallel()

	repo := &stubPersonnelRepo{updateFn: func(ctx context.Context, person persistence.Personnel) error {
		return persistence.ErrNotFound
	}}

	svc := NewPersonnelService(repo, &stubWorkDayRepo{}, nil)
	if _, err := svc.UpdatePersonnel(context.Background(), 999, PersonnelInput{Name: "Ghost"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListPersonnelJoinsWorkDays(t *testing.T) {
	t.Parallel()

	people := &stubPersonnelRepo{listFn: func(ctx context.Context) ([]persistence.Personnel, error) {
		return []persistence.Personnel{
			{ID: 1, Name: "Alice", Role: "lead"},
			{ID: 2, Name: "Bob", Role: "tester"},
		}, nil
	}}
	workDays := &stubWorkDayRepo{listFn: func(ctx context.Context) ([]persistence.WorkDay, error) {
		return []persistence.WorkDay{{PersonnelID: 1, WorkDays: "sun-thu"}}, nil
	}}

	svc := NewPersonnelService(people, workDays, nil)
	views, err := svc.ListPersonnel(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("expected 2 views, got %d", len(views))
	}
	if views[0].WorkDays != "sun-thu" || views[1].WorkDays != "" {
		t.Fatalf("unexpected join: %+v", views)
	}
}

func TestSetWorkDays(t *testing.T) {
	t.Parallel()

	t.Run("rejects unknown pattern", func(t *testing.T) {
		t.Parallel()

		svc := NewPersonnelService(&stubPersonnelRepo{}, &stubWorkDayRepo{}, nil)
		err := svc.SetWorkDays(context.Background(), 1, "every-day")

		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})

	t.Run("rejects unknown person", func(t *testing.T) {
		t.Parallel()

		people := &stubPersonnelRepo{getFn: func(ctx context.Context, id int64) (persistence.Personnel, error) {
			return persistence.Personnel{}, persistence.ErrNotFound
		}}

		svc := NewPersonnelService(people, &stubWorkDayRepo{}, nil)
		if err := svc.SetWorkDays(context.Background(), 999, "mon-fri"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("upserts valid pattern", func(t *testing.T) {
		t.Parallel()

		var upserted persistence.WorkDay
		workDays := &stubWorkDayRepo{upsertFn: func(ctx context.Context, workDay persistence.WorkDay) error {
			upserted = workDay
			return nil
		}}

		svc := NewPersonnelService(&stubPersonnelRepo{}, workDays, nil)
		if err := svc.SetWorkDays(context.Background(), 7, " tue-sat "); err != nil {
			t.Fatalf("set failed: %v", err)
		}
		if upserted.PersonnelID != 7 || upserted.WorkDays != "tue-sat" {
			t.Fatalf("unexpected upsert: %+v", upserted)
		}
	})
}
