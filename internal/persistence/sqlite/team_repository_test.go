package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/tgberrios/CRM-sub000/internal/persistence"
)

func TestTeamRepositoryCRUD(t *testing.T) {
	t.Parallel()

	pool := newTestPool(t)
	repo := NewTeamRepository(pool)
	ctx := context.Background()

	created, err := repo.CreateTeam(ctx, persistence.Team{Name: "Team 1", Category: "certification"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID <= 0 {
		t.Fatalf("expected positive id, got %d", created.ID)
	}

	created.Name = "Team One"
	if err := repo.UpdateTeam(ctx, created); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	got, err := repo.GetTeam(ctx, created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Name != "Team One" || got.Category != "certification" {
		t.Fatalf("unexpected team: %+v", got)
	}

	if err := repo.DeleteTeam(ctx, created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := repo.GetTeam(ctx, created.ID); !errors.Is(err, persistence.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestTeamRepositoryDuplicateName(t *testing.T) {
	t.Parallel()

	pool := newTestPool(t)
	repo := NewTeamRepository(pool)
	ctx := context.Background()

	if _, err := repo.CreateTeam(ctx, persistence.Team{Name: "Team 1", Category: "certification"}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := repo.CreateTeam(ctx, persistence.Team{Name: "Team 1", Category: "prep"}); !errors.Is(err, persistence.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}

func TestSeedTeamsOnlyWhenEmpty(t *testing.T) {
	t.Parallel()

	pool := newTestPool(t)
	repo := NewTeamRepository(pool)
	ctx := context.Background()

	defaults := []persistence.Team{
		{Name: "Team 1", Category: "certification"},
		{Name: "Team 2", Category: "certification"},
	}

	seeded, err := repo.SeedTeams(ctx, defaults)
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if !seeded {
		t.Fatal("expected seeding on empty table")
	}

	seeded, err = repo.SeedTeams(ctx, defaults)
	if err != nil {
		t.Fatalf("second seed failed: %v", err)
	}
	if seeded {
		t.Fatal("expected no seeding on populated table")
	}

	teams, err := repo.ListTeams(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(teams) != 2 {
		t.Fatalf("expected 2 teams, got %d", len(teams))
	}
	if teams[0].Name != "Team 1" || teams[1].Name != "Team 2" {
		t.Fatalf("unexpected seed order: %q, %q", teams[0].Name, teams[1].Name)
	}
}
