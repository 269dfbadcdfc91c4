package application

import (
	"context"
	"errors"
	"testing"

	"github.com/tgberrios/CRM-sub000/internal/persistence"
)

type recordingTeamRepo struct {
	stubTeamRepo
	createFn func(ctx context.Context, team persistence.Team) (persistence.Team, error)
	updateFn func(ctx context.Context, team persistence.Team) error
}

func (r *recordingTeamRepo) CreateTeam(ctx context.Context, team persistence.Team) (persistence.Team, error) {
	if r.createFn != nil {
		return r.createFn(ctx, team)
	}
	return r.stubTeamRepo.CreateTeam(ctx, team)
}

func (r *recordingTeamRepo) UpdateTeam(ctx context.Context, team persistence.Team) error {
	if r.updateFn != nil {
		return r.updateFn(ctx, team)
	}
	return r.stubTeamRepo.UpdateTeam(ctx, team)
}

func TestCreateTeamValidation(t *testing.T) {
	t.Parallel()

	svc := NewTeamService(&stubTeamRepo{}, nil)

	_, err := svc.CreateTeam(context.Background(), TeamInput{Name: ""})
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestCreateTeamMapsDuplicate(t *testing.T) {
	t.Parallel()

	repo := &recordingTeamRepo{createFn: func(ctx context.Context, team persistence.Team) (persistence.Team, error) {
		return persistence.Team{}, persistence.ErrDuplicate
	}}

	svc := NewTeamService(repo, nil)
	if _, err := svc.CreateTeam(context.Background(), TeamInput{Name: "Team 1"}); !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestUpdateTeamMapsNotFound(t *testing.T) {
	t.Parallel()

	repo := &recordingTeamRepo{updateFn: func(ctx context.Context, team persistence.Team) error {
		return persistence.ErrNotFound
	}}

	svc := NewTeamService(repo, nil)
	if _, err := svc.UpdateTeam(context.Background(), 999, TeamInput{Name: "Ghost"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestInitializeTeamsSeedsDefaults(t *testing.T) {
	t.Parallel()

	var seededWith []persistence.Team
	repo := &stubTeamRepo{seedFn: func(ctx context.Context, teams []persistence.Team) (bool, error) {
		seededWith = teams
		return true, nil
	}}

	svc := NewTeamService(repo, nil)
	seeded, err := svc.InitializeTeams(context.Background())
	if err != nil {
		t.Fatalf("initialize failed: %v", err)
	}
	if !seeded {
		t.Fatal("expected seeding to be reported")
	}
	if len(seededWith) != len(DefaultTeams()) {
		t.Fatalf("expected default team set, got %d rows", len(seededWith))
	}
}
