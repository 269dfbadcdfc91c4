package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tgberrios/CRM-sub000/internal/persistence"
)

// DefaultTeams returns the rows seeded by InitializeTeams on a fresh
// install, mirroring the console-prep lab's standing team layout.
func DefaultTeams() []persistence.Team {
	return []persistence.Team{
		{Name: "Team 1", Category: "Xbox"},
		{Name: "Team 2", Category: "Xbox"},
		{Name: "Team 3", Category: "BVT"},
		{Name: "Team 4", Category: "BVT"},
	}
}

// TeamService manages console-prep teams.
type TeamService struct {
	teams  persistence.TeamRepository
	logger *slog.Logger
}

// NewTeamService constructs a TeamService.
func NewTeamService(teams persistence.TeamRepository, logger *slog.Logger) *TeamService {
	return &TeamService{teams: teams, logger: defaultLogger(logger)}
}

func (s *TeamService) loggerWith(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	return serviceLogger(ctx, s.logger, "TeamService", operation, attrs...)
}

func validateTeamInput(input TeamInput) error {
	vErr := &ValidationError{}
	if strings.TrimSpace(input.Name) == "" {
		vErr.add("name", "name is required")
	}
	if vErr.HasErrors() {
		return vErr
	}
	return nil
}

// CreateTeam registers a new team.
func (s *TeamService) CreateTeam(ctx context.Context, input TeamInput) (team persistence.Team, err error) {
	if s == nil || s.teams == nil {
		err = fmt.Errorf("team repository not configured")
		return
	}

	logger := s.loggerWith(ctx, "CreateTeam", "name", input.Name)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to create team", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.With("team_id", team.ID).InfoContext(ctx, "team created")
	}()

	if err = validateTeamInput(input); err != nil {
		return
	}

	team, err = s.teams.CreateTeam(ctx, persistence.Team{
		Name:     strings.TrimSpace(input.Name),
		Category: strings.TrimSpace(input.Category),
	})
	if errors.Is(err, persistence.ErrDuplicate) {
		err = ErrAlreadyExists
	}
	return
}

// UpdateTeam updates an existing team.
func (s *TeamService) UpdateTeam(ctx context.Context, id int64, input TeamInput) (team persistence.Team, err error) {
	if s == nil || s.teams == nil {
		err = fmt.Errorf("team repository not configured")
		return
	}

	logger := s.loggerWith(ctx, "UpdateTeam", "team_id", id)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to update team", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.InfoContext(ctx, "team updated")
	}()

	if err = validateTeamInput(input); err != nil {
		return
	}

	team = persistence.Team{
		ID:       id,
		Name:     strings.TrimSpace(input.Name),
		Category: strings.TrimSpace(input.Category),
	}
	if err = s.teams.UpdateTeam(ctx, team); err != nil {
		switch {
		case errors.Is(err, persistence.ErrNotFound):
			err = ErrNotFound
		case errors.Is(err, persistence.ErrDuplicate):
			err = ErrAlreadyExists
		}
		return
	}
	return
}

// ListTeams returns all teams.
func (s *TeamService) ListTeams(ctx context.Context) ([]persistence.Team, error) {
	if s == nil || s.teams == nil {
		return nil, fmt.Errorf("team repository not configured")
	}
	return s.teams.ListTeams(ctx)
}

// DeleteTeam removes a team.
func (s *TeamService) DeleteTeam(ctx context.Context, id int64) error {
	if s == nil || s.teams == nil {
		return fmt.Errorf("team repository not configured")
	}

	logger := s.loggerWith(ctx, "DeleteTeam", "team_id", id)

	if err := s.teams.DeleteTeam(ctx, id); err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			err = ErrNotFound
		}
		logger.ErrorContext(ctx, "failed to delete team", "error", err, "error_kind", ErrorKind(err))
		return err
	}
	logger.InfoContext(ctx, "team deleted")
	return nil
}

// InitializeTeams seeds the default team rows when none exist yet. Calling
// it on a populated table is a no-op; it reports whether seeding happened.
func (s *TeamService) InitializeTeams(ctx context.Context) (bool, error) {
	if s == nil || s.teams == nil {
		return false, fmt.Errorf("team repository not configured")
	}

	logger := s.loggerWith(ctx, "InitializeTeams")

	seeded, err := s.teams.SeedTeams(ctx, DefaultTeams())
	if err != nil {
		logger.ErrorContext(ctx, "failed to seed teams", "error", err, "error_kind", ErrorKind(err))
		return false, err
	}
	logger.InfoContext(ctx, "team initialization finished", "seeded", seeded)
	return seeded, nil
}
