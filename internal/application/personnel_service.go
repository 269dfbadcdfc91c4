package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tgberrios/CRM-sub000/internal/persistence"
	"github.com/tgberrios/CRM-sub000/internal/roster"
)

// PersonnelService manages lab personnel and their work-day patterns.
type PersonnelService struct {
	personnel persistence.PersonnelRepository
	workDays  persistence.WorkDayRepository
	logger    *slog.Logger
}

// NewPersonnelService constructs a PersonnelService.
func NewPersonnelService(personnel persistence.PersonnelRepository, workDays persistence.WorkDayRepository, logger *slog.Logger) *PersonnelService {
	return &PersonnelService{
		personnel: personnel,
		workDays:  workDays,
		logger:    defaultLogger(logger),
	}
}

func (s *PersonnelService) loggerWith(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	return serviceLogger(ctx, s.logger, "PersonnelService", operation, attrs...)
}

func validatePersonnelInput(input PersonnelInput) error {
	vErr := &ValidationError{}
	if strings.TrimSpace(input.Name) == "" {
		vErr.add("name", "name is required")
	}
	if vErr.HasErrors() {
		return vErr
	}
	return nil
}

// CreatePersonnel registers a new person. Role is stored as entered; role
// tags are interpreted only at assignment time.
func (s *PersonnelService) CreatePersonnel(ctx context.Context, input PersonnelInput) (person persistence.Personnel, err error) {
	if s == nil || s.personnel == nil {
		err = fmt.Errorf("personnel repository not configured")
		return
	}

	logger := s.loggerWith(ctx, "CreatePersonnel", "name", input.Name)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to create personnel", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.With("personnel_id", person.ID).InfoContext(ctx, "personnel created")
	}()

	if err = validatePersonnelInput(input); err != nil {
		return
	}

	person, err = s.personnel.CreatePersonnel(ctx, persistence.Personnel{
		Name: strings.TrimSpace(input.Name),
		Role: strings.TrimSpace(input.Role),
	})
	return
}

// UpdatePersonnel updates an existing person.
func (s *PersonnelService) UpdatePersonnel(ctx context.Context, id int64, input PersonnelInput) (person persistence.Personnel, err error) {
	if s == nil || s.personnel == nil {
		err = fmt.Errorf("personnel repository not configured")
		return
	}

	logger := s.loggerWith(ctx, "UpdatePersonnel", "personnel_id", id)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to update personnel", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.InfoContext(ctx, "personnel updated")
	}()

	if err = validatePersonnelInput(input); err != nil {
		return
	}

	person = persistence.Personnel{
		ID:   id,
		Name: strings.TrimSpace(input.Name),
		Role: strings.TrimSpace(input.Role),
	}
	if err = s.personnel.UpdatePersonnel(ctx, person); err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			err = ErrNotFound
		}
		return
	}
	return
}

// DeletePersonnel removes a person along with their work-day and absence rows.
func (s *PersonnelService) DeletePersonnel(ctx context.Context, id int64) error {
	if s == nil || s.personnel == nil {
		return fmt.Errorf("personnel repository not configured")
	}

	logger := s.loggerWith(ctx, "DeletePersonnel", "personnel_id", id)

	if err := s.personnel.DeletePersonnel(ctx, id); err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			err = ErrNotFound
		}
		logger.ErrorContext(ctx, "failed to delete personnel", "error", err, "error_kind", ErrorKind(err))
		return err
	}
	logger.InfoContext(ctx, "personnel deleted")
	return nil
}

// ListPersonnel returns every person joined with their work-day pattern.
func (s *PersonnelService) ListPersonnel(ctx context.Context) ([]PersonnelView, error) {
	if s == nil || s.personnel == nil || s.workDays == nil {
		return nil, fmt.Errorf("personnel repositories not configured")
	}

	people, err := s.personnel.ListPersonnel(ctx)
	if err != nil {
		return nil, err
	}
	patterns, err := s.workDays.ListWorkDays(ctx)
	if err != nil {
		return nil, err
	}

	byPerson := make(map[int64]string, len(patterns))
	for _, wd := range patterns {
		byPerson[wd.PersonnelID] = wd.WorkDays
	}

	views := make([]PersonnelView, 0, len(people))
	for _, person := range people {
		views = append(views, PersonnelView{
			ID:       person.ID,
			Name:     person.Name,
			Role:     person.Role,
			WorkDays: byPerson[person.ID],
		})
	}
	return views, nil
}

// SetWorkDays upserts a person's weekly work-day pattern.
func (s *PersonnelService) SetWorkDays(ctx context.Context, personnelID int64, pattern string) error {
	if s == nil || s.personnel == nil || s.workDays == nil {
		return fmt.Errorf("personnel repositories not configured")
	}

	logger := s.loggerWith(ctx, "SetWorkDays", "personnel_id", personnelID, "pattern", pattern)

	trimmed := strings.TrimSpace(pattern)
	if !roster.WorkPattern(trimmed).Valid() {
		vErr := &ValidationError{}
		vErr.add("work_days", fmt.Sprintf("must be one of %v", roster.WorkPatterns()))
		logger.ErrorContext(ctx, "invalid work-day pattern", "error", vErr, "error_kind", ErrorKind(vErr))
		return vErr
	}

	if _, err := s.personnel.GetPersonnel(ctx, personnelID); err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			err = ErrNotFound
		}
		logger.ErrorContext(ctx, "failed to load personnel for work-day upsert", "error", err, "error_kind", ErrorKind(err))
		return err
	}

	if err := s.workDays.UpsertWorkDay(ctx, persistence.WorkDay{PersonnelID: personnelID, WorkDays: trimmed}); err != nil {
		logger.ErrorContext(ctx, "failed to upsert work days", "error", err, "error_kind", ErrorKind(err))
		return err
	}
	logger.InfoContext(ctx, "work days updated")
	return nil
}
