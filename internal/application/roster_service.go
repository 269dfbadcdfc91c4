package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/tgberrios/CRM-sub000/internal/persistence"
	"github.com/tgberrios/CRM-sub000/internal/roster"
)

// DefaultRosterSlots is the blank roster size synthesized for a date with no
// stored configuration.
const DefaultRosterSlots = 5

// WarningSnapshotUnreadable is the user-facing message surfaced when a
// stored payload cannot be decoded; the view falls back to blank rosters.
const WarningSnapshotUnreadable = "Stored configuration could not be read; showing a blank roster."

// RosterService resolves, saves, and randomizes date-scoped team
// configurations on top of the deduplicated history.
type RosterService struct {
	history   persistence.ConfigHistoryRepository
	teams     persistence.TeamRepository
	personnel persistence.PersonnelRepository
	workDays  persistence.WorkDayRepository
	absences  persistence.AbsenceRepository
	shuffle   roster.ShuffleFunc
	slots     int
	logger    *slog.Logger
}

// RosterServiceConfig carries the dependencies of a RosterService.
type RosterServiceConfig struct {
	History   persistence.ConfigHistoryRepository
	Teams     persistence.TeamRepository
	Personnel persistence.PersonnelRepository
	WorkDays  persistence.WorkDayRepository
	Absences  persistence.AbsenceRepository
	// Shuffle permutes role pools before assignment. Nil selects the
	// uniform math/rand shuffle; tests inject deterministic permutations.
	Shuffle roster.ShuffleFunc
	// Slots is the blank fallback roster size; zero selects DefaultRosterSlots.
	Slots  int
	Logger *slog.Logger
}

// NewRosterService constructs a RosterService.
func NewRosterService(cfg RosterServiceConfig) *RosterService {
	slots := cfg.Slots
	if slots <= 0 {
		slots = DefaultRosterSlots
	}
	return &RosterService{
		history:   cfg.History,
		teams:     cfg.Teams,
		personnel: cfg.Personnel,
		workDays:  cfg.WorkDays,
		absences:  cfg.Absences,
		shuffle:   cfg.Shuffle,
		slots:     slots,
		logger:    defaultLogger(cfg.Logger),
	}
}

func (s *RosterService) loggerWith(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	return serviceLogger(ctx, s.logger, "RosterService", operation, attrs...)
}

func invalidDateError(field string) error {
	vErr := &ValidationError{}
	vErr.add(field, "must be a calendar date in MM-DD-YYYY or YYYY-MM-DD form")
	return vErr
}

// History returns the deduplicated configuration history in chronological
// order, at most one entry per calendar date.
func (s *RosterService) History(ctx context.Context) ([]roster.HistoryEntry, error) {
	if s == nil || s.history == nil {
		return nil, fmt.Errorf("history repository not configured")
	}

	rows, err := s.history.ListConfigHistory(ctx)
	if err != nil {
		return nil, err
	}
	return roster.Dedupe(historyEntries(rows)), nil
}

// LoadConfiguration resolves the team/personnel configuration for a date:
// the deduplicated entry's decoded rosters when one exists, otherwise one
// blank-slot roster per team row. Availability cross-references work-day
// patterns with the date's absence list. Decode failures are non-fatal and
// degrade to the blank fallback with a warning.
func (s *RosterService) LoadConfiguration(ctx context.Context, date string) (cfg Configuration, err error) {
	if s == nil || s.history == nil || s.teams == nil {
		err = fmt.Errorf("roster repositories not configured")
		return
	}

	logger := s.loggerWith(ctx, "LoadConfiguration", "date", date)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to load configuration", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.With(
			"entry_id", cfg.EntryID,
			"teams", len(cfg.Teams),
			"available", len(cfg.AvailablePersonnel),
			"recovered", cfg.Recovered,
		).InfoContext(ctx, "configuration loaded")
	}()

	canonical, dateErr := roster.CanonicalDate(date)
	if dateErr != nil {
		err = invalidDateError("date")
		return
	}
	cfg.Date = canonical

	rows, err := s.history.ListConfigHistory(ctx)
	if err != nil {
		return
	}
	deduped := roster.Dedupe(historyEntries(rows))

	if entry, ok := roster.EntryForDate(deduped, canonical); ok {
		teams, recovered, decodeErr := roster.DecodeSnapshot(entry.Data)
		if decodeErr == nil {
			cfg.EntryID = entry.ID
			cfg.Teams = teams
			cfg.Recovered = recovered
			if recovered {
				logger.WarnContext(ctx, "recovered doubly encoded snapshot", "entry_id", entry.ID)
			}
		} else {
			cfg.Warning = WarningSnapshotUnreadable
			logger.WarnContext(ctx, "unreadable snapshot payload", "entry_id", entry.ID, "error", decodeErr)
		}
	}

	if cfg.Teams == nil {
		cfg.Teams, err = s.blankTeams(ctx)
		if err != nil {
			return
		}
	}

	cfg.AvailablePersonnel, err = s.availablePersonnel(ctx, canonical)
	return
}

// SaveConfiguration persists the roster state for a date as one history
// entry, updating the deduplicated entry in place when the date already has
// one and inserting otherwise. The team array is serialized exactly once.
func (s *RosterService) SaveConfiguration(ctx context.Context, params SaveConfigurationParams) (entry persistence.ConfigHistoryEntry, err error) {
	if s == nil || s.history == nil {
		err = fmt.Errorf("history repository not configured")
		return
	}

	logger := s.loggerWith(ctx, "SaveConfiguration", "date", params.Date)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to save configuration", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.With("entry_id", entry.ID).InfoContext(ctx, "configuration saved")
	}()

	canonical, dateErr := roster.CanonicalDate(params.Date)
	if dateErr != nil {
		err = invalidDateError("date")
		return
	}

	data, err := roster.EncodeSnapshot(params.Teams)
	if err != nil {
		return
	}

	rows, err := s.history.ListConfigHistory(ctx)
	if err != nil {
		return
	}

	var existingID int64
	for _, deduped := range roster.Dedupe(historyEntries(rows)) {
		if deduped.Date == canonical {
			existingID = deduped.ID
			break
		}
	}

	if existingID > 0 {
		entry, err = s.history.UpdateConfigHistory(ctx, persistence.ConfigHistoryEntry{
			ID:   existingID,
			Date: canonical,
			Data: data,
		})
		return
	}

	entry, err = s.history.AddConfigHistory(ctx, persistence.ConfigHistoryEntry{
		Date: canonical,
		Data: data,
	})
	return
}

// DeleteConfiguration removes every stored entry for a date, duplicates
// included.
func (s *RosterService) DeleteConfiguration(ctx context.Context, date string) error {
	if s == nil || s.history == nil {
		return fmt.Errorf("history repository not configured")
	}

	logger := s.loggerWith(ctx, "DeleteConfiguration", "date", date)

	canonical, dateErr := roster.CanonicalDate(date)
	if dateErr != nil {
		return invalidDateError("date")
	}

	if err := s.history.DeleteConfigHistoryByDate(ctx, canonical); err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			err = ErrNotFound
		}
		logger.ErrorContext(ctx, "failed to delete configuration", "error", err, "error_kind", ErrorKind(err))
		return err
	}
	logger.InfoContext(ctx, "configuration deleted")
	return nil
}

// Randomize runs one random, collision-free assignment of the date's
// available personnel onto the posted rosters. Nothing is persisted; the
// caller saves the result explicitly via SaveConfiguration.
func (s *RosterService) Randomize(ctx context.Context, params RandomizeParams) (teams []roster.TeamSnapshot, err error) {
	if s == nil || s.personnel == nil || s.workDays == nil || s.absences == nil {
		err = fmt.Errorf("roster repositories not configured")
		return
	}

	logger := s.loggerWith(ctx, "Randomize", "date", params.Date, "teams", len(params.Teams))
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to randomize assignment", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.InfoContext(ctx, "assignment randomized")
	}()

	canonical, dateErr := roster.CanonicalDate(params.Date)
	if dateErr != nil {
		err = invalidDateError("date")
		return
	}

	members, err := s.availableMembers(ctx, canonical)
	if err != nil {
		return
	}

	teams = roster.Assign(params.Teams, roster.PartitionByRole(members), s.shuffle)
	return
}

// Absences returns the personnel ids marked absent on a date.
func (s *RosterService) Absences(ctx context.Context, date string) ([]int64, error) {
	if s == nil || s.absences == nil {
		return nil, fmt.Errorf("absence repository not configured")
	}

	canonical, dateErr := roster.CanonicalDate(date)
	if dateErr != nil {
		return nil, invalidDateError("date")
	}
	return s.absences.ListAbsences(ctx, canonical)
}

// ReplaceAbsences overwrites the absence list for a date.
func (s *RosterService) ReplaceAbsences(ctx context.Context, date string, personnelIDs []int64) error {
	if s == nil || s.absences == nil {
		return fmt.Errorf("absence repository not configured")
	}

	logger := s.loggerWith(ctx, "ReplaceAbsences", "date", date, "count", len(personnelIDs))

	canonical, dateErr := roster.CanonicalDate(date)
	if dateErr != nil {
		return invalidDateError("date")
	}

	if err := s.absences.ReplaceAbsences(ctx, canonical, personnelIDs); err != nil {
		if errors.Is(err, persistence.ErrForeignKeyViolation) {
			vErr := &ValidationError{}
			vErr.add("personnel_ids", "contains an unknown personnel id")
			err = vErr
		}
		logger.ErrorContext(ctx, "failed to replace absences", "error", err, "error_kind", ErrorKind(err))
		return err
	}
	logger.InfoContext(ctx, "absences replaced")
	return nil
}

// blankTeams synthesizes the fallback configuration: one snapshot per team
// row with the fixed number of blank slots.
func (s *RosterService) blankTeams(ctx context.Context) ([]roster.TeamSnapshot, error) {
	rows, err := s.teams.ListTeams(ctx)
	if err != nil {
		return nil, err
	}

	teams := make([]roster.TeamSnapshot, 0, len(rows))
	for _, row := range rows {
		teams = append(teams, roster.TeamSnapshot{
			ID:        row.ID,
			Name:      row.Name,
			Category:  row.Category,
			Personnel: roster.BlankSlots(s.slots),
		})
	}
	return teams, nil
}

func (s *RosterService) availableMembers(ctx context.Context, canonical string) ([]roster.PoolMember, error) {
	views, err := s.availablePersonnel(ctx, canonical)
	if err != nil {
		return nil, err
	}

	members := make([]roster.PoolMember, 0, len(views))
	for _, view := range views {
		members = append(members, roster.PoolMember{ID: view.ID, Name: view.Name, Role: view.Role})
	}
	return members, nil
}

// availablePersonnel filters personnel to those working on the date's
// weekday and not on its absence list. A person without a recognized
// work-day pattern is never available.
func (s *RosterService) availablePersonnel(ctx context.Context, canonical string) ([]PersonnelView, error) {
	if s.personnel == nil || s.workDays == nil || s.absences == nil {
		return nil, fmt.Errorf("roster repositories not configured")
	}

	weekday, err := roster.WeekdayOf(canonical)
	if err != nil {
		return nil, invalidDateError("date")
	}

	people, err := s.personnel.ListPersonnel(ctx)
	if err != nil {
		return nil, err
	}
	patterns, err := s.workDays.ListWorkDays(ctx)
	if err != nil {
		return nil, err
	}
	absentIDs, err := s.absences.ListAbsences(ctx, canonical)
	if err != nil {
		return nil, err
	}

	patternByPerson := make(map[int64]roster.WorkPattern, len(patterns))
	for _, wd := range patterns {
		patternByPerson[wd.PersonnelID] = roster.WorkPattern(wd.WorkDays)
	}
	absent := make(map[int64]bool, len(absentIDs))
	for _, id := range absentIDs {
		absent[id] = true
	}

	available := make([]PersonnelView, 0, len(people))
	for _, person := range people {
		pattern := patternByPerson[person.ID]
		if !pattern.Includes(weekday) || absent[person.ID] {
			continue
		}
		available = append(available, PersonnelView{
			ID:       person.ID,
			Name:     person.Name,
			Role:     person.Role,
			WorkDays: string(pattern),
		})
	}
	return available, nil
}

func historyEntries(rows []persistence.ConfigHistoryEntry) []roster.HistoryEntry {
	entries := make([]roster.HistoryEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, roster.HistoryEntry{ID: row.ID, Date: row.Date, Data: row.Data})
	}
	return entries
}
