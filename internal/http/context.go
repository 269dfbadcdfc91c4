package http

import (
	"context"
	"log/slog"

	"github.com/tgberrios/CRM-sub000/internal/application"
	"github.com/tgberrios/CRM-sub000/internal/logging"
)

type contextKey string

const (
	principalContextKey   contextKey = "principal"
	personnelIDContextKey contextKey = "personnel_id"
	teamIDContextKey      contextKey = "team_id"
	rosterDateContextKey  contextKey = "roster_date"
)

// ContextWithPrincipal returns a derived context containing the authenticated principal.
func ContextWithPrincipal(ctx context.Context, principal application.Principal) context.Context {
	return context.WithValue(ctx, principalContextKey, principal)
}

// PrincipalFromContext extracts the authenticated principal from context if available.
func PrincipalFromContext(ctx context.Context) (application.Principal, bool) {
	principal, ok := ctx.Value(principalContextKey).(application.Principal)
	return principal, ok
}

// ContextWithPersonnelID injects the personnel identifier resolved from the request path.
func ContextWithPersonnelID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, personnelIDContextKey, id)
}

// PersonnelIDFromContext extracts a personnel identifier previously associated with the context.
func PersonnelIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(personnelIDContextKey).(string)
	return id, ok
}

// ContextWithTeamID injects the team identifier resolved from the request path.
func ContextWithTeamID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, teamIDContextKey, id)
}

// TeamIDFromContext extracts a team identifier previously associated with the context.
func TeamIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(teamIDContextKey).(string)
	return id, ok
}

// ContextWithRosterDate injects the date segment resolved from the request path.
func ContextWithRosterDate(ctx context.Context, date string) context.Context {
	return context.WithValue(ctx, rosterDateContextKey, date)
}

// RosterDateFromContext extracts a date previously associated with the context.
func RosterDateFromContext(ctx context.Context) (string, bool) {
	date, ok := ctx.Value(rosterDateContextKey).(string)
	return date, ok
}

// ContextWithLogger stores a request-scoped logger in the context.
func ContextWithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return logging.WithLogger(ctx, logger)
}

// LoggerFromContext retrieves the request-scoped logger, if any.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	return logging.FromContext(ctx)
}
