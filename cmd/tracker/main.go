package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/tgberrios/CRM-sub000/internal/application"
	"github.com/tgberrios/CRM-sub000/internal/config"
	httptransport "github.com/tgberrios/CRM-sub000/internal/http"
	"github.com/tgberrios/CRM-sub000/internal/persistence"
	"github.com/tgberrios/CRM-sub000/internal/persistence/sqlite"
)

const bootstrapAdminEmail = "admin@tracker.local"

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	pool, err := sqlite.Open(cfg.SQLiteDSN)
	if err != nil {
		logger.Error("failed to open storage", "error", err)
		os.Exit(1)
	}
	defer func() {
		if cerr := pool.Close(); cerr != nil {
			logger.Error("failed to close storage", "error", cerr)
		}
	}()

	if err := pool.Migrate(); err != nil {
		logger.Error("failed to apply migrations", "error", err)
		os.Exit(1)
	}

	personnelRepo := sqlite.NewPersonnelRepository(pool)
	workDayRepo := sqlite.NewWorkDayRepository(pool)
	teamRepo := sqlite.NewTeamRepository(pool)
	historyRepo := sqlite.NewConfigHistoryRepository(pool)
	absenceRepo := sqlite.NewAbsenceRepository(pool)
	accountRepo := sqlite.NewAccountRepository(pool)
	sessionRepo := sqlite.NewSessionRepository(pool)

	if err := ensureAdminAccount(ctx, accountRepo, cfg.SessionSecret, logger); err != nil {
		logger.Error("failed to bootstrap admin account", "error", err)
		os.Exit(1)
	}

	authService := application.NewAuthServiceWithLogger(accountRepo, sessionRepo, nil, uuid.NewString, time.Now, cfg.SessionTTL, logger)
	personnelService := application.NewPersonnelService(personnelRepo, workDayRepo, logger)
	teamService := application.NewTeamService(teamRepo, logger)
	rosterService := application.NewRosterService(application.RosterServiceConfig{
		History:   historyRepo,
		Teams:     teamRepo,
		Personnel: personnelRepo,
		WorkDays:  workDayRepo,
		Absences:  absenceRepo,
		Slots:     cfg.RosterSlots,
		Logger:    logger,
	})

	if seeded, err := teamService.InitializeTeams(ctx); err != nil {
		logger.Error("failed to seed default teams", "error", err)
		os.Exit(1)
	} else if seeded {
		logger.Info("seeded default teams")
	}

	router := httptransport.NewRouter(httptransport.RouterConfig{
		Auth:      httptransport.NewAuthHandler(authService, logger),
		Personnel: httptransport.NewPersonnelHandler(personnelService, logger),
		Teams:     httptransport.NewTeamHandler(teamService, logger),
		Roster:    httptransport.NewRosterHandler(rosterService, logger),
		Absences:  httptransport.NewAbsenceHandler(rosterService, logger),
	})

	protected := httptransport.RequireSession(authService, logger)(router)
	handler := httptransport.RequestLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Login is the only route reachable without a session.
		if strings.EqualFold(r.URL.Path, "/sessions") && r.Method == http.MethodPost {
			router.ServeHTTP(w, r)
			return
		}
		protected.ServeHTTP(w, r)
	}))

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed to shutdown server", "error", err)
		}
	}()

	logger.Info("tracker API listening", "addr", server.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server encountered error", "error", err)
		os.Exit(1)
	}
}

// ensureAdminAccount creates the bootstrap operator login when no account
// with the well-known admin email exists yet. The configured session secret
// doubles as the initial password; operators are expected to rotate it.
func ensureAdminAccount(ctx context.Context, accounts persistence.AccountRepository, secret string, logger *slog.Logger) error {
	if strings.TrimSpace(secret) == "" {
		return fmt.Errorf("session secret is empty")
	}

	if _, err := accounts.GetAccountByEmail(ctx, bootstrapAdminEmail); err == nil {
		return nil
	} else if !errors.Is(err, persistence.ErrNotFound) {
		return err
	}

	hash, err := application.CreatePasswordHash(secret, application.DefaultArgon2idParams)
	if err != nil {
		return err
	}

	if err := accounts.CreateAccount(ctx, persistence.Account{
		ID:           uuid.NewString(),
		Email:        bootstrapAdminEmail,
		DisplayName:  "Administrator",
		PasswordHash: hash,
		IsAdmin:      true,
	}); err != nil {
		return err
	}

	logger.Info("created bootstrap admin account", "email", bootstrapAdminEmail)
	return nil
}
