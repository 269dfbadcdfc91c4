package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config captures environment driven configuration values for the tracker service.
type Config struct {
	HTTPPort      int
	SQLiteDSN     string
	SessionSecret string
	SessionTTL    time.Duration
	RosterSlots   int
}

// Load parses configuration values from the current process environment.
//
// Optional fields receive defaults; required and malformed values are
// accumulated so operators see every problem in a single error.
func Load() (Config, error) {
	cfg := Config{
		HTTPPort:    8080,
		SQLiteDSN:   "file:tracker.db?_pragma=foreign_keys(1)",
		SessionTTL:  24 * time.Hour,
		RosterSlots: 5,
	}

	missing := make([]string, 0, 1)
	invalid := make([]string, 0, 2)

	if portValue := strings.TrimSpace(os.Getenv("TRACKER_HTTP_PORT")); portValue != "" {
		port, err := strconv.Atoi(portValue)
		if err != nil || port <= 0 {
			invalid = append(invalid, "TRACKER_HTTP_PORT")
		} else {
			cfg.HTTPPort = port
		}
	}

	if dsn := strings.TrimSpace(os.Getenv("TRACKER_SQLITE_DSN")); dsn != "" {
		cfg.SQLiteDSN = dsn
	}

	if secret := strings.TrimSpace(os.Getenv("TRACKER_SESSION_SECRET")); secret == "" {
		missing = append(missing, "TRACKER_SESSION_SECRET")
	} else {
		cfg.SessionSecret = secret
	}

	if ttlValue := strings.TrimSpace(os.Getenv("TRACKER_SESSION_TTL")); ttlValue != "" {
		ttl, err := time.ParseDuration(ttlValue)
		if err != nil || ttl <= 0 {
			invalid = append(invalid, "TRACKER_SESSION_TTL")
		} else {
			cfg.SessionTTL = ttl
		}
	}

	if slotsValue := strings.TrimSpace(os.Getenv("TRACKER_ROSTER_SLOTS")); slotsValue != "" {
		slots, err := strconv.Atoi(slotsValue)
		if err != nil || slots <= 0 {
			invalid = append(invalid, "TRACKER_ROSTER_SLOTS")
		} else {
			cfg.RosterSlots = slots
		}
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment variable values: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}
