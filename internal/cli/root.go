package cli

import (
	"fmt"
	"strings"

	"github.com/haebit/haebit/internal/backup"
	"github.com/haebit/haebit/internal/logger"
	"github.com/haebit/haebit/internal/models"
	"github.com/haebit/haebit/internal/storage"
)

// Context is the shared state handed to every command's Run method.
type Context struct {
	Store storage.Provider

	// user is resolved lazily on first use so that commands which never
	// touch records (keyring, backups) don't require a profile.
	user *models.Profile
}

// CurrentUser resolves the acting profile, creating a default one on first
// use of a fresh database.
func (c *Context) CurrentUser() (models.Profile, error) {
	if c.user != nil {
		return *c.user, nil
	}
	profile, err := c.Store.EnsureDefaultProfile("me")
	if err != nil {
		return models.Profile{}, fmt.Errorf("failed to resolve profile: %w", err)
	}
	c.user = &profile
	return profile, nil
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	if storage.IsPostgresConfig(c.Store.GetConfigPath()) {
		// Postgres backups are the server operator's concern.
		return
	}
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// FormatRepeat formats a repeat rule into a human-readable string
func FormatRepeat(r models.Repeat) string {
	switch r.Kind {
	case models.RepeatDaily:
		return "daily"
	case models.RepeatWeekly:
		if len(r.Weekdays) > 0 {
			var days []string
			for _, wd := range r.Weekdays {
				days = append(days, wd.String()[:3])
			}
			return fmt.Sprintf("weekly on %s", strings.Join(days, ","))
		}
		return "weekly"
	case models.RepeatMonthly:
		if len(r.MonthDays) > 0 {
			var days []string
			for _, d := range r.MonthDays {
				days = append(days, fmt.Sprintf("%d", d))
			}
			return fmt.Sprintf("monthly on day %s", strings.Join(days, ","))
		}
		return "monthly"
	default:
		return "unknown"
	}
}

// CompletionGlyph renders the completed flag for list output.
func CompletionGlyph(completed bool) string {
	if completed {
		return "✓"
	}
	return "○"
}
