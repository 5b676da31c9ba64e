package system

import (
	"fmt"
	"io/fs"
	"time"

	"github.com/haebit/haebit/internal/backup"
	"github.com/haebit/haebit/internal/cli"
	"github.com/haebit/haebit/internal/keyring"
	"github.com/haebit/haebit/internal/migration"
	"github.com/haebit/haebit/internal/storage"
	"github.com/haebit/haebit/internal/storage/sqlite"
	"github.com/haebit/haebit/internal/validation"
	"github.com/haebit/haebit/migrations"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	dbReachable := false

	if err := checkDBReachable(ctx); err != nil {
		fmt.Printf("❌ Database reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Database reachable: OK\n")
		dbReachable = true
	}

	if dbReachable {
		if err := checkSchemaVersion(ctx); err != nil {
			fmt.Printf("❌ Schema version: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Schema version: OK\n")
		}
	} else {
		fmt.Printf("⊘ Schema version: SKIPPED (database not reachable)\n")
	}

	if dbReachable {
		if err := checkHabitData(ctx); err != nil {
			fmt.Printf("❌ Habit data: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Habit data: OK\n")
		}
	} else {
		fmt.Printf("⊘ Habit data: SKIPPED (database not reachable)\n")
	}

	if storage.IsPostgresConfig(ctx.Store.GetConfigPath()) {
		fmt.Printf("⊘ Backups present: SKIPPED (PostgreSQL storage)\n")
	} else if err := checkBackupsPresent(ctx); err != nil {
		fmt.Printf("⚠ Backups present: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Backups present: OK\n")
	}

	if keyring.IsAvailable() {
		fmt.Printf("✓ OS keyring: OK\n")
	} else {
		fmt.Printf("⚠ OS keyring: WARNING\n")
		fmt.Printf("   OS keyring is not available; PostgreSQL credentials cannot be stored securely\n")
	}

	if err := checkClockSanity(); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkDBReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}

	if sqliteStore, ok := ctx.Store.(*sqlite.Store); ok {
		db := sqliteStore.GetDB()
		if db == nil {
			return fmt.Errorf("database connection is nil")
		}
		var result int
		if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
			return fmt.Errorf("failed to query database: %w", err)
		}
	}

	return nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	sqliteStore, ok := ctx.Store.(*sqlite.Store)
	if !ok {
		// Load already validated the version for Postgres.
		return nil
	}

	db := sqliteStore.GetDB()
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return fmt.Errorf("failed to access migrations: %w", err)
	}
	return migration.NewRunner(db, subFS).ValidateVersion()
}

// checkHabitData loads every habit, including archived and deleted ones, so
// that undecodable rows and rule problems surface here rather than in daily
// use.
func checkHabitData(ctx *cli.Context) error {
	user, err := ctx.CurrentUser()
	if err != nil {
		return err
	}

	habits, err := ctx.Store.GetAllHabits(user.ID, true, true)
	if err != nil {
		return fmt.Errorf("failed to load habits: %w", err)
	}

	seen := make(map[string]bool)
	for _, habit := range habits {
		if seen[habit.ID] {
			return fmt.Errorf("duplicate habit ID found: %s", habit.ID)
		}
		seen[habit.ID] = true
	}

	result := validation.New().ValidateHabits(habits)
	if result.HasIssues() {
		return fmt.Errorf("%s", result.FormatReport())
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'haebit backup create'")
	}
	return nil
}

func checkClockSanity() error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}
