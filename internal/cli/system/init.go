package system

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/haebit/haebit/internal/cli"
	"github.com/haebit/haebit/internal/storage"
)

type InitCmd struct {
	Force  bool   `help:"Force reset by deleting existing database before initialization."`
	Source string `help:"Source SQLite database path to import data from."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		dbPath := ctx.Store.GetConfigPath()
		if storage.IsPostgresConfig(dbPath) {
			return fmt.Errorf("--force is only supported for SQLite storage")
		}
		// Don't delete if it's the source (user error protection)
		if c.Source != "" {
			absDbPath, err := filepath.Abs(dbPath)
			if err == nil {
				dbPath = absDbPath
			}
			absSource, err := filepath.Abs(c.Source)
			if err == nil && absSource == dbPath {
				return fmt.Errorf("cannot use --force when source and destination are the same: %s", dbPath)
			}
		}
		if _, err := os.Stat(dbPath); err == nil {
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing database: %w", err)
			}
			if err := os.Remove(dbPath); err != nil {
				return fmt.Errorf("failed to delete existing database: %w", err)
			}
			fmt.Printf("Deleted existing database at: %s\n", dbPath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing database: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized haebit storage at: %s\n", ctx.Store.GetConfigPath())

	if c.Source != "" {
		fmt.Printf("Importing data from: %s\n", c.Source)
		if err := c.importData(ctx, c.Source); err != nil {
			return fmt.Errorf("import failed: %w", err)
		}
		fmt.Println("Import completed successfully!")
	}

	return nil
}

// importData copies all records from a source SQLite database into the
// freshly initialized store.
func (c *InitCmd) importData(ctx *cli.Context, sourcePath string) error {
	if storage.IsPostgresConfig(sourcePath) {
		if storage.HasEmbeddedCredentials(sourcePath) {
			return fmt.Errorf("source connection string contains embedded credentials; use the keyring, environment, or .pgpass instead")
		}
	}

	var sourceStore storage.Provider
	if storage.IsPostgresConfig(sourcePath) {
		sourceStore = storage.NewPostgresStore(sourcePath)
	} else {
		sourceStore = storage.NewSQLiteStore(sourcePath)
	}

	if err := sourceStore.Load(); err != nil {
		return fmt.Errorf("failed to load source database: %w", err)
	}
	defer sourceStore.Close()

	fmt.Println("  Importing profile...")
	profile, err := sourceStore.EnsureDefaultProfile("me")
	if err != nil {
		return fmt.Errorf("failed to get profile from source: %w", err)
	}
	if err := ctx.Store.SaveProfile(profile); err != nil {
		return fmt.Errorf("failed to save profile to destination: %w", err)
	}

	fmt.Println("  Importing habits...")
	habits, err := sourceStore.GetAllHabits(profile.ID, true, true)
	if err != nil {
		return fmt.Errorf("failed to get habits from source: %w", err)
	}
	for _, habit := range habits {
		if _, err := ctx.Store.AddHabit(profile.ID, habit); err != nil {
			return fmt.Errorf("failed to add habit %s: %w", habit.ID, err)
		}
	}
	fmt.Printf("    Imported %d habits\n", len(habits))

	fmt.Println("  Importing friends...")
	friends, err := sourceStore.GetAllFriends(profile.ID)
	if err != nil {
		return fmt.Errorf("failed to get friends from source: %w", err)
	}
	for _, friend := range friends {
		if _, err := ctx.Store.AddFriend(profile.ID, friend); err != nil {
			return fmt.Errorf("failed to add friend %s: %w", friend.ID, err)
		}
	}
	fmt.Printf("    Imported %d friends\n", len(friends))

	return nil
}
