package system

import (
	"fmt"
	"os"

	"github.com/haebit/haebit/internal/cli"
	"github.com/haebit/haebit/internal/storage"
)

type MigrateCmd struct{}

// Run applies pending schema migrations. It cannot go through Load, which
// refuses to open a database whose schema is behind.
func (c *MigrateCmd) Run(ctx *cli.Context) error {
	path := ctx.Store.GetConfigPath()
	if !storage.IsPostgresConfig(path) {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'haebit init' first")
		}
	}

	// Init opens the database and applies anything pending, logging each
	// migration as it goes.
	if err := ctx.Store.Init(); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	defer ctx.Store.Close()

	return nil
}
