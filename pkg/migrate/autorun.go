package migrate

import (
	"context"
	"fmt"

	"github.com/ghstudios/mhgen-catalog/pkg/config"
	"github.com/ghstudios/mhgen-catalog/pkg/db"
	"github.com/ghstudios/mhgen-catalog/pkg/db/models"
	"github.com/ghstudios/mhgen-catalog/pkg/logger"
)

// MaybeRunDev brings the schema up to date when the auto-migrate flag is set.
// Postgres goes through goose outside prod; SQLite uses GORM AutoMigrate since
// the SQL files target Postgres.
func MaybeRunDev(ctx context.Context, cfg *config.Config, logg *logger.Logger, client *db.Client) error {
	if !cfg.FeatureFlags.AutoMigrate {
		return nil
	}

	ctx = logg.WithFields(ctx, map[string]any{"env": cfg.App.Env, "driver": client.Driver()})

	if client.Driver() == db.DriverSQLite {
		logg.Info(ctx, "running gorm automigrate (sqlite)")
		if err := client.DB().WithContext(ctx).AutoMigrate(models.All()...); err != nil {
			return fmt.Errorf("automigrate: %w", err)
		}
		return nil
	}

	if cfg.App.IsProd() {
		logg.Warn(ctx, "auto-migrate ignored in prod; run cmd/migrate instead")
		return nil
	}

	sqlDB, err := client.DB().DB()
	if err != nil {
		return fmt.Errorf("extracting sql.DB: %w", err)
	}

	logg.Info(ctx, "running goose migrations (dev auto-run)")
	if err := Run(ctx, sqlDB, client.Driver(), "up"); err != nil {
		return fmt.Errorf("running goose up: %w", err)
	}
	logg.Info(ctx, "goose migrations completed")
	return nil
}
