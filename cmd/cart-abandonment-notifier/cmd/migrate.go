package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/cart-abandonment-notifier/internal/scope"
	"github.com/donaldgifford/cart-abandonment-notifier/internal/store"
)

const migrateTimeout = 60 * time.Second

func migrateCommand() *cobra.Command {
	var seedStartDate bool

	c := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		Long: "Applies pending migrations. With --seed-start-date the abandonment start " +
			"date is set to now in the default scope when no value exists yet, so carts " +
			"created before the install are never notified.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMigrate(cmd.Context(), seedStartDate)
		},
	}
	c.Flags().BoolVar(&seedStartDate, "seed-start-date", false, "store the install date as the abandonment start date")

	return c
}

func runMigrate(parent context.Context, seed bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log := newLogger(cfg)

	ctx, cancel := context.WithTimeout(contextOrBackground(parent), migrateTimeout)
	defer cancel()

	pg, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer pg.Close()

	log.Info("running migrations", "host", cfg.Database.Host, "database", cfg.Database.Name)

	if err := pg.Migrate(ctx); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	log.Info("migrations complete")

	if !seed {
		return nil
	}

	written, err := seedAbandonmentStartDate(ctx, scope.NewPostgresProvider(pg.Pool()), time.Now().In(cfg.Location()))
	if err != nil {
		return err
	}
	if written {
		log.Info("abandonment start date seeded", "path", scope.PathAbandonmentStartDate)
	} else {
		log.Info("abandonment start date already set, leaving it unchanged")
	}
	return nil
}

// seedAbandonmentStartDate writes now as the default-scope start date unless
// one is already configured. It reports whether a value was written.
func seedAbandonmentStartDate(ctx context.Context, rw scope.ReadWriter, now time.Time) (bool, error) {
	_, ok, err := rw.Value(ctx, scope.PathAbandonmentStartDate, scope.Default())
	if err != nil {
		return false, fmt.Errorf("reading start date: %w", err)
	}
	if ok {
		return false, nil
	}

	if err := rw.Save(ctx, scope.PathAbandonmentStartDate, now.Format(scope.StartDateLayouts[0]), scope.Default()); err != nil {
		return false, fmt.Errorf("saving start date: %w", err)
	}
	return true, nil
}
