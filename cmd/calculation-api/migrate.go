package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/webcalc/calculation-service/internal/config"
	"github.com/webcalc/calculation-service/internal/store"
	"github.com/webcalc/calculation-service/pkg/log"
	"github.com/webcalc/calculation-service/pkg/migrations"
)

var seed bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Migrate the db",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.New()
		if err != nil {
			zap.S().Fatalw("reading configuration", "error", err)
		}

		logLvl, err := zap.ParseAtomicLevel(cfg.Service.LogLevel)
		if err != nil {
			logLvl = zap.NewAtomicLevelAt(zapcore.InfoLevel)
		}

		logger := log.InitLog(logLvl)
		defer func() { _ = logger.Sync() }()

		undo := zap.ReplaceGlobals(logger)
		defer undo()

		defer zap.S().Info("Db migrated")
		zap.S().Infof("Using config: %s", cfg)

		zap.S().Info("Initializing data store")
		db, err := store.InitDB(cfg)
		if err != nil {
			zap.S().Fatalw("initializing data store", "error", err)
		}

		st := store.NewStore(db)
		defer st.Close()

		if err := migrations.MigrateStore(db, cfg.Service.MigrationFolder); err != nil {
			zap.S().Fatalw("running database migrations", "error", err)
		}

		if seed {
			if err := st.Seed(); err != nil {
				zap.S().Fatalw("seeding the database", "error", err)
			}
		}

		return nil
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&seed, "seed", false, "Seed the database with an example user and calculation")
}
