// file: internals/cli/root.go
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"careconnect_backend/internals/configs"
	database "careconnect_backend/internals/databases"
)

type BuildInfo struct {
	Version string
	Commit  string
}

// NewRootCommand wires every subcommand; running it bare starts the server.
func NewRootCommand(out io.Writer, build BuildInfo) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "careconnect",
		Short:         "CareConnect persons and resources API",
		Version:       fmt.Sprintf("%s (%s)", build.Version, build.Commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd)
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(out)

	cmd.AddCommand(newServeCommand())
	cmd.AddCommand(newMigrateCommand(out))
	cmd.AddCommand(newSeedCommand(out))
	cmd.AddCommand(newPersonsCommand(out))
	return cmd
}

type runtime struct {
	cfg configs.Config
	log *zap.Logger
	db  *gorm.DB
}

// bootstrap loads config, builds the logger and opens the store.
func bootstrap() (*runtime, error) {
	cfg, err := configs.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	log, err := configs.NewLogger(cfg.LogLevel, cfg.LogFormat, cfg.AppName)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	db, err := database.ConnectDB(cfg.Database, log)
	if err != nil {
		_ = log.Sync()
		return nil, err
	}
	return &runtime{cfg: cfg, log: log, db: db}, nil
}

func (r *runtime) migrateIfEnabled() error {
	if !r.cfg.Database.AutoMigrate {
		return nil
	}
	return database.Migrate(r.db)
}

func (r *runtime) close() {
	if err := database.Close(r.db); err != nil {
		r.log.Warn("close database", zap.Error(err))
	}
	_ = r.log.Sync()
}
