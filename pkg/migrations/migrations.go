package migrations

import (
	"embed"
	"io/fs"
	"os"

	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:embed sql/*.sql
var embeddedMigrations embed.FS

// MigrateStore applies all pending SQL migrations. Migrations are embedded in
// the binary; a non-empty migrationFolder overrides them with on-disk files.
func MigrateStore(db *gorm.DB, migrationFolder string) error {
	goose.SetLogger(&logger{})

	var migrationFS fs.FS
	if migrationFolder != "" {
		fi, err := os.Stat(migrationFolder)
		if err != nil {
			return errors.Wrap(err, "failed to open migration folder")
		}
		if !fi.Mode().IsDir() {
			return errors.Errorf("failed to open migration folder: %s is not a folder", migrationFolder)
		}
		migrationFS = os.DirFS(migrationFolder)
	} else {
		sub, err := fs.Sub(embeddedMigrations, "sql")
		if err != nil {
			return errors.Wrap(err, "failed to open embedded migrations")
		}
		migrationFS = sub
	}

	goose.SetBaseFS(migrationFS)

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	return goose.Up(sqlDB, ".")
}

/*
logger implements goose.Logger interface

	type Logger interface {
		Fatalf(format string, v ...interface{})
		Printf(format string, v ...interface{})
	}
*/
type logger struct{}

func (m *logger) Printf(format string, v ...interface{}) { zap.S().Infof(format, v...) }
func (m *logger) Fatalf(format string, v ...interface{}) { zap.S().Fatalf(format, v...) }
