package postgres

import (
	"embed"

	"github.com/golang-migrate/migrate/v4"
	migratepostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// RunMigrations aplica as migrações embutidas na conexão informada
func RunMigrations(conn *Connection) error {
	driver, err := migratepostgres.WithInstance(conn.DB, &migratepostgres.Config{})
	if err != nil {
		return errors.Wrap(err, "erro ao criar driver de migração")
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return errors.Wrap(err, "erro ao criar fonte iofs")
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return errors.Wrap(err, "erro ao criar instância de migração")
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "erro ao executar migrações")
	}

	version, dirty, err := m.Version()
	if err == nil {
		logrus.WithFields(logrus.Fields{
			"version": version,
			"dirty":   dirty,
		}).Info("Migrações do PostgreSQL aplicadas")
	}

	return nil
}
