package postgres

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/vendorhub-api/internal/config"
)

// TxQueryer executa consultas avulsas ou agrupadas numa transação
type TxQueryer interface {
	Queryer
	RunInTransaction(context.Context, func(*sql.Tx) error) error
}

type Conn interface {
	TxQueryer
	Close() error
	Ping(context.Context) error
}

type Connection struct {
	*sql.DB
}

var _ Conn = (*Connection)(nil)

func NewConnection(
	ctx context.Context,
	cfg config.Database,
) (*Connection, error) {
	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao abrir conexão com o PostgreSQL")
	}

	if err := db.PingContext(ctx); err != nil {
		return nil, errors.Wrap(err, "erro ao testar conexão com o PostgreSQL")
	}

	return &Connection{DB: db}, nil
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

// RunInTransaction confirma a transação se fn retornar nil e a desfaz caso contrário
func (c *Connection) RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if err := recover(); err != nil {
			_ = tx.Rollback()
			panic(err)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return errors.Wrapf(err, "erro ao desfazer transação: %v", rbErr)
		}
		return err
	}

	return tx.Commit()
}
