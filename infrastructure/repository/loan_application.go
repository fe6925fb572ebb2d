// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/vendorhub-api/infrastructure/database/postgres"
	"github.com/vfg2006/vendorhub-api/internal/domain"
)

const (
	loanApplicationsTable = "loan_applications"
	loanReviewsTable      = "loan_application_reviews"
)

var loanApplicationColumns = []string{
	"id",
	"vendor_id",
	"amount",
	"purpose",
	"status",
	"applied_date",
	"reviewed_by",
	"reviewed_at",
	"created_at",
	"updated_at",
}

type LoanApplicationRepository interface {
	Create(ctx context.Context, application *domain.LoanApplication) (*domain.LoanApplication, error)
	GetByID(ctx context.Context, id string) (*domain.LoanApplication, error)
	List(ctx context.Context, filters domain.LoanApplicationFilters) ([]*domain.LoanApplication, error)
	UpdateStatus(ctx context.Context, id string, status domain.LoanApplicationStatus, reviewer string, reviewedAt time.Time) (bool, error)
}

type loanApplicationRepository struct {
	conn postgres.TxQueryer
}

func NewLoanApplicationRepository(conn postgres.TxQueryer) LoanApplicationRepository {
	return &loanApplicationRepository{
		conn: conn,
	}
}

func (r *loanApplicationRepository) Create(ctx context.Context, application *domain.LoanApplication) (*domain.LoanApplication, error) {
	query, args, err := squirrel.
		Insert(loanApplicationsTable).
		Columns("id", "vendor_id", "amount", "purpose", "status", "applied_date").
		Values(
			application.ID,
			application.VendorID,
			application.Amount,
			application.Purpose,
			application.Status,
			application.AppliedDate,
		).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&application.CreatedAt, &application.UpdatedAt)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao inserir pedido de empréstimo")
	}

	return application, nil
}

func (r *loanApplicationRepository) GetByID(ctx context.Context, id string) (*domain.LoanApplication, error) {
	query, args, err := squirrel.
		Select(loanApplicationColumns...).
		From(loanApplicationsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	application, err := scanLoanApplication(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "erro ao escanear pedido de empréstimo")
	}

	return application, nil
}

func (r *loanApplicationRepository) List(ctx context.Context, filters domain.LoanApplicationFilters) ([]*domain.LoanApplication, error) {
	query, args, err := listLoanApplicationsQuery(filters).ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a query")
	}
	defer rows.Close()

	applications := make([]*domain.LoanApplication, 0)
	for rows.Next() {
		application, err := scanLoanApplication(rows)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear pedido de empréstimo")
		}
		applications = append(applications, application)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return applications, nil
}

// UpdateStatus só altera pedidos pendentes e grava a revisão na mesma transação;
// retorna false quando nenhum registro mudou
func (r *loanApplicationRepository) UpdateStatus(
	ctx context.Context,
	id string,
	status domain.LoanApplicationStatus,
	reviewer string,
	reviewedAt time.Time,
) (bool, error) {
	query, args, err := updateLoanStatusQuery(id, status, reviewer, reviewedAt).ToSql()
	if err != nil {
		return false, errors.Wrap(err, "erro ao construir a query")
	}

	reviewQuery, reviewArgs, err := insertLoanReviewQuery(id, status, reviewer, reviewedAt).ToSql()
	if err != nil {
		return false, errors.Wrap(err, "erro ao construir a query")
	}

	changed := false
	err = r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return errors.Wrap(err, "erro ao atualizar pedido de empréstimo")
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return errors.Wrap(err, "erro ao obter linhas afetadas")
		}
		if affected == 0 {
			return nil
		}

		if _, err := tx.ExecContext(ctx, reviewQuery, reviewArgs...); err != nil {
			return errors.Wrap(err, "erro ao registrar revisão do pedido")
		}

		changed = true
		return nil
	})
	if err != nil {
		return false, err
	}

	return changed, nil
}

func listLoanApplicationsQuery(filters domain.LoanApplicationFilters) squirrel.SelectBuilder {
	queryBuilder := squirrel.
		Select(loanApplicationColumns...).
		From(loanApplicationsTable).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filters.VendorID != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"vendor_id": filters.VendorID})
	}

	if filters.Status != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"status": *filters.Status})
	}

	return queryBuilder
}

func updateLoanStatusQuery(id string, status domain.LoanApplicationStatus, reviewer string, reviewedAt time.Time) squirrel.UpdateBuilder {
	return squirrel.
		Update(loanApplicationsTable).
		Set("status", status).
		Set("reviewed_by", reviewer).
		Set("reviewed_at", reviewedAt).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": id, "status": domain.LoanApplicationStatusPending}).
		PlaceholderFormat(squirrel.Dollar)
}

func insertLoanReviewQuery(id string, status domain.LoanApplicationStatus, reviewer string, reviewedAt time.Time) squirrel.InsertBuilder {
	return squirrel.
		Insert(loanReviewsTable).
		Columns("application_id", "reviewer", "status", "reviewed_at").
		Values(id, reviewer, status, reviewedAt).
		PlaceholderFormat(squirrel.Dollar)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLoanApplication(row rowScanner) (*domain.LoanApplication, error) {
	var (
		application domain.LoanApplication
		reviewedBy  sql.NullString
		reviewedAt  sql.NullTime
	)

	err := row.Scan(
		&application.ID,
		&application.VendorID,
		&application.Amount,
		&application.Purpose,
		&application.Status,
		&application.AppliedDate,
		&reviewedBy,
		&reviewedAt,
		&application.CreatedAt,
		&application.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if reviewedBy.Valid {
		application.ReviewedBy = &reviewedBy.String
	}
	if reviewedAt.Valid {
		application.ReviewedAt = &reviewedAt.Time
	}

	return &application, nil
}
