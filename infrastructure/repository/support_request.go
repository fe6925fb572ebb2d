package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/vendorhub-api/infrastructure/database/postgres"
	"github.com/vfg2006/vendorhub-api/internal/domain"
)

const (
	complaintsTable   = "complaints"
	itemRequestsTable = "item_requests"
)

var complaintColumns = []string{
	"id",
	"vendor_id",
	"subject",
	"description",
	"preferred_contact",
	"evidence_url",
	"status",
	"created_at",
}

var itemRequestColumns = []string{
	"id",
	"vendor_id",
	"item_name",
	"quantity",
	"notes",
	"created_at",
}

type SupportRequestRepository interface {
	CreateComplaint(ctx context.Context, complaint *domain.Complaint) (*domain.Complaint, error)
	ListComplaints(ctx context.Context, filters domain.SupportFilters) ([]*domain.Complaint, error)
	CreateItemRequest(ctx context.Context, request *domain.ItemRequest) (*domain.ItemRequest, error)
	ListItemRequests(ctx context.Context, filters domain.SupportFilters) ([]*domain.ItemRequest, error)
}

type supportRequestRepository struct {
	conn postgres.Queryer
}

func NewSupportRequestRepository(conn postgres.Queryer) SupportRequestRepository {
	return &supportRequestRepository{
		conn: conn,
	}
}

func (r *supportRequestRepository) CreateComplaint(ctx context.Context, complaint *domain.Complaint) (*domain.Complaint, error) {
	query, args, err := squirrel.
		Insert(complaintsTable).
		Columns("id", "vendor_id", "subject", "description", "preferred_contact", "evidence_url", "status").
		Values(
			complaint.ID,
			complaint.VendorID,
			complaint.Subject,
			complaint.Description,
			complaint.PreferredContact,
			complaint.EvidenceURL,
			complaint.Status,
		).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&complaint.CreatedAt); err != nil {
		return nil, errors.Wrap(err, "erro ao inserir reclamação")
	}

	return complaint, nil
}

func (r *supportRequestRepository) ListComplaints(ctx context.Context, filters domain.SupportFilters) ([]*domain.Complaint, error) {
	query, args, err := listSupportQuery(complaintsTable, complaintColumns, filters).ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a query")
	}
	defer rows.Close()

	complaints := make([]*domain.Complaint, 0)
	for rows.Next() {
		complaint, err := scanComplaint(rows)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear reclamação")
		}
		complaints = append(complaints, complaint)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return complaints, nil
}

func (r *supportRequestRepository) CreateItemRequest(ctx context.Context, request *domain.ItemRequest) (*domain.ItemRequest, error) {
	query, args, err := squirrel.
		Insert(itemRequestsTable).
		Columns("id", "vendor_id", "item_name", "quantity", "notes").
		Values(
			request.ID,
			request.VendorID,
			request.ItemName,
			request.Quantity,
			request.Notes,
		).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&request.CreatedAt); err != nil {
		return nil, errors.Wrap(err, "erro ao inserir pedido de item")
	}

	return request, nil
}

func (r *supportRequestRepository) ListItemRequests(ctx context.Context, filters domain.SupportFilters) ([]*domain.ItemRequest, error) {
	query, args, err := listSupportQuery(itemRequestsTable, itemRequestColumns, filters).ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a query")
	}
	defer rows.Close()

	requests := make([]*domain.ItemRequest, 0)
	for rows.Next() {
		request, err := scanItemRequest(rows)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear pedido de item")
		}
		requests = append(requests, request)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return requests, nil
}

func listSupportQuery(table string, columns []string, filters domain.SupportFilters) squirrel.SelectBuilder {
	queryBuilder := squirrel.
		Select(columns...).
		From(table).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filters.VendorID != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"vendor_id": filters.VendorID})
	}

	return queryBuilder
}

func scanComplaint(row rowScanner) (*domain.Complaint, error) {
	var (
		complaint        domain.Complaint
		preferredContact sql.NullString
		evidenceURL      sql.NullString
	)

	err := row.Scan(
		&complaint.ID,
		&complaint.VendorID,
		&complaint.Subject,
		&complaint.Description,
		&preferredContact,
		&evidenceURL,
		&complaint.Status,
		&complaint.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if preferredContact.Valid {
		complaint.PreferredContact = &preferredContact.String
	}
	if evidenceURL.Valid {
		complaint.EvidenceURL = &evidenceURL.String
	}

	return &complaint, nil
}

func scanItemRequest(row rowScanner) (*domain.ItemRequest, error) {
	var (
		request domain.ItemRequest
		notes   sql.NullString
	)

	err := row.Scan(
		&request.ID,
		&request.VendorID,
		&request.ItemName,
		&request.Quantity,
		&notes,
		&request.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if notes.Valid {
		request.Notes = &notes.String
	}

	return &request, nil
}
