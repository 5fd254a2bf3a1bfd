package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"employee-portal/internal/domain"
)

type DocumentRepository interface {
	Create(ctx context.Context, doc *domain.Document) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Document, error)
	ListByEmployee(ctx context.Context, employeeID uuid.UUID, params domain.PaginationParams) ([]domain.Document, int64, error)
	Update(ctx context.Context, doc *domain.Document) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type documentRepository struct {
	db *sqlx.DB
}

func NewDocumentRepository(db *sqlx.DB) DocumentRepository {
	return &documentRepository{db: db}
}

func (r *documentRepository) Create(ctx context.Context, doc *domain.Document) error {
	query := `
		INSERT INTO documents (id, employee_id, name, category, drive_link, status, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		doc.ID, doc.EmployeeID, doc.Name, doc.Category,
		doc.DriveLink, doc.Status, doc.ExpiresAt,
	).Scan(&doc.CreatedAt, &doc.UpdatedAt)
}

func (r *documentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	var doc domain.Document
	query := `SELECT * FROM documents WHERE id = $1`
	if err := r.db.GetContext(ctx, &doc, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("document")
		}
		return nil, err
	}
	return &doc, nil
}

func (r *documentRepository) ListByEmployee(ctx context.Context, employeeID uuid.UUID, params domain.PaginationParams) ([]domain.Document, int64, error) {
	params.Validate()

	var total int64
	countQuery := `SELECT COUNT(*) FROM documents WHERE employee_id = $1`
	if err := r.db.GetContext(ctx, &total, countQuery, employeeID); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT * FROM documents
		WHERE employee_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	var docs []domain.Document
	err := r.db.SelectContext(ctx, &docs, query, employeeID, params.PageSize, params.Offset())
	return docs, total, err
}

func (r *documentRepository) Update(ctx context.Context, doc *domain.Document) error {
	query := `
		UPDATE documents
		SET name = $2, category = $3, drive_link = $4, status = $5, expires_at = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`
	return r.db.QueryRowxContext(ctx, query,
		doc.ID, doc.Name, doc.Category, doc.DriveLink, doc.Status, doc.ExpiresAt,
	).Scan(&doc.UpdatedAt)
}

func (r *documentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NewNotFoundError("document")
	}
	return nil
}
