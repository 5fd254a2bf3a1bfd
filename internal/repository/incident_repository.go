package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"employee-portal/internal/domain"
)

type IncidentRepository interface {
	Create(ctx context.Context, incident *domain.Incident) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Incident, error)
	List(ctx context.Context, employeeID *uuid.UUID, params domain.PaginationParams) ([]domain.Incident, int64, error)
	Update(ctx context.Context, incident *domain.Incident) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type incidentRepository struct {
	db *sqlx.DB
}

func NewIncidentRepository(db *sqlx.DB) IncidentRepository {
	return &incidentRepository{db: db}
}

func (r *incidentRepository) Create(ctx context.Context, incident *domain.Incident) error {
	query := `
		INSERT INTO incidents (id, employee_id, reported_by, title, description, occurred_at, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		incident.ID, incident.EmployeeID, incident.ReportedBy,
		incident.Title, incident.Description, incident.OccurredAt, incident.Status,
	).Scan(&incident.CreatedAt, &incident.UpdatedAt)
}

func (r *incidentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Incident, error) {
	var incident domain.Incident
	query := `SELECT * FROM incidents WHERE id = $1`
	if err := r.db.GetContext(ctx, &incident, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("incident")
		}
		return nil, err
	}
	return &incident, nil
}

func (r *incidentRepository) List(ctx context.Context, employeeID *uuid.UUID, params domain.PaginationParams) ([]domain.Incident, int64, error) {
	params.Validate()

	var total int64
	var incidents []domain.Incident

	if employeeID != nil {
		countQuery := `SELECT COUNT(*) FROM incidents WHERE employee_id = $1`
		if err := r.db.GetContext(ctx, &total, countQuery, *employeeID); err != nil {
			return nil, 0, err
		}

		query := `
			SELECT * FROM incidents
			WHERE employee_id = $1
			ORDER BY occurred_at DESC
			LIMIT $2 OFFSET $3`
		err := r.db.SelectContext(ctx, &incidents, query, *employeeID, params.PageSize, params.Offset())
		return incidents, total, err
	}

	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM incidents`); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT * FROM incidents
		ORDER BY occurred_at DESC
		LIMIT $1 OFFSET $2`
	err := r.db.SelectContext(ctx, &incidents, query, params.PageSize, params.Offset())
	return incidents, total, err
}

func (r *incidentRepository) Update(ctx context.Context, incident *domain.Incident) error {
	query := `
		UPDATE incidents
		SET title = $2, description = $3, status = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`
	return r.db.QueryRowxContext(ctx, query,
		incident.ID, incident.Title, incident.Description, incident.Status,
	).Scan(&incident.UpdatedAt)
}

func (r *incidentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM incidents WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NewNotFoundError("incident")
	}
	return nil
}
