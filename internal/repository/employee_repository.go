package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"employee-portal/internal/domain"
)

type EmployeeRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Employee, error)
	GetAdmins(ctx context.Context) ([]domain.Employee, error)
}

type employeeRepository struct {
	db *sqlx.DB
}

func NewEmployeeRepository(db *sqlx.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Employee, error) {
	var emp domain.Employee
	query := `SELECT * FROM employees WHERE id = $1 AND deleted_at IS NULL`
	if err := r.db.GetContext(ctx, &emp, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("employee")
		}
		return nil, err
	}
	return &emp, nil
}

func (r *employeeRepository) GetAdmins(ctx context.Context) ([]domain.Employee, error) {
	var admins []domain.Employee
	query := `SELECT * FROM employees WHERE role = $1 AND is_active = true AND deleted_at IS NULL`
	err := r.db.SelectContext(ctx, &admins, query, domain.RoleAdmin)
	return admins, err
}
