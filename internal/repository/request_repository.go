package repository

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"employee-portal/internal/domain"
)

// ErrNoRowsUpdated signals that a status-guarded update matched no row: the
// request either does not exist or its status changed under us. The service
// layer refetches to tell the two apart.
var ErrNoRowsUpdated = errors.New("no rows updated")

type RequestRepository interface {
	Create(ctx context.Context, req *domain.Request) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Request, error)
	List(ctx context.Context, filter domain.RequestFilter, params domain.PaginationParams) ([]domain.Request, int64, error)
	ExistsActiveForDate(ctx context.Context, employeeID uuid.UUID, reqType domain.RequestType, date time.Time) (bool, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from []domain.RequestStatus, upd domain.RequestUpdate) (*domain.Request, error)
}

type requestRepository struct {
	db *sqlx.DB
}

func NewRequestRepository(db *sqlx.DB) RequestRepository {
	return &requestRepository{db: db}
}

func (r *requestRepository) Create(ctx context.Context, req *domain.Request) error {
	query := `
		INSERT INTO requests (id, employee_id, request_type, category, status,
			start_date, end_date, date, hours, days, reason, attachment_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		req.ID, req.EmployeeID, req.RequestType, req.Category, req.Status,
		req.StartDate, req.EndDate, req.Date, req.Hours, req.Days,
		req.Reason, req.AttachmentURL,
	).Scan(&req.CreatedAt, &req.UpdatedAt)
}

func (r *requestRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Request, error) {
	var req domain.Request
	query := `SELECT * FROM requests WHERE id = $1`
	if err := r.db.GetContext(ctx, &req, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("request")
		}
		return nil, err
	}
	return &req, nil
}

func (r *requestRepository) List(ctx context.Context, filter domain.RequestFilter, params domain.PaginationParams) ([]domain.Request, int64, error) {
	params.Validate()

	where := ` WHERE 1=1`
	args := []interface{}{}
	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		where += ` AND employee_id = $` + strconv.Itoa(len(args))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		where += ` AND status = $` + strconv.Itoa(len(args))
	}
	if filter.Type != nil {
		args = append(args, *filter.Type)
		where += ` AND request_type = $` + strconv.Itoa(len(args))
	}

	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM requests`+where, args...); err != nil {
		return nil, 0, err
	}

	args = append(args, params.PageSize, params.Offset())
	query := `SELECT * FROM requests` + where +
		` ORDER BY created_at DESC LIMIT $` + strconv.Itoa(len(args)-1) + ` OFFSET $` + strconv.Itoa(len(args))

	var requests []domain.Request
	err := r.db.SelectContext(ctx, &requests, query, args...)
	return requests, total, err
}

func (r *requestRepository) ExistsActiveForDate(ctx context.Context, employeeID uuid.UUID, reqType domain.RequestType, date time.Time) (bool, error) {
	var exists bool
	query := `
		SELECT EXISTS (
			SELECT 1 FROM requests
			WHERE employee_id = $1 AND request_type = $2 AND date = $3
			AND status = ANY($4)
		)`
	err := r.db.GetContext(ctx, &exists, query, employeeID, reqType, date, pq.Array(statusStrings(domain.ActiveStatuses)))
	return exists, err
}

// UpdateStatus is the compare-and-set at the heart of the state machine: the
// row is only touched while its status is still one of `from`, so concurrent
// mutations on the same request serialize on the database row and the loser
// sees ErrNoRowsUpdated. This holds across server instances.
func (r *requestRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from []domain.RequestStatus, upd domain.RequestUpdate) (*domain.Request, error) {
	query := `
		UPDATE requests
		SET status = $3,
			remarks = COALESCE($4, remarks),
			start_date = COALESCE($5, start_date),
			end_date = COALESCE($6, end_date),
			hours = COALESCE($7, hours),
			days = COALESCE($8, days),
			reviewed_by = COALESCE($9, reviewed_by),
			reviewed_at = NOW(),
			updated_at = NOW()
		WHERE id = $1 AND status = ANY($2)
		RETURNING *`

	var req domain.Request
	err := r.db.QueryRowxContext(ctx, query,
		id, pq.Array(statusStrings(from)), upd.Status, upd.Remarks,
		upd.StartDate, upd.EndDate, upd.Hours, upd.Days, upd.ReviewedBy,
	).StructScan(&req)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoRowsUpdated
		}
		return nil, err
	}
	return &req, nil
}

func statusStrings(statuses []domain.RequestStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
