package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/vibast-solutions/ms-go-secours/app/entity"
)

var (
	ErrRescueRequestNotFound   = errors.New("rescue request not found")
	ErrRescueRequestNotPending = errors.New("rescue request is not pending")
)

const rescueRequestColumns = `id, subscription_id, description, rescue_value_fcfa, token_balance_at_request,
		       status, admin_notes, processed_by, processed_at, created_at, updated_at`

type RescueRequestRepository struct {
	db DBTX
}

func NewRescueRequestRepository(db DBTX) *RescueRequestRepository {
	return &RescueRequestRepository{db: db}
}

func (r *RescueRequestRepository) Create(ctx context.Context, request *entity.RescueRequest) error {
	query := `
		INSERT INTO rescue_requests (
			subscription_id, description, rescue_value_fcfa, token_balance_at_request,
			status, created_at, updated_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		request.SubscriptionID,
		request.Description,
		request.RescueValueFCFA,
		request.TokenBalanceAtRequest,
		request.Status,
		request.CreatedAt,
		request.UpdatedAt,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	request.ID = uint64(id)
	return nil
}

func (r *RescueRequestRepository) FindByID(ctx context.Context, id uint64) (*entity.RescueRequest, error) {
	query := `SELECT ` + rescueRequestColumns + ` FROM rescue_requests WHERE id = ?`

	item := &entity.RescueRequest{}
	if err := scanRescueRequest(r.db.QueryRowContext(ctx, query, id), item); err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	return item, nil
}

func (r *RescueRequestRepository) ListBySubscription(ctx context.Context, subscriptionID uint64) ([]*entity.RescueRequest, error) {
	query := `
		SELECT ` + rescueRequestColumns + `
		FROM rescue_requests
		WHERE subscription_id = ?
		ORDER BY id DESC
	`
	return r.listByQuery(ctx, query, subscriptionID)
}

func (r *RescueRequestRepository) ListByStatus(ctx context.Context, status string) ([]*entity.RescueRequest, error) {
	query := `
		SELECT ` + rescueRequestColumns + `
		FROM rescue_requests
		WHERE status = ?
		ORDER BY id ASC
	`
	return r.listByQuery(ctx, query, status)
}

// Reject moves a pending request to rejected. The status guard in the WHERE
// clause makes the transition happen at most once.
func (r *RescueRequestRepository) Reject(ctx context.Context, request *entity.RescueRequest) error {
	query := `
		UPDATE rescue_requests
		SET status = ?, admin_notes = ?, processed_by = ?, processed_at = ?, updated_at = ?
		WHERE id = ?
		  AND status = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		entity.RescueStatusRejected,
		nullableStringValue(request.AdminNotes),
		nullableStringValue(request.ProcessedBy),
		nullableTimeValue(request.ProcessedAt),
		request.UpdatedAt,
		request.ID,
		entity.RescueStatusPending,
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		current, err := r.FindByID(ctx, request.ID)
		if err != nil {
			return err
		}
		if current == nil {
			return ErrRescueRequestNotFound
		}
		return ErrRescueRequestNotPending
	}

	request.Status = entity.RescueStatusRejected
	return nil
}

func (r *RescueRequestRepository) listByQuery(ctx context.Context, query string, args ...interface{}) ([]*entity.RescueRequest, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*entity.RescueRequest, 0)
	for rows.Next() {
		item := &entity.RescueRequest{}
		if err := scanRescueRequest(rows, item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func scanRescueRequest(scanner rowScanner, item *entity.RescueRequest) error {
	var adminNotes, processedBy sql.NullString
	var processedAt sql.NullTime

	if err := scanner.Scan(
		&item.ID,
		&item.SubscriptionID,
		&item.Description,
		&item.RescueValueFCFA,
		&item.TokenBalanceAtRequest,
		&item.Status,
		&adminNotes,
		&processedBy,
		&processedAt,
		&item.CreatedAt,
		&item.UpdatedAt,
	); err != nil {
		return err
	}

	item.AdminNotes = stringPtr(adminNotes)
	item.ProcessedBy = stringPtr(processedBy)
	item.ProcessedAt = timePtr(processedAt)
	return nil
}
