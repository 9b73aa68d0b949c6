package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/vibast-solutions/ms-go-secours/app/entity"
	"github.com/vibast-solutions/ms-go-secours/app/policy"
)

var (
	ErrSubscriptionNotFound      = errors.New("subscription not found")
	ErrSubscriptionAlreadyExists = errors.New("subscription already exists")
)

const subscriptionColumns = `id, user_id, category, active, token_balance, started_at, created_at, updated_at`

type SubscriptionRepository struct {
	db DBTX
}

func NewSubscriptionRepository(db DBTX) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

func (r *SubscriptionRepository) Create(ctx context.Context, subscription *entity.Subscription) error {
	query := `
		INSERT INTO subscriptions (
			user_id, category, active, token_balance,
			started_at, created_at, updated_at
		)
		VALUES (?, ?, ?, 0, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		subscription.UserID,
		string(subscription.Category),
		subscription.Active,
		subscription.StartedAt,
		subscription.CreatedAt,
		subscription.UpdatedAt,
	)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrSubscriptionAlreadyExists
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	subscription.ID = uint64(id)
	subscription.TokenBalance = 0
	return nil
}

// UpdateActivation never touches token_balance; only ledger writes do.
// Reactivation only matches an inactive row, so a concurrent reactivation
// that already won surfaces as ErrSubscriptionAlreadyExists.
func (r *SubscriptionRepository) UpdateActivation(ctx context.Context, subscription *entity.Subscription) error {
	query := `
		UPDATE subscriptions
		SET active = ?, started_at = ?, updated_at = ?
		WHERE id = ?
	`
	if subscription.Active {
		query += `  AND active = 0
	`
	}

	result, err := r.db.ExecContext(ctx, query,
		subscription.Active,
		subscription.StartedAt,
		subscription.UpdatedAt,
		subscription.ID,
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		if subscription.Active {
			return ErrSubscriptionAlreadyExists
		}
		return ErrSubscriptionNotFound
	}

	return nil
}

func (r *SubscriptionRepository) FindByID(ctx context.Context, id uint64) (*entity.Subscription, error) {
	query := `SELECT ` + subscriptionColumns + ` FROM subscriptions WHERE id = ?`

	item := &entity.Subscription{}
	if err := scanSubscription(r.db.QueryRowContext(ctx, query, id), item); err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	return item, nil
}

func (r *SubscriptionRepository) FindByUserAndCategory(ctx context.Context, userID string, category policy.Category) (*entity.Subscription, error) {
	query := `
		SELECT ` + subscriptionColumns + `
		FROM subscriptions
		WHERE user_id = ?
		  AND category = ?
		LIMIT 1
	`

	item := &entity.Subscription{}
	if err := scanSubscription(r.db.QueryRowContext(ctx, query, userID, string(category)), item); err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	return item, nil
}

func (r *SubscriptionRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Subscription, error) {
	query := `
		SELECT ` + subscriptionColumns + `
		FROM subscriptions
		WHERE user_id = ?
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*entity.Subscription, 0)
	for rows.Next() {
		item := &entity.Subscription{}
		if err := scanSubscription(rows, item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func scanSubscription(scanner rowScanner, item *entity.Subscription) error {
	var category string
	err := scanner.Scan(
		&item.ID,
		&item.UserID,
		&category,
		&item.Active,
		&item.TokenBalance,
		&item.StartedAt,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return err
	}
	item.Category = policy.Category(category)
	return nil
}
