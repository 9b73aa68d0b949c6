package repository

import (
	"context"
	"database/sql"

	"github.com/vibast-solutions/ms-go-secours/app/entity"
)

const tokenTransactionColumns = `id, subscription_id, kind, token_amount, token_value_fcfa, payment_method, reference, created_at`

type TokenTransactionRepository struct {
	db DBTX
}

func NewTokenTransactionRepository(db DBTX) *TokenTransactionRepository {
	return &TokenTransactionRepository{db: db}
}

func (r *TokenTransactionRepository) ListBySubscription(ctx context.Context, subscriptionID uint64) ([]*entity.TokenTransaction, error) {
	query := `
		SELECT ` + tokenTransactionColumns + `
		FROM token_transactions
		WHERE subscription_id = ?
		ORDER BY id DESC
	`

	rows, err := r.db.QueryContext(ctx, query, subscriptionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*entity.TokenTransaction, 0)
	for rows.Next() {
		item := &entity.TokenTransaction{}
		if err := scanTokenTransaction(rows, item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func insertTokenTransaction(ctx context.Context, db DBTX, txn *entity.TokenTransaction) error {
	query := `
		INSERT INTO token_transactions (
			subscription_id, kind, token_amount, token_value_fcfa,
			payment_method, reference, created_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := db.ExecContext(ctx, query,
		txn.SubscriptionID,
		txn.Kind,
		txn.TokenAmount,
		txn.TokenValueFCFA,
		nullableStringValue(txn.PaymentMethod),
		nullableStringValue(txn.Reference),
		txn.CreatedAt,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	txn.ID = uint64(id)
	return nil
}

func scanTokenTransaction(scanner rowScanner, item *entity.TokenTransaction) error {
	var paymentMethod, reference sql.NullString
	if err := scanner.Scan(
		&item.ID,
		&item.SubscriptionID,
		&item.Kind,
		&item.TokenAmount,
		&item.TokenValueFCFA,
		&paymentMethod,
		&reference,
		&item.CreatedAt,
	); err != nil {
		return err
	}
	item.PaymentMethod = stringPtr(paymentMethod)
	item.Reference = stringPtr(reference)
	return nil
}
