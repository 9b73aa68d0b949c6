package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vibast-solutions/ms-go-secours/app/entity"
)

var (
	ErrInsufficientBalance = errors.New("insufficient token balance")
	ErrInvalidTokenAmount  = errors.New("token amount must be positive")
)

// InsufficientBalanceError carries the live balance read inside the
// transaction that refused the debit.
type InsufficientBalanceError struct {
	Balance int64
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("%s: balance=%d", ErrInsufficientBalance, e.Balance)
}

func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

type BalanceDrift struct {
	SubscriptionID uint64
	StoredBalance  int64
	LedgerBalance  int64
}

// LedgerRepository owns every write that changes subscriptions.token_balance.
// Each method appends to token_transactions and adjusts the balance inside a
// single SQL transaction.
type LedgerRepository struct {
	db TxDB
}

func NewLedgerRepository(db TxDB) *LedgerRepository {
	return &LedgerRepository{db: db}
}

func (r *LedgerRepository) ApplyPurchase(ctx context.Context, txn *entity.TokenTransaction) (int64, error) {
	if txn.TokenAmount <= 0 {
		return 0, ErrInvalidTokenAmount
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
		UPDATE subscriptions
		SET token_balance = token_balance + ?, updated_at = ?
		WHERE id = ?
		  AND active = 1
	`, txn.TokenAmount, txn.CreatedAt, txn.SubscriptionID)
	if err != nil {
		return 0, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	if affected == 0 {
		return 0, ErrSubscriptionNotFound
	}

	if err := insertTokenTransaction(ctx, tx, txn); err != nil {
		return 0, err
	}

	balance, err := selectBalance(ctx, tx, txn.SubscriptionID)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return balance, nil
}

// ApproveRescue locks the request row, debits the subscription only when the
// live balance covers claim.TokenAmount, appends the claim and marks the
// request approved. On any error nothing is written.
func (r *LedgerRepository) ApproveRescue(ctx context.Context, request *entity.RescueRequest, claim *entity.TokenTransaction) (int64, error) {
	if claim.TokenAmount <= 0 {
		return 0, ErrInvalidTokenAmount
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var status string
	err = tx.QueryRowContext(ctx, `SELECT status FROM rescue_requests WHERE id = ? FOR UPDATE`, request.ID).Scan(&status)
	if err == sql.ErrNoRows {
		return 0, ErrRescueRequestNotFound
	}
	if err != nil {
		return 0, err
	}
	if status != entity.RescueStatusPending {
		return 0, ErrRescueRequestNotPending
	}

	result, err := tx.ExecContext(ctx, `
		UPDATE subscriptions
		SET token_balance = token_balance - ?, updated_at = ?
		WHERE id = ?
		  AND token_balance >= ?
	`, claim.TokenAmount, claim.CreatedAt, claim.SubscriptionID, claim.TokenAmount)
	if err != nil {
		return 0, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	if affected == 0 {
		balance, err := selectBalance(ctx, tx, claim.SubscriptionID)
		if err == sql.ErrNoRows {
			return 0, ErrSubscriptionNotFound
		}
		if err != nil {
			return 0, err
		}
		return 0, &InsufficientBalanceError{Balance: balance}
	}

	if err := insertTokenTransaction(ctx, tx, claim); err != nil {
		return 0, err
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE rescue_requests
		SET status = ?, admin_notes = ?, processed_by = ?, processed_at = ?, updated_at = ?
		WHERE id = ?
		  AND status = ?
	`,
		entity.RescueStatusApproved,
		nullableStringValue(request.AdminNotes),
		nullableStringValue(request.ProcessedBy),
		nullableTimeValue(request.ProcessedAt),
		request.UpdatedAt,
		request.ID,
		entity.RescueStatusPending,
	); err != nil {
		return 0, err
	}

	balance, err := selectBalance(ctx, tx, claim.SubscriptionID)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	request.Status = entity.RescueStatusApproved
	return balance, nil
}

// ListBalanceDrift folds the ledger per subscription and returns the rows
// whose stored balance disagrees with it.
func (r *LedgerRepository) ListBalanceDrift(ctx context.Context) ([]BalanceDrift, error) {
	query := `
		SELECT s.id, s.token_balance,
		       CAST(COALESCE(SUM(CASE
		           WHEN t.kind = 'purchase' THEN t.token_amount
		           WHEN t.kind = 'rescue_claim' THEN -t.token_amount
		           ELSE 0
		       END), 0) AS SIGNED) AS ledger_balance
		FROM subscriptions s
		LEFT JOIN token_transactions t ON t.subscription_id = s.id
		GROUP BY s.id, s.token_balance
		HAVING s.token_balance <> ledger_balance
		ORDER BY s.id ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]BalanceDrift, 0)
	for rows.Next() {
		var item BalanceDrift
		if err := rows.Scan(&item.SubscriptionID, &item.StoredBalance, &item.LedgerBalance); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func selectBalance(ctx context.Context, db DBTX, subscriptionID uint64) (int64, error) {
	var balance int64
	err := db.QueryRowContext(ctx, `SELECT token_balance FROM subscriptions WHERE id = ?`, subscriptionID).Scan(&balance)
	return balance, err
}
