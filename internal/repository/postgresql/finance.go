package postgresql

import (
	"context"
	"fmt"

	"github.com/zafrapp/zafra-backend-go/internal/domain/finance"
	"github.com/zafrapp/zafra-backend-go/internal/pkg/database"
)

type transactionRepository struct {
	db *database.DB
}

func NewTransactionRepository(db *database.DB) finance.TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) ListAll(ctx context.Context) ([]finance.Transaction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, date, description, category, amount, ai_status, created_at
		FROM transactions
		ORDER BY date, created_at
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var transactions []finance.Transaction
	for rows.Next() {
		var tx finance.Transaction
		if err := rows.Scan(&tx.ID, &tx.Date, &tx.Description, &tx.Category, &tx.Amount, &tx.AIStatus, &tx.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, tx)
	}

	return transactions, rows.Err()
}

func (r *transactionRepository) Create(ctx context.Context, tx finance.Transaction) (finance.Transaction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO transactions (id, date, description, category, amount, ai_status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, date, description, category, amount, ai_status, created_at
	`

	var created finance.Transaction
	err := q.QueryRow(ctx, query,
		tx.ID, tx.Date, tx.Description, tx.Category, tx.Amount, tx.AIStatus, tx.CreatedAt,
	).Scan(&created.ID, &created.Date, &created.Description, &created.Category, &created.Amount, &created.AIStatus, &created.CreatedAt)
	if err != nil {
		return finance.Transaction{}, fmt.Errorf("failed to create transaction: %w", err)
	}

	return created, nil
}
