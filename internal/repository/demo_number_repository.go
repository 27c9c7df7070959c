package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/mgcc_bot/internal/model"
	"github.com/Freeeeeet/mgcc_bot/internal/repository/base"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresDemoNumberRepository struct {
	*base.Repository
}

func NewPostgresDemoNumberRepository(pool *pgxpool.Pool) *PostgresDemoNumberRepository {
	return &PostgresDemoNumberRepository{Repository: base.NewRepository(pool)}
}

// List получает все демо-номера в порядке добавления
func (r *PostgresDemoNumberRepository) List(ctx context.Context) ([]*model.DemoPaymentNumber, error) {
	query := `
		SELECT id, number, label, is_used, COALESCE(assigned_to, '')
		FROM demo_payment_numbers
		ORDER BY created_at ASC, id ASC
	`

	rows, err := r.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list demo numbers: %w", err)
	}
	defer rows.Close()

	var numbers []*model.DemoPaymentNumber
	for rows.Next() {
		var n model.DemoPaymentNumber
		if err := rows.Scan(&n.ID, &n.Number, &n.Label, &n.IsUsed, &n.AssignedTo); err != nil {
			return nil, fmt.Errorf("scan demo number: %w", err)
		}
		numbers = append(numbers, &n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate demo numbers: %w", err)
	}

	return numbers, nil
}

// Create добавляет демо-номер
func (r *PostgresDemoNumberRepository) Create(ctx context.Context, num *model.DemoPaymentNumber) error {
	query := `
		INSERT INTO demo_payment_numbers (id, number, label, is_used, assigned_to)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''))
	`

	if _, err := r.ExecAffected(ctx, query, num.ID, num.Number, num.Label, num.IsUsed, num.AssignedTo); err != nil {
		return fmt.Errorf("create demo number: %w", err)
	}

	return nil
}

// Delete удаляет демо-номер
func (r *PostgresDemoNumberRepository) Delete(ctx context.Context, id string) (bool, error) {
	affected, err := r.ExecAffected(ctx, `DELETE FROM demo_payment_numbers WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete demo number: %w", err)
	}
	return affected > 0, nil
}
