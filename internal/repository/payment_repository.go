package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/mgcc_bot/internal/model"
	"github.com/Freeeeeet/mgcc_bot/internal/repository/base"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresPaymentRepository struct {
	*base.Repository
}

func NewPostgresPaymentRepository(pool *pgxpool.Pool) *PostgresPaymentRepository {
	return &PostgresPaymentRepository{Repository: base.NewRepository(pool)}
}

const paymentColumns = `id, student_id, student_name, chat_id, course_id, transaction_id, status, amount, created_at`

// Create создает заявку
func (r *PostgresPaymentRepository) Create(ctx context.Context, req *model.PaymentRequest) error {
	query := `
		INSERT INTO payment_requests (id, student_id, student_name, chat_id, course_id, transaction_id, status, amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`

	err := r.QueryRow(
		ctx, query,
		req.ID,
		req.StudentID,
		req.StudentName,
		req.ChatID,
		req.CourseID,
		req.TransactionID,
		req.Status,
		req.Amount,
	).Scan(&req.Timestamp)

	if err != nil {
		return fmt.Errorf("create payment request: %w", err)
	}

	return nil
}

// GetByID получает заявку по ID
func (r *PostgresPaymentRepository) GetByID(ctx context.Context, id string) (*model.PaymentRequest, error) {
	query := `SELECT ` + paymentColumns + ` FROM payment_requests WHERE id = $1`

	req, err := scanPayment(r.QueryRow(ctx, query, id))
	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment request: %w", err)
	}

	return req, nil
}

// ListByStatus получает заявки по статусу, старые первыми
func (r *PostgresPaymentRepository) ListByStatus(ctx context.Context, status model.PaymentStatus) ([]*model.PaymentRequest, error) {
	query := `SELECT ` + paymentColumns + ` FROM payment_requests WHERE status = $1 ORDER BY created_at ASC`

	rows, err := r.Query(ctx, query, status)
	if err != nil {
		return nil, fmt.Errorf("list payment requests: %w", err)
	}
	defer rows.Close()

	var requests []*model.PaymentRequest
	for rows.Next() {
		req, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan payment request: %w", err)
		}
		requests = append(requests, req)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate payment requests: %w", err)
	}

	return requests, nil
}

// UpdateStatus обновляет статус, только если заявка в статусе from
func (r *PostgresPaymentRepository) UpdateStatus(ctx context.Context, id string, from, to model.PaymentStatus) (bool, error) {
	query := `
		UPDATE payment_requests
		SET status = $3, updated_at = NOW()
		WHERE id = $1 AND status = $2
	`

	affected, err := r.ExecAffected(ctx, query, id, from, to)
	if err != nil {
		return false, fmt.Errorf("update payment status: %w", err)
	}

	return affected > 0, nil
}

func scanPayment(row pgx.Row) (*model.PaymentRequest, error) {
	var req model.PaymentRequest
	err := row.Scan(
		&req.ID,
		&req.StudentID,
		&req.StudentName,
		&req.ChatID,
		&req.CourseID,
		&req.TransactionID,
		&req.Status,
		&req.Amount,
		&req.Timestamp,
	)
	if err != nil {
		return nil, err
	}
	return &req, nil
}
