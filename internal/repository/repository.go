package repository

import (
	"context"

	"github.com/Freeeeeet/mgcc_bot/internal/model"
)

// PaymentRepository хранит заявки на проверку оплаты.
// GetByID возвращает nil, nil если заявки нет.
type PaymentRepository interface {
	Create(ctx context.Context, req *model.PaymentRequest) error
	GetByID(ctx context.Context, id string) (*model.PaymentRequest, error)
	ListByStatus(ctx context.Context, status model.PaymentStatus) ([]*model.PaymentRequest, error)
	// UpdateStatus переводит заявку из одного статуса в другой и возвращает
	// false, если заявка была не в ожидаемом статусе
	UpdateStatus(ctx context.Context, id string, from, to model.PaymentStatus) (bool, error)
}

// DemoNumberRepository хранит демо-номера bKash
type DemoNumberRepository interface {
	List(ctx context.Context) ([]*model.DemoPaymentNumber, error)
	Create(ctx context.Context, num *model.DemoPaymentNumber) error
	Delete(ctx context.Context, id string) (bool, error)
}
