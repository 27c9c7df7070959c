package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Freeeeeet/mgcc_bot/internal/model"
	"github.com/Freeeeeet/mgcc_bot/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PaymentService управляет очередью проверки оплат и демо-номерами
type PaymentService struct {
	payments    repository.PaymentRepository
	demoNumbers repository.DemoNumberRepository
	logger      *zap.Logger
}

func NewPaymentService(
	payments repository.PaymentRepository,
	demoNumbers repository.DemoNumberRepository,
	logger *zap.Logger,
) *PaymentService {
	return &PaymentService{
		payments:    payments,
		demoNumbers: demoNumbers,
		logger:      logger,
	}
}

// Submit ставит транзакцию студента в очередь на проверку
func (s *PaymentService) Submit(ctx context.Context, chatID int64, student *model.User, course *model.Course, txID string) (*model.PaymentRequest, error) {
	txID = strings.TrimSpace(txID)
	if txID == "" {
		return nil, ErrEmptyTransactionID
	}
	if student == nil {
		return nil, ErrNoIdentity
	}
	if course == nil {
		return nil, ErrCourseNotFound
	}

	req := &model.PaymentRequest{
		ID:            uuid.NewString(),
		StudentID:     student.ID,
		StudentName:   student.Name,
		ChatID:        chatID,
		CourseID:      course.ID,
		TransactionID: txID,
		Status:        model.PaymentStatusPending,
		Amount:        course.Price,
	}

	if err := s.payments.Create(ctx, req); err != nil {
		return nil, fmt.Errorf("submit payment: %w", err)
	}

	s.logger.Info("Payment submitted",
		zap.String("payment_id", req.ID),
		zap.String("student_id", req.StudentID),
		zap.String("course_id", req.CourseID),
		zap.Int("amount", req.Amount),
	)

	return req, nil
}

// Pending возвращает заявки, ожидающие проверки
func (s *PaymentService) Pending(ctx context.Context) ([]*model.PaymentRequest, error) {
	requests, err := s.payments.ListByStatus(ctx, model.PaymentStatusPending)
	if err != nil {
		return nil, fmt.Errorf("list pending payments: %w", err)
	}
	return requests, nil
}

// Verify подтверждает ожидающую заявку
func (s *PaymentService) Verify(ctx context.Context, id string) (*model.PaymentRequest, error) {
	return s.transition(ctx, id, model.PaymentStatusVerified)
}

// Reject отклоняет ожидающую заявку
func (s *PaymentService) Reject(ctx context.Context, id string) (*model.PaymentRequest, error) {
	return s.transition(ctx, id, model.PaymentStatusRejected)
}

func (s *PaymentService) transition(ctx context.Context, id string, to model.PaymentStatus) (*model.PaymentRequest, error) {
	req, err := s.payments.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}
	if req == nil {
		return nil, ErrPaymentNotFound
	}
	if !req.Status.CanTransition(to) {
		return nil, ErrInvalidTransition
	}

	updated, err := s.payments.UpdateStatus(ctx, id, req.Status, to)
	if err != nil {
		return nil, fmt.Errorf("update payment status: %w", err)
	}
	if !updated {
		// другой админ успел раньше
		return nil, ErrInvalidTransition
	}

	req.Status = to

	s.logger.Info("Payment status changed",
		zap.String("payment_id", id),
		zap.String("status", string(to)),
	)

	return req, nil
}

// DemoNumbers возвращает список демо-номеров
func (s *PaymentService) DemoNumbers(ctx context.Context) ([]*model.DemoPaymentNumber, error) {
	numbers, err := s.demoNumbers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list demo numbers: %w", err)
	}
	return numbers, nil
}

// AddDemoNumber добавляет демо-номер
func (s *PaymentService) AddDemoNumber(ctx context.Context, number, label string) (*model.DemoPaymentNumber, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, ErrEmptyDemoNumber
	}

	num := &model.DemoPaymentNumber{
		ID:     "dn-" + uuid.NewString()[:8],
		Number: number,
		Label:  strings.TrimSpace(label),
	}

	if err := s.demoNumbers.Create(ctx, num); err != nil {
		return nil, fmt.Errorf("add demo number: %w", err)
	}

	s.logger.Info("Demo number added", zap.String("id", num.ID), zap.String("label", num.Label))
	return num, nil
}

// RemoveDemoNumber удаляет демо-номер
func (s *PaymentService) RemoveDemoNumber(ctx context.Context, id string) error {
	deleted, err := s.demoNumbers.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("remove demo number: %w", err)
	}
	if !deleted {
		return ErrDemoNumberNotFound
	}

	s.logger.Info("Demo number removed", zap.String("id", id))
	return nil
}
