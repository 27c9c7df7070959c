package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Freeeeeet/mgcc_bot/internal/model"
	"github.com/Freeeeeet/mgcc_bot/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService() *PaymentService {
	return NewPaymentService(
		repository.NewMemoryPaymentRepository(),
		repository.NewMemoryDemoNumberRepository([]model.DemoPaymentNumber{
			{ID: "dn-1", Number: "01712345678", Label: "Internal bKash"},
		}),
		zap.NewNop(),
	)
}

var (
	testStudent = &model.User{ID: "std-123", Name: "Sadiya Afrin", Role: model.RoleStudent}
	testCourse  = &model.Course{ID: "hsc-bridge", Title: "HSC Excellence Bridge", Price: 5500}
)

func TestSubmitCreatesPendingRequest(t *testing.T) {
	ctx := context.Background()
	s := newTestService()

	req, err := s.Submit(ctx, 42, testStudent, testCourse, "  8N7A6D5C4B  ")
	require.NoError(t, err)

	assert.NotEmpty(t, req.ID)
	assert.Equal(t, "std-123", req.StudentID)
	assert.Equal(t, "Sadiya Afrin", req.StudentName)
	assert.Equal(t, int64(42), req.ChatID)
	assert.Equal(t, "hsc-bridge", req.CourseID)
	assert.Equal(t, "8N7A6D5C4B", req.TransactionID)
	assert.Equal(t, 5500, req.Amount)
	assert.Equal(t, model.PaymentStatusPending, req.Status)
	assert.False(t, req.Timestamp.IsZero())

	pending, err := s.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, req.ID, pending[0].ID)
}

func TestSubmitValidation(t *testing.T) {
	ctx := context.Background()
	s := newTestService()

	_, err := s.Submit(ctx, 1, testStudent, testCourse, "   ")
	assert.ErrorIs(t, err, ErrEmptyTransactionID)

	_, err = s.Submit(ctx, 1, nil, testCourse, "TX1")
	assert.ErrorIs(t, err, ErrNoIdentity)

	_, err = s.Submit(ctx, 1, testStudent, nil, "TX1")
	assert.ErrorIs(t, err, ErrCourseNotFound)

	pending, err := s.Pending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestVerifyAndRejectAreOneWay(t *testing.T) {
	ctx := context.Background()
	s := newTestService()

	a, err := s.Submit(ctx, 1, testStudent, testCourse, "TX-A")
	require.NoError(t, err)
	b, err := s.Submit(ctx, 1, testStudent, testCourse, "TX-B")
	require.NoError(t, err)

	verified, err := s.Verify(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, model.PaymentStatusVerified, verified.Status)

	rejected, err := s.Reject(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, model.PaymentStatusRejected, rejected.Status)

	_, err = s.Reject(ctx, a.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = s.Verify(ctx, b.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = s.Verify(ctx, a.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = s.Verify(ctx, "missing")
	assert.ErrorIs(t, err, ErrPaymentNotFound)

	pending, err := s.Pending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestCanTransition(t *testing.T) {
	statuses := []model.PaymentStatus{model.PaymentStatusPending, model.PaymentStatusVerified, model.PaymentStatusRejected}
	for _, from := range statuses {
		for _, to := range statuses {
			want := from == model.PaymentStatusPending && to != model.PaymentStatusPending
			assert.Equal(t, want, from.CanTransition(to), "%s -> %s", from, to)
		}
	}
}

func TestDemoNumbers(t *testing.T) {
	ctx := context.Background()
	s := newTestService()

	numbers, err := s.DemoNumbers(ctx)
	require.NoError(t, err)
	require.Len(t, numbers, 1)
	assert.Equal(t, "dn-1", numbers[0].ID)

	added, err := s.AddDemoNumber(ctx, " 01999888777 ", "Sandbox")
	require.NoError(t, err)
	assert.Equal(t, "01999888777", added.Number)
	assert.Regexp(t, `^dn-`, added.ID)

	_, err = s.AddDemoNumber(ctx, "  ", "x")
	assert.ErrorIs(t, err, ErrEmptyDemoNumber)

	require.NoError(t, s.RemoveDemoNumber(ctx, "dn-1"))
	assert.ErrorIs(t, s.RemoveDemoNumber(ctx, "dn-1"), ErrDemoNumberNotFound)

	numbers, err = s.DemoNumbers(ctx)
	require.NoError(t, err)
	require.Len(t, numbers, 1)
	assert.Equal(t, added.ID, numbers[0].ID)
}

type failingPayments struct {
	repository.PaymentRepository
}

func (failingPayments) Create(context.Context, *model.PaymentRequest) error {
	return errors.New("db down")
}

func TestSubmitWrapsRepositoryError(t *testing.T) {
	s := NewPaymentService(failingPayments{}, repository.NewMemoryDemoNumberRepository(nil), zap.NewNop())

	_, err := s.Submit(context.Background(), 1, testStudent, testCourse, "TX")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "submit payment")
}
