package repository

import (
	"context"
	"testing"

	"github.com/Freeeeeet/mgcc_bot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryPaymentRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryPaymentRepository()

	first := &model.PaymentRequest{ID: "p1", CourseID: "ssc-path", Status: model.PaymentStatusPending}
	second := &model.PaymentRequest{ID: "p2", CourseID: "hsc-bridge", Status: model.PaymentStatusPending}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))
	assert.False(t, first.Timestamp.IsZero())

	got, err := repo.GetByID(ctx, "p2")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "hsc-bridge", got.CourseID)

	missing, err := repo.GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)

	ok, err := repo.UpdateStatus(ctx, "p1", model.PaymentStatusPending, model.PaymentStatusVerified)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.UpdateStatus(ctx, "p1", model.PaymentStatusPending, model.PaymentStatusRejected)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.UpdateStatus(ctx, "nope", model.PaymentStatusPending, model.PaymentStatusRejected)
	require.NoError(t, err)
	assert.False(t, ok)

	pending, err := repo.ListByStatus(ctx, model.PaymentStatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "p2", pending[0].ID)

	// returned records are copies
	pending[0].Status = model.PaymentStatusRejected
	again, err := repo.ListByStatus(ctx, model.PaymentStatusPending)
	require.NoError(t, err)
	assert.Len(t, again, 1)
}

func TestMemoryDemoNumberRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryDemoNumberRepository([]model.DemoPaymentNumber{
		{ID: "dn-1", Number: "01712345678", Label: "Internal bKash"},
	})

	require.NoError(t, repo.Create(ctx, &model.DemoPaymentNumber{ID: "dn-2", Number: "01800000000", Label: "Test"}))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "dn-1", list[0].ID)
	assert.Equal(t, "dn-2", list[1].ID)

	ok, err := repo.Delete(ctx, "dn-1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Delete(ctx, "dn-1")
	require.NoError(t, err)
	assert.False(t, ok)

	list, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "dn-2", list[0].ID)
}
