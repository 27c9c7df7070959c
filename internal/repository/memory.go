package repository

import (
	"context"
	"sync"
	"time"

	"github.com/Freeeeeet/mgcc_bot/internal/model"
)

// MemoryPaymentRepository keeps payment requests in process memory.
// Used when no database is configured.
type MemoryPaymentRepository struct {
	mu       sync.RWMutex
	requests []*model.PaymentRequest // порядок добавления
	now      func() time.Time
}

func NewMemoryPaymentRepository() *MemoryPaymentRepository {
	return &MemoryPaymentRepository{now: time.Now}
}

func (r *MemoryPaymentRepository) Create(_ context.Context, req *model.PaymentRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	req.Timestamp = r.now()
	stored := *req
	r.requests = append(r.requests, &stored)
	return nil
}

func (r *MemoryPaymentRepository) GetByID(_ context.Context, id string) (*model.PaymentRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, req := range r.requests {
		if req.ID == id {
			c := *req
			return &c, nil
		}
	}
	return nil, nil
}

func (r *MemoryPaymentRepository) ListByStatus(_ context.Context, status model.PaymentStatus) ([]*model.PaymentRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*model.PaymentRequest
	for _, req := range r.requests {
		if req.Status == status {
			c := *req
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *MemoryPaymentRepository) UpdateStatus(_ context.Context, id string, from, to model.PaymentStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, req := range r.requests {
		if req.ID == id {
			if req.Status != from {
				return false, nil
			}
			req.Status = to
			return true, nil
		}
	}
	return false, nil
}

// MemoryDemoNumberRepository keeps demo wallet numbers in process memory
type MemoryDemoNumberRepository struct {
	mu      sync.RWMutex
	numbers []*model.DemoPaymentNumber
}

// NewMemoryDemoNumberRepository creates a repository holding the seed numbers
func NewMemoryDemoNumberRepository(seed []model.DemoPaymentNumber) *MemoryDemoNumberRepository {
	r := &MemoryDemoNumberRepository{}
	for _, n := range seed {
		n := n
		r.numbers = append(r.numbers, &n)
	}
	return r
}

func (r *MemoryDemoNumberRepository) List(_ context.Context) ([]*model.DemoPaymentNumber, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.DemoPaymentNumber, 0, len(r.numbers))
	for _, n := range r.numbers {
		c := *n
		out = append(out, &c)
	}
	return out, nil
}

func (r *MemoryDemoNumberRepository) Create(_ context.Context, num *model.DemoPaymentNumber) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *num
	r.numbers = append(r.numbers, &stored)
	return nil
}

func (r *MemoryDemoNumberRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, n := range r.numbers {
		if n.ID == id {
			r.numbers = append(r.numbers[:i], r.numbers[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

var (
	_ PaymentRepository    = (*MemoryPaymentRepository)(nil)
	_ PaymentRepository    = (*PostgresPaymentRepository)(nil)
	_ DemoNumberRepository = (*MemoryDemoNumberRepository)(nil)
	_ DemoNumberRepository = (*PostgresDemoNumberRepository)(nil)
)
