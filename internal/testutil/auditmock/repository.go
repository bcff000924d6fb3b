package auditmock

import (
	"context"
	"sync"

	domain "personnel-records-service/internal/domain/audit"
)

var _ domain.Repository = (*MemoryRepo)(nil)

// MemoryRepo is an in-memory append-only audit repository for tests.
type MemoryRepo struct {
	mu      sync.Mutex
	entries []domain.Entry
	// FailWith, when set, makes Append return it; used to prove audit
	// failures never break business operations.
	FailWith error
}

func NewMemoryRepo() *MemoryRepo { return &MemoryRepo{} }

func (r *MemoryRepo) Append(ctx context.Context, e *domain.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailWith != nil {
		return r.FailWith
	}
	r.entries = append(r.entries, *e)
	return nil
}

func (r *MemoryRepo) Entries() []domain.Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Entry, len(r.entries))
	copy(out, r.entries)
	return out
}
