package persistence

import (
	"context"

	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/persistence"
)

// FakeUnitOfWork runs the function inline against fixed repositories and
// counts how the transaction would have ended
type FakeUnitOfWork struct {
	Repos     persistence.Repositories
	BeginErr  error
	Calls     int
	Commits   int
	Rollbacks int
}

// NewFakeUnitOfWork creates a unit of work over the given repositories
func NewFakeUnitOfWork(repos persistence.Repositories) *FakeUnitOfWork {
	return &FakeUnitOfWork{Repos: repos}
}

// Within implements persistence.UnitOfWork
func (u *FakeUnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, repos persistence.Repositories) error) error {
	u.Calls++
	if u.BeginErr != nil {
		return u.BeginErr
	}

	if err := fn(ctx, u.Repos); err != nil {
		u.Rollbacks++
		return err
	}
	u.Commits++
	return nil
}
