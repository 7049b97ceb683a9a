package estimate

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

/*
Store is an interface to manage a store where estimates can be
created, retrieved and deleted.

All its methods take a context that may allow cancelling the
operation (thus forcing the return of an error) if the implementation
allows it.
*/
type Store interface {
	// Create takes an estimate and stores it for the first time,
	// generating an ID for it and setting it on the estimate.
	Create(ctx context.Context, e *Estimate) error
	// Get takes an id and returns the estimate with that id (or
	// nil if it cannot be found) or an error if the store cannot
	// be queried.
	Get(ctx context.Context, id string) (*Estimate, error)
	// Delete takes an id and removes the estimate with that id
	// from the store. Deleting a missing estimate is not an error.
	Delete(ctx context.Context, id string) error
	// Close frees the resources held by the store.
	Close(ctx context.Context) error
}

// NewID returns a new random identifier for an estimate
func NewID() string {
	return uuid.New().String()
}

type memoryStore struct {
	estimates map[string]*Estimate
	lock      *sync.RWMutex
}

// NewMemoryStore returns an implementation of Store with the
// process memory space as underlying backend
func NewMemoryStore() Store {
	return &memoryStore{
		estimates: make(map[string]*Estimate),
		lock:      &sync.RWMutex{},
	}
}

func (ms *memoryStore) Create(ctx context.Context, e *Estimate) error {
	return ms.withLock(ctx, func(ctx context.Context) error {
		taken := true
		for taken {
			if err := ctx.Err(); err != nil {
				return err
			}
			e.ID = NewID()
			_, taken = ms.estimates[e.ID]
		}
		ms.estimates[e.ID] = e
		return nil
	})
}

func (ms *memoryStore) Get(ctx context.Context, id string) (*Estimate, error) {
	var e *Estimate
	err := ms.withRLock(ctx, func(ctx context.Context) error {
		e = ms.estimates[id]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (ms *memoryStore) Delete(ctx context.Context, id string) error {
	return ms.withLock(ctx, func(ctx context.Context) error {
		delete(ms.estimates, id)
		return nil
	})
}

func (ms *memoryStore) Close(ctx context.Context) error {
	return nil
}

func (ms *memoryStore) withLock(ctx context.Context, f func(ctx context.Context) error) error {
	gotLock := make(chan struct{})
	go func() {
		ms.lock.Lock()
		select {
		case <-ctx.Done():
			ms.lock.Unlock()
		case gotLock <- struct{}{}:
		}
	}()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-gotLock:
		defer ms.lock.Unlock()
	}
	return f(ctx)
}

func (ms *memoryStore) withRLock(ctx context.Context, f func(ctx context.Context) error) error {
	gotLock := make(chan struct{})
	go func() {
		ms.lock.RLock()
		select {
		case <-ctx.Done():
			ms.lock.RUnlock()
		case gotLock <- struct{}{}:
		}
	}()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-gotLock:
		defer ms.lock.RUnlock()
	}
	return f(ctx)
}
