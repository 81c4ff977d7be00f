package kv

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when the store holds no value for the
// requested key. Callers treat a missing collection key as empty.
var ErrKeyNotFound = errors.New("key not found")

// Store is the durable key-value collaborator. Values are JSON-serialized;
// Get decodes the stored value into out. Repositories re-read their key
// before every mutation, so the store is always the authority.
type Store interface {
	Get(ctx context.Context, key string, out any) error
	Set(ctx context.Context, key string, value any) error
	Remove(ctx context.Context, key string) error
}

// Persisted keys shared by the repositories.
const (
	KeyNeeds       = "needs"
	KeyBasket      = "basket"
	KeyTasks       = "tasks"
	KeyVolunteers  = "volunteers"
	KeyCurrentUser = "currentUser"
)
