// Package session stores consolidation results between the upload
// request that produced them and later report downloads.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/ordemia/ordemia/pkg/order"
)

// ErrNotFound is returned for unknown or expired sessions.
var ErrNotFound = errors.New("session not found")

type Store interface {
	Put(ctx context.Context, id string, result *order.Result, ttl time.Duration) error
	Get(ctx context.Context, id string) (*order.Result, error)
	Delete(ctx context.Context, id string) error
}
