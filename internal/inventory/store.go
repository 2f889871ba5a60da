package inventory

import (
	"context"
	"errors"
)

var (
	// ErrDuplicateID is returned when a create collides with an existing productId.
	ErrDuplicateID = errors.New("inventory: product id already exists")
	// ErrNotFound is returned when no record matches the requested productId.
	ErrNotFound = errors.New("inventory: product not found")
)

// Store abstracts persistence of product records. All operations are
// single-row; uniqueness of the productId is enforced by the backing store so
// concurrent creates for the same id cannot both succeed.
type Store interface {
	Create(ctx context.Context, rec Record) (Record, error)
	List(ctx context.Context) ([]Record, error)
	GetByProductID(ctx context.Context, productID string) (Record, error)
	UpdateByProductID(ctx context.Context, productID string, rec Record) (Record, error)
	DeleteByProductID(ctx context.Context, productID string) error
}
