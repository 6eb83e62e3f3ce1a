package storage

import (
	"context"

	"github.com/kylycht/converter/model"
)

// Storage interface describes methods of
// widget definitions storage
type Storage interface {
	// Load loads all enabled widget definitions
	// in the order they should be mounted
	Load(ctx context.Context) ([]model.WidgetSpec, error)
}
