package catalog

import (
	"context"

	"github.com/ytget/akioflix/internal/model"
)

//go:generate mockgen -destination=mock/loader_mock.go -package=mock . Loader

// Loader defines the interface for the catalog service.
type Loader interface {
	// ListMovies performs one fetch and returns the ordered movie sequence.
	ListMovies(ctx context.Context) ([]model.Movie, error)
}
