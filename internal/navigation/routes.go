package navigation

import (
	"errors"

	"github.com/ytget/akioflix/internal/model"
)

// Route names a destination
type Route string

const (
	// RouteList is the movie list, the root of the stack
	RouteList Route = "Akioflix"

	// RouteDetail shows one movie forwarded from the list
	RouteDetail Route = "Detail"
)

var (
	ErrUnknownRoute  = errors.New("unknown route")
	ErrInvalidParams = errors.New("invalid route parameters")
)

// Params is the typed parameter object of a route. Only types in this package
// implement it.
type Params interface {
	route() Route
}

// ListParams carries nothing; the list screen fetches its own data.
type ListParams struct{}

func (ListParams) route() Route { return RouteList }

// DetailParams forwards the selected record to the detail screen.
type DetailParams struct {
	Movie model.Movie
}

func (DetailParams) route() Route { return RouteDetail }

// titleFor derives the header title of an entry at push time
func titleFor(route Route, params Params) string {
	switch p := params.(type) {
	case DetailParams:
		return p.Movie.Title
	case *DetailParams:
		return p.Movie.Title
	}
	return string(route)
}

func validate(route Route, params Params) error {
	switch route {
	case RouteList, RouteDetail:
	default:
		return ErrUnknownRoute
	}
	if params == nil {
		if route == RouteList {
			return nil
		}
		return ErrInvalidParams
	}
	if p, ok := params.(*DetailParams); ok && p == nil {
		return ErrInvalidParams
	}
	if params.route() != route {
		return ErrInvalidParams
	}
	return nil
}
