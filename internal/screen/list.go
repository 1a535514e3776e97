package screen

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/ytget/akioflix/internal/catalog"
	"github.com/ytget/akioflix/internal/model"
)

// Alerter shows a message the user has to acknowledge
type Alerter interface {
	Alert(message string)
}

// AlerterFunc adapts a function to Alerter
type AlerterFunc func(message string)

// Alert calls f(message)
func (f AlerterFunc) Alert(message string) {
	f(message)
}

// ListController drives the movie list screen. Start issues the single
// catalog fetch; Close cancels it and discards any late response.
type ListController struct {
	loader  catalog.Loader
	alerter Alerter
	logger  *zap.Logger

	mu       sync.RWMutex
	state    model.ScreenState
	movies   []model.Movie
	onChange func(model.ScreenState)

	startOnce sync.Once
	closeOnce sync.Once
	ctx       context.Context
	cancel    context.CancelFunc
	done      chan struct{}
}

// NewListController creates an idle controller
func NewListController(loader catalog.Loader, alerter Alerter, logger *zap.Logger) *ListController {
	if logger == nil {
		logger = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &ListController{
		loader:  loader,
		alerter: alerter,
		logger:  logger,
		state:   model.ScreenStateIdle,
		movies:  []model.Movie{},
		ctx:     ctx,
		cancel:  cancel,
		done:    make(chan struct{}),
	}
}

// SetChangeCallback sets the callback invoked on every state change. It runs
// on the fetch goroutine.
func (c *ListController) SetChangeCallback(callback func(model.ScreenState)) {
	c.mu.Lock()
	c.onChange = callback
	c.mu.Unlock()
}

// Start launches the initial fetch. Only the first call has an effect.
func (c *ListController) Start() {
	c.startOnce.Do(func() {
		c.setState(model.ScreenStateLoading)
		go c.load()
	})
}

// Close cancels an in-flight fetch and waits for it to unwind
func (c *ListController) Close() {
	c.closeOnce.Do(func() {
		c.cancel()
		c.startOnce.Do(func() { close(c.done) })
		<-c.done
	})
}

// Done is closed once the fetch has finished or was abandoned
func (c *ListController) Done() <-chan struct{} {
	return c.done
}

// State returns the current screen state
func (c *ListController) State() model.ScreenState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Movies returns a copy of the visible movie list
func (c *ListController) Movies() []model.Movie {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]model.Movie, len(c.movies))
	copy(out, c.movies)
	return out
}

// Len returns the number of visible movies
func (c *ListController) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.movies)
}

// Movie returns the record at index i
func (c *ListController) Movie(i int) (model.Movie, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if i < 0 || i >= len(c.movies) {
		return model.Movie{}, false
	}
	return c.movies[i], true
}

func (c *ListController) load() {
	defer close(c.done)

	movies, err := c.loader.ListMovies(c.ctx)
	if c.ctx.Err() != nil {
		c.logger.Debug("list screen closed before catalog response, discarding")
		return
	}

	if err != nil {
		c.logger.Warn("catalog load failed", zap.Error(err))
		c.setState(model.ScreenStateLoaded)
		if c.alerter != nil {
			c.alerter.Alert(err.Error())
		}
		return
	}

	if movies == nil {
		movies = []model.Movie{}
	}

	c.mu.Lock()
	c.movies = movies
	c.mu.Unlock()

	c.logger.Info("list screen loaded", zap.Int("movies", len(movies)))
	c.setState(model.ScreenStateLoaded)
}

func (c *ListController) setState(state model.ScreenState) {
	c.mu.Lock()
	c.state = state
	callback := c.onChange
	c.mu.Unlock()

	if callback != nil {
		callback(state)
	}
}
