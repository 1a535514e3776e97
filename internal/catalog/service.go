package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/uber-go/tally/v4"
	"go.uber.org/zap"

	"github.com/ytget/akioflix/internal/model"
)

// Catalog API constants
const (
	APIStatusOK     = "ok"
	APIStatusError  = "error"
	DefaultAgent    = "akioflix/1.0"
	MaxErrorBodyLen = 512
)

// Metric names
const (
	MetricsScope        = "catalog"
	MetricFetchSuccess  = "fetch_success"
	MetricFetchFailure  = "fetch_failure"
	MetricFetchLatency  = "fetch_latency"
	MetricMoviesFetched = "movies_fetched"
)

// envelope mirrors the list_movies.json response. Pointers distinguish a
// missing field from an empty one.
type envelope struct {
	Status        string        `json:"status"`
	StatusMessage string        `json:"status_message"`
	Data          *envelopeData `json:"data"`
}

type envelopeData struct {
	MovieCount int            `json:"movie_count"`
	Limit      int            `json:"limit"`
	PageNumber int            `json:"page_number"`
	Movies     *[]model.Movie `json:"movies"`
}

// Service fetches the movie list from the catalog endpoint
type Service struct {
	endpoint  string
	client    *http.Client
	logger    *zap.Logger
	metrics   tally.Scope
	userAgent string
}

// Option configures a Service
type Option func(*Service)

// WithHTTPClient replaces the HTTP client. The default client has no timeout;
// the caller's context is the only way to abort a fetch.
func WithHTTPClient(client *http.Client) Option {
	return func(s *Service) {
		if client != nil {
			s.client = client
		}
	}
}

// WithLogger sets the structured logger
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics sets the metrics scope; a "catalog" sub-scope is used
func WithMetrics(scope tally.Scope) Option {
	return func(s *Service) {
		if scope != nil {
			s.metrics = scope
		}
	}
}

// WithUserAgent overrides the User-Agent header
func WithUserAgent(agent string) Option {
	return func(s *Service) {
		if strings.TrimSpace(agent) != "" {
			s.userAgent = agent
		}
	}
}

// NewService creates a new catalog service for endpoint
func NewService(endpoint string, opts ...Option) *Service {
	s := &Service{
		endpoint:  endpoint,
		client:    &http.Client{},
		logger:    zap.NewNop(),
		metrics:   tally.NoopScope,
		userAgent: DefaultAgent,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.metrics = s.metrics.SubScope(MetricsScope)
	return s
}

// Endpoint returns the URL the service fetches from
func (s *Service) Endpoint() string {
	return s.endpoint
}

// ListMovies performs exactly one GET and returns data.movies in response order
func (s *Service) ListMovies(ctx context.Context) ([]model.Movie, error) {
	sw := s.metrics.Timer(MetricFetchLatency).Start()
	defer sw.Stop()

	s.logger.Info("fetching catalog", zap.String("url", s.endpoint))

	movies, err := s.fetch(ctx)
	if err != nil {
		s.metrics.Counter(MetricFetchFailure).Inc(1)
		s.logger.Warn("catalog fetch failed", zap.String("url", s.endpoint), zap.Error(err))
		return nil, err
	}

	s.metrics.Counter(MetricFetchSuccess).Inc(1)
	s.metrics.Counter(MetricMoviesFetched).Inc(int64(len(movies)))
	s.logger.Info("catalog fetched", zap.String("url", s.endpoint), zap.Int("movies", len(movies)))
	return movies, nil
}

func (s *Service) fetch(ctx context.Context) ([]model.Movie, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint, nil)
	if err != nil {
		return nil, &FetchError{Kind: KindNetwork, URL: s.endpoint, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &FetchError{Kind: KindNetwork, URL: s.endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, MaxErrorBodyLen))
		s.logger.Debug("catalog error body", zap.Int("status", resp.StatusCode), zap.ByteString("body", body))
		return nil, &FetchError{
			Kind:       KindStatus,
			URL:        s.endpoint,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status %s", resp.Status),
		}
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		if ctx.Err() != nil {
			return nil, &FetchError{Kind: KindNetwork, URL: s.endpoint, Err: ctx.Err()}
		}
		return nil, malformed(s.endpoint, "%v", err)
	}

	return decodeEnvelope(s.endpoint, &env)
}

func decodeEnvelope(url string, env *envelope) ([]model.Movie, error) {
	if strings.EqualFold(env.Status, APIStatusError) {
		msg := env.StatusMessage
		if msg == "" {
			msg = "unknown error"
		}
		return nil, &FetchError{Kind: KindAPI, URL: url, Err: errors.New(msg)}
	}
	if env.Data == nil {
		return nil, malformed(url, "missing data")
	}
	if env.Data.Movies == nil {
		return nil, malformed(url, "missing data.movies")
	}

	movies := *env.Data.Movies
	seen := make(map[int]struct{}, len(movies))
	for _, m := range movies {
		if _, dup := seen[m.ID]; dup {
			return nil, malformed(url, "duplicate movie id %d", m.ID)
		}
		seen[m.ID] = struct{}{}
	}
	return movies, nil
}
