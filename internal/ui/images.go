package ui

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"go.uber.org/zap"

	"github.com/ytget/akioflix/internal/platform"
)

// MaxImageBytes bounds a single poster download
const MaxImageBytes = 8 << 20

// ImageLoader fetches remote posters off the UI goroutine and assigns them to
// canvas images. List rows are recycled, so each image remembers the URL it
// currently wants and stale downloads are dropped. Each URL is downloaded at
// most once at a time.
type ImageLoader struct {
	client *http.Client
	logger *zap.Logger

	ctx    context.Context
	cancel context.CancelFunc

	mu        sync.Mutex
	resources map[string]fyne.Resource
	pending   map[string]struct{}
	wanted    map[*canvas.Image]string
}

// NewImageLoader creates a loader. A nil client uses http.DefaultClient.
func NewImageLoader(client *http.Client, logger *zap.Logger) *ImageLoader {
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &ImageLoader{
		client:    client,
		logger:    logger,
		ctx:       ctx,
		cancel:    cancel,
		resources: make(map[string]fyne.Resource),
		pending:   make(map[string]struct{}),
		wanted:    make(map[*canvas.Image]string),
	}
}

// Load points img at raw. Invalid or empty URLs clear the image.
func (l *ImageLoader) Load(img *canvas.Image, raw string) {
	if img == nil {
		return
	}

	l.mu.Lock()
	l.wanted[img] = raw
	res, cached := l.resources[raw]
	l.mu.Unlock()

	if cached {
		l.assign(img, raw, res)
		return
	}

	img.Resource = nil
	img.Refresh()

	u, err := platform.ParseExternalURL(raw)
	if err != nil {
		return
	}

	l.mu.Lock()
	if _, inFlight := l.pending[raw]; inFlight {
		l.mu.Unlock()
		return
	}
	l.pending[raw] = struct{}{}
	l.mu.Unlock()

	go l.download(raw, u.String())
}

// Release forgets imgs. Call it for images whose widget is discarded.
func (l *ImageLoader) Release(imgs ...*canvas.Image) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, img := range imgs {
		delete(l.wanted, img)
	}
}

// Close aborts pending downloads
func (l *ImageLoader) Close() {
	l.cancel()
}

func (l *ImageLoader) download(raw, target string) {
	res, err := l.fetch(target)

	l.mu.Lock()
	delete(l.pending, raw)
	if err == nil {
		l.resources[raw] = res
	}
	l.mu.Unlock()

	if err != nil {
		if l.ctx.Err() == nil {
			l.logger.Debug("image fetch failed", zap.String("url", raw), zap.Error(err))
		}
		return
	}

	fyne.Do(func() { l.assignWaiting(raw, res) })
}

// assignWaiting hands res to every image still waiting for raw
func (l *ImageLoader) assignWaiting(raw string, res fyne.Resource) {
	l.mu.Lock()
	var waiting []*canvas.Image
	for img, want := range l.wanted {
		if want == raw {
			waiting = append(waiting, img)
		}
	}
	l.mu.Unlock()

	for _, img := range waiting {
		img.Resource = res
		img.Refresh()
	}
}

func (l *ImageLoader) assign(img *canvas.Image, raw string, res fyne.Resource) {
	l.mu.Lock()
	current, ok := l.wanted[img]
	l.mu.Unlock()

	if !ok || current != raw {
		return
	}
	img.Resource = res
	img.Refresh()
}

func (l *ImageLoader) fetch(raw string) (fyne.Resource, error) {
	ctx, cancel := context.WithTimeout(l.ctx, ImageFetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, raw, nil)
	if err != nil {
		return nil, err
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image request failed with status code %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxImageBytes))
	if err != nil {
		return nil, err
	}
	return fyne.NewStaticResource(path.Base(req.URL.Path), data), nil
}
