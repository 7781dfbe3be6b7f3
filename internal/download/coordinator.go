package download

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/tubeget/tubeget/internal/model"
	"github.com/tubeget/tubeget/internal/provider"
	"github.com/tubeget/tubeget/internal/validate"
)

// One pending request at most; Submit rejects while the slot is taken.
const queueCapacity = 1

// Coordinator accepts validated download requests and delegates them to the
// VideoProvider, one at a time. It owns no retry logic, no caching and no
// queueing beyond the single pending slot.
type Coordinator struct {
	provider provider.VideoProvider
	log      *zap.Logger

	requests chan model.DownloadRequest
	results  chan model.DownloadResult

	mu         sync.Mutex
	busy       bool
	cancelRun  context.CancelFunc
	onProgress func(provider.Progress)
	template   string
}

// New creates a coordinator for the given provider.
func New(p provider.VideoProvider, log *zap.Logger) *Coordinator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Coordinator{
		provider: p,
		log:      log,
		requests: make(chan model.DownloadRequest, queueCapacity),
		results:  make(chan model.DownloadResult, queueCapacity),
	}
}

// SetProgressCallback sets the function invoked with progress snapshots
// during a fetch. The callback runs on the provider's goroutine.
func (c *Coordinator) SetProgressCallback(fn func(provider.Progress)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onProgress = fn
}

// SetFilenameTemplate sets the output filename template passed to the
// provider. Empty means the provider default.
func (c *Coordinator) SetFilenameTemplate(template string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.template = template
}

// Results returns the channel on which download outcomes are delivered.
func (c *Coordinator) Results() <-chan model.DownloadResult {
	return c.results
}

// Busy reports whether a request is currently in flight.
func (c *Coordinator) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy
}

// Start launches the worker goroutine consuming submitted requests. It
// returns immediately; the worker stops when ctx is cancelled.
func (c *Coordinator) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case req := <-c.requests:
				result := c.Download(ctx, req)
				select {
				case c.results <- result:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
}

// Submit places a request on the work queue. It fails when a download is
// already in flight or pending.
func (c *Coordinator) Submit(req model.DownloadRequest) error {
	if c.Busy() {
		return errors.New("a download is already in progress")
	}
	select {
	case c.requests <- req:
		return nil
	default:
		return errors.New("a download is already in progress")
	}
}

// Cancel aborts the in-flight fetch, if any. The cancelled request still
// produces a result on the results channel.
func (c *Coordinator) Cancel() {
	c.mu.Lock()
	cancel := c.cancelRun
	c.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// Download performs one request synchronously and returns its result.
// Validation failures surface immediately without touching the provider;
// destination problems surface as WriteError before any fetch; provider
// errors come back already mapped into the ErrorKind taxonomy.
func (c *Coordinator) Download(ctx context.Context, req model.DownloadRequest) model.DownloadResult {
	if err := validate.URL(req.URL); err != nil {
		c.log.Warn("rejected request", zap.String("id", req.ID), zap.Error(err))
		return model.Failure(req.ID, toDownloadError(err))
	}
	if err := validate.Destination(req.Destination); err != nil {
		c.log.Warn("rejected destination", zap.String("id", req.ID), zap.String("dir", req.Destination), zap.Error(err))
		return model.Failure(req.ID, toDownloadError(err))
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	// busy and cancelRun are set together so a Cancel arriving as soon as
	// Busy() reports true always reaches the in-flight context.
	c.mu.Lock()
	if c.busy {
		c.mu.Unlock()
		return model.Failure(req.ID, model.Errorf(model.ErrUnknown, "a download is already in progress"))
	}
	c.busy = true
	c.cancelRun = cancel
	onProgress := c.onProgress
	template := c.template
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.busy = false
		c.cancelRun = nil
		c.mu.Unlock()
	}()

	c.log.Info("download started",
		zap.String("id", req.ID),
		zap.String("url", req.URL),
		zap.String("dir", req.Destination))

	savedPath, err := c.provider.Fetch(runCtx, req.URL, req.Destination, provider.FetchOptions{
		Preset:           req.Preset,
		FilenameTemplate: template,
		OnProgress:       onProgress,
	})
	if err != nil {
		if errors.Is(runCtx.Err(), context.Canceled) {
			c.log.Info("download cancelled", zap.String("id", req.ID))
			return model.Cancelled(req.ID)
		}
		derr := provider.Classify(err)
		c.log.Warn("download failed", zap.String("id", req.ID), zap.String("kind", derr.Kind.String()), zap.Error(err))
		return model.Failure(req.ID, derr)
	}

	c.log.Info("download completed", zap.String("id", req.ID), zap.String("path", savedPath))
	return model.Success(req.ID, savedPath)
}

func toDownloadError(err error) *model.DownloadError {
	var de *model.DownloadError
	if errors.As(err, &de) {
		return de
	}
	return model.NewError(model.ErrUnknown, err)
}
