package followup

import (
	"context"
	"fmt"
	"sync"
	"time"

	errs "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/error"
	coreport "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/core"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/usecase"
)

// Follow-up results reported to metrics
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
	ResultDropped = "dropped"
)

// Config controls retries and background queues
type Config struct {
	MaxAttempts int
	RetryDelay  time.Duration
	Timeout     time.Duration // Per background follow-up
	QueueSize   int
	Async       bool // When false, Go runs follow-ups inline
}

// Dispatcher runs best-effort side effects. Background follow-ups are queued per
// name and processed sequentially by one worker per queue.
type Dispatcher struct {
	cfg          Config
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	metrics      coreport.Metrics

	queues    sync.Map // map[string]chan usecase.FollowUp
	workersWG sync.WaitGroup
	mu        sync.RWMutex
	closed    bool
}

// NewDispatcher creates a follow-up dispatcher
func NewDispatcher(
	cfg Config,
	logger coreport.Logger,
	timeProvider coreport.TimeProvider,
	metrics coreport.Metrics,
) *Dispatcher {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	if cfg.QueueSize < 1 {
		cfg.QueueSize = 100
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	return &Dispatcher{
		cfg:          cfg,
		logger:       logger,
		timeProvider: timeProvider,
		metrics:      metrics,
	}
}

// Run executes the follow-up inline, retrying up to the configured attempts
func (d *Dispatcher) Run(ctx context.Context, followUp usecase.FollowUp) usecase.FollowUpOutcome {
	outcome := usecase.FollowUpOutcome{Name: followUp.Name}

	for attempt := 1; ; attempt++ {
		outcome.Attempts = attempt
		outcome.Err = safeRun(ctx, followUp)
		if outcome.Err == nil {
			break
		}

		d.logger.Warn("Follow-up attempt failed", map[string]any{
			"followup": followUp.Name,
			"attempt":  attempt,
			"error":    outcome.Err.Error(),
		})

		if attempt >= d.cfg.MaxAttempts || !d.backoff(ctx, attempt) {
			break
		}
	}

	if outcome.Failed() {
		fields := errs.LogFields(outcome.Err)
		fields["followup"] = followUp.Name
		fields["attempts"] = outcome.Attempts
		d.logger.Error("Follow-up failed", fields)
		d.metrics.FollowUpFinished(followUp.Name, ResultFailure)
		return outcome
	}

	d.metrics.FollowUpFinished(followUp.Name, ResultSuccess)
	return outcome
}

// Go schedules the follow-up on its queue. Full queues and a shut down
// dispatcher drop the follow-up with a warning.
func (d *Dispatcher) Go(followUp usecase.FollowUp) {
	if !d.cfg.Async {
		ctx, cancel := d.timeProvider.WithTimeout(context.Background(), d.cfg.Timeout)
		defer cancel()
		d.Run(ctx, followUp)
		return
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.drop(followUp, "dispatcher is shut down")
		return
	}

	queueIface, loaded := d.queues.LoadOrStore(followUp.Name, make(chan usecase.FollowUp, d.cfg.QueueSize))
	queue, ok := queueIface.(chan usecase.FollowUp)
	if !ok {
		d.drop(followUp, "invalid queue")
		return
	}

	if !loaded {
		d.logger.Info("Starting follow-up queue worker", map[string]any{
			"followup": followUp.Name,
		})
		d.workersWG.Add(1)
		go d.worker(followUp.Name, queue)
	}

	select {
	case queue <- followUp:
		d.logger.Debug("Follow-up enqueued", map[string]any{
			"followup": followUp.Name,
		})
	default:
		d.drop(followUp, "queue is full")
	}
}

// worker processes one follow-up queue sequentially
func (d *Dispatcher) worker(name string, queue chan usecase.FollowUp) {
	defer d.workersWG.Done()

	for followUp := range queue {
		ctx, cancel := d.timeProvider.WithTimeout(context.Background(), d.cfg.Timeout)
		d.Run(ctx, followUp)
		cancel()
	}

	d.logger.Info("Follow-up queue worker stopped", map[string]any{
		"followup": name,
	})
}

// Shutdown closes all queues and waits for queued follow-ups to finish
func (d *Dispatcher) Shutdown() {
	d.logger.Info("Shutting down follow-up dispatcher", nil)

	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	d.queues.Range(func(_, queueIface any) bool {
		if queue, ok := queueIface.(chan usecase.FollowUp); ok {
			close(queue)
		}
		return true
	})
	d.mu.Unlock()

	d.workersWG.Wait()
	d.logger.Info("Follow-up dispatcher shut down successfully", nil)
}

// backoff waits before the next attempt and reports whether to continue
func (d *Dispatcher) backoff(ctx context.Context, attempt int) bool {
	if ctx.Err() != nil {
		return false
	}
	if d.cfg.RetryDelay <= 0 {
		return true
	}

	select {
	case <-ctx.Done():
		return false
	case <-time.After(d.cfg.RetryDelay * time.Duration(attempt)):
		return true
	}
}

func (d *Dispatcher) drop(followUp usecase.FollowUp, reason string) {
	d.logger.Warn("Follow-up dropped", map[string]any{
		"followup": followUp.Name,
		"reason":   reason,
	})
	d.metrics.FollowUpFinished(followUp.Name, ResultDropped)
}

// safeRun turns a panicking follow-up into an error
func safeRun(ctx context.Context, followUp usecase.FollowUp) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: follow-up panicked: %v", errs.ErrInternalServer, r)
		}
	}()

	if followUp.Run == nil {
		return fmt.Errorf("%w: follow-up %s has no function", errs.ErrInternalServer, followUp.Name)
	}
	return followUp.Run(ctx)
}
