package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// DeliveryFacade exposes the subset of application functionality required by the worker.
type DeliveryFacade interface {
	ReconcileDeliveries(ctx context.Context) (int64, error)
}

// DeliveryReconciler periodically marks overdue orders as delivered.
type DeliveryReconciler struct {
	facade   DeliveryFacade
	interval time.Duration
	logger   *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewDeliveryReconciler constructs the reconciliation worker.
func NewDeliveryReconciler(facade DeliveryFacade, interval time.Duration, logger *slog.Logger) *DeliveryReconciler {
	if interval <= 0 {
		interval = time.Minute
	}
	return &DeliveryReconciler{
		facade:   facade,
		interval: interval,
		logger:   logger,
	}
}

// Start launches background reconciliation.
func (r *DeliveryReconciler) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel

	r.wg.Add(1)
	go r.loop(runCtx)
}

// Stop cancels the loop and waits for the in-flight pass to finish.
func (r *DeliveryReconciler) Stop() {
	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.mu.Unlock()

	r.wg.Wait()
}

func (r *DeliveryReconciler) loop(ctx context.Context) {
	defer r.wg.Done()
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.reconcile(ctx)
		}
	}
}

func (r *DeliveryReconciler) reconcile(ctx context.Context) {
	marked, err := r.facade.ReconcileDeliveries(ctx)
	if err != nil {
		r.logger.Error("delivery reconciliation failed", slog.String("error", err.Error()))
		return
	}
	if marked > 0 {
		r.logger.Info("overdue orders marked delivered", slog.Int64("orders", marked))
	}
}
