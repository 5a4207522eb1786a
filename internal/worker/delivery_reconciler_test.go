package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	testhelpers "github.com/feriago/orders/internal/test"
)

func TestNewDeliveryReconcilerDefaults(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	rec := NewDeliveryReconciler(&testhelpers.ReconcilerFacadeStub{}, 0, logger)
	if rec.interval != time.Minute {
		t.Fatalf("expected interval default to one minute, got %v", rec.interval)
	}
}

func TestDeliveryReconcilerRunsPasses(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	facade := &testhelpers.ReconcilerFacadeStub{
		ReconcileFn: func(context.Context) (int64, error) { return 3, nil },
	}
	rec := NewDeliveryReconciler(facade, 10*time.Millisecond, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	rec.Start(ctx)

	deadline := time.After(2 * time.Second)
	for {
		facade.Lock()
		ran := facade.Calls() >= 2
		facade.Unlock()
		if ran {
			break
		}
		select {
		case <-deadline:
			t.Fatal("timeout waiting for reconciliation passes")
		case <-time.After(10 * time.Millisecond):
		}
	}

	rec.Stop()
}

func TestDeliveryReconcilerKeepsRunningAfterFailure(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	facade := &testhelpers.ReconcilerFacadeStub{
		ReconcileFn: func(context.Context) (int64, error) { return 0, errors.New("db unavailable") },
	}
	rec := NewDeliveryReconciler(facade, 10*time.Millisecond, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	rec.Start(ctx)

	deadline := time.After(2 * time.Second)
	for {
		facade.Lock()
		ran := facade.Calls() >= 2
		facade.Unlock()
		if ran {
			break
		}
		select {
		case <-deadline:
			t.Fatal("worker stopped after a failed pass")
		case <-time.After(10 * time.Millisecond):
		}
	}

	rec.Stop()
}

func TestDeliveryReconcilerStopIsIdempotent(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	rec := NewDeliveryReconciler(&testhelpers.ReconcilerFacadeStub{}, time.Hour, logger)

	rec.Start(context.Background())
	rec.Stop()
	rec.Stop()
}
