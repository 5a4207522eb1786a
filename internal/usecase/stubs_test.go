package usecase

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/feriago/orders/internal/domain/model"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

type catalogStub struct {
	mu          sync.Mutex
	productFn   func(ctx context.Context, token, id string) (*model.CatalogProduct, error)
	updateFn    func(ctx context.Context, token, id string, quantity int) error
	productCall int
	updateCall  int
}

func (s *catalogStub) Product(ctx context.Context, token, id string) (*model.CatalogProduct, error) {
	s.mu.Lock()
	s.productCall++
	s.mu.Unlock()
	if s.productFn == nil {
		return &model.CatalogProduct{ID: id, Name: "stub", Quantity: 100, UnitAmount: 1}, nil
	}
	return s.productFn(ctx, token, id)
}

func (s *catalogStub) UpdateQuantity(ctx context.Context, token, id string, quantity int) error {
	s.mu.Lock()
	s.updateCall++
	s.mu.Unlock()
	if s.updateFn == nil {
		return nil
	}
	return s.updateFn(ctx, token, id, quantity)
}

func (s *catalogStub) calls() (products, updates int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.productCall, s.updateCall
}

type orderRepoStub struct {
	createFn func(ctx context.Context, order *model.Order, items []model.OrderLineItem) (*model.Order, error)
	getFn    func(ctx context.Context, id string) (*model.Order, error)
	listFn   func(ctx context.Context, customerID string) ([]model.Order, error)
	markFn   func(ctx context.Context, cutoff time.Time) (int64, error)
}

func (s *orderRepoStub) Create(ctx context.Context, order *model.Order, items []model.OrderLineItem) (*model.Order, error) {
	if s.createFn == nil {
		panic("not implemented")
	}
	return s.createFn(ctx, order, items)
}

func (s *orderRepoStub) GetByID(ctx context.Context, id string) (*model.Order, error) {
	if s.getFn == nil {
		panic("not implemented")
	}
	return s.getFn(ctx, id)
}

func (s *orderRepoStub) ListByCustomer(ctx context.Context, customerID string) ([]model.Order, error) {
	if s.listFn == nil {
		panic("not implemented")
	}
	return s.listFn(ctx, customerID)
}

func (s *orderRepoStub) MarkDeliveredDueBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	if s.markFn == nil {
		panic("not implemented")
	}
	return s.markFn(ctx, cutoff)
}

type notifierStub struct {
	mu      sync.Mutex
	batches [][]model.ProductUpdate
}

func (s *notifierStub) Notify(updates []model.ProductUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.batches = append(s.batches, updates)
}

func (s *notifierStub) notified() [][]model.ProductUpdate {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.batches
}
