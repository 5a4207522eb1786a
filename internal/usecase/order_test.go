package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/feriago/orders/internal/domain/errors"
	"github.com/feriago/orders/internal/domain/model"
)

func TestOrderRejectsMalformedID(t *testing.T) {
	uc := NewOrderUseCase(&orderRepoStub{getFn: func(context.Context, string) (*model.Order, error) {
		t.Fatal("repository must not be called for malformed id")
		return nil, nil
	}}, &catalogStub{})

	if _, err := uc.Order(context.Background(), "123"); !domainErrors.IsBadRequest(err) {
		t.Fatalf("expected bad request, got %v", err)
	}
}

func TestOrderPropagatesNotFound(t *testing.T) {
	uc := NewOrderUseCase(&orderRepoStub{getFn: func(context.Context, string) (*model.Order, error) {
		return nil, domainErrors.NotFound("order not found")
	}}, &catalogStub{})

	if _, err := uc.Order(context.Background(), uuid.NewString()); !domainErrors.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCustomerOrdersRejectsMalformedCustomerID(t *testing.T) {
	uc := NewOrderUseCase(&orderRepoStub{}, &catalogStub{})
	if _, err := uc.CustomerOrders(context.Background(), "", "nope"); !domainErrors.IsBadRequest(err) {
		t.Fatalf("expected bad request, got %v", err)
	}
}

func TestCustomerOrdersEnrichesAndSkipsMissingProducts(t *testing.T) {
	customerID := uuid.NewString()
	knownProduct, goneProduct := uuid.NewString(), uuid.NewString()

	repo := &orderRepoStub{listFn: func(_ context.Context, got string) ([]model.Order, error) {
		if got != customerID {
			t.Fatalf("unexpected customer id %s", got)
		}
		return []model.Order{{
			ID:           uuid.NewString(),
			CustomerID:   customerID,
			State:        model.OrderStatePreparing,
			TotalAmount:  12,
			DeliveryDate: time.Date(2025, time.April, 30, 0, 0, 0, 0, time.UTC),
			Items: []model.OrderLineItem{
				{ProductID: knownProduct, QuantityOrdered: 2, Amount: 8},
				{ProductID: goneProduct, QuantityOrdered: 1, Amount: 4},
			},
		}}, nil
	}}

	catalog := &catalogStub{productFn: func(_ context.Context, _, id string) (*model.CatalogProduct, error) {
		if id == goneProduct {
			return nil, errors.New("unreachable")
		}
		return &model.CatalogProduct{ID: id, Name: "Apples", ImageURL: "http://img/a"}, nil
	}}

	uc := NewOrderUseCase(repo, catalog)
	receipts, err := uc.CustomerOrders(context.Background(), "Bearer t", customerID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(receipts) != 1 {
		t.Fatalf("expected one receipt, got %d", len(receipts))
	}

	receipt := receipts[0]
	if receipt.Date != "2025-04-30" || receipt.Total != 12 || receipt.Status != "PREPARING" {
		t.Fatalf("unexpected receipt %+v", receipt)
	}
	if len(receipt.Items) != 1 || receipt.Items[0].Title != "Apples" {
		t.Fatalf("expected unreachable product to be skipped, got %+v", receipt.Items)
	}
	if receipt.Summary != "Apples" {
		t.Fatalf("unexpected summary %q", receipt.Summary)
	}
}

func TestReconcileDeliveriesUsesMidnightCutoff(t *testing.T) {
	var gotCutoff time.Time
	uc := NewOrderUseCase(&orderRepoStub{markFn: func(_ context.Context, cutoff time.Time) (int64, error) {
		gotCutoff = cutoff
		return 3, nil
	}}, &catalogStub{})

	updated, err := uc.ReconcileDeliveries(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated != 3 {
		t.Fatalf("expected 3 updated rows, got %d", updated)
	}

	if gotCutoff.Location() != time.UTC {
		t.Fatalf("expected UTC cutoff, got %v", gotCutoff.Location())
	}
	if gotCutoff.Hour() != 0 || gotCutoff.Minute() != 0 || gotCutoff.Second() != 0 || gotCutoff.Nanosecond() != 0 {
		t.Fatalf("expected midnight cutoff, got %v", gotCutoff)
	}
	now := time.Now().UTC()
	if gotCutoff.Year() != now.Year() || gotCutoff.YearDay() != now.YearDay() {
		t.Fatalf("expected today's date, got %v", gotCutoff)
	}
}

func TestMidnightUTC(t *testing.T) {
	in := time.Date(2025, time.April, 28, 17, 45, 12, 999, time.FixedZone("X", 3*3600))
	got := midnightUTC(in)
	want := time.Date(2025, time.April, 28, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
