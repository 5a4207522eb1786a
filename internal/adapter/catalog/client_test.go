package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestNewHTTPClientValidatesURL(t *testing.T) {
	if _, err := NewHTTPClient("://bad-url", 0, testLogger()); err == nil {
		t.Fatal("expected error for invalid url")
	}
	if _, err := NewHTTPClient("/relative", 0, testLogger()); err == nil {
		t.Fatal("expected error for relative url")
	}
}

func TestProductParsesEnvelopeAndForwardsToken(t *testing.T) {
	var gotPath, gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"name":"Green Apples","quantity":40,"unit_amount":2.5,"image_url":"http://img/apples.png","description":"1kg bag","category_id":"fruit"}}`))
	}))
	defer server.Close()

	client, err := NewHTTPClient(server.URL, time.Second, testLogger())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	product, err := client.Product(context.Background(), "Bearer token-123", "3f1c0f5e-1111-4222-8333-944445555666")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/products/3f1c0f5e-1111-4222-8333-944445555666" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if gotAuth != "Bearer token-123" {
		t.Fatalf("expected forwarded token, got %q", gotAuth)
	}
	if product.Name != "Green Apples" || product.Quantity != 40 || product.UnitAmount != 2.5 {
		t.Fatalf("unexpected product %+v", product)
	}
	if product.CategoryID != "fruit" || product.ImageURL != "http://img/apples.png" {
		t.Fatalf("unexpected product details %+v", product)
	}
}

func TestProductNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client, err := NewHTTPClient(server.URL, time.Second, testLogger())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	if _, err := client.Product(context.Background(), "", "missing"); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client, err := NewHTTPClient(server.URL, time.Second, testLogger())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	if _, err := client.Product(context.Background(), "", "id"); err == nil {
		t.Fatal("expected error for server failure")
	}
}

func TestUpdateQuantitySendsAbsoluteValue(t *testing.T) {
	var gotMethod, gotPath, gotAuth string
	var gotBody map[string]int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode body: %v", err)
		}
	}))
	defer server.Close()

	client, err := NewHTTPClient(server.URL, time.Second, testLogger())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	if err := client.UpdateQuantity(context.Background(), "Bearer t", "p1", 37); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotMethod != http.MethodPut {
		t.Fatalf("expected PUT, got %s", gotMethod)
	}
	if gotPath != "/products/p1/quantity" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if gotAuth != "Bearer t" {
		t.Fatalf("expected forwarded token, got %q", gotAuth)
	}
	if gotBody["quantity"] != 37 {
		t.Fatalf("expected quantity 37, got %d", gotBody["quantity"])
	}
}

func TestUpdateQuantityRejectsNonOK(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))
	defer server.Close()

	client, err := NewHTTPClient(server.URL, time.Second, testLogger())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	if err := client.UpdateQuantity(context.Background(), "", "p1", 5); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}

func TestCallsHonorTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	client, err := NewHTTPClient(server.URL, 20*time.Millisecond, testLogger())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	start := time.Now()
	if _, err := client.Product(context.Background(), "", "slow"); err == nil {
		t.Fatal("expected timeout error")
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("timeout took too long: %v", elapsed)
	}

	if err := client.UpdateQuantity(context.Background(), "", "slow", 1); err == nil {
		t.Fatal("expected timeout error")
	}
}
