package notifier

import (
	"context"
	"log/slog"
	"sync"

	"github.com/feriago/orders/internal/domain/model"
)

// Conn is the minimal connection surface the hub needs. Satisfied by
// *websocket.Conn.
type Conn interface {
	WriteJSON(v any) error
	Close() error
}

// InventoryMessage is the push payload delivered to every connected seller.
type InventoryMessage struct {
	Type     string                `json:"type"`
	Products []model.ProductUpdate `json:"products"`
}

// ErrorMessage is emitted to the originating connection when a broadcast
// could not reach one of the sellers.
type ErrorMessage struct {
	Type     string                `json:"type"`
	Error    string                `json:"error"`
	Products []model.ProductUpdate `json:"products"`
}

type broadcast struct {
	origin  string
	updates []model.ProductUpdate
}

// Hub owns the seller session registry and delivers inventory updates on
// its own goroutine, so enqueueing callers never block on slow
// connections.
type Hub struct {
	logger *slog.Logger

	mu       sync.Mutex
	sessions map[string]Conn
	order    []string

	queue  chan broadcast
	runMu  sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewHub constructs a Hub with the given dispatch queue size.
func NewHub(queueSize int, logger *slog.Logger) *Hub {
	if queueSize <= 0 {
		queueSize = 1
	}
	return &Hub{
		logger:   logger,
		sessions: make(map[string]Conn),
		queue:    make(chan broadcast, queueSize),
	}
}

// Start launches the dispatch goroutine.
func (h *Hub) Start(ctx context.Context) {
	h.runMu.Lock()
	defer h.runMu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	h.cancel = cancel

	h.wg.Add(1)
	go h.run(runCtx)
}

// Stop drains the dispatcher and closes every registered connection.
func (h *Hub) Stop() {
	h.runMu.Lock()
	if h.cancel != nil {
		h.cancel()
		h.cancel = nil
	}
	h.runMu.Unlock()

	h.wg.Wait()

	h.mu.Lock()
	defer h.mu.Unlock()
	for _, conn := range h.sessions {
		_ = conn.Close()
	}
	h.sessions = make(map[string]Conn)
	h.order = nil
}

// Register adds the seller's push connection. A reconnecting seller
// replaces its previous connection and keeps its position.
func (h *Hub) Register(sellerID string, conn Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if previous, ok := h.sessions[sellerID]; ok {
		_ = previous.Close()
	} else {
		h.order = append(h.order, sellerID)
	}
	h.sessions[sellerID] = conn
	h.logger.Info("seller connected", slog.String("seller_id", sellerID))
}

// Unregister removes the seller's push connection.
func (h *Hub) Unregister(sellerID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.sessions[sellerID]; !ok {
		return
	}
	delete(h.sessions, sellerID)
	for i, id := range h.order {
		if id == sellerID {
			h.order = append(h.order[:i], h.order[i+1:]...)
			break
		}
	}
	h.logger.Info("seller disconnected", slog.String("seller_id", sellerID))
}

// Active returns the number of registered seller sessions.
func (h *Hub) Active() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.sessions)
}

// Notify queues an inventory-change broadcast with no originating
// connection. A no-op for empty update batches.
func (h *Hub) Notify(updates []model.ProductUpdate) {
	h.NotifyFrom("", updates)
}

// NotifyFrom queues an inventory-change broadcast triggered by the given
// seller connection. Never blocks; a full queue drops the event.
func (h *Hub) NotifyFrom(origin string, updates []model.ProductUpdate) {
	if len(updates) == 0 {
		return
	}
	select {
	case h.queue <- broadcast{origin: origin, updates: updates}:
	default:
		h.logger.Error("inventory broadcast queue full, event dropped", slog.Int("updates", len(updates)))
	}
}

func (h *Hub) run(ctx context.Context) {
	defer h.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case b := <-h.queue:
			h.deliver(b)
		}
	}
}

// deliver pushes one message to every registered session in registration
// order. The first failed push aborts the remaining recipients; sellers
// disconnected at broadcast time never receive the event and there is no
// retry queue.
func (h *Hub) deliver(b broadcast) {
	message := InventoryMessage{Type: "inventory_update", Products: b.updates}

	h.mu.Lock()
	defer h.mu.Unlock()
	for _, sellerID := range h.order {
		if err := h.sessions[sellerID].WriteJSON(message); err != nil {
			h.logger.Error("inventory push failed",
				slog.String("seller_id", sellerID),
				slog.String("error", err.Error()))
			if origin, ok := h.sessions[b.origin]; ok {
				_ = origin.WriteJSON(ErrorMessage{
					Type:     "inventory_error",
					Error:    "could not deliver the inventory notification to one or more sellers",
					Products: b.updates,
				})
			}
			return
		}
	}
}
