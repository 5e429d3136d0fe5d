package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/demo-api/internal/api/shared"
	"github.com/phrazzld/demo-api/internal/clock"
	"github.com/phrazzld/demo-api/internal/platform/logger"
	"github.com/phrazzld/demo-api/internal/store"
)

const orderHandlerComponent = "order_handler"

// OrderHandler serves the /orders resource.
type OrderHandler struct {
	orderStore store.OrderStore
	clock      clock.Clock
	logger     *slog.Logger
}

// NewOrderHandler creates a new OrderHandler. clk stamps createdAt on new
// orders; nil means the wall clock.
func NewOrderHandler(orderStore store.OrderStore, clk clock.Clock, logger *slog.Logger) *OrderHandler {
	if orderStore == nil {
		// ALLOW-PANIC: constructor wiring error
		panic("orderStore cannot be nil")
	}
	if clk == nil {
		clk = clock.RealClock{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &OrderHandler{
		orderStore: orderStore,
		clock:      clk,
		logger:     logger,
	}
}

// List handles GET /orders.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderStore.List(r.Context())
	if err != nil {
		HandleError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, orders)
}

// Get handles GET /orders/{id}.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	order, err := h.orderStore.GetByID(r.Context(), id)
	if err != nil {
		HandleError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, order)
}

// Create handles POST /orders. createdAt is always server-assigned and the
// status defaults to CREATED when the body leaves it blank.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req OrderRequest
	if err := decodeAndValidate(r, &req); err != nil {
		HandleError(w, r, err)
		return
	}
	order := req.toOrder()
	order.PrepareForCreate(h.clock.Now())

	if err := h.orderStore.Create(r.Context(), order); err != nil {
		HandleError(w, r, err)
		return
	}

	logger.ForComponent(r.Context(), h.logger, orderHandlerComponent).
		Debug("order created",
			slog.Int64("order_id", order.ID),
			slog.Time("created_at", order.CreatedAt))
	shared.RespondWithJSON(w, r, http.StatusCreated, order)
}

// Update handles PUT /orders/{id}. Every mutable field is replaced, status
// included; createdAt keeps its original value.
func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	var req OrderRequest
	if err := decodeAndValidate(r, &req); err != nil {
		HandleError(w, r, err)
		return
	}

	existing, err := h.orderStore.GetByID(r.Context(), id)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	existing.ApplyUpdate(req.toOrder())
	if err := h.orderStore.Update(r.Context(), existing); err != nil {
		HandleError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, existing)
}

// Delete handles DELETE /orders/{id}.
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	exists, err := h.orderStore.Exists(r.Context(), id)
	if err != nil {
		HandleError(w, r, err)
		return
	}
	if !exists {
		HandleError(w, r, store.ErrOrderNotFound)
		return
	}

	if err := h.orderStore.Delete(r.Context(), id); err != nil {
		HandleError(w, r, err)
		return
	}
	shared.RespondNoContent(w)
}
