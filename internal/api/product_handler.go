package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/demo-api/internal/api/shared"
	"github.com/phrazzld/demo-api/internal/domain"
	"github.com/phrazzld/demo-api/internal/platform/logger"
	"github.com/phrazzld/demo-api/internal/store"
)

const productHandlerComponent = "product_handler"

// ProductHandler serves the /products resource. Price is stored as sent,
// negative values included.
type ProductHandler struct {
	productStore store.ProductStore
	logger       *slog.Logger
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(productStore store.ProductStore, logger *slog.Logger) *ProductHandler {
	if productStore == nil {
		// ALLOW-PANIC: constructor wiring error
		panic("productStore cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ProductHandler{
		productStore: productStore,
		logger:       logger,
	}
}

// List handles GET /products.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.productStore.List(r.Context())
	if err != nil {
		HandleError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, products)
}

// Get handles GET /products/{id}.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	product, err := h.productStore.GetByID(r.Context(), id)
	if err != nil {
		HandleError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, product)
}

// Create handles POST /products.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var product domain.Product
	if err := decodeAndValidate(r, &product); err != nil {
		HandleError(w, r, err)
		return
	}
	// identities are always assigned by the store
	product.ID = 0

	if err := h.productStore.Create(r.Context(), &product); err != nil {
		HandleError(w, r, err)
		return
	}

	logger.ForComponent(r.Context(), h.logger, productHandlerComponent).
		Debug("product created", slog.Int64("product_id", product.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, &product)
}

// Update handles PUT /products/{id}. Every mutable field is replaced.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	var in domain.Product
	if err := decodeAndValidate(r, &in); err != nil {
		HandleError(w, r, err)
		return
	}

	existing, err := h.productStore.GetByID(r.Context(), id)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	existing.ApplyUpdate(&in)
	if err := h.productStore.Update(r.Context(), existing); err != nil {
		HandleError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, existing)
}

// Delete handles DELETE /products/{id}.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	exists, err := h.productStore.Exists(r.Context(), id)
	if err != nil {
		HandleError(w, r, err)
		return
	}
	if !exists {
		HandleError(w, r, store.ErrProductNotFound)
		return
	}

	if err := h.productStore.Delete(r.Context(), id); err != nil {
		HandleError(w, r, err)
		return
	}
	shared.RespondNoContent(w)
}
