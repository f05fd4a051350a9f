package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/ayeshakhanum-26/Market-Place-App/internal/storefront"
	"github.com/go-chi/chi/v5"
)

// StorefrontHandler maps browser actions onto store transitions. It holds no
// state and makes no decisions of its own.
type StorefrontHandler struct {
	Store *storefront.Store
}

type SetFieldReq struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

func (h *StorefrontHandler) Register(r *chi.Mux) {
	r.Get("/state", h.state)
	r.Post("/refresh", h.refresh)
	r.Post("/products", h.submitProduct)
	r.Post("/drafts/product", h.setProductField)
	r.Post("/drafts/buyer", h.setBuyerField)
	r.Post("/checkout/cancel", h.cancelCheckout)
	r.Post("/checkout/confirm", h.confirmOrder)
	r.Post("/checkout/{productID}", h.beginCheckout)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (h *StorefrontHandler) state(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Store.Snapshot())
}

func (h *StorefrontHandler) refresh(w http.ResponseWriter, r *http.Request) {
	h.Store.LoadInitial(r.Context())
	writeJSON(w, http.StatusOK, h.Store.Snapshot())
}

func (h *StorefrontHandler) submitProduct(w http.ResponseWriter, r *http.Request) {
	h.Store.SubmitProduct(r.Context())
	writeJSON(w, http.StatusOK, h.Store.Snapshot())
}

func (h *StorefrontHandler) setProductField(w http.ResponseWriter, r *http.Request) {
	h.setField(w, r, h.Store.SetProductField)
}

func (h *StorefrontHandler) setBuyerField(w http.ResponseWriter, r *http.Request) {
	h.setField(w, r, h.Store.SetBuyerField)
}

func (h *StorefrontHandler) setField(w http.ResponseWriter, r *http.Request, set func(field, value string) error) {
	var req SetFieldReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	if err := set(req.Field, req.Value); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, h.Store.Snapshot())
}

func (h *StorefrontHandler) beginCheckout(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid product id"})
		return
	}
	if err := h.Store.BeginCheckout(productID); err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, storefront.ErrUnknownProduct) {
			code = http.StatusNotFound
		}
		writeJSON(w, code, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, h.Store.Snapshot())
}

func (h *StorefrontHandler) cancelCheckout(w http.ResponseWriter, r *http.Request) {
	h.Store.CancelCheckout()
	writeJSON(w, http.StatusOK, h.Store.Snapshot())
}

func (h *StorefrontHandler) confirmOrder(w http.ResponseWriter, r *http.Request) {
	h.Store.ConfirmOrder(r.Context())
	writeJSON(w, http.StatusOK, h.Store.Snapshot())
}
