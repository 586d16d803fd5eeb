package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"inventory-api/internal/model"
	"inventory-api/internal/service"

	"github.com/rs/zerolog"
)

// ProductHandler handles product-related HTTP requests.
type ProductHandler struct {
	service service.ProductService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.ProductService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// productID parses the {id} path value as unsigned decimal digits that fit
// the int4 id column. Anything else is answered with the same 404 a missing
// product gets.
func (h *ProductHandler) productID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || !isDigits(raw) {
		writeError(w, http.StatusNotFound, model.NewProductNotFoundError(raw).Message, h.logger)
		return 0, false
	}
	return id, true
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return s != ""
}

// decodeFields reads the JSON request body, which must hold exactly one
// JSON value.
func (h *ProductHandler) decodeFields(w http.ResponseWriter, r *http.Request) (model.ProductFields, bool) {
	var fields model.ProductFields
	dec := json.NewDecoder(r.Body)
	err := dec.Decode(&fields)
	if err == nil {
		if extra := dec.Decode(&struct{}{}); extra != io.EOF {
			err = errors.New("unexpected data after JSON body")
		}
	}
	if err != nil {
		h.logger.Debug().Err(err).Msg("failed to decode product body")
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return model.ProductFields{}, false
	}
	return fields, true
}

// serviceError answers not-found errors with 404 and anything else with 500.
func (h *ProductHandler) serviceError(w http.ResponseWriter, err error) {
	if model.IsNotFound(err) {
		writeError(w, http.StatusNotFound, err.Error(), h.logger)
		return
	}
	h.logger.Error().Err(err).Int("status", http.StatusInternalServerError).Msg("handler error")
	writeJSON(w, http.StatusInternalServerError, model.ErrorResponse{Error: internalErrorMessage})
}

// List handles GET /products requests.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListAll(r.Context())
	if err != nil {
		h.serviceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.NewProductViews(products))
}

// Get handles GET /products/{id} requests.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.productID(w, r)
	if !ok {
		return
	}

	product, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.NewProductView(*product))
}

// Create handles POST /products requests.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	fields, ok := h.decodeFields(w, r)
	if !ok {
		return
	}

	product, err := h.service.Create(r.Context(), fields)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, model.NewProductView(*product))
}

// Update handles PUT and PATCH /products/{id} requests.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.productID(w, r)
	if !ok {
		return
	}

	fields, ok := h.decodeFields(w, r)
	if !ok {
		return
	}

	product, err := h.service.Update(r.Context(), id, fields)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.NewProductView(*product))
}

// Delete handles DELETE /products/{id} requests.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.productID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.serviceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.MessageResponse{
		Message: fmt.Sprintf("Product with id %d has been deleted", id),
	})
}
