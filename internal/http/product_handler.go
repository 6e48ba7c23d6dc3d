package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/vuminh/product-api/internal/apperr"
	"github.com/vuminh/product-api/internal/model"
	"github.com/vuminh/product-api/internal/service"
)

type createProductRequest struct {
	Name  string   `json:"name"`
	Price *float64 `json:"price"`
}

// updateProductRequest fields are optional. Absent and explicit-null
// fields both mean "don't change".
type updateProductRequest struct {
	Name  *string  `json:"name"`
	Price *float64 `json:"price"`
}

type productResponse struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Sku       string     `json:"sku"`
	Price     float64    `json:"price"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt"`
}

func newProductResponse(product model.Product) productResponse {
	return productResponse{
		ID:        product.ID,
		Name:      product.Name,
		Sku:       product.Sku,
		Price:     product.Price,
		CreatedAt: product.CreatedAt,
		UpdatedAt: product.UpdatedAt,
	}
}

type productHandler struct {
	svc        *Service
	productSvc service.ProductService
}

func newProductHandler(svc *Service, productSvc service.ProductService) *productHandler {
	return &productHandler{
		svc:        svc,
		productSvc: productSvc,
	}
}

func (h *productHandler) createProduct(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := decodeJSON(r, &req); err != nil {
		h.svc.respondError(w, r, err)
		return
	}

	product, err := h.productSvc.CreateProduct(r.Context(), service.CreateProductParams{
		Name:  req.Name,
		Price: req.Price,
	})
	if err != nil {
		h.svc.respondError(w, r, err)
		return
	}

	h.svc.respondJSON(w, r, http.StatusCreated, newProductResponse(product))
}

func (h *productHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.productSvc.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.svc.respondError(w, r, err)
		return
	}

	h.svc.respondJSON(w, r, http.StatusOK, newProductResponse(product))
}

func (h *productHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	var req updateProductRequest
	if err := decodeJSON(r, &req); err != nil {
		h.svc.respondError(w, r, err)
		return
	}

	product, err := h.productSvc.UpdateProduct(r.Context(), chi.URLParam(r, "id"), service.UpdateProductParams{
		Name:  req.Name,
		Price: req.Price,
	})
	if err != nil {
		h.svc.respondError(w, r, err)
		return
	}

	h.svc.respondJSON(w, r, http.StatusOK, newProductResponse(product))
}

// decodeJSON decodes the request body into dst. A syntactically broken
// body is a bad request; a well-formed body with a mistyped field (a
// string where a number belongs) is a validation failure. An empty body
// decodes to the zero value, the same as an empty object.
func decodeJSON(r *http.Request, dst any) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return apperr.ValidationErr.WrapParent(err)
	}

	return apperr.InvalidJSONErr.WrapParent(err)
}
