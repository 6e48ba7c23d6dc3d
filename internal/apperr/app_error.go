package apperr

import "github.com/vuminh/product-api/pkg/zerror"

const (
	ValidationErrorCode    = "VALIDATION_FAILED"
	InvalidJSONCode        = "INVALID_JSON"
	ProductNotFoundCode    = "PRODUCT_NOT_FOUND"
	ProductSkuConflictCode = "PRODUCT_SKU_CONFLICT"
)

var (
	ValidationErr  = zerror.NewUnprocessableEntity(ValidationErrorCode, "validation error")
	InvalidJSONErr = zerror.NewBadRequest(InvalidJSONCode, "request body is not valid JSON")

	// ProductNotFoundErr covers both an absent record and a malformed id,
	// so callers cannot probe which ids are syntactically valid.
	ProductNotFoundErr = zerror.NewNotFound(ProductNotFoundCode, "product not found")

	ProductSkuConflictErr = zerror.NewConflict(ProductSkuConflictCode, "product sku already exists")
)
