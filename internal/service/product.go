package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vuminh/product-api/internal/apperr"
	"github.com/vuminh/product-api/internal/model"
	"github.com/vuminh/product-api/internal/repository"
	"github.com/vuminh/product-api/internal/sku"
	"github.com/vuminh/product-api/internal/storage/db"
	"github.com/vuminh/product-api/pkg/ptr"
	"github.com/vuminh/product-api/pkg/validator"
)

type CreateProductParams struct {
	Name  string   `validate:"required,notblank,max=255"`
	Price *float64 `validate:"required,gte=0"`
}

// UpdateProductParams carries the optional fields of a partial update.
// A nil field means "don't change".
type UpdateProductParams struct {
	Name  *string  `validate:"omitnil,notblank,max=255"`
	Price *float64 `validate:"omitnil,gte=0"`
}

type ProductService interface {
	CreateProduct(ctx context.Context, params CreateProductParams) (model.Product, error)
	GetProduct(ctx context.Context, id string) (model.Product, error)
	UpdateProduct(ctx context.Context, id string, params UpdateProductParams) (model.Product, error)
}

type productService struct {
	db          db.DB
	productRepo repository.ProductRepository
	validator   validator.Validator
}

func NewProductService(
	db db.DB,
	productRepo repository.ProductRepository,
	validator validator.Validator,
) ProductService {
	return &productService{
		db:          db,
		productRepo: productRepo,
		validator:   validator,
	}
}

func (s *productService) CreateProduct(ctx context.Context, params CreateProductParams) (model.Product, error) {
	if err := s.validator.Validate(params); err != nil {
		return model.Product{}, apperr.ValidationErr.WrapParent(err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return model.Product{}, fmt.Errorf("generate uuid v7: %w", err)
	}

	product := model.Product{
		ID:        id,
		Name:      params.Name,
		Sku:       sku.Generate(params.Name),
		Price:     *params.Price,
		CreatedAt: time.Now(),
		UpdatedAt: nil,
	}

	if err := s.productRepo.CreateProduct(ctx, product); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return model.Product{}, apperr.ProductSkuConflictErr.WrapParent(err)
		}
		return model.Product{}, fmt.Errorf("product repository create product: %w", err)
	}

	return product, nil
}

func (s *productService) GetProduct(ctx context.Context, id string) (model.Product, error) {
	productID, err := parseProductID(id)
	if err != nil {
		return model.Product{}, err
	}

	product, err := s.productRepo.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return model.Product{}, apperr.ProductNotFoundErr.WrapParent(err)
		}
		return model.Product{}, fmt.Errorf("product repository get product: %w", err)
	}

	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id string, params UpdateProductParams) (model.Product, error) {
	productID, err := parseProductID(id)
	if err != nil {
		return model.Product{}, err
	}

	if err := s.validator.Validate(params); err != nil {
		return model.Product{}, apperr.ValidationErr.WrapParent(err)
	}

	var product model.Product
	if err := s.db.WithTx(ctx, func(db db.DB) error {
		repo := s.productRepo.WithDB(db)

		var err error
		product, err = repo.GetProduct(ctx, productID)
		if err != nil {
			return fmt.Errorf("product repository get product: %w", err)
		}

		dirty := false
		if params.Name != nil && *params.Name != product.Name {
			product.Name = *params.Name
			dirty = true
		}
		if params.Price != nil && *params.Price != product.Price {
			product.Price = *params.Price
			dirty = true
		}

		if !dirty {
			return nil
		}

		product.UpdatedAt = ptr.New(time.Now())
		if err := repo.UpdateProduct(ctx, product); err != nil {
			return fmt.Errorf("product repository update product: %w", err)
		}

		return nil
	}); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return model.Product{}, apperr.ProductNotFoundErr.WrapParent(err)
		}
		return model.Product{}, fmt.Errorf("db with tx: %w", err)
	}

	return product, nil
}

// parseProductID validates the id format. A malformed id maps to the
// same not-found error as an absent record, so the two cases are
// indistinguishable to callers.
func parseProductID(id string) (uuid.UUID, error) {
	productID, err := uuid.Parse(id)
	if err != nil {
		return uuid.UUID{}, apperr.ProductNotFoundErr.WrapParent(err)
	}
	return productID, nil
}
