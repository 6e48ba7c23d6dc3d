package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/vuminh/product-api/internal/model"
	"github.com/vuminh/product-api/internal/storage/db"
)

var (
	// ErrProductNotFound signals an absent row. Absence is a normal
	// outcome at this layer, callers decide how to surface it.
	ErrProductNotFound = errors.New("product not found")

	// ErrDuplicateKey signals a unique constraint violation on id or sku.
	ErrDuplicateKey = errors.New("duplicate key")
)

// pgUniqueViolation is the PostgreSQL error code for unique_violation.
const pgUniqueViolation = "23505"

type ProductRepository interface {
	WithDB(db db.DB) ProductRepository
	CreateProduct(ctx context.Context, product model.Product) error
	GetProduct(ctx context.Context, id uuid.UUID) (model.Product, error)
	UpdateProduct(ctx context.Context, product model.Product) error
}

type productRepository struct {
	db db.DB
}

func NewProductRepository(db db.DB) ProductRepository {
	return &productRepository{
		db: db,
	}
}

func (r productRepository) WithDB(db db.DB) ProductRepository {
	return &productRepository{
		db: db,
	}
}

func (r productRepository) CreateProduct(ctx context.Context, product model.Product) error {
	price, err := numericPrice(product.Price)
	if err != nil {
		return err
	}

	if _, err := r.db.Exec(ctx, `
		INSERT INTO product (id, name, sku, price, created_at, updated_at)
		VALUES (@id, @name, @sku, @price, @created_at, @updated_at)
	`, pgx.NamedArgs{
		"id":         product.ID,
		"name":       product.Name,
		"sku":        product.Sku,
		"price":      price,
		"created_at": product.CreatedAt,
		"updated_at": product.UpdatedAt,
	}); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return fmt.Errorf("create product: %w: %w", ErrDuplicateKey, err)
		}
		return fmt.Errorf("create product: %w", err)
	}

	return nil
}

func (r productRepository) GetProduct(ctx context.Context, id uuid.UUID) (model.Product, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, name, sku, price, created_at, updated_at
		FROM product
		WHERE id = @id
	`, pgx.NamedArgs{"id": id})

	var (
		product   model.Product
		price     pgtype.Numeric
		updatedAt *time.Time
	)
	if err := row.Scan(&product.ID, &product.Name, &product.Sku, &price, &product.CreatedAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Product{}, fmt.Errorf("get product: %w", ErrProductNotFound)
		}
		return model.Product{}, fmt.Errorf("get product: %w", err)
	}

	priceValue, err := price.Float64Value()
	if err != nil {
		return model.Product{}, fmt.Errorf("convert price to float64: %w", err)
	}
	product.Price = priceValue.Float64
	product.UpdatedAt = updatedAt

	return product, nil
}

func (r productRepository) UpdateProduct(ctx context.Context, product model.Product) error {
	price, err := numericPrice(product.Price)
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE product
		SET name = @name, price = @price, updated_at = @updated_at
		WHERE id = @id
	`, pgx.NamedArgs{
		"id":         product.ID,
		"name":       product.Name,
		"price":      price,
		"updated_at": product.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update product: %w", ErrProductNotFound)
	}

	return nil
}

func numericPrice(price float64) (pgtype.Numeric, error) {
	var n pgtype.Numeric
	if err := n.Scan(fmt.Sprintf("%f", price)); err != nil {
		return n, fmt.Errorf("scan price: %w", err)
	}
	return n, nil
}
