package inventory

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	validator "github.com/go-playground/validator/v10"

	"github.com/farmfresh/inventory-api/internal/common"
	"github.com/farmfresh/inventory-api/internal/obs"
	"github.com/farmfresh/inventory-api/internal/pricing"
)

// Input carries the raw fields of a create or update submission. Quantity and
// rate stay strings until the service parses them, because the browser form
// posts everything as text.
type Input struct {
	ProductID   string `validate:"required"`
	ProductName string `validate:"required"`
	Category    string `validate:"required"`
	Quantity    string `validate:"required"`
	Rate        string `validate:"required"`
	Location    string `validate:"required"`
}

// Service orchestrates validation, normalization, pricing, and persistence
// for product records.
type Service struct {
	store    Store
	cache    *Cache
	validate *validator.Validate
}

// ServiceConfig groups Service dependencies.
type ServiceConfig struct {
	Store Store
	Cache *Cache
}

// NewService constructs a Service instance.
func NewService(cfg ServiceConfig) (*Service, error) {
	if cfg.Store == nil {
		return nil, errors.New("inventory: store is required")
	}
	return &Service{
		store:    cfg.Store,
		cache:    cfg.Cache,
		validate: validator.New(),
	}, nil
}

// Create validates the submission, derives the pricing fields, and persists a
// new record. Client-supplied derived values are never trusted.
func (s *Service) Create(ctx context.Context, in Input) (rec Record, err error) {
	defer func() { obs.ObserveStockOp("create", err) }()

	f, err := s.parseInput(in)
	if err != nil {
		return Record{}, err
	}
	rec = f.toRecord()
	rec, err = s.store.Create(ctx, rec)
	if err != nil {
		if errors.Is(err, ErrDuplicateID) {
			return Record{}, common.DuplicateKeyError("Product ID already exists!", err)
		}
		return Record{}, fmt.Errorf("create record: %w", err)
	}
	obs.ObserveDiscount(rec.Category, pricing.DiscountPercent(rec.Category))
	s.invalidateList(ctx)
	return withDerived(rec), nil
}

// List returns all records, serving from the cache when it is warm.
func (s *Service) List(ctx context.Context) (records []Record, err error) {
	defer func() { obs.ObserveStockOp("list", err) }()

	var cached []Record
	if ok, cerr := s.cache.GetJSON(ctx, stockListKey, &cached); cerr == nil && ok {
		return cached, nil
	}
	rows, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	records = make([]Record, 0, len(rows))
	for _, rec := range rows {
		records = append(records, withDerived(rec))
	}
	_ = s.cache.SetJSON(ctx, stockListKey, records)
	return records, nil
}

// Get fetches one record by its business key.
func (s *Service) Get(ctx context.Context, productID string) (rec Record, err error) {
	defer func() { obs.ObserveStockOp("get", err) }()

	productID = strings.TrimSpace(productID)
	if productID == "" {
		return Record{}, common.ValidationError("productId is required", nil)
	}
	rec, err = s.store.GetByProductID(ctx, productID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Record{}, common.NotFoundError("Product not found!", err)
		}
		return Record{}, fmt.Errorf("get record: %w", err)
	}
	return withDerived(rec), nil
}

// Update replaces the mutable fields of a record, recomputing the derived
// values from the submitted category, rate, and quantity.
func (s *Service) Update(ctx context.Context, productID string, in Input) (rec Record, err error) {
	defer func() { obs.ObserveStockOp("update", err) }()

	in.ProductID = strings.TrimSpace(productID)
	f, err := s.parseInput(in)
	if err != nil {
		return Record{}, err
	}
	rec, err = s.store.UpdateByProductID(ctx, f.productID, f.toRecord())
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Record{}, common.NotFoundError("Product not found!", err)
		}
		return Record{}, fmt.Errorf("update record: %w", err)
	}
	obs.ObserveDiscount(rec.Category, pricing.DiscountPercent(rec.Category))
	s.invalidateList(ctx)
	return withDerived(rec), nil
}

// Delete removes a record by its business key.
func (s *Service) Delete(ctx context.Context, productID string) (err error) {
	defer func() { obs.ObserveStockOp("delete", err) }()

	productID = strings.TrimSpace(productID)
	if productID == "" {
		return common.ValidationError("productId is required", nil)
	}
	if err = s.store.DeleteByProductID(ctx, productID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return common.NotFoundError("Product not found!", err)
		}
		return fmt.Errorf("delete record: %w", err)
	}
	s.invalidateList(ctx)
	return nil
}

// fields is an Input after validation, parsing, and normalization.
type fields struct {
	productID   string
	productName string
	category    string
	quantity    int
	rate        float64
	location    string
}

func (f fields) toRecord() Record {
	q := pricing.Compute(f.rate, f.quantity, pricing.DiscountPercent(f.category))
	return Record{
		ProductID:   f.productID,
		ProductName: f.productName,
		Category:    f.category,
		Quantity:    f.quantity,
		Rate:        f.rate,
		Location:    f.location,
		Price:       q.Price,
		TotalAmount: q.TotalAmount,
	}
}

func (s *Service) parseInput(in Input) (fields, error) {
	in.ProductID = strings.TrimSpace(in.ProductID)
	in.ProductName = strings.TrimSpace(in.ProductName)
	in.Category = strings.TrimSpace(in.Category)
	in.Quantity = strings.TrimSpace(in.Quantity)
	in.Rate = strings.TrimSpace(in.Rate)
	in.Location = strings.TrimSpace(in.Location)

	if err := s.validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fields{}, common.ValidationError(fieldLabel(verrs[0].Field())+" is required", err)
		}
		return fields{}, common.ValidationError("invalid input", err)
	}

	quantity, err := strconv.Atoi(in.Quantity)
	if err != nil {
		return fields{}, common.ValidationError("quantity must be a whole number", err)
	}
	if quantity < 0 {
		return fields{}, common.ValidationError("quantity cannot be negative", nil)
	}
	rate, err := strconv.ParseFloat(in.Rate, 64)
	if err != nil {
		return fields{}, common.ValidationError("rate must be a number", err)
	}
	if rate < 0 {
		return fields{}, common.ValidationError("rate cannot be negative", nil)
	}

	return fields{
		productID:   in.ProductID,
		productName: in.ProductName,
		category:    pricing.NormalizeCategory(in.Category),
		quantity:    quantity,
		rate:        rate,
		location:    in.Location,
	}, nil
}

// withDerived fills the non-persisted DiscountAmount from the stored
// category and price, matching the calculator exactly so reads stay
// idempotent.
func withDerived(rec Record) Record {
	rec.DiscountAmount = rec.Price * float64(pricing.DiscountPercent(rec.Category)) / 100
	return rec
}

func (s *Service) invalidateList(ctx context.Context) {
	_ = s.cache.Del(ctx, stockListKey)
}

// fieldLabel maps struct field names onto the wire names the client sent.
func fieldLabel(name string) string {
	switch name {
	case "ProductID":
		return "productId"
	case "ProductName":
		return "productName"
	}
	if name == "" {
		return name
	}
	runes := []rune(name)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}
