package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/farmfresh/inventory-api/internal/common"
	"github.com/farmfresh/inventory-api/internal/inventory"
)

func newTestService(t *testing.T, store inventory.Store) *inventory.Service {
	t.Helper()
	svc, err := inventory.NewService(inventory.ServiceConfig{Store: store})
	require.NoError(t, err)
	return svc
}

func validInput() inventory.Input {
	return inventory.Input{
		ProductID:   "P1",
		ProductName: "Apples",
		Category:    "fruits",
		Quantity:    "10",
		Rate:        "5",
		Location:    "A1",
	}
}

func TestServiceCreate(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(t, store)
	ctx := context.Background()

	rec, err := svc.Create(ctx, validInput())
	require.NoError(t, err)
	require.Equal(t, "Fruits", rec.Category)
	require.Equal(t, 50.0, rec.Price)
	require.Equal(t, 5.0, rec.DiscountAmount)
	require.Equal(t, 45.0, rec.TotalAmount)
	require.False(t, rec.CreatedAt.IsZero())

	t.Run("duplicate productId fails and keeps one record", func(t *testing.T) {
		_, err := svc.Create(ctx, validInput())
		var appErr *common.AppError
		require.ErrorAs(t, err, &appErr)
		require.Equal(t, common.CodeDuplicateKey, appErr.Code)
		require.Equal(t, 400, appErr.HTTPStatus)
		require.Equal(t, "Product ID already exists!", appErr.Message)
		require.Equal(t, 1, store.size())
	})

	t.Run("unknown category gets zero discount", func(t *testing.T) {
		in := validInput()
		in.ProductID = "P2"
		in.Category = "dairy"
		rec, err := svc.Create(ctx, in)
		require.NoError(t, err)
		require.Equal(t, "Dairy", rec.Category)
		require.Zero(t, rec.DiscountAmount)
		require.Equal(t, rec.Price, rec.TotalAmount)
	})
}

func TestServiceCreateValidation(t *testing.T) {
	svc := newTestService(t, newFakeStore())
	ctx := context.Background()

	cases := []struct {
		name    string
		mutate  func(*inventory.Input)
		message string
	}{
		{"missing productId", func(in *inventory.Input) { in.ProductID = "" }, "productId is required"},
		{"missing productName", func(in *inventory.Input) { in.ProductName = "  " }, "productName is required"},
		{"missing category", func(in *inventory.Input) { in.Category = "" }, "category is required"},
		{"missing location", func(in *inventory.Input) { in.Location = "" }, "location is required"},
		{"non-numeric quantity", func(in *inventory.Input) { in.Quantity = "ten" }, "quantity must be a whole number"},
		{"fractional quantity", func(in *inventory.Input) { in.Quantity = "1.5" }, "quantity must be a whole number"},
		{"negative quantity", func(in *inventory.Input) { in.Quantity = "-3" }, "quantity cannot be negative"},
		{"non-numeric rate", func(in *inventory.Input) { in.Rate = "cheap" }, "rate must be a number"},
		{"negative rate", func(in *inventory.Input) { in.Rate = "-1" }, "rate cannot be negative"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)
			_, err := svc.Create(ctx, in)
			var appErr *common.AppError
			require.ErrorAs(t, err, &appErr)
			require.Equal(t, common.CodeValidation, appErr.Code)
			require.Equal(t, tc.message, appErr.Message)
		})
	}
}

func TestServiceGet(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(t, store)
	ctx := context.Background()

	_, err := svc.Create(ctx, validInput())
	require.NoError(t, err)

	rec, err := svc.Get(ctx, "P1")
	require.NoError(t, err)
	require.Equal(t, "Apples", rec.ProductName)
	require.Equal(t, 5.0, rec.DiscountAmount)

	_, err = svc.Get(ctx, "missing")
	var appErr *common.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, common.CodeNotFound, appErr.Code)
	require.Equal(t, "Product not found!", appErr.Message)
}

func TestServiceUpdate(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(t, store)
	ctx := context.Background()

	_, err := svc.Create(ctx, validInput())
	require.NoError(t, err)

	rec, err := svc.Update(ctx, "P1", inventory.Input{
		ProductName: "Apples",
		Category:    "fruits",
		Quantity:    "2",
		Rate:        "100",
		Location:    "A1",
	})
	require.NoError(t, err)
	require.Equal(t, "Fruits", rec.Category)
	require.Equal(t, 200.0, rec.Price)
	require.Equal(t, 20.0, rec.DiscountAmount)
	require.Equal(t, 180.0, rec.TotalAmount)

	t.Run("missing record is an explicit not found", func(t *testing.T) {
		_, err := svc.Update(ctx, "missing", inventory.Input{
			ProductName: "Ghost",
			Category:    "fruits",
			Quantity:    "1",
			Rate:        "1",
			Location:    "Z9",
		})
		var appErr *common.AppError
		require.ErrorAs(t, err, &appErr)
		require.Equal(t, common.CodeNotFound, appErr.Code)
		require.Equal(t, 404, appErr.HTTPStatus)
		require.Equal(t, 1, store.size())
	})
}

func TestServiceDelete(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(t, store)
	ctx := context.Background()

	err := svc.Delete(ctx, "X")
	var appErr *common.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, common.CodeNotFound, appErr.Code)
	require.Zero(t, store.size())

	_, err = svc.Create(ctx, validInput())
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, "P1"))
	require.Zero(t, store.size())
}

func TestServiceLifecycle(t *testing.T) {
	svc := newTestService(t, newFakeStore())
	ctx := context.Background()

	_, err := svc.Create(ctx, inventory.Input{
		ProductID:   "P2",
		ProductName: "Apples",
		Category:    "fruits",
		Quantity:    "10",
		Rate:        "5",
		Location:    "A1",
	})
	require.NoError(t, err)

	records, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, 50.0, records[0].Price)
	require.Equal(t, 5.0, records[0].DiscountAmount)
	require.Equal(t, 45.0, records[0].TotalAmount)

	require.NoError(t, svc.Delete(ctx, "P2"))

	records, err = svc.List(ctx)
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestServiceInternalErrors(t *testing.T) {
	store := newFakeStore()
	store.failAll = true
	svc := newTestService(t, store)
	ctx := context.Background()

	_, err := svc.Create(ctx, validInput())
	require.Error(t, err)
	require.False(t, common.IsAppError(err))
	require.True(t, errors.Is(err, errStoreDown))

	_, err = svc.List(ctx)
	require.Error(t, err)
	require.False(t, common.IsAppError(err))
}
