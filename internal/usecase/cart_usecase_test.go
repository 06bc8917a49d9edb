package usecase

import (
	"context"
	"net/http"
	"testing"

	"markethub/internal/domain/model"
	repo "markethub/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCartTestDeps() (*CartUsecase, *CartRepoMock, *ProductRepoMock) {
	carts := &CartRepoMock{}
	products := &ProductRepoMock{}
	return NewCartUsecase(carts, products), carts, products
}

func TestAddToCart_Success(t *testing.T) {
	uc, carts, products := newCartTestDeps()

	products.On("FindByID", mock.Anything, int64(3)).
		Return(model.Product{ID: 3, Name: "Keyboard", Price: 1000, StockQuantity: 5}, nil)

	//1回目のスナップショットは在庫チェック、2回目は返却用
	carts.On("SnapshotByUserID", mock.Anything, int64(1)).
		Return([]model.CartSnapshotLine{}, nil).Once()
	carts.On("UpsertByUserAndProduct", mock.Anything, int64(1), int64(3), int64(2)).Return(nil)
	carts.On("SnapshotByUserID", mock.Anything, int64(1)).
		Return([]model.CartSnapshotLine{
			{CartItemID: 20, ProductID: 3, Quantity: 2, UnitPrice: 1000},
		}, nil)

	out, err := uc.AddToCart(context.Background(), 1, AddCartInput{ProductID: 3, Quantity: 2})

	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, int64(2000), out.Items[0].Subtotal)
	assert.Equal(t, int64(2000), out.Total)
}

func TestAddToCart_StockExceeded(t *testing.T) {
	uc, carts, products := newCartTestDeps()

	products.On("FindByID", mock.Anything, int64(3)).
		Return(model.Product{ID: 3, Price: 1000, StockQuantity: 3}, nil)

	//既に2個入っている
	carts.On("SnapshotByUserID", mock.Anything, int64(1)).
		Return([]model.CartSnapshotLine{
			{CartItemID: 20, ProductID: 3, Quantity: 2, UnitPrice: 1000},
		}, nil)

	_, err := uc.AddToCart(context.Background(), 1, AddCartInput{ProductID: 3, Quantity: 2})

	he, ok := AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
	carts.AssertNotCalled(t, "UpsertByUserAndProduct", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAddToCart_ProductNotFound(t *testing.T) {
	uc, _, products := newCartTestDeps()

	products.On("FindByID", mock.Anything, int64(99)).
		Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.AddToCart(context.Background(), 1, AddCartInput{ProductID: 99, Quantity: 1})

	he, ok := AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)
}

func TestUpdateCartItem_NotInCart(t *testing.T) {
	uc, carts, products := newCartTestDeps()

	products.On("FindByID", mock.Anything, int64(3)).
		Return(model.Product{ID: 3, Price: 1000, StockQuantity: 10}, nil)
	carts.On("UpdateQuantity", mock.Anything, int64(1), int64(3), int64(4)).
		Return(repo.ErrNotFound)

	_, err := uc.UpdateCartItem(context.Background(), 1, 3, 4)

	he, ok := AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)
}

func TestGetCart_SkipsDeletedProducts(t *testing.T) {
	uc, carts, products := newCartTestDeps()

	carts.On("SnapshotByUserID", mock.Anything, int64(1)).
		Return([]model.CartSnapshotLine{
			{CartItemID: 20, ProductID: 3, Quantity: 2, UnitPrice: 1000},
			{CartItemID: 21, ProductID: 9, Quantity: 1, UnitPrice: 0},
		}, nil)
	products.On("FindByID", mock.Anything, int64(3)).
		Return(model.Product{ID: 3, Name: "Keyboard", Price: 1000}, nil)
	products.On("FindByID", mock.Anything, int64(9)).
		Return(model.Product{}, repo.ErrNotFound)

	out, err := uc.GetCart(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, int64(3), out.Items[0].ProductID)
	assert.Equal(t, int64(2000), out.Total)
}
