package repository

import (
	"context"
	"testing"

	"markethub/internal/domain/model"
	repo "markethub/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecreaseStockIfEnough(t *testing.T) {
	db := newTestDB(t)
	r := NewInventoryGormRepository(db)
	ctx := context.Background()

	p := seedProduct(t, db, model.Product{Name: "Keyboard", Price: 1000, StockQuantity: 5})

	//足りる場合は減る
	ok, err := r.DecreaseStockIfEnough(ctx, p.ID, 3)
	require.NoError(t, err)
	assert.True(t, ok)

	var got model.Product
	require.NoError(t, db.First(&got, p.ID).Error)
	assert.Equal(t, int64(2), got.StockQuantity)

	//足りない場合はfalseで、在庫は変わらない
	ok, err = r.DecreaseStockIfEnough(ctx, p.ID, 3)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, db.First(&got, p.ID).Error)
	assert.Equal(t, int64(2), got.StockQuantity)

	//ちょうど全部は引ける
	ok, err = r.DecreaseStockIfEnough(ctx, p.ID, 2)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, db.First(&got, p.ID).Error)
	assert.Equal(t, int64(0), got.StockQuantity)
}

func TestDecreaseStockIfEnough_MissingProduct(t *testing.T) {
	db := newTestDB(t)
	r := NewInventoryGormRepository(db)

	ok, err := r.DecreaseStockIfEnough(context.Background(), 999, 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSetStockAndAdjustment(t *testing.T) {
	db := newTestDB(t)
	r := NewInventoryGormRepository(db)
	ctx := context.Background()

	p := seedProduct(t, db, model.Product{Name: "Mouse", Price: 500, StockQuantity: 2})

	require.NoError(t, r.SetStock(ctx, p.ID, 10))

	var got model.Product
	require.NoError(t, db.First(&got, p.ID).Error)
	assert.Equal(t, int64(10), got.StockQuantity)

	//存在しない商品はErrNotFound
	err := r.SetStock(ctx, 999, 1)
	assert.ErrorIs(t, err, repo.ErrNotFound)

	require.NoError(t, r.CreateAdjustment(ctx, model.InventoryAdjustment{
		ProductID:   p.ID,
		AdminUserID: 1,
		Delta:       8,
		Reason:      "restock",
	}))

	var count int64
	require.NoError(t, db.Model(&model.InventoryAdjustment{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
