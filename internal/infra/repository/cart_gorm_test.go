package repository

import (
	"context"
	"testing"

	"markethub/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotByUserID_OrderAndJoin(t *testing.T) {
	db := newTestDB(t)
	r := NewCartGormRepository(db)
	ctx := context.Background()

	p1 := seedProduct(t, db, model.Product{Name: "Keyboard", Price: 1000, StockQuantity: 5})
	p2 := seedProduct(t, db, model.Product{Name: "Mouse", Price: 500, StockQuantity: 1})

	//product_idの逆順で追加しても昇順で返ること
	require.NoError(t, r.UpsertByUserAndProduct(ctx, 1, p2.ID, 1))
	require.NoError(t, r.UpsertByUserAndProduct(ctx, 1, p1.ID, 2))

	lines, err := r.SnapshotByUserID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, lines, 2)

	assert.Equal(t, p1.ID, lines[0].ProductID)
	assert.Equal(t, int64(2), lines[0].Quantity)
	assert.Equal(t, int64(1000), lines[0].UnitPrice)
	assert.Equal(t, p2.ID, lines[1].ProductID)
	assert.Equal(t, int64(500), lines[1].UnitPrice)
}

func TestSnapshotByUserID_KeepsLineForDeletedProduct(t *testing.T) {
	db := newTestDB(t)
	r := NewCartGormRepository(db)
	ctx := context.Background()

	p := seedProduct(t, db, model.Product{Name: "Keyboard", Price: 1000, StockQuantity: 5})
	require.NoError(t, r.UpsertByUserAndProduct(ctx, 1, p.ID, 1))

	//商品が消えても行は残り、unit_priceは0になる
	require.NoError(t, db.Delete(&model.Product{}, p.ID).Error)

	lines, err := r.SnapshotByUserID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, int64(0), lines[0].UnitPrice)
}

func TestUpsertByUserAndProduct_Increments(t *testing.T) {
	db := newTestDB(t)
	r := NewCartGormRepository(db)
	ctx := context.Background()

	p := seedProduct(t, db, model.Product{Name: "Keyboard", Price: 1000, StockQuantity: 5})

	require.NoError(t, r.UpsertByUserAndProduct(ctx, 1, p.ID, 2))
	require.NoError(t, r.UpsertByUserAndProduct(ctx, 1, p.ID, 3))

	lines, err := r.SnapshotByUserID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, int64(5), lines[0].Quantity)

	//行は増えない
	var count int64
	require.NoError(t, db.Model(&model.CartItem{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestDeleteByIDs_Scoping(t *testing.T) {
	db := newTestDB(t)
	r := NewCartGormRepository(db)
	ctx := context.Background()

	p1 := seedProduct(t, db, model.Product{Name: "Keyboard", Price: 1000, StockQuantity: 5})
	p2 := seedProduct(t, db, model.Product{Name: "Mouse", Price: 500, StockQuantity: 5})

	require.NoError(t, r.UpsertByUserAndProduct(ctx, 1, p1.ID, 1))
	require.NoError(t, r.UpsertByUserAndProduct(ctx, 2, p1.ID, 1)) //他人の行

	lines, err := r.SnapshotByUserID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, lines, 1)

	//スナップショット後に追加された行は消えない
	require.NoError(t, r.UpsertByUserAndProduct(ctx, 1, p2.ID, 1))

	deleted, err := r.DeleteByIDs(ctx, 1, []int64{lines[0].CartItemID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	//user 1 にはp2の行だけ残る
	after, err := r.SnapshotByUserID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, after, 1)
	assert.Equal(t, p2.ID, after[0].ProductID)

	//他人の行は無傷
	other, err := r.SnapshotByUserID(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, other, 1)

	//他人のidを指定しても消えない
	deleted, err = r.DeleteByIDs(ctx, 1, []int64{other[0].CartItemID})
	require.NoError(t, err)
	assert.Equal(t, int64(0), deleted)
}
