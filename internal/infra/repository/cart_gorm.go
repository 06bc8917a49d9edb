package repository

import (
	"context"
	"errors"

	"markethub/internal/domain/model"
	repo "markethub/internal/repository"

	"gorm.io/gorm"
)

type CartGormRepository struct {
	db *gorm.DB
}

// DI
func NewCartGormRepository(db *gorm.DB) *CartGormRepository {
	return &CartGormRepository{db: db}
}

// カート行を現在価格と結合して返す。product_id昇順。
// 商品が消えた行も落とさないようLEFT JOINにする（unit_priceは0になる）。
// 在庫引当がその行をProduct not foundとして検出する。
func (r *CartGormRepository) SnapshotByUserID(ctx context.Context, userID int64) ([]model.CartSnapshotLine, error) {
	var lines []model.CartSnapshotLine

	err := r.db.WithContext(ctx).
		Table("cart").
		Select("cart.id AS cart_item_id, cart.product_id AS product_id, cart.quantity AS quantity, COALESCE(products.price, 0) AS unit_price").
		Joins("LEFT JOIN products ON products.id = cart.product_id").
		Where("cart.user_id = ?", userID).
		Order("cart.product_id asc").
		Scan(&lines).Error

	if err != nil {
		return []model.CartSnapshotLine{}, err
	}
	return lines, nil
}

// 同一商品は数量加算
func (r *CartGormRepository) UpsertByUserAndProduct(ctx context.Context, userID int64, productID int64, addQty int64) error {
	if addQty <= 0 {
		return errors.New("invalid quantity")
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//既存行はUPDATE1発で加算する（check-then-actにしない）
		res := tx.Model(&model.CartItem{}).
			Where("user_id = ? AND product_id = ?", userID, productID).
			Update("quantity", gorm.Expr("quantity + ?", addQty))

		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return nil
		}

		//無い場合は新規作成
		newItem := model.CartItem{
			UserID:    userID,
			ProductID: productID,
			Quantity:  addQty,
		}
		return tx.Create(&newItem).Error
	})
}

// 明細の数量を更新
func (r *CartGormRepository) UpdateQuantity(ctx context.Context, userID int64, productID int64, qty int64) error {
	res := r.db.WithContext(ctx).
		Model(&model.CartItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Update("quantity", qty)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 明細を削除
func (r *CartGormRepository) DeleteByProduct(ctx context.Context, userID int64, productID int64) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&model.CartItem{})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// スナップショットの行だけを消す。user_idでも絞るので他人の行は触れない。
// 消えた件数を返す。スナップショット後に追加された行はidが違うので残る。
func (r *CartGormRepository) DeleteByIDs(ctx context.Context, userID int64, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	res := r.db.WithContext(ctx).
		Where("user_id = ? AND id IN ?", userID, ids).
		Delete(&model.CartItem{})

	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
