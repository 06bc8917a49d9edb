package repository

import (
	"context"
	"errors"

	"markethub/internal/domain/model"
	repo "markethub/internal/repository"

	"gorm.io/gorm"
)

type WishlistGormRepository struct {
	db *gorm.DB
}

func NewWishlistGormRepository(db *gorm.DB) *WishlistGormRepository {
	return &WishlistGormRepository{db: db}
}

func (r *WishlistGormRepository) Add(ctx context.Context, item model.WishlistItem) error {
	return r.db.WithContext(ctx).Create(&item).Error
}

// productsとjoinした表示用の一覧
func (r *WishlistGormRepository) ListByUserID(ctx context.Context, userID int64) ([]model.WishlistEntry, error) {
	var entries []model.WishlistEntry

	err := r.db.WithContext(ctx).
		Table("wishlist").
		Select("wishlist.id AS wishlist_id, products.id AS product_id, products.name AS name, products.description AS description, products.price AS price").
		Joins("JOIN products ON products.id = wishlist.product_id").
		Where("wishlist.user_id = ?", userID).
		Order("wishlist.id asc").
		Scan(&entries).Error

	if err != nil {
		return []model.WishlistEntry{}, err
	}
	return entries, nil
}

func (r *WishlistGormRepository) FindByID(ctx context.Context, wishlistID int64) (model.WishlistItem, error) {
	var item model.WishlistItem
	err := r.db.WithContext(ctx).Where("id = ?", wishlistID).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.WishlistItem{}, repo.ErrNotFound
	}
	if err != nil {
		return model.WishlistItem{}, err
	}
	return item, nil
}

// 所有者で絞って削除。他人のwishlistは消せない。
func (r *WishlistGormRepository) DeleteByID(ctx context.Context, userID int64, wishlistID int64) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", wishlistID, userID).
		Delete(&model.WishlistItem{})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *WishlistGormRepository) ExistsByUserAndProduct(ctx context.Context, userID int64, productID int64) (bool, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&model.WishlistItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error

	if err != nil {
		return false, err
	}
	return count > 0, nil
}
