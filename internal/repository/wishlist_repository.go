package repository

import (
	"context"

	"markethub/internal/domain/model"
)

type WishlistRepository interface {
	Add(ctx context.Context, item model.WishlistItem) error
	// productsとjoinした表示用の一覧
	ListByUserID(ctx context.Context, userID int64) ([]model.WishlistEntry, error)
	FindByID(ctx context.Context, wishlistID int64) (model.WishlistItem, error)
	DeleteByID(ctx context.Context, userID int64, wishlistID int64) error
	ExistsByUserAndProduct(ctx context.Context, userID int64, productID int64) (bool, error)
}
