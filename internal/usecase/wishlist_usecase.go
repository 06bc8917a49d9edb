package usecase

import (
	"context"
	"net/http"

	"markethub/internal/domain/model"
	repo "markethub/internal/repository"
)

type WishlistUsecase struct {
	wishlistRepo repo.WishlistRepository
	productRepo  repo.ProductRepository
	cartRepo     repo.CartRepository
}

func NewWishlistUsecase(
	wishlistRepo repo.WishlistRepository,
	productRepo repo.ProductRepository,
	cartRepo repo.CartRepository,
) *WishlistUsecase {
	return &WishlistUsecase{
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
		cartRepo:     cartRepo,
	}
}

func (u *WishlistUsecase) AddToWishlist(ctx context.Context, userID int64, productID int64) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	if _, err := u.productRepo.FindByID(ctx, productID); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "Product not found")
		}
		return dbError(err)
	}

	exists, err := u.wishlistRepo.ExistsByUserAndProduct(ctx, userID, productID)
	if err != nil {
		return dbError(err)
	}
	if exists {
		return NewHTTPError(http.StatusConflict, "Already in wishlist")
	}

	if err := u.wishlistRepo.Add(ctx, model.WishlistItem{
		UserID:    userID,
		ProductID: productID,
	}); err != nil {
		return dbError(err)
	}
	return nil
}

func (u *WishlistUsecase) ListWishlist(ctx context.Context, userID int64) ([]model.WishlistEntry, error) {
	if userID <= 0 {
		return []model.WishlistEntry{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	items, err := u.wishlistRepo.ListByUserID(ctx, userID)
	if err != nil {
		return []model.WishlistEntry{}, dbError(err)
	}
	return items, nil
}

// MoveToCart はwishlistの1件をカートへ移す（数量1で加算）。
func (u *WishlistUsecase) MoveToCart(ctx context.Context, userID int64, wishlistID int64) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if wishlistID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid wishlist id")
	}

	item, err := u.wishlistRepo.FindByID(ctx, wishlistID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "Wishlist item not found")
	}
	if err != nil {
		return dbError(err)
	}
	if item.UserID != userID {
		return NewHTTPError(http.StatusNotFound, "Wishlist item not found")
	}

	//商品が消えていたら移せない
	p, err := u.productRepo.FindByID(ctx, item.ProductID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "Product not found")
	}
	if err != nil {
		return dbError(err)
	}
	if p.StockQuantity < 1 {
		return NewHTTPError(http.StatusConflict, "Insufficient stock")
	}

	if err := u.cartRepo.UpsertByUserAndProduct(ctx, userID, item.ProductID, 1); err != nil {
		return dbError(err)
	}

	if err := u.wishlistRepo.DeleteByID(ctx, userID, wishlistID); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "Wishlist item not found")
		}
		return dbError(err)
	}
	return nil
}

func (u *WishlistUsecase) RemoveFromWishlist(ctx context.Context, userID int64, wishlistID int64) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if wishlistID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid wishlist id")
	}

	if err := u.wishlistRepo.DeleteByID(ctx, userID, wishlistID); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "Wishlist item not found")
		}
		return dbError(err)
	}
	return nil
}
