package usecase

import (
	"context"
	"net/http"

	repo "markethub/internal/repository"
)

type CartUsecase struct {
	cartRepo    repo.CartRepository
	productRepo repo.ProductRepository
}

func NewCartUsecase(cartRepo repo.CartRepository, productRepo repo.ProductRepository) *CartUsecase {
	return &CartUsecase{cartRepo: cartRepo, productRepo: productRepo}
}

type CartLineResponse struct {
	CartID    int64  `json:"cart_id"`
	ProductID int64  `json:"product_id"`
	Name      string `json:"product_name"`
	Price     int64  `json:"price"`
	Quantity  int64  `json:"quantity"`
	Subtotal  int64  `json:"subtotal"`
}

type CartResponse struct {
	Items []CartLineResponse `json:"items"`
	Total int64              `json:"total"`
}

type AddCartInput struct {
	ProductID int64
	Quantity  int64
}

// GetCart はカート取得。価格は常に現在のproducts.price。
func (u *CartUsecase) GetCart(ctx context.Context, userID int64) (CartResponse, error) {
	if userID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	return u.buildCartResponse(ctx, userID)
}

// AddToCart はカートに追加（同一商品は数量加算）。
func (u *CartUsecase) AddToCart(ctx context.Context, userID int64, in AddCartInput) (CartResponse, error) {
	if userID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if in.ProductID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}
	if in.Quantity < 1 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	p, err := u.productRepo.FindByID(ctx, in.ProductID)
	if err == repo.ErrNotFound {
		return CartResponse{}, NewHTTPError(http.StatusNotFound, "Product not found")
	}
	if err != nil {
		return CartResponse{}, dbError(err)
	}

	//加算後の数量が在庫を超えないかチェック
	lines, err := u.cartRepo.SnapshotByUserID(ctx, userID)
	if err != nil {
		return CartResponse{}, dbError(err)
	}

	var existingQty int64 = 0
	for _, ln := range lines {
		if ln.ProductID == in.ProductID {
			existingQty = ln.Quantity
			break
		}
	}

	if existingQty+in.Quantity > p.StockQuantity {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "stock exceeded")
	}

	if err := u.cartRepo.UpsertByUserAndProduct(ctx, userID, in.ProductID, in.Quantity); err != nil {
		return CartResponse{}, dbError(err)
	}

	return u.buildCartResponse(ctx, userID)
}

// 数量変更（在庫チェックあり）。
func (u *CartUsecase) UpdateCartItem(ctx context.Context, userID int64, productID int64, quantity int64) (CartResponse, error) {
	if userID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if productID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}
	if quantity < 1 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return CartResponse{}, NewHTTPError(http.StatusNotFound, "Product not found")
	}
	if err != nil {
		return CartResponse{}, dbError(err)
	}
	if quantity > p.StockQuantity {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "stock exceeded")
	}

	if err := u.cartRepo.UpdateQuantity(ctx, userID, productID, quantity); err != nil {
		if err == repo.ErrNotFound {
			return CartResponse{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return CartResponse{}, dbError(err)
	}

	return u.buildCartResponse(ctx, userID)
}

// 明細削除。
func (u *CartUsecase) DeleteCartItem(ctx context.Context, userID int64, productID int64) (CartResponse, error) {
	if userID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if productID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	if err := u.cartRepo.DeleteByProduct(ctx, userID, productID); err != nil {
		if err == repo.ErrNotFound {
			return CartResponse{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return CartResponse{}, dbError(err)
	}

	return u.buildCartResponse(ctx, userID)
}

// スナップショットを表示用に組み立てる。
// 商品名のためにproductsを引く。消えた商品の行は表示から外す。
func (u *CartUsecase) buildCartResponse(ctx context.Context, userID int64) (CartResponse, error) {
	lines, err := u.cartRepo.SnapshotByUserID(ctx, userID)
	if err != nil {
		return CartResponse{}, dbError(err)
	}

	respItems := make([]CartLineResponse, 0, len(lines))
	var total int64 = 0

	for _, ln := range lines {
		p, err := u.productRepo.FindByID(ctx, ln.ProductID)
		if err == repo.ErrNotFound {
			continue
		}
		if err != nil {
			return CartResponse{}, dbError(err)
		}

		subtotal := ln.UnitPrice * ln.Quantity
		respItems = append(respItems, CartLineResponse{
			CartID:    ln.CartItemID,
			ProductID: ln.ProductID,
			Name:      p.Name,
			Price:     ln.UnitPrice,
			Quantity:  ln.Quantity,
			Subtotal:  subtotal,
		})
		total += subtotal
	}

	return CartResponse{Items: respItems, Total: total}, nil
}
