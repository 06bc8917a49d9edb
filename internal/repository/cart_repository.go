package repository

import (
	"context"

	"markethub/internal/domain/model"
)

type CartRepository interface {
	// カート行をproducts.priceと結合して返す。product_id昇順。
	// トランザクション内で呼べば、その分離レベルでの読み取りになる。
	SnapshotByUserID(ctx context.Context, userID int64) ([]model.CartSnapshotLine, error)

	// 同一商品はプラス
	UpsertByUserAndProduct(ctx context.Context, userID int64, productID int64, addQty int64) error

	UpdateQuantity(ctx context.Context, userID int64, productID int64, qty int64) error
	DeleteByProduct(ctx context.Context, userID int64, productID int64) error

	// スナップショットに含まれていた行だけを消す。
	// 戻り値は実際に消えた件数。呼び出し側が期待件数と比較する。
	DeleteByIDs(ctx context.Context, userID int64, ids []int64) (int64, error)
}
