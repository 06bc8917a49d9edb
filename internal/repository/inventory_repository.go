package repository

import (
	"context"

	"markethub/internal/domain/model"
)

type InventoryRepository interface {
	// 在庫の現在値を設定（管理者操作）
	SetStock(ctx context.Context, productID int64, newStock int64) error

	// 在庫が足りるときだけ減算。
	// チェックと減算は1つの条件付きUPDATEで行い、更新件数が結果になる。
	DecreaseStockIfEnough(ctx context.Context, productID int64, qty int64) (bool, error)

	// 調整履歴作成
	CreateAdjustment(ctx context.Context, adjustment model.InventoryAdjustment) error
}
