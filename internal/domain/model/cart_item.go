package model

import "time"

// カートの明細。(user_id, product_id)で一意。
// 同じ商品を追加した場合は行を増やさず数量を加算する。
type CartItem struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"cart_id"`
	UserID    int64     `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"user_id"`
	ProductID int64     `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"product_id"`
	Quantity  int64     `gorm:"not null" json:"quantity"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

func (CartItem) TableName() string {
	return "cart"
}

// 注文確定時に読むカートのスナップショット1行。
// unit_priceはその時点のproducts.price。商品が消えている場合は0のまま。
type CartSnapshotLine struct {
	CartItemID int64 `json:"cart_id"`
	ProductID  int64 `json:"product_id"`
	Quantity   int64 `json:"quantity"`
	UnitPrice  int64 `json:"unit_price"`
}
