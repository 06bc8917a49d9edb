package model

import "time"

// (user_id, product_id)で一意。重複追加はエラー。
type WishlistItem struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"wishlist_id"`
	UserID    int64     `gorm:"not null;uniqueIndex:idx_wishlist_user_product" json:"user_id"`
	ProductID int64     `gorm:"not null;uniqueIndex:idx_wishlist_user_product" json:"product_id"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (WishlistItem) TableName() string {
	return "wishlist"
}

// wishlist一覧の表示用（products と join した結果）。
type WishlistEntry struct {
	WishlistID  int64  `json:"wishlist_id"`
	ProductID   int64  `json:"product_id"`
	Name        string `json:"product_name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
}
