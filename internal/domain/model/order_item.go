package model

import "time"

// 注文明細。作成後は変更しない。
// subtotal = quantity × unit_price（注文時点の価格）。
type OrderItem struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"order_item_id"`
	OrderID   int64     `gorm:"not null;index" json:"order_id"`
	ProductID int64     `gorm:"not null;index" json:"product_id"`
	Quantity  int64     `gorm:"not null" json:"quantity"`
	UnitPrice int64     `gorm:"column:unit_price;not null" json:"unit_price"`
	Subtotal  int64     `gorm:"not null" json:"subtotal"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
