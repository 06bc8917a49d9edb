package model

import "time"

type OrderStatus string

const (
	OrderStatusPending  OrderStatus = "PENDING"
	OrderStatusPaid     OrderStatus = "PAID"
	OrderStatusShipped  OrderStatus = "SHIPPED"
	OrderStatusCanceled OrderStatus = "CANCELED"
)

type Order struct {
	ID int64 `gorm:"primaryKey;autoIncrement" json:"order_id"`

	//外部向けの注文番号（UUID）
	Number string `gorm:"type:varchar(64);uniqueIndex;not null" json:"order_number"`

	UserID     int64       `gorm:"not null;index" json:"user_id"`
	OrderDate  time.Time   `gorm:"column:order_date;not null" json:"order_date"`
	Status     OrderStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	TotalPrice int64       `gorm:"not null" json:"total_price"`
	CreatedAt  time.Time   `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time   `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
