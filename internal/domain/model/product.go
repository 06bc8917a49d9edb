package model

import "time"

type Product struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"product_id"`
	Name        string `gorm:"type:varchar(255);not null" json:"product_name"`
	Description string `gorm:"type:text" json:"description"`
	//最小通貨単位で保存（1000 = 10.00）
	Price int64 `gorm:"not null" json:"price"`

	//在庫数。注文確定以外では減らさない。負になってはいけない。
	StockQuantity int64 `gorm:"column:stock_quantity;not null" json:"stock_quantity"`

	CategoryID int64     `gorm:"index" json:"category_id"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
