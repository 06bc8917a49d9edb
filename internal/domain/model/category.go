package model

type Category struct {
	ID   int64  `gorm:"primaryKey;autoIncrement" json:"category_id"`
	Name string `gorm:"type:varchar(255);not null" json:"category_name"`
}

func (Category) TableName() string {
	return "category"
}
