// Package itemrepo provides read access to the item catalog table backing
// order line enrichment.
package itemrepo

import (
	"orderservice/internal/core/domain/model/item"
)

// ItemDTO represents the database structure for catalog items.
type ItemDTO struct {
	ID    int64   `gorm:"primaryKey;autoIncrement"`
	Name  string  `gorm:"type:varchar(255);not null"`
	Price float64 `gorm:"type:numeric(12,2);not null"`
}

// TableName specifies the database table name for item entities.
func (ItemDTO) TableName() string {
	return "items"
}

func toDomain(dto ItemDTO) (*item.Item, error) {
	return item.NewItem(dto.ID, dto.Name, dto.Price)
}
