// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling the conversion between domain entities and database
// representations.
package orderrepo

import (
	"sort"
	"time"

	"orderservice/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID           int64          `gorm:"primaryKey;autoIncrement"`
	UserID       int64          `gorm:"column:user_id;not null;index"`
	Status       string         `gorm:"type:varchar(20);not null;index"`
	CreationDate time.Time      `gorm:"column:creation_date;type:date;not null"`
	Items        []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one persisted line item. Position preserves the
// submission order of the item list across reloads; the reconciliation
// identity remains the referenced catalog item.
type OrderItemDTO struct {
	ID       int64 `gorm:"primaryKey;autoIncrement"`
	OrderID  int64 `gorm:"column:order_id;not null;index"`
	ItemID   int64 `gorm:"column:item_id;not null"`
	Quantity int   `gorm:"not null"`
	Position int   `gorm:"not null"`
}

// TableName specifies the database table name for order item entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
// Item positions are assigned from the aggregate's list order.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for i, it := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			ID:       it.ID(),
			OrderID:  aggregate.ID(),
			ItemID:   it.ItemID(),
			Quantity: it.Quantity(),
			Position: i,
		})
	}

	return OrderDTO{
		ID:           aggregate.ID(),
		UserID:       aggregate.UserID(),
		Status:       string(aggregate.Status()),
		CreationDate: aggregate.CreationDate(),
		Items:        items,
	}
}

// toDomain converts a database DTO to an order aggregate, restoring the item
// list in submission order.
func toDomain(dto OrderDTO) (*order.Order, error) {
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	rows := make([]OrderItemDTO, len(dto.Items))
	copy(rows, dto.Items)
	sort.Slice(rows, func(i, j int) bool { return rows[i].Position < rows[j].Position })

	items := make([]*order.OrderItem, 0, len(rows))
	for _, row := range rows {
		restored, itemErr := order.RestoreOrderItem(row.ID, row.OrderID, row.ItemID, row.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, restored)
	}

	return order.RestoreOrder(dto.ID, dto.UserID, status, dto.CreationDate, items)
}
