package orderrepo

import (
	"context"
	"errors"
	"strconv"

	"orderservice/internal/core/domain/model/order"
	"orderservice/internal/core/ports"
	"orderservice/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository bound to the
// given connection or transaction.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order and its items to the database and returns the saved
// aggregate carrying the store-assigned identifiers.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) (*order.Order, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return nil, err
	}

	return toDomain(dto)
}

// Update saves an existing order with full-replace item semantics: the rows
// of retained items are updated in place, rows absent from the aggregate are
// removed, new items are inserted. Returns the reloaded aggregate.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) (*order.Order, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{"status": dto.Status})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, errs.NewObjectNotFoundError("order", strconv.FormatInt(dto.ID, 10))
	}

	keep := make([]int64, 0, len(dto.Items))
	for _, it := range dto.Items {
		keep = append(keep, it.ItemID)
	}

	drop := db.Where("order_id = ?", dto.ID)
	if len(keep) > 0 {
		drop = drop.Where("item_id NOT IN ?", keep)
	}
	if err := drop.Delete(&OrderItemDTO{}).Error; err != nil {
		return nil, err
	}

	for i := range dto.Items {
		it := &dto.Items[i]
		it.OrderID = dto.ID

		if it.ID != 0 {
			if err := db.Model(&OrderItemDTO{}).
				Where("id = ?", it.ID).
				Updates(map[string]any{"quantity": it.Quantity, "position": it.Position}).Error; err != nil {
				return nil, err
			}
			continue
		}

		if err := db.Create(it).Error; err != nil {
			return nil, err
		}
	}

	return r.GetWithItems(ctx, dto.ID)
}

// Get retrieves an order by ID, without its items.
func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", strconv.FormatInt(id, 10))
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetWithItems retrieves an order by ID with its item list eagerly populated.
func (r *GormOrderRepository) GetWithItems(ctx context.Context, id int64) (*order.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("order_items.position") }).
		First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", strconv.FormatInt(id, 10))
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes an order and its items.
func (r *GormOrderRepository) Delete(ctx context.Context, id int64) error {
	db := r.db.WithContext(ctx)

	if err := db.Where("order_id = ?", id).Delete(&OrderItemDTO{}).Error; err != nil {
		return err
	}

	result := db.Delete(&OrderDTO{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", strconv.FormatInt(id, 10))
	}

	return nil
}

// FindPage retrieves one page of orders matching the filter, translating its
// clauses into SQL IN-conditions so filtering and pagination both happen in
// the database.
func (r *GormOrderRepository) FindPage(
	ctx context.Context,
	filter order.Filter,
	page ports.PageRequest,
) (ports.Page[*order.Order], error) {
	query := r.db.WithContext(ctx).Model(&OrderDTO{})

	for _, clause := range filter.Clauses() {
		column, err := columnFor(clause.Field)
		if err != nil {
			return ports.Page[*order.Order]{}, err
		}
		query = query.Where(column+" IN ?", clause.Values)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return ports.Page[*order.Order]{}, err
	}

	var dtos []OrderDTO
	err := query.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("order_items.position") }).
		Order("id").
		Limit(page.Size()).
		Offset(page.Offset()).
		Find(&dtos).Error
	if err != nil {
		return ports.Page[*order.Order]{}, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, toErr := toDomain(dto)
		if toErr != nil {
			return ports.Page[*order.Order]{}, toErr
		}
		orders = append(orders, o)
	}

	return ports.Page[*order.Order]{
		Items:      orders,
		Total:      total,
		PageNumber: page.Page(),
		PageSize:   page.Size(),
	}, nil
}

// columnFor maps store-agnostic filter fields onto table columns.
// Unknown fields are rejected rather than interpolated.
func columnFor(field string) (string, error) {
	switch field {
	case order.FieldID:
		return "id", nil
	case order.FieldStatus:
		return "status", nil
	default:
		return "", errs.NewValueIsInvalidError("filter field " + field)
	}
}
