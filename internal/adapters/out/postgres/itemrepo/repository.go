package itemrepo

import (
	"context"
	"errors"
	"strconv"

	"orderservice/internal/core/domain/model/item"
	"orderservice/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormItemRepository implements ports.ItemCatalog using GORM.
type GormItemRepository struct {
	db *gorm.DB
}

// NewGormItemRepository creates a new GORM item repository bound to the
// given connection or transaction.
func NewGormItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

// FindByID retrieves a catalog item by its identifier.
func (r *GormItemRepository) FindByID(ctx context.Context, id int64) (*item.Item, error) {
	var dto ItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("item", strconv.FormatInt(id, 10))
		}
		return nil, err
	}

	return toDomain(dto)
}
