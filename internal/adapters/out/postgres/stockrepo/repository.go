package stockrepo

import (
	"context"
	"errors"

	"orderdesk/internal/adapters/out/postgres/pgerrs"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/stock"
	"orderdesk/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStockRepository implements ports.StockRepository using gorm.
type GormStockRepository struct {
	db *gorm.DB
}

// NewGormStockRepository binds the repository to db, a transaction or the pool.
func NewGormStockRepository(db *gorm.DB) *GormStockRepository {
	return &GormStockRepository{db: db}
}

func (r *GormStockRepository) Add(ctx context.Context, aggregate *stock.Item) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerrs.IsUniqueViolation(err) {
			return errs.NewObjectAlreadyExistsErrorWithCause("stock item", aggregate.Name(), err)
		}
		return err
	}

	return nil
}

func (r *GormStockRepository) Update(ctx context.Context, aggregate *stock.Item) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&StockItemDTO{}).
		Where("id = ?", aggregate.ID().Bytes()).
		Updates(map[string]any{
			"quantity": aggregate.Quantity(),
			"approved": aggregate.IsApproved(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("stock item", aggregate.ID().String())
	}

	return nil
}

func (r *GormStockRepository) Get(ctx context.Context, id kernel.UUID) (*stock.Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto StockItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("stock item", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// FindBySellerAndName returns nil, nil when the seller has no such line;
// the stock guard turns that into its own rejection.
func (r *GormStockRepository) FindBySellerAndName(
	ctx context.Context,
	seller kernel.UUID,
	name string,
) (*stock.Item, error) {
	var dtos []StockItemDTO
	err := r.db.WithContext(ctx).
		Where("seller_id = ? AND name = ?", seller.Bytes(), stock.NormalizeName(name)).
		Limit(1).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	if len(dtos) == 0 {
		return nil, nil //nolint:nilnil
	}

	return toDomain(dtos[0])
}
