// Package stockrepo persists stock items with gorm.
package stockrepo

import (
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/stock"

	"github.com/google/uuid"
)

// StockItemDTO is a row of stock_items. A seller has at most one line per name.
type StockItemDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	SellerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_stock_seller_name"`
	Name     string    `gorm:"not null;uniqueIndex:idx_stock_seller_name"`
	Quantity int       `gorm:"not null"`
	Approved bool      `gorm:"not null;default:false"`
}

func (StockItemDTO) TableName() string {
	return "stock_items"
}

func fromDomain(i *stock.Item) StockItemDTO {
	return StockItemDTO{
		ID:       i.ID().Bytes(),
		SellerID: i.Seller().Bytes(),
		Name:     i.Name(),
		Quantity: i.Quantity(),
		Approved: i.IsApproved(),
	}
}

func toDomain(dto StockItemDTO) (*stock.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	seller, err := kernel.UUIDFromBytes(dto.SellerID[:])
	if err != nil {
		return nil, err
	}

	return stock.RestoreItem(id, seller, dto.Name, dto.Quantity, dto.Approved)
}
