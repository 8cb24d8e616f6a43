// Package orderrepo persists order aggregates with gorm.
package orderrepo

import (
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the row layout of the orders table. Status is stored by its
// wire name so the table stays readable and enum reordering is harmless.
type OrderDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	SellerID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	DriverID      *uuid.UUID `gorm:"type:uuid;index"`
	Status        string     `gorm:"type:varchar(16);not null;index"`
	CustomerName  string     `gorm:"not null"`
	CustomerPhone string     `gorm:"not null"`
	Street        string     `gorm:"not null"`
	City          string     `gorm:"not null"`
	LocationURL   string
	Item          string `gorm:"not null"`
	Quantity      int    `gorm:"not null"`
	Comment       string
	CreatedAt     time.Time `gorm:"not null;autoCreateTime:false"`
	UpdatedAt     time.Time `gorm:"not null;autoUpdateTime:false"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	var driverID *uuid.UUID
	if id := o.Driver(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	d := o.Details()
	return OrderDTO{
		ID:            o.ID().Bytes(),
		SellerID:      o.Seller().Bytes(),
		DriverID:      driverID,
		Status:        o.Status().String(),
		CustomerName:  d.CustomerName,
		CustomerPhone: d.CustomerPhone,
		Street:        d.Street,
		City:          d.City,
		LocationURL:   d.LocationURL,
		Item:          d.Item,
		Quantity:      d.Quantity,
		Comment:       d.Comment,
		CreatedAt:     o.CreatedAt(),
		UpdatedAt:     o.UpdatedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	seller, err := kernel.UUIDFromBytes(dto.SellerID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &dID
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, seller, order.Details{
		CustomerName:  dto.CustomerName,
		CustomerPhone: dto.CustomerPhone,
		Street:        dto.Street,
		City:          dto.City,
		LocationURL:   dto.LocationURL,
		Item:          dto.Item,
		Quantity:      dto.Quantity,
		Comment:       dto.Comment,
	}, status, driverID, dto.CreatedAt.UTC(), dto.UpdatedAt.UTC())
}
