package http

import (
	"time"

	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/order"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	// Available is set on out of stock rejections.
	Available *int `json:"available,omitempty"`
}

type Created struct {
	Id openapi_types.UUID `json:"id"`
}

type NewUser struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

type User struct {
	Id       openapi_types.UUID `json:"id"`
	Name     string             `json:"name"`
	Role     string             `json:"role"`
	Approved bool               `json:"approved"`
}

type NewStockItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// NewOrder is the order creation body. SellerId is required when an admin
// creates the order; sellers may omit it.
type NewOrder struct {
	SellerId      *openapi_types.UUID `json:"seller_id,omitempty"`
	CustomerName  string              `json:"customer_name"`
	CustomerPhone string              `json:"customer_phone"`
	Street        string              `json:"street"`
	City          string              `json:"city"`
	LocationUrl   string              `json:"location_url,omitempty"`
	Item          string              `json:"item"`
	Quantity      int                 `json:"quantity"`
	Comment       string              `json:"comment,omitempty"`
}

type Order struct {
	Id            openapi_types.UUID  `json:"id"`
	SellerId      openapi_types.UUID  `json:"seller_id"`
	DriverId      *openapi_types.UUID `json:"driver_id,omitempty"`
	Status        string              `json:"status"`
	CustomerName  string              `json:"customer_name"`
	CustomerPhone string              `json:"customer_phone"`
	Street        string              `json:"street"`
	City          string              `json:"city"`
	LocationUrl   string              `json:"location_url,omitempty"`
	Item          string              `json:"item"`
	Quantity      int                 `json:"quantity"`
	Comment       string              `json:"comment,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

type OrderWithTransitions struct {
	Order              Order    `json:"order"`
	AllowedTransitions []string `json:"allowed_transitions"`
}

// Dashboard carries the (optionally filtered) list and the counts over the
// unfiltered scope, keyed by every status name.
type Dashboard struct {
	Orders []Order        `json:"orders"`
	Counts map[string]int `json:"counts"`
	Total  int            `json:"total"`
}

type TransitionRequest struct {
	To             string              `json:"to"`
	DriverId       *openapi_types.UUID `json:"driver_id,omitempty"`
	ExpectedStatus *string             `json:"expected_status,omitempty"`
}

func toOrder(v queries.OrderView) Order {
	out := Order{
		Id:            v.ID.Bytes(),
		SellerId:      v.Seller.Bytes(),
		Status:        v.Status.String(),
		CustomerName:  v.Details.CustomerName,
		CustomerPhone: v.Details.CustomerPhone,
		Street:        v.Details.Street,
		City:          v.Details.City,
		LocationUrl:   v.Details.LocationURL,
		Item:          v.Details.Item,
		Quantity:      v.Details.Quantity,
		Comment:       v.Details.Comment,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
	if v.Driver != nil {
		driver := v.Driver.Bytes()
		out.DriverId = &driver
	}
	return out
}

func toUser(v queries.UserView) User {
	return User{
		Id:       v.ID.Bytes(),
		Name:     v.Name,
		Role:     v.Role.String(),
		Approved: v.Approved,
	}
}

func toDashboard(r queries.GetDashboardQueryResponse) Dashboard {
	orders := make([]Order, len(r.Orders))
	for i, v := range r.Orders {
		orders[i] = toOrder(v)
	}
	return Dashboard{
		Orders: orders,
		Counts: r.Counts.ByName(),
		Total:  r.Counts.Total(),
	}
}

func statusNames(statuses []order.Status) []string {
	names := make([]string, len(statuses))
	for i, s := range statuses {
		names[i] = s.String()
	}
	return names
}

func (o NewOrder) details() order.Details {
	return order.Details{
		CustomerName:  o.CustomerName,
		CustomerPhone: o.CustomerPhone,
		Street:        o.Street,
		City:          o.City,
		LocationURL:   o.LocationUrl,
		Item:          o.Item,
		Quantity:      o.Quantity,
		Comment:       o.Comment,
	}
}
