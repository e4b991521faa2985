package entity

import (
	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusPlaced    OrderStatus = "placed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPlaced:  {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped: {OrderStatusDelivered, OrderStatusCancelled},
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPlaced, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether next is reachable from s in one step.
// Delivered and cancelled are terminal.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Order is never deleted; only OrderStatus changes after placement.
type Order struct {
	Base
	OrderNumber string      `db:"order_number"`
	UserID      uuid.UUID   `db:"user_id"`
	Products    []LineItem  `db:"products"`
	Total       float64     `db:"total"`
	Tax         float64     `db:"tax"`
	GrandTotal  float64     `db:"grand_total"`
	PaymentType string      `db:"payment_type"`
	OrderStatus OrderStatus `db:"order_status"`
}
