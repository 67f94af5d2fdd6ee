package models

import "time"

// OrderItem is one line of an order snapshot. Price is the undiscounted unit
// price of the product at submission time.
type OrderItem struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// Order is a transient checkout snapshot handed to the notifier. The system
// keeps no durable order history.
type Order struct {
	Items        []OrderItem `json:"items"`
	CustomerName string      `json:"customer_name"`
	Phone        string      `json:"phone"`
	Email        string      `json:"email,omitempty"`
	Address      string      `json:"address,omitempty"`
	Notes        string      `json:"notes,omitempty"`
	Total        float64     `json:"total"`
	CreatedAt    time.Time   `json:"created_at"`
}

type CheckoutRequest struct {
	CustomerName string `json:"customer_name" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	Notes        string `json:"notes"`
}

// BuildOrder assembles an order snapshot from materialized cart items.
//
// Line prices and the total deliberately use the undiscounted product price;
// the cart view shows a discount-aware total. The storefront has always
// behaved this way, so the mismatch is kept rather than changed underneath
// existing orders (see DESIGN.md).
func BuildOrder(items []CartItem, req CheckoutRequest) Order {
	orderItems := make([]OrderItem, 0, len(items))
	var total float64
	for _, item := range items {
		orderItems = append(orderItems, OrderItem{
			ProductID:   item.Product.ID,
			ProductName: item.Product.Name,
			Quantity:    item.Quantity,
			Price:       item.Product.Price,
		})
		total += item.Product.Price * float64(item.Quantity)
	}

	return Order{
		Items:        orderItems,
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		Email:        req.Email,
		Address:      req.Address,
		Notes:        req.Notes,
		Total:        total,
		CreatedAt:    time.Now().UTC(),
	}
}
