package models

import "time"

type ShopItem struct {
	ID    string  `json:"-"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// OrderLine is a snapshot of a shop item at checkout.
type OrderLine struct {
	ItemID   string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Order is an immutable checkout record.
type Order struct {
	ID           string      `json:"-"`
	Username     string      `json:"username"`
	CustomerName string      `json:"customerName"`
	Items        []OrderLine `json:"items"`
	Total        float64     `json:"total"`
	CreatedAt    time.Time   `json:"createdAt"`
}

// CartLine is one entry of a customer's cart.
type CartLine struct {
	ItemID   string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// WorkingDay is an admin-controlled "are we open" toggle keyed by label.
type WorkingDay struct {
	Label  string `json:"-"`
	IsOpen bool   `json:"isOpen"`
}
