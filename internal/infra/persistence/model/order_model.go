package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table. Line items live in 'order_items'.
type OrderModel struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID           *uuid.UUID `gorm:"type:uuid;index"`
	CustomerName     string     `gorm:"type:varchar(150);not null"`
	CustomerCedula   string     `gorm:"type:varchar(30);not null"`
	CustomerAddress  string     `gorm:"type:text;not null"`
	CustomerWhatsApp string     `gorm:"column:customer_whatsapp;type:varchar(30);not null"`
	Total            int64      `gorm:"not null"`
	Status           string     `gorm:"type:varchar(20);not null;default:pending;index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Items []OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. Name and price are copied
// from the menu when the order is placed.
type OrderItemModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrderID  uuid.UUID `gorm:"type:uuid;not null;index"`
	DishID   uuid.UUID `gorm:"type:uuid;not null"`
	Name     string    `gorm:"type:varchar(150);not null"`
	Quantity int       `gorm:"not null;check:chk_order_items_quantity_positive,quantity > 0"`
	Price    int64     `gorm:"not null;check:chk_order_items_price_non_negative,price >= 0"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
