package models

import (
	"time"

	"gorm.io/gorm"
)

// Purchase records inbound stock bought for a product.
type Purchase struct {
	ID                  string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	UserID              string    `json:"userID" gorm:"index;type:varchar(36)" validate:"required"`
	ProductID           string    `json:"productID" gorm:"index;type:varchar(36)" validate:"required"`
	QuantityPurchased   int       `json:"quantityPurchased" validate:"required,gt=0"`
	PurchaseDate        time.Time `json:"purchaseDate"`
	TotalPurchaseAmount float64   `json:"totalPurchaseAmount" validate:"gte=0"`
	gorm.Model
}
