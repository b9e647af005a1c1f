package models

import (
	"time"

	"gorm.io/gorm"
)

// Sale records outbound stock sold from a store.
type Sale struct {
	ID              string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	UserID          string    `json:"userID" gorm:"index;type:varchar(36)" validate:"required"`
	ProductID       string    `json:"productID" gorm:"index;type:varchar(36)" validate:"required"`
	StoreID         string    `json:"storeID" gorm:"index;type:varchar(36)"`
	StockSold       int       `json:"stockSold" validate:"required,gt=0"`
	SaleDate        time.Time `json:"saleDate"`
	TotalSaleAmount float64   `json:"totalSaleAmount" validate:"gte=0"`
	gorm.Model
}
