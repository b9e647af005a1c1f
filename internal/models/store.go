package models

import "gorm.io/gorm"

// Store represents a physical location (store or lab) stock is sold from.
type Store struct {
	ID          string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	UserID      string `json:"userID" gorm:"index;type:varchar(36)" validate:"required"`
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Category    string `json:"category" validate:"omitempty,max=100"`
	Address     string `json:"address" validate:"omitempty,max=255"`
	City        string `json:"city" validate:"omitempty,max=100"`
	Image       string `json:"image" validate:"omitempty,max=500"`
	Status      string `json:"status" validate:"omitempty,max=50"`
	ManagerName string `json:"managerName" validate:"omitempty,max=100"`
	gorm.Model
}
