package models_test

import (
	"testing"

	"gudang/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestClassifyStock(t *testing.T) {
	tests := []struct {
		name      string
		stock     int
		threshold int
		want      models.StockStatus
	}{
		{"zero stock", 0, 10, models.StatusNoStock},
		{"zero stock wins over tiny threshold", 0, 1, models.StatusNoStock},
		{"below threshold", 5, 10, models.StatusLowStock},
		{"at threshold is low", 10, 10, models.StatusLowStock},
		{"just above threshold", 11, 10, models.StatusInStock},
		{"well stocked", 120, 50, models.StatusInStock},
		{"single unit at threshold one", 1, 1, models.StatusLowStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, models.ClassifyStock(tt.stock, tt.threshold))
		})
	}
}

func TestProductWithStatus(t *testing.T) {
	p := models.Product{
		ID:                "prod-1",
		Name:              "470uF Cap",
		Stock:             40,
		LowStockThreshold: 50,
	}

	annotated := p.WithStatus()

	assert.Equal(t, models.StatusLowStock, annotated.StockStatus)
	assert.Equal(t, p.ID, annotated.ID)
	assert.Equal(t, p.Stock, annotated.Stock)
}
