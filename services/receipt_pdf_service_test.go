package services

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ssaltnsoul-code/SaltnSoul/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestGenerateReceiptPDF(t *testing.T) {
	id := uuid.Must(uuid.NewV7())
	order := &models.Order{
		ID:          id,
		OrderNumber: newOrderNumber(id),
		Email:       "jane@example.com",
		FirstName:   "Jane",
		LastName:    "Doe",
		ShippingAddress: datatypes.NewJSONType(models.ShippingAddress{
			Address: "1 Ocean Ave", City: "Santa Monica", State: "CA", ZipCode: "90401", Country: "US",
		}),
		ShippingMethod: "express",
		Subtotal:       99.98,
		ShippingCost:   15,
		Tax:            8,
		TotalAmount:    122.98,
		CreatedAt:      time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Items: []models.OrderItem{
			{ProductName: "Sculpt Leggings", Size: "M", Color: "Black", Price: 49.99, Quantity: 2, Subtotal: 99.98},
		},
	}

	buf, err := GenerateReceiptPDF(order)
	require.NoError(t, err)
	require.NotNil(t, buf)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}
