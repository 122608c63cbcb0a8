package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"
	"github.com/ssaltnsoul-code/SaltnSoul/models"
)

var (
	inkColor   = color.Color{Red: 33, Green: 37, Blue: 41}
	mutedColor = color.Color{Red: 120, Green: 124, Blue: 130}
)

// GenerateReceiptPDF renders an order receipt.
func GenerateReceiptPDF(order *models.Order) (*bytes.Buffer, error) {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	m.Row(15, func() {
		m.Col(8, func() {
			m.Text("SALT & SOUL", props.Text{Size: 22, Style: consts.Bold, Color: inkColor})
		})
		m.Col(4, func() {
			m.Text("RECEIPT", props.Text{Size: 14, Style: consts.Bold, Color: mutedColor, Align: consts.Right})
		})
	})

	m.Row(6, func() {
		m.Col(6, func() {
			m.Text(strings.TrimSpace(order.FirstName+" "+order.LastName), props.Text{Size: 9, Style: consts.Bold, Color: inkColor})
		})
		m.Col(6, func() {
			m.Text(fmt.Sprintf("Order %s", order.OrderNumber), props.Text{Size: 9, Color: inkColor, Align: consts.Right})
		})
	})

	addr := order.ShippingAddress.Data()
	m.Row(5, func() {
		m.Col(6, func() {
			m.Text(order.Email, props.Text{Size: 9, Color: mutedColor})
		})
		m.Col(6, func() {
			m.Text(order.CreatedAt.Format("Jan 02, 2006"), props.Text{Size: 9, Color: mutedColor, Align: consts.Right})
		})
	})
	m.Row(5, func() {
		m.Col(12, func() {
			m.Text(fmt.Sprintf("%s, %s, %s %s, %s", addr.Address, addr.City, addr.State, addr.ZipCode, addr.Country),
				props.Text{Size: 9, Color: mutedColor})
		})
	})

	m.Row(8, func() {})

	header := props.Text{Size: 8, Style: consts.Bold, Color: inkColor}
	right := header
	right.Align = consts.Right
	m.Row(6, func() {
		m.Col(6, func() { m.Text("Item", header) })
		m.Col(2, func() { m.Text("Qty", right) })
		m.Col(2, func() { m.Text("Price", right) })
		m.Col(2, func() { m.Text("Total", right) })
	})
	m.Line(1)

	cell := props.Text{Size: 9, Color: inkColor}
	cellRight := cell
	cellRight.Align = consts.Right
	for _, item := range order.Items {
		name := item.ProductName
		if variant := strings.Trim(item.Size+" / "+item.Color, " /"); variant != "" {
			name = fmt.Sprintf("%s (%s)", name, variant)
		}
		m.Row(6, func() {
			m.Col(6, func() { m.Text(name, cell) })
			m.Col(2, func() { m.Text(fmt.Sprintf("%d", item.Quantity), cellRight) })
			m.Col(2, func() { m.Text(fmt.Sprintf("$%.2f", item.Price), cellRight) })
			m.Col(2, func() { m.Text(fmt.Sprintf("$%.2f", item.Subtotal), cellRight) })
		})
	}

	m.Row(8, func() {})

	summary := []struct {
		label string
		value float64
		bold  bool
	}{
		{"Subtotal", order.Subtotal, false},
		{"Shipping (" + order.ShippingMethod + ")", order.ShippingCost, false},
		{"Tax", order.Tax, false},
		{"Total", order.TotalAmount, true},
	}
	for _, line := range summary {
		style := props.Text{Size: 9, Color: mutedColor, Align: consts.Right}
		value := props.Text{Size: 9, Color: inkColor, Align: consts.Right}
		if line.bold {
			style = props.Text{Size: 12, Style: consts.Bold, Color: inkColor, Align: consts.Right}
			value = style
		}
		m.Row(6, func() {
			m.Col(7, func() {})
			m.Col(3, func() { m.Text(line.label, style) })
			m.Col(2, func() { m.Text(fmt.Sprintf("$%.2f", line.value), value) })
		})
	}

	m.Row(12, func() {})
	m.Row(5, func() {
		m.Col(12, func() {
			m.Text("Thank you for shopping with Salt & Soul.", props.Text{Size: 8, Color: mutedColor})
		})
	})

	buf, err := m.Output()
	if err != nil {
		return nil, fmt.Errorf("render receipt: %w", err)
	}
	return &buf, nil
}
