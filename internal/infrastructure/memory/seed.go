package memory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/commodities-dashboard/internal/domain/entity"
)

// SeedProducts devuelve la colección inicial del catálogo de commodities.
// Los status vienen precalculados y deben ser consistentes con
// catalog.DeriveStatus; el test del paquete lo verifica.
func SeedProducts() []entity.Product {
	d := func(s string) time.Time {
		t, _ := time.Parse("2006-01-02", s)
		return t
	}
	price := decimal.RequireFromString

	return []entity.Product{
		{
			ID: "p-001", Name: "Premium Wheat", Category: "Grains", SKU: "GRN-WHT-001",
			Quantity: 450, Unit: "ton", Price: price("285.50"), Supplier: "Golden Fields Co.",
			LastUpdated: d("2026-08-20"), Status: entity.StatusInStock,
		},
		{
			ID: "p-002", Name: "Basmati Rice", Category: "Grains", SKU: "GRN-RCE-002",
			Quantity: 120, Unit: "ton", Price: price("640.00"), Supplier: "Eastern Harvest Ltd.",
			LastUpdated: d("2026-08-18"), Status: entity.StatusInStock,
		},
		{
			ID: "p-003", Name: "Sunflower Oil", Category: "Oils", SKU: "OIL-SUN-003",
			Quantity: 85, Unit: "liter", Price: price("2.35"), Supplier: "SunPress Mills",
			LastUpdated: d("2026-08-22"), Status: entity.StatusLowStock,
		},
		{
			ID: "p-004", Name: "Extra Virgin Olive Oil", Category: "Oils", SKU: "OIL-OLV-004",
			Quantity: 0, Unit: "liter", Price: price("8.90"), Supplier: "Mediterra Estates",
			LastUpdated: d("2026-08-10"), Status: entity.StatusOutOfStock,
		},
		{
			ID: "p-005", Name: "Canned Tomatoes", Category: "Canned", SKU: "CAN-TOM-005",
			Quantity: 320, Unit: "box", Price: price("14.75"), Supplier: "Valle Rosso S.p.A.",
			LastUpdated: d("2026-08-15"), Status: entity.StatusInStock,
		},
		{
			ID: "p-006", Name: "Canned Chickpeas", Category: "Canned", SKU: "CAN-CHK-006",
			Quantity: 42, Unit: "box", Price: price("11.20"), Supplier: "Levant Foods",
			LastUpdated: d("2026-08-21"), Status: entity.StatusLowStock,
		},
		{
			ID: "p-007", Name: "Black Pepper", Category: "Spices", SKU: "SPC-PEP-007",
			Quantity: 18, Unit: "bag", Price: price("95.00"), Supplier: "Malabar Trading",
			LastUpdated: d("2026-08-19"), Status: entity.StatusLowStock,
		},
		{
			ID: "p-008", Name: "Ground Turmeric", Category: "Spices", SKU: "SPC-TUR-008",
			Quantity: 0, Unit: "bag", Price: price("72.40"), Supplier: "Malabar Trading",
			LastUpdated: d("2026-08-05"), Status: entity.StatusOutOfStock,
		},
		{
			ID: "p-009", Name: "Raw Cane Sugar", Category: "Other", SKU: "OTH-SUG-009",
			Quantity: 260, Unit: "bag", Price: price("38.60"), Supplier: "Tropicana Agro",
			LastUpdated: d("2026-08-23"), Status: entity.StatusInStock,
		},
		{
			ID: "p-010", Name: "Sea Salt", Category: "Other", SKU: "OTH-SLT-010",
			Quantity: 75, Unit: "bag", Price: price("9.85"), Supplier: "Atlantic Minerals",
			LastUpdated: d("2026-08-17"), Status: entity.StatusLowStock,
		},
	}
}
