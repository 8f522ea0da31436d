package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/commodities-dashboard/internal/domain/catalog"
	"github.com/jhoicas/commodities-dashboard/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// DeriveStatus es la única fuente de verdad de la clasificación de stock:
//
//	quantity == 0      → out-of-stock
//	1 <= quantity < 100 → low-stock
//	quantity >= 100     → in-stock
//
// Estos tests fijan los umbrales exactos; si alguien los mueve sin querer,
// fallan de inmediato.
// ──────────────────────────────────────────────────────────────────────────────

func TestDeriveStatus_Umbrales(t *testing.T) {
	cases := []struct {
		name     string
		quantity int
		want     entity.Status
	}{
		{"cero es agotado", 0, entity.StatusOutOfStock},
		{"uno es stock bajo", 1, entity.StatusLowStock},
		{"cincuenta es stock bajo", 50, entity.StatusLowStock},
		{"noventa y nueve es stock bajo", 99, entity.StatusLowStock},
		{"cien es en stock", 100, entity.StatusInStock},
		{"ciento uno es en stock", 101, entity.StatusInStock},
		{"muy grande es en stock", 1_000_000, entity.StatusInStock},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, catalog.DeriveStatus(tc.quantity))
		})
	}
}

// TestDeriveStatus_ParticionCompleta recorre un rango amplio de cantidades y
// verifica que la clasificación coincide con la definición en cada punto
// (cada cantidad cae en exactamente una clase).
func TestDeriveStatus_ParticionCompleta(t *testing.T) {
	for q := 0; q <= 500; q++ {
		got := catalog.DeriveStatus(q)
		switch {
		case q == 0:
			assert.Equal(t, entity.StatusOutOfStock, got, "q=%d", q)
		case q < 100:
			assert.Equal(t, entity.StatusLowStock, got, "q=%d", q)
		default:
			assert.Equal(t, entity.StatusInStock, got, "q=%d", q)
		}
	}
}
