// Package catalog contiene los servicios de dominio del catálogo de productos.
package catalog

import "github.com/jhoicas/commodities-dashboard/internal/domain/entity"

// Umbral por debajo del cual un producto con existencias se considera en stock bajo.
const lowStockThreshold = 100

// DeriveStatus implementa la clasificación de stock (servicio de dominio).
// Es la única fuente de verdad: todo camino que muta Quantity debe pasar por aquí.
//
//	quantity == 0            → out-of-stock
//	0 < quantity < 100       → low-stock
//	quantity >= 100          → in-stock
func DeriveStatus(quantity int) entity.Status {
	switch {
	case quantity <= 0:
		return entity.StatusOutOfStock
	case quantity < lowStockThreshold:
		return entity.StatusLowStock
	default:
		return entity.StatusInStock
	}
}
