package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para crear un producto.
// Status no se acepta: siempre se deriva de Quantity en el use case.
type CreateProductRequest struct {
	Name     string          `json:"name" validate:"required,min=1,max=200"`
	Category string          `json:"category"`
	SKU      string          `json:"sku" validate:"required,min=1,max=100"`
	Quantity int             `json:"quantity" validate:"min=0"`
	Unit     string          `json:"unit"`
	Price    decimal.Decimal `json:"price"`
	Supplier string          `json:"supplier" validate:"required,min=1,max=200"`
}

// UpdateProductRequest entrada para editar un producto. Campos nil se conservan.
// Status y LastUpdated no son editables: se recalculan al confirmar.
type UpdateProductRequest struct {
	Name     *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Category *string          `json:"category"`
	SKU      *string          `json:"sku" validate:"omitempty,min=1,max=100"`
	Quantity *int             `json:"quantity" validate:"omitempty,min=0"`
	Unit     *string          `json:"unit"`
	Price    *decimal.Decimal `json:"price"`
	Supplier *string          `json:"supplier" validate:"omitempty,min=1,max=200"`
}

// ProductFilter filtros de consulta del catálogo. Cadena vacía o "all"
// significa sin restricción; los filtros presentes se combinan con AND.
type ProductFilter struct {
	Text     string `query:"q"`
	Category string `query:"category"`
	Status   string `query:"status"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	SKU         string          `json:"sku"`
	Quantity    int             `json:"quantity"`
	Unit        string          `json:"unit"`
	Price       decimal.Decimal `json:"price"`
	Supplier    string          `json:"supplier"`
	LastUpdated string          `json:"lastUpdated"` // fecha ISO (yyyy-mm-dd)
	Status      string          `json:"status"`
}

// ProductListResponse lista de productos (orden por defecto: más recientes primero).
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
