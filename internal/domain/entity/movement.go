package entity

import (
	"strings"
	"time"
)

// ProductType tipo de prenda producida.
type ProductType string

// Tipos de producto. El orden de ProductTypes es el orden de presentación del resumen.
const (
	ProductBermuda  ProductType = "Bermuda"
	ProductCamiseta ProductType = "Camiseta"
)

// ProductTypes enumeración cerrada en orden declarado.
var ProductTypes = []ProductType{ProductBermuda, ProductCamiseta}

// Size talla de la prenda: numéricas infantiles y letras adulto.
type Size string

// Sizes enumeración cerrada de tallas en orden declarado (infantil primero).
var Sizes = []Size{"4", "6", "8", "10", "12", "P", "M", "G", "GG", "XG"}

// MovementType naturaleza del movimiento dentro del flujo pedido → corte → producción.
// Los valores coinciden con los que guardaba la app de navegador para poder importar sus datos.
type MovementType string

const (
	MovementOrder    MovementType = "Pedido (Meta)"         // cantidad solicitada
	MovementCut      MovementType = "Corte (Matéria-prima)" // piezas que salieron del corte
	MovementProduced MovementType = "Produção (Finalizado)" // piezas costuradas/finalizadas
)

// MovementTypes enumeración cerrada en orden declarado.
var MovementTypes = []MovementType{MovementOrder, MovementCut, MovementProduced}

// Movement un evento de inventario. ID y Date se asignan una sola vez al crearlo.
type Movement struct {
	ID          string       `json:"id"`
	Date        time.Time    `json:"date"`
	ProductType ProductType  `json:"productType"`
	Size        Size         `json:"size"`
	Type        MovementType `json:"type"`
	Quantity    int          `json:"quantity"`
	Notes       string       `json:"notes,omitempty"`
}

// MovementFields campos editables de un movimiento (todo salvo ID y Date).
type MovementFields struct {
	ProductType ProductType
	Size        Size
	Type        MovementType
	Quantity    int
	Notes       string
}

// Fields devuelve los campos editables del movimiento.
func (m Movement) Fields() MovementFields {
	return MovementFields{
		ProductType: m.ProductType,
		Size:        m.Size,
		Type:        m.Type,
		Quantity:    m.Quantity,
		Notes:       m.Notes,
	}
}

// Apply reemplaza los campos editables conservando ID y Date.
func (m Movement) Apply(f MovementFields) Movement {
	m.ProductType = f.ProductType
	m.Size = f.Size
	m.Type = f.Type
	m.Quantity = f.Quantity
	m.Notes = strings.TrimSpace(f.Notes)
	return m
}

// MaxQuantity tope de cantidad por movimiento.
const MaxQuantity = 1_000_000

// Valid indica si los campos cumplen las invariantes de un movimiento persistido.
func (f MovementFields) Valid() bool {
	return f.ProductType.Valid() && f.Size.Valid() && f.Type.Valid() &&
		f.Quantity >= 1 && f.Quantity <= MaxQuantity
}

// Valid indica si el movimiento puede persistirse.
func (m Movement) Valid() bool {
	return m.ID != "" && m.Fields().Valid()
}

// Valid indica si p pertenece a la enumeración.
func (p ProductType) Valid() bool {
	for _, v := range ProductTypes {
		if v == p {
			return true
		}
	}
	return false
}

// Valid indica si s pertenece a la enumeración.
func (s Size) Valid() bool {
	for _, v := range Sizes {
		if v == s {
			return true
		}
	}
	return false
}

// Valid indica si t pertenece a la enumeración.
func (t MovementType) Valid() bool {
	for _, v := range MovementTypes {
		if v == t {
			return true
		}
	}
	return false
}

// Hint texto de ayuda que acompaña al tipo en el formulario de captura.
func (t MovementType) Hint() string {
	switch t {
	case MovementOrder:
		return "Define o total do lote solicitado."
	case MovementCut:
		return "Registra as peças que saíram do corte."
	case MovementProduced:
		return "Registra as peças que foram costuradas/finalizadas."
	}
	return ""
}

// ParseProductType acepta el valor exacto o su forma sin distinguir mayúsculas.
func ParseProductType(s string) (ProductType, bool) {
	s = strings.TrimSpace(s)
	for _, v := range ProductTypes {
		if strings.EqualFold(string(v), s) {
			return v, true
		}
	}
	return "", false
}

// ParseSize acepta la talla sin distinguir mayúsculas ("gg" → "GG").
func ParseSize(s string) (Size, bool) {
	s = strings.TrimSpace(s)
	for _, v := range Sizes {
		if strings.EqualFold(string(v), s) {
			return v, true
		}
	}
	return "", false
}

var movementTypeAliases = map[string]MovementType{
	"order":    MovementOrder,
	"pedido":   MovementOrder,
	"cut":      MovementCut,
	"corte":    MovementCut,
	"produced": MovementProduced,
	"producao": MovementProduced,
	"produção": MovementProduced,
}

// ParseMovementType acepta el valor almacenado o un alias corto (order, cut, produced, pedido, corte, producao).
func ParseMovementType(s string) (MovementType, bool) {
	s = strings.TrimSpace(s)
	for _, v := range MovementTypes {
		if strings.EqualFold(string(v), s) {
			return v, true
		}
	}
	t, ok := movementTypeAliases[strings.ToLower(s)]
	return t, ok
}
