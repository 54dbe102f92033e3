package entity

// SummaryRow agregado derivado por (producto, talla). Nunca se persiste; se recalcula
// desde cero en cada lectura de la colección de movimientos.
type SummaryRow struct {
	ProductType        ProductType
	Size               Size
	TotalOrdered       int
	TotalCut           int
	TotalProduced      int
	CutBalance         int // corte - producción, con signo: negativo = producción sobre-reportada
	ShortfallToProduce int // max(0, pedido - producción)
	ShortfallToCut     int // max(0, pedido - corte)
}

// Complete indica que no falta producir nada para la fila.
func (r SummaryRow) Complete() bool {
	return r.ShortfallToProduce == 0
}

// GlobalTotals totales por tipo sobre toda la colección, sin agrupar.
type GlobalTotals struct {
	Ordered  int
	Cut      int
	Produced int
}

// ProductSubtotals suma de las filas de un producto (pie de la tabla resumen).
type ProductSubtotals struct {
	ProductType        ProductType
	TotalOrdered       int
	TotalCut           int
	TotalProduced      int
	CutBalance         int
	ShortfallToProduce int
	ShortfallToCut     int
}
