package dto

// SummaryRowDTO fila del resumen por talla, con los campos de presentación derivados.
type SummaryRowDTO struct {
	ProductType        string `json:"productType"`
	Size               string `json:"size"`
	TotalOrdered       int    `json:"totalOrdered"`
	TotalCut           int    `json:"totalCut"`
	TotalProduced      int    `json:"totalProduced"`
	CutBalance         int    `json:"cutBalance"`
	ShortfallToProduce int    `json:"shortfallToProduce"`
	ShortfallToCut     int    `json:"shortfallToCut"`
	Progress           int    `json:"progress"` // 0..100
	Complete           bool   `json:"complete"`
}

// ProductSubtotalsDTO pie de tabla por producto.
type ProductSubtotalsDTO struct {
	ProductType        string `json:"productType"`
	TotalOrdered       int    `json:"totalOrdered"`
	TotalCut           int    `json:"totalCut"`
	TotalProduced      int    `json:"totalProduced"`
	CutBalance         int    `json:"cutBalance"`
	ShortfallToProduce int    `json:"shortfallToProduce"`
	ShortfallToCut     int    `json:"shortfallToCut"`
}

// GlobalTotalsDTO tarjetas de totales generales.
type GlobalTotalsDTO struct {
	Ordered  int `json:"ordered"`
	Cut      int `json:"cut"`
	Produced int `json:"produced"`
}

// SummaryResponse vista sintética completa.
type SummaryResponse struct {
	Rows     []SummaryRowDTO       `json:"rows"`
	Products []ProductSubtotalsDTO `json:"products"`
	Totals   GlobalTotalsDTO       `json:"totals"`
}
