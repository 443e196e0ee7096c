package domain

import "time"

type ReportRow struct {
	ProductName       string
	CurrentBalance    int
	RequestedQuantity int
}

// ReportDocument is built fresh on every generate action and handed to
// a renderer; it is never persisted.
type ReportDocument struct {
	GeneratedOn   time.Time
	RequesterName string
	Rows          []ReportRow
}
