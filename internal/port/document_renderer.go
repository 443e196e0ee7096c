package port

import "github.com/controlhs/datacore/internal/core/domain"

type DocumentRenderer interface {
	// Render produces a downloadable artifact from a report document
	Render(doc domain.ReportDocument) ([]byte, error)
}
