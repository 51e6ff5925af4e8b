// internal/core/ports/repository.go
package ports

import (
	"context"

	"crackbench/internal/core/domain"
)

// ReportRepository es el port para persistencia de reportes de análisis.
type ReportRepository interface {
	// Save guarda un reporte completo
	Save(ctx context.Context, report *domain.Report) error

	// Get recupera un reporte por su ID; domain.ErrReportNotFound si no existe
	Get(ctx context.Context, id string) (*domain.Report, error)

	// List devuelve los reportes más recientes primero
	List(ctx context.Context, limit int) ([]*domain.Report, error)

	// Ping verifica que el almacenamiento responde
	Ping(ctx context.Context) error

	// Close cierra la conexión con el repositorio
	Close() error
}
