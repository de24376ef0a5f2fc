package service

import (
	"strconv"

	"textile-inventory-api/internal/model"
	"textile-inventory-api/internal/repository"
	"textile-inventory-api/pkg/export"
)

type ActivityService interface {
	ListActivities(actor model.Actor, filter repository.ActivityFilter) ([]repository.ActivityRecord, error)
	ExportActivities(actor model.Actor, filter repository.ActivityFilter) ([]byte, string, error)
}

type activityService struct {
	backends repository.BackendSelector
}

func NewActivityService(backends repository.BackendSelector) ActivityService {
	return &activityService{backends: backends}
}

func (s *activityService) ListActivities(actor model.Actor, filter repository.ActivityFilter) ([]repository.ActivityRecord, error) {
	return s.backends.For(actor).ListActivities(actor, filter)
}

// ExportActivities renders the filtered, ordered ledger into a spreadsheet
func (s *activityService) ExportActivities(actor model.Actor, filter repository.ActivityFilter) ([]byte, string, error) {
	records, err := s.ListActivities(actor, filter)
	if err != nil {
		return nil, "", err
	}

	rows := make([]export.ActivityRow, len(records))
	for i, rec := range records {
		rows[i] = export.ActivityRow{
			Date:             rec.Timestamp.Format("2006-01-02 15:04:05"),
			Action:           rec.Action,
			Product:          orNA(rec.ProductName),
			Store:            orNA(rec.StoreName),
			PreviousQuantity: intOrNA(rec.PreviousQuantity),
			NewQuantity:      intOrNA(rec.NewQuantity),
			QuantityChange:   intOrNA(rec.QuantityChange),
			Details:          detailsOrNA(rec),
		}
	}

	return export.ActivityReport(rows)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func intOrNA(v *int) string {
	if v == nil {
		return "N/A"
	}
	return strconv.Itoa(*v)
}

func detailsOrNA(rec repository.ActivityRecord) string {
	if len(rec.Details) == 0 {
		return "N/A"
	}
	return string(rec.Details)
}
