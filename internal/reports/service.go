package reports

import (
	"context"
	"fmt"

	"github.com/invicta-fest/festival-backend/internal/auditlog"
)

type Service struct {
	Repo     *Repository
	Exporter Exporter
	AuditSvc auditlog.Service
}

func NewService(repo *Repository, exporter Exporter, auditSvc auditlog.Service) *Service {
	return &Service{Repo: repo, Exporter: exporter, AuditSvc: auditSvc}
}

// ExportFilter narrows the row set before export.
type ExportFilter struct {
	EventID uint   // registrations only
	Status  string // stalls: application status, merch: payment status
}

// Export builds the requested report and logs the download.
func (s *Service) Export(ctx context.Context, reportType, format string, filter ExportFilter, adminID uint, ip string) ([]byte, string, string, error) {
	if !IsValidReportType(reportType) {
		return nil, "", "", fmt.Errorf("unsupported report type: %s", reportType)
	}
	if !IsValidFormat(format) {
		return nil, "", "", fmt.Errorf("unsupported format: %s", format)
	}

	var data ReportData
	var err error
	switch reportType {
	case ReportTypeRegistrations:
		data.Registrations, err = s.Repo.GetRegistrationRows(filter.EventID)
	case ReportTypeStalls:
		data.Stalls, err = s.Repo.GetStallRows(filter.Status)
	case ReportTypeMerch:
		data.Merch, err = s.Repo.GetMerchRows(filter.Status)
	}
	if err != nil {
		return nil, "", "", err
	}

	fileBytes, filename, contentType, err := s.Exporter.Export(reportType, format, data)

	status := "success"
	details := map[string]interface{}{
		"report_type": reportType,
		"format":      format,
	}
	if err != nil {
		status = "failure"
		details["error"] = err.Error()
	} else {
		details["filename"] = filename
	}
	s.AuditSvc.LogAction(ctx, &adminID, "REPORT_EXPORTED", details, ip, status)

	return fileBytes, filename, contentType, err
}
