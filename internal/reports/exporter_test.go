package reports

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"
)

func sampleRegistrations() []RegistrationReportRow {
	return []RegistrationReportRow{
		{
			ID:            1,
			ReceiptNo:     "REG-abc123",
			EventName:     "Hack Day",
			Name:          "Asha",
			Email:         "asha@example.com",
			Phone:         "9876543210",
			College:       "NIT",
			Department:    "cse",
			Year:          "3",
			TeamName:      "Null Pointers",
			FeeDue:        100,
			FeePaid:       100,
			PaymentStatus: "paid",
			CreatedAt:     time.Date(2026, 2, 1, 10, 30, 0, 0, time.UTC),
		},
	}
}

func TestExportRegistrationsCSV(t *testing.T) {
	e := NewExporter()
	data, filename, contentType, err := e.Export(ReportTypeRegistrations, FormatCSV, ReportData{
		Registrations: sampleRegistrations(),
	})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if contentType != "text/csv" {
		t.Errorf("content type = %q", contentType)
	}
	if !strings.HasPrefix(filename, "registrations_report_") || !strings.HasSuffix(filename, ".csv") {
		t.Errorf("unexpected filename %q", filename)
	}

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d rows, want header + 1", len(records))
	}
	if records[0][1] != "Receipt No" {
		t.Errorf("header[1] = %q", records[0][1])
	}
	row := records[1]
	if row[1] != "REG-abc123" || row[2] != "Hack Day" || row[12] != "paid" {
		t.Errorf("unexpected row: %v", row)
	}
}

func TestExportStallsCSVFiltersNothing(t *testing.T) {
	e := NewExporter()
	data, _, _, err := e.Export(ReportTypeStalls, FormatCSV, ReportData{
		Stalls: []StallReportRow{
			{ID: 7, BusinessName: "Chai Point", OwnerName: "Ravi", StallType: "food", BidAmount: 5000, Status: "approved", CreatedAt: time.Now()},
		},
	})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d rows", len(records))
	}
	if records[1][1] != "Chai Point" || records[1][6] != "5000" {
		t.Errorf("unexpected row: %v", records[1])
	}
}

func TestExportMerchExcelAndPDFProduceBytes(t *testing.T) {
	e := NewExporter()
	rows := []MerchReportRow{
		{ID: 1, Name: "Kiran", Size: "L", Quantity: 2, PaymentStatus: "pending", CreatedAt: time.Now()},
	}

	xlsx, filename, contentType, err := e.Export(ReportTypeMerch, FormatExcel, ReportData{Merch: rows})
	if err != nil {
		t.Fatalf("excel export: %v", err)
	}
	if len(xlsx) == 0 {
		t.Error("excel export returned no bytes")
	}
	if contentType != excelMIME {
		t.Errorf("excel content type = %q", contentType)
	}
	if !strings.HasSuffix(filename, ".xlsx") {
		t.Errorf("excel filename = %q", filename)
	}

	pdf, filename, contentType, err := e.Export(ReportTypeMerch, FormatPDF, ReportData{Merch: rows})
	if err != nil {
		t.Fatalf("pdf export: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Error("pdf export missing %PDF header")
	}
	if contentType != "application/pdf" {
		t.Errorf("pdf content type = %q", contentType)
	}
	if !strings.HasSuffix(filename, ".pdf") {
		t.Errorf("pdf filename = %q", filename)
	}
}

func TestExportRejectsUnknownTypeAndFormat(t *testing.T) {
	e := NewExporter()
	if _, _, _, err := e.Export("tickets", FormatCSV, ReportData{}); err == nil {
		t.Error("expected error for unknown report type")
	}
	if _, _, _, err := e.Export(ReportTypeMerch, "xml", ReportData{}); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestValidators(t *testing.T) {
	if !IsValidReportType(ReportTypeRegistrations) || IsValidReportType("tickets") {
		t.Error("IsValidReportType misbehaves")
	}
	if !IsValidFormat(FormatPDF) || IsValidFormat("docx") {
		t.Error("IsValidFormat misbehaves")
	}
}
