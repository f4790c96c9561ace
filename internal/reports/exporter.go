package reports

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

const excelMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Exporter renders a report row set in the requested format and returns the
// file bytes, a filename and a content type.
type Exporter interface {
	Export(reportType, format string, data ReportData) ([]byte, string, string, error)
}

type exporter struct{}

func NewExporter() Exporter {
	return &exporter{}
}

func (e *exporter) Export(reportType, format string, data ReportData) ([]byte, string, string, error) {
	timestamp := time.Now().Format("20060102_150405")

	switch reportType {
	case ReportTypeRegistrations:
		return e.exportRegistrations(format, timestamp, data.Registrations)
	case ReportTypeStalls:
		return e.exportStalls(format, timestamp, data.Stalls)
	case ReportTypeMerch:
		return e.exportMerch(format, timestamp, data.Merch)
	default:
		return nil, "", "", fmt.Errorf("unsupported report type: %s", reportType)
	}
}

// ===========================
// Registrations
// ===========================

func (e *exporter) exportRegistrations(format, timestamp string, rows []RegistrationReportRow) ([]byte, string, string, error) {
	switch format {
	case FormatCSV:
		data, err := registrationsCSV(rows)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("registrations_report_%s.csv", timestamp), "text/csv", nil

	case FormatExcel:
		data, err := registrationsExcel(rows)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("registrations_report_%s.xlsx", timestamp), excelMIME, nil

	case FormatPDF:
		data, err := registrationsPDF(rows)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("registrations_report_%s.pdf", timestamp), "application/pdf", nil

	default:
		return nil, "", "", fmt.Errorf("unsupported format for registrations: %s", format)
	}
}

func registrationsCSV(rows []RegistrationReportRow) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	headers := []string{"ID", "Receipt No", "Event", "Name", "Email", "Phone", "College", "Department", "Year", "Team Name", "Fee Due", "Fee Paid", "Payment Status", "Registered At"}
	if err := w.Write(headers); err != nil {
		return nil, err
	}

	for _, r := range rows {
		record := []string{
			strconv.FormatUint(uint64(r.ID), 10),
			r.ReceiptNo,
			r.EventName,
			r.Name,
			r.Email,
			r.Phone,
			r.College,
			r.Department,
			r.Year,
			r.TeamName,
			strconv.Itoa(r.FeeDue),
			strconv.Itoa(r.FeePaid),
			r.PaymentStatus,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func registrationsExcel(rows []RegistrationReportRow) ([]byte, error) {
	f := excelize.NewFile()
	sheet := "Registrations"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headers := []string{"ID", "Receipt No", "Event", "Name", "Email", "Phone", "College", "Department", "Year", "Team Name", "Fee Due", "Fee Paid", "Payment Status", "Registered At"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		f.SetCellValue(sheet, cell, h)
	}

	for rIdx, r := range rows {
		values := []interface{}{
			r.ID, r.ReceiptNo, r.EventName, r.Name, r.Email, r.Phone, r.College,
			r.Department, r.Year, r.TeamName, r.FeeDue, r.FeePaid, r.PaymentStatus,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for cIdx, v := range values {
			cell, err := excelize.CoordinatesToCellName(cIdx+1, rIdx+2)
			if err != nil {
				return nil, err
			}
			f.SetCellValue(sheet, cell, v)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func registrationsPDF(rows []RegistrationReportRow) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(40, 10, "Registrations Report")
	pdf.Ln(10)

	headers := []string{"Receipt No", "Event", "Name", "Phone", "Team", "Due", "Paid", "Status"}
	widths := []float64{45, 50, 45, 30, 35, 20, 20, 25}

	pdf.SetFont("Arial", "B", 9)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	for _, r := range rows {
		cells := []string{
			r.ReceiptNo, r.EventName, r.Name, r.Phone, r.TeamName,
			strconv.Itoa(r.FeeDue), strconv.Itoa(r.FeePaid), r.PaymentStatus,
		}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 6, c, "1", 0, "", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ===========================
// Stall applications
// ===========================

func (e *exporter) exportStalls(format, timestamp string, rows []StallReportRow) ([]byte, string, string, error) {
	switch format {
	case FormatCSV:
		data, err := stallsCSV(rows)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("stall_applications_report_%s.csv", timestamp), "text/csv", nil

	case FormatExcel:
		data, err := stallsExcel(rows)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("stall_applications_report_%s.xlsx", timestamp), excelMIME, nil

	case FormatPDF:
		data, err := stallsPDF(rows)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("stall_applications_report_%s.pdf", timestamp), "application/pdf", nil

	default:
		return nil, "", "", fmt.Errorf("unsupported format for stalls: %s", format)
	}
}

func stallsCSV(rows []StallReportRow) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	headers := []string{"ID", "Business", "Owner", "Email", "Phone", "Type", "Bid Amount", "Status", "Applied At"}
	if err := w.Write(headers); err != nil {
		return nil, err
	}

	for _, r := range rows {
		record := []string{
			strconv.FormatUint(uint64(r.ID), 10),
			r.BusinessName,
			r.OwnerName,
			r.Email,
			r.Phone,
			r.StallType,
			strconv.Itoa(r.BidAmount),
			r.Status,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func stallsExcel(rows []StallReportRow) ([]byte, error) {
	f := excelize.NewFile()
	sheet := "Stall Applications"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headers := []string{"ID", "Business", "Owner", "Email", "Phone", "Type", "Bid Amount", "Status", "Applied At"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		f.SetCellValue(sheet, cell, h)
	}

	for rIdx, r := range rows {
		values := []interface{}{
			r.ID, r.BusinessName, r.OwnerName, r.Email, r.Phone, r.StallType,
			r.BidAmount, r.Status, r.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for cIdx, v := range values {
			cell, err := excelize.CoordinatesToCellName(cIdx+1, rIdx+2)
			if err != nil {
				return nil, err
			}
			f.SetCellValue(sheet, cell, v)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func stallsPDF(rows []StallReportRow) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(40, 10, "Stall Applications Report")
	pdf.Ln(10)

	headers := []string{"Business", "Owner", "Phone", "Type", "Bid", "Status"}
	widths := []float64{70, 50, 35, 35, 30, 30}

	pdf.SetFont("Arial", "B", 9)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	for _, r := range rows {
		cells := []string{
			r.BusinessName, r.OwnerName, r.Phone, r.StallType,
			strconv.Itoa(r.BidAmount), r.Status,
		}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 6, c, "1", 0, "", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ===========================
// Merch orders
// ===========================

func (e *exporter) exportMerch(format, timestamp string, rows []MerchReportRow) ([]byte, string, string, error) {
	switch format {
	case FormatCSV:
		data, err := merchCSV(rows)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("merch_orders_report_%s.csv", timestamp), "text/csv", nil

	case FormatExcel:
		data, err := merchExcel(rows)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("merch_orders_report_%s.xlsx", timestamp), excelMIME, nil

	case FormatPDF:
		data, err := merchPDF(rows)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("merch_orders_report_%s.pdf", timestamp), "application/pdf", nil

	default:
		return nil, "", "", fmt.Errorf("unsupported format for merch: %s", format)
	}
}

func merchCSV(rows []MerchReportRow) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	headers := []string{"ID", "Name", "Email", "Phone", "Size", "Quantity", "Payment Status", "Ordered At"}
	if err := w.Write(headers); err != nil {
		return nil, err
	}

	for _, r := range rows {
		record := []string{
			strconv.FormatUint(uint64(r.ID), 10),
			r.Name,
			r.Email,
			r.Phone,
			r.Size,
			strconv.Itoa(r.Quantity),
			r.PaymentStatus,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func merchExcel(rows []MerchReportRow) ([]byte, error) {
	f := excelize.NewFile()
	sheet := "Merch Orders"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headers := []string{"ID", "Name", "Email", "Phone", "Size", "Quantity", "Payment Status", "Ordered At"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		f.SetCellValue(sheet, cell, h)
	}

	for rIdx, r := range rows {
		values := []interface{}{
			r.ID, r.Name, r.Email, r.Phone, r.Size, r.Quantity,
			r.PaymentStatus, r.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for cIdx, v := range values {
			cell, err := excelize.CoordinatesToCellName(cIdx+1, rIdx+2)
			if err != nil {
				return nil, err
			}
			f.SetCellValue(sheet, cell, v)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func merchPDF(rows []MerchReportRow) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(40, 10, "Merch Orders Report")
	pdf.Ln(10)

	headers := []string{"Name", "Phone", "Size", "Qty", "Status"}
	widths := []float64{60, 40, 25, 20, 35}

	pdf.SetFont("Arial", "B", 9)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	for _, r := range rows {
		cells := []string{r.Name, r.Phone, r.Size, strconv.Itoa(r.Quantity), r.PaymentStatus}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 6, c, "1", 0, "", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
