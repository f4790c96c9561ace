package reports

import "time"

// Report types
const (
	ReportTypeRegistrations = "registrations"
	ReportTypeStalls        = "stalls"
	ReportTypeMerch         = "merch"
)

// Export formats
const (
	FormatCSV   = "csv"
	FormatExcel = "excel"
	FormatPDF   = "pdf"
)

// RegistrationReportRow is one registration with its event resolved.
type RegistrationReportRow struct {
	ID            uint      `json:"id"`
	ReceiptNo     string    `json:"receipt_no"`
	EventName     string    `json:"event_name"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	College       string    `json:"college"`
	Department    string    `json:"department"`
	Year          string    `json:"year"`
	TeamName      string    `json:"team_name"`
	FeeDue        int       `json:"fee_due"`
	FeePaid       int       `json:"fee_paid"`
	PaymentStatus string    `json:"payment_status"`
	CreatedAt     time.Time `json:"created_at"`
}

type StallReportRow struct {
	ID           uint      `json:"id"`
	BusinessName string    `json:"business_name"`
	OwnerName    string    `json:"owner_name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	StallType    string    `json:"stall_type"`
	BidAmount    int       `json:"bid_amount"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

type MerchReportRow struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Size          string    `json:"size"`
	Quantity      int       `json:"quantity"`
	PaymentStatus string    `json:"payment_status"`
	CreatedAt     time.Time `json:"created_at"`
}

// ReportData carries whichever row set the requested report needs.
type ReportData struct {
	Registrations []RegistrationReportRow
	Stalls        []StallReportRow
	Merch         []MerchReportRow
}

func IsValidReportType(t string) bool {
	switch t {
	case ReportTypeRegistrations, ReportTypeStalls, ReportTypeMerch:
		return true
	}
	return false
}

func IsValidFormat(f string) bool {
	switch f {
	case FormatCSV, FormatExcel, FormatPDF:
		return true
	}
	return false
}
