package reports

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// GetRegistrationRows resolves event names with a LEFT JOIN so registrations
// whose event was deleted still appear in the export.
func (r *Repository) GetRegistrationRows(eventID uint) ([]RegistrationReportRow, error) {
	var rows []RegistrationReportRow
	q := r.DB.Table("registrations").
		Select("registrations.id, registrations.receipt_no, COALESCE(events.name, '') AS event_name, " +
			"registrations.name, registrations.email, registrations.phone, registrations.college, " +
			"registrations.department, registrations.year, registrations.team_name, " +
			"registrations.fee_due, registrations.fee_paid, registrations.payment_status, registrations.created_at").
		Joins("LEFT JOIN events ON events.id = registrations.event_id").
		Order("registrations.created_at DESC")
	if eventID > 0 {
		q = q.Where("registrations.event_id = ?", eventID)
	}
	err := q.Scan(&rows).Error
	return rows, err
}

func (r *Repository) GetStallRows(status string) ([]StallReportRow, error) {
	var rows []StallReportRow
	q := r.DB.Table("stall_applications").
		Select("id, business_name, owner_name, email, phone, stall_type, bid_amount, status, created_at").
		Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Scan(&rows).Error
	return rows, err
}

func (r *Repository) GetMerchRows(status string) ([]MerchReportRow, error) {
	var rows []MerchReportRow
	q := r.DB.Table("merch_orders").
		Select("id, name, email, phone, size, quantity, payment_status, created_at").
		Order("created_at DESC")
	if status != "" {
		q = q.Where("payment_status = ?", status)
	}
	err := q.Scan(&rows).Error
	return rows, err
}
