package models

// Conventional report statuses. The column accepts any string.
const (
	ReportStatusPending    = "Pending"
	ReportStatusInProgress = "In Progress"
	ReportStatusResolved   = "Resolved"
	ReportStatusScheduled  = "Scheduled"
)

// ReportTypePickupRequest marks reports created through the pickup scheduling flow.
const ReportTypePickupRequest = "Pickup Request"

// Report is a citizen-filed issue or pickup request.
type Report struct {
	ID                  int64    `db:"report_id" json:"report_id"`
	ReporterUserID      *int64   `db:"reporter_user_id" json:"reporter_user_id"`
	ReportType          *string  `db:"report_type" json:"report_type"`
	LocationAddress     *string  `db:"location_address" json:"location_address"`
	Latitude            *float64 `db:"latitude" json:"latitude"`
	Longitude           *float64 `db:"longitude" json:"longitude"`
	Description         *string  `db:"description" json:"description"`
	ReportDate          *string  `db:"report_date" json:"report_date"`
	Status              *string  `db:"status" json:"status"`
	AssignedCollectorID *int64   `db:"assigned_collector_id" json:"assigned_collector_id"`
}

// ReportFilter captures the optional exact-match filters for listing reports.
type ReportFilter struct {
	ReporterUserID      *int64
	AssignedCollectorID *int64
	Status              *string
}
