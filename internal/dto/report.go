package dto

// ReportPatchSchema lists the report columns a dynamic update may write.
var ReportPatchSchema = NewPatchSchema(
	"reporter_user_id",
	"report_type",
	"location_address",
	"latitude",
	"longitude",
	"description",
	"report_date",
	"status",
	"assigned_collector_id",
)

// ReportRequest is the body of report create.
type ReportRequest struct {
	ReporterUserID      *int64   `json:"reporter_user_id" db:"reporter_user_id"`
	ReportType          *string  `json:"report_type" db:"report_type"`
	LocationAddress     *string  `json:"location_address" db:"location_address"`
	Latitude            *float64 `json:"latitude" db:"latitude"`
	Longitude           *float64 `json:"longitude" db:"longitude"`
	Description         *string  `json:"description" db:"description"`
	ReportDate          *string  `json:"report_date" db:"report_date"`
	Status              *string  `json:"status" db:"status"`
	AssignedCollectorID *int64   `json:"assigned_collector_id" db:"assigned_collector_id"`
}

// ReportCreated is returned after a report insert.
type ReportCreated struct {
	ReportID int64  `json:"report_id"`
	Message  string `json:"message"`
}

// ReportQuery binds the optional list filters.
type ReportQuery struct {
	ReporterUserID      *int64  `form:"reporter_user_id"`
	AssignedCollectorID *int64  `form:"assigned_collector_id"`
	Status              *string `form:"status"`
}

// PickupRequest schedules a collection: it files a pickup report and links it to a schedule.
type PickupRequest struct {
	ReporterUserID  int64   `json:"reporter_user_id" validate:"required"`
	ScheduleID      int64   `json:"schedule_id" validate:"required"`
	WasteType       string  `json:"waste_type" validate:"required"`
	ReportDate      string  `json:"report_date" validate:"required"`
	LocationAddress *string `json:"location_address"`
}

// PickupScheduled is returned once a pickup request and its link are stored.
type PickupScheduled struct {
	ReportID         int64  `json:"report_id"`
	ReportScheduleID int64  `json:"report_schedule_id"`
	Message          string `json:"message"`
}
