package dto

// ReportSchedulePatchSchema lists the link columns a dynamic update may write.
var ReportSchedulePatchSchema = NewPatchSchema("report_id", "schedule_id")

// ReportScheduleRequest is the body of report schedule create.
type ReportScheduleRequest struct {
	ReportID   *int64 `json:"report_id" db:"report_id"`
	ScheduleID *int64 `json:"schedule_id" db:"schedule_id"`
}

// ReportScheduleCreated is returned after a report schedule insert.
type ReportScheduleCreated struct {
	ReportScheduleID int64  `json:"report_schedule_id"`
	Message          string `json:"message"`
}

// SetReportScheduleRequest assigns a report to a schedule; a null or missing schedule clears it.
type SetReportScheduleRequest struct {
	ScheduleID *int64 `json:"schedule_id"`
}

// ReportScheduleAssigned is returned by the schedule assignment operation.
type ReportScheduleAssigned struct {
	Message          string `json:"message"`
	ReportScheduleID *int64 `json:"report_schedule_id"`
}
