package models

// ReportSchedule links one report to one pickup schedule.
type ReportSchedule struct {
	ID         int64 `db:"report_schedule_id" json:"report_schedule_id"`
	ReportID   int64 `db:"report_id" json:"report_id"`
	ScheduleID int64 `db:"schedule_id" json:"schedule_id"`
}
