package models

// CountByKey is one bucket of a grouped report count.
type CountByKey struct {
	Key   string `db:"key" json:"key"`
	Count int64  `db:"count" json:"count"`
}

// ScheduleUsage counts report links per pickup schedule.
type ScheduleUsage struct {
	ScheduleID int64 `db:"schedule_id" json:"schedule_id"`
	Count      int64 `db:"count" json:"count"`
}

// ReportStats aggregates reports for dashboard charts.
type ReportStats struct {
	Total         int64           `json:"total"`
	ByType        []CountByKey    `json:"by_type"`
	ByStatus      []CountByKey    `json:"by_status"`
	ByDate        []CountByKey    `json:"by_date"`
	ScheduleUsage []ScheduleUsage `json:"schedule_usage"`
}
