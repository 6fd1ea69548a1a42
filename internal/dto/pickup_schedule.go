package dto

// PickupScheduleRequest is the body of pickup schedule create and update.
type PickupScheduleRequest struct {
	DayOfWeek *string `json:"day_of_week" db:"day_of_week"`
	TimeSlot  *string `json:"time_slot" db:"time_slot"`
	IsActive  *bool   `json:"is_active" db:"is_active"`
}

// PickupScheduleCreated is returned after a pickup schedule insert.
type PickupScheduleCreated struct {
	ScheduleID int64  `json:"schedule_id"`
	Message    string `json:"message"`
}
