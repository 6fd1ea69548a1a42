package models

// PickupSchedule is a recurring collection slot.
type PickupSchedule struct {
	ID        int64   `db:"schedule_id" json:"schedule_id"`
	DayOfWeek *string `db:"day_of_week" json:"day_of_week"`
	TimeSlot  *string `db:"time_slot" json:"time_slot"`
	IsActive  *bool   `db:"is_active" json:"is_active"`
}
