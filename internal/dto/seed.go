package dto

// SeedDataset is the fixture set written by the seeder. Foreign keys are expressed as indexes into
// the earlier slices because row ids are only known after insertion.
type SeedDataset struct {
	Users     []UserInput
	Schedules []PickupScheduleRequest
	Content   []SeedContent
	Reports   []SeedReport
	Links     []SeedLink
}

// SeedContent is an educational content fixture authored by Users[AuthorIndex].
type SeedContent struct {
	AuthorIndex int
	Title       string
	Topic       string
	ContentBody string
	CreatedAt   string
}

// SeedReport is a report fixture filed by Users[ReporterIndex] and optionally assigned to
// Users[*CollectorIndex].
type SeedReport struct {
	ReporterIndex   int
	CollectorIndex  *int
	ReportType      string
	LocationAddress string
	Latitude        float64
	Longitude       float64
	Description     string
	ReportDate      string
	Status          string
}

// SeedLink links Reports[ReportIndex] to Schedules[ScheduleIndex].
type SeedLink struct {
	ReportIndex   int
	ScheduleIndex int
}
