package service

import (
	"github.com/trashtrack/trashtrack-api/internal/dto"
)

const seedPassword = "password123"

// Indexes into seedUsers.
const (
	seedAdmin = iota
	seedReporter
	seedCollector
	seedAuthor
)

type seedUser struct {
	firstName string
	lastName  string
	email     string
	role      string
	address   string
	city      string
}

var seedUsers = []seedUser{
	{"Admin", "User", "user@user.com", "Admin", "123 Admin St", "Admin City"},
	{"Regular", "User", "regular@user.com", "Reporter", "456 User Ave", "User Town"},
	{"Collector", "One", "collector@user.com", "Collector", "789 Collector Rd", "Collector City"},
	{"Author", "Content", "author@user.com", "Author", "101 Author Ln", "Author Town"},
}

func seedSchedules() []dto.PickupScheduleRequest {
	slot := func(day, at string, active bool) dto.PickupScheduleRequest {
		return dto.PickupScheduleRequest{DayOfWeek: &day, TimeSlot: &at, IsActive: &active}
	}
	return []dto.PickupScheduleRequest{
		slot("Monday", "08:00:00", true),
		slot("Tuesday", "08:00:00", true),
		slot("Wednesday", "08:00:00", true),
		slot("Thursday", "08:00:00", true),
		slot("Friday", "08:00:00", true),
		slot("Saturday", "10:00:00", true),
		slot("Sunday", "10:00:00", false),
	}
}

var seedContent = []dto.SeedContent{
	{
		AuthorIndex: seedAuthor,
		Title:       "Recycling Basics",
		Topic:       "Recycling",
		ContentBody: "Recycling is the process of converting waste materials into new materials and objects. It helps reduce the consumption of fresh raw materials, reduce energy usage, reduce air pollution and water pollution by reducing the need for conventional waste disposal. Start by sorting your waste into categories like paper, plastic, glass, and metal. Remember to rinse containers before recycling to avoid contamination.",
		CreatedAt:   "2023-10-01 10:00:00",
	},
	{
		AuthorIndex: seedAuthor,
		Title:       "Composting at Home",
		Topic:       "Organic",
		ContentBody: "Composting is a natural process that turns organic waste into a valuable soil amendment. You can compost at home using kitchen scraps like vegetable peels, coffee grounds, and eggshells, along with yard waste such as leaves and grass clippings. Avoid adding meat, dairy, or oily foods to prevent attracting pests. Turn your compost pile regularly to aerate it and speed up decomposition.",
		CreatedAt:   "2023-10-02 10:00:00",
	},
	{
		AuthorIndex: seedAuthor,
		Title:       "Reducing Waste",
		Topic:       "General",
		ContentBody: "Reducing waste starts with mindful consumption. Buy products with minimal packaging, choose reusable items over disposables, and repair instead of replacing. Plan meals to avoid food waste, and donate or repurpose items you no longer need. Small changes like using cloth bags for shopping and reusable water bottles can make a big impact on reducing landfill contributions.",
		CreatedAt:   "2023-10-03 10:00:00",
	},
}

func seedReports() []dto.SeedReport {
	collectorIndex := seedCollector
	assigned := &collectorIndex
	report := func(reporter int, kind, address string, lat, lng float64, description, date, status string, collector *int) dto.SeedReport {
		return dto.SeedReport{
			ReporterIndex:   reporter,
			CollectorIndex:  collector,
			ReportType:      kind,
			LocationAddress: address,
			Latitude:        lat,
			Longitude:       lng,
			Description:     description,
			ReportDate:      date,
			Status:          status,
		}
	}
	return []dto.SeedReport{
		report(seedAdmin, "Illegal Dumping", "123 Main St", 40.7128, -74.0060, "Large pile of trash dumped illegally near the park.", "2023-10-01", "Pending", assigned),
		report(seedAdmin, "Missed Pickup", "456 Elm St", 40.7129, -74.0061, "Garbage was not collected on scheduled day.", "2023-09-28", "Resolved", assigned),
		report(seedReporter, "Overflowing Bin", "789 Oak St", 40.7130, -74.0062, "Public bin is overflowing and needs immediate attention.", "2023-10-02", "In Progress", assigned),
		report(seedReporter, "Other", "321 Pine St", 40.7131, -74.0063, "Broken recycling bin that needs repair.", "2023-10-03", "Pending", nil),
		report(seedReporter, "Illegal Dumping", "654 Maple Ave", 40.7132, -74.0064, "Construction debris left on sidewalk.", "2023-09-30", "Resolved", assigned),
		report(seedAdmin, "Illegal Dumping", "100 Admin Blvd", 40.7133, -74.0065, "Hazardous waste improperly disposed of in residential area.", "2023-10-05", "In Progress", assigned),
		report(seedAdmin, "Missed Pickup", "200 Admin Plaza", 40.7134, -74.0066, "Commercial waste pickup missed for the third consecutive week.", "2023-10-04", "Resolved", assigned),
		report(seedCollector, "Overflowing Bin", "300 Collector Way", 40.7135, -74.0067, "Multiple bins overflowing at the shopping center.", "2023-10-06", "Pending", nil),
		report(seedCollector, "Other", "400 Collector Lane", 40.7136, -74.0068, "Damaged collection truck needs maintenance.", "2023-10-07", "Resolved", assigned),
		report(seedAuthor, "Illegal Dumping", "500 Author Street", 40.7137, -74.0069, "Electronic waste dumped in public park.", "2023-10-08", "In Progress", assigned),
		report(seedAuthor, "Missed Pickup", "600 Author Ave", 40.7138, -74.0070, "Recycling pickup missed at community center.", "2023-10-09", "Pending", nil),
		report(seedReporter, "Illegal Dumping", "700 User Blvd", 40.7139, -74.0071, "Tires illegally dumped behind abandoned building.", "2023-10-10", "Resolved", assigned),
		report(seedAdmin, "Overflowing Bin", "800 Admin Circle", 40.7140, -74.0072, "City center bins overflowing during festival weekend.", "2023-10-11", "In Progress", assigned),
		report(seedCollector, "Other", "900 Collector Square", 40.7141, -74.0073, "New collection route causing traffic congestion.", "2023-10-12", "Pending", nil),
		report(seedAuthor, "Illegal Dumping", "1000 Author Plaza", 40.7142, -74.0074, "Medical waste improperly disposed of in regular trash.", "2023-10-13", "Resolved", assigned),
	}
}

var seedLinks = []dto.SeedLink{
	{ReportIndex: 0, ScheduleIndex: 0},
	{ReportIndex: 1, ScheduleIndex: 1},
	{ReportIndex: 2, ScheduleIndex: 2},
}
