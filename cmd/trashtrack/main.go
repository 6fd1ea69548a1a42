package main

import (
	_ "github.com/trashtrack/trashtrack-api/api/swagger"
	"github.com/trashtrack/trashtrack-api/cmd/trashtrack/commands"
)

// @title TrashTrack API
// @version 1.0.0
// @description Municipal waste-management API: citizen reports, pickup schedules and educational content.
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	commands.Execute()
}
