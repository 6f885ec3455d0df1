package main

import (
	"log"

	"ams_backend/internals/configs"
	database "ams_backend/internals/databases"
	"ams_backend/internals/seeds"
)

// Seeds the demo fixture. Run explicitly; the server never seeds on boot.
func main() {
	configs.LoadEnv()

	database.ConnectDB()
	database.TunePool()
	database.RunMigrations()

	if err := seeds.RunAllSeeds(database.DB); err != nil {
		log.Fatalf("[ERROR] seeding failed: %v", err)
	}
}
