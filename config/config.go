package config

import (
	"os"
	"path/filepath"
)

// Redis defaults
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Cache defaults
const CACHE_TTL_MS_DEFAULT = 60_000

// Stations API defaults
const STATIONS_API_BASE_URL_DEFAULT = "https://605c94c36d85de00170da8b4.mockapi.io/stations"

// Bookings refresher default schedule
const BOOKINGS_REFRESHER_SCHEDULE_MINUTES_DEFAULT = 5

// HTTP server default port
const HTTP_PORT_DEFAULT = 8080

// Time zone used for week arithmetic and display formatting
const TIME_ZONE_DEFAULT = "UTC"

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const STATIONS_RESPONSE_RESOURCE = "stations_response.json"

// Week-load chart output
const WEEK_CHART_OUTPUT_DEFAULT = "week_load.html"

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}
