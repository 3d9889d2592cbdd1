package config

import (
	"os"
	"path/filepath"
)

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Parser service config
const PARSER_ENDPOINT_BASE_V1 = "http://parser:5000/api/v1"
const PARSER_UPLOAD_FIELD = "pdf"

// Weekdays covered by a timesheet, in display order.
var WEEKDAYS = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const PARSE_RESPONSE_RESOURCE = "parse_response.json"
const PARSE_FAILURE_RESPONSE_RESOURCE = "parse_failure_response.json"

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
