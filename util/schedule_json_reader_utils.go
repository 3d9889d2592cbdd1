package util

import (
	"encoding/json"
	"fmt"
	"io/ioutil"

	"roster-server/models"
)

// ReadParseResponseFromJSON loads a ParseResponse from JSON on disk.
func ReadParseResponseFromJSON(filePath string) (*models.ParseResponse, error) {
	data, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.ParseResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ParseResponse: %w", err)
	}
	return &resp, nil
}

// ReadWeekStoreFromJSON loads a whole WeekStore from JSON on disk.
func ReadWeekStoreFromJSON(filePath string) (models.WeekStore, error) {
	data, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var store models.WeekStore
	if err := json.Unmarshal(data, &store); err != nil {
		return nil, fmt.Errorf("failed to unmarshal WeekStore: %w", err)
	}
	return store, nil
}

// PrintParseResponsePartially prints key fields of a ParseResponse.
func PrintParseResponsePartially(resp *models.ParseResponse) {
	fmt.Printf("Success: %v\n", resp.Success)
	if resp.Error != "" {
		fmt.Printf("Error: %s\n", resp.Error)
	}
	fmt.Printf("Week ending: %s\n", resp.WeekEnding)
	fmt.Printf("Dates: %v\n", resp.Dates)
	fmt.Printf("Days captured: %d\n", len(resp.Days))
}
