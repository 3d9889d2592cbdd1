package util

import (
	"io/ioutil"
	"os"
	"testing"
)

func createTempFile(t *testing.T, content string) string {
	t.Helper()
	tempFile, err := ioutil.TempFile("", "test*.json")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	_, err = tempFile.Write([]byte(content))
	if err != nil {
		t.Fatalf("Failed to write to temp file: %v", err)
	}
	tempFile.Close()
	return tempFile.Name()
}

func TestReadParseResponseFromJSON(t *testing.T) {
	// Arrange
	content := `{
		"success": true,
		"week_ending": "21/06/2024",
		"dates": ["17.06.2024", "18.06.2024", "", "", ""],
		"days": {
			"Monday": {"date": "17.06.2024", "start": "9:00", "end": "17:30", "note": "ATM"}
		}
	}`
	tempFile := createTempFile(t, content)
	defer os.Remove(tempFile)

	// Act
	response, err := ReadParseResponseFromJSON(tempFile)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !response.Success {
		t.Errorf("Expected success=true")
	}
	if response.WeekEnding != "21/06/2024" {
		t.Errorf("Expected week ending '21/06/2024', got %s", response.WeekEnding)
	}
	if len(response.Dates) != 5 {
		t.Fatalf("Expected 5 date slots, got %d", len(response.Dates))
	}
	if response.Days["Monday"].Start != "9:00" {
		t.Errorf("Expected Monday start '9:00', got %s", response.Days["Monday"].Start)
	}
}

func TestReadParseResponseFromJSON_Malformed(t *testing.T) {
	// Arrange
	tempFile := createTempFile(t, `{"invalid_json`)
	defer os.Remove(tempFile)

	// Act
	response, err := ReadParseResponseFromJSON(tempFile)

	// Assert
	if err == nil {
		t.Errorf("Expected an error, got nil")
	}
	if response != nil {
		t.Errorf("Expected response to be nil, got %v", response)
	}
}

func TestReadWeekStoreFromJSON(t *testing.T) {
	// Arrange
	content := `{
		"15/06/2024": {
			"week_ending": "15/06/2024",
			"dates": ["10.06.2024"],
			"days": {}
		}
	}`
	tempFile := createTempFile(t, content)
	defer os.Remove(tempFile)

	// Act
	store, err := ReadWeekStoreFromJSON(tempFile)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(store) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(store))
	}
	if store["15/06/2024"].WeekEnding != "15/06/2024" {
		t.Errorf("Expected week ending to round-trip")
	}
}
