package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHTTPClient_Request_Success(t *testing.T) {
	// Setup a test server echoing a JSON payload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL)

	// Act
	var response map[string]string
	err := client.Request("GET", "/ping", nil, nil, &response)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if response["status"] != "ok" {
		t.Errorf("Expected status 'ok', got '%s'", response["status"])
	}
}

func TestHTTPClient_Request_NonSuccessStatus(t *testing.T) {
	// Setup
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL)

	// Act
	err := client.Request("GET", "/fail", nil, nil, nil)

	// Assert
	if err == nil {
		t.Errorf("Expected an error for a 500 response, got nil")
	}
}

func TestHTTPClient_RequestMultipart_UploadsFile(t *testing.T) {
	// Setup a test server that inspects the multipart form
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		file, header, err := r.FormFile("pdf")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer file.Close()

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"filename": header.Filename})
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL)

	// Act
	var response map[string]string
	err := client.RequestMultipart("/parse", "pdf", "week.pdf", []byte("%PDF-1.4"), &response)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if response["filename"] != "week.pdf" {
		t.Errorf("Expected filename 'week.pdf', got '%s'", response["filename"])
	}
}
