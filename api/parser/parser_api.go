package parser

import (
	"roster-server/models"
)

// ParserAPI defines the interface for interacting with the timesheet
// parser service.
type ParserAPI interface {
	ParseTimesheet(fileName string, pdfContent []byte) (*models.ParseResponse, error)
}
