package parser

import (
	"fmt"

	"roster-server/config"
	"roster-server/models"
	"roster-server/util"
)

// ParserApiClientMock embeds mocked logic for the parser api client
type ParserApiClientMock struct {
}

// NewParserApiClientMock creates a new instance of ParserApiClientMock
func NewParserApiClientMock() *ParserApiClientMock {
	return &ParserApiClientMock{}
}

// ParseTimesheet returns the fixture parse response regardless of the
// uploaded content.
func (c *ParserApiClientMock) ParseTimesheet(fileName string, pdfContent []byte) (*models.ParseResponse, error) {
	response, err := util.ReadParseResponseFromJSON(config.GetResourcePath(config.PARSE_RESPONSE_RESOURCE))
	if err != nil {
		fmt.Println("Could not read parse response from json")
		return nil, err
	}

	return response, nil
}
