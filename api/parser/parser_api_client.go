package parser

import (
	"roster-server/api"
	"roster-server/config"
	"roster-server/models"
)

// ParserApiClient embeds the common HTTPClient
type ParserApiClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties
}

// NewParserApiClient creates a new instance of ParserApiClient
func NewParserApiClient(httpClient *api.HTTPClient) *ParserApiClient {
	return &ParserApiClient{
		HTTPClient: httpClient,
	}
}

// ParseTimesheet forwards the uploaded PDF to the parser service and
// decodes the parse response.
func (c *ParserApiClient) ParseTimesheet(fileName string, pdfContent []byte) (*models.ParseResponse, error) {
	var response models.ParseResponse
	err := c.RequestMultipart("/parse", config.PARSER_UPLOAD_FIELD, fileName, pdfContent, &response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}
