package main

import (
	"fmt"
	"log"

	"roster-server/api/parser"
	"roster-server/config"
	"roster-server/di"
	services "roster-server/service"
	"roster-server/util"
)

func testMockedParserApiClient(parserApi parser.ParserAPI) {
	log.Println("Running: testMockedParserApiClient")
	response, err := parserApi.ParseTimesheet("week.pdf", []byte("%PDF-1.4"))
	if err != nil {
		log.Println("Error while running testMockedParserApiClient: ", err)
		return
	}

	util.PrintParseResponsePartially(response)
}

// seedFromFixture ingests the fixture parse response, useful for poking
// at the view endpoints without a parser service running.
func seedFromFixture(scheduleService *services.ScheduleService) {
	response, err := util.ReadParseResponseFromJSON(config.GetResourcePath(config.PARSE_RESPONSE_RESOURCE))
	if err != nil {
		log.Fatalf("Failed to read parse response fixture: %v", err)
	}

	record, err := scheduleService.IngestWeek(response)
	if err != nil {
		log.Fatalf("Failed to ingest fixture week: %v", err)
	}
	log.Printf("Seeded week %q from fixture", record.Key())
}

func main() {
	container := di.NewContainer("prod")

	// testMockedParserApiClient(container.ParserAPI)
	// seedFromFixture(container.ScheduleService)

	fmt.Println("starting server!")
	container.RosterHttpServer.Start()
	fmt.Println("server stopped!")
}
