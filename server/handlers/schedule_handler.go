package handlers

import (
	"encoding/json"
	"errors"
	"io/ioutil"
	"log"
	"net/http"
	"strings"

	"roster-server/api/parser"
	"roster-server/config"
	redisdao "roster-server/dao/redis"
	"roster-server/models"
	services "roster-server/service"
	"roster-server/util"
)

const (
	KEY_QUERY_ARG = "key"
)

// ScheduleHandler serves timesheet uploads and the week views.
type ScheduleHandler struct {
	scheduleService *services.ScheduleService
	weekViewService *services.WeekViewService
	parserApi       parser.ParserAPI
}

func NewScheduleHandler(
	scheduleService *services.ScheduleService,
	weekViewService *services.WeekViewService,
	parserApi parser.ParserAPI,
) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleService: scheduleService,
		weekViewService: weekViewService,
		parserApi:       parserApi,
	}
}

// UploadTimesheet handles POST /v1/timesheets. The PDF is forwarded to
// the parser service; on success the parsed week is merged into the
// store and persisted.
func (h *ScheduleHandler) UploadTimesheet(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile(config.PARSER_UPLOAD_FIELD)
	if err != nil {
		writeError(w, http.StatusBadRequest, "No PDF file provided")
		return
	}
	defer file.Close()

	if header.Filename == "" {
		writeError(w, http.StatusBadRequest, "No file selected")
		return
	}
	if !strings.HasSuffix(strings.ToLower(header.Filename), ".pdf") {
		writeError(w, http.StatusBadRequest, "File must be a PDF")
		return
	}

	content, err := ioutil.ReadAll(file)
	if err != nil {
		log.Println("Error reading uploaded file:", err)
		writeError(w, http.StatusInternalServerError, "Failed to read uploaded file")
		return
	}

	resp, err := h.parserApi.ParseTimesheet(header.Filename, content)
	if err != nil {
		log.Println("Error calling parser service:", err)
		writeError(w, http.StatusBadGateway, "Failed to reach parser service")
		return
	}

	if !resp.Success {
		// Surface the parser's own message verbatim
		msg := resp.Error
		if msg == "" {
			msg = "Could not parse timesheet"
		}
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	record, err := h.scheduleService.IngestWeek(resp)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidRecord):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, redisdao.ErrPersistenceWrite):
			log.Println("Error persisting week store:", err)
			writeError(w, http.StatusInternalServerError, "Failed to save schedule")
		default:
			log.Println("Error ingesting week:", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"week_key": record.Key(),
		"record":   record,
	})
}

// ListWeeks handles GET /v1/weeks, returning the stored week keys most
// recent first, for populating a week selector.
func (h *ScheduleHandler) ListWeeks(w http.ResponseWriter, r *http.Request) {
	keys := h.weekViewService.ListWeeks()
	writeJSON(w, http.StatusOK, map[string]interface{}{"weeks": keys})
}

// GetWeek handles GET /v1/weeks/view?key=<week key>.
func (h *ScheduleHandler) GetWeek(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get(KEY_QUERY_ARG)
	if key == "" {
		writeError(w, http.StatusBadRequest, "Invalid argument "+KEY_QUERY_ARG)
		return
	}

	display, ok := h.weekViewService.SelectWeek(key)
	if !ok {
		writeError(w, http.StatusNotFound, "Week not found")
		return
	}

	writeJSON(w, http.StatusOK, display)
}

// GetWeekChart handles GET /v1/weeks/chart?key=<week key>, rendering the
// selected week's hours as a bar chart.
func (h *ScheduleHandler) GetWeekChart(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get(KEY_QUERY_ARG)
	if key == "" {
		writeError(w, http.StatusBadRequest, "Invalid argument "+KEY_QUERY_ARG)
		return
	}

	display, ok := h.weekViewService.SelectWeek(key)
	if !ok {
		writeError(w, http.StatusNotFound, "Week not found")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if err := util.PlotWeekHours(display, w); err != nil {
		log.Println("Error rendering week chart:", err)
	}
}

// Ping handles GET /ping
func (h *ScheduleHandler) Ping(w http.ResponseWriter, r *http.Request) {
	log.Println("Pinging server")
	writeJSON(w, http.StatusOK, map[string]string{"status": "pong"})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Println("Error encoding response:", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
