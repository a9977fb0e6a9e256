package handlers

import (
	"net/http"

	"math-calendar-api/db"
	"math-calendar-api/models"
	"math-calendar-api/utils"
)

type ContentHandlers struct {
	db *db.DB
}

func NewContentHandlers(database *db.DB) *ContentHandlers {
	return &ContentHandlers{db: database}
}

// HandleMonths serves the month roster plus the full day-question data.
// Clients treat the data field as optional and fall back to their bundled
// dataset, so a months-only payload is also a valid response shape.
func (ch *ContentHandlers) HandleMonths(w http.ResponseWriter, r *http.Request) {
	utils.LogHTTP("%s /api/months", r.Method)

	if r.Method != http.MethodGet {
		utils.LogHTTP("Method %s not allowed for /api/months", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	months, err := ch.db.GetMonths()
	if err != nil {
		utils.LogError("Failed to fetch months: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch months")
		return
	}

	data, err := ch.db.GetAllData()
	if err != nil {
		utils.LogError("Failed to fetch day questions: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch day questions")
		return
	}

	writeJSON(w, http.StatusOK, models.MonthsResponse{
		Months: months,
		Data:   data,
		Source: "local-api",
	})
}
