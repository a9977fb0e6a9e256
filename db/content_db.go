package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"math-calendar-api/models"
	"math-calendar-api/utils"
)

func (db *DB) GetMonths() ([]models.Month, error) {
	utils.LogDB("Executing query: GetMonths")

	rows, err := db.Query(`
		SELECT id, name, mathematician, theme FROM months ORDER BY id
	`)
	if err != nil {
		utils.LogError("GetMonths failed: %v", err)
		return nil, err
	}
	defer rows.Close()

	var months []models.Month
	for rows.Next() {
		var m models.Month
		if err := rows.Scan(&m.ID, &m.Name, &m.Mathematician, &m.Theme); err != nil {
			utils.LogError("Failed to scan month row: %v", err)
			return nil, err
		}
		months = append(months, m)
	}

	return months, rows.Err()
}

func (db *DB) GetMonthByID(id int) (*models.Month, error) {
	utils.LogDB("Executing query: GetMonthByID(%d)", id)

	var m models.Month
	err := db.QueryRow(`
		SELECT id, name, mathematician, theme FROM months WHERE id = ?
	`, id).Scan(&m.ID, &m.Name, &m.Mathematician, &m.Theme)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("month %d not found", id)
	}
	if err != nil {
		utils.LogError("GetMonthByID(%d) failed: %v", id, err)
		return nil, err
	}

	return &m, nil
}

func (db *DB) GetQuestionsForMonth(monthID int) ([]models.DayQuestion, error) {
	utils.LogDB("Executing query: GetQuestionsForMonth(%d)", monthID)

	rows, err := db.Query(`
		SELECT topic, question, choices, answer
		FROM day_questions WHERE month_id = ? ORDER BY day_number
	`, monthID)
	if err != nil {
		utils.LogError("GetQuestionsForMonth(%d) failed: %v", monthID, err)
		return nil, err
	}
	defer rows.Close()

	return scanQuestions(rows)
}

// GetAllData returns the full month -> ordered question list mapping, the
// shape the read endpoint serves.
func (db *DB) GetAllData() (map[int][]models.DayQuestion, error) {
	utils.LogDB("Executing query: GetAllData")
	start := time.Now()

	rows, err := db.Query(`
		SELECT month_id, topic, question, choices, answer
		FROM day_questions ORDER BY month_id, day_number
	`)
	if err != nil {
		utils.LogError("GetAllData failed: %v", err)
		return nil, err
	}
	defer rows.Close()

	data := make(map[int][]models.DayQuestion)
	count := 0
	for rows.Next() {
		var monthID int
		var q models.DayQuestion
		var choicesJSON string

		if err := rows.Scan(&monthID, &q.Topic, &q.Question, &choicesJSON, &q.Answer); err != nil {
			utils.LogError("Failed to scan question row: %v", err)
			return nil, err
		}
		if err := json.Unmarshal([]byte(choicesJSON), &q.Choices); err != nil {
			utils.LogError("Failed to parse choices JSON for month %d: %v", monthID, err)
			return nil, err
		}

		data[monthID] = append(data[monthID], q)
		count++
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	utils.LogDB("Loaded %d questions for %d months in %v", count, len(data), time.Since(start))
	return data, nil
}

func scanQuestions(rows *sql.Rows) ([]models.DayQuestion, error) {
	var questions []models.DayQuestion
	for rows.Next() {
		var q models.DayQuestion
		var choicesJSON string

		if err := rows.Scan(&q.Topic, &q.Question, &choicesJSON, &q.Answer); err != nil {
			utils.LogError("Failed to scan question row: %v", err)
			return nil, err
		}
		if err := json.Unmarshal([]byte(choicesJSON), &q.Choices); err != nil {
			utils.LogError("Failed to parse choices JSON: %v", err)
			return nil, err
		}

		questions = append(questions, q)
	}
	return questions, rows.Err()
}
