package db

import (
	"database/sql"
	"encoding/json"

	"math-calendar-api/models"
	"math-calendar-api/utils"

	_ "github.com/mattn/go-sqlite3"
)

type DB struct {
	*sql.DB
}

func InitDB(dbPath string) (*DB, error) {
	utils.LogStartup("Initializing content database at: %s", dbPath)

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		utils.LogError("Failed to open database: %v", err)
		return nil, err
	}

	if err := db.Ping(); err != nil {
		utils.LogError("Failed to ping database: %v", err)
		return nil, err
	}

	utils.LogStartup("Database connection established")

	if err := createTables(db); err != nil {
		utils.LogError("Failed to create tables: %v", err)
		return nil, err
	}

	utils.LogStartup("Database tables initialized successfully")
	return &DB{db}, nil
}

func createTables(db *sql.DB) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS months (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			mathematician TEXT NOT NULL,
			theme TEXT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS day_questions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			month_id INTEGER NOT NULL,
			day_number INTEGER NOT NULL,
			topic TEXT NOT NULL,
			question TEXT NOT NULL,
			choices TEXT NOT NULL,
			answer TEXT NOT NULL,
			UNIQUE(month_id, day_number),
			FOREIGN KEY (month_id) REFERENCES months(id)
		)`,

		`CREATE INDEX IF NOT EXISTS idx_day_questions_month ON day_questions(month_id)`,
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return err
		}
	}

	return nil
}

// SeedFromDataset loads the bundled dataset into an empty database. Seeding
// is skipped when content already exists, so restarts are cheap.
func (db *DB) SeedFromDataset(months []models.Month, data map[int][]models.DayQuestion) error {
	count, err := db.CountQuestions()
	if err != nil {
		return err
	}
	if count > 0 {
		utils.LogDB("Content already seeded (%d questions), skipping", count)
		return nil
	}

	utils.LogDB("Seeding content from bundled dataset: %d months", len(months))

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, m := range months {
		_, err := tx.Exec(`
			INSERT INTO months (id, name, mathematician, theme)
			VALUES (?, ?, ?, ?)
		`, m.ID, m.Name, m.Mathematician, m.Theme)
		if err != nil {
			utils.LogError("Failed to seed month %d: %v", m.ID, err)
			return err
		}
	}

	seeded := 0
	for monthID, days := range data {
		for i, q := range days {
			choicesJSON, err := json.Marshal(q.Choices)
			if err != nil {
				utils.LogError("Failed to marshal choices for %d-%d: %v", monthID, i+1, err)
				return err
			}

			_, err = tx.Exec(`
				INSERT INTO day_questions (month_id, day_number, topic, question, choices, answer)
				VALUES (?, ?, ?, ?, ?, ?)
			`, monthID, i+1, q.Topic, q.Question, string(choicesJSON), q.Answer)
			if err != nil {
				utils.LogError("Failed to seed question %d-%d: %v", monthID, i+1, err)
				return err
			}
			seeded++
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	utils.LogDB("Seeded %d questions across %d months", seeded, len(months))
	return nil
}

func (db *DB) CountQuestions() (int, error) {
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM day_questions").Scan(&count)
	if err != nil {
		utils.LogError("Failed to count questions: %v", err)
		return 0, err
	}
	return count, nil
}
