package models

// Month represents one calendar month and its featured mathematician
type Month struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Mathematician string `json:"mathematician"`
	Theme         string `json:"theme"`
}

// DayQuestion represents one day's trivia question. Days are identified by
// their 1-based position in the month's question list.
type DayQuestion struct {
	Topic    string   `json:"topic"`
	Question string   `json:"question"`
	Choices  []string `json:"choices"`
	Answer   string   `json:"answer"`
}

// MonthsResponse is the payload of GET /api/months. Data is optional so
// clients must fall back to their bundled dataset when it is absent.
type MonthsResponse struct {
	Months []Month               `json:"months"`
	Data   map[int][]DayQuestion `json:"data,omitempty"`
	Source string                `json:"source,omitempty"`
}

// GenerateRequest for the generation proxy endpoint
type GenerateRequest struct {
	Prompt string `json:"prompt"`
}

// GenerateResponse from the generation proxy endpoint
type GenerateResponse struct {
	Text string `json:"text"`
}

// ErrorResponse is the JSON error body used by all handlers
type ErrorResponse struct {
	Error string `json:"error"`
}
