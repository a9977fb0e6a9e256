package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"math-calendar-api/ai"
	"math-calendar-api/models"
	"math-calendar-api/utils"
)

// TextGenerator is the upstream capability the proxy forwards prompts to.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type GenerateHandlers struct {
	generator TextGenerator
}

func NewGenerateHandlers(generator TextGenerator) *GenerateHandlers {
	return &GenerateHandlers{generator: generator}
}

// HandleGenerate proxies one prompt to the upstream service. Prompts are
// truncated to the input budget before forwarding; missing or non-string
// prompts are rejected at the boundary; upstream and configuration failures
// map to a 500 with a JSON error body and never crash the handler.
func (gh *GenerateHandlers) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	utils.LogHTTP("%s %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		utils.LogHTTP("Method %s not allowed for %s", r.Method, r.URL.Path)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req models.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Prompt == "" {
		utils.LogHTTP("Rejected generation request: missing or invalid prompt")
		writeError(w, http.StatusBadRequest, "prompt is required")
		return
	}

	prompt := ai.Truncate(req.Prompt)
	if len(prompt) != len(req.Prompt) {
		utils.LogHTTP("Prompt truncated to %d characters", ai.MaxPromptLen)
	}

	text, err := gh.generator.Generate(r.Context(), prompt)
	if err != nil {
		if errors.Is(err, ai.ErrNoAPIKey) {
			writeError(w, http.StatusInternalServerError, "GEMINI_API_KEY not set on server")
			return
		}
		utils.LogError("Generation failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch from Gemini")
		return
	}

	writeJSON(w, http.StatusOK, models.GenerateResponse{Text: text})
}
