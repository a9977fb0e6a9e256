// Command play is a terminal client for the math calendar. It hydrates
// content from the API when reachable, falls back to the bundled dataset
// otherwise, and keeps completion state in a local state directory.
package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"math-calendar-api/ai"
	"math-calendar-api/calendar"
	"math-calendar-api/dataset"
	"math-calendar-api/models"
	"math-calendar-api/progress"
	"math-calendar-api/utils"
)

// apiGenerator forwards prompts to the API's generation proxy, the same
// contract the browser client uses.
type apiGenerator struct {
	baseURL string
	client  *http.Client
}

func (g *apiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(models.GenerateRequest{Prompt: prompt})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/api/gemini", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr models.ErrorResponse
		if json.NewDecoder(resp.Body).Decode(&apiErr) == nil && apiErr.Error != "" {
			return "", fmt.Errorf("api error: %s", apiErr.Error)
		}
		return "", fmt.Errorf("api returned status %d", resp.StatusCode)
	}

	var out models.GenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	return out.Text, nil
}

// hydrate fetches months and data from the API, keeping the bundled dataset
// for anything the response omits.
func hydrate(baseURL string) ([]models.Month, map[int][]models.DayQuestion) {
	months, data := dataset.Months, dataset.Data

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(baseURL + "/api/months")
	if err != nil {
		utils.LogInfo("Using bundled data (API not available)")
		return months, data
	}
	defer resp.Body.Close()

	var payload models.MonthsResponse
	if resp.StatusCode != http.StatusOK || json.NewDecoder(resp.Body).Decode(&payload) != nil {
		utils.LogInfo("Using bundled data (unexpected API response)")
		return months, data
	}

	if len(payload.Months) > 0 {
		months = payload.Months
	}
	if len(payload.Data) > 0 {
		data = payload.Data
	}
	utils.LogInfo("Data hydrated from API")
	return months, data
}

func main() {
	log.SetFlags(log.LstdFlags)
	godotenv.Load()

	baseURL := strings.TrimRight(utils.GetEnvOrDefault("CALENDAR_API_URL", "http://localhost:3001"), "/")
	stateDir := utils.GetEnvOrDefault("STATE_DIR", "./state")

	store, err := progress.Open(stateDir)
	if err != nil {
		log.Fatalf("[FATAL] Failed to open state dir: %v", err)
	}

	months, data := hydrate(baseURL)
	gen := &apiGenerator{baseURL: baseURL, client: &http.Client{Timeout: 60 * time.Second}}
	session := calendar.NewSession(months, data, store, gen)

	fmt.Println("Math Calendar — answer a question a day.")
	fmt.Println("Commands: month N | open D | hint | explain | fact | close | stats | quit")

	printMonth(session.View())
	printStats(session.Stats())

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "quit", "exit":
			return

		case "month":
			if len(fields) < 2 {
				fmt.Println("usage: month N")
				continue
			}
			id, _ := strconv.Atoi(fields[1])
			view, err := session.SelectMonth(id)
			if err != nil {
				fmt.Println("No such month.")
				continue
			}
			printMonth(view)

		case "open":
			if len(fields) < 2 {
				fmt.Println("usage: open D")
				continue
			}
			day, _ := strconv.Atoi(fields[1])
			view, err := session.OpenDay(session.CurrentMonth(), day)
			if err != nil || view == nil {
				fmt.Println("Nothing behind that day.")
				continue
			}
			printDay(view)

		case "hint":
			requestText(session, ai.KindHint)

		case "explain":
			updates, err := session.RequestText(context.Background(), ai.KindExplanation)
			if err == calendar.ErrExplanationGated {
				fmt.Println("Peek alert! Viewing the answer means solving it yourself later. Reveal anyway? (yes/no)")
				if scanner.Scan() && strings.TrimSpace(scanner.Text()) == "yes" {
					session.RevealExplanation()
					requestText(session, ai.KindExplanation)
				}
				continue
			}
			if err != nil {
				fmt.Println("Open a day first.")
				continue
			}
			fmt.Println("Thinking...")
			if update, ok := <-updates; ok {
				fmt.Println(update.Text)
			}

		case "fact":
			requestText(session, ai.KindFunFact)

		case "close":
			session.CloseDay()
			printMonth(session.View())

		case "stats":
			printStats(session.Stats())

		default:
			// Bare number answers the open question.
			if choice := resolveChoice(fields[0]); choice != "" {
				submit(session, choice)
			} else {
				fmt.Println("Unknown command.")
			}
		}
	}
}

var lastChoices []string

func resolveChoice(input string) string {
	if n, err := strconv.Atoi(input); err == nil && n >= 1 && n <= len(lastChoices) {
		return lastChoices[n-1]
	}
	return ""
}

func submit(session *calendar.Session, choice string) {
	result, err := session.SubmitChoice(choice)
	switch err {
	case nil:
	case calendar.ErrNoOpenDay:
		fmt.Println("Open a day first.")
		return
	case calendar.ErrSubmissionClosed:
		fmt.Println("Already answered. Close and reopen to review.")
		return
	default:
		fmt.Println("Could not submit:", err)
		return
	}

	if result.Outcome == calendar.OutcomeCorrect {
		fmt.Println("Correct! Well done!")
		for _, unlock := range result.Unlocks {
			fmt.Printf("Badge unlocked: %d problems solved!\n", unlock.Threshold)
		}
	} else {
		fmt.Printf("Not quite! The answer is: %s\n", result.CorrectAnswer)
	}
	printStats(result.Stats)
}

func requestText(session *calendar.Session, kind ai.PromptKind) {
	updates, err := session.RequestText(context.Background(), kind)
	if err != nil {
		fmt.Println("Open a day first.")
		return
	}
	fmt.Println("Thinking...")
	if update, ok := <-updates; ok {
		fmt.Println(update.Text)
	}
}

func printMonth(view *calendar.MonthView) {
	fmt.Printf("\n%s — featuring %s (%s)\n", view.Month.Name, view.Month.Mathematician, view.Month.Theme)
	for _, cell := range view.Days {
		marker := " "
		if cell.Completed {
			marker = "✓"
		}
		today := ""
		if cell.Today {
			today = " <- today"
		}
		fmt.Printf("  [%s] day %2d: %s%s\n", marker, cell.Day, cell.Topic, today)
	}
}

func printDay(view *calendar.DayView) {
	fmt.Printf("\nDay %d — %s\n%s\n", view.Day, view.Topic, view.Question)
	lastChoices = view.Choices
	for i, choice := range view.Choices {
		marker := ""
		if view.Completed && choice == view.CorrectAnswer {
			marker = " (correct)"
		}
		fmt.Printf("  %d) %s%s\n", i+1, choice, marker)
	}
	if view.Completed {
		fmt.Println("Already completed! Answers are shown for review only.")
	}
}

func printStats(stats models.Stats) {
	fmt.Printf("Progress: %d/%d (%d%%), streak %d\n", stats.Completed, stats.Total, stats.Percent, stats.Streak)
}
