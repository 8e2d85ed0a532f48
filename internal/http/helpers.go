package http

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"gastos/internal/core"
)

// parseWindow reads window, year and month query parameters. The window
// defaults to monthly over the current date, matching the SPA's landing
// view.
func parseWindow(r *http.Request) (core.Window, error) {
	q := r.URL.Query()
	now := time.Now()

	kind := q.Get("window")
	if kind == "" {
		kind = "monthly"
	}

	year := now.Year()
	if v := q.Get("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return core.Window{}, errors.New("invalid year")
		}
		year = parsed
	}

	switch kind {
	case "monthly":
		month := now.Month()
		if v := q.Get("month"); v != "" {
			parsed, err := strconv.Atoi(v)
			if err != nil || parsed < 1 || parsed > 12 {
				return core.Window{}, errors.New("invalid month")
			}
			month = time.Month(parsed)
		}
		return core.MonthWindow(year, month), nil
	case "yearly":
		return core.YearWindow(year), nil
	case "all", "all_time":
		return core.AllTimeWindow(), nil
	default:
		return core.Window{}, errors.New("invalid window: must be monthly, yearly or all")
	}
}

func summaryCacheKey(w core.Window) string {
	switch w.Kind {
	case core.Monthly:
		return fmt.Sprintf("%s-%d-%02d", w.Kind, w.Year, int(w.Month))
	case core.Yearly:
		return fmt.Sprintf("%s-%d", w.Kind, w.Year)
	default:
		return string(w.Kind)
	}
}

// formatPesos renders cents as a display amount, "$1234.50".
func formatPesos(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// sanitizeInput trims whitespace and strips control characters from
// user-provided labels before they reach the ledger.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= 32 && r != 127 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func generateRequestID() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return "req_" + strconv.FormatInt(time.Now().UnixNano(), 36)
	}
	return "req_" + hex.EncodeToString(bytes)
}
