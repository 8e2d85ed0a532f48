package http

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"net/http"
	"strconv"
	"strings"
	"time"

	"gastos/internal/core"
	applog "gastos/internal/log"
)

type expenseResponse struct {
	ID          int64  `json:"id"`
	AmountCents int64  `json:"amount_cents"`
	Amount      string `json:"amount"`
	Category    string `json:"category"`
	Payer       string `json:"payer"`
	Date        string `json:"date"`
}

func toExpenseResponse(e core.Expense) expenseResponse {
	return expenseResponse{
		ID:          e.ID,
		AmountCents: e.Amount.Cents,
		Amount:      formatPesos(e.Amount.Cents),
		Category:    e.Category,
		Payer:       e.Payer,
		Date:        e.Date.Format(time.RFC3339),
	}
}

// amountField accepts the amount either as a JSON number or as a decimal
// string ("12.34" / "12,34"), both of which the SPA has sent over time.
type amountField struct {
	cents int64
}

func (a *amountField) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"' {
		raw = raw[1 : len(raw)-1]
	}
	cents, err := core.ParseDecimalToCents(raw)
	if err != nil {
		return err
	}
	a.cents = cents
	return nil
}

type createExpenseRequest struct {
	Amount   *amountField `json:"amount"`
	Category string       `json:"category"`
	Payer    string       `json:"payer"`
	Date     string       `json:"date"` // YYYY-MM-DD, optional
}

func (s *Server) handleExpenses(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		expenses := s.ledger.List()
		out := make([]expenseResponse, 0, len(expenses))
		for _, e := range expenses {
			out = append(out, toExpenseResponse(e))
		}
		writeJSON(w, http.StatusOK, out)

	case http.MethodPost:
		var req createExpenseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			if errors.Is(err, core.ErrInvalidAmount) {
				writeError(w, http.StatusUnprocessableEntity, "Importo no válido")
				return
			}
			writeError(w, http.StatusBadRequest, "Formato de solicitud no válido")
			return
		}
		if req.Amount == nil {
			writeError(w, http.StatusUnprocessableEntity, "Importo no válido")
			return
		}

		var date time.Time
		if v := strings.TrimSpace(req.Date); v != "" {
			parsed, err := time.Parse("2006-01-02", v)
			if err != nil {
				writeError(w, http.StatusBadRequest, "Fecha no válida")
				return
			}
			date = parsed
		}

		e, err := s.ledger.Add(r.Context(),
			core.Money{Cents: req.Amount.cents},
			sanitizeInput(req.Category),
			sanitizeInput(req.Payer),
			date)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, "Datos no válidos: "+err.Error())
			return
		}

		s.invalidateReads()
		writeJSON(w, http.StatusCreated, toExpenseResponse(e))

	default:
		w.Header().Set("Allow", "GET, POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleExpenseByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		w.Header().Set("Allow", "DELETE")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	idStr := strings.TrimPrefix(r.URL.Path, "/api/expenses/")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "ID no válido")
		return
	}

	// Absent ids are a silent no-op, so delete always answers 204.
	if err := s.ledger.Delete(r.Context(), id); err != nil {
		slog.ErrorContext(r.Context(), "Expense delete error",
			applog.FieldError, err, applog.FieldExpenseID, id)
		writeError(w, http.StatusInternalServerError, "Error al eliminar")
		return
	}

	s.invalidateReads()
	w.WriteHeader(http.StatusNoContent)
}

type addCategoryRequest struct {
	Label string `json:"label"`
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, s.categories.List())

	case http.MethodPost:
		var req addCategoryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Formato de solicitud no válido")
			return
		}
		if err := s.categories.Add(r.Context(), sanitizeInput(req.Label)); err != nil {
			slog.ErrorContext(r.Context(), "Category add error", applog.FieldError, err)
			writeError(w, http.StatusInternalServerError, "Error al guardar la categoría")
			return
		}
		s.invalidateReads()
		writeJSON(w, http.StatusOK, s.categories.List())

	default:
		w.Header().Set("Allow", "GET, POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleMembers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, s.members)
}

type categoryAmountResponse struct {
	Category    string `json:"category"`
	AmountCents int64  `json:"amount_cents"`
	Amount      string `json:"amount"`
}

type summaryResponse struct {
	Window      string                   `json:"window"`
	Year        int                      `json:"year,omitempty"`
	Month       int                      `json:"month,omitempty"`
	TotalCents  int64                    `json:"total_cents"`
	Total       string                   `json:"total"`
	ByCategory  []categoryAmountResponse `json:"by_category"`
	TopCategory *categoryAmountResponse  `json:"top_category"`
	Suggestion  string                   `json:"suggestion"`
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	window, err := parseWindow(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	key := summaryCacheKey(window)
	if cached, ok := s.summaryCache.Get(key); ok {
		slog.DebugContext(r.Context(), "Summary cache hit", applog.FieldWindow, key)
		writeJSON(w, http.StatusOK, cached)
		return
	}

	filtered := core.FilterByWindow(s.ledger.List(), window)
	agg := core.AggregateByCategory(filtered)
	total := core.TotalSpent(filtered)

	resp := summaryResponse{
		Window:     string(window.Kind),
		TotalCents: total.Cents,
		Total:      formatPesos(total.Cents),
		ByCategory: make([]categoryAmountResponse, 0, len(agg)),
		Suggestion: core.Suggestion(filtered, window),
	}
	if window.Kind != core.AllTime {
		resp.Year = window.Year
	}
	if window.Kind == core.Monthly {
		resp.Month = int(window.Month)
	}
	for _, ca := range agg {
		resp.ByCategory = append(resp.ByCategory, categoryAmountResponse{
			Category:    ca.Name,
			AmountCents: ca.Amount.Cents,
			Amount:      formatPesos(ca.Amount.Cents),
		})
	}
	if top, ok := core.TopCategory(agg); ok {
		resp.TopCategory = &categoryAmountResponse{
			Category:    top.Name,
			AmountCents: top.Amount.Cents,
			Amount:      formatPesos(top.Amount.Cents),
		}
	}

	s.summaryCache.Set(key, resp)
	writeJSON(w, http.StatusOK, resp)
}

type comparisonRow struct {
	Category    string `json:"category"`
	TotalACents int64  `json:"total_a_cents"`
	TotalBCents int64  `json:"total_b_cents"`
	DiffCents   int64  `json:"diff_cents"`
	Percent     int    `json:"percent"`
}

func (s *Server) handleComparison(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	yearA, errA := strconv.Atoi(r.URL.Query().Get("yearA"))
	yearB, errB := strconv.Atoi(r.URL.Query().Get("yearB"))
	if errA != nil || errB != nil {
		writeError(w, http.StatusBadRequest, "yearA and yearB are required")
		return
	}

	key := strconv.Itoa(yearA) + "-" + strconv.Itoa(yearB)
	if cached, ok := s.comparisonCache.Get(key); ok {
		slog.DebugContext(r.Context(), "Comparison cache hit", applog.FieldWindow, key)
		writeJSON(w, http.StatusOK, cached)
		return
	}

	rows := core.CompareYears(s.ledger.List(), yearA, yearB)
	out := make([]comparisonRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, comparisonRow{
			Category:    row.Category,
			TotalACents: row.TotalA.Cents,
			TotalBCents: row.TotalB.Cents,
			DiffCents:   row.Diff.Cents,
			Percent:     row.Percent,
		})
	}

	s.comparisonCache.Set(key, out)
	writeJSON(w, http.StatusOK, out)
}

type recoverRequest struct {
	Email string `json:"email"`
}

// handleRecover publishes a password-recovery request for the external
// mailer. The core never sees this path.
func (s *Server) handleRecover(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req recoverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Email) == "" {
		writeError(w, http.StatusBadRequest, "Email is required")
		return
	}

	code := recoveryCode()
	body := fmt.Sprintf(
		"Has solicitado recuperar tu contraseña para Gastos Tomi/Gabi.\n"+
			"Código de verificación: %s\n"+
			"Si no fuiste tú, ignora este correo.", code)

	err := s.notifier.Notify(r.Context(), strings.TrimSpace(req.Email),
		"Recuperación de Contraseña - Gastos Tomi/Gabi", body)
	if err != nil {
		slog.ErrorContext(r.Context(), "Recovery notification failed", applog.FieldError, err)
		writeError(w, http.StatusBadGateway, "Failed to send email")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Email sent successfully"})
}

// recoveryCode returns a six digit verification code.
func recoveryCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "000000"
	}
	return strconv.FormatInt(n.Int64()+100000, 10)
}
