package server

import (
	"bytes"
	"math"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/retirement-projector/internal/calculation"
	"github.com/rpgo/retirement-projector/internal/domain"
)

const baselineBody = `{
	"current_age": 30,
	"retirement_age": 65,
	"life_expectancy": 90,
	"return_rate": 0.07,
	"inflation_rate": 0.02,
	"initial_investment": 10000,
	"contribution_amount": 5000,
	"contribution_interval": "annually",
	"withdrawal_amount": 50000,
	"investment_strategy": "balanced"
}`

func newTestServer() *Server {
	return New(calculation.NewProjectionEngine(), nil)
}

func do(t *testing.T, s *Server, method, path, contentType, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestServer(), http.MethodGet, "/api/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestProjection(t *testing.T) {
	rec := do(t, newTestServer(), http.MethodPost, "/api/projection", "application/json", baselineBody)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var report struct {
		ID     string                  `json:"id"`
		Inputs domain.ProjectionInputs `json:"inputs"`
		Result domain.ProjectionResult `json:"result"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))

	assert.NotEmpty(t, report.ID)
	assert.Equal(t, domain.StrategyBalanced, report.Inputs.InvestmentStrategy)
	require.Len(t, report.Result.YearlyResults, 61)
	assert.Equal(t, 10000.0, report.Result.YearlyResults[0].Balance)
	assert.InDelta(t, 16050.0, report.Result.YearlyResults[1].Balance, 1e-9)
	require.NotNil(t, report.Result.RetirementSavings)
}

func TestProjection_BadRequests(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		message string
	}{
		{"malformed json", `{"current_age":`, "Invalid request body"},
		{"unknown strategy", `{"current_age":30,"retirement_age":65,"life_expectancy":90,"investment_strategy":"yolo"}`, "Invalid request body"},
		{"retirement before current age", `{"current_age":70,"retirement_age":65,"life_expectancy":90}`, "retirement_age"},
		{"negative amount", `{"current_age":30,"retirement_age":65,"life_expectancy":90,"initial_investment":-1}`, "initial_investment"},
		{"life expectancy beyond max age", `{"current_age":30,"retirement_age":65,"life_expectancy":500000000}`, "life_expectancy"},
		{"balance overflows", `{"current_age":30,"retirement_age":65,"life_expectancy":150,"return_rate":1e200,"initial_investment":10000}`, "exceeds the representable range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, newTestServer(), http.MethodPost, "/api/projection", "application/json", tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, http.StatusBadRequest, resp.Status)
			assert.Contains(t, resp.Message, tt.message)
		})
	}
}

func TestCompare(t *testing.T) {
	rec := do(t, newTestServer(), http.MethodPost, "/api/compare", "application/json", baselineBody)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var comparison domain.StrategyComparison
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &comparison))
	require.Len(t, comparison.Outcomes, 3)
	assert.Equal(t, domain.StrategyWorstCase, comparison.Outcomes[0].Strategy)
	assert.Equal(t, domain.StrategyBestCase, comparison.Outcomes[2].Strategy)
	assert.LessOrEqual(t,
		comparison.Outcomes[0].Result.EndOfLifeSavings.Nominal,
		comparison.Outcomes[2].Result.EndOfLifeSavings.Nominal)
}

func TestForm(t *testing.T) {
	rec := do(t, newTestServer(), http.MethodGet, "/", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `<form method="post" action="/">`)
	assert.Contains(t, body, `name="current-age" value="30"`)
	assert.Contains(t, body, `name="return-rate" value="7"`)
	assert.Contains(t, body, `<option value="Balanced" selected>`)
	assert.Contains(t, body, `name="withdrawal-increase-rate" value="0"`)
	assert.NotContains(t, body, `id="error"`)
}

func TestFormSubmit(t *testing.T) {
	form := url.Values{
		"current-age":           {"30"},
		"retirement-age":        {"65"},
		"life-expectancy":       {"90"},
		"return-rate":           {"7"},
		"inflation-rate":        {"2%"},
		"initial-investment":    {"$10,000"},
		"contribution-amount":   {"5,000"},
		"contribution-interval": {"annually"},
		"withdrawal-amount":     {"50000"},
		"investment-strategy":   {"Balanced"},
	}
	rec := do(t, newTestServer(), http.MethodPost, "/", "application/x-www-form-urlencoded", form.Encode())
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `id="results-table"`)
	assert.Contains(t, body, `id="balance-chart"`)
	assert.Contains(t, body, "Strategy Comparison")
	assert.Contains(t, body, "$10,000.00")
}

func TestFormSubmit_InvalidInput(t *testing.T) {
	form := url.Values{
		"current-age":        {"30"},
		"retirement-age":     {"65"},
		"life-expectancy":    {"90"},
		"initial-investment": {"lots"},
	}
	rec := do(t, newTestServer(), http.MethodPost, "/", "application/x-www-form-urlencoded", form.Encode())
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `id="error"`)
	assert.Contains(t, body, "initial-investment")
	assert.Contains(t, body, `value="lots"`)
	assert.NotContains(t, body, `id="results-table"`)
}

func TestServerLogsEngineFailures(t *testing.T) {
	var logs bytes.Buffer
	engine := calculation.NewProjectionEngine()
	engine.SetLogger(calculation.NewWriterLogger(&logs, true))
	s := New(engine, calculation.NewWriterLogger(&logs, true))

	rec := do(t, s, http.MethodPost, "/api/projection", "application/json", `{"current_age":70,"retirement_age":65,"life_expectancy":90}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, logs.String(), "WARN rejected projection inputs")
}

func TestFormSubmit_WithdrawalIncreaseRate(t *testing.T) {
	form := url.Values{
		"current-age":              {"30"},
		"retirement-age":           {"65"},
		"life-expectancy":          {"90"},
		"return-rate":              {"7"},
		"inflation-rate":           {"2"},
		"initial-investment":       {"10000"},
		"withdrawal-amount":        {"40000"},
		"withdrawal-increase-rate": {"3"},
	}
	rec := do(t, newTestServer(), http.MethodPost, "/", "application/x-www-form-urlencoded", form.Encode())
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "grown 3.00% a year from retirement")

	form.Set("inflation-adjusted-withdrawal", "on")
	rec = do(t, newTestServer(), http.MethodPost, "/", "application/x-www-form-urlencoded", form.Encode())
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "withdrawal_increase_rate")
}

func TestWriteJSON_EncodeFailure(t *testing.T) {
	rec := httptest.NewRecorder()
	writeJSON(rec, http.StatusOK, map[string]float64{"balance": math.Inf(1)})

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusInternalServerError, resp.Status)
	assert.Equal(t, "could not encode response", resp.Message)
}

func TestAccessLog(t *testing.T) {
	var logs bytes.Buffer
	s := New(calculation.NewProjectionEngine(), calculation.NewWriterLogger(&logs, true))

	rec := do(t, s, http.MethodGet, "/api/health", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, logs.String(), "DEBUG ")
	assert.Contains(t, logs.String(), "/api/health")
	assert.Contains(t, logs.String(), " 200 ")

	logs.Reset()
	s = New(calculation.NewProjectionEngine(), calculation.NewWriterLogger(&logs, false))
	do(t, s, http.MethodGet, "/api/health", "", "")
	assert.Empty(t, logs.String())
}
