package http

import (
	"encoding/json"
	"math"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	"loanbook-backend/internal/usecase/portfolio"
)

func newPortfolioHandler() *PortfolioHandler {
	loans, _, txns, _ := fixtureMocks()
	return NewPortfolioHandler(portfolio.NewService(loans, txns))
}

func TestPortfolioSummary_ReferenceTotals(t *testing.T) {
	e := newEchoWithValidator()
	h := newPortfolioHandler()

	req := httptest.NewRequest(stdhttp.MethodGet, "/api/v1/portfolio/summary", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Summary(c); err != nil {
		t.Fatalf("Summary error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var got portfolio.Summary
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if got.TotalLoans != 6 || got.ActiveLoans != 3 {
		t.Fatalf("counts: %+v", got)
	}
	if got.TotalDisbursed != 205000 || got.TotalCollected != 35134 {
		t.Fatalf("totals: %+v", got)
	}
	if math.Abs(got.CollectionRate-17.14) > 0.01 {
		t.Fatalf("collection rate = %v", got.CollectionRate)
	}
}

func TestPortfolioCashFlow_Series(t *testing.T) {
	e := newEchoWithValidator()
	h := newPortfolioHandler()

	req := httptest.NewRequest(stdhttp.MethodGet, "/api/v1/portfolio/cashflow", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CashFlow(c); err != nil {
		t.Fatalf("CashFlow error: %v", err)
	}
	var got []portfolio.CashFlowPoint
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if len(got) != 19 {
		t.Fatalf("periods = %d, want 19", len(got))
	}
	if got[0].Period != "Jan 24" || got[18].Period != "Jan 26" {
		t.Fatalf("period bounds: first=%s last=%s", got[0].Period, got[18].Period)
	}
}

func TestPortfolioDistributions(t *testing.T) {
	e := newEchoWithValidator()
	h := newPortfolioHandler()

	req := httptest.NewRequest(stdhttp.MethodGet, "/api/v1/portfolio/risk-distribution", nil)
	rec := httptest.NewRecorder()
	if err := h.RiskDistribution(e.NewContext(req, rec)); err != nil {
		t.Fatalf("RiskDistribution error: %v", err)
	}
	var risk []portfolio.Bucket
	if err := json.Unmarshal(rec.Body.Bytes(), &risk); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if len(risk) != 2 || risk[0].Name != "low" || risk[0].Value != 3 {
		t.Fatalf("risk = %+v", risk)
	}

	req = httptest.NewRequest(stdhttp.MethodGet, "/api/v1/portfolio/status-distribution", nil)
	rec = httptest.NewRecorder()
	if err := h.StatusDistribution(e.NewContext(req, rec)); err != nil {
		t.Fatalf("StatusDistribution error: %v", err)
	}
	var status []portfolio.Bucket
	if err := json.Unmarshal(rec.Body.Bytes(), &status); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if len(status) != 4 || status[0].Name != "active" || status[0].Value != 3 {
		t.Fatalf("status = %+v", status)
	}

	req = httptest.NewRequest(stdhttp.MethodGet, "/api/v1/portfolio/rate-buckets", nil)
	rec = httptest.NewRecorder()
	if err := h.RateBuckets(e.NewContext(req, rec)); err != nil {
		t.Fatalf("RateBuckets error: %v", err)
	}
	var rates []portfolio.RateBucket
	if err := json.Unmarshal(rec.Body.Bytes(), &rates); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if len(rates) != 3 || rates[0].Range != "6-7%" || rates[0].Count != 2 {
		t.Fatalf("rates = %+v", rates)
	}
}
