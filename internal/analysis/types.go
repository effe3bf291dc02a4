// Package analysis orchestrates the technical, fundamental, and risk
// engines into one composite recommendation per request.
package analysis

import (
	"fmt"
	"time"

	"github.com/mugpunters/vantage/internal/contracts"
	"github.com/mugpunters/vantage/internal/fundamental"
	"github.com/mugpunters/vantage/internal/technical"
)

// Request carries every input for one analysis run. All data is already
// materialized; the engine performs no I/O.
type Request struct {
	Symbol   string                `json:"symbol"`
	Tier     contracts.RiskTier    `json:"risk_tier"`
	Industry string                `json:"industry,omitempty"`
	Prices   technical.PriceSeries `json:"prices"`
	Snapshot fundamental.Snapshot  `json:"snapshot"`

	// Single-name risk inputs, optional.
	Volatility contracts.Value `json:"volatility"`
	Beta       contracts.Value `json:"beta"`
}

// Record is the lifecycle wrapper around one run. The ID and timestamps
// belong to the record, not the analysis: two runs over identical inputs
// produce identical Analysis values under distinct records.
type Record struct {
	ID           string                       `json:"id"`
	Symbol       string                       `json:"symbol"`
	Status       contracts.AnalysisStatus     `json:"status"`
	ErrorMessage string                       `json:"error_message,omitempty"`
	AnalysisDate time.Time                    `json:"analysis_date"`
	CompletedAt  *time.Time                   `json:"completed_at,omitempty"`
	Analysis     *contracts.CompositeAnalysis `json:"analysis,omitempty"`
}

// GenerateAnalysisID returns a timestamp-based record identifier.
func GenerateAnalysisID() string {
	return fmt.Sprintf("analysis_%s", time.Now().Format("20060102_150405"))
}

func newRecord(symbol string) *Record {
	return &Record{
		ID:           GenerateAnalysisID(),
		Symbol:       symbol,
		Status:       contracts.StatusPending,
		AnalysisDate: time.Now(),
	}
}

func (r *Record) fail(err error) *Record {
	now := time.Now()
	r.Status = contracts.StatusFailed
	r.ErrorMessage = err.Error()
	r.CompletedAt = &now
	return r
}

func (r *Record) complete(a *contracts.CompositeAnalysis) *Record {
	now := time.Now()
	r.Status = contracts.StatusCompleted
	r.Analysis = a
	r.CompletedAt = &now
	return r
}
