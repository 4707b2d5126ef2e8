// Package populate holds types describing an ingestion run over the
// catalog id range.
package populate

import (
	"fmt"
	"time"
)

// Outcome is the result of ingestion of one catalog id.
type Outcome int

const (
	// Stored means the record was written to all relations.
	Stored Outcome = iota

	// NotFound means the catalog has no entry for the id.
	NotFound

	// FetchFailed means the entry could not be downloaded or decoded.
	FetchFailed

	// ExtractFailed means the entry misses required fields.
	ExtractFailed

	// StoreFailed means the database rejected the record.
	StoreFailed
)

var outcomeNames = []string{
	"stored",
	"not_found",
	"fetch_failed",
	"extract_failed",
	"store_failed",
}

// Outcomes lists all outcomes in a stable order.
var Outcomes = []Outcome{Stored, NotFound, FetchFailed, ExtractFailed, StoreFailed}

func (o Outcome) String() string {
	if o < 0 || int(o) >= len(outcomeNames) {
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
	return outcomeNames[o]
}

// Summary counts outcomes of an ingestion run.
type Summary struct {
	// RunID identifies the run in logs and metrics.
	RunID string `json:"run_id" yaml:"run_id"`

	FirstID int `json:"first_id" yaml:"first_id"`
	LastID  int `json:"last_id"  yaml:"last_id"`

	// Total is the number of processed ids.
	Total int `json:"total" yaml:"total"`

	Stored        int `json:"stored"         yaml:"stored"`
	NotFound      int `json:"not_found"      yaml:"not_found"`
	FetchFailed   int `json:"fetch_failed"   yaml:"fetch_failed"`
	ExtractFailed int `json:"extract_failed" yaml:"extract_failed"`
	StoreFailed   int `json:"store_failed"   yaml:"store_failed"`

	Duration time.Duration `json:"duration" yaml:"duration"`
}

// Add registers the outcome of one id.
func (s *Summary) Add(o Outcome) {
	s.Total++
	switch o {
	case Stored:
		s.Stored++
	case NotFound:
		s.NotFound++
	case FetchFailed:
		s.FetchFailed++
	case ExtractFailed:
		s.ExtractFailed++
	case StoreFailed:
		s.StoreFailed++
	}
}

// Count returns the number of ids with the given outcome.
func (s Summary) Count(o Outcome) int {
	switch o {
	case Stored:
		return s.Stored
	case NotFound:
		return s.NotFound
	case FetchFailed:
		return s.FetchFailed
	case ExtractFailed:
		return s.ExtractFailed
	case StoreFailed:
		return s.StoreFailed
	default:
		return 0
	}
}

// Failed returns the number of ids that were not stored.
func (s Summary) Failed() int {
	return s.Total - s.Stored
}

// AllFailed is true when ids were processed and none was stored.
func (s Summary) AllFailed() bool {
	return s.Total > 0 && s.Stored == 0
}
