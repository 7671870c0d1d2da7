package models

import (
	"encoding/json"
	"strings"
	"time"
)

// Stocktake is an inventory count at a single location.
type Stocktake struct {
	ID              int64           `json:"id"`
	StocktakeNumber string          `json:"stocktake_number"`
	LocationID      int64           `json:"location_id"`
	Status          StocktakeStatus `json:"status"`
	Reason          string          `json:"reason,omitempty"`
	AdditionalInfo  string          `json:"additional_info,omitempty"`
	StartedDate     *time.Time      `json:"started_date,omitempty"`
	CompletedDate   *time.Time      `json:"completed_date,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// UnmarshalJSON decodes a stocktake and rejects a null or missing status.
func (s *Stocktake) UnmarshalJSON(data []byte) error {
	type plain Stocktake
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	if !p.Status.IsValid() {
		return &InvalidEnumValueError{Enum: "StocktakeStatus", Value: string(p.Status)}
	}
	*s = Stocktake(p)
	return nil
}

func (s *Stocktake) Validate() []ValidationError {
	var errors []ValidationError
	if strings.TrimSpace(s.StocktakeNumber) == "" {
		errors = append(errors, ValidationError{
			Field:   "stocktake_number",
			Message: "Required.",
		})
	}

	if s.LocationID <= 0 {
		errors = append(errors, ValidationError{
			Field:   "location_id",
			Message: "Required.",
		})
	}

	if !s.Status.IsValid() {
		errors = append(errors, ValidationError{
			Field:   "status",
			Message: "Must be one of COMPLETED, DRAFT, IN_PROGRESS.",
		})
	}

	return errors
}

// StocktakeList is the list envelope returned by the stocktakes endpoint.
type StocktakeList struct {
	Data []Stocktake `json:"data"`
}

// Filter returns the entries carrying the given status.
func (l StocktakeList) Filter(status StocktakeStatus) []Stocktake {
	out := make([]Stocktake, 0, len(l.Data))
	for _, s := range l.Data {
		if s.Status == status {
			out = append(out, s)
		}
	}
	return out
}
