package models

// StocktakeStatus Enum-like constants
type StocktakeStatus string

const (
	StocktakeStatusCompleted  StocktakeStatus = "COMPLETED"
	StocktakeStatusDraft      StocktakeStatus = "DRAFT"
	StocktakeStatusInProgress StocktakeStatus = "IN_PROGRESS"
)

// StocktakeStatuses returns every defined status in declaration order.
func StocktakeStatuses() []StocktakeStatus {
	return []StocktakeStatus{
		StocktakeStatusCompleted,
		StocktakeStatusDraft,
		StocktakeStatusInProgress,
	}
}

// ParseStocktakeStatus matches s exactly (case-sensitive, no trimming)
// against the known tokens.
func ParseStocktakeStatus(s string) (StocktakeStatus, error) {
	status := StocktakeStatus(s)
	if !status.IsValid() {
		return "", &InvalidEnumValueError{Enum: "StocktakeStatus", Value: s}
	}
	return status, nil
}

func (s StocktakeStatus) IsValid() bool {
	switch s {
	case StocktakeStatusCompleted, StocktakeStatusDraft, StocktakeStatusInProgress:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s StocktakeStatus) String() string {
	return string(s)
}

// MarshalText implements encoding.TextMarshaler. Unknown values are
// refused rather than written to the wire.
func (s StocktakeStatus) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, &InvalidEnumValueError{Enum: "StocktakeStatus", Value: string(s)}
	}
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *StocktakeStatus) UnmarshalText(text []byte) error {
	parsed, err := ParseStocktakeStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
