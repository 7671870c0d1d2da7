package models

// FindPurchaseOrdersStatus is the receiving state filter accepted when
// searching purchase orders.
type FindPurchaseOrdersStatus string

const (
	FindPurchaseOrdersStatusNotReceived       FindPurchaseOrdersStatus = "NOT_RECEIVED"
	FindPurchaseOrdersStatusPartiallyReceived FindPurchaseOrdersStatus = "PARTIALLY_RECEIVED"
	FindPurchaseOrdersStatusReceived          FindPurchaseOrdersStatus = "RECEIVED"
)

func FindPurchaseOrdersStatuses() []FindPurchaseOrdersStatus {
	return []FindPurchaseOrdersStatus{
		FindPurchaseOrdersStatusNotReceived,
		FindPurchaseOrdersStatusPartiallyReceived,
		FindPurchaseOrdersStatusReceived,
	}
}

func ParseFindPurchaseOrdersStatus(s string) (FindPurchaseOrdersStatus, error) {
	status := FindPurchaseOrdersStatus(s)
	if !status.IsValid() {
		return "", &InvalidEnumValueError{Enum: "FindPurchaseOrdersStatus", Value: s}
	}
	return status, nil
}

func (s FindPurchaseOrdersStatus) IsValid() bool {
	switch s {
	case FindPurchaseOrdersStatusNotReceived,
		FindPurchaseOrdersStatusPartiallyReceived,
		FindPurchaseOrdersStatusReceived:
		return true
	default:
		return false
	}
}

func (s FindPurchaseOrdersStatus) String() string {
	return string(s)
}

func (s FindPurchaseOrdersStatus) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, &InvalidEnumValueError{Enum: "FindPurchaseOrdersStatus", Value: string(s)}
	}
	return []byte(s), nil
}

func (s *FindPurchaseOrdersStatus) UnmarshalText(text []byte) error {
	parsed, err := ParseFindPurchaseOrdersStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
