package middleware

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/grasp-labs/ds-go-katana-models/middleware/requestctx"
)

// Machine readable error codes.
const (
	CodeInvalidEnumValue = "invalid_enum_value"
	CodeInvalidParameter = "invalid_parameter"
	CodeNotFound         = "not_found"
	CodeInternal         = "internal_error"
)

var statusByCode = map[string]int{
	CodeInvalidEnumValue: http.StatusBadRequest,
	CodeInvalidParameter: http.StatusBadRequest,
	CodeNotFound:         http.StatusNotFound,
	CodeInternal:         http.StatusInternalServerError,
}

func init() {
	nb := language.MustParse("nb")

	message.SetString(language.English, CodeInvalidEnumValue, "%q is not a valid value for %s")
	message.SetString(nb, CodeInvalidEnumValue, "%q er ikke en gyldig verdi for %s")

	message.SetString(language.English, CodeInvalidParameter, "Invalid parameter: %s")
	message.SetString(nb, CodeInvalidParameter, "Ugyldig parameter: %s")

	message.SetString(language.English, CodeNotFound, "%s not found")
	message.SetString(nb, CodeNotFound, "%s ble ikke funnet")

	message.SetString(language.English, CodeInternal, "Internal error")
	message.SetString(nb, CodeInternal, "Intern feil")
}

// HTTPError is the JSON error body returned to callers.
type HTTPError struct {
	RequestID string `json:"request_id"`
	Code      string `json:"code"`
	Message   string `json:"message"`
	Status    int    `json:"status"`
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.Status, e.Code, e.Message)
}

// StatusFor maps a machine code to its HTTP status; unknown codes are 500.
func StatusFor(code string) int {
	if s, ok := statusByCode[code]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// ResolveErr builds a localized HTTP error from a machine code.
// Usage: return c.JSON(ResolveErr(c, CodeNotFound, "stocktake"))
func ResolveErr(c echo.Context, code string, args ...any) (int, *HTTPError) {
	he := WrapErr(c, code, args...)
	return he.Status, he
}

// WrapErr builds a localized HTTP error from a machine code.
func WrapErr(c echo.Context, code string, args ...any) *HTTPError {
	return &HTTPError{
		RequestID: requestctx.GetRequestID(c.Request().Context()),
		Code:      code,
		Message:   Printer(c).Sprintf(code, args...),
		Status:    StatusFor(code),
	}
}
