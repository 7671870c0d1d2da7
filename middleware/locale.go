package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	DefaultLocale = "en"
	localeKey     = "locale"
)

// Supported locales; the first entry is the fallback.
var supported = []language.Tag{
	language.English,
	language.MustParse("nb"), // Norwegian Bokmål
}

var matcher = language.NewMatcher(supported)

// LocaleFromHeader negotiates the Accept-Language header against the
// supported locales and returns the base language ("en", "nb").
func LocaleFromHeader(c echo.Context, def string) string {
	al := strings.TrimSpace(c.Request().Header.Get("Accept-Language"))
	if al == "" {
		return def
	}

	tags, _, err := language.ParseAcceptLanguage(al)
	if err != nil || len(tags) == 0 {
		return def
	}

	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return def
	}

	base, _ := supported[idx].Base()
	return base.String()
}

// Locale returns the locale stored by LocaleMiddleware, or def.
func Locale(c echo.Context, def string) string {
	if s, ok := c.Get(localeKey).(string); ok && s != "" {
		return s
	}
	return def
}

// Printer returns a message printer for the request locale.
func Printer(c echo.Context) *message.Printer {
	tag, err := language.Parse(Locale(c, DefaultLocale))
	if err != nil {
		tag = language.English
	}
	return message.NewPrinter(tag)
}

// LocaleMiddleware stores the negotiated locale on the echo context.
//
// # Example:
// loc := middleware.Locale(c, "en")
func LocaleMiddleware(def string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(localeKey, LocaleFromHeader(c, def))
			return next(c)
		}
	}
}
