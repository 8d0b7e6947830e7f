package console

import (
	"math"

	"realty/internal/model"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatPrice renders whole US dollars with thousands grouping, e.g. $450,000
func FormatPrice(v float64) string {
	return printer.Sprintf("$%d", int64(math.Round(v)))
}

// FormatCount renders an integer with thousands grouping
func FormatCount(n int) string {
	return printer.Sprintf("%d", n)
}

// FormatDate renders a timestamp as e.g. Jan 2, 2006. Zero renders empty.
func FormatDate(ts model.Timestamp) string {
	if ts.IsZero() {
		return ""
	}
	return ts.UTC().Format("Jan 2, 2006")
}
