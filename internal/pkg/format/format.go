// Package format renders large counts and dollar amounts the way the
// dashboard displays them: compacted above a thousand, locale-grouped below.
package format

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Count compacts n to "1.2M" / "3.4K" style above the respective
// thresholds, otherwise renders it with thousands separators.
func Count(n int) string {
	switch {
	case n >= 1_000_000 || n <= -1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000 || n <= -1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	default:
		return printer.Sprintf("%d", n)
	}
}

// Currency renders a dollar amount, compacted like Count.
func Currency(n int) string {
	if n < 0 {
		return "-$" + Count(-n)
	}
	return "$" + Count(n)
}
