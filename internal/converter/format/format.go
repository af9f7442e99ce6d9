package format

import (
	"fmt"
	"github.com/langowen/converter/internal/entities"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"math"
)

const DefaultPrecision = 5

// Formatter renders amounts with thousands grouping. The zero-decimal
// currency is shown as a truncated integer, every other currency with a
// fixed number of decimal places.
type Formatter struct {
	printer     *message.Printer
	zeroDecimal entities.Currency
	pattern     string
}

func NewFormatter(zeroDecimal entities.Currency, precision int) *Formatter {
	if precision < 0 {
		precision = DefaultPrecision
	}

	return &Formatter{
		printer:     message.NewPrinter(language.English),
		zeroDecimal: zeroDecimal,
		pattern:     fmt.Sprintf("%%.%df", precision),
	}
}

func (f *Formatter) Format(value entities.Amount, currency entities.Currency) string {
	if currency == f.zeroDecimal {
		truncated := math.Trunc(float64(value))
		if truncated == 0 {
			truncated = 0 // drops the sign of -0
		}
		return f.printer.Sprintf("%.0f", truncated)
	}

	return f.printer.Sprintf(f.pattern, float64(value))
}
