// Package output renders simulation results in the supported formats.
package output

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/lifehedge/lifehedge/internal/domain"
)

// Formatter renders each result kind to a byte slice the command layer
// writes out verbatim.
type Formatter interface {
	Name() string
	FormatSimulation(result *domain.SimulationResult) ([]byte, error)
	FormatOnset(result *domain.OnsetResult) ([]byte, error)
	FormatQuiz(result *domain.QuizResult) ([]byte, error)
}

var formatters = []Formatter{
	ConsoleFormatter{},
	JSONFormatter{},
	CSVFormatter{},
}

// GetFormatterByName returns the registered formatter, or nil when the name
// is unknown.
func GetFormatterByName(name string) Formatter {
	for _, f := range formatters {
		if f.Name() == name {
			return f
		}
	}
	return nil
}

// FormatterNames lists the registered formatter names for usage text.
func FormatterNames() []string {
	names := make([]string, 0, len(formatters))
	for _, f := range formatters {
		names = append(names, f.Name())
	}
	return names
}

// FormatMoney renders a monetary amount in the reference 10,000-KRW unit
// with thousands grouping, e.g. "1,200만원".
func FormatMoney(amount decimal.Decimal) string {
	return groupThousands(amount.Round(0).String()) + "만원"
}

// FormatPercent renders a percentage with one decimal place.
func FormatPercent(amount decimal.Decimal) string {
	return amount.StringFixed(1) + "%"
}

func groupThousands(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
