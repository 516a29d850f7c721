package ingest

import (
	"regexp"
	"strconv"
	"strings"
)

// Salary values below this are assumed to be hourly rates and converted to
// a monthly equivalent. Inherited from the reference data: uploads mix
// monthly salaries with hourly contractor rates and carry no unit field.
const (
	hourlyRateThreshold = 300
	monthlyHours        = 168
)

type salaryInfo struct {
	min      *float64
	max      *float64
	avg      *float64
	currency string
}

// Numeric tokens with optional space/comma thousands grouping.
var salaryNumber = regexp.MustCompile(`\d{1,3}(?:[ ,\x{00a0}]\d{3})+|\d+(?:\.\d+)?`)

var currencyTokens = []struct {
	token    string
	currency string
}{
	{"pln", "PLN"},
	{"zł", "PLN"},
	{"eur", "EUR"},
	{"€", "EUR"},
	{"usd", "USD"},
	{"$", "USD"},
}

// parseSalary extracts a currency and one or two numeric tokens from
// free-form salary text. Two tokens form a range, one token applies to all
// three fields. Unparseable text yields all-nil values, never an error.
func parseSalary(text string) salaryInfo {
	info := salaryInfo{currency: detectCurrency(text)}

	matches := salaryNumber.FindAllString(text, -1)
	if len(matches) == 0 {
		info.currency = ""
		return info
	}

	values := make([]float64, 0, 2)
	for _, m := range matches {
		if len(values) == 2 {
			break
		}
		v, err := strconv.ParseFloat(stripGrouping(m), 64)
		if err != nil {
			continue
		}
		values = append(values, monthlyEquivalent(v))
	}

	switch len(values) {
	case 1:
		v := values[0]
		info.min, info.max, info.avg = &v, &v, &v
	case 2:
		// per-value hourly conversion can reorder a range straddling the
		// threshold, so min/max are fixed after conversion
		lo, hi := values[0], values[1]
		if lo > hi {
			lo, hi = hi, lo
		}
		mean := (lo + hi) / 2
		info.min, info.max, info.avg = &lo, &hi, &mean
	default:
		info.currency = ""
	}

	return info
}

// monthlyEquivalent converts hourly rates to monthly once, at parse time.
// Already-monthly values pass through untouched.
func monthlyEquivalent(v float64) float64 {
	if v > 0 && v < hourlyRateThreshold {
		return v * monthlyHours
	}
	return v
}

func detectCurrency(text string) string {
	lower := strings.ToLower(text)
	for _, c := range currencyTokens {
		if strings.Contains(lower, c.token) {
			return c.currency
		}
	}
	return "PLN"
}

func stripGrouping(s string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == ',' || r == '\u00a0' {
			return -1
		}
		return r
	}, s)
}
