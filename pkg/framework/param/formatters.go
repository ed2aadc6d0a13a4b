package param

import (
	"fmt"
	"strconv"
	"strings"
)

// FrequencyFormatter formats frequency values with Hz/kHz. Sub-hertz rates
// keep three decimals.
func FrequencyFormatter(hz float64) string {
	switch {
	case hz >= 1000:
		return fmt.Sprintf("%.2f kHz", hz/1000)
	case hz < 1:
		return fmt.Sprintf("%.3f Hz", hz)
	}
	return fmt.Sprintf("%.2f Hz", hz)
}

// FrequencyParser parses frequency strings
func FrequencyParser(str string) (float64, error) {
	str = strings.TrimSpace(str)
	lower := strings.ToLower(str)

	if strings.HasSuffix(lower, "khz") {
		val, err := strconv.ParseFloat(strings.TrimSpace(str[:len(str)-3]), 64)
		if err != nil {
			return 0, err
		}
		return val * 1000, nil
	}

	if strings.HasSuffix(lower, "hz") {
		str = str[:len(str)-2]
	}
	return strconv.ParseFloat(strings.TrimSpace(str), 64)
}

// TimeFormatter formats millisecond values, switching to seconds at 1000 ms
func TimeFormatter(ms float64) string {
	if ms >= 1000 {
		return fmt.Sprintf("%.2f s", ms/1000)
	}
	return fmt.Sprintf("%.1f ms", ms)
}

// TimeParser parses "250 ms", "1.5 s" or a bare number of milliseconds
func TimeParser(str string) (float64, error) {
	str = strings.ToLower(strings.TrimSpace(str))

	if strings.HasSuffix(str, "ms") {
		return strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(str, "ms")), 64)
	}

	if strings.HasSuffix(str, "s") {
		val, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(str, "s")), 64)
		if err != nil {
			return 0, err
		}
		return val * 1000, nil
	}

	return strconv.ParseFloat(str, 64)
}

// AmountFormatter formats a 0-1 amount as a percentage
func AmountFormatter(value float64) string {
	return fmt.Sprintf("%.0f%%", value*100)
}

// AmountParser parses "75%" as 0.75. A bare number is taken as a percentage.
func AmountParser(str string) (float64, error) {
	str = strings.TrimSuffix(strings.TrimSpace(str), "%")
	val, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
	if err != nil {
		return 0, err
	}
	return val / 100, nil
}
