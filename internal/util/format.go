package util

import (
	"strconv"
	"strings"
)

// FormatThousands renders n with comma separators, e.g. 172984 -> "172,984".
func FormatThousands(n int) string {
	s := strconv.Itoa(n)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	return sign + groupDigits(s)
}

// FormatFloatThousands rounds v to a whole number and renders it with
// comma separators, e.g. 172.984 -> "173".
func FormatFloatThousands(v float64) string {
	s := strconv.FormatFloat(v, 'f', 0, 64)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	if s == "0" {
		sign = ""
	}
	return sign + groupDigits(s)
}

func groupDigits(s string) string {
	if len(s) <= 3 {
		return s
	}

	var result []byte
	for i, digit := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			result = append(result, ',')
		}
		result = append(result, digit)
	}

	return string(result)
}

// FormatPercent renders a share rounded to a whole percent, e.g. "22%".
func FormatPercent(p float64) string {
	return strconv.FormatFloat(p, 'f', 0, 64) + "%"
}
