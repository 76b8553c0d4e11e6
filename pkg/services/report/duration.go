package report

import (
	"fmt"
	"strconv"
	"strings"
)

// parseHHMM converts an "HH:MM" string into total minutes. ok is false when
// the string does not split into two non-negative integers.
func parseHHMM(s string) (minutes int, ok bool) {
	hh, mm, found := strings.Cut(s, ":")
	if !found {
		return 0, false
	}
	h, err := strconv.Atoi(strings.TrimSpace(hh))
	if err != nil || h < 0 {
		return 0, false
	}
	m, err := strconv.Atoi(strings.TrimSpace(mm))
	if err != nil || m < 0 {
		return 0, false
	}
	return h*60 + m, true
}

// minutesOrZero is the lenient form used when summing stoppage durations:
// an unparseable duration contributes nothing instead of failing the report.
func minutesOrZero(s string) int {
	m, _ := parseHHMM(s)
	return m
}

func formatHHMM(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
