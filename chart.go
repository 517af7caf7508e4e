package goalfolio

import (
	"fmt"
	"strings"
)

// ChartRange is a chart window token: how far back from now the displayed
// series starts.
type ChartRange int

const (
	Range1D ChartRange = iota
	Range5D
	Range1M
	Range6M
	RangeYTD
	Range1Y
)

// ChartRanges lists all tokens in display order.
var ChartRanges = []ChartRange{Range1D, Range5D, Range1M, Range6M, RangeYTD, Range1Y}

func (r ChartRange) String() string {
	switch r {
	case Range1D:
		return "1D"
	case Range5D:
		return "5D"
	case Range1M:
		return "1M"
	case Range6M:
		return "6M"
	case RangeYTD:
		return "YTD"
	case Range1Y:
		return "1Y"
	default:
		panic(fmt.Sprintf("unknown chart range %d", r))
	}
}

// ParseChartRange parses a range token like "1D" or "ytd".
func ParseChartRange(s string) (ChartRange, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "1D":
		return Range1D, nil
	case "5D":
		return Range5D, nil
	case "1M":
		return Range1M, nil
	case "6M":
		return Range6M, nil
	case "YTD":
		return RangeYTD, nil
	case "1Y":
		return Range1Y, nil
	default:
		return Range1D, fmt.Errorf("unknown chart range %q", s)
	}
}

// Start computes the first day of the window ending at now. Month and year
// offsets use calendar arithmetic, so boundaries respect actual month
// lengths.
func (r ChartRange) Start(now Date) Date {
	switch r {
	case Range1D:
		return now.Add(-1)
	case Range5D:
		return now.Add(-5)
	case Range1M:
		return now.AddMonths(-1)
	case Range6M:
		return now.AddMonths(-6)
	case RangeYTD:
		return now.StartOfYear()
	case Range1Y:
		return now.AddYears(-1)
	default:
		panic(fmt.Sprintf("unknown chart range %d", r))
	}
}

// ChartPoint is one displayable (day, value) sample.
type ChartPoint struct {
	On    Date
	Value float64
}

// Window filters the valuation series down to the points within
// [r.Start(now), now], in ascending day order. An empty result is valid: the
// consumer should then fall back to FallbackWindow with the live total rather
// than render an empty chart.
func Window(series *History[float64], r ChartRange, now Date) []ChartPoint {
	start := r.Start(now)
	var points []ChartPoint
	for on, value := range series.Values() {
		if on.Before(start) || on.After(now) {
			continue
		}
		points = append(points, ChartPoint{On: on, Value: value})
	}
	return points
}

// FallbackWindow is the degenerate single-point window displayed when no
// recorded valuation falls inside the requested range.
func FallbackWindow(total float64, now Date) []ChartPoint {
	return []ChartPoint{{On: now, Value: total}}
}

// WindowChange reports the absolute and relative change over the window:
// last minus first, and its percentage of the first value. A zero first value
// yields 0%, never a division by zero.
func WindowChange(points []ChartPoint) (change float64, percent Percent) {
	if len(points) == 0 {
		return 0, 0
	}
	first, last := points[0].Value, points[len(points)-1].Value
	change = last - first
	if first == 0 {
		return change, 0
	}
	return change, Percent(change / first * 100)
}
