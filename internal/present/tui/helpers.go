package tui

import "math"

// syncOffset maps a scroll offset in one pane onto another pane by
// percentage of their scrollable ranges.
func syncOffset(srcOffset, srcTotal, srcVisible, dstTotal, dstVisible int) int {
	srcRange := srcTotal - srcVisible
	dstRange := dstTotal - dstVisible
	if srcRange <= 0 || dstRange <= 0 {
		return 0
	}
	pct := float64(srcOffset) / float64(srcRange)
	if math.IsNaN(pct) || math.IsInf(pct, 0) {
		return 0
	}
	pct = math.Max(0, math.Min(1, pct))
	return int(math.Round(pct * float64(dstRange)))
}
