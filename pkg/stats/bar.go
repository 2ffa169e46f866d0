package stats

// Style tags the part of the duration range a segment belongs to.
type Style int

// Segment styles, from the fastest builds to the slowest.
const (
	StyleLow Style = iota
	StyleMid
	StyleHigh
)

// String returns the style name.
func (s Style) String() string {
	switch s {
	case StyleLow:
		return "low"
	case StyleMid:
		return "mid"
	case StyleHigh:
		return "high"
	default:
		return "unknown"
	}
}

// Segment is a run of cells drawn in a single style.
type Segment struct {
	Style Style
	Width int
}

// Bar is a sequence of segments covering the scaled range 0..max.
type Bar []Segment

// Width returns the total number of cells of the bar.
func (b Bar) Width() int {
	total := 0
	for _, seg := range b {
		total += seg.Width
	}
	return total
}

// NewBar splits the range 0..max into low, mid and high runs at min and split.
// The high run includes the cell at max. Negative runs are clamped to zero.
func NewBar(minimum, split, maximum int) Bar {
	return Bar{
		{Style: StyleLow, Width: nonNegative(minimum)},
		{Style: StyleMid, Width: nonNegative(split - minimum)},
		// +1: the terminal cell at max belongs to the high run, giving width max+1.
		{Style: StyleHigh, Width: nonNegative(maximum - split + 1)},
	}
}

// Band returns the min/avg/max gradient drawn above and below the rows.
func (s Summary) Band() Bar {
	return NewBar(s.Min, s.Avg, s.Max)
}

// Row returns the bar of a single build whose scaled duration is scaled.
func (s Summary) Row(scaled int) Bar {
	return NewBar(s.Min, scaled, s.Max)
}

func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
