package script

// Detection is the result of classifying one text sample. Values are
// computed fresh per call and never mutated afterwards.
type Detection struct {
	// Script is the winning script identifier, or ISO when nothing matched.
	Script string
	// TopCount is the character count of the winning script.
	TopCount int
	// TotalMatched is the sum of counts across all matched scripts.
	TotalMatched int
	// Breakdown maps script identifier to character count. Scripts with
	// zero matches are omitted.
	Breakdown map[string]int
	// Confidence is TopCount/TotalMatched, or 0 when nothing matched.
	Confidence float64
}

// Classifier counts characters per script over a fixed catalog. The zero
// value is not usable; construct with NewClassifier.
type Classifier struct {
	catalog []Range
}

// NewClassifier builds a classifier over the given catalog. Pass
// DefaultCatalog() in production; tests may inject a reduced catalog.
func NewClassifier(catalog []Range) *Classifier {
	return &Classifier{catalog: catalog}
}

// Detect classifies text by counting code points per catalog range.
// The winner is the range with the highest count; ties resolve to the
// range declared earlier in the catalog. Pure function, total over all
// strings: empty or unrecognized input yields the ISO sentinel with zero
// counts and an empty breakdown.
func (c *Classifier) Detect(text string) Detection {
	counts := make(map[string]int)
	total := 0

	for _, r := range text {
		for _, sr := range c.catalog {
			if sr.Contains(r) {
				counts[sr.Script]++
				total++
				break
			}
		}
	}

	if total == 0 {
		return Detection{Script: ISO, Breakdown: map[string]int{}}
	}

	top := ""
	topCount := 0
	for _, sr := range c.catalog {
		if n := counts[sr.Script]; n > topCount {
			top = sr.Script
			topCount = n
		}
	}

	return Detection{
		Script:       top,
		TopCount:     topCount,
		TotalMatched: total,
		Breakdown:    counts,
		Confidence:   float64(topCount) / float64(total),
	}
}
