package compare

// Options parametrize the two comparison metrics.
type Options struct {
	PerceptualSize          int     // edge length for the shape metric, default 64
	AnalyticThreshold       float64 // per-pixel difference threshold in [0,1], default 0.5
	AnalyticScaleToSameSize bool    // scale both images before the analytic metric
	AnalyticSize            int     // edge length for scaled analytic comparison, default 128
}

// DefaultOptions returns the standard comparison parameters.
func DefaultOptions() Options {
	return Options{
		PerceptualSize:    64,
		AnalyticThreshold: 0.5,
		AnalyticSize:      128,
	}
}

// SymbolScore holds the two similarity metrics for a single symbol, each
// in percent.
type SymbolScore struct {
	Analytic float64 // pixel-by-pixel metric
	Shape    float64 // perceptual-hash metric
}

// Mean returns the combined similarity of a symbol, the mean of its two
// metrics.
func (s SymbolScore) Mean() float64 {
	return (s.Analytic + s.Shape) / 2
}

// ScoreSet maps symbol labels to their similarity scores.
type ScoreSet map[string]SymbolScore

// Mean returns the combined similarity over all symbols of the set, and 0
// for an empty set.
func (s ScoreSet) Mean() float64 {
	if len(s) == 0 {
		return 0
	}
	sum := 0.0
	for _, score := range s {
		sum += score.Mean()
	}
	return sum / float64(len(s))
}
