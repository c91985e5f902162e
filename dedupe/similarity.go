package dedupe

import "github.com/xrash/smetrics"

// jaroSimilarity returns the Jaro similarity of a and b in [0,1].
func jaroSimilarity(a, b string) float64 {
	return smetrics.Jaro(a, b)
}

// jaroWinklerSimilarity returns the Jaro-Winkler similarity of a and b
// in [0,1], using the conventional boost threshold (0.7) and prefix
// length (4).
func jaroWinklerSimilarity(a, b string) float64 {
	return smetrics.JaroWinkler(a, b, 0.7, 4)
}
