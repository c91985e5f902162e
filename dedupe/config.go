// Package dedupe implements pairwise citation deduplication: per-citation
// normalization, a similarity-and-field-agreement matching predicate,
// union-find grouping of matches into equivalence classes, and
// deterministic representative selection within each class.
package dedupe

// Config controls the deduplication pipeline.
type Config struct {
	// GroupByYear buckets citations by publication year before pairwise
	// comparison; citations with no year go into a bucket compared only
	// against itself. Defaults to true via NewConfig.
	GroupByYear bool
	// RunInParallel processes buckets concurrently, one goroutine per
	// bucket; the pairs within a bucket are still compared serially. Only
	// takes effect when GroupByYear is also true.
	RunInParallel bool
	// SourcePreferences, if non-empty, is consulted ahead of every other
	// representative-selection rule: the first class member whose source
	// matches an entry here, in order, becomes the representative.
	SourcePreferences []string
}

// NewConfig returns the default configuration: year-grouped, sequential,
// no source preferences.
func NewConfig() Config {
	return Config{GroupByYear: true}
}
