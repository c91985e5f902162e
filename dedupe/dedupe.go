package dedupe

import (
	"fmt"
	"sort"
	"sync"

	"github.com/revidiumhq/biblib/internal/citation"
)

// DuplicateGroup is one equivalence class produced by FindDuplicates: a
// single selected representative plus the remaining members, both in
// terms of the original Citation values.
type DuplicateGroup struct {
	Unique     citation.Citation
	Duplicates []citation.Citation
}

// FindDuplicates groups citations into equivalence classes under
// NewConfig's default configuration, treating every citation as sourceless.
func FindDuplicates(citations []citation.Citation) ([]DuplicateGroup, error) {
	return FindDuplicatesWithConfig(citations, NewConfig())
}

// FindDuplicatesWithConfig groups citations under cfg, with no sources.
func FindDuplicatesWithConfig(citations []citation.Citation, cfg Config) ([]DuplicateGroup, error) {
	return run(citations, nil, cfg)
}

// FindDuplicatesWithSources groups citations under NewConfig's default
// configuration. len(sources) must equal len(citations). The default
// configuration has no SourcePreferences, so sources do not influence
// representative selection here; FindDuplicatesWithSourcesAndConfig
// takes a Config whose SourcePreferences are matched against sources.
func FindDuplicatesWithSources(citations []citation.Citation, sources []string) ([]DuplicateGroup, error) {
	return FindDuplicatesWithSourcesAndConfig(citations, sources, NewConfig())
}

// FindDuplicatesWithSourcesAndConfig is FindDuplicatesWithSources with an
// explicit Config.
func FindDuplicatesWithSourcesAndConfig(citations []citation.Citation, sources []string, cfg Config) ([]DuplicateGroup, error) {
	if len(sources) != len(citations) {
		return nil, fmt.Errorf("dedupe: %d citations but %d sources", len(citations), len(sources))
	}
	return run(citations, sources, cfg)
}

// bucket is one partition of citation indices compared only against each
// other, plus the key used to order buckets in the final output.
type bucket struct {
	hasYear bool
	year    int
	indices []int
}

func run(citations []citation.Citation, sources []string, cfg Config) ([]DuplicateGroup, error) {
	n := len(citations)
	pre := make([]preprocessed, n)
	for i := range citations {
		pre[i] = preprocess(i, &citations[i])
	}

	buckets := partition(pre, cfg.GroupByYear)

	type bucketResult struct {
		bucket bucket
		groups [][]int // each inner slice: ascending member indices
	}

	results := make([]bucketResult, len(buckets))

	processBucket := func(i int) {
		b := buckets[i]
		results[i] = bucketResult{bucket: b, groups: matchWithinBucket(pre, b.indices)}
	}

	if cfg.RunInParallel && cfg.GroupByYear {
		var wg sync.WaitGroup
		for i := range buckets {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				processBucket(i)
			}(i)
		}
		wg.Wait()
	} else {
		for i := range buckets {
			processBucket(i)
		}
	}

	var out []DuplicateGroup
	for _, br := range results {
		for _, members := range br.groups {
			out = append(out, selectRepresentative(citations, sources, cfg, members))
		}
	}
	return out, nil
}

// partition buckets preprocessed keys by year when groupByYear is set,
// in ascending year order with the no-year bucket last; otherwise it
// returns a single bucket covering every index in original order.
func partition(pre []preprocessed, groupByYear bool) []bucket {
	if !groupByYear {
		indices := make([]int, len(pre))
		for i := range pre {
			indices[i] = i
		}
		return []bucket{{hasYear: false, indices: indices}}
	}

	byYear := map[int][]int{}
	var noYear []int
	for _, p := range pre {
		if p.hasYear {
			byYear[p.year] = append(byYear[p.year], p.idx)
		} else {
			noYear = append(noYear, p.idx)
		}
	}

	years := make([]int, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	sort.Ints(years)

	buckets := make([]bucket, 0, len(years)+1)
	for _, y := range years {
		buckets = append(buckets, bucket{hasYear: true, year: y, indices: byYear[y]})
	}
	if len(noYear) > 0 {
		buckets = append(buckets, bucket{hasYear: false, indices: noYear})
	}
	return buckets
}

// matchWithinBucket runs the pairwise predicate over every i<j pair in
// indices, unions matches, and returns the resulting groups as ascending
// index lists ordered by each group's smallest member.
func matchWithinBucket(pre []preprocessed, indices []int) [][]int {
	if len(indices) == 0 {
		return nil
	}

	// localOf maps an original citation index to its position within
	// this bucket's union-find, since unionFind is sized to the bucket,
	// not the full input.
	localOf := make(map[int]int, len(indices))
	for local, idx := range indices {
		localOf[idx] = local
	}

	uf := newUnionFind(len(indices))
	for i := 0; i < len(indices); i++ {
		for j := i + 1; j < len(indices); j++ {
			a, b := &pre[indices[i]], &pre[indices[j]]
			if matches(a, b) {
				uf.union(i, j)
			}
		}
	}

	localGroups := uf.groups()
	roots := make([]int, 0, len(localGroups))
	for r := range localGroups {
		roots = append(roots, r)
	}
	sort.Slice(roots, func(i, j int) bool {
		return indices[roots[i]] < indices[roots[j]]
	})

	out := make([][]int, 0, len(roots))
	for _, r := range roots {
		locals := localGroups[r]
		members := make([]int, len(locals))
		for k, l := range locals {
			members[k] = indices[l]
		}
		sort.Ints(members)
		out = append(out, members)
	}
	return out
}

// selectRepresentative implements the representative-selection policy
// for one equivalence class (members in ascending index order).
func selectRepresentative(citations []citation.Citation, sources []string, cfg Config, members []int) DuplicateGroup {
	repIdx := members[0]

	if len(cfg.SourcePreferences) > 0 && sources != nil {
		found := false
	preferenceLoop:
		for _, pref := range cfg.SourcePreferences {
			for _, m := range members {
				if sources[m] == pref {
					repIdx = m
					found = true
					break preferenceLoop
				}
			}
		}
		if !found {
			repIdx = selectByAbstractAndDOI(citations, members)
		}
	} else {
		repIdx = selectByAbstractAndDOI(citations, members)
	}

	group := DuplicateGroup{Unique: citations[repIdx]}
	for _, m := range members {
		if m == repIdx {
			continue
		}
		group.Duplicates = append(group.Duplicates, citations[m])
	}
	return group
}

// selectByAbstractAndDOI implements rule 2/3 of representative selection:
// among members with a non-empty abstract, prefer those that also have a
// non-empty DOI; among the remaining candidates, or if no member has an
// abstract, pick the first in class order.
func selectByAbstractAndDOI(citations []citation.Citation, members []int) int {
	var withAbstract []int
	for _, m := range members {
		if citations[m].AbstractText != "" {
			withAbstract = append(withAbstract, m)
		}
	}
	if len(withAbstract) == 0 {
		return members[0]
	}

	for _, m := range withAbstract {
		if citations[m].DOI != "" {
			return m
		}
	}
	return withAbstract[0]
}
