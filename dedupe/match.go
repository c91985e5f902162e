package dedupe

// matches applies the pairwise matching predicate between two
// preprocessed citations. An empty normalized title on either side
// disqualifies the pair outright, since similarity is undefined.
func matches(a, b *preprocessed) bool {
	if a.normTitle == "" || b.normTitle == "" {
		return false
	}

	journalCompatible := journalsAgree(a, b)
	issnCompatible := issnsAgree(a, b)
	volumeCompatible := volumesAgree(a, b)
	pagesCompatible := pagesAgree(a, b)
	yearCompatible := yearsAgree(a, b)

	jOrI := journalCompatible || issnCompatible
	vOrP := volumeCompatible || pagesCompatible

	bothHaveDOI := a.doiLC != "" && b.doiLC != ""

	if bothHaveDOI {
		tJaro := jaroSimilarity(a.normTitle, b.normTitle)
		if a.doiLC == b.doiLC {
			if tJaro >= 0.85 && jOrI {
				return true
			}
			if tJaro >= 0.99 && vOrP {
				return true
			}
			return false
		}
		return tJaro >= 0.99 && yearCompatible && vOrP && jOrI
	}

	tJW := jaroWinklerSimilarity(a.normTitle, b.normTitle)
	if tJW >= 0.93 && vOrP && jOrI {
		return true
	}
	if tJW >= 0.99 && yearCompatible && volumeCompatible && pagesCompatible {
		return true
	}
	return false
}

func journalsAgree(a, b *preprocessed) bool {
	if a.normJournal != "" && b.normJournal != "" && a.normJournal == b.normJournal {
		return true
	}
	if a.normJournalAbbr != "" && b.normJournalAbbr != "" && a.normJournalAbbr == b.normJournalAbbr {
		return true
	}
	if a.normJournal != "" && b.normJournalAbbr != "" && a.normJournal == b.normJournalAbbr {
		return true
	}
	if a.normJournalAbbr != "" && b.normJournal != "" && a.normJournalAbbr == b.normJournal {
		return true
	}
	return false
}

func issnsAgree(a, b *preprocessed) bool {
	for _, x := range a.issnsNorm {
		for _, y := range b.issnsNorm {
			if x == y {
				return true
			}
		}
	}
	return false
}

func volumesAgree(a, b *preprocessed) bool {
	return a.normVolume != "" && b.normVolume != "" && a.normVolume == b.normVolume
}

func pagesAgree(a, b *preprocessed) bool {
	return a.normPages != "" && b.normPages != "" && a.normPages == b.normPages
}

func yearsAgree(a, b *preprocessed) bool {
	return a.hasYear && b.hasYear && a.year == b.year
}
