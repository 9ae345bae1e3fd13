package match

import (
	"sort"

	"github.com/schedlink/schedlink/pkg/schedule"
)

// Candidate is an ephemeral pairing of one event from each source with
// the quality the classifier assigned it. Candidates exist only during
// assignment and are never persisted.
type Candidate struct {
	A       *schedule.Event // spreadsheet-side event
	B       *schedule.Event // production-side event
	Quality schedule.MatchQuality
}

// Assignment is the outcome of the greedy pass: the committed one-to-one
// pairs plus the residual unmatched events of each source, in input
// order.
type Assignment struct {
	Pairs      []Candidate
	UnmatchedA []*schedule.Event
	UnmatchedB []*schedule.Event
}

// Assign enumerates every cross-source pair, classifies it, globally
// orders the surviving candidates by (tier ascending, score descending),
// and walks the ordered list once, committing a candidate only when
// neither of its events has been claimed by an earlier commitment.
//
// Sorting by tier first locks the most confident matches in before
// weaker, more ambiguous ones compete for the remaining events; a
// stable sort keeps enumeration order as the tie-break so runs are
// reproducible. Greedy, not globally optimal, on purpose: tier priority
// is the semantics, and it always terminates with a valid (possibly
// empty) assignment.
func Assign(aEvents, bEvents []*schedule.Event, classifier *Classifier) *Assignment {
	if classifier == nil {
		classifier = NewClassifier()
	}

	// O(|A|·|B|) candidate generation; fine at a few thousand sessions
	// per source.
	candidates := make([]Candidate, 0, len(aEvents))
	for _, a := range aEvents {
		for _, b := range bEvents {
			if quality, ok := classifier.Classify(a, b); ok {
				candidates = append(candidates, Candidate{A: a, B: b, Quality: quality})
			}
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Quality.Tier != candidates[j].Quality.Tier {
			return candidates[i].Quality.Tier < candidates[j].Quality.Tier
		}
		return candidates[i].Quality.Score > candidates[j].Quality.Score
	})

	claimedA := make(map[string]bool, len(aEvents))
	claimedB := make(map[string]bool, len(bEvents))
	assignment := &Assignment{}

	for _, c := range candidates {
		if claimedA[c.A.ID] || claimedB[c.B.ID] {
			continue
		}
		claimedA[c.A.ID] = true
		claimedB[c.B.ID] = true
		assignment.Pairs = append(assignment.Pairs, c)
	}

	for _, a := range aEvents {
		if !claimedA[a.ID] {
			assignment.UnmatchedA = append(assignment.UnmatchedA, a)
		}
	}
	for _, b := range bEvents {
		if !claimedB[b.ID] {
			assignment.UnmatchedB = append(assignment.UnmatchedB, b)
		}
	}

	return assignment
}
