package milan

import (
	"sort"
	"sync"

	"kundali/internal/core/chart"
	perr "kundali/internal/platform/errors"
)

// RejectPolicy decides what happens to early-rejected candidates
type RejectPolicy int

// Reject policies: excluded candidates vanish from the ranking entirely;
// rank-last candidates appear after every scored pair, unscored, in id order
const (
	RejectExclude RejectPolicy = iota
	RejectRankLast
)

var rejectPolicyNames = [2]string{"exclude", "rank_last"}

func (p RejectPolicy) String() string {
	if p < 0 || int(p) >= len(rejectPolicyNames) {
		return "exclude"
	}
	return rejectPolicyNames[p]
}

// ParseRejectPolicy maps a config string to a policy; unknown values fall
// back to exclude
func ParseRejectPolicy(s string) RejectPolicy {
	if s == "rank_last" {
		return RejectRankLast
	}
	return RejectExclude
}

// Predicate is the caller-supplied cheap early-rejection check; returning
// true skips the full eight-factor computation for that candidate
type Predicate func(subject, candidate chart.Person) bool

// SameNadi is the stock predicate: reject candidates sharing the subject's
// nadi before scoring them
func SameNadi(subject, candidate chart.Person) bool {
	return chart.NakshatraAttributes(subject.MoonNakshatra).Nadi ==
		chart.NakshatraAttributes(candidate.MoonNakshatra).Nadi
}

// Candidate pairs a stable caller id with a chart slice
type Candidate struct {
	ID     string
	Person chart.Person
}

// BatchOptions configures one batch run
type BatchOptions struct {
	// Reject is optional; nil disables the fast path
	Reject Predicate
	Policy RejectPolicy
	// Workers caps concurrent scoring; <=1 runs serially
	Workers int
}

// Pair is one ranked entry. Result is nil only for early-rejected candidates
// under the rank-last policy
type Pair struct {
	CandidateID string       `json:"candidate_id"`
	Rejected    bool         `json:"rejected"`
	Result      *MatchResult `json:"result,omitempty"`
}

// BatchResult is the ranked outcome over all candidates
type BatchResult struct {
	Pairs           []Pair `json:"pairs"`
	TotalPairs      int    `json:"total_pairs"`
	EarlyRejections int    `json:"early_rejections"`
}

// Batch runs Match for the subject against every candidate. Scoring is
// embarrassingly parallel; the final ordering is applied single-threaded
// after all scores are known so ties break deterministically:
// total guna descending, then no Manglik mismatch, then no Nadi dosha,
// then candidate id ascending.
// A validation failure on any chart fails the whole batch
func Batch(subject chart.Person, candidates []Candidate, opts BatchOptions) (BatchResult, error) {
	if err := subject.Validate(); err != nil {
		return BatchResult{}, perr.WithOp(err, "milan.Batch subject")
	}
	for _, c := range candidates {
		if err := c.Person.Validate(); err != nil {
			return BatchResult{}, perr.WithOp(err, "milan.Batch candidate "+c.ID)
		}
	}

	out := BatchResult{TotalPairs: len(candidates)}

	scored := make([]Pair, 0, len(candidates))
	var rejected []Pair
	for _, c := range candidates {
		if opts.Reject != nil && opts.Reject(subject, c.Person) {
			out.EarlyRejections++
			if opts.Policy == RejectRankLast {
				rejected = append(rejected, Pair{CandidateID: c.ID, Rejected: true})
			}
			continue
		}
		scored = append(scored, Pair{CandidateID: c.ID})
	}

	// score survivors; indices into scored are stable so no locking is needed
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	byID := make(map[string]chart.Person, len(candidates))
	for _, c := range candidates {
		byID[c.ID] = c.Person
	}

	sem := make(chan struct{}, workers)
	wg := sync.WaitGroup{}
	for i := range scored {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer func() { <-sem; wg.Done() }()
			// validation already passed, so Match cannot fail here
			r, _ := Match(subject, byID[scored[i].CandidateID])
			scored[i].Result = &r
		}(i)
	}
	wg.Wait()

	sort.SliceStable(scored, func(i, j int) bool {
		ri, rj := scored[i].Result, scored[j].Result
		if ri.TotalGuna != rj.TotalGuna {
			return ri.TotalGuna > rj.TotalGuna
		}
		mi := ri.ManglikCompatible != TriNo
		mj := rj.ManglikCompatible != TriNo
		if mi != mj {
			return mi
		}
		ni := ri.Dosha.Nadi != TriYes
		nj := rj.Dosha.Nadi != TriYes
		if ni != nj {
			return ni
		}
		return scored[i].CandidateID < scored[j].CandidateID
	})

	sort.Slice(rejected, func(i, j int) bool {
		return rejected[i].CandidateID < rejected[j].CandidateID
	})

	out.Pairs = append(scored, rejected...)
	return out, nil
}
