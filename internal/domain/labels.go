// Package domain contains core business entities and interfaces.
package domain

// Category names for the three triage axes.
const (
	CategoryPriority       = "priority"
	CategoryClassification = "classification"
	CategoryEffort         = "effort"
)

// LabelSet is an unordered collection of label names without duplicates.
type LabelSet map[string]struct{}

// NewLabelSet creates a LabelSet from the given names.
func NewLabelSet(names ...string) LabelSet {
	s := make(LabelSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Add inserts a name into the set.
func (s LabelSet) Add(name string) {
	s[name] = struct{}{}
}

// Has reports whether the set contains name.
func (s LabelSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Merge adds every name from other into the set.
func (s LabelSet) Merge(other LabelSet) {
	for n := range other {
		s[n] = struct{}{}
	}
}

// PullRequest is a pull request as seen by the reconciler.
// Labels preserves the order reported by the hosting service.
type PullRequest struct {
	Body   string
	Labels []string
	Number int
}

// Category is one triage axis with an ordered list of mutually
// exclusive candidate labels. For priority the list is ordered from
// most to least severe.
type Category struct {
	Name       string
	Candidates []string
}

// Resolve returns the first candidate present in labels, scanning in
// list order. The second return value is false when no candidate is
// present.
func (c Category) Resolve(labels LabelSet) (string, bool) {
	for _, cand := range c.Candidates {
		if labels.Has(cand) {
			return cand, true
		}
	}
	return "", false
}

// Categories holds the three configured triage axes.
type Categories struct {
	Priority       Category
	Classification Category
	Effort         Category
}

// Resolution holds the per-category winners for one reconciliation.
// Priority is always set; an empty Classification or Effort means the
// category expressed no opinion and is left untouched.
type Resolution struct {
	Priority       string
	Classification string
	Effort         string
}

// ResolvePriority resolves the mandatory priority label. It scans the
// issue-label union first, then the PR's own labels, and falls back to
// the last configured candidate (the lowest severity).
func ResolvePriority(c Category, union, own LabelSet) string {
	if label, ok := c.Resolve(union); ok {
		return label
	}
	if label, ok := c.Resolve(own); ok {
		return label
	}
	return c.Candidates[len(c.Candidates)-1]
}

// ResolveAll computes the full Resolution for one reconciliation.
// Classification and effort consult only the issue-label union.
func ResolveAll(cats Categories, union, own LabelSet) Resolution {
	res := Resolution{Priority: ResolvePriority(cats.Priority, union, own)}
	res.Classification, _ = cats.Classification.Resolve(union)
	res.Effort, _ = cats.Effort.Resolve(union)
	return res
}

// LabelDiff is the minimal label change for one pull request.
// Adds and Removes are always disjoint.
type LabelDiff struct {
	Adds    []string
	Removes []string
}

// Empty reports whether the diff changes nothing.
func (d LabelDiff) Empty() bool {
	return len(d.Adds) == 0 && len(d.Removes) == 0
}

// Reconcile computes the label diff for a pull request with the given
// current labels. For each category with a resolved winner, the
// category's full candidate list is stripped from the working set and
// the winner added; categories without a winner are left untouched.
// Adds follow category application order, Removes the original label
// order.
func Reconcile(current []string, cats Categories, res Resolution) LabelDiff {
	working := make([]string, len(current))
	copy(working, current)

	apply := []struct {
		category Category
		winner   string
	}{
		{cats.Priority, res.Priority},
		{cats.Classification, res.Classification},
		{cats.Effort, res.Effort},
	}
	for _, a := range apply {
		if a.winner == "" {
			continue
		}
		working = without(working, NewLabelSet(a.category.Candidates...))
		working = append(working, a.winner)
	}

	originalSet := NewLabelSet(current...)
	workingSet := NewLabelSet(working...)

	var diff LabelDiff
	for _, name := range working {
		if !originalSet.Has(name) {
			diff.Adds = append(diff.Adds, name)
		}
	}
	for _, name := range current {
		if !workingSet.Has(name) {
			diff.Removes = append(diff.Removes, name)
		}
	}
	return diff
}

// without returns labels with every member of drop filtered out.
func without(labels []string, drop LabelSet) []string {
	kept := make([]string, 0, len(labels))
	for _, name := range labels {
		if !drop.Has(name) {
			kept = append(kept, name)
		}
	}
	return kept
}
