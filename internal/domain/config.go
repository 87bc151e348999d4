package domain

import "fmt"

// Config represents the application configuration.
// Candidate lists are ordered; the priority list runs from most to
// least severe and its last entry is the fallback default.
type Config struct {
	Priority       []string `toml:"priority,omitempty" yaml:"priority,omitempty"`
	Classification []string `toml:"classification,omitempty" yaml:"classification,omitempty"`
	Effort         []string `toml:"effort,omitempty" yaml:"effort,omitempty"`
	PRs            []int    `toml:"prs,omitempty" yaml:"prs,omitempty"`
}

// NewDefaultConfig returns the built-in configuration.
func NewDefaultConfig() *Config {
	return &Config{
		Priority:       []string{"P0", "P1", "P2"},
		Classification: []string{"bug", "feature-request", "documentation", "question"},
		Effort:         []string{"effort/small", "effort/medium", "effort/large"},
	}
}

// Validate checks the configuration invariants: the priority list must
// be non-empty and no label may appear in more than one category.
func (c *Config) Validate() error {
	if len(c.Priority) == 0 {
		return ErrEmptyPriorityList
	}
	seen := make(map[string]string)
	lists := map[string][]string{
		CategoryPriority:       c.Priority,
		CategoryClassification: c.Classification,
		CategoryEffort:         c.Effort,
	}
	for _, name := range []string{CategoryPriority, CategoryClassification, CategoryEffort} {
		for _, label := range lists[name] {
			if prev, ok := seen[label]; ok {
				return fmt.Errorf("label %q in both %s and %s: %w", label, prev, name, ErrOverlappingCategory)
			}
			seen[label] = name
		}
	}
	return nil
}

// Categories builds the triage axes from the configured lists.
func (c *Config) Categories() Categories {
	return Categories{
		Priority:       Category{Name: CategoryPriority, Candidates: c.Priority},
		Classification: Category{Name: CategoryClassification, Candidates: c.Classification},
		Effort:         Category{Name: CategoryEffort, Candidates: c.Effort},
	}
}
