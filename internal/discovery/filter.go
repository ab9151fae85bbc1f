package discovery

import "cfgtest/internal/domain"

// Filter computes the selection from discovered tests and an exclusion set
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// Exclude returns discovered minus excluded, preserving discovery order.
// Excluded names that match nothing are ignored; a nil or empty exclusion
// set returns the discovered list unmodified.
func (f *Filter) Exclude(tests []domain.Test, excluded []string) []domain.Test {
	if len(excluded) == 0 {
		return tests
	}

	skip := make(map[string]bool, len(excluded))
	for _, id := range excluded {
		skip[id] = true
	}

	var selection []domain.Test
	for _, test := range tests {
		if skip[test.Identifier] {
			continue
		}
		selection = append(selection, test)
	}
	return selection
}
