package course

import (
	"fmt"
)

// Catalog owns the immutable set of course modules. It is loaded once at
// startup and validated; after that it is read-only and safe for concurrent
// use without locking.
type Catalog struct {
	order   []string
	modules map[string]*CourseModule
}

// NewCatalog builds and validates a catalog from module definitions. Module
// order is preserved as the stable listing order. A catalog that violates
// the content invariants (duplicate ids, a question without exactly one
// correct answer, non-positive points, dangling prerequisites) is a defect
// and fails loudly here rather than at request time.
func NewCatalog(modules []*CourseModule) (*Catalog, error) {
	c := &Catalog{
		order:   make([]string, 0, len(modules)),
		modules: make(map[string]*CourseModule, len(modules)),
	}

	for _, m := range modules {
		if m.ID == "" {
			return nil, fmt.Errorf("catalog: module with empty id (%q)", m.Title)
		}
		if _, dup := c.modules[m.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate module id %q", m.ID)
		}
		if !m.Difficulty.Valid() {
			return nil, fmt.Errorf("catalog: module %q has unknown difficulty %q", m.ID, m.Difficulty)
		}
		if err := validateQuestions(m); err != nil {
			return nil, err
		}
		c.order = append(c.order, m.ID)
		c.modules[m.ID] = m
	}

	// Prerequisites must reference loaded modules
	for _, m := range modules {
		for _, pre := range m.Prerequisites {
			if _, ok := c.modules[pre]; !ok {
				return nil, fmt.Errorf("catalog: module %q requires unknown module %q", m.ID, pre)
			}
		}
	}

	return c, nil
}

func validateQuestions(m *CourseModule) error {
	seen := make(map[string]bool, len(m.QuizQuestions))
	for i := range m.QuizQuestions {
		q := &m.QuizQuestions[i]
		if q.ID == "" {
			return fmt.Errorf("catalog: module %q has a question with empty id", m.ID)
		}
		if seen[q.ID] {
			return fmt.Errorf("catalog: module %q has duplicate question id %q", m.ID, q.ID)
		}
		seen[q.ID] = true
		if q.ModuleID != m.ID {
			return fmt.Errorf("catalog: question %q claims module %q, found in %q", q.ID, q.ModuleID, m.ID)
		}
		if q.Points <= 0 {
			return fmt.Errorf("catalog: question %q has non-positive points %d", q.ID, q.Points)
		}
		if len(q.Answers) == 0 {
			return fmt.Errorf("catalog: question %q has no answers", q.ID)
		}

		correct := 0
		answerIDs := make(map[string]bool, len(q.Answers))
		for _, a := range q.Answers {
			if a.ID == "" {
				return fmt.Errorf("catalog: question %q has an answer with empty id", q.ID)
			}
			if answerIDs[a.ID] {
				return fmt.Errorf("catalog: question %q has duplicate answer id %q", q.ID, a.ID)
			}
			answerIDs[a.ID] = true
			if a.IsCorrect {
				correct++
			}
		}
		if correct != 1 {
			return fmt.Errorf("catalog: question %q has %d correct answers, want exactly 1", q.ID, correct)
		}
	}
	return nil
}

// AllModules returns all modules in stable catalog order
func (c *Catalog) AllModules() []*CourseModule {
	out := make([]*CourseModule, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.modules[id])
	}
	return out
}

// Module returns a module by id; the second result reports presence.
// Absence is a normal outcome, not an error.
func (c *Catalog) Module(id string) (*CourseModule, bool) {
	m, ok := c.modules[id]
	return m, ok
}

// Len returns the number of modules
func (c *Catalog) Len() int {
	return len(c.order)
}

// TotalPoints sums the quiz points of a module
func (c *Catalog) TotalPoints(moduleID string) int {
	m, ok := c.modules[moduleID]
	if !ok {
		return 0
	}
	total := 0
	for _, q := range m.QuizQuestions {
		total += q.Points
	}
	return total
}
