package course

import (
	"strings"
	"testing"
)

func validModule(id string) *CourseModule {
	return &CourseModule{
		ID:               id,
		Title:            "Test Module",
		Description:      "test",
		Difficulty:       DifficultyBeginner,
		EstimatedMinutes: 10,
		Content:          []string{"sectie 1"},
		QuizQuestions: []QuizQuestion{
			{
				ID:       id + "_q1",
				ModuleID: id,
				Type:     QuestionMultipleChoice,
				Text:     "vraag",
				Points:   1,
				Answers: []Answer{
					{ID: "a1", Text: "goed", IsCorrect: true},
					{ID: "a2", Text: "fout", IsCorrect: false},
				},
			},
		},
	}
}

func TestNewCatalogValid(t *testing.T) {
	c, err := NewCatalog([]*CourseModule{validModule("m1"), validModule("m2")})
	if err != nil {
		t.Fatalf("NewCatalog returned error: %v", err)
	}
	if c.Len() != 2 {
		t.Errorf("expected 2 modules, got %d", c.Len())
	}
	if _, ok := c.Module("m1"); !ok {
		t.Error("m1 should be present")
	}
	if _, ok := c.Module("missing"); ok {
		t.Error("missing module should not resolve")
	}
}

func TestCatalogStableOrder(t *testing.T) {
	mods := []*CourseModule{validModule("b"), validModule("a"), validModule("c")}
	c, err := NewCatalog(mods)
	if err != nil {
		t.Fatal(err)
	}
	got := c.AllModules()
	want := []string{"b", "a", "c"}
	for i, m := range got {
		if m.ID != want[i] {
			t.Errorf("position %d: got %q, want %q", i, m.ID, want[i])
		}
	}
}

func TestNewCatalogRejectsInvalidContent(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*CourseModule)
		wantErr string
	}{
		{
			name: "no correct answer",
			mutate: func(m *CourseModule) {
				m.QuizQuestions[0].Answers[0].IsCorrect = false
			},
			wantErr: "correct answers",
		},
		{
			name: "two correct answers",
			mutate: func(m *CourseModule) {
				m.QuizQuestions[0].Answers[1].IsCorrect = true
			},
			wantErr: "correct answers",
		},
		{
			name: "non-positive points",
			mutate: func(m *CourseModule) {
				m.QuizQuestions[0].Points = 0
			},
			wantErr: "points",
		},
		{
			name: "duplicate answer id",
			mutate: func(m *CourseModule) {
				m.QuizQuestions[0].Answers[1].ID = "a1"
			},
			wantErr: "duplicate answer id",
		},
		{
			name: "question claims wrong module",
			mutate: func(m *CourseModule) {
				m.QuizQuestions[0].ModuleID = "other"
			},
			wantErr: "claims module",
		},
		{
			name: "unknown difficulty",
			mutate: func(m *CourseModule) {
				m.Difficulty = "expert"
			},
			wantErr: "difficulty",
		},
		{
			name: "dangling prerequisite",
			mutate: func(m *CourseModule) {
				m.Prerequisites = []string{"nope"}
			},
			wantErr: "unknown module",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := validModule("m1")
			tc.mutate(m)
			_, err := NewCatalog([]*CourseModule{m})
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestNewCatalogRejectsDuplicateModule(t *testing.T) {
	_, err := NewCatalog([]*CourseModule{validModule("m1"), validModule("m1")})
	if err == nil {
		t.Fatal("expected duplicate module error")
	}
}

func TestDefaultCatalogLoads(t *testing.T) {
	c, err := LoadDefaultCatalog()
	if err != nil {
		t.Fatalf("built-in content must validate: %v", err)
	}
	if c.Len() != 5 {
		t.Errorf("expected 5 modules, got %d", c.Len())
	}

	// Every built-in question carries positive points and the sums match
	// what the catalog reports
	for _, m := range c.AllModules() {
		sum := 0
		for _, q := range m.QuizQuestions {
			if q.Points <= 0 {
				t.Errorf("question %s has non-positive points", q.ID)
			}
			sum += q.Points
		}
		if got := c.TotalPoints(m.ID); got != sum {
			t.Errorf("module %s: TotalPoints=%d, want %d", m.ID, got, sum)
		}
	}
}

func TestDifficultyOrdering(t *testing.T) {
	if !DifficultyBeginner.Less(DifficultyIntermediate) {
		t.Error("beginner should order before intermediate")
	}
	if !DifficultyIntermediate.Less(DifficultyAdvanced) {
		t.Error("intermediate should order before advanced")
	}
	if DifficultyAdvanced.Less(DifficultyBeginner) {
		t.Error("advanced should not order before beginner")
	}
}
