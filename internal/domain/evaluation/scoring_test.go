package evaluation

import (
	"testing"

	"coderank/internal/domain/directory"
)

func f(v float64) *float64 { return &v }

func fullAxisTasks() []Task {
	return []Task{
		{Axis: AxisQuality, Status: StatusCompleted, Scores: TaskScores{
			OverallQuality:      f(80),
			RequirementCoverage: f(80),
			TestCoverage:        f(80),
			SeniorReview:        f(80),
			AICrossEvaluation:   f(80),
		}},
		{Axis: AxisQuantity, Status: StatusCompleted, Scores: TaskScores{
			QuantityPoints:     f(50),
			CommitQuality:      f(30),
			ProcessConsistency: f(20),
			DevelopmentRhythm:  f(20),
			ProblemSolving:     f(20),
			FunctionPoints:     f(10),
		}},
		{Axis: AxisSatisfaction, Status: StatusCompleted, Scores: TaskScores{
			Satisfaction:         f(70),
			RequirementAlignment: f(70),
			ProcessQuality:       f(70),
			BusinessValue:        f(70),
			Usability:            f(70),
		}},
	}
}

func TestScoreAdditiveEngineer(t *testing.T) {
	b := Score(directory.RoleEngineer, fullAxisTasks(), FormulaAdditive)

	if b.Quality != 80 {
		t.Fatalf("expected quality 80, got %v", b.Quality)
	}
	if b.Quantity != 150 {
		t.Fatalf("expected quantity 150, got %v", b.Quantity)
	}
	if b.Satisfaction != 70 {
		t.Fatalf("expected satisfaction 70, got %v", b.Satisfaction)
	}
	if b.Provisional != 300 {
		t.Fatalf("expected provisional 300, got %v", b.Provisional)
	}
	if b.RoleCoefficient != 1.0 {
		t.Fatalf("expected coefficient 1.0, got %v", b.RoleCoefficient)
	}
	if b.FinalTotal != 300 {
		t.Fatalf("expected final 300, got %v", b.FinalTotal)
	}
}

func TestScoreDesignerCoefficient(t *testing.T) {
	b := Score(directory.RoleDesigner, fullAxisTasks(), FormulaAdditive)
	if b.FinalTotal != 180 {
		t.Fatalf("expected final 180 for designer, got %v", b.FinalTotal)
	}
}

func TestScoreDefaultsWhenAxesMissing(t *testing.T) {
	b := Score(directory.RoleEngineer, nil, FormulaAdditive)
	if b.Quality != 50 || b.Satisfaction != 50 {
		t.Fatalf("expected neutral 50 defaults, got quality=%v satisfaction=%v", b.Quality, b.Satisfaction)
	}
	if b.Quantity != 0 {
		t.Fatalf("expected quantity 0 with no task, got %v", b.Quantity)
	}
	if b.FinalTotal != 100 {
		t.Fatalf("expected final 100 from defaults, got %v", b.FinalTotal)
	}
}

func TestScorePartialQualityComponentsDefault(t *testing.T) {
	tasks := []Task{{Axis: AxisQuality, Status: StatusCompleted, Scores: TaskScores{
		OverallQuality: f(100),
	}}}
	b := Score(directory.RoleEngineer, tasks, FormulaAdditive)
	// (100 + 50*4) / 5
	if b.Quality != 60 {
		t.Fatalf("expected quality 60, got %v", b.Quality)
	}
}

func TestScoreNegativePenaltySubtractedAsMagnitude(t *testing.T) {
	tasks := append(fullAxisTasks(), Task{
		Axis: AxisPenalty, Status: StatusCompleted,
		Scores: TaskScores{PenaltyPoints: f(-50), PenaltyRate: f(0.10)},
	})
	b := Score(directory.RoleEngineer, tasks, FormulaAdditive)
	if b.Penalty != 50 {
		t.Fatalf("expected penalty magnitude 50, got %v", b.Penalty)
	}
	if b.FinalTotal != 250 {
		t.Fatalf("expected final 250 after penalty, got %v", b.FinalTotal)
	}
	if b.Components["penaltyPoints"] != -50 {
		t.Fatalf("audit detail must keep the stored negative value, got %v", b.Components["penaltyPoints"])
	}
}

func TestScoreBonusAdded(t *testing.T) {
	tasks := append(fullAxisTasks(), Task{
		Axis: AxisBonus, Status: StatusCompleted,
		Scores: TaskScores{BonusPoints: f(25)},
	})
	b := Score(directory.RoleEngineer, tasks, FormulaAdditive)
	if b.FinalTotal != 325 {
		t.Fatalf("expected final 325 with bonus, got %v", b.FinalTotal)
	}
}

func TestScoreClampedAtZero(t *testing.T) {
	tasks := []Task{{
		Axis: AxisPenalty, Status: StatusCompleted,
		Scores: TaskScores{PenaltyPoints: f(-100000)},
	}}
	b := Score(directory.RoleEngineer, tasks, FormulaAdditive)
	if b.FinalTotal != 0 {
		t.Fatalf("expected final clamped to 0, got %v", b.FinalTotal)
	}
}

func TestScoreMultiplicativeFormula(t *testing.T) {
	b := Score(directory.RoleEngineer, fullAxisTasks(), FormulaMultiplicative)
	if b.Provisional != 80*150*70 {
		t.Fatalf("expected provisional %v, got %v", 80*150*70, b.Provisional)
	}
	if b.FinalTotal != 840000 {
		t.Fatalf("expected final 840000, got %v", b.FinalTotal)
	}
}

func TestScoreIgnoresPendingTasks(t *testing.T) {
	tasks := []Task{{Axis: AxisQuality, Status: StatusPending, Scores: TaskScores{
		OverallQuality: f(100), RequirementCoverage: f(100), TestCoverage: f(100),
		SeniorReview: f(100), AICrossEvaluation: f(100),
	}}}
	b := Score(directory.RoleEngineer, tasks, FormulaAdditive)
	if b.Quality != 50 {
		t.Fatalf("pending task must not contribute, got quality %v", b.Quality)
	}
}
