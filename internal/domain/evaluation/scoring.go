package evaluation

import (
	"math"

	"coderank/internal/domain/directory"
)

// Formula selects how the three axis scores combine into the provisional
// total. Additive is the default; the multiplicative variant is kept as a
// named strategy for the batch path that still relies on it.
type Formula string

const (
	FormulaAdditive       Formula = "additive"
	FormulaMultiplicative Formula = "multiplicative"
)

const (
	defaultComponentScore = 50.0

	// Fixed penalties spawned for an overdue task in the preceding week.
	EvaluateePenaltyPoints = -50.0
	EvaluateePenaltyRate   = 0.10
	EvaluatorPenaltyPoints = -30.0
	EvaluatorPenaltyRate   = 0.05
)

// Breakdown is the full audit detail of one weekly score.
type Breakdown struct {
	Quality         float64            `json:"quality"`
	Quantity        float64            `json:"quantity"`
	Satisfaction    float64            `json:"satisfaction"`
	Provisional     float64            `json:"provisional"`
	RoleCoefficient float64            `json:"roleCoefficient"`
	Adjusted        float64            `json:"adjusted"`
	Penalty         float64            `json:"penalty"`
	Bonus           float64            `json:"bonus"`
	FinalTotal      float64            `json:"finalTotal"`
	Components      map[string]float64 `json:"components"`
}

// Score blends the completed tasks of one (employee, week) into a final
// point total. At most one task per axis is considered; a missing axis
// contributes its neutral default.
func Score(role directory.Role, tasks []Task, formula Formula) Breakdown {
	byAxis := map[Axis]*Task{}
	for i := range tasks {
		t := &tasks[i]
		if t.Status != StatusCompleted {
			continue
		}
		if _, seen := byAxis[t.Axis]; !seen {
			byAxis[t.Axis] = t
		}
	}

	components := map[string]float64{}

	quality := meanOf(byAxis[AxisQuality], components, []component{
		{"overallQuality", func(s TaskScores) *float64 { return s.OverallQuality }},
		{"requirementCoverage", func(s TaskScores) *float64 { return s.RequirementCoverage }},
		{"testCoverage", func(s TaskScores) *float64 { return s.TestCoverage }},
		{"seniorReview", func(s TaskScores) *float64 { return s.SeniorReview }},
		{"aiCrossEvaluation", func(s TaskScores) *float64 { return s.AICrossEvaluation }},
	})

	quantity := sumOf(byAxis[AxisQuantity], components, []component{
		{"quantityPoints", func(s TaskScores) *float64 { return s.QuantityPoints }},
		{"commitQuality", func(s TaskScores) *float64 { return s.CommitQuality }},
		{"processConsistency", func(s TaskScores) *float64 { return s.ProcessConsistency }},
		{"developmentRhythm", func(s TaskScores) *float64 { return s.DevelopmentRhythm }},
		{"problemSolving", func(s TaskScores) *float64 { return s.ProblemSolving }},
		{"functionPoints", func(s TaskScores) *float64 { return s.FunctionPoints }},
	})

	satisfaction := meanOf(byAxis[AxisSatisfaction], components, []component{
		{"satisfaction", func(s TaskScores) *float64 { return s.Satisfaction }},
		{"requirementAlignment", func(s TaskScores) *float64 { return s.RequirementAlignment }},
		{"processQuality", func(s TaskScores) *float64 { return s.ProcessQuality }},
		{"businessValue", func(s TaskScores) *float64 { return s.BusinessValue }},
		{"usability", func(s TaskScores) *float64 { return s.Usability }},
	})

	provisional := quality + quantity + satisfaction
	if formula == FormulaMultiplicative {
		provisional = quality * quantity * satisfaction
	}

	coefficient := directory.ScoreCoefficient(role)
	adjusted := provisional * coefficient

	// Penalty points arrive negative; the reduction is applied as a
	// positive magnitude so the stored sign and the subtraction cancel.
	penalty := 0.0
	if t := byAxis[AxisPenalty]; t != nil && t.Scores.PenaltyPoints != nil {
		penalty = math.Abs(*t.Scores.PenaltyPoints)
		components["penaltyPoints"] = *t.Scores.PenaltyPoints
	}
	bonus := 0.0
	if t := byAxis[AxisBonus]; t != nil && t.Scores.BonusPoints != nil {
		bonus = *t.Scores.BonusPoints
		components["bonusPoints"] = bonus
	}

	final := adjusted - penalty + bonus
	if final < 0 {
		final = 0
	}

	return Breakdown{
		Quality:         quality,
		Quantity:        quantity,
		Satisfaction:    satisfaction,
		Provisional:     provisional,
		RoleCoefficient: coefficient,
		Adjusted:        adjusted,
		Penalty:         penalty,
		Bonus:           bonus,
		FinalTotal:      final,
		Components:      components,
	}
}

type component struct {
	name string
	get  func(TaskScores) *float64
}

// meanOf averages the listed components, substituting the neutral default
// for an absent task or component. Used by the bounded 0-100 axes.
func meanOf(task *Task, audit map[string]float64, comps []component) float64 {
	total := 0.0
	for _, c := range comps {
		value := defaultComponentScore
		if task != nil {
			if v := c.get(task.Scores); v != nil {
				value = *v
			}
		}
		audit[c.name] = value
		total += value
	}
	return total / float64(len(comps))
}

// sumOf totals the listed components; absent values contribute zero. The
// quantity axis is absolute and deliberately unbounded.
func sumOf(task *Task, audit map[string]float64, comps []component) float64 {
	total := 0.0
	for _, c := range comps {
		if task == nil {
			continue
		}
		if v := c.get(task.Scores); v != nil {
			audit[c.name] = *v
			total += *v
		}
	}
	return total
}
