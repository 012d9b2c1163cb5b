package evaluation

import "time"

// Axis is one of the five evaluation categories. Quality, quantity and
// satisfaction are routine weekly judgments; penalty and bonus are
// system- or admin-authored adjustments.
type Axis string

const (
	AxisQuality      Axis = "quality"
	AxisQuantity     Axis = "quantity"
	AxisSatisfaction Axis = "satisfaction"
	AxisPenalty      Axis = "penalty"
	AxisBonus        Axis = "bonus"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusOverdue   Status = "overdue"
)

// Evaluator role labels recorded on generated tasks.
const (
	EvaluatorCapabilitySupervisor = "capability_supervisor"
	EvaluatorProjectSupervisor    = "project_supervisor"
	EvaluatorAdmin                = "admin"
)

// Task is one evaluator-to-evaluatee judgment for one ISO week and one
// axis. (EvaluatorID, EvaluateeID, Week, Axis) is unique; the existence
// check on that tuple is the only duplicate guard.
type Task struct {
	ID            string     `json:"id"`
	EvaluatorID   string     `json:"evaluatorId"`
	EvaluateeID   string     `json:"evaluateeId"`
	Week          string     `json:"week"`
	Axis          Axis       `json:"axis"`
	Status        Status     `json:"status"`
	EvaluatorRole string     `json:"evaluatorRole"`
	DueDate       time.Time  `json:"dueDate"`
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
	Scores        TaskScores `json:"scores"`
}

// TaskScores carries the axis-specific raw sub-metrics. Only the fields
// for the task's own axis are populated; nil means the component was not
// submitted and the scoring defaults apply.
type TaskScores struct {
	// Quality axis, each 0-100.
	OverallQuality      *float64 `json:"overallQuality,omitempty"`
	RequirementCoverage *float64 `json:"requirementCoverage,omitempty"`
	TestCoverage        *float64 `json:"testCoverage,omitempty"`
	SeniorReview        *float64 `json:"seniorReview,omitempty"`
	AICrossEvaluation   *float64 `json:"aiCrossEvaluation,omitempty"`

	// Quantity axis, absolute scale.
	QuantityPoints     *float64 `json:"quantityPoints,omitempty"`
	CommitQuality      *float64 `json:"commitQuality,omitempty"`
	ProcessConsistency *float64 `json:"processConsistency,omitempty"`
	DevelopmentRhythm  *float64 `json:"developmentRhythm,omitempty"`
	ProblemSolving     *float64 `json:"problemSolving,omitempty"`
	FunctionPoints     *float64 `json:"functionPoints,omitempty"`

	// Satisfaction axis, each 0-100.
	Satisfaction         *float64 `json:"satisfaction,omitempty"`
	RequirementAlignment *float64 `json:"requirementAlignment,omitempty"`
	ProcessQuality       *float64 `json:"processQuality,omitempty"`
	BusinessValue        *float64 `json:"businessValue,omitempty"`
	Usability            *float64 `json:"usability,omitempty"`

	// Penalty axis: points are stored negative, rate is the incentive
	// dock fraction recorded for audit.
	PenaltyPoints *float64 `json:"penaltyPoints,omitempty"`
	PenaltyRate   *float64 `json:"penaltyRate,omitempty"`

	// Bonus axis.
	BonusPoints *float64 `json:"bonusPoints,omitempty"`
}

// Result is the finalized weekly evaluation record, one per
// (employee, week), immutable once written.
type Result struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employeeId"`
	Week         string    `json:"week"`
	Quality      float64   `json:"quality"`
	Quantity     float64   `json:"quantity"`
	Satisfaction float64   `json:"satisfaction"`
	FinalTotal   float64   `json:"finalTotal"`
	Formula      Formula   `json:"formula"`
	Detail       Breakdown `json:"detail"`
	CreatedAt    time.Time `json:"createdAt"`
}

// EntityError records a per-employee failure without aborting the batch.
type EntityError struct {
	EmployeeID string `json:"employeeId"`
	Message    string `json:"message"`
}
