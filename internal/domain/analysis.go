// Package domain contains core business types and interfaces.
//
// This file defines the scenario analysis types: the user-supplied
// scenario, the structured compliance report returned by the AI
// provider, and the completed analysis result held in session history.
package domain

import (
	"strings"
	"time"
)

// =============================================================================
// Compliance Status
// =============================================================================

// ComplianceStatus is the verdict for a single checklist finding.
type ComplianceStatus string

const (
	// StatusOK indicates the scenario satisfies the requirement.
	StatusOK ComplianceStatus = "OK"

	// StatusWarn indicates a gap that needs attention but is not an
	// outright violation.
	StatusWarn ComplianceStatus = "WARN"

	// StatusFail indicates a violation of a specific legal requirement.
	StatusFail ComplianceStatus = "FAIL"
)

// String returns the string representation of the status.
func (s ComplianceStatus) String() string {
	return string(s)
}

// Valid returns true if the status is a recognized value.
func (s ComplianceStatus) Valid() bool {
	switch s {
	case StatusOK, StatusWarn, StatusFail:
		return true
	}
	return false
}

// =============================================================================
// Scenario Input
// =============================================================================

// ScenarioInput is the user-supplied description of a work scenario.
// It is immutable once submitted; only WorkType is required.
type ScenarioInput struct {
	WorkType     string `json:"work_type"`
	Workforce    string `json:"workforce"`
	Equipment    string `json:"equipment"`
	Environment  string `json:"environment"`
	OptionalText string `json:"optional_text"`
}

// Validate checks that the required scenario fields are present.
func (s ScenarioInput) Validate() error {
	const op = "scenario.validate"
	if strings.TrimSpace(s.WorkType) == "" {
		return Invalid(op, "work_type is required")
	}
	return nil
}

// =============================================================================
// Report Sections
// =============================================================================

// ChecklistItem is one discrete compliance finding tied to a legal citation.
// Every field is mandatory in a valid item.
type ChecklistItem struct {
	ItemTitle      string           `json:"item_title"`
	Status         ComplianceStatus `json:"status"`
	WhyItMatters   string           `json:"why_it_matters"`
	RequiredAction string           `json:"required_action"`
	LegalBasis     string           `json:"legal_basis"`
	Evidence       []string         `json:"evidence"`
}

// Validate checks that the item carries every mandatory field, including a
// legal basis naming a specific statute and article.
func (c ChecklistItem) Validate() error {
	const op = "checklist_item.validate"
	if c.ItemTitle == "" {
		return Invalid(op, "item_title is required")
	}
	if !c.Status.Valid() {
		return Invalid(op, "status must be one of OK, WARN, FAIL")
	}
	if c.WhyItMatters == "" {
		return Invalid(op, "why_it_matters is required")
	}
	if c.RequiredAction == "" {
		return Invalid(op, "required_action is required")
	}
	if strings.TrimSpace(c.LegalBasis) == "" {
		return Invalid(op, "legal_basis is required")
	}
	return nil
}

// RiskAssessment summarizes hazards and mitigating measures for a scenario.
type RiskAssessment struct {
	Overview     string   `json:"overview"`
	Hazards      []string `json:"hazards"`
	Measures     []string `json:"measures"`
	ResidualRisk string   `json:"residual_risk"`
	LegalBasis   []string `json:"legal_basis"`
}

// ComplianceEvaluation is the executive-level evaluation of the scenario.
//
// Summary is free text with an embedded convention: the first line is the
// headline conclusion and later lines are bullet-style findings, some of
// which carry a "Decision" marker for emphasis. The convention is owned by
// the rendering layer; it is not parsed here.
type ComplianceEvaluation struct {
	AppliedLaws  []string `json:"applied_laws"`
	Summary      string   `json:"summary"`
	Improvements []string `json:"improvements"`
	LegalBasis   []string `json:"legal_basis"`
}

// SummaryStats aggregates the checklist verdicts.
type SummaryStats struct {
	TotalItems  int      `json:"total_items"`
	FailCount   int      `json:"fail_count"`
	WarnCount   int      `json:"warn_count"`
	Top3Actions []string `json:"top_3_actions"`
}

// Validate enforces the counting invariants on the stats block.
func (s SummaryStats) Validate() error {
	const op = "summary_stats.validate"
	if s.TotalItems < 0 {
		return Invalid(op, "total_items must not be negative")
	}
	if s.FailCount < 0 || s.WarnCount < 0 {
		return Invalid(op, "counts must not be negative")
	}
	if s.FailCount+s.WarnCount > s.TotalItems {
		return Invalid(op, "fail_count + warn_count exceeds total_items")
	}
	if len(s.Top3Actions) > 3 {
		return Invalid(op, "top_3_actions must contain at most 3 entries")
	}
	return nil
}

// RiskIndex returns the failure density (fail_count / total_items).
// This is a display computation, not a stored value.
func (s SummaryStats) RiskIndex() float64 {
	if s.TotalItems == 0 {
		return 0
	}
	return float64(s.FailCount) / float64(s.TotalItems)
}

// =============================================================================
// Analysis Report / Result
// =============================================================================

// AnalysisReport is the structured payload returned by the AI provider for
// a single scenario: the four report sections, without bookkeeping fields.
type AnalysisReport struct {
	Checklist            []ChecklistItem      `json:"checklist"`
	RiskAssessment       RiskAssessment       `json:"risk_assessment"`
	ComplianceEvaluation ComplianceEvaluation `json:"compliance_evaluation"`
	SummaryStats         SummaryStats         `json:"summary_stats"`
}

// Validate checks every section of the report. A report that fails here is
// treated as a malformed model response: it is discarded entirely rather
// than partially accepted.
func (r AnalysisReport) Validate() error {
	const op = "analysis_report.validate"
	if len(r.Checklist) == 0 {
		return Invalid(op, "checklist must not be empty")
	}
	for _, item := range r.Checklist {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	if r.RiskAssessment.Overview == "" {
		return Invalid(op, "risk_assessment.overview is required")
	}
	if r.ComplianceEvaluation.Summary == "" {
		return Invalid(op, "compliance_evaluation.summary is required")
	}
	if err := r.SummaryStats.Validate(); err != nil {
		return err
	}
	// The stats block must agree with the checklist it summarizes.
	fails, warns := 0, 0
	for _, item := range r.Checklist {
		switch item.Status {
		case StatusFail:
			fails++
		case StatusWarn:
			warns++
		}
	}
	if r.SummaryStats.FailCount != fails {
		return Invalid(op, "summary_stats.fail_count does not match checklist")
	}
	if r.SummaryStats.WarnCount != warns {
		return Invalid(op, "summary_stats.warn_count does not match checklist")
	}
	return nil
}

// AnalysisResult is one completed analysis: the report plus the generated
// id, the creation instant, and the originating scenario. Created exactly
// once per successful analyze call and never mutated afterwards.
type AnalysisResult struct {
	ID        string        `json:"id"`
	Timestamp time.Time     `json:"timestamp"`
	Scenario  ScenarioInput `json:"scenario"`
	AnalysisReport
}
