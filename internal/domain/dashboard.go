package domain

import "time"

// DashboardSummary aggregates the session's analysis history for the
// compliance dashboard. Computed on demand from the session store.
type DashboardSummary struct {
	TotalAnalyses    int        `json:"total_analyses"`
	TotalFindings    int        `json:"total_findings"`
	FailFindings     int        `json:"fail_findings"`
	WarnFindings     int        `json:"warn_findings"`
	AverageRiskIndex float64    `json:"average_risk_index"`
	LatestAnalysisAt *time.Time `json:"latest_analysis_at,omitempty"`
}
