package model

// RecommendationSeverity indicates the urgency level of a recommendation.
type RecommendationSeverity int

const (
	SeverityNormal RecommendationSeverity = iota
	SeverityWarning
	SeverityCritical
)

// RecommendationCategory groups related recommendations.
type RecommendationCategory int

const (
	CategoryGeneral RecommendationCategory = iota
	CategoryCardiovascular
	CategoryRespiratory
	CategoryBody
	CategoryFollowUp
)

// Recommendation is a single suggestion shown at the bottom of a report.
type Recommendation struct {
	Severity RecommendationSeverity `json:"severity"`
	Category RecommendationCategory `json:"category"`
	Title    string                 `json:"title"`
	Detail   string                 `json:"detail,omitempty"`
}
