package model

// Recommendation type values.
const (
	RecTypeWarning = "warning"
	RecTypeInfo    = "info"
	RecTypeSuccess = "success"
)

// Recommendation priority / impact levels.
const (
	LevelHigh   = "high"
	LevelMedium = "medium"
	LevelLow    = "low"
)

// Recommendation is one actionable suggestion generated from a score
// breakdown. Generated fresh on each call; never stored.
type Recommendation struct {
	ID          int      `json:"id"`
	Type        string   `json:"type"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    string   `json:"priority"`
	Impact      string   `json:"impact"`
	Category    string   `json:"category"`
	ActionItems []string `json:"actionItems"`
}
