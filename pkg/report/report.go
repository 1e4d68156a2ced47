// Package report contains the shared data models of a complaint-response
// report as they cross the gateway boundary. Field names and JSON tags match
// the shapes the client renders and the model is prompted to emit.
package report

// HistoryEntry is one chronological step extracted from a raw interaction
// log. The gateway is id-agnostic: entries carry no identity beyond their
// position in the sequence.
type HistoryEntry struct {
	Date    string `json:"date"`
	Person  string `json:"person"`
	Summary string `json:"summary"`
	Detail  string `json:"detail"`
}

// Countermeasure priorities as the model is instructed to emit them.
const (
	PriorityHigh   = "高"
	PriorityMedium = "中"
	PriorityLow    = "低"
)

// Countermeasure is a single proposed measure on the visual sheet.
type Countermeasure struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Priority string `json:"priority"`
}

// VisualSheet is the committed shape for the generateVisualSheet action's
// JSON response: everything the presentation-ready summary sheet needs.
type VisualSheet struct {
	Title           string           `json:"title"`
	Summary         string           `json:"summary"`
	RootCause       string           `json:"rootCause"`
	CauseAnalysis   string           `json:"causeAnalysis"`
	Countermeasures []Countermeasure `json:"countermeasures"`
	ExpectedEffect  string           `json:"expectedEffect"`
}
