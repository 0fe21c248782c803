package models

import "time"

// IdeaRecord is the value stored in the idea key-value store after a
// successful evaluation, keyed by a generated id of the form
// idea_<epoch-millis>_<9-char suffix>.
type IdeaRecord struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Evaluation  EvaluationData `json:"evaluation"`
	CreatedAt   time.Time      `json:"createdAt"`
}
