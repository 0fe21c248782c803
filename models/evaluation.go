package models

// EvaluationData is the structured VC-style report produced for an idea. It is
// built either from the remote model's response or by the demo data generator;
// both origins fill the exact same shape, so consumers never branch on where a
// report came from.
type EvaluationData struct {
	ProblemStatement  string       `json:"problemStatement"`
	ExistingSolutions string       `json:"existingSolutions"`
	ProposedSolution  string       `json:"proposedSolution"`
	MarketPotential   string       `json:"marketPotential"`
	SwotAnalysis      SwotAnalysis `json:"swotAnalysis"`
	BusinessModel     string       `json:"businessModel"`
	Pros              []string     `json:"pros"`
	Cons              []string     `json:"cons"`
	Improvements      []string     `json:"improvements"`
	PitchSummary      string       `json:"pitchSummary"`
	Scores            Scores       `json:"scores"`
}

// SwotAnalysis holds three entries per quadrant.
type SwotAnalysis struct {
	Strengths     []string `json:"strengths"`
	Weaknesses    []string `json:"weaknesses"`
	Opportunities []string `json:"opportunities"`
	Threats       []string `json:"threats"`
}

// Scores are the final VC-style ratings. Models occasionally return them on a
// 0-100 scale instead of 0-10; Normalize maps everything onto the display
// scale before the report is shown.
type Scores struct {
	Innovation  float64 `json:"innovation"`
	Feasibility float64 `json:"feasibility"`
	Scalability float64 `json:"scalability"`
}

// Normalize divides any component above 10 by 10 so the display contract is
// always 0-10 inclusive. A score of exactly 10 is a valid top mark and is left
// unchanged.
func (s *Scores) Normalize() {
	if s.Innovation > 10 {
		s.Innovation /= 10
	}
	if s.Feasibility > 10 {
		s.Feasibility /= 10
	}
	if s.Scalability > 10 {
		s.Scalability /= 10
	}
}
