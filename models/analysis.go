package models

// AnalysisType discriminates the three on-demand analyses a user can request
// after the main evaluation.
type AnalysisType string

const (
	AnalysisRefinement     AnalysisType = "refinement"
	AnalysisCompetitors    AnalysisType = "competitors"
	AnalysisMarketStrategy AnalysisType = "market-strategy"
)

// Refinement is a single concrete suggestion for evolving the idea.
type Refinement struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Reasoning   string `json:"reasoning"`
}

type RefinementData struct {
	Refinements []Refinement `json:"refinements"`
}

// Competitor describes one player in the idea's market. Only the first four
// fields are guaranteed; the rest are filled when the model knows them.
type Competitor struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	KeyFeatures    []string `json:"keyFeatures"`
	Differentiator string   `json:"differentiator"`
	Pricing        string   `json:"pricing,omitempty"`
	MarketShare    string   `json:"marketShare,omitempty"`
	Founded        string   `json:"founded,omitempty"`
	Funding        string   `json:"funding,omitempty"`
	Employees      string   `json:"employees,omitempty"`
	Strengths      []string `json:"strengths,omitempty"`
	Weaknesses     []string `json:"weaknesses,omitempty"`
}

type CompetitorData struct {
	Competitors []Competitor `json:"competitors"`
}

type TargetAudience struct {
	Primary      string   `json:"primary"`
	Secondary    string   `json:"secondary"`
	Demographics []string `json:"demographics"`
}

type GoToMarketStrategy struct {
	Phase1 string `json:"phase1"`
	Phase2 string `json:"phase2"`
	Phase3 string `json:"phase3"`
}

type RevenueModel struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Pricing   string `json:"pricing"`
}

type MarketStrategyData struct {
	TargetAudience     TargetAudience     `json:"targetAudience"`
	GoToMarketStrategy GoToMarketStrategy `json:"goToMarketStrategy"`
	RevenueModel       RevenueModel       `json:"revenueModel"`
	MarketingChannels  []string           `json:"marketingChannels"`
}
