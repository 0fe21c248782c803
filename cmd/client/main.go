// The client evaluates a startup idea against an ideanest server and prints
// the resulting report. If the server cannot produce a live evaluation for any
// reason, the run still completes using locally generated demo data.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"ideanest/logger"
	"ideanest/models"
	"ideanest/orchestrator"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	var (
		serverURL   = flag.String("server", "http://localhost:3001", "base URL of the evaluation server")
		anonKey     = flag.String("key", os.Getenv("IDEANEST_ANON_KEY"), "bearer token for the evaluation server")
		title       = flag.String("title", "", "idea title")
		description = flag.String("description", "", "idea description, at least 150 characters")
		file        = flag.String("file", "", "read the description from this file instead of -description")
		analysis    = flag.String("analysis", "", "comma-separated follow-up analyses: refine, competitors, market-strategy, or all")
		logLevel    = flag.String("log-level", "warn", "log verbosity: debug, info, warn, error")
	)
	flag.Parse()

	desc := *description
	if *file != "" {
		data, err := os.ReadFile(*file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot read description file: %v\n", err)
			os.Exit(1)
		}
		desc = strings.TrimSpace(string(data))
	}

	// Input validation happens before any request is made; a short
	// description is a user mistake, not a service failure.
	if strings.TrimSpace(*title) == "" {
		fmt.Fprintln(os.Stderr, "Error: title is required")
		os.Exit(1)
	}
	if len(desc) < 150 {
		fmt.Fprintf(os.Stderr, "Error: description must be at least 150 characters (got %d)\n", len(desc))
		os.Exit(1)
	}

	zlog := logger.New(*logLevel, "console")
	defer zlog.Sync()

	notifier := orchestrator.NewQueueNotifier(16)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for n := range notifier.Events() {
			if n.Description != "" {
				fmt.Fprintf(os.Stderr, "* %s: %s\n", n.Message, n.Description)
			} else {
				fmt.Fprintf(os.Stderr, "* %s\n", n.Message)
			}
		}
	}()

	o := orchestrator.New(*serverURL, *anonKey)
	o.Notifier = notifier
	o.Logger = zlog

	ctx := context.Background()
	evaluation, mode := o.Evaluate(ctx, *title, desc)
	printEvaluation(*title, evaluation, mode)

	for _, kind := range parseAnalyses(*analysis) {
		switch kind {
		case "refine":
			printRefinements(o.Refine(ctx))
		case "competitors":
			printCompetitors(o.Competitors(ctx))
		case "market-strategy":
			printMarketStrategy(o.MarketStrategy(ctx))
		default:
			fmt.Fprintf(os.Stderr, "Error: unknown analysis %q\n", kind)
			os.Exit(1)
		}
	}

	notifier.Close()
	<-done
}

func parseAnalyses(value string) []string {
	if value == "" {
		return nil
	}
	if value == "all" {
		return []string{"refine", "competitors", "market-strategy"}
	}
	var kinds []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			kinds = append(kinds, part)
		}
	}
	return kinds
}

func printEvaluation(title string, e models.EvaluationData, mode orchestrator.Mode) {
	fmt.Printf("=== Evaluation: %s (%s) ===\n\n", title, mode)
	fmt.Printf("Problem:   %s\n", e.ProblemStatement)
	fmt.Printf("Existing:  %s\n", e.ExistingSolutions)
	fmt.Printf("Solution:  %s\n", e.ProposedSolution)
	fmt.Printf("Market:    %s\n", e.MarketPotential)
	fmt.Printf("Business:  %s\n\n", e.BusinessModel)

	printList("Strengths", e.SwotAnalysis.Strengths)
	printList("Weaknesses", e.SwotAnalysis.Weaknesses)
	printList("Opportunities", e.SwotAnalysis.Opportunities)
	printList("Threats", e.SwotAnalysis.Threats)
	printList("Pros", e.Pros)
	printList("Cons", e.Cons)
	printList("Improvements", e.Improvements)

	fmt.Printf("Pitch: %s\n\n", e.PitchSummary)
	fmt.Printf("Scores: innovation %.1f | feasibility %.1f | scalability %.1f\n",
		e.Scores.Innovation, e.Scores.Feasibility, e.Scores.Scalability)
}

func printList(heading string, items []string) {
	fmt.Printf("%s:\n", heading)
	for _, item := range items {
		fmt.Printf("  - %s\n", item)
	}
	fmt.Println()
}

func printRefinements(data models.RefinementData) {
	fmt.Println("=== Refinements ===")
	for i, r := range data.Refinements {
		fmt.Printf("%d. %s\n   %s\n   Why: %s\n", i+1, r.Title, r.Description, r.Reasoning)
	}
	fmt.Println()
}

func printCompetitors(data models.CompetitorData) {
	fmt.Println("=== Competitors ===")
	for _, c := range data.Competitors {
		fmt.Printf("- %s: %s\n", c.Name, c.Description)
		if len(c.KeyFeatures) > 0 {
			fmt.Printf("  Features: %s\n", strings.Join(c.KeyFeatures, ", "))
		}
		fmt.Printf("  Differentiator: %s\n", c.Differentiator)
	}
	fmt.Println()
}

func printMarketStrategy(data models.MarketStrategyData) {
	fmt.Println("=== Market Strategy ===")
	fmt.Printf("Audience: %s (secondary: %s)\n", data.TargetAudience.Primary, data.TargetAudience.Secondary)
	fmt.Printf("Phase 1: %s\nPhase 2: %s\nPhase 3: %s\n",
		data.GoToMarketStrategy.Phase1, data.GoToMarketStrategy.Phase2, data.GoToMarketStrategy.Phase3)
	fmt.Printf("Revenue: %s; %s; pricing %s\n",
		data.RevenueModel.Primary, data.RevenueModel.Secondary, data.RevenueModel.Pricing)
	printList("Channels", data.MarketingChannels)
}
