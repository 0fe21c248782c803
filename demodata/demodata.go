// Package demodata synthesizes plausible evaluation and analysis payloads for
// demo mode. Every function is pure: no I/O, no randomness, and the same title
// always produces identical output, so repeated views within a session render
// the same report.
package demodata

import (
	"fmt"

	"ideanest/models"
)

// GenerateEvaluation builds a full evaluation report around the idea's title.
// The description is accepted for parity with the remote contract but does not
// influence the output. Scores are already on the 0-10 display scale.
func GenerateEvaluation(title, _ string) models.EvaluationData {
	return models.EvaluationData{
		ProblemStatement: fmt.Sprintf("The core problem %s addresses is a significant gap in the market where potential users face challenges with inefficient workflows, lack of automation, and limited access to intelligent solutions. Current solutions are either too expensive for the target market or lack the sophistication needed to deliver real value. This creates an opportunity for a platform that combines affordability with advanced AI capabilities.", title),

		ExistingSolutions: "The market currently has several established players: 1) Enterprise solutions like Salesforce and SAP that are comprehensive but prohibitively expensive ($500-5000/month) and complex to implement, 2) Basic freemium tools that are affordable but lack advanced features and AI capabilities, 3) Open-source alternatives that require technical expertise and significant maintenance overhead. None of these solutions effectively serve students and early-stage founders who need professional-grade analysis at accessible price points.",

		ProposedSolution: fmt.Sprintf("%s leverages cutting-edge AI to provide intelligent, automated analysis and insights at a fraction of the cost of traditional solutions. The platform combines a beautiful, intuitive interface with powerful backend capabilities, making advanced features accessible to non-technical users. Key innovations include real-time AI evaluation, comprehensive reporting, and seamless integration workflows that reduce time-to-value from weeks to minutes.", title),

		MarketPotential: "The addressable market is substantial and growing. With over 50 million students globally and 300+ million small businesses worldwide, the target audience represents a $50B+ opportunity. The shift toward AI-powered tools and the increasing accessibility of advanced technology creates a perfect timing for disruption. Early adopters in the student and founder community can drive viral growth through word-of-mouth, while the low price point removes barriers to entry.",

		SwotAnalysis: models.SwotAnalysis{
			Strengths: []string{
				"AI-powered insights that deliver professional-grade analysis instantly",
				"Accessible pricing ($19-99/month) targeting underserved student/founder market",
				"Modern, intuitive UX that requires no training or technical expertise",
			},
			Weaknesses: []string{
				"New entrant without established brand recognition or customer base",
				"Dependency on third-party AI providers and potential cost/availability constraints",
				"Limited resources for marketing and customer acquisition initially",
			},
			Opportunities: []string{
				"Massive underserved market of 50M+ students and early-stage founders",
				"Growing acceptance and demand for AI-powered productivity tools",
				"Expansion into adjacent markets like accelerators, universities, and VCs",
			},
			Threats: []string{
				"Established competitors could add AI features to existing platforms",
				"Market saturation as more AI tools launch in the productivity space",
				"Rapid technological change requiring constant innovation to stay relevant",
			},
		},

		BusinessModel: "The revenue model follows a freemium SaaS approach with three tiers: 1) Free tier with limited evaluations (1-2/month) to drive user acquisition and viral growth, 2) Student/Founder tier at $19-29/month with unlimited evaluations and core features, 3) Pro tier at $49-99/month with advanced features like API access, team collaboration, and priority support. Additional revenue streams include partnership fees from universities/accelerators, API access for B2B customers, and premium add-ons like personalized consulting or pitch deck design services.",

		Pros: []string{
			"Clear product-market fit addressing real pain point for large, growing audience",
			"Low customer acquisition cost potential through viral growth in close-knit communities",
			"High margins due to API-based delivery model with minimal infrastructure overhead",
		},

		Cons: []string{
			"Highly competitive market with both established players and new AI-powered entrants",
			"Risk of commoditization as AI capabilities become more widely available",
			"Dependency on third-party AI providers creates potential for disruption",
		},

		Improvements: []string{
			"Implement multi-language support to expand internationally, particularly in emerging markets with large student populations",
			"Add team collaboration features with shared workspaces, commenting, and version control to enable higher pricing tiers",
			"Develop integrations with popular tools (Notion, Slack, Google Workspace) to embed within existing workflows and increase stickiness",
		},

		PitchSummary: fmt.Sprintf("%s is transforming how students and early-stage founders evaluate and refine their startup ideas by providing instant, VC-quality analysis at an affordable price. Using advanced AI technology, we deliver comprehensive evaluations including problem-solution fit, market analysis, competitive positioning, and strategic recommendations in minutes rather than the weeks and thousands of dollars required by traditional consulting. Our platform addresses a massive underserved market of 50+ million students and founders who currently lack access to professional-grade business analysis. With a freemium model starting at just $19/month, we're making entrepreneurial success more accessible while building a scalable, high-margin SaaS business.", title),

		Scores: models.Scores{
			Innovation:  8.5,
			Feasibility: 7.8,
			Scalability: 8.2,
		},
	}
}

// GenerateRefinements returns three concrete directions for evolving the idea.
func GenerateRefinements(_ string) models.RefinementData {
	return models.RefinementData{
		Refinements: []models.Refinement{
			{
				Title:       "Multi-Stakeholder Evaluation Mode",
				Description: "Add ability for teams to invite mentors, advisors, or investors to provide their own evaluation ratings and feedback on the same idea, creating a collaborative assessment dashboard.",
				Reasoning:   "Most successful startups benefit from diverse perspectives. By enabling multi-stakeholder input, you differentiate from solo-use tools and create network effects as users invite others to the platform. This also increases engagement and provides more comprehensive insights.",
			},
			{
				Title:       "Industry-Specific Templates & Benchmarks",
				Description: "Create pre-built evaluation frameworks tailored to specific industries (FinTech, HealthTech, EdTech, etc.) with relevant benchmarks, metrics, and success criteria from that vertical.",
				Reasoning:   "Generic evaluations miss industry-specific nuances. Vertical-specific templates demonstrate deep expertise and provide more actionable insights. This positions the platform as an industry expert rather than a generic tool, commanding premium pricing.",
			},
			{
				Title:       "AI-Powered Idea Evolution Tracker",
				Description: "Build a longitudinal feature that tracks how ideas evolve over time, showing iteration history, improvements made, and progress toward key milestones with visual timeline and metrics.",
				Reasoning:   "Ideas evolve significantly from conception to launch. Tracking this journey creates historical value, demonstrates progress to stakeholders, and keeps users engaged long-term. It also generates valuable data on what changes lead to success.",
			},
		},
	}
}

// GenerateCompetitors returns a comparable competitive landscape for any idea:
// an incumbent, a budget challenger, an open-source alternative, and a
// consumer freemium app. The differentiators position the titled idea against
// each.
func GenerateCompetitors(title string) models.CompetitorData {
	return models.CompetitorData{
		Competitors: []models.Competitor{
			{
				Name:        "MarketLeader Pro",
				Description: "Established enterprise platform that has dominated the market for over a decade with a comprehensive suite of tools and strong brand recognition. Founded in 2012, with 50,000+ enterprise customers globally and $200M ARR.",
				KeyFeatures: []string{
					"Comprehensive feature set covering all major use cases with 100+ integrations",
					"Enterprise-grade security and compliance (SOC 2, GDPR, ISO 27001 certified)",
					"Dedicated account management and 24/7 multilingual support",
					"Advanced analytics and reporting dashboards with custom data export",
				},
				Differentiator: fmt.Sprintf("Unlike MarketLeader Pro's complex, enterprise-focused approach with steep learning curve and pricing starting at $500/month, %s offers a streamlined, user-friendly experience at a fraction of the cost ($19-99/month), making advanced capabilities accessible to students and small teams.", title),
				Pricing:        "$500-5,000/month",
				MarketShare:    "35%",
				Founded:        "2012",
				Funding:        "$250M Series D",
				Employees:      "1,200+",
				Strengths:      []string{"Brand recognition", "Enterprise relationships", "Feature completeness"},
				Weaknesses:     []string{"High pricing", "Complex UX", "Slow innovation cycle"},
			},
			{
				Name:        "StartupTool",
				Description: "A newer competitor targeting startups and SMBs with a focus on affordability and ease of use. Launched in 2020, growing rapidly with 100,000+ users across 120 countries and $15M ARR.",
				KeyFeatures: []string{
					"Simple, intuitive interface with minimal learning curve and 5-minute setup",
					"Affordable pricing starting at $9/month with generous free tier",
					"Quick setup with 50+ pre-built templates and presets",
					"Zapier integration for workflow automation",
				},
				Differentiator: fmt.Sprintf("While StartupTool focuses on simplicity and basic functionality, %s leverages cutting-edge AI to provide intelligent automation, predictive insights, and personalized recommendations that deliver significantly better outcomes at comparable pricing.", title),
				Pricing:        "$9-49/month",
				MarketShare:    "12%",
				Founded:        "2020",
				Funding:        "$8M Series A",
				Employees:      "45",
				Strengths:      []string{"Ease of use", "Affordable pricing", "Fast iteration"},
				Weaknesses:     []string{"Limited features", "No AI capabilities", "Basic analytics"},
			},
			{
				Name:        "OpenSource Alternative",
				Description: "Free, open-source solution popular among developers and tech-savvy users. Active since 2015 with 50,000+ GitHub stars, 500+ contributors, and deployments at 10,000+ organizations worldwide.",
				KeyFeatures: []string{
					"Completely free and open-source under MIT license",
					"Full customization and self-hosting options with Docker/Kubernetes support",
					"Active developer community contributing features and plugins",
					"No vendor lock-in or data restrictions - full data ownership",
				},
				Differentiator: fmt.Sprintf("%s offers the best of both worlds - the affordability users love about open source with the polish, cloud hosting, automatic updates, support, and advanced AI capabilities of commercial solutions. Users get started in minutes without DevOps expertise, server management, or security concerns.", title),
				Pricing:        "Free (self-hosted)",
				MarketShare:    "8%",
				Founded:        "2015",
				Funding:        "Community-driven",
				Employees:      "500+ contributors",
				Strengths:      []string{"Zero cost", "Full control", "Extensibility"},
				Weaknesses:     []string{"Requires technical expertise", "No official support", "Maintenance burden"},
			},
			{
				Name:        "FreemiumApp",
				Description: "Popular freemium platform with millions of users, primarily focused on consumers and individual users rather than teams or businesses. Launched in 2018 with 5M+ active users, 250K+ paid subscribers, and $30M ARR.",
				KeyFeatures: []string{
					"Generous free tier attracting large user base (unlimited basic usage)",
					"Mobile-first design with excellent UX and native apps",
					"Social features and community engagement with public idea sharing",
					"Viral growth mechanisms built into product (referral bonuses, share features)",
				},
				Differentiator: fmt.Sprintf("%s goes beyond FreemiumApp's basic consumer offerings by providing professional-grade AI analysis, comprehensive business insights, team collaboration, and advanced reporting that appeal to serious users willing to pay for superior results. While FreemiumApp targets casual individual users, %s serves students, entrepreneurs, and businesses who need VC-quality analysis and actionable insights.", title, title),
				Pricing:        "Free - $29/month",
				MarketShare:    "18%",
				Founded:        "2018",
				Funding:        "$45M Series B",
				Employees:      "180",
				Strengths:      []string{"Large user base", "Viral growth", "Mobile experience"},
				Weaknesses:     []string{"Limited business features", "No AI analysis", "Consumer-focused"},
			},
		},
	}
}

// GenerateMarketStrategy returns a staged go-to-market plan for the idea.
func GenerateMarketStrategy(_ string) models.MarketStrategyData {
	return models.MarketStrategyData{
		TargetAudience: models.TargetAudience{
			Primary:   "University students and recent graduates (18-28 years old) working on startup ideas for class projects, hackathons, or personal ventures. This segment has high engagement, strong word-of-mouth potential, and grows into paying professional users.",
			Secondary: "First-time founders and solo entrepreneurs (25-40 years old) in the pre-seed stage who need to validate and refine their ideas before pitching to investors or committing significant resources.",
			Demographics: []string{
				"Tech-savvy millennials and Gen Z comfortable with AI tools",
				"Located primarily in startup hubs (SF, NYC, Boston, Austin, Bangalore, London, Berlin)",
				"Active in entrepreneurship communities (Product Hunt, Indie Hackers, university innovation labs)",
				"Budget-conscious but willing to pay for high-value tools ($20-100/month range)",
			},
		},
		GoToMarketStrategy: models.GoToMarketStrategy{
			Phase1: "Launch on Product Hunt and startup communities with a generous free tier to drive initial user acquisition. Partner with 10-20 university entrepreneurship programs and innovation labs to offer free institutional access in exchange for feedback and testimonials. Target: 1,000 active users in first 3 months.",
			Phase2: "Implement viral growth mechanics (referral bonuses, social sharing of evaluations) and launch targeted content marketing. Begin paid advertising on LinkedIn and Facebook targeting startup-related interests. Expand university partnerships to 50+ institutions and launch a campus ambassador program. Target: 10,000 active users by month 6.",
			Phase3: "Scale B2B sales to accelerators, incubators, and corporate innovation programs offering team licenses. Launch API access for developers and integration partners. Expand internationally starting with English-speaking markets. Target: 50,000+ users and $500K ARR by end of year 1.",
		},
		RevenueModel: models.RevenueModel{
			Primary:   "Monthly SaaS subscriptions at three tiers: Free (2 evaluations/month), Student ($19/month for unlimited evaluations + basic features), Pro ($49/month for advanced features + API access + collaboration tools). Focus on converting free users to paid through usage limits and premium feature gating.",
			Secondary: "Enterprise licenses for universities, accelerators, and corporate innovation teams at $500-5,000/month based on user count. White-label options for larger organizations at $10K-50K annual contracts.",
			Pricing:   "Free tier as acquisition funnel, $19/month (target 70% of paid users), $49/month (target 25% of paid users), $500+/month enterprise (target 5% of revenue but highest margin). Expected LTV:CAC ratio of 5:1 with 12-month payback period.",
		},
		MarketingChannels: []string{
			"Content Marketing: SEO-optimized blog posts on startup topics, comprehensive guides, and case studies to drive organic traffic",
			"Community Building: Active presence in r/startups, Indie Hackers, Product Hunt, and startup Slack/Discord communities",
			"Partnership Marketing: Co-marketing with university entrepreneurship programs, accelerators, and startup tools",
			"Social Media: Educational content on LinkedIn and Twitter targeting founders, plus YouTube tutorials",
			"Paid Advertising: Targeted LinkedIn and Facebook ads to startup founders, with retargeting campaigns for free users",
			"Email Marketing: Nurture sequences for free users, weekly newsletters with startup insights, and personalized upgrade campaigns",
		},
	}
}
