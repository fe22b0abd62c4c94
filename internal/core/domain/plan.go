package domain

import (
	"math"
	"strings"
)

// PlanInput is the raw wizard input for generating a media plan.
// ProductCategories travels over the wire as a comma-separated string.
type PlanInput struct {
	Objective         string  `json:"objective" validate:"required,oneof=Sales Leads"`
	DailyBudget       float64 `json:"dailyBudget" validate:"required,gte=1"`
	ProductCategories string  `json:"productCategories" validate:"required"`
	Country           string  `json:"country,omitempty"`
	Language          string  `json:"language,omitempty"`
}

// Categories parses the comma-separated category string into trimmed,
// non-empty labels in their original order.
func (p PlanInput) Categories() []string {
	parts := strings.Split(p.ProductCategories, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if c := strings.TrimSpace(part); c != "" {
			out = append(out, c)
		}
	}
	return out
}

// CreativePack holds the creative assets of a generated plan. Headlines and
// descriptions are always populated; the remaining fields are optional
// extras the platform adapters may use.
type CreativePack struct {
	Headlines     []string `json:"headlines"`
	Descriptions  []string `json:"descriptions"`
	ImageURLs     []string `json:"image_urls,omitempty"`
	LongHeadlines []string `json:"long_headlines,omitempty"`
	PrimaryTexts  []string `json:"primary_texts,omitempty"`
	Callouts      []string `json:"callouts,omitempty"`
	LogoURL       string   `json:"logo_url,omitempty"`
}

// TargetingHints carries suggested keywords, audiences and placements.
type TargetingHints struct {
	Keywords   []string `json:"keywords"`
	Audiences  []string `json:"audiences"`
	Placements []string `json:"placements,omitempty"`
}

// GeneratedPlan is the platform-agnostic elaboration of a PlanInput. It is
// ephemeral: it lives between generation and execution within one wizard
// session and is never persisted.
type GeneratedPlan struct {
	Objective         string         `json:"objective"`
	DailyBudget       float64        `json:"daily_budget"`
	Geo               []string       `json:"geo"`
	Lang              []string       `json:"lang"`
	ProductCategories []string       `json:"product_categories"`
	CreativePack      CreativePack   `json:"creative_pack"`
	TargetingHints    TargetingHints `json:"targeting_hints"`
	BiddingStrategy   string         `json:"bidding_strategy"`
}

// FirstCategory returns the first product category, or a generic fallback
// when the plan carries none. Platform naming schemes hang off this value.
func (p GeneratedPlan) FirstCategory() string {
	if len(p.ProductCategories) > 0 {
		return p.ProductCategories[0]
	}
	return "Products"
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
