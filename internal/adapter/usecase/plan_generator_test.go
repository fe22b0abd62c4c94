package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coretas/internal/core/domain"
)

func TestGeneratePlanPreservesCategories(t *testing.T) {
	input := domain.PlanInput{
		Objective:         "Sales",
		DailyBudget:       100,
		ProductCategories: " Shoes , Bags ,, Hats ",
	}

	plan, err := GeneratePlan(input)
	require.NoError(t, err)

	assert.Equal(t, []string{"Shoes", "Bags", "Hats"}, plan.ProductCategories)
	assert.NotEmpty(t, plan.CreativePack.Headlines)
	assert.NotEmpty(t, plan.CreativePack.Descriptions)
	assert.Equal(t, 100.0, plan.DailyBudget)
}

func TestGeneratePlanDefaultsGeoAndLang(t *testing.T) {
	plan, err := GeneratePlan(domain.PlanInput{
		Objective:         "Sales",
		DailyBudget:       50,
		ProductCategories: "Shoes",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"US"}, plan.Geo)
	assert.Equal(t, []string{"en"}, plan.Lang)

	plan, err = GeneratePlan(domain.PlanInput{
		Objective:         "Sales",
		DailyBudget:       50,
		ProductCategories: "Shoes",
		Country:           "DE",
		Language:          "de",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"DE"}, plan.Geo)
	assert.Equal(t, []string{"de"}, plan.Lang)
}

func TestGeneratePlanCreativePack(t *testing.T) {
	plan, err := GeneratePlan(domain.PlanInput{
		Objective:         "Sales",
		DailyBudget:       50,
		ProductCategories: "Shoes, Bags",
	})
	require.NoError(t, err)

	pack := plan.CreativePack
	require.Len(t, pack.Headlines, 3)
	assert.Equal(t, "Best Shoes Deals", pack.Headlines[0])
	require.Len(t, pack.Descriptions, 2)
	assert.NotEmpty(t, pack.ImageURLs)
	assert.NotEmpty(t, pack.Callouts)
	assert.NotEmpty(t, pack.LogoURL)
}

func TestGeneratePlanKeywordsCrossProduct(t *testing.T) {
	plan, err := GeneratePlan(domain.PlanInput{
		Objective:         "Sales",
		DailyBudget:       50,
		ProductCategories: "Shoes",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Shoes reviews",
		"buy shoes",
		"best shoes",
		"shoes deals",
	}, plan.TargetingHints.Keywords)

	// Three categories produce 12 raw keywords, capped at 10.
	plan, err = GeneratePlan(domain.PlanInput{
		Objective:         "Sales",
		DailyBudget:       50,
		ProductCategories: "Shoes, Bags, Hats",
	})
	require.NoError(t, err)
	assert.Len(t, plan.TargetingHints.Keywords, 10)
}

func TestGeneratePlanAudiencesByObjective(t *testing.T) {
	sales, err := GeneratePlan(domain.PlanInput{
		Objective:         "Sales",
		DailyBudget:       50,
		ProductCategories: "Shoes, Bags, Hats",
	})
	require.NoError(t, err)
	assert.Contains(t, sales.TargetingHints.Audiences, "Shoppers")
	assert.Contains(t, sales.TargetingHints.Audiences, "Shoes enthusiasts")
	assert.Contains(t, sales.TargetingHints.Audiences, "Bags enthusiasts")
	assert.NotContains(t, sales.TargetingHints.Audiences, "Hats enthusiasts")

	leads, err := GeneratePlan(domain.PlanInput{
		Objective:         "Leads",
		DailyBudget:       50,
		ProductCategories: "Shoes",
	})
	require.NoError(t, err)
	assert.Contains(t, leads.TargetingHints.Audiences, "Interested prospects")
}

func TestGeneratePlanBiddingStrategy(t *testing.T) {
	sales, err := GeneratePlan(domain.PlanInput{Objective: "Sales", DailyBudget: 50, ProductCategories: "Shoes"})
	require.NoError(t, err)
	assert.Equal(t, "maximize_conversion_value", sales.BiddingStrategy)

	leads, err := GeneratePlan(domain.PlanInput{Objective: "Leads", DailyBudget: 50, ProductCategories: "Shoes"})
	require.NoError(t, err)
	assert.Equal(t, "maximize_conversions", leads.BiddingStrategy)
}

func TestGeneratePlanValidation(t *testing.T) {
	tests := []struct {
		name      string
		input     domain.PlanInput
		wantField string
	}{
		{
			name:      "empty categories",
			input:     domain.PlanInput{Objective: "Sales", DailyBudget: 50, ProductCategories: " , ,"},
			wantField: "productCategories",
		},
		{
			name:      "missing categories",
			input:     domain.PlanInput{Objective: "Sales", DailyBudget: 50},
			wantField: "productCategories",
		},
		{
			name:      "budget below minimum",
			input:     domain.PlanInput{Objective: "Sales", DailyBudget: 0.5, ProductCategories: "Shoes"},
			wantField: "dailyBudget",
		},
		{
			name:      "unknown objective",
			input:     domain.PlanInput{Objective: "Awareness", DailyBudget: 50, ProductCategories: "Shoes"},
			wantField: "objective",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GeneratePlan(tt.input)
			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantField, verr.Field)
			assert.NotEmpty(t, verr.Message)
		})
	}
}
