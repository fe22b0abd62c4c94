package usecase

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"coretas/internal/core/domain"
)

var validate = validator.New()

// planInputMessages maps PlanInput fields to the inline error text shown
// next to the offending form field.
var planInputMessages = map[string]string{
	"Objective":         "objective must be Sales or Leads",
	"DailyBudget":       "daily budget must be at least 1",
	"ProductCategories": "at least one product category is required",
}

// planInputFields maps struct field names back to their wire names.
var planInputFields = map[string]string{
	"Objective":         "objective",
	"DailyBudget":       "dailyBudget",
	"ProductCategories": "productCategories",
}

// ValidatePlanInput checks a PlanInput and returns a *domain.ValidationError
// describing the first offending field, or nil.
func ValidatePlanInput(input domain.PlanInput) error {
	if err := validate.Struct(input); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			field := verrs[0].StructField()
			return domain.NewValidationError(planInputFields[field], planInputMessages[field])
		}
		return err
	}
	if len(input.Categories()) == 0 {
		return domain.NewValidationError("productCategories", planInputMessages["ProductCategories"])
	}
	return nil
}

// GeneratePlan elaborates wizard input into a platform-agnostic media plan:
// creative pack, targeting hints and a bidding strategy. The per-channel
// budget split is not decided here; that happens at execution time.
func GeneratePlan(input domain.PlanInput) (domain.GeneratedPlan, error) {
	if err := ValidatePlanInput(input); err != nil {
		return domain.GeneratedPlan{}, err
	}

	categories := input.Categories()

	geo := []string{"US"}
	if input.Country != "" {
		geo = []string{input.Country}
	}
	lang := []string{"en"}
	if input.Language != "" {
		lang = []string{input.Language}
	}

	bidding := "maximize_conversions"
	if strings.EqualFold(input.Objective, "Sales") {
		bidding = "maximize_conversion_value"
	}

	return domain.GeneratedPlan{
		Objective:         input.Objective,
		DailyBudget:       input.DailyBudget,
		Geo:               geo,
		Lang:              lang,
		ProductCategories: categories,
		CreativePack:      buildCreativePack(categories),
		TargetingHints:    buildTargetingHints(categories, input.Objective),
		BiddingStrategy:   bidding,
	}, nil
}

// buildCreativePack templates creative copy from the first listed category.
// Most platforms accept only a few variations, so the generated lists are
// capped at 3 headlines and 2 descriptions.
func buildCreativePack(categories []string) domain.CreativePack {
	first := categories[0]
	lower := strings.ToLower(first)

	headlines := []string{
		fmt.Sprintf("Best %s Deals", first),
		fmt.Sprintf("Shop Top %s Brands", first),
		fmt.Sprintf("Limited Time %s Offers", first),
		fmt.Sprintf("Premium %s Collection", first),
	}
	descriptions := []string{
		"Free shipping on all orders over $50. Shop now!",
		fmt.Sprintf("Discover the best selection of high-quality %s.", lower),
		fmt.Sprintf("Get the latest %s at unbeatable prices.", lower),
	}
	primaryTexts := []string{
		fmt.Sprintf("Explore our curated collection of %s.", lower),
		fmt.Sprintf("Find everything you need for %s.", lower),
	}

	slug := strings.ReplaceAll(first, " ", "+")
	return domain.CreativePack{
		Headlines:    headlines[:3],
		Descriptions: descriptions[:2],
		ImageURLs: []string{
			fmt.Sprintf("https://placehold.co/600x400/2563eb/white?text=%s+Hero", slug),
			fmt.Sprintf("https://placehold.co/600x400/16a34a/white?text=%s+Lifestyle", slug),
		},
		PrimaryTexts: primaryTexts,
		Callouts:     []string{"Free returns", "Fast shipping", "Secure checkout", "24/7 support"},
		LogoURL:      "https://placehold.co/200x200/000000/white?text=Logo",
	}
}

// buildTargetingHints derives keywords as the cross-product of each category
// with a fixed set of intent modifiers, and audiences from the objective
// plus per-category enthusiast segments.
func buildTargetingHints(categories []string, objective string) domain.TargetingHints {
	var keywords []string
	for _, category := range categories {
		lower := strings.ToLower(category)
		keywords = append(keywords,
			fmt.Sprintf("%s reviews", category),
			fmt.Sprintf("buy %s", lower),
			fmt.Sprintf("best %s", lower),
			fmt.Sprintf("%s deals", lower),
		)
	}
	if len(keywords) > 10 {
		keywords = keywords[:10]
	}

	var audiences []string
	if strings.EqualFold(objective, "Sales") {
		audiences = []string{"Shoppers", "Online buyers", "Deal seekers"}
	} else {
		audiences = []string{"Interested prospects", "Engaged users", "Potential customers"}
	}
	for i, category := range categories {
		if i == 2 {
			break
		}
		audiences = append(audiences, fmt.Sprintf("%s enthusiasts", category))
	}

	return domain.TargetingHints{
		Keywords:   keywords,
		Audiences:  audiences,
		Placements: []string{"shopping surfaces", "search results", "display networks"},
	}
}
