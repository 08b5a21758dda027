package risk

import "fmt"

// Recommendation is one piece of guidance derived from a profile.
type Recommendation struct {
	Type        string
	Title       string
	Description string
}

// MaxRecommendations caps the guidance list.
const MaxRecommendations = 5

// Recommendations derives guidance from a profile. A diversification
// note and a rebalancing note are always present; conditional notes
// fill the remaining slots and the lowest-priority ones are dropped
// past the cap.
func Recommendations(p Profile) []Recommendation {
	var conditional []Recommendation

	switch p.Name {
	case ProfileConservative, ProfileModeratelyConservative:
		conditional = append(conditional, Recommendation{
			Type:        "info",
			Title:       "Focus on Capital Preservation",
			Description: "Prioritize low-risk investments like bonds, treasury securities, and stable dividend stocks. Consider certificates of deposit (CDs) for guaranteed returns.",
		})
	case ProfileAggressive, ProfileModeratelyAggressive:
		conditional = append(conditional, Recommendation{
			Type:        "warning",
			Title:       "Embrace Growth Opportunities",
			Description: "Your risk tolerance allows for higher growth potential. Consider growth stocks, emerging markets, and sector-specific funds. Maintain diversification despite aggressive stance.",
		})
	}

	if t := p.Categories[CategoryTime]; t < 40 {
		conditional = append(conditional, Recommendation{
			Type:        "info",
			Title:       "Short-Term Focus",
			Description: "With a shorter time horizon, prioritize liquidity and stability. Avoid high-volatility investments and focus on preserving capital you'll need soon.",
		})
	} else if t > 70 {
		conditional = append(conditional, Recommendation{
			Type:        "success",
			Title:       "Long-Term Growth Advantage",
			Description: "Your long timeline allows you to weather market volatility. Take advantage by investing in growth-oriented assets that historically outperform over long periods.",
		})
	}

	if p.Categories[CategoryExperience] < 50 {
		conditional = append(conditional, Recommendation{
			Type:        "info",
			Title:       "Build Your Knowledge",
			Description: "Start with simple, diversified investments like index funds and ETFs. Gradually expand into more complex products as you gain experience and confidence.",
		})
	}

	if p.Categories[CategoryFinancial] < 40 {
		conditional = append(conditional, Recommendation{
			Type:        "warning",
			Title:       "Strengthen Your Foundation",
			Description: "Before aggressive investing, ensure you have a solid emergency fund and manageable debt levels. Start investing small amounts regularly to build the habit.",
		})
	}

	always := []Recommendation{
		{
			Type:        "success",
			Title:       "Diversify Your Portfolio",
			Description: fmt.Sprintf("As a %s investor, spread your investments across different asset classes, sectors, and geographies to manage risk effectively.", p.Name),
		},
		{
			Type:        "info",
			Title:       "Regular Rebalancing",
			Description: "Review and rebalance your portfolio quarterly or annually to maintain your target asset allocation and risk level.",
		},
	}

	if keep := MaxRecommendations - len(always); len(conditional) > keep {
		conditional = conditional[:keep]
	}
	return append(conditional, always...)
}
