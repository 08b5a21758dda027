// Package risk profiles an investor from a fixed 10-question
// assessment: scoring, profile bands, asset allocation and
// recommendations.
package risk

// AnswerCategory groups questions by what they probe.
type AnswerCategory string

const (
	CategoryTime       AnswerCategory = "time"
	CategoryFinancial  AnswerCategory = "financial"
	CategoryComfort    AnswerCategory = "comfort"
	CategoryExperience AnswerCategory = "experience"
)

// Option is one answer choice, scored 1 (cautious) to 4 (aggressive).
type Option struct {
	Text        string
	Score       int
	Explanation string
}

// Question is one fixed assessment question.
type Question struct {
	ID       int
	Category AnswerCategory
	Text     string
	Options  []Option
}

// MaxScore is the highest score a single answer can carry.
const MaxScore = 4

// Questions is the fixed assessment questionnaire.
var Questions = []Question{
	{
		ID: 1, Category: CategoryTime,
		Text: "What is your investment time horizon?",
		Options: []Option{
			{"Less than 3 years", 1, "Short-term goal"},
			{"3-5 years", 2, "Mid-term goal"},
			{"5-10 years", 3, "Long-term goal"},
			{"More than 10 years", 4, "Very long-term goal"},
		},
	},
	{
		ID: 2, Category: CategoryFinancial,
		Text: "How much of your annual income can you invest?",
		Options: []Option{
			{"Less than 10%", 1, "Limited capacity"},
			{"10-20%", 2, "Moderate capacity"},
			{"20-30%", 3, "Good capacity"},
			{"More than 30%", 4, "Strong capacity"},
		},
	},
	{
		ID: 3, Category: CategoryComfort,
		Text: "If your investment lost 20% in a month, what would you do?",
		Options: []Option{
			{"Sell immediately", 1, "Very risk-averse"},
			{"Worry but hold", 2, "Cautious"},
			{"Hold without worry", 3, "Comfortable with volatility"},
			{"Buy more at lower price", 4, "Opportunistic investor"},
		},
	},
	{
		ID: 4, Category: CategoryExperience,
		Text: "What is your investment experience level?",
		Options: []Option{
			{"Beginner", 1, "New to investing"},
			{"Some experience", 2, "1-3 years"},
			{"Experienced", 3, "3-7 years"},
			{"Very experienced", 4, "7+ years"},
		},
	},
	{
		ID: 5, Category: CategoryFinancial,
		Text: "Do you have an emergency fund covering 6 months of expenses?",
		Options: []Option{
			{"No emergency fund", 1, "Build this first"},
			{"1-3 months", 2, "Getting there"},
			{"3-6 months", 3, "Almost ideal"},
			{"Yes, 6+ months", 4, "Well prepared"},
		},
	},
	{
		ID: 6, Category: CategoryComfort,
		Text: "What matters most to you?",
		Options: []Option{
			{"Preserving capital", 1, "Safety first"},
			{"Stable modest returns", 2, "Conservative growth"},
			{"Balanced growth", 3, "Moderate risk"},
			{"Maximum growth", 4, "Aggressive growth"},
		},
	},
	{
		ID: 7, Category: CategoryTime,
		Text: "When do you plan to retire?",
		Options: []Option{
			{"Within 5 years", 1, "Soon"},
			{"5-10 years", 2, "Mid-term"},
			{"10-20 years", 3, "Long way"},
			{"More than 20 years", 4, "Very long term"},
		},
	},
	{
		ID: 8, Category: CategoryFinancial,
		Text: "How stable is your income?",
		Options: []Option{
			{"Irregular/uncertain", 1, "Variable income"},
			{"Somewhat stable", 2, "Some variation"},
			{"Very stable", 3, "Predictable"},
			{"Multiple income streams", 4, "Diversified income"},
		},
	},
	{
		ID: 9, Category: CategoryExperience,
		Text: "How comfortable are you with complex financial products?",
		Options: []Option{
			{"Not comfortable", 1, "Stick to simple"},
			{"Somewhat comfortable", 2, "Learning"},
			{"Very comfortable", 3, "Knowledgeable"},
			{"Expert level", 4, "Advanced investor"},
		},
	},
	{
		ID: 10, Category: CategoryComfort,
		Text: "How do you typically make investment decisions?",
		Options: []Option{
			{"Always seek advice", 1, "Guidance needed"},
			{"Research + advice", 2, "Collaborative"},
			{"Mostly own research", 3, "Self-directed"},
			{"Fully independent", 4, "Confident decision-maker"},
		},
	},
}
