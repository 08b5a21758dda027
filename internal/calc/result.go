package calc

// Card is a headline result figure with an optional context line.
type Card struct {
	Label    string
	Value    string
	Sublabel string
}

// ListItem is one row of an itemized result breakdown.
type ListItem struct {
	Label string
	Value string
}

// ChartType names the visual a renderer should pick for a result chart.
type ChartType string

const (
	ChartPie      ChartType = "pie"
	ChartDoughnut ChartType = "doughnut"
	ChartBar      ChartType = "bar"
)

// Series is one labeled slice or bar of a result chart.
type Series struct {
	Label string
	Value float64
}

// Chart is a renderer-agnostic chart specification.
type Chart struct {
	Type   ChartType
	Series []Series
}

// Result is the structured output of a calculator run: headline cards,
// an optional itemized list, and an optional chart spec. Results are
// built fresh per call and never mutated afterwards.
type Result struct {
	Cards []Card
	List  []ListItem
	Chart *Chart
}
