package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"finsight/internal/budget"
	"finsight/internal/cli"
	"finsight/internal/spend"

	"github.com/spf13/cobra"
)

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Budget planning and tracking",
}

var (
	flagBudgetIncome  float64
	flagBudgetRule    string
	flagBudgetNeeds   float64
	flagBudgetWants   float64
	flagBudgetSavings float64
)

var budgetCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a budget from an allocation rule",
	RunE:  runBudgetCreate,
}

var budgetShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the active budget",
	RunE:  runBudgetShow,
}

var budgetAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Compare the budget against tracked spending",
	RunE:  runBudgetAnalyze,
}

var budgetGoalsCmd = &cobra.Command{
	Use:   "goals name=amount [name=amount ...]",
	Short: "Split the goals allocation across savings targets",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runBudgetGoals,
}

var budgetClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Discard the active budget",
	RunE: func(_ *cobra.Command, _ []string) error {
		s, err := openStore(loadConfig())
		if err != nil {
			return err
		}
		defer s.Close()
		return budget.NewPlanner(s).Clear()
	},
}

func init() {
	budgetCreateCmd.Flags().Float64VarP(&flagBudgetIncome, "income", "i", 0, "Monthly income")
	budgetCreateCmd.Flags().StringVarP(&flagBudgetRule, "rule", "r", budget.Rule503020, "Allocation rule: 50/30/20, 70/20/10, 80/20 or custom")
	budgetCreateCmd.Flags().Float64Var(&flagBudgetNeeds, "needs", 0, "Needs ratio for the custom rule")
	budgetCreateCmd.Flags().Float64Var(&flagBudgetWants, "wants", 0, "Wants ratio for the custom rule")
	budgetCreateCmd.Flags().Float64Var(&flagBudgetSavings, "savings", 0, "Savings ratio for the custom rule")
	budgetCreateCmd.MarkFlagRequired("income")

	budgetCmd.AddCommand(budgetCreateCmd, budgetShowCmd, budgetAnalyzeCmd, budgetGoalsCmd, budgetClearCmd)
	rootCmd.AddCommand(budgetCmd)
}

func runBudgetCreate(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	var custom *budget.Ratio
	if flagBudgetRule == budget.RuleCustom {
		custom = &budget.Ratio{Needs: flagBudgetNeeds, Wants: flagBudgetWants, Savings: flagBudgetSavings}
	}

	b, err := budget.NewPlanner(s).Create(flagBudgetIncome, flagBudgetRule, custom)
	if err != nil {
		return err
	}
	printBudget(b, currencySymbol(cfg))
	return nil
}

func runBudgetShow(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	b, ok, err := budget.NewPlanner(s).Load()
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("  No budget yet. Create one with: finsight budget create --income <amount>")
		return nil
	}
	printBudget(b, currencySymbol(cfg))
	return nil
}

func printBudget(b budget.Budget, sym string) {
	if !flagQuiet {
		fmt.Println(cli.RenderTitle(fmt.Sprintf("Budget · %s rule", b.Rule)))
	}
	fmt.Println(cli.RenderTable(cli.Table{
		Rows: [][]string{
			{"Income", cli.FormatCurrency(sym, b.Income)},
			{"Needs", cli.FormatCurrency(sym, b.Needs)},
			{"Wants", cli.FormatCurrency(sym, b.Wants)},
			{"Savings", cli.FormatCurrency(sym, b.Savings)},
		},
	}))

	table := cli.Table{Title: "Category Allocations", Headers: []string{"Category", "Amount"}}
	for _, w := range budget.CategoryWeights {
		table.Rows = append(table.Rows, []string{
			budget.FormatCategory(w.Category),
			cli.FormatCurrency(sym, b.Categories[w.Category]),
		})
	}
	fmt.Println(cli.RenderTable(table))
}

func runBudgetAnalyze(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer s.Close()
	sym := currencySymbol(cfg)

	b, ok, err := budget.NewPlanner(s).Load()
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("  No budget yet. Create one with: finsight budget create --income <amount>")
		return nil
	}

	tracker, err := spend.NewTracker(s, spend.WithExtraKeywords(spend.DefaultCategories, cfg.Categories.Keywords))
	if err != nil {
		return err
	}
	actual := budgetActuals(tracker)

	a := budget.Analyze(b, actual)
	table := cli.Table{Headers: []string{"Category", "Budgeted", "Actual", "Diff", "Status"}}
	appendStatus := func(items []budget.CategoryStatus, status string) {
		for _, it := range items {
			table.Rows = append(table.Rows, []string{
				budget.FormatCategory(it.Category),
				cli.FormatCurrency(sym, it.Budgeted),
				cli.FormatCurrency(sym, it.Actual),
				cli.FormatCurrency(sym, it.Diff),
				status,
			})
		}
	}
	appendStatus(a.OverBudget, "over")
	appendStatus(a.UnderBudget, "under")
	appendStatus(a.OnTrack, "on track")
	fmt.Println(cli.RenderTable(table))

	for _, w := range budget.CategoryWeights {
		budgeted := b.Categories[w.Category]
		if budgeted <= 0 {
			continue
		}
		fmt.Printf("  %-16s %s\n", budget.FormatCategory(w.Category),
			cli.RenderProgressBar(int(actual[w.Category]), int(budgeted), 20))
	}

	for _, r := range budget.Recommendations(a, b) {
		fmt.Printf("  [%s] %s\n        %s\n", r.Priority, r.Message, r.Action)
	}
	return nil
}

// budgetActuals maps this month's tracked spending onto budget
// category keys.
func budgetActuals(tracker *spend.Tracker) map[string]float64 {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	totals := tracker.CategoryTotals(tracker.InRange(start, now))

	// ledger categories → budget categories
	mapping := map[string]string{
		"Food & Dining":     "groceries",
		"Transportation":    "transportation",
		"Entertainment":     "entertainment",
		"Shopping":          "shopping",
		"Bills & Utilities": "utilities",
		"Healthcare":        "healthcare",
	}
	actual := make(map[string]float64)
	for ledgerCat, budgetCat := range mapping {
		actual[budgetCat] += totals[ledgerCat]
	}
	return actual
}

func runBudgetGoals(_ *cobra.Command, args []string) error {
	cfg := loadConfig()
	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer s.Close()
	sym := currencySymbol(cfg)

	b, ok, err := budget.NewPlanner(s).Load()
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("  No budget yet. Create one with: finsight budget create --income <amount>")
		return nil
	}

	var goals []budget.Goal
	for _, arg := range args {
		name, amountStr, found := strings.Cut(arg, "=")
		if !found || name == "" {
			return fmt.Errorf("bad goal %q, want name=amount", arg)
		}
		amount, err := strconv.ParseFloat(amountStr, 64)
		if err != nil || amount <= 0 {
			return fmt.Errorf("bad goal amount in %q", arg)
		}
		goals = append(goals, budget.NewGoal(name, amount))
	}
	sort.Slice(goals, func(i, j int) bool { return goals[i].TargetAmount > goals[j].TargetAmount })

	plans := budget.GoalContributions(b, goals, time.Now())
	if plans == nil {
		fmt.Println("  No goals allocation available in the budget.")
		return nil
	}
	table := cli.Table{Headers: []string{"Goal", "Target", "Monthly", "Months", "Done by"}}
	for _, p := range plans {
		table.Rows = append(table.Rows, []string{
			p.Goal.Name,
			cli.FormatCurrency(sym, p.Goal.TargetAmount),
			cli.FormatCurrency(sym, p.MonthlyContribution),
			cli.FormatMonths(p.MonthsNeeded),
			p.CompletionDate.Format("Jan 2006"),
		})
	}
	fmt.Println(cli.RenderTable(table))
	return nil
}
