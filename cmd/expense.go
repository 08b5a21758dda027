package cmd

import (
	"fmt"
	"os"
	"time"

	"finsight/internal/cli"
	"finsight/internal/config"
	"finsight/internal/spend"
	"finsight/internal/store"
	"finsight/internal/validate"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var expenseCmd = &cobra.Command{
	Use:   "expense",
	Short: "Track and analyze expenses",
}

var (
	flagExpDesc   string
	flagExpAmount string
	flagExpDate   string
)

var expenseAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record an expense (interactive without flags)",
	RunE:  runExpenseAdd,
}

var expenseListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded expenses",
	RunE:  runExpenseList,
}

var expenseInsightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Spending insights over the full ledger",
	RunE:  runExpenseInsights,
}

var expenseSubsCmd = &cobra.Command{
	Use:   "subscriptions",
	Short: "Detected recurring subscriptions",
	RunE:  runExpenseSubs,
}

var expenseReportCmd = &cobra.Command{
	Use:   "report",
	Short: "Weekly spending report",
	RunE:  runExpenseReport,
}

var expenseImportCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Import expenses from a CSV file",
	Args:  cobra.ExactArgs(1),
	RunE:  runExpenseImport,
}

var expenseExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the ledger as CSV to stdout",
	RunE:  runExpenseExport,
}

var expenseClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded expenses",
	RunE:  runExpenseClear,
}

func init() {
	expenseAddCmd.Flags().StringVar(&flagExpDesc, "description", "", "What the money went to")
	expenseAddCmd.Flags().StringVarP(&flagExpAmount, "amount", "a", "", "Amount spent")
	expenseAddCmd.Flags().StringVar(&flagExpDate, "date", "", "Date (YYYY-MM-DD, defaults to today)")

	expenseCmd.AddCommand(expenseAddCmd, expenseListCmd, expenseInsightsCmd, expenseSubsCmd,
		expenseReportCmd, expenseImportCmd, expenseExportCmd, expenseClearCmd)
	rootCmd.AddCommand(expenseCmd)
}

func openTracker(cfg config.Config) (*spend.Tracker, *store.Store, error) {
	s, err := openStore(cfg)
	if err != nil {
		return nil, nil, err
	}
	table := spend.WithExtraKeywords(spend.DefaultCategories, cfg.Categories.Keywords)
	tracker, err := spend.NewTracker(s, table)
	if err != nil {
		s.Close()
		return nil, nil, err
	}
	return tracker, s, nil
}

func runExpenseAdd(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()

	if flagExpDesc == "" || flagExpAmount == "" {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Description").
					Placeholder("Starbucks coffee").
					Value(&flagExpDesc).
					Validate(func(s string) error {
						if s == "" {
							return fmt.Errorf("description is required")
						}
						return nil
					}),
				huh.NewInput().
					Title("Amount").
					Placeholder("9.99").
					Value(&flagExpAmount).
					Validate(func(s string) error {
						_, err := validate.Amount("amount", s)
						return err
					}),
				huh.NewInput().
					Title("Date (blank for today)").
					Placeholder("2026-08-31").
					Value(&flagExpDate),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
	}

	amount, err := validate.Amount("amount", flagExpAmount)
	if err != nil {
		return err
	}
	date := time.Now()
	if flagExpDate != "" {
		date, err = time.Parse("2006-01-02", flagExpDate)
		if err != nil {
			return fmt.Errorf("bad date %q, want YYYY-MM-DD", flagExpDate)
		}
	}

	tracker, s, err := openTracker(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	e, err := tracker.Add(flagExpDesc, amount, date)
	if err != nil {
		return err
	}
	fmt.Printf("  Recorded #%d %s %s → %s\n",
		e.ID, e.Description, cli.FormatMoney(currencySymbol(cfg), e.Amount), e.Category)
	return nil
}

func runExpenseList(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	tracker, s, err := openTracker(cfg)
	if err != nil {
		return err
	}
	defer s.Close()
	sym := currencySymbol(cfg)

	expenses := tracker.Expenses()
	if len(expenses) == 0 {
		fmt.Println("  No expenses recorded.")
		return nil
	}

	table := cli.Table{Headers: []string{"ID", "Date", "Description", "Category", "Amount"}}
	for _, e := range expenses {
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", e.ID),
			e.Date.Format("2006-01-02"),
			e.Description,
			e.Category,
			cli.FormatMoney(sym, e.Amount),
		})
	}
	fmt.Println(cli.RenderTable(table))
	return nil
}

func runExpenseInsights(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	tracker, s, err := openTracker(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	insights := tracker.Insights(time.Now())
	if len(insights) == 0 {
		fmt.Println("  Not enough data for insights yet.")
		return nil
	}
	for _, in := range insights {
		title := in.Title
		if in.Type == spend.InsightWarning {
			title = cli.Warn(title)
		}
		fmt.Printf("  [%s] %s\n        %s\n", in.Type, title, in.Message)
	}
	return nil
}

func runExpenseSubs(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	tracker, s, err := openTracker(cfg)
	if err != nil {
		return err
	}
	defer s.Close()
	sym := currencySymbol(cfg)

	subs := tracker.DetectSubscriptions()
	if len(subs) == 0 {
		fmt.Println("  No recurring subscriptions detected.")
		return nil
	}
	table := cli.Table{Headers: []string{"Description", "Category", "Amount", "Seen"}}
	var total float64
	for _, sub := range subs {
		total += sub.Amount
		table.Rows = append(table.Rows, []string{
			sub.Description,
			sub.Category,
			cli.FormatMoney(sym, sub.Amount),
			fmt.Sprintf("%dx", sub.Frequency),
		})
	}
	fmt.Println(cli.RenderTable(table))
	fmt.Printf("  Estimated monthly total: %s\n", cli.FormatMoney(sym, total))
	return nil
}

func runExpenseReport(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	tracker, s, err := openTracker(cfg)
	if err != nil {
		return err
	}
	defer s.Close()
	sym := currencySymbol(cfg)

	r := tracker.WeeklyReport(time.Now())
	if !flagQuiet {
		fmt.Println(cli.RenderTitle("Last 7 Days"))
	}
	rows := [][]string{
		{"Total spent", cli.FormatMoney(sym, r.Total)},
		{"Daily average", cli.FormatMoney(sym, r.DailyAverage)},
		{"Expenses", fmt.Sprintf("%d", r.Count)},
	}
	if r.TopDay != "" {
		rows = append(rows, []string{"Top day", fmt.Sprintf("%s (%s)", r.TopDay, cli.FormatMoney(sym, r.TopDayAmount))})
	}
	fmt.Println(cli.RenderTable(cli.Table{Rows: rows}))

	table := cli.Table{Title: "By Category", Headers: []string{"Category", "Amount"}}
	for _, c := range spend.DefaultCategories {
		if amt := r.Categories[c.Name]; amt > 0 {
			table.Rows = append(table.Rows, []string{c.Name, cli.FormatMoney(sym, amt)})
		}
	}
	if len(table.Rows) > 0 {
		fmt.Println(cli.RenderTable(table))
	}
	return nil
}

func runExpenseImport(_ *cobra.Command, args []string) error {
	cfg := loadConfig()
	tracker, s, err := openTracker(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	res, err := tracker.ImportCSVFile(args[0])
	if err != nil {
		return err
	}
	fmt.Printf("  Imported %d, skipped %d\n", res.Imported, res.Skipped)
	for _, e := range res.Errors {
		fmt.Printf("    %s\n", e)
	}
	return nil
}

func runExpenseExport(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	tracker, s, err := openTracker(cfg)
	if err != nil {
		return err
	}
	defer s.Close()
	return tracker.ExportCSV(os.Stdout)
}

func runExpenseClear(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	tracker, s, err := openTracker(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := tracker.Clear(); err != nil {
		return err
	}
	fmt.Println("  Expense ledger cleared.")
	return nil
}
