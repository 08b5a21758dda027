// Package calc binds the pure finance formulas to a small set of
// calculator kinds, each with a typed input schema, and renders their
// outcomes as presentation-ready results. The kind switch is exhaustive,
// so adding a calculator without wiring its math is a compile-time hole
// rather than a runtime lookup failure.
package calc

import (
	"fmt"

	"finsight/internal/format"
	"finsight/internal/finance"
	"finsight/internal/validate"
)

// Kind identifies one calculator.
type Kind string

const (
	KindLoanEMI    Kind = "loan-emi"
	KindSIP        Kind = "sip"
	KindFD         Kind = "fd"
	KindRetirement Kind = "retirement"
	KindIncomeTax  Kind = "income-tax"
	KindUSTax      Kind = "us-tax"
	KindAllocation Kind = "allocation"
)

// Field is a numeric input slot with its validation bounds.
type Field struct {
	Name    string
	Min     float64
	Max     float64
	Step    float64 // 0 means any value in range
	Default float64
}

// Choice is an enum input slot.
type Choice struct {
	Name    string
	Options []string
	Default string
}

// Schema describes the inputs one calculator accepts.
type Schema struct {
	Kind    Kind
	Title   string
	Fields  []Field
	Choices []Choice
}

// Schemas holds the input schema per calculator kind. Bounds follow the
// product's slider ranges.
var Schemas = map[Kind]Schema{
	KindLoanEMI: {
		Kind:  KindLoanEMI,
		Title: "Loan EMI Calculator",
		Fields: []Field{
			{Name: "amount", Min: 100_000, Max: 100_000_000, Default: 5_000_000},
			{Name: "rate", Min: 0, Max: 20, Step: 0.1, Default: 8.5},
			{Name: "years", Min: 1, Max: 30, Default: 20},
		},
	},
	KindSIP: {
		Kind:  KindSIP,
		Title: "SIP Calculator",
		Fields: []Field{
			{Name: "monthly", Min: 500, Max: 100_000, Default: 5000},
			{Name: "rate", Min: 0, Max: 30, Step: 0.5, Default: 12},
			{Name: "years", Min: 1, Max: 40, Default: 10},
		},
	},
	KindFD: {
		Kind:  KindFD,
		Title: "Fixed Deposit Calculator",
		Fields: []Field{
			{Name: "amount", Min: 1000, Max: 10_000_000, Default: 100_000},
			{Name: "rate", Min: 0, Max: 15, Step: 0.1, Default: 6.5},
			{Name: "years", Min: 1, Max: 10, Default: 5},
			{Name: "compounding", Min: 1, Max: 365, Default: finance.DefaultCompounding},
		},
	},
	KindRetirement: {
		Kind:  KindRetirement,
		Title: "Retirement Planning Calculator",
		Fields: []Field{
			{Name: "age", Min: 18, Max: 60, Default: 30},
			{Name: "retire_age", Min: 50, Max: 70, Default: 60},
			{Name: "expense", Min: 10_000, Max: 500_000, Default: 50_000},
			{Name: "inflation", Min: 0, Max: 15, Step: 0.5, Default: 6},
			{Name: "return", Min: 0, Max: 20, Step: 0.5, Default: 10},
		},
	},
	KindIncomeTax: {
		Kind:  KindIncomeTax,
		Title: "Income Tax Calculator",
		Fields: []Field{
			{Name: "income", Min: 0, Max: 100_000_000, Default: 1_000_000},
			{Name: "deductions", Min: 0, Max: 500_000, Default: 150_000},
		},
		Choices: []Choice{
			{Name: "regime", Options: []string{"old", "new"}, Default: "old"},
		},
	},
	KindUSTax: {
		Kind:  KindUSTax,
		Title: "US Federal Tax Estimator",
		Fields: []Field{
			{Name: "income", Min: 0, Max: 100_000_000, Default: 80_000},
		},
		Choices: []Choice{
			{Name: "status", Options: []string{"single"}, Default: "single"},
		},
	},
	KindAllocation: {
		Kind:  KindAllocation,
		Title: "Asset Allocation by Age",
		Fields: []Field{
			{Name: "age", Min: 18, Max: 100, Default: 30},
		},
		Choices: []Choice{
			{Name: "tolerance", Options: []string{"conservative", "moderate", "aggressive"}, Default: "moderate"},
		},
	},
}

// Inputs carries validated field values for one calculation.
type Inputs struct {
	Numbers map[string]float64
	Choices map[string]string
}

// Number returns the value for a field, falling back to the schema
// default when unset.
func (in Inputs) Number(s Schema, name string) float64 {
	if v, ok := in.Numbers[name]; ok {
		return v
	}
	for _, f := range s.Fields {
		if f.Name == name {
			return f.Default
		}
	}
	return 0
}

// Choice returns the enum value for a field, falling back to the schema
// default when unset.
func (in Inputs) Choice(s Schema, name string) string {
	if v, ok := in.Choices[name]; ok {
		return v
	}
	for _, c := range s.Choices {
		if c.Name == name {
			return c.Default
		}
	}
	return ""
}

// Calculator evaluates calculator kinds and formats their results with a
// configured currency symbol.
type Calculator struct {
	Currency string
}

// New returns a Calculator rendering amounts with the given symbol.
func New(currency string) *Calculator {
	return &Calculator{Currency: currency}
}

// Validate checks every provided input against the kind's schema.
func Validate(kind Kind, in Inputs) error {
	s, ok := Schemas[kind]
	if !ok {
		return fmt.Errorf("unknown calculator kind %q", kind)
	}
	for _, f := range s.Fields {
		v, present := in.Numbers[f.Name]
		if !present {
			continue
		}
		if err := validate.Range(f.Name, v, f.Min, f.Max); err != nil {
			return err
		}
		if err := validate.Step(f.Name, v, f.Min, f.Step); err != nil {
			return err
		}
	}
	for _, c := range s.Choices {
		v, present := in.Choices[c.Name]
		if !present {
			continue
		}
		if err := validate.OneOf(c.Name, v, c.Options...); err != nil {
			return err
		}
	}
	return nil
}

// Calculate validates inputs and runs the calculator for kind.
func (c *Calculator) Calculate(kind Kind, in Inputs) (Result, error) {
	if err := Validate(kind, in); err != nil {
		return Result{}, err
	}
	s := Schemas[kind]

	switch kind {
	case KindLoanEMI:
		return c.loanEMI(s, in), nil
	case KindSIP:
		return c.sip(s, in), nil
	case KindFD:
		return c.fd(s, in), nil
	case KindRetirement:
		return c.retirement(s, in), nil
	case KindIncomeTax:
		return c.incomeTax(s, in), nil
	case KindUSTax:
		return c.usTax(s, in), nil
	case KindAllocation:
		return c.allocation(s, in), nil
	}
	return Result{}, fmt.Errorf("unknown calculator kind %q", kind)
}

func (c *Calculator) money(v float64) string {
	return format.Currency(c.Currency, v)
}

func (c *Calculator) loanEMI(s Schema, in Inputs) Result {
	principal := in.Number(s, "amount")
	rate := in.Number(s, "rate")
	years := in.Number(s, "years")
	res := finance.LoanEMI(principal, rate, years)

	return Result{
		Cards: []Card{
			{Label: "Monthly EMI", Value: c.money(res.EMI), Sublabel: "Per Month"},
			{Label: "Total Interest", Value: c.money(res.TotalInterest), Sublabel: fmt.Sprintf("Over %.0f years", years)},
			{Label: "Total Payment", Value: c.money(res.TotalPayment), Sublabel: "Principal + Interest"},
		},
		Chart: &Chart{
			Type: ChartPie,
			Series: []Series{
				{Label: "Principal Amount", Value: principal},
				{Label: "Total Interest", Value: res.TotalInterest},
			},
		},
	}
}

func (c *Calculator) sip(s Schema, in Inputs) Result {
	monthly := in.Number(s, "monthly")
	rate := in.Number(s, "rate")
	years := in.Number(s, "years")
	res := finance.SIPFutureValue(monthly, rate, years)

	return Result{
		Cards: []Card{
			{Label: "Invested Amount", Value: c.money(res.Invested), Sublabel: fmt.Sprintf("%.0f months", years*12)},
			{Label: "Estimated Returns", Value: c.money(res.Returns), Sublabel: format.Percent(rate) + " p.a."},
			{Label: "Total Value", Value: c.money(res.FutureValue), Sublabel: "Maturity Amount"},
		},
		Chart: &Chart{
			Type: ChartDoughnut,
			Series: []Series{
				{Label: "Invested Amount", Value: res.Invested},
				{Label: "Estimated Returns", Value: res.Returns},
			},
		},
	}
}

func (c *Calculator) fd(s Schema, in Inputs) Result {
	principal := in.Number(s, "amount")
	rate := in.Number(s, "rate")
	years := in.Number(s, "years")
	k := int(in.Number(s, "compounding"))
	res := finance.FDMaturity(principal, rate, years, k)

	return Result{
		Cards: []Card{
			{Label: "Deposit Amount", Value: c.money(principal), Sublabel: "Principal"},
			{Label: "Interest Earned", Value: c.money(res.Interest), Sublabel: "@ " + format.Percent(rate)},
			{Label: "Maturity Amount", Value: c.money(res.Maturity), Sublabel: fmt.Sprintf("After %.0f years", years)},
		},
		List: []ListItem{
			{Label: "Principal Deposited", Value: c.money(principal)},
			{Label: "Total Interest", Value: c.money(res.Interest)},
			{Label: "Maturity Value", Value: c.money(res.Maturity)},
		},
	}
}

func (c *Calculator) retirement(s Schema, in Inputs) Result {
	plan := finance.RetirementCorpus(
		int(in.Number(s, "age")),
		int(in.Number(s, "retire_age")),
		in.Number(s, "expense"),
		in.Number(s, "inflation"),
		in.Number(s, "return"),
		finance.DefaultLifeExpectancy,
	)

	return Result{
		Cards: []Card{
			{Label: "Corpus Needed", Value: c.money(plan.CorpusNeeded), Sublabel: "At Retirement"},
			{Label: "Monthly SIP Required", Value: c.money(plan.MonthlySIP), Sublabel: fmt.Sprintf("For %d years", plan.YearsToRetirement)},
			{Label: "Future Monthly Expense", Value: c.money(plan.FutureMonthlyExpense), Sublabel: "At Retirement"},
		},
	}
}

func (c *Calculator) incomeTax(s Schema, in Inputs) Result {
	income := in.Number(s, "income")
	deductions := in.Number(s, "deductions")
	regime := finance.Regime(in.Choice(s, "regime"))
	res := finance.IncomeTax(income, deductions, regime)

	applied := deductions
	if regime != finance.RegimeOld {
		applied = 0
	}

	return Result{
		Cards: []Card{
			{Label: "Taxable Income", Value: c.money(res.TaxableIncome), Sublabel: "After Deductions"},
			{Label: "Tax Liability", Value: c.money(res.TotalTax), Sublabel: "Including Cess"},
			{Label: "Net Income", Value: c.money(res.NetIncome), Sublabel: "After Tax"},
		},
		List: []ListItem{
			{Label: "Gross Income", Value: c.money(income)},
			{Label: "Deductions", Value: c.money(applied)},
			{Label: "Taxable Income", Value: c.money(res.TaxableIncome)},
			{Label: "Income Tax", Value: c.money(res.BaseTax)},
			{Label: "Health & Education Cess (4%)", Value: c.money(res.Cess)},
			{Label: "Total Tax Payable", Value: c.money(res.TotalTax)},
		},
	}
}

func (c *Calculator) usTax(s Schema, in Inputs) Result {
	income := in.Number(s, "income")
	res := finance.TaxBracketsUS(income, in.Choice(s, "status"))

	return Result{
		Cards: []Card{
			{Label: "Estimated Tax", Value: c.money(res.TotalTax), Sublabel: "Federal"},
			{Label: "Effective Rate", Value: format.Percent(res.EffectiveRate), Sublabel: "Of Gross Income"},
			{Label: "After-Tax Income", Value: c.money(res.AfterTax), Sublabel: "Take Home"},
		},
	}
}

func (c *Calculator) allocation(s Schema, in Inputs) Result {
	age := int(in.Number(s, "age"))
	tolerance := finance.RiskTolerance(in.Choice(s, "tolerance"))
	alloc := finance.AllocationByAge(age, tolerance)

	return Result{
		Cards: []Card{
			{Label: "Stocks", Value: fmt.Sprintf("%d%%", alloc.Stocks), Sublabel: "Equity Allocation"},
			{Label: "Bonds", Value: fmt.Sprintf("%d%%", alloc.Bonds), Sublabel: "Fixed Income"},
		},
		List: []ListItem{
			{Label: "Large Cap", Value: fmt.Sprintf("%d%%", alloc.LargeCap)},
			{Label: "International", Value: fmt.Sprintf("%d%%", alloc.International)},
			{Label: "Small Cap", Value: fmt.Sprintf("%d%%", alloc.SmallCap)},
			{Label: "Bonds", Value: fmt.Sprintf("%d%%", alloc.Bonds)},
		},
		Chart: &Chart{
			Type: ChartBar,
			Series: []Series{
				{Label: "Stocks", Value: float64(alloc.Stocks)},
				{Label: "Bonds", Value: float64(alloc.Bonds)},
			},
		},
	}
}
