package finance

import "math"

// Regime selects which Indian income tax path applies.
type Regime string

const (
	RegimeOld Regime = "old"
	RegimeNew Regime = "new"
)

// Bracket is one progressive tax band: income up to UpTo (cumulative,
// same currency unit as the income) is taxed at Rate within the band.
type Bracket struct {
	UpTo float64 // math.Inf(1) for the top band
	Rate float64 // decimal, e.g. 0.30
}

// slabsIN is the simplified Indian slab table used by both regimes.
// The new regime reuses it with deductions zeroed, mirroring the product
// behavior this calculator reproduces; real new-regime slabs differ.
var slabsIN = []Bracket{
	{UpTo: 250_000, Rate: 0},
	{UpTo: 500_000, Rate: 0.05},
	{UpTo: 1_000_000, Rate: 0.20},
	{UpTo: math.Inf(1), Rate: 0.30},
}

// CessRate is the health and education surcharge applied on computed tax.
const CessRate = 0.04

// TaxResult breaks down an Indian income tax calculation.
type TaxResult struct {
	TaxableIncome float64
	BaseTax       float64
	Cess          float64
	TotalTax      float64
	NetIncome     float64
}

// IncomeTax computes the simplified Indian income tax liability.
// The old regime subtracts deductions before the slab lookup; the new
// regime ignores them but keeps the same slab table.
func IncomeTax(annualIncome, deductions float64, regime Regime) TaxResult {
	taxable := annualIncome
	if regime == RegimeOld {
		taxable -= deductions
	}
	if taxable < 0 {
		taxable = 0
	}

	base := applyBrackets(taxable, slabsIN)
	cess := base * CessRate
	total := base + cess

	return TaxResult{
		TaxableIncome: taxable,
		BaseTax:       base,
		Cess:          cess,
		TotalTax:      total,
		NetIncome:     annualIncome - total,
	}
}

// applyBrackets taxes each band only on the income that falls inside it.
func applyBrackets(income float64, brackets []Bracket) float64 {
	var tax float64
	var prev float64
	for _, b := range brackets {
		if income <= prev {
			break
		}
		inBand := math.Min(income, b.UpTo) - prev
		tax += inBand * b.Rate
		prev = b.UpTo
	}
	return tax
}

// USBrackets2024 is the simplified 2024 single-filer federal table.
var USBrackets2024 = map[string][]Bracket{
	"single": {
		{UpTo: 11_000, Rate: 0.10},
		{UpTo: 44_725, Rate: 0.12},
		{UpTo: 95_375, Rate: 0.22},
		{UpTo: 182_100, Rate: 0.24},
		{UpTo: 231_250, Rate: 0.32},
		{UpTo: 578_125, Rate: 0.35},
		{UpTo: math.Inf(1), Rate: 0.37},
	},
}

// USTaxResult breaks down a US federal estimate.
type USTaxResult struct {
	TotalTax      float64
	EffectiveRate float64 // percent
	AfterTax      float64
}

// TaxBracketsUS estimates US federal tax from a progressive bracket table.
// Unknown filing statuses fall back to single. The bracket data, not the
// logic, is what differs from IncomeTax.
func TaxBracketsUS(income float64, filingStatus string) USTaxResult {
	brackets, ok := USBrackets2024[filingStatus]
	if !ok {
		brackets = USBrackets2024["single"]
	}

	tax := applyBrackets(income, brackets)
	var effective float64
	if income > 0 {
		effective = tax / income * 100
	}

	return USTaxResult{
		TotalTax:      tax,
		EffectiveRate: effective,
		AfterTax:      income - tax,
	}
}
