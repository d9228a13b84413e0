package interest

import (
	"math"

	"github.com/iwvelando/compound-interest/pkg/mathutil"
)

// Side is one column of a taxed versus exempt comparison.
type Side struct {
	Rate        float64 `json:"rate"`
	GrossProfit float64 `json:"grossProfit"`
	Tax         float64 `json:"tax"`
	NetProfit   float64 `json:"netProfit"`
}

// Comparison contrasts the taxed investment with an exempt one earning the
// equivalent rate.
type Comparison struct {
	Principal           float64 `json:"principal"`
	MonthlyContribution float64 `json:"monthlyContribution"`
	TotalInvested       float64 `json:"totalInvested"`
	TaxRate             float64 `json:"taxRate"`
	Taxed               Side    `json:"taxed"`
	Exempt              Side    `json:"exempt"`
}

// Compare builds the comparison for a result. It returns nil when the result
// has no equivalent rate.
//
// Without contributions the exempt profit compounds the principal yearly at
// the equivalent rate. With contributions it is reported as the taxed net
// profit, which is what the equivalent rate was solved for.
func Compare(in Input, res Result) *Comparison {
	if !res.Defined || res.EquivalentAnnualRate == nil {
		return nil
	}
	equivalent := *res.EquivalentAnnualRate

	c := &Comparison{
		Principal:           in.Principal,
		MonthlyContribution: in.MonthlyContribution,
		TotalInvested:       res.TotalInvested,
		TaxRate:             res.TaxRate,
		Taxed: Side{
			Rate:        in.AnnualRate,
			GrossProfit: res.GrossProfit,
			Tax:         res.Tax,
			NetProfit:   res.NetProfit,
		},
		Exempt: Side{Rate: equivalent},
	}

	if in.HasContribution() {
		c.Exempt.GrossProfit = res.NetProfit
	} else {
		c.Exempt.GrossProfit = in.Principal*math.Pow(1+mathutil.PercentToDecimal(equivalent), in.Years) - in.Principal
	}
	c.Exempt.NetProfit = c.Exempt.GrossProfit
	return c
}
