package ledger

// Pair is a cash/bank pair ready for display.
type Pair struct {
	Cash float64 `json:"cash"`
	Bank float64 `json:"bank"`
}

// PeriodStat is a period aggregate ready for display.
type PeriodStat struct {
	Total float64 `json:"total"`
	Cash  float64 `json:"cash"`
	Bank  float64 `json:"bank"`
}

// Balances holds the per-pool pairs plus the grand total.
type Balances struct {
	Total      Pair    `json:"total"`
	Saving     Pair    `json:"saving"`
	Support    Pair    `json:"support"`
	Investment Pair    `json:"investment"`
	Together   Pair    `json:"together"`
	GrandTotal float64 `json:"grand_total"`
}

// ChartSeries is the stacked-bar payload the dashboard chart consumes.
type ChartSeries struct {
	Labels   []string `json:"labels"`
	Datasets struct {
		Cash []float64 `json:"cash"`
		Bank []float64 `json:"bank"`
	} `json:"datasets"`
}

// Overview is the display-ready projection of a snapshot. Snapshot values
// are already in the display currency and are projected as-is; converting
// here again would double-convert.
type Overview struct {
	Balances    Balances    `json:"balances"`
	PeriodStats PeriodStats `json:"period_stats"`
	ChartData   ChartSeries `json:"chart_data"`
}

// PeriodStats groups the income and expense aggregates.
type PeriodStats struct {
	Income  PeriodStat `json:"income"`
	Expense PeriodStat `json:"expense"`
}

// Overview projects the snapshot into its display shape.
func (s Snapshot) Overview() Overview {
	o := Overview{
		Balances: Balances{
			Total:      toPair(s.Total),
			Saving:     toPair(s.Saving),
			Support:    toPair(s.Support),
			Investment: toPair(s.Investment),
			Together:   toPair(s.Together),
			GrandTotal: s.GrandTotal().InexactFloat64(),
		},
		PeriodStats: PeriodStats{
			Income:  toStat(s.PeriodIncome),
			Expense: toStat(s.PeriodExpense),
		},
	}

	o.ChartData.Labels = make([]string, len(s.Chart.Labels))
	o.ChartData.Datasets.Cash = make([]float64, len(s.Chart.Labels))
	o.ChartData.Datasets.Bank = make([]float64, len(s.Chart.Labels))
	for i, label := range s.Chart.Labels {
		o.ChartData.Labels[i] = string(label)
		o.ChartData.Datasets.Cash[i] = s.Chart.Cash[i].InexactFloat64()
		o.ChartData.Datasets.Bank[i] = s.Chart.Bank[i].InexactFloat64()
	}
	return o
}

func toPair(f FundBalance) Pair {
	return Pair{Cash: f.Cash.InexactFloat64(), Bank: f.Bank.InexactFloat64()}
}

func toStat(p PeriodTotal) PeriodStat {
	return PeriodStat{
		Total: p.Total().InexactFloat64(),
		Cash:  p.Cash.InexactFloat64(),
		Bank:  p.Bank.InexactFloat64(),
	}
}
