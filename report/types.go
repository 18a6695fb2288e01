package report

import "time"

// Stats summarizes one solve's outcome: the observed costs plus their
// information-theoretic lower bounds (what each agent would need if it
// had the grid to itself), per spec.md's sum-of-costs/sum-of-loss
// definitions.
type Stats struct {
	Agents   int
	Solved   bool
	Seed     int64
	CompTime time.Duration

	SumOfCosts   int
	SumOfCostsLB int
	Makespan     int
	MakespanLB   int
	SumOfLoss    int
	SumOfLossLB  int
}

// ratio computes ceil(value/lb*100)/100, the upper-bound-on-optimality
// ratio the reference implementation's stats report alongside each cost.
func ratio(value, lb int) float64 {
	if lb == 0 {
		if value == 0 {
			return 1.0
		}
		return 0
	}
	pct := (value * 100) / lb
	if (value*100)%lb != 0 {
		pct++
	}
	return float64(pct) / 100.0
}

// SumOfCostsRatio is the upper bound on how far SumOfCosts may be from
// optimal.
func (s Stats) SumOfCostsRatio() float64 { return ratio(s.SumOfCosts, s.SumOfCostsLB) }

// MakespanRatio is the upper bound on how far Makespan may be from optimal.
func (s Stats) MakespanRatio() float64 { return ratio(s.Makespan, s.MakespanLB) }
