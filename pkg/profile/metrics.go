package profile

import (
	"fmt"
	"math"
	"strconv"
)

// Liquidation risk levels.
const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// MetricsFromPositions computes portfolio metrics locally from a set of
// positions, for use when the backend's precomputed metrics are stale or
// unavailable. Only active positions contribute.
func MetricsFromPositions(positions []Position) PortfolioMetrics {
	active := make([]Position, 0, len(positions))
	for _, p := range positions {
		if p.Status == "active" {
			active = append(active, p)
		}
	}

	var totalLent, totalBorrowed, totalEarned, totalPaid float64
	for _, p := range active {
		amount := parseAmount(p.Amount)
		interest := parseAmount(p.AccruedInterest)
		if p.Type == "lending" {
			totalLent += amount
			totalEarned += interest
		} else {
			totalBorrowed += amount
			totalPaid += interest
		}
	}

	totalValue := totalLent - totalBorrowed
	netProfit := totalEarned - totalPaid
	roi := 0.0
	if totalLent > 0 {
		roi = netProfit / totalLent * 100
	}

	return PortfolioMetrics{
		TotalValue:      fmt.Sprintf("%.2f", totalValue),
		TotalLent:       fmt.Sprintf("%.2f", totalLent),
		TotalBorrowed:   fmt.Sprintf("%.2f", totalBorrowed),
		TotalEarned:     fmt.Sprintf("%.2f", totalEarned),
		TotalPaid:       fmt.Sprintf("%.2f", totalPaid),
		NetProfit:       fmt.Sprintf("%.2f", netProfit),
		ROI:             math.Round(roi*100) / 100,
		HealthScore:     healthScore(active),
		LiquidationRisk: liquidationRisk(active),
	}
}

// healthScore starts at 100 and is reduced per borrowing position by its
// collateralization: under 1.5x costs 20 points, under 2.0x costs 10, and
// a position without collateral information costs 30.
func healthScore(positions []Position) float64 {
	if len(positions) == 0 {
		return 100
	}

	score := 100.0
	for _, p := range positions {
		if p.Type != "borrowing" {
			continue
		}
		if p.Collateral == nil {
			score -= 30
			continue
		}
		ratio := collateralRatio(p)
		switch {
		case ratio < 1.5:
			score -= 20
		case ratio < 2.0:
			score -= 10
		}
	}
	return math.Round(math.Max(0, math.Min(100, score)))
}

// liquidationRisk averages a per-position risk score over the borrowing
// positions: under 1.2x collateralization scores 3, under 1.5x scores 2,
// under 2.0x scores 1, and missing collateral scores 3.
func liquidationRisk(positions []Position) string {
	borrowing := 0
	riskScore := 0
	for _, p := range positions {
		if p.Type != "borrowing" {
			continue
		}
		borrowing++
		if p.Collateral == nil {
			riskScore += 3
			continue
		}
		ratio := collateralRatio(p)
		switch {
		case ratio < 1.2:
			riskScore += 3
		case ratio < 1.5:
			riskScore += 2
		case ratio < 2.0:
			riskScore += 1
		}
	}
	if borrowing == 0 {
		return RiskLow
	}

	avg := float64(riskScore) / float64(borrowing)
	switch {
	case avg >= 2.5:
		return RiskHigh
	case avg >= 1.5:
		return RiskMedium
	default:
		return RiskLow
	}
}

func collateralRatio(p Position) float64 {
	borrowed := parseAmount(p.Amount)
	if borrowed == 0 {
		return 0
	}
	return parseAmount(p.Collateral.Amount) / borrowed
}

func parseAmount(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
