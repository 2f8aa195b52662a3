package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func lendingPos(amount, interest string) Position {
	return Position{Type: "lending", Status: "active", Amount: amount, AccruedInterest: interest}
}

func borrowingPos(amount, interest string, collateral *PositionCollateral) Position {
	return Position{Type: "borrowing", Status: "active", Amount: amount, AccruedInterest: interest, Collateral: collateral}
}

func TestMetricsEmptyPortfolio(t *testing.T) {
	m := MetricsFromPositions(nil)

	assert.Equal(t, "0.00", m.TotalValue)
	assert.Equal(t, "0.00", m.TotalLent)
	assert.Equal(t, "0.00", m.TotalBorrowed)
	assert.Equal(t, 0.0, m.ROI)
	assert.Equal(t, 100.0, m.HealthScore)
	assert.Equal(t, RiskLow, m.LiquidationRisk)
}

func TestMetricsAggregation(t *testing.T) {
	positions := []Position{
		lendingPos("1000", "25.50"),
		lendingPos("500", "10"),
		borrowingPos("300", "8", &PositionCollateral{Asset: "XRP", Amount: "900"}),
	}
	m := MetricsFromPositions(positions)

	assert.Equal(t, "1500.00", m.TotalLent)
	assert.Equal(t, "300.00", m.TotalBorrowed)
	assert.Equal(t, "1200.00", m.TotalValue)
	assert.Equal(t, "35.50", m.TotalEarned)
	assert.Equal(t, "8.00", m.TotalPaid)
	assert.Equal(t, "27.50", m.NetProfit)
	// 27.50 / 1500 * 100, rounded to two decimals
	assert.Equal(t, 1.83, m.ROI)
}

func TestMetricsIgnoresInactivePositions(t *testing.T) {
	positions := []Position{
		lendingPos("1000", "25"),
		{Type: "lending", Status: "completed", Amount: "9999", AccruedInterest: "100"},
		{Type: "borrowing", Status: "liquidated", Amount: "9999"},
	}
	m := MetricsFromPositions(positions)

	assert.Equal(t, "1000.00", m.TotalLent)
	assert.Equal(t, "0.00", m.TotalBorrowed)
}

func TestHealthScore(t *testing.T) {
	tests := []struct {
		name      string
		positions []Position
		want      float64
	}{
		{
			name:      "no positions",
			positions: nil,
			want:      100,
		},
		{
			name:      "lending only",
			positions: []Position{lendingPos("1000", "0")},
			want:      100,
		},
		{
			name:      "well collateralized",
			positions: []Position{borrowingPos("100", "0", &PositionCollateral{Amount: "250"})},
			want:      100,
		},
		{
			name:      "thin collateral",
			positions: []Position{borrowingPos("100", "0", &PositionCollateral{Amount: "140"})},
			want:      80,
		},
		{
			name:      "moderate collateral",
			positions: []Position{borrowingPos("100", "0", &PositionCollateral{Amount: "180"})},
			want:      90,
		},
		{
			name:      "missing collateral",
			positions: []Position{borrowingPos("100", "0", nil)},
			want:      70,
		},
		{
			name: "floor at zero",
			positions: []Position{
				borrowingPos("100", "0", nil),
				borrowingPos("100", "0", nil),
				borrowingPos("100", "0", nil),
				borrowingPos("100", "0", nil),
			},
			want: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := MetricsFromPositions(tt.positions)
			assert.Equal(t, tt.want, m.HealthScore)
		})
	}
}

func TestLiquidationRisk(t *testing.T) {
	tests := []struct {
		name      string
		positions []Position
		want      string
	}{
		{
			name:      "no borrowing",
			positions: []Position{lendingPos("1000", "0")},
			want:      RiskLow,
		},
		{
			name:      "healthy ratio",
			positions: []Position{borrowingPos("100", "0", &PositionCollateral{Amount: "250"})},
			want:      RiskLow,
		},
		{
			name:      "near liquidation",
			positions: []Position{borrowingPos("100", "0", &PositionCollateral{Amount: "110"})},
			want:      RiskHigh,
		},
		{
			name:      "missing collateral",
			positions: []Position{borrowingPos("100", "0", nil)},
			want:      RiskHigh,
		},
		{
			name:      "moderate ratio",
			positions: []Position{borrowingPos("100", "0", &PositionCollateral{Amount: "140"})},
			want:      RiskMedium,
		},
		{
			name: "mixed averages out",
			positions: []Position{
				borrowingPos("100", "0", &PositionCollateral{Amount: "110"}),
				borrowingPos("100", "0", &PositionCollateral{Amount: "300"}),
			},
			want: RiskMedium,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := MetricsFromPositions(tt.positions)
			assert.Equal(t, tt.want, m.LiquidationRisk)
		})
	}
}
