package txbuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXRPToDrops(t *testing.T) {
	tests := []struct {
		xrp  string
		want string
	}{
		{"0", "0"},
		{"1", "1000000"},
		{"1.5", "1500000"},
		{"0.1", "100000"},
		{"0.000001", "1"},
		{"100", "100000000"},
		{"12.345678", "12345678"},
		{"0.000000", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.xrp, func(t *testing.T) {
			got, err := XRPToDrops(tt.xrp)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestXRPToDropsRejectsInvalid(t *testing.T) {
	for _, xrp := range []string{
		"",
		".",
		".5",
		"5.",
		"abc",
		"1.2.3",
		"0.0000001", // seventh fractional digit
		"-1",
	} {
		t.Run(xrp, func(t *testing.T) {
			_, err := XRPToDrops(xrp)
			assert.Error(t, err)
		})
	}
}

func TestDropsToXRP(t *testing.T) {
	tests := []struct {
		drops string
		want  string
	}{
		{"0", "0"},
		{"1", "0.000001"},
		{"1000000", "1"},
		{"1500000", "1.5"},
		{"12345678", "12.345678"},
		{"100000", "0.1"},
	}
	for _, tt := range tests {
		t.Run(tt.drops, func(t *testing.T) {
			got, err := DropsToXRP(tt.drops)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDropsToXRPRejectsInvalid(t *testing.T) {
	for _, drops := range []string{"", "1.5", "abc", "-1"} {
		_, err := DropsToXRP(drops)
		assert.Error(t, err, "drops %q", drops)
	}
}

func TestDropsRoundTrip(t *testing.T) {
	for _, xrp := range []string{"1", "1.5", "0.000001", "42.424242"} {
		drops, err := XRPToDrops(xrp)
		require.NoError(t, err)
		back, err := DropsToXRP(drops)
		require.NoError(t, err)
		assert.Equal(t, xrp, back)
	}
}
