package txbuilder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xoceanhq/xrplend/pkg/constants"
)

const dropsDigits = 6 // DropsPerXRP == 10^6

// XRPToDrops converts a non-negative decimal XRP amount to its drops
// representation. The conversion is string arithmetic, so "0.1" converts
// exactly; amounts with more than six fractional digits are rejected
// because the ledger cannot represent them.
func XRPToDrops(xrp string) (string, error) {
	whole, frac, err := splitDecimal(xrp)
	if err != nil {
		return "", err
	}
	if len(frac) > dropsDigits {
		return "", fmt.Errorf("amount %s has more than %d decimal places", xrp, dropsDigits)
	}
	frac += strings.Repeat("0", dropsDigits-len(frac))

	wholeN, err := strconv.ParseUint(whole, 10, 64)
	if err != nil {
		return "", fmt.Errorf("invalid amount %q: %w", xrp, err)
	}
	fracN, err := strconv.ParseUint(frac, 10, 64)
	if err != nil {
		return "", fmt.Errorf("invalid amount %q: %w", xrp, err)
	}

	return strconv.FormatUint(wholeN*constants.DropsPerXRP+fracN, 10), nil
}

// DropsToXRP converts a drops string back to a decimal XRP amount,
// trimming trailing fractional zeros ("1500000" -> "1.5").
func DropsToXRP(drops string) (string, error) {
	n, err := strconv.ParseUint(drops, 10, 64)
	if err != nil {
		return "", fmt.Errorf("invalid drops %q: %w", drops, err)
	}

	whole := n / constants.DropsPerXRP
	frac := n % constants.DropsPerXRP
	if frac == 0 {
		return strconv.FormatUint(whole, 10), nil
	}

	fracStr := fmt.Sprintf("%06d", frac)
	fracStr = strings.TrimRight(fracStr, "0")
	return fmt.Sprintf("%d.%s", whole, fracStr), nil
}

// splitDecimal splits a non-negative decimal string into whole and
// fractional digit runs, normalizing empty parts ("." is invalid, ".5"
// and "5." are not accepted either: both sides must be digits when a
// point is present, except a missing fraction).
func splitDecimal(s string) (string, string, error) {
	if s == "" {
		return "", "", fmt.Errorf("empty amount")
	}
	whole, frac, found := strings.Cut(s, ".")
	if whole == "" {
		return "", "", fmt.Errorf("invalid amount %q", s)
	}
	if found && frac == "" {
		return "", "", fmt.Errorf("invalid amount %q", s)
	}
	return whole, frac, nil
}
