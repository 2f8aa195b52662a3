package market

import (
	"time"

	"github.com/xoceanhq/xrplend/pkg/constants"
	"github.com/xoceanhq/xrplend/pkg/types"
)

// Development fixtures. Timestamps are anchored to now so ages and
// expiries stay plausible regardless of when the process runs.

func baseOffers(now time.Time) []types.LendingOffer {
	return []types.LendingOffer{
		{
			ID:                 "1",
			Lender:             "rN7n7otQDd6FczFgLdSqtcsAUxDkw6fzRH",
			Asset:              "XRP",
			Amount:             "1000.000000",
			InterestRate:       8.5,
			DurationDays:       30,
			CollateralRequired: false,
			Status:             types.OfferActive,
			CreatedAt:          now.Add(-24 * time.Hour),
			ExpiresAt:          now.Add(7 * 24 * time.Hour),
		},
		{
			ID:                 "2",
			Lender:             "rDNvpJKvhWjKKKKKKKKKKKKKKKKKKKKKKK",
			Asset:              constants.RLUSDCurrency,
			Amount:             "500.00",
			InterestRate:       6.2,
			DurationDays:       60,
			CollateralRequired: true,
			CollateralRatio:    1.5,
			Status:             types.OfferActive,
			CreatedAt:          now.Add(-48 * time.Hour),
			ExpiresAt:          now.Add(14 * 24 * time.Hour),
		},
	}
}

func baseRequests(now time.Time) []types.BorrowingRequest {
	return []types.BorrowingRequest{
		{
			ID:               "1",
			Borrower:         "rGemWalletAddressExampleXXXXXXXXXXXXXX",
			Asset:            "XRP",
			Amount:           "500.000000",
			CollateralAsset:  constants.RLUSDCurrency,
			CollateralAmount: "300.00",
			InterestRate:     9.0,
			DurationDays:     45,
			Status:           types.RequestActive,
			CreatedAt:        now.Add(-72 * time.Hour),
			DueDate:          now.Add(42 * 24 * time.Hour),
		},
	}
}
