// Package market exposes the lending market surface: published offers,
// borrowing requests, asset prices, and aggregate pool statistics. Reads
// are served from randomized development fixtures; offer and request
// creation shapes real ledger payloads and submits them through the
// ledger facade.
package market

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/xoceanhq/xrplend/pkg/config"
	"github.com/xoceanhq/xrplend/pkg/constants"
	"github.com/xoceanhq/xrplend/pkg/ledger"
	"github.com/xoceanhq/xrplend/pkg/types"
)

// Service provides market data and offer/request creation for one pool.
type Service struct {
	ledger   *ledger.Service
	settings config.Settings
	rng      *rand.Rand
	now      func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithRandSeed makes the fixture jitter deterministic.
func WithRandSeed(seed int64) Option {
	return func(s *Service) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// New creates a market service over the given ledger facade.
func New(ledgerSvc *ledger.Service, settings config.Settings, opts ...Option) *Service {
	s := &Service{
		ledger:   ledgerSvc,
		settings: settings,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LendingOffers returns the active lending offers, optionally filtered by
// asset. Amounts and rates carry development jitter.
func (s *Service) LendingOffers(ctx context.Context, asset string) ([]types.LendingOffer, error) {
	offers := make([]types.LendingOffer, 0)
	for _, offer := range baseOffers(s.now()) {
		if asset != "" && offer.Asset != asset {
			continue
		}
		offer.Amount = s.jitterAmount(offer.Amount, offer.Asset)
		offer.InterestRate += (s.rng.Float64() - 0.5) * 2
		offers = append(offers, offer)
	}
	return offers, nil
}

// BorrowingRequests returns the open borrowing requests, optionally
// filtered by asset.
func (s *Service) BorrowingRequests(ctx context.Context, asset string) ([]types.BorrowingRequest, error) {
	requests := make([]types.BorrowingRequest, 0)
	for _, req := range baseRequests(s.now()) {
		if asset != "" && req.Asset != asset {
			continue
		}
		requests = append(requests, req)
	}
	return requests, nil
}

// OfferParams are the caller-supplied fields of a new lending offer.
type OfferParams struct {
	Lender             string
	Asset              string
	Amount             string
	InterestRate       float64
	DurationDays       int
	CollateralRequired bool
	CollateralRatio    float64
}

// CreateLendingOffer publishes a lending offer on the ledger and returns
// the created record together with the submission hash.
func (s *Service) CreateLendingOffer(ctx context.Context, p OfferParams) (*types.LendingOffer, string, error) {
	memoData, err := hexJSON(map[string]any{
		"asset":              p.Asset,
		"interestRate":       p.InterestRate,
		"duration":           p.DurationDays,
		"collateralRequired": p.CollateralRequired,
		"collateralRatio":    p.CollateralRatio,
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to encode offer memo: %w", err)
	}

	tx := types.Payload{
		"TransactionType": "OfferCreate",
		"Account":         p.Lender,
		"TakerGets":       p.Amount,
		"TakerPays": types.IssuedAmount{
			Currency: s.settings.Currency,
			Issuer:   s.settings.Issuer,
			Value:    p.Amount,
		},
		"Memos": []types.MemoWrapper{
			{Memo: types.Memo{
				MemoType: hexString(constants.MemoTypeLendingOffer),
				MemoData: memoData,
			}},
		},
	}

	result, err := s.ledger.Submit(ctx, tx)
	if err != nil {
		return nil, "", err
	}

	now := s.now()
	offer := &types.LendingOffer{
		ID:                 uuid.NewString(),
		Lender:             p.Lender,
		Asset:              p.Asset,
		Amount:             p.Amount,
		InterestRate:       p.InterestRate,
		DurationDays:       p.DurationDays,
		CollateralRequired: p.CollateralRequired,
		CollateralRatio:    p.CollateralRatio,
		Status:             types.OfferActive,
		CreatedAt:          now,
		ExpiresAt:          now.Add(time.Duration(p.DurationDays) * 24 * time.Hour),
	}
	return offer, result.Hash, nil
}

// RequestParams are the caller-supplied fields of a new borrowing request.
type RequestParams struct {
	Borrower         string
	Asset            string
	Amount           string
	CollateralAsset  string
	CollateralAmount string
	InterestRate     float64
	DurationDays     int
}

// CreateBorrowingRequest publishes a borrowing request by moving the
// collateral to the pool with request metadata in the memo. It returns
// the created record together with the submission hash.
func (s *Service) CreateBorrowingRequest(ctx context.Context, p RequestParams) (*types.BorrowingRequest, string, error) {
	memoData, err := hexJSON(map[string]any{
		"asset":        p.Asset,
		"amount":       p.Amount,
		"interestRate": p.InterestRate,
		"duration":     p.DurationDays,
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to encode request memo: %w", err)
	}

	var amount any = p.CollateralAmount
	if p.CollateralAsset != "XRP" {
		amount = types.IssuedAmount{
			Currency: p.CollateralAsset,
			Issuer:   s.settings.Issuer,
			Value:    p.CollateralAmount,
		}
	}

	tx := types.Payload{
		"TransactionType": "Payment",
		"Account":         p.Borrower,
		"Destination":     s.settings.PoolAddress,
		"Amount":          amount,
		"Memos": []types.MemoWrapper{
			{Memo: types.Memo{
				MemoType: hexString(constants.MemoTypeBorrowingRequest),
				MemoData: memoData,
			}},
		},
	}

	result, err := s.ledger.Submit(ctx, tx)
	if err != nil {
		return nil, "", err
	}

	now := s.now()
	req := &types.BorrowingRequest{
		ID:               uuid.NewString(),
		Borrower:         p.Borrower,
		Asset:            p.Asset,
		Amount:           p.Amount,
		CollateralAsset:  p.CollateralAsset,
		CollateralAmount: p.CollateralAmount,
		InterestRate:     p.InterestRate,
		DurationDays:     p.DurationDays,
		Status:           types.RequestPending,
		CreatedAt:        now,
		DueDate:          now.Add(time.Duration(p.DurationDays) * 24 * time.Hour),
	}
	return req, result.Hash, nil
}

// AssetPrice returns a development price quote for an asset in USD.
func (s *Service) AssetPrice(ctx context.Context, asset string) (float64, error) {
	base, ok := basePrices[asset]
	if !ok {
		base = 1.00
	}
	return base * (0.95 + s.rng.Float64()*0.1), nil
}

// MarketStats returns an aggregate snapshot of pool activity.
func (s *Service) MarketStats(ctx context.Context) (*types.MarketStats, error) {
	return &types.MarketStats{
		TotalLiquidity: fmt.Sprintf("%.2f", 1_000_000+s.rng.Float64()*10_000_000),
		TotalBorrowed:  fmt.Sprintf("%.2f", 500_000+s.rng.Float64()*5_000_000),
		AverageAPY:     6.5 + s.rng.Float64()*4,
		ActiveOffers:   100 + s.rng.Intn(500),
	}, nil
}

func (s *Service) jitterAmount(amount, asset string) string {
	v, err := strconv.ParseFloat(amount, 64)
	if err != nil {
		return amount
	}
	precision := 2
	if asset == "XRP" {
		precision = 6
	}
	return strconv.FormatFloat(v*(0.8+s.rng.Float64()*0.4), 'f', precision, 64)
}

var basePrices = map[string]float64{
	"XRP":                   0.52,
	constants.RLUSDCurrency: 1.00,
}

// hexJSON encodes v as uppercase-hex JSON for memo data.
func hexJSON(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return strings.ToUpper(hex.EncodeToString(data)), nil
}

// hexString encodes s as an uppercase-hex memo field.
func hexString(s string) string {
	return strings.ToUpper(hex.EncodeToString([]byte(s)))
}
