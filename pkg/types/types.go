package types

import "time"

// Payload is an open-ended ledger transaction object. The wire contract with
// wallet adapters requires at minimum a TransactionType discriminator and an
// Account field; the remaining fields vary by transaction type. Payloads are
// produced by the builders and never mutated after construction.
type Payload map[string]any

// TransactionType returns the payload's type discriminator, or "" if absent.
func (p Payload) TransactionType() string {
	s, _ := p["TransactionType"].(string)
	return s
}

// Account returns the payload's source account, or "" if absent.
func (p Payload) Account() string {
	s, _ := p["Account"].(string)
	return s
}

// IssuedAmount is the three-field issued-currency amount form. Native-unit
// amounts are plain decimal strings denominated in drops and do not use
// this type.
type IssuedAmount struct {
	Currency string `json:"currency"`
	Issuer   string `json:"issuer"`
	Value    string `json:"value"`
}

// Memo is a single transaction memo. Fields carry uppercase hex.
type Memo struct {
	MemoType   string `json:"MemoType,omitempty"`
	MemoData   string `json:"MemoData,omitempty"`
	MemoFormat string `json:"MemoFormat,omitempty"`
}

// MemoWrapper matches the ledger's nested memo encoding.
type MemoWrapper struct {
	Memo Memo `json:"Memo"`
}

// AccountData is the on-ledger account root entry.
type AccountData struct {
	Account           string `json:"Account"`
	Balance           string `json:"Balance"` // drops
	Flags             uint32 `json:"Flags"`
	LedgerEntryType   string `json:"LedgerEntryType"`
	OwnerCount        uint32 `json:"OwnerCount"`
	PreviousTxnID     string `json:"PreviousTxnID"`
	PreviousTxnLgrSeq uint32 `json:"PreviousTxnLgrSeq"`
	Sequence          uint32 `json:"Sequence"`
	Index             string `json:"index"`
}

// AccountInfo is the account_info response shape.
type AccountInfo struct {
	AccountData        AccountData `json:"account_data"`
	LedgerCurrentIndex uint32      `json:"ledger_current_index"`
	Validated          bool        `json:"validated"`
}

// TrustLine is a single entry from an account_lines response.
type TrustLine struct {
	Account        string `json:"account"`
	Balance        string `json:"balance"`
	Currency       string `json:"currency"`
	Limit          string `json:"limit"`
	LimitPeer      string `json:"limit_peer"`
	QualityIn      uint32 `json:"quality_in"`
	QualityOut     uint32 `json:"quality_out"`
	NoRipple       bool   `json:"no_ripple,omitempty"`
	NoRipplePeer   bool   `json:"no_ripple_peer,omitempty"`
	Authorized     bool   `json:"authorized,omitempty"`
	PeerAuthorized bool   `json:"peer_authorized,omitempty"`
	Freeze         bool   `json:"freeze,omitempty"`
	FreezePeer     bool   `json:"freeze_peer,omitempty"`
}

// AccountLines is the account_lines response shape.
type AccountLines struct {
	Account            string      `json:"account"`
	Lines              []TrustLine `json:"lines"`
	LedgerCurrentIndex uint32      `json:"ledger_current_index"`
	Validated          bool        `json:"validated"`
}

// TransactionResult is the outcome of a submitted or looked-up transaction.
type TransactionResult struct {
	Hash        string         `json:"hash"`
	LedgerIndex uint32         `json:"ledger_index"`
	Meta        map[string]any `json:"meta"`
	Validated   bool           `json:"validated"`
	Date        int64          `json:"date,omitempty"` // Unix seconds
}

// Lending offer lifecycle states.
const (
	OfferActive    = "active"
	OfferFilled    = "filled"
	OfferCancelled = "cancelled"
	OfferExpired   = "expired"
)

// LendingOffer is a published offer to lend an asset.
type LendingOffer struct {
	ID                 string    `json:"id"`
	Lender             string    `json:"lender"`
	Asset              string    `json:"asset"`
	Amount             string    `json:"amount"`
	InterestRate       float64   `json:"interestRate"`
	DurationDays       int       `json:"duration"`
	CollateralRequired bool      `json:"collateralRequired"`
	CollateralRatio    float64   `json:"collateralRatio,omitempty"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"createdAt"`
	ExpiresAt          time.Time `json:"expiresAt"`
}

// Borrowing request lifecycle states.
const (
	RequestPending    = "pending"
	RequestActive     = "active"
	RequestRepaid     = "repaid"
	RequestLiquidated = "liquidated"
)

// BorrowingRequest is a request to borrow an asset against collateral.
type BorrowingRequest struct {
	ID               string    `json:"id"`
	Borrower         string    `json:"borrower"`
	Asset            string    `json:"asset"`
	Amount           string    `json:"amount"`
	CollateralAsset  string    `json:"collateralAsset"`
	CollateralAmount string    `json:"collateralAmount"`
	InterestRate     float64   `json:"interestRate"`
	DurationDays     int       `json:"duration"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
	DueDate          time.Time `json:"dueDate"`
}

// MarketStats is an aggregate snapshot of pool activity.
type MarketStats struct {
	TotalLiquidity string  `json:"totalLiquidity"`
	TotalBorrowed  string  `json:"totalBorrowed"`
	AverageAPY     float64 `json:"averageAPY"`
	ActiveOffers   int     `json:"activeOffers"`
}
