package profile

import "time"

// UserProfile is the backend's view of an account.
type UserProfile struct {
	Address            string           `json:"address"`
	Network            string           `json:"network"`
	JoinDate           time.Time        `json:"joinDate"`
	TotalTransactions  int              `json:"totalTransactions"`
	AccountHealthScore float64          `json:"accountHealthScore"`
	VerificationStatus string           `json:"verificationStatus"` // verified, pending, unverified
	Preferences        *UserPreferences `json:"preferences,omitempty"`
	Metadata           map[string]any   `json:"metadata,omitempty"`
}

// UserPreferences are the account's notification, privacy, and display
// settings.
type UserPreferences struct {
	Notifications NotificationPreferences `json:"notifications"`
	Privacy       PrivacyPreferences      `json:"privacy"`
	Display       DisplayPreferences      `json:"display"`
}

type NotificationPreferences struct {
	Email             bool `json:"email"`
	Push              bool `json:"push"`
	LiquidationAlerts bool `json:"liquidationAlerts"`
	PositionUpdates   bool `json:"positionUpdates"`
	MarketUpdates     bool `json:"marketUpdates"`
}

type PrivacyPreferences struct {
	ShowPortfolioValue     bool `json:"showPortfolioValue"`
	ShowTransactionHistory bool `json:"showTransactionHistory"`
	AllowAnalytics         bool `json:"allowAnalytics"`
}

type DisplayPreferences struct {
	Currency string `json:"currency"` // USD, XRP, RLUSD
	Theme    string `json:"theme"`    // light, dark, auto
	Language string `json:"language"`
}

// PortfolioMetrics aggregates an account's lending activity.
type PortfolioMetrics struct {
	TotalValue             string  `json:"totalValue"`
	TotalLent              string  `json:"totalLent"`
	TotalBorrowed          string  `json:"totalBorrowed"`
	TotalEarned            string  `json:"totalEarned"`
	TotalPaid              string  `json:"totalPaid"`
	NetProfit              string  `json:"netProfit"`
	ROI                    float64 `json:"roi"`
	HealthScore            float64 `json:"healthScore"`
	LiquidationRisk        string  `json:"liquidationRisk"` // low, medium, high
	CollateralizationRatio float64 `json:"collateralizationRatio,omitempty"`
	AvailableCredit        string  `json:"availableCredit,omitempty"`
	UtilizationRate        float64 `json:"utilizationRate,omitempty"`
}

// Position is one lending or borrowing position.
type Position struct {
	ID              string              `json:"id"`
	Type            string              `json:"type"` // lending, borrowing
	Asset           string              `json:"asset"`
	Amount          string              `json:"amount"`
	OriginalAmount  string              `json:"originalAmount"`
	InterestRate    float64             `json:"interestRate"`
	StartDate       time.Time           `json:"startDate"`
	EndDate         *time.Time          `json:"endDate,omitempty"`
	Status          string              `json:"status"` // active, completed, withdrawn, defaulted, liquidated
	AccruedInterest string              `json:"accruedInterest"`
	TotalReturn     string              `json:"totalReturn,omitempty"`
	Counterparty    string              `json:"counterparty,omitempty"`
	EscrowAddress   string              `json:"escrowAddress,omitempty"`
	TransactionHash string              `json:"transactionHash"`
	Collateral      *PositionCollateral `json:"collateral,omitempty"`
}

type PositionCollateral struct {
	Asset                string  `json:"asset"`
	Amount               string  `json:"amount"`
	LiquidationThreshold float64 `json:"liquidationThreshold"`
}

// Transaction is one protocol-level transaction record.
type Transaction struct {
	ID           string         `json:"id"`
	Hash         string         `json:"hash"`
	Type         string         `json:"type"` // deposit, withdraw, lend, borrow, repay, liquidation, interest_payment
	Asset        string         `json:"asset"`
	Amount       string         `json:"amount"`
	Fee          string         `json:"fee,omitempty"`
	Timestamp    time.Time      `json:"timestamp"`
	Status       string         `json:"status"` // pending, confirmed, failed
	BlockHeight  uint32         `json:"blockHeight,omitempty"`
	Counterparty string         `json:"counterparty,omitempty"`
	PositionID   string         `json:"positionId,omitempty"`
	Metadata     map[string]any `json:"metadata,omitempty"`
}

// AnalyticsData is the backend's full analytics payload for an account.
type AnalyticsData struct {
	PortfolioPerformance []PerformancePoint `json:"portfolioPerformance"`
	AssetAllocation      []AssetAllocation  `json:"assetAllocation"`
	RiskMetrics          RiskMetrics        `json:"riskMetrics"`
	Earnings             EarningsData       `json:"earnings"`
	ActivitySummary      ActivitySummary    `json:"activitySummary"`
}

type PerformancePoint struct {
	Date       time.Time `json:"date"`
	TotalValue float64   `json:"totalValue"`
	ROI        float64   `json:"roi"`
}

type AssetAllocation struct {
	Asset      string  `json:"asset"`
	Percentage float64 `json:"percentage"`
	Value      string  `json:"value"`
}

type RiskMetrics struct {
	HealthScore            float64  `json:"healthScore"`
	LiquidationRisk        string   `json:"liquidationRisk"`
	CollateralizationRatio float64  `json:"collateralizationRatio"`
	LiquidationThreshold   float64  `json:"liquidationThreshold"`
	TimeToLiquidation      float64  `json:"timeToLiquidation,omitempty"` // hours
	Recommendations        []string `json:"recommendations"`
}

type EarningsData struct {
	TotalEarned string  `json:"totalEarned"`
	TotalPaid   string  `json:"totalPaid"`
	NetEarnings string  `json:"netEarnings"`
	AverageAPY  float64 `json:"averageAPY"`
}

type ActivitySummary struct {
	TotalTransactions   int    `json:"totalTransactions"`
	TotalVolume         string `json:"totalVolume"`
	AveragePositionSize string `json:"averagePositionSize"`
	ActiveDays          int    `json:"activeDays"`
}

// TransactionFilter narrows a transaction history query. Slice fields are
// encoded as comma-joined query values.
type TransactionFilter struct {
	Types     []string
	Assets    []string
	Statuses  []string
	StartDate *time.Time
	EndDate   *time.Time
	MinAmount string
	MaxAmount string
}

// PositionFilter narrows a positions query.
type PositionFilter struct {
	Types     []string
	Assets    []string
	Statuses  []string
	StartDate *time.Time
	EndDate   *time.Time
}

// Pagination selects a result page.
type Pagination struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string // asc, desc
}

// UpdateRequest carries a partial profile update.
type UpdateRequest struct {
	Preferences *UserPreferences `json:"preferences,omitempty"`
	Metadata    map[string]any   `json:"metadata,omitempty"`
}

// ExportOptions selects what an export should include.
type ExportOptions struct {
	Format              string    `json:"format"` // csv, json, pdf
	StartDate           time.Time `json:"startDate"`
	EndDate             time.Time `json:"endDate"`
	IncludeTransactions bool      `json:"includeTransactions"`
	IncludePositions    bool      `json:"includePositions"`
	IncludeAnalytics    bool      `json:"includeAnalytics"`
	IncludePersonalData bool      `json:"includePersonalData"`
}

// Response envelopes.

type ProfileResponse struct {
	Success bool        `json:"success"`
	Data    ProfileData `json:"data"`
	Error   string      `json:"error,omitempty"`
}

type ProfileData struct {
	Profile            UserProfile      `json:"profile"`
	Metrics            PortfolioMetrics `json:"metrics"`
	Positions          []Position       `json:"positions"`
	RecentTransactions []Transaction    `json:"recentTransactions"`
}

type PositionsResponse struct {
	Success bool          `json:"success"`
	Data    PositionsPage `json:"data"`
	Error   string        `json:"error,omitempty"`
}

type PositionsPage struct {
	Positions  []Position `json:"positions"`
	TotalCount int        `json:"totalCount"`
	HasMore    bool       `json:"hasMore"`
}

type TransactionsResponse struct {
	Success bool             `json:"success"`
	Data    TransactionsPage `json:"data"`
	Error   string           `json:"error,omitempty"`
}

type TransactionsPage struct {
	Transactions []Transaction `json:"transactions"`
	TotalCount   int           `json:"totalCount"`
	HasMore      bool          `json:"hasMore"`
}

type AnalyticsResponse struct {
	Success bool          `json:"success"`
	Data    AnalyticsData `json:"data"`
	Error   string        `json:"error,omitempty"`
}

type UpdateResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type ExportResponse struct {
	Success     bool   `json:"success"`
	DownloadURL string `json:"downloadUrl,omitempty"`
	Error       string `json:"error,omitempty"`
}
