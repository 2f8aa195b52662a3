package constants

import "time"

const (
	DialTimeout           = 10 * time.Second // timeout for a single endpoint dial
	RequestTimeout        = 20 * time.Second // timeout for a ledger request/response round trip
	APITimeout            = 30 * time.Second // timeout for profile backend calls
	TLSHandshakeTimeout   = 10 * time.Second // timeout for TLS handshake
	ResponseHeaderTimeout = 20 * time.Second // timeout for response header
	ExpectContinueTimeout = 1 * time.Second  // timeout for expect continue
	MaxResponseBodySize   = 10 * 1024 * 1024 // maximum response body size in bytes (10MB)
)

// DropsPerXRP is the fixed scale between XRP and its smallest unit.
const DropsPerXRP = 1_000_000

// Network names
const (
	NetworkMainnet = "mainnet"
	NetworkTestnet = "testnet"
	NetworkDevnet  = "devnet"
)

// Wallet adapter identifiers. The set is closed: the registry only ever
// holds these three.
const (
	WalletCrossmark = "crossmark"
	WalletGem       = "gem"
	WalletXaman     = "xaman"
)

// StorageKeyAdapter is the durable key holding the last-connected adapter id.
const StorageKeyAdapter = "wallet.adapter"

// RLUSDCurrency is the issued-currency code used by the lending pool.
const RLUSDCurrency = "RLUSD"

// DefaultTrustLimit is the default trust line limit requested before the
// first RLUSD transfer.
const DefaultTrustLimit = "1000000"

// Memo constants tagging pool payments. Values are uppercase hex of the
// ASCII tags and are part of the wire contract with the pool orchestrator.
const (
	MemoTypeDeposit = "584C5000"       // "XLP\0"
	MemoDataDeposit = "4445504F534954" // "DEPOSIT"
	MemoTypeRepay   = "5245504159"     // "REPAY"
	MemoDataRepay   = "4C4F414E"       // "LOAN"
)

// Memo types for market records carried as hex-encoded JSON.
const (
	MemoTypeLendingOffer     = "lending_offer"
	MemoTypeBorrowingRequest = "borrowing_request"
)

// Default WebSocket endpoints per network, tried in order.
var NetworkServers = map[string][]string{
	NetworkMainnet: {
		"wss://xrplcluster.com",
		"wss://s1.ripple.com",
		"wss://s2.ripple.com",
	},
	NetworkTestnet: {
		"wss://s.altnet.rippletest.net:51233",
		"wss://testnet.xrpl-labs.com",
	},
	NetworkDevnet: {
		"wss://s.devnet.rippletest.net:51233",
	},
}

// Explorer base URLs per network.
var NetworkExplorers = map[string]string{
	NetworkMainnet: "https://livenet.xrpl.org",
	NetworkTestnet: "https://testnet.xrpl.org",
	NetworkDevnet:  "https://devnet.xrpl.org",
}

// Faucet URLs for the test networks. Mainnet has none.
var NetworkFaucets = map[string]string{
	NetworkTestnet: "https://faucet.altnet.rippletest.net/accounts",
	NetworkDevnet:  "https://faucet.devnet.rippletest.net/accounts",
}
