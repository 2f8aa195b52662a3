// Package config holds network topology and protocol settings for the
// lending client. Network definitions are static; protocol settings come
// from an optional YAML file with environment overrides on top.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/xoceanhq/xrplend/pkg/constants"
)

// NetworkConfig describes one ledger network: the candidate WebSocket
// endpoints in failover order, the explorer base URL, and an optional
// faucet for the test networks.
type NetworkConfig struct {
	Name     string   `yaml:"name"`
	Servers  []string `yaml:"servers"`
	Explorer string   `yaml:"explorer"`
	Faucet   string   `yaml:"faucet,omitempty"`
}

// Networks is the built-in network map, loaded once at process start.
var Networks = map[string]NetworkConfig{
	constants.NetworkMainnet: {
		Name:     "Mainnet",
		Servers:  constants.NetworkServers[constants.NetworkMainnet],
		Explorer: constants.NetworkExplorers[constants.NetworkMainnet],
	},
	constants.NetworkTestnet: {
		Name:     "Testnet",
		Servers:  constants.NetworkServers[constants.NetworkTestnet],
		Explorer: constants.NetworkExplorers[constants.NetworkTestnet],
		Faucet:   constants.NetworkFaucets[constants.NetworkTestnet],
	},
	constants.NetworkDevnet: {
		Name:     "Devnet",
		Servers:  constants.NetworkServers[constants.NetworkDevnet],
		Explorer: constants.NetworkExplorers[constants.NetworkDevnet],
		Faucet:   constants.NetworkFaucets[constants.NetworkDevnet],
	},
}

// Network returns the configuration for the named network, falling back
// to testnet for unknown names.
func Network(name string) NetworkConfig {
	if cfg, ok := Networks[name]; ok {
		return cfg
	}
	return Networks[constants.NetworkTestnet]
}

// ExplorerTxURL returns the explorer link for a transaction hash, or the
// explorer base URL when hash is empty.
func ExplorerTxURL(network, hash string) string {
	cfg := Network(network)
	if hash == "" {
		return cfg.Explorer
	}
	return fmt.Sprintf("%s/transactions/%s", cfg.Explorer, hash)
}

// Settings holds the protocol-level configuration: which network to use,
// the custodial pool account, and the issued currency the pool lends.
type Settings struct {
	Network     string `yaml:"network"`
	PoolAddress string `yaml:"pool_address"`
	Issuer      string `yaml:"issuer"`
	Currency    string `yaml:"currency"`
	APIBaseURL  string `yaml:"api_base_url"`
}

// DefaultSettings returns testnet settings with the standard RLUSD
// currency code. PoolAddress and Issuer are deployment-specific and have
// no useful defaults.
func DefaultSettings() Settings {
	return Settings{
		Network:    constants.NetworkTestnet,
		Currency:   constants.RLUSDCurrency,
		APIBaseURL: "http://localhost:3001/api",
	}
}

// LoadSettings reads settings from a YAML file, starting from defaults and
// finishing with environment overrides. A missing file is not an error;
// the defaults plus environment are returned.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return s, fmt.Errorf("failed to read settings file: %w", err)
			}
		} else if err := yaml.Unmarshal(data, &s); err != nil {
			return s, fmt.Errorf("failed to parse settings file: %w", err)
		}
	}

	s.applyEnv()
	return s, nil
}

// Environment variable names recognized by applyEnv.
const (
	EnvNetwork     = "XRPLEND_NETWORK"
	EnvPoolAddress = "XRPLEND_POOL_ADDRESS"
	EnvIssuer      = "XRPLEND_ISSUER"
	EnvCurrency    = "XRPLEND_CURRENCY"
	EnvAPIBaseURL  = "XRPLEND_API_BASE_URL"
)

func (s *Settings) applyEnv() {
	if v := os.Getenv(EnvNetwork); v != "" {
		s.Network = v
	}
	if v := os.Getenv(EnvPoolAddress); v != "" {
		s.PoolAddress = v
	}
	if v := os.Getenv(EnvIssuer); v != "" {
		s.Issuer = v
	}
	if v := os.Getenv(EnvCurrency); v != "" {
		s.Currency = v
	}
	if v := os.Getenv(EnvAPIBaseURL); v != "" {
		s.APIBaseURL = v
	}
}
