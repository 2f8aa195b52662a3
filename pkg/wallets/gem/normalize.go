package gem

// Response normalization for the Gem Wallet provider. Address responses
// arrive either as a bare string or as an object keyed address/account,
// sometimes nested under result.

// normalizeAddress accepts a bare string or an object and probes address,
// account, then result.
func normalizeAddress(raw any) (string, bool) {
	switch v := raw.(type) {
	case string:
		if v != "" {
			return v, true
		}
	case map[string]any:
		for _, key := range []string{"address", "account"} {
			if s, ok := v[key].(string); ok && s != "" {
				return s, true
			}
		}
		if nested, ok := v["result"]; ok {
			return normalizeAddress(nested)
		}
	}
	return "", false
}

// normalizeNetwork probes network, then result.network.
func normalizeNetwork(raw map[string]any) (string, bool) {
	if raw == nil {
		return "", false
	}
	if s, ok := raw["network"].(string); ok && s != "" {
		return s, true
	}
	if nested, ok := raw["result"].(map[string]any); ok {
		return normalizeNetwork(nested)
	}
	return "", false
}

// normalizeHash probes hash, then txid, then result.hash.
func normalizeHash(raw map[string]any) (string, bool) {
	if raw == nil {
		return "", false
	}
	for _, key := range []string{"hash", "txid"} {
		if s, ok := raw[key].(string); ok && s != "" {
			return s, true
		}
	}
	if nested, ok := raw["result"].(map[string]any); ok {
		return normalizeHash(nested)
	}
	return "", false
}
