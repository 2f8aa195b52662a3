package crossmark

// Response normalization for the Crossmark provider. The extension has
// shipped several response shapes over time; each helper probes the known
// field names in priority order and reports whether a value was found.

// normalizeAddress probes account, then address, then result.account /
// result.address.
func normalizeAddress(raw map[string]any) (string, bool) {
	if raw == nil {
		return "", false
	}
	for _, key := range []string{"account", "address"} {
		if s, ok := raw[key].(string); ok && s != "" {
			return s, true
		}
	}
	if nested, ok := raw["result"].(map[string]any); ok {
		return normalizeAddress(nested)
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

// normalizeHash probes txid, then hash, then result.hash.
func normalizeHash(raw map[string]any) (string, bool) {
	if raw == nil {
		return "", false
	}
	for _, key := range []string{"txid", "hash"} {
		if s, ok := raw[key].(string); ok && s != "" {
			return s, true
		}
	}
	if nested, ok := raw["result"].(map[string]any); ok {
		return normalizeHash(nested)
	}
	return "", false
}

// normalizeBlob probes txBlob, then signedTransaction, then result.
func normalizeBlob(raw map[string]any) (string, bool) {
	if raw == nil {
		return "", false
	}
	for _, key := range []string{"txBlob", "signedTransaction"} {
		if s, ok := raw[key].(string); ok && s != "" {
			return s, true
		}
	}
	if nested, ok := raw["result"].(map[string]any); ok {
		return normalizeBlob(nested)
	}
	return "", false
}
