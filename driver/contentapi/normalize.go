package contentapi

import (
	"bytes"
	"encoding/json"

	"content-desk/logger"
)

// listEnvelopeKeys are the envelope keys the backend has been observed to
// wrap list payloads in, checked in this order. The list is part of the
// API contract assumption, not something call sites infer ad hoc.
var listEnvelopeKeys = []string{
	"data", "items", "results",
	"articles", "categories", "networks", "notifications",
}

// extractList unwraps a list-endpoint payload into its items. A bare
// array passes through in order; an object yields the first envelope key
// holding an array. Anything else degrades to an empty sequence with a
// diagnostic, never an error: a malformed list must not break the view.
func extractList(payload []byte) []json.RawMessage {
	payload = bytes.TrimSpace(payload)
	if len(payload) == 0 {
		return []json.RawMessage{}
	}

	if payload[0] == '[' {
		var items []json.RawMessage
		if err := json.Unmarshal(payload, &items); err != nil {
			logger.Logger.Warn("malformed list payload", "err", err)
			return []json.RawMessage{}
		}
		return items
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(payload, &envelope); err != nil {
		logger.Logger.Warn("malformed list payload", "err", err)
		return []json.RawMessage{}
	}

	for _, key := range listEnvelopeKeys {
		raw, ok := envelope[key]
		if !ok {
			continue
		}
		raw = bytes.TrimSpace(raw)
		if len(raw) == 0 || raw[0] != '[' {
			continue
		}
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			logger.Logger.Warn("malformed list envelope", "key", key, "err", err)
			return []json.RawMessage{}
		}
		return items
	}

	logger.Logger.Warn("no list found in response envelope")
	return []json.RawMessage{}
}

// decodeItems unmarshals every item into T, skipping the ones that do
// not fit instead of failing the whole list.
func decodeItems[T any](items []json.RawMessage) []T {
	out := make([]T, 0, len(items))
	for i, raw := range items {
		var item T
		if err := json.Unmarshal(raw, &item); err != nil {
			logger.Logger.Warn("skipping malformed list item", "index", i, "err", err)
			continue
		}
		out = append(out, item)
	}
	return out
}
