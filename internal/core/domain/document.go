package domain

import (
	"bytes"
	"encoding/json"
)

// parseDocument decodes a stored profile document into out, handling the
// same legacy encodings as note details (raw JSON, double-encoded string,
// empty). Returns false when the payload was corrupt; out is left zeroed.
func parseDocument(b []byte, out any) bool {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return true
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return false
		}
		b = []byte(s)
	}
	return json.Unmarshal(b, out) == nil
}

// ParseVendorProfile decodes a stored vendor document, degrading to an empty
// profile when corrupt.
func ParseVendorProfile(b []byte) (VendorProfile, bool) {
	var p VendorProfile
	if !parseDocument(b, &p) {
		return VendorProfile{}, false
	}
	return p, true
}

// ParseUserProfile decodes a stored user document, degrading to an empty
// profile when corrupt.
func ParseUserProfile(b []byte) (UserProfile, bool) {
	var p UserProfile
	if !parseDocument(b, &p) {
		return UserProfile{}, false
	}
	return p, true
}
