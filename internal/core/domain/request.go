// internal/core/domain/request.go
package domain

import "strings"

// DefaultHashMode selects unsalted MD5 in the cracking engine.
const DefaultHashMode = "0"

// AnalysisRequest is the input of one analysis.
type AnalysisRequest struct {
	URL        string `json:"url"`
	TargetHash string `json:"target_hash"`
	HashMode   string `json:"hash_mode,omitempty"`
}

// Normalize trims fields, lowercases the hash and fills the default hash mode.
func (r *AnalysisRequest) Normalize() {
	r.URL = strings.TrimSpace(r.URL)
	r.TargetHash = strings.ToLower(strings.TrimSpace(r.TargetHash))
	r.HashMode = strings.TrimSpace(r.HashMode)
	if r.HashMode == "" {
		r.HashMode = DefaultHashMode
	}
}

// Validate verifica que la solicitud tenga url y hash.
func (r AnalysisRequest) Validate() error {
	if r.URL == "" || r.TargetHash == "" {
		return ErrInvalidInput
	}
	return nil
}
