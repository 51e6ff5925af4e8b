// internal/core/domain/request_test.go
package domain

import (
	"testing"

	"crackbench/internal/testutil"
)

func TestAnalysisRequest_Normalize(t *testing.T) {
	req := AnalysisRequest{URL: " https://example.com ", TargetHash: " 5F4DCC3B5AA765D61D8327DEB882CF99\n"}
	req.Normalize()

	testutil.AssertEqual(t, req.URL, "https://example.com", "trimmed url")
	testutil.AssertEqual(t, req.TargetHash, "5f4dcc3b5aa765d61d8327deb882cf99", "lowercased hash")
	testutil.AssertEqual(t, req.HashMode, DefaultHashMode, "default mode")

	req = AnalysisRequest{URL: "u", TargetHash: "h", HashMode: " 1000 "}
	req.Normalize()
	testutil.AssertEqual(t, req.HashMode, "1000", "explicit mode kept")
}

func TestAnalysisRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     AnalysisRequest
		wantErr bool
	}{
		{"valid", AnalysisRequest{URL: "https://example.com", TargetHash: "abc"}, false},
		{"missing url", AnalysisRequest{TargetHash: "abc"}, true},
		{"missing hash", AnalysisRequest{URL: "https://example.com"}, true},
		{"both missing", AnalysisRequest{}, true},
		{"non-hex hash accepted", AnalysisRequest{URL: "u", TargetHash: "not-hex"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				testutil.AssertEqual(t, err, ErrInvalidInput, "validation error")
			} else {
				testutil.AssertNoError(t, err, "valid request")
			}
		})
	}
}
