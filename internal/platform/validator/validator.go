// internal/platform/validator/validator.go
package validator

import (
	"net/url"
	"regexp"
	"strings"
)

var hexRegex = regexp.MustCompile(`^[0-9a-fA-F]+$`)

// URL validators

// IsFetchableURL verifica que la URL sea http(s) con host.
func IsFetchableURL(urlStr string) bool {
	if len(urlStr) == 0 {
		return false
	}

	parsed, err := url.Parse(strings.TrimSpace(urlStr))
	if err != nil {
		return false
	}

	scheme := strings.ToLower(parsed.Scheme)
	return (scheme == "http" || scheme == "https") && parsed.Host != ""
}

// NormalizeURL normaliza una URL a su forma canónica.
func NormalizeURL(urlStr string) string {
	urlStr = strings.TrimSpace(urlStr)

	parsed, err := url.Parse(urlStr)
	if err != nil {
		return strings.ToLower(urlStr)
	}

	// Normalizar scheme y host (case-insensitive)
	parsed.Scheme = strings.ToLower(parsed.Scheme)
	parsed.Host = strings.ToLower(parsed.Host)

	// Remover puertos por defecto
	if parsed.Scheme == "http" && strings.HasSuffix(parsed.Host, ":80") {
		parsed.Host = strings.TrimSuffix(parsed.Host, ":80")
	}
	if parsed.Scheme == "https" && strings.HasSuffix(parsed.Host, ":443") {
		parsed.Host = strings.TrimSuffix(parsed.Host, ":443")
	}

	// El fragment no llega al servidor
	parsed.Fragment = ""
	parsed.RawFragment = ""

	// Remover trailing slash si no hay path adicional
	if parsed.Path == "/" && parsed.RawQuery == "" {
		parsed.Path = ""
	}

	// Path y query son case-sensitive
	return parsed.String()
}

// Hash validators

// IsHexDigest reports whether hash is a raw hex digest of a common size
// (MD5, SHA1, SHA256, SHA512). Salted and structured hashcat formats are
// legitimate targets too, so callers use this only as a hint.
func IsHexDigest(hash string) bool {
	hash = strings.TrimSpace(hash)

	switch len(hash) {
	case 32, 40, 64, 128:
		return hexRegex.MatchString(hash)
	default:
		return false
	}
}

// DigestLength returns the expected hex length for the raw-digest hashcat
// modes, or 0 when the mode has no fixed raw form.
func DigestLength(hashMode string) int {
	switch strings.TrimSpace(hashMode) {
	case "0", "900", "1000", "70":
		return 32
	case "100", "300", "6000":
		return 40
	case "1400", "17400":
		return 64
	case "1700", "17600":
		return 128
	default:
		return 0
	}
}

// MatchesMode reports whether hash is shaped like a digest of hashMode.
// Modes without a fixed raw form always match.
func MatchesMode(hash, hashMode string) bool {
	want := DigestLength(hashMode)
	if want == 0 {
		return true
	}
	hash = strings.TrimSpace(hash)
	return len(hash) == want && hexRegex.MatchString(hash)
}
