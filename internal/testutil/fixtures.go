// internal/testutil/fixtures.go
package testutil

import (
	"crypto/md5"
	"encoding/hex"
)

// Fixture data para tests (valores primitivos solamente, sin dependencias de domain)

// FixtureDictionary es un diccionario pequeño con contraseñas comunes.
var FixtureDictionary = []string{
	"123456",
	"password",
	"iloveyou",
	"princess",
	"rockyou",
	"abc123",
	"secure2024",
}

// FixtureKeywords son palabras clave semilla típicas de una página de login.
var FixtureKeywords = []string{"login", "secure"}

// MD5Hex returns the lowercase hex MD5 digest of s (hash mode 0).
func MD5Hex(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}
