// internal/adapters/output/json.go
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"crackbench/internal/core/domain"
)

// sanitizeName convierte un host en un nombre de carpeta válido.
// Ejemplo: "login.example.com" -> "login_example_com"
func sanitizeName(name string) string {
	sanitized := strings.ReplaceAll(name, ".", "_")
	sanitized = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' || r == '-' {
			return r
		}
		return '_'
	}, sanitized)
	if sanitized == "" {
		return "unknown"
	}
	return sanitized
}

// targetHost devuelve el host de la URL analizada, o la URL entera si no parsea.
func targetHost(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		return raw
	}
	return u.Hostname()
}

// OutputJSON escribe el reporte en dir/<host>/crackbench_<host>_<timestamp>.json
// y devuelve la ruta del archivo.
func OutputJSON(dir string, report *domain.Report) (string, error) {
	if report == nil {
		return "", fmt.Errorf("nil report")
	}
	if dir == "" {
		dir = "."
	}

	host := sanitizeName(targetHost(report.URL))
	fullDir := filepath.Join(dir, host)
	if err := os.MkdirAll(fullDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	ts := report.StartedAt
	if ts.IsZero() {
		ts = time.Now()
	}
	filename := fmt.Sprintf("crackbench_%s_%s.json", host, ts.Format("20060102_150405"))
	path := filepath.Join(fullDir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if err := WriteJSON(f, report, true); err != nil {
		return "", err
	}
	return path, nil
}

// WriteJSON codifica el reporte en w. El plaintext nunca se serializa.
func WriteJSON(w io.Writer, report *domain.Report, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// OutputJSONStdout exporta el reporte a stdout.
func OutputJSONStdout(report *domain.Report, pretty bool) error {
	return WriteJSON(os.Stdout, report, pretty)
}
