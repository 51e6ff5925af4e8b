// internal/platform/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefija todas las variables de entorno reconocidas.
const EnvPrefix = "CRACKBENCH_"

// Config agrupa la configuración de ambos binarios.
type Config struct {
	Core       CoreConfig       `yaml:"core" json:"core"`
	Dictionary DictionaryConfig `yaml:"dictionary" json:"dictionary"`
	Hashcat    HashcatConfig    `yaml:"hashcat" json:"hashcat"`
	Predictor  PredictorConfig  `yaml:"predictor" json:"predictor"`
	Keywords   KeywordsConfig   `yaml:"keywords" json:"keywords"`
	Estimator  EstimatorConfig  `yaml:"estimator" json:"estimator"`
	Resilience ResilienceConfig `yaml:"resilience" json:"resilience"`
	Server     ServerConfig     `yaml:"server" json:"server"`
	Store      StoreConfig      `yaml:"store" json:"store"`
	Output     OutputConfig     `yaml:"output" json:"output"`

	// Set by flags only
	ConfigFile   string `yaml:"-" json:"-"`
	PrintVersion bool   `yaml:"-" json:"-"`
}

type CoreConfig struct {
	URL             string `yaml:"url" json:"url"`
	Hash            string `yaml:"hash" json:"-"`
	HashMode        string `yaml:"hash_mode" json:"hash_mode"`
	Rounds          int    `yaml:"rounds" json:"rounds"`
	ParallelAttacks bool   `yaml:"parallel_attacks" json:"parallel_attacks"`
	AttackWorkers   int    `yaml:"attack_workers" json:"attack_workers"`     // 0 = una por ataque
	AttackScheduler string `yaml:"attack_scheduler" json:"attack_scheduler"` // fifo | priority | weighted
	TimeoutS        int    `yaml:"timeout_s" json:"timeout_s"` // segundos (0 = sin timeout)
	WorkDir         string `yaml:"work_dir" json:"work_dir"`
	LogLevel        string `yaml:"log_level" json:"log_level"` // debug | info | warn | error
}

type DictionaryConfig struct {
	Path            string `yaml:"path" json:"path"`
	VocabularyLines int    `yaml:"vocabulary_lines" json:"vocabulary_lines"`
}

type HashcatConfig struct {
	Path      string        `yaml:"path" json:"path"`
	Timeout   time.Duration `yaml:"timeout" json:"timeout"` // por ataque (0 = sin timeout)
	ExtraArgs []string      `yaml:"extra_args" json:"extra_args"`
}

type PredictorConfig struct {
	Endpoint   string        `yaml:"endpoint" json:"endpoint"`
	Model      string        `yaml:"model" json:"model"`
	Window     int           `yaml:"window" json:"window"`
	Timeout    time.Duration `yaml:"timeout" json:"timeout"`
	MaxRetries int           `yaml:"max_retries" json:"max_retries"`
}

type KeywordsConfig struct {
	Mode        string        `yaml:"mode" json:"mode"` // browser | static
	Wait        time.Duration `yaml:"wait" json:"wait"`
	Timeout     time.Duration `yaml:"timeout" json:"timeout"`
	CacheTTL    time.Duration `yaml:"cache_ttl" json:"cache_ttl"`
	CacheSize   int           `yaml:"cache_size" json:"cache_size"`
	MaxKeywords int           `yaml:"max_keywords" json:"max_keywords"`
	MinLen      int           `yaml:"min_len" json:"min_len"`
	MaxLen      int           `yaml:"max_len" json:"max_len"`
	UserAgent   string        `yaml:"user_agent" json:"user_agent"`
	ChromePath  string        `yaml:"chrome_path" json:"chrome_path"`
}

type EstimatorConfig struct {
	CharsetSize      int     `yaml:"charset_size" json:"charset_size"`
	GuessesPerSecond float64 `yaml:"guesses_per_second" json:"guesses_per_second"`
}

type ResilienceConfig struct {
	// Retry configuration for the cracking engine
	MaxRetries        int           `yaml:"max_retries" json:"max_retries"`
	BackoffBase       time.Duration `yaml:"backoff_base" json:"backoff_base"`
	BackoffMultiplier float64       `yaml:"backoff_multiplier" json:"backoff_multiplier"`

	// Circuit Breaker configuration
	CircuitBreakerEnabled     bool          `yaml:"circuit_breaker" json:"circuit_breaker"`
	CircuitBreakerThreshold   int           `yaml:"circuit_breaker_threshold" json:"circuit_breaker_threshold"`
	CircuitBreakerTimeout     time.Duration `yaml:"circuit_breaker_timeout" json:"circuit_breaker_timeout"`
	CircuitBreakerHalfOpenMax int           `yaml:"circuit_breaker_half_open_max" json:"circuit_breaker_half_open_max"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr" json:"addr"`
	CORSOrigins  []string      `yaml:"cors_origins" json:"cors_origins"`
	RateLimit    int           `yaml:"rate_limit" json:"rate_limit"` // requests per RateWindow per IP (0 = off)
	RateWindow   time.Duration `yaml:"rate_window" json:"rate_window"`
	RedisURL     string        `yaml:"redis_url" json:"-"`
	ReportsLimit int           `yaml:"reports_limit" json:"reports_limit"`
}

type StoreConfig struct {
	DatabaseURL string `yaml:"database_url" json:"-"`
}

type OutputConfig struct {
	Dir           string `yaml:"dir" json:"dir"`
	TableDisabled bool   `yaml:"table_disabled" json:"table_disabled"`
	UIDisabled    bool   `yaml:"ui_disabled" json:"ui_disabled"`
	UIMode        string `yaml:"ui_mode" json:"ui_mode"` // interactive | raw | quiet
	Stream        bool   `yaml:"stream" json:"stream"`   // persist each attack as it finishes
}

// DefaultConfig retorna una configuración por defecto.
func DefaultConfig() Config {
	return Config{
		Core: CoreConfig{
			HashMode: "0",
			Rounds:   3,
			TimeoutS: 0,

			AttackWorkers:   3,
			AttackScheduler: "fifo",
			WorkDir:  "",
			LogLevel: "info",
		},
		Dictionary: DictionaryConfig{
			Path:            "rockyou.txt",
			VocabularyLines: 50000,
		},
		Hashcat: HashcatConfig{
			Path: "hashcat",
		},
		Predictor: PredictorConfig{
			Endpoint: "http://localhost:8501",
			Model:    "password_model",
			Window:   30,
			Timeout:  10 * time.Second,
		},
		Keywords: KeywordsConfig{
			Mode:        "browser",
			Wait:        3 * time.Second,
			Timeout:     30 * time.Second,
			CacheTTL:    10 * time.Minute,
			CacheSize:   256,
			MaxKeywords: 5,
			MinLen:      4,
			MaxLen:      10,
			UserAgent:   "crackbench/1.0",
		},
		Estimator: EstimatorConfig{
			CharsetSize:      95,
			GuessesPerSecond: 1e11,
		},
		Resilience: ResilienceConfig{
			MaxRetries:                0,
			BackoffBase:               1 * time.Second,
			BackoffMultiplier:         2.0,
			CircuitBreakerEnabled:     false,
			CircuitBreakerThreshold:   5,
			CircuitBreakerTimeout:     60 * time.Second,
			CircuitBreakerHalfOpenMax: 1,
		},
		Server: ServerConfig{
			Addr:         ":5000",
			CORSOrigins:  []string{"*"},
			RateLimit:    30,
			RateWindow:   time.Minute,
			ReportsLimit: 20,
		},
		Output: OutputConfig{
			Dir:    "crackbench_out",
			UIMode: "interactive",
		},
	}
}

// Load inicializa la configuración: defaults -> archivo YAML -> ENV -> FLAGS
// (flags tienen prioridad). Maneja --help y --version internamente.
func Load(version, commit, date string) (Config, error) {
	cfg, err := LoadArgs(pflag.CommandLine, os.Args[1:])
	if err != nil {
		return cfg, err
	}
	if help, _ := pflag.CommandLine.GetBool("help"); help {
		PrintHelp()
	}
	if cfg.PrintVersion {
		PrintVersion(version, commit, date)
	}
	return cfg, nil
}

// LoadArgs is Load over an explicit flag set and argument list.
func LoadArgs(fs *pflag.FlagSet, args []string) (Config, error) {
	cfg := DefaultConfig()

	path := configPathFromArgs(args)
	if path == "" {
		path = getenv(EnvPrefix+"CONFIG", "")
	}
	if path != "" {
		if err := loadFromFile(&cfg, path); err != nil {
			return cfg, err
		}
		cfg.ConfigFile = path
	}

	loadFromEnv(&cfg)

	if err := loadFromFlags(&cfg, fs, args); err != nil {
		return cfg, err
	}

	normalize(&cfg)
	return cfg, nil
}

// loadFromFile aplica un archivo YAML sobre la configuración actual.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

// configPathFromArgs finds --config/-c before flags are parsed, so the file
// can sit below env vars and flags in precedence.
func configPathFromArgs(args []string) string {
	for i, a := range args {
		switch {
		case a == "--config" || a == "-c":
			if i+1 < len(args) {
				return args[i+1]
			}
		case strings.HasPrefix(a, "--config="):
			return strings.TrimPrefix(a, "--config=")
		case strings.HasPrefix(a, "-c="):
			return strings.TrimPrefix(a, "-c=")
		}
	}
	return ""
}

// loadFromEnv carga configuración desde variables de entorno.
func loadFromEnv(cfg *Config) {
	// Core
	if v := getenv(EnvPrefix+"URL", ""); v != "" {
		cfg.Core.URL = v
	}
	if v := getenv(EnvPrefix+"HASH", ""); v != "" {
		cfg.Core.Hash = v
	}
	if v := getenv(EnvPrefix+"HASH_MODE", ""); v != "" {
		cfg.Core.HashMode = v
	}
	if v := getenv(EnvPrefix+"ROUNDS", ""); v != "" {
		cfg.Core.Rounds = parseInt(v, cfg.Core.Rounds)
	}
	if v := getenv(EnvPrefix+"PARALLEL", ""); v != "" {
		cfg.Core.ParallelAttacks = parseBool(v)
	}
	if v := getenv(EnvPrefix+"ATTACK_WORKERS", ""); v != "" {
		cfg.Core.AttackWorkers = parseInt(v, cfg.Core.AttackWorkers)
	}
	if v := getenv(EnvPrefix+"ATTACK_SCHEDULER", ""); v != "" {
		cfg.Core.AttackScheduler = v
	}
	if v := getenv(EnvPrefix+"TIMEOUT", ""); v != "" {
		cfg.Core.TimeoutS = parseInt(v, cfg.Core.TimeoutS)
	}
	if v := getenv(EnvPrefix+"WORK_DIR", ""); v != "" {
		cfg.Core.WorkDir = v
	}
	if v := getenv(EnvPrefix+"LOG_LEVEL", ""); v != "" {
		cfg.Core.LogLevel = v
	}

	// Dictionary
	if v := getenv(EnvPrefix+"DICTIONARY", ""); v != "" {
		cfg.Dictionary.Path = v
	}
	if v := getenv(EnvPrefix+"VOCABULARY_LINES", ""); v != "" {
		cfg.Dictionary.VocabularyLines = parseInt(v, cfg.Dictionary.VocabularyLines)
	}

	// Hashcat
	if v := getenv(EnvPrefix+"HASHCAT_PATH", ""); v != "" {
		cfg.Hashcat.Path = v
	}
	if v := getenv(EnvPrefix+"HASHCAT_TIMEOUT", ""); v != "" {
		cfg.Hashcat.Timeout = parseSeconds(v, cfg.Hashcat.Timeout)
	}
	if v := getenv(EnvPrefix+"HASHCAT_EXTRA_ARGS", ""); v != "" {
		cfg.Hashcat.ExtraArgs = strings.Fields(v)
	}

	// Predictor
	if v := getenv(EnvPrefix+"PREDICTOR_URL", ""); v != "" {
		cfg.Predictor.Endpoint = v
	}
	if v := getenv(EnvPrefix+"PREDICTOR_MODEL", ""); v != "" {
		cfg.Predictor.Model = v
	}
	if v := getenv(EnvPrefix+"PREDICTOR_WINDOW", ""); v != "" {
		cfg.Predictor.Window = parseInt(v, cfg.Predictor.Window)
	}
	if v := getenv(EnvPrefix+"PREDICTOR_TIMEOUT", ""); v != "" {
		cfg.Predictor.Timeout = parseSeconds(v, cfg.Predictor.Timeout)
	}

	// Keywords
	if v := getenv(EnvPrefix+"KEYWORDS_MODE", ""); v != "" {
		cfg.Keywords.Mode = v
	}
	if v := getenv(EnvPrefix+"KEYWORDS_WAIT", ""); v != "" {
		cfg.Keywords.Wait = parseSeconds(v, cfg.Keywords.Wait)
	}
	if v := getenv(EnvPrefix+"KEYWORDS_CACHE_TTL", ""); v != "" {
		cfg.Keywords.CacheTTL = parseSeconds(v, cfg.Keywords.CacheTTL)
	}
	if v := getenv(EnvPrefix+"CHROME_PATH", ""); v != "" {
		cfg.Keywords.ChromePath = v
	}

	// Estimator
	if v := getenv(EnvPrefix+"ESTIMATOR_CHARSET", ""); v != "" {
		cfg.Estimator.CharsetSize = parseInt(v, cfg.Estimator.CharsetSize)
	}
	if v := getenv(EnvPrefix+"ESTIMATOR_RATE", ""); v != "" {
		cfg.Estimator.GuessesPerSecond = parseFloat(v, cfg.Estimator.GuessesPerSecond)
	}

	// Resilience
	if v := getenv(EnvPrefix+"RESILIENCE_MAX_RETRIES", ""); v != "" {
		cfg.Resilience.MaxRetries = parseInt(v, cfg.Resilience.MaxRetries)
	}
	if v := getenv(EnvPrefix+"RESILIENCE_CB_ENABLED", ""); v != "" {
		cfg.Resilience.CircuitBreakerEnabled = parseBool(v)
	}
	if v := getenv(EnvPrefix+"RESILIENCE_CB_THRESHOLD", ""); v != "" {
		cfg.Resilience.CircuitBreakerThreshold = parseInt(v, cfg.Resilience.CircuitBreakerThreshold)
	}

	// Server
	if v := getenv(EnvPrefix+"ADDR", ""); v != "" {
		cfg.Server.Addr = v
	}
	if v := getenv(EnvPrefix+"CORS_ORIGINS", ""); v != "" {
		cfg.Server.CORSOrigins = splitList(v)
	}
	if v := getenv(EnvPrefix+"RATE_LIMIT", ""); v != "" {
		cfg.Server.RateLimit = parseInt(v, cfg.Server.RateLimit)
	}
	if v := getenv(EnvPrefix+"REDIS_URL", ""); v != "" {
		cfg.Server.RedisURL = v
	}

	// Store
	if v := getenv(EnvPrefix+"DATABASE_URL", ""); v != "" {
		cfg.Store.DatabaseURL = v
	}

	// Output
	if v := getenv(EnvPrefix+"OUTPUT_DIR", ""); v != "" {
		cfg.Output.Dir = v
	}
	if v := getenv(EnvPrefix+"TABLE_DISABLED", ""); v != "" {
		cfg.Output.TableDisabled = parseBool(v)
	}
	if v := getenv(EnvPrefix+"UI_MODE", ""); v != "" {
		cfg.Output.UIMode = v
	}
	if v := getenv(EnvPrefix+"STREAM", ""); v != "" {
		cfg.Output.Stream = parseBool(v)
	}
}

// loadFromFlags parsea flags de CLI sobre los valores ya cargados.
func loadFromFlags(cfg *Config, fs *pflag.FlagSet, args []string) error {
	var configFile string
	fs.StringVarP(&configFile, "config", "c", cfg.ConfigFile, "YAML config file")

	// Core
	fs.StringVarP(&cfg.Core.URL, "url", "u", cfg.Core.URL, "Target URL to extract seed keywords from")
	fs.StringVarP(&cfg.Core.Hash, "hash", "H", cfg.Core.Hash, "Target password hash")
	fs.StringVarP(&cfg.Core.HashMode, "hash-mode", "m", cfg.Core.HashMode, "Hashcat hash mode")
	fs.IntVar(&cfg.Core.Rounds, "rounds", cfg.Core.Rounds, "Prediction rounds per keyword")
	fs.BoolVar(&cfg.Core.ParallelAttacks, "parallel", cfg.Core.ParallelAttacks, "Run the three attacks concurrently")
	fs.IntVar(&cfg.Core.AttackWorkers, "attack-workers", cfg.Core.AttackWorkers, "Concurrent attacks with --parallel (0 = all)")
	fs.StringVar(&cfg.Core.AttackScheduler, "attack-scheduler", cfg.Core.AttackScheduler, "Attack start order: fifo, priority or weighted")
	fs.IntVarP(&cfg.Core.TimeoutS, "timeout", "T", cfg.Core.TimeoutS, "Global timeout in seconds (0 = none)")
	fs.StringVar(&cfg.Core.WorkDir, "work-dir", cfg.Core.WorkDir, "Directory for transient wordlists")
	fs.StringVar(&cfg.Core.LogLevel, "log-level", cfg.Core.LogLevel, "Log level: debug, info, warn, error")

	// Dictionary / engines
	fs.StringVarP(&cfg.Dictionary.Path, "dictionary", "d", cfg.Dictionary.Path, "Dictionary wordlist (latin-1)")
	fs.StringVar(&cfg.Hashcat.Path, "hashcat", cfg.Hashcat.Path, "Hashcat executable")
	fs.DurationVar(&cfg.Hashcat.Timeout, "hashcat-timeout", cfg.Hashcat.Timeout, "Per-attack timeout (0 = none)")
	fs.StringVar(&cfg.Predictor.Endpoint, "predictor", cfg.Predictor.Endpoint, "Predictor REST endpoint")
	fs.StringVar(&cfg.Predictor.Model, "predictor-model", cfg.Predictor.Model, "Predictor model name")
	fs.StringVar(&cfg.Keywords.Mode, "keywords-mode", cfg.Keywords.Mode, "Keyword source: browser or static")

	// Resilience
	fs.IntVarP(&cfg.Resilience.MaxRetries, "retries", "r", cfg.Resilience.MaxRetries, "Retries per engine run")
	fs.BoolVar(&cfg.Resilience.CircuitBreakerEnabled, "circuit-breaker", cfg.Resilience.CircuitBreakerEnabled, "Enable circuit breaker around the engine")

	// Server / store
	fs.StringVar(&cfg.Server.Addr, "addr", cfg.Server.Addr, "HTTP listen address")
	fs.StringVar(&cfg.Server.RedisURL, "redis-url", cfg.Server.RedisURL, "Redis URL for rate limiter storage")
	fs.StringVar(&cfg.Store.DatabaseURL, "database-url", cfg.Store.DatabaseURL, "Postgres URL for report storage")

	// Output
	fs.StringVarP(&cfg.Output.Dir, "out", "o", cfg.Output.Dir, "Output directory")
	fs.BoolVarP(&cfg.Output.TableDisabled, "quiet", "q", cfg.Output.TableDisabled, "Disable table output (JSON only)")
	fs.BoolVar(&cfg.Output.UIDisabled, "no-ui", cfg.Output.UIDisabled, "Disable the interactive presenter")
	fs.StringVar(&cfg.Output.UIMode, "ui-mode", cfg.Output.UIMode, "Presenter: interactive, raw or quiet")
	fs.BoolVar(&cfg.Output.Stream, "stream", cfg.Output.Stream, "Write each attack result to disk as it finishes")

	// Info
	fs.BoolVarP(&cfg.PrintVersion, "version", "v", false, "Print version and exit")
	fs.BoolP("help", "h", false, "Show help")

	fs.Usage = func() { fmt.Fprint(os.Stderr, helpText) }

	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg.ConfigFile = configFile
	return nil
}

func normalize(c *Config) {
	c.Core.URL = strings.TrimSpace(c.Core.URL)
	c.Core.Hash = strings.ToLower(strings.TrimSpace(c.Core.Hash))
	c.Core.HashMode = strings.TrimSpace(c.Core.HashMode)
	if c.Core.HashMode == "" {
		c.Core.HashMode = "0"
	}
	if c.Core.Rounds < 0 {
		c.Core.Rounds = 0
	}
	if c.Core.AttackWorkers < 0 {
		c.Core.AttackWorkers = 0
	}
	switch c.Core.AttackScheduler = strings.ToLower(strings.TrimSpace(c.Core.AttackScheduler)); c.Core.AttackScheduler {
	case "priority", "weighted":
	default:
		c.Core.AttackScheduler = "fifo"
	}
	if c.Core.TimeoutS < 0 {
		c.Core.TimeoutS = 0
	}
	if c.Dictionary.VocabularyLines <= 0 {
		c.Dictionary.VocabularyLines = 50000
	}
	if c.Hashcat.Path == "" {
		c.Hashcat.Path = "hashcat"
	}
	if c.Hashcat.Timeout < 0 {
		c.Hashcat.Timeout = 0
	}
	if c.Predictor.Window <= 0 {
		c.Predictor.Window = 30
	}
	c.Predictor.Endpoint = strings.TrimRight(c.Predictor.Endpoint, "/")

	c.Keywords.Mode = strings.ToLower(strings.TrimSpace(c.Keywords.Mode))
	if c.Keywords.Mode != "static" {
		c.Keywords.Mode = "browser"
	}
	if c.Keywords.MaxKeywords <= 0 {
		c.Keywords.MaxKeywords = 5
	}
	if c.Keywords.MinLen <= 0 {
		c.Keywords.MinLen = 4
	}
	if c.Keywords.MaxLen < c.Keywords.MinLen {
		c.Keywords.MaxLen = c.Keywords.MinLen
	}

	if c.Estimator.CharsetSize <= 0 {
		c.Estimator.CharsetSize = 95
	}
	if c.Estimator.GuessesPerSecond <= 0 {
		c.Estimator.GuessesPerSecond = 1e11
	}

	if c.Resilience.MaxRetries < 0 {
		c.Resilience.MaxRetries = 0
	}
	if c.Resilience.BackoffBase < 0 {
		c.Resilience.BackoffBase = 1 * time.Second
	}
	if c.Resilience.BackoffMultiplier < 1.0 {
		c.Resilience.BackoffMultiplier = 2.0
	}

	if c.Server.RateLimit < 0 {
		c.Server.RateLimit = 0
	}
	if c.Server.RateWindow <= 0 {
		c.Server.RateWindow = time.Minute
	}
	if c.Server.ReportsLimit <= 0 {
		c.Server.ReportsLimit = 20
	}
	if len(c.Server.CORSOrigins) == 0 {
		c.Server.CORSOrigins = []string{"*"}
	}

	if c.Output.Dir == "" {
		c.Output.Dir = "crackbench_out"
	}
	c.Output.UIMode = strings.ToLower(strings.TrimSpace(c.Output.UIMode))
	switch c.Output.UIMode {
	case "interactive", "raw", "quiet":
	default:
		c.Output.UIMode = "interactive"
	}
	if c.Output.UIDisabled {
		c.Output.UIMode = "quiet"
	}

	c.Core.LogLevel = strings.ToLower(strings.TrimSpace(c.Core.LogLevel))
	if c.Core.LogLevel == "" {
		c.Core.LogLevel = "info"
	}
}

// ToJSON serializa la configuración a JSON (útil para debugging). Secrets
// (hash, database and redis URLs) are omitted.
func (c Config) ToJSON() (string, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Timeout devuelve un time.Duration útil si prefieres trabajar con duración.
func (c Config) Timeout() time.Duration {
	if c.Core.TimeoutS <= 0 {
		return 0
	}
	return time.Duration(c.Core.TimeoutS) * time.Second
}

// Helpers

func getenv(k, def string) string {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		return v
	}
	return def
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "t", "true", "y", "yes", "on":
		return true
	default:
		return false
	}
}

func parseInt(v string, def int) int {
	i, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return i
}

func parseFloat(v string, def float64) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return def
	}
	return f
}

// parseSeconds accepts a Go duration ("90s") or a bare number of seconds.
func parseSeconds(v string, def time.Duration) time.Duration {
	v = strings.TrimSpace(v)
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second
	}
	return def
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
