package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	ContentFile string        // path to a content YAML file (empty = embedded default)
	CacheMaxAge time.Duration // Cache-Control max-age on page responses

	RateBurst         int           // per-IP burst on page routes
	RateRefillPerMin  int           // per-IP tokens refilled per minute
	RateMaxEntries    int           // tracked client cap before an early sweep
	RateIdleTTL       time.Duration // forget clients idle for longer than this
	RateSweepInterval time.Duration // how often idle clients are swept
	RequestTimeout    time.Duration // per-request handler deadline

	// Redis page cache (disabled when RedisAddr is empty)
	RedisAddr             string        // ex: "localhost:6379"
	RedisUser             string        // optional
	RedisPassword         string        // optional
	RedisPasswordRequired bool          // true => require password when the cache is enabled
	RedisDB               int           // Redis DB number
	RedisDT               time.Duration // Redis dial timeout (ex: 5s)
	RedisRT               time.Duration // Redis read timeout (ex: 3s)
	RedisWT               time.Duration // Redis write timeout (ex: 3s)
	RedisMaxWait          time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout      time.Duration // timeout for each ping attempt (ex: 5s)
	RedisPoolSize         int           // Redis connection pool size
	RedisConnectTimeout   time.Duration // Total time to retry connecting (ex: 30s)
	RedisRetryInterval    time.Duration // Initial wait between retries (ex: 2s, grows exponentially)
	RedisWarnThreshold    int           // warn after this many attempts
	PageCacheTTL          time.Duration // lifetime of a cached page body

	AllowedHosts []string // optional, restrict access to specific Host headers
	AllowedCIDRS []string // optional, restrict access to ops endpoints (e.g. "1.2.3.4, 10.0.0.0/8")
	TrustProxy   bool     // true => trust X-Forwarded-For headers (e.g. cloudflared)
}

// RedisEnabled reports whether a page cache address was configured.
func (c *Config) RedisEnabled() bool { return c.RedisAddr != "" }

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      normalizePort(getenv("SITE_LISTEN_PORT", ":8080")),
		ShutdownTimeout: mustDuration("SITE_SHUTDOWN_TIMEOUT", 5*time.Second),
		RequestTimeout:  mustDuration("SITE_REQUEST_TIMEOUT", 2*time.Second),

		// Logging
		LogLevel:  getenv("SITE_LOG_LEVEL", "info"),
		PrettyLog: mustBool("SITE_PRETTY_LOG", true),

		// Content
		ContentFile: getenv("SITE_CONTENT_FILE", ""),
		CacheMaxAge: mustDuration("SITE_CACHE_MAX_AGE", 5*time.Minute),

		// Rate limiting
		RateBurst:         getenvInt("SITE_RATE_BURST", 60),
		RateRefillPerMin:  getenvInt("SITE_RATE_REFILL_PER_MIN", 120),
		RateMaxEntries:    getenvInt("SITE_RATE_MAX_ENTRIES", 10000),
		RateIdleTTL:       mustDuration("SITE_RATE_IDLE_TTL", 15*time.Minute),
		RateSweepInterval: mustDuration("SITE_RATE_SWEEP_INTERVAL", time.Minute),

		// Redis settings
		RedisAddr:             getenv("SITE_REDIS_ADDR", ""),
		RedisUser:             getenv("SITE_REDIS_USERNAME", "default"),
		RedisPasswordRequired: mustBool("SITE_REDIS_PASSWORD_REQUIRED", false),
		RedisPassword:         getenv("SITE_REDIS_PASSWORD", ""),
		RedisDB:               getenvInt("SITE_REDIS_DB", 0),
		RedisDT:               mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:               mustDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:               mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisMaxWait:          mustDuration("REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:      mustDuration("REDIS_PING_TIMEOUT", 5*time.Second),
		RedisPoolSize:         getenvInt("REDIS_POOL_SIZE", 10),
		RedisConnectTimeout:   mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:    mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisWarnThreshold:    getenvInt("REDIS_WARN_THRESHOLD", 3),
		PageCacheTTL:          mustDuration("SITE_PAGE_CACHE_TTL", time.Hour),

		// Access restrictions
		AllowedHosts: splitAndTrim(getenv("SITE_ALLOWED_HOSTS", "")),
		AllowedCIDRS: parseAllowedIPs(getenv("SITE_ALLOWED_CIDRS", "")),
		TrustProxy:   mustBool("SITE_TRUST_PROXY", false),
	}

	if err := cfg.validate(); err != nil {
		panic(fmt.Sprintf("❌ FATAL: %v", err))
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		cfgCopy.RedisPassword = "***REDACTED***"
		if cfg.RedisUser != "" {
			cfgCopy.RedisUser = "***REDACTED***"
		}
		log.Printf("[DEBUG] cfg: %+v\n", cfgCopy)
	}

	return cfg
}

func (c *Config) validate() error {
	if c.RedisEnabled() && c.RedisPasswordRequired && c.RedisPassword == "" {
		return fmt.Errorf("SITE_REDIS_PASSWORD is required when SITE_REDIS_PASSWORD_REQUIRED=true")
	}
	if c.RedisDB < 0 {
		return fmt.Errorf("SITE_REDIS_DB must be >= 0, got %d", c.RedisDB)
	}
	if c.CacheMaxAge < 0 {
		return fmt.Errorf("SITE_CACHE_MAX_AGE must be >= 0, got %v", c.CacheMaxAge)
	}
	return nil
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

// normalizePort accepts "8080" as shorthand for ":8080".
func normalizePort(p string) string {
	if _, err := strconv.Atoi(p); err == nil {
		return ":" + p
	}
	return p
}

func parseAllowedIPs(allowed string) []string {
	if allowed == "" {
		return nil
	}
	ips := make([]string, 0, 4)
	for _, ip := range splitAndTrim(allowed) {
		if ip != "" {
			ips = append(ips, ip)
		}
	}
	return ips
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
