package config

import (
	"log"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port      string
	DBPath    string
	LogLevel  string
	LogFormat string
	RulesFile string

	ClassifierEndpoint string
	ClassifierTimeout  time.Duration
	LabelsFile         string

	WeatherEndpoint  string
	GeoIPEndpoint    string
	WeatherTimeout   time.Duration
	WeatherCacheSize int
	WeatherCacheTTL  time.Duration
	DefaultLat       float64
	DefaultLon       float64
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[cfg] error loading .env: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	getInt := func(k string, def int) int {
		v, err := strconv.Atoi(get(k, strconv.Itoa(def)))
		if err != nil {
			log.Printf("[cfg] invalid integer for %s, using %d", k, def)
			return def
		}
		return v
	}
	getFloat := func(k string, def float64) float64 {
		s := get(k, "")
		if s == "" {
			return def
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			log.Printf("[cfg] invalid number for %s, using %g", k, def)
			return def
		}
		return v
	}
	getDur := func(k string, def time.Duration) time.Duration {
		v, err := time.ParseDuration(get(k, def.String()))
		if err != nil {
			log.Printf("[cfg] invalid duration for %s, using %s", k, def)
			return def
		}
		return v
	}

	return AppConfig{
		Port:      get("PORT", "8080"),
		DBPath:    get("DB_PATH", "ferti.db"),
		LogLevel:  get("LOG_LEVEL", "info"),
		LogFormat: get("LOG_FORMAT", "json"),
		RulesFile: get("RULES_FILE", ""),

		ClassifierEndpoint: get("CLASSIFIER_ENDPOINT", ""),
		ClassifierTimeout:  getDur("CLASSIFIER_TIMEOUT", 5*time.Second),
		LabelsFile:         get("LABELS_FILE", ""),

		WeatherEndpoint:  get("WEATHER_ENDPOINT", "https://api.open-meteo.com"),
		GeoIPEndpoint:    get("GEOIP_ENDPOINT", "http://ip-api.com"),
		WeatherTimeout:   getDur("WEATHER_TIMEOUT", 5*time.Second),
		WeatherCacheSize: getInt("WEATHER_CACHE_SIZE", 256),
		WeatherCacheTTL:  getDur("WEATHER_CACHE_TTL", 10*time.Minute),
		DefaultLat:       getFloat("DEFAULT_LAT", 20.5937),
		DefaultLon:       getFloat("DEFAULT_LON", 78.9629),
	}
}
