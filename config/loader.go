package config

import (
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// AppConfig is the runtime configuration: defaults, overridden by an
// optional config.yml, overridden by environment variables.
type AppConfig struct {
	Env                  string `yaml:"env"`
	StationsAPIBaseURL   string `yaml:"stationsAPIBaseURL" validate:"required,url"`
	CacheTTLMS           int    `yaml:"cacheTTLMS" validate:"gte=0"`
	RedisAddr            string `yaml:"redisAddr" validate:"required"`
	RedisPassword        string `yaml:"redisPassword"`
	RedisDB              int    `yaml:"redisDB" validate:"gte=0"`
	HTTPPort             int    `yaml:"httpPort" validate:"gt=0"`
	TimeZone             string `yaml:"timeZone" validate:"required"`
	RefresherScheduleMin int    `yaml:"refresherScheduleMinutes" validate:"gte=0"`
	RefresherStartDate   string `yaml:"refresherStartDate"`
	WeekChartOutput      string `yaml:"weekChartOutput"`
}

// Load builds the AppConfig from defaults, an optional config.yml in the
// project root, and environment overrides, then validates it.
func Load() (*AppConfig, error) {
	cfg := &AppConfig{
		Env:                  "prod",
		StationsAPIBaseURL:   STATIONS_API_BASE_URL_DEFAULT,
		CacheTTLMS:           CACHE_TTL_MS_DEFAULT,
		RedisAddr:            REDIS_DB_ADDRESS,
		RedisPassword:        REDIS_DB_PASSWORD,
		RedisDB:              REDIS_DB,
		HTTPPort:             HTTP_PORT_DEFAULT,
		TimeZone:             TIME_ZONE_DEFAULT,
		RefresherScheduleMin: BOOKINGS_REFRESHER_SCHEDULE_MINUTES_DEFAULT,
		WeekChartOutput:      WEEK_CHART_OUTPUT_DEFAULT,
	}

	if data, err := os.ReadFile("config.yml"); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	cfg.Env = envStr("RB_ENV", cfg.Env)
	cfg.StationsAPIBaseURL = envStr("RB_STATIONS_API_URL", cfg.StationsAPIBaseURL)
	cfg.CacheTTLMS = envInt("RB_CACHE_TTL_MS", cfg.CacheTTLMS)
	cfg.RedisAddr = envStr("RB_REDIS_ADDR", cfg.RedisAddr)
	cfg.RedisPassword = envStr("RB_REDIS_PASSWORD", cfg.RedisPassword)
	cfg.RedisDB = envInt("RB_REDIS_DB", cfg.RedisDB)
	cfg.HTTPPort = envInt("RB_HTTP_PORT", cfg.HTTPPort)
	cfg.TimeZone = envStr("RB_TIME_ZONE", cfg.TimeZone)
	cfg.RefresherScheduleMin = envInt("RB_REFRESHER_MINUTES", cfg.RefresherScheduleMin)
	cfg.RefresherStartDate = envStr("RB_REFRESHER_START_DATE", cfg.RefresherStartDate)
	cfg.WeekChartOutput = envStr("RB_WEEK_CHART_OUTPUT", cfg.WeekChartOutput)

	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
