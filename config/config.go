package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	DB        DBConfig
	Redis     RedisConfig
	Booking   BookingConfig
	MagicLink MagicLinkConfig
}

type AppConfig struct {
	Port          string
	Env           string
	AllowedOrigin string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// BookingConfig holds the engine-wide scheduling knobs.
type BookingConfig struct {
	SlotStepMinutes int           // granularity of generated slot start times
	LeadTime        time.Duration // minimum notice before a slot becomes unbookable
	HoldTTL         time.Duration // lifetime of a redis slot hold during booking
	SyncTimeout     time.Duration // upper bound on a best-effort calendar resync
}

type MagicLinkConfig struct {
	Secret string
	Expiry time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	stepMinutes := viper.GetInt("BOOKING_SLOT_STEP_MINUTES")
	if stepMinutes <= 0 {
		stepMinutes = 15
	}

	leadTime, err := time.ParseDuration(viper.GetString("BOOKING_LEAD_TIME"))
	if err != nil {
		leadTime = 15 * time.Minute
	}

	holdTTL, err := time.ParseDuration(viper.GetString("BOOKING_HOLD_TTL"))
	if err != nil {
		holdTTL = 10 * time.Second
	}

	syncTimeout, err := time.ParseDuration(viper.GetString("CALENDAR_SYNC_TIMEOUT"))
	if err != nil {
		syncTimeout = 5 * time.Second
	}

	magicLinkExpiry, err := time.ParseDuration(viper.GetString("MAGIC_LINK_EXPIRY"))
	if err != nil {
		magicLinkExpiry = 24 * time.Hour
	}

	config := &Config{
		App: AppConfig{
			Port:          viper.GetString("APP_PORT"),
			Env:           viper.GetString("APP_ENV"),
			AllowedOrigin: viper.GetString("APP_ALLOWED_ORIGIN"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Booking: BookingConfig{
			SlotStepMinutes: stepMinutes,
			LeadTime:        leadTime,
			HoldTTL:         holdTTL,
			SyncTimeout:     syncTimeout,
		},
		MagicLink: MagicLinkConfig{
			Secret: viper.GetString("MAGIC_LINK_SECRET"),
			Expiry: magicLinkExpiry,
		},
	}

	return config, nil
}
