package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	DB        DBConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Booking   BookingConfig
	Assistant AssistantConfig
	Contact   ContactConfig
}

type AppConfig struct {
	Port string
	Env  string
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

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

// BookingConfig holds the scheduling defaults used when a doctor carries no
// working-hours override of their own.
type BookingConfig struct {
	// SlotMinutes is the default appointment duration and slot step.
	SlotMinutes int
	// DayStart/DayEnd bound the default Monday-Friday template (HH:MM).
	DayStart string
	DayEnd   string
	// AvailabilityCacheTTL / FeedCacheTTL bound how stale cached slot lists
	// and iCal documents may get.
	AvailabilityCacheTTL time.Duration
	FeedCacheTTL         time.Duration
	// ICalHost is the host token appended to calendar event UIDs.
	ICalHost string
}

// AssistantConfig points the chat widget proxy at an external
// text-completion endpoint. An empty Endpoint disables the feature.
type AssistantConfig struct {
	Endpoint string
	APIKey   string
	Model    string
	Timeout  time.Duration
}

// ContactConfig is the center's public contact information.
type ContactConfig struct {
	Email string
	Phone string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Environment-only deployments carry no .env file.
	_ = viper.ReadInConfig()

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	refreshExpiry, err := time.ParseDuration(viper.GetString("JWT_REFRESH_EXPIRY"))
	if err != nil {
		refreshExpiry = 7 * 24 * time.Hour
	}

	slotMinutes := viper.GetInt("BOOKING_SLOT_MINUTES")
	if slotMinutes <= 0 {
		slotMinutes = 30
	}

	dayStart := viper.GetString("BOOKING_DAY_START")
	if dayStart == "" {
		dayStart = "09:00"
	}
	dayEnd := viper.GetString("BOOKING_DAY_END")
	if dayEnd == "" {
		dayEnd = "17:00"
	}

	availabilityTTL := viper.GetDuration("BOOKING_AVAILABILITY_CACHE_TTL")
	if availabilityTTL <= 0 {
		availabilityTTL = 30 * time.Second
	}
	feedTTL := viper.GetDuration("BOOKING_FEED_CACHE_TTL")
	if feedTTL <= 0 {
		feedTTL = time.Minute
	}

	icalHost := viper.GetString("ICAL_HOST")
	if icalHost == "" {
		icalHost = "pharmacenter"
	}

	assistantTimeout := viper.GetDuration("ASSISTANT_TIMEOUT")
	if assistantTimeout <= 0 {
		assistantTimeout = 20 * time.Second
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
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
		JWT: JWTConfig{
			Secret:        viper.GetString("JWT_SECRET"),
			AccessExpiry:  accessExpiry,
			RefreshExpiry: refreshExpiry,
		},
		Booking: BookingConfig{
			SlotMinutes:          slotMinutes,
			DayStart:             dayStart,
			DayEnd:               dayEnd,
			AvailabilityCacheTTL: availabilityTTL,
			FeedCacheTTL:         feedTTL,
			ICalHost:             icalHost,
		},
		Assistant: AssistantConfig{
			Endpoint: viper.GetString("ASSISTANT_ENDPOINT"),
			APIKey:   viper.GetString("ASSISTANT_API_KEY"),
			Model:    viper.GetString("ASSISTANT_MODEL"),
			Timeout:  assistantTimeout,
		},
		Contact: ContactConfig{
			Email: viper.GetString("CONTACT_EMAIL"),
			Phone: viper.GetString("CONTACT_PHONE"),
		},
	}

	return config, nil
}
