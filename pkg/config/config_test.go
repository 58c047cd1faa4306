package config

import (
	"strings"
	"testing"
	"time"
	"turfly/pkg/logger"
)

func validConfig() *Config {
	return &Config{
		StoreBackend:      StoreMemory,
		MongoURI:          DefaultMongoURI,
		MongoDatabaseName: DefaultMongoDatabaseName,
		MongoConnTimeout:  DefaultMongoConnTimeout,
		Port:              DefaultPort,
		TokenSecret:       DefaultTokenSecret,
		RateLimitRequests: DefaultRateLimitRequests,
		RateLimitWindow:   DefaultRateLimitWindow,
		RequestTimeout:    DefaultRequestTimeout,
		IdempotencyTTL:    DefaultIdempotencyTTL,
		MaxRequestSize:    DefaultMaxRequestSize,
		ReadTimeout:       DefaultReadTimeout,
		WriteTimeout:      DefaultWriteTimeout,
		IdleTimeout:       DefaultIdleTimeout,
		ShutdownTimeout:   DefaultShutdownTimeout,
		SlotLockTTL:       DefaultSlotLockTTL,
		OpeningHour:       DefaultOpeningHour,
		ClosingHour:       DefaultClosingHour,
		PhoneRegions:      []string{DefaultPhoneRegions},
		Log:               logger.Nop(),
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{name: "bad port", mutate: func(c *Config) { c.Port = "0" }, wantErr: "Port"},
		{name: "unknown backend", mutate: func(c *Config) { c.StoreBackend = "redis" }, wantErr: "StoreBackend"},
		{
			name:    "mongo backend needs a mongo uri",
			mutate:  func(c *Config) { c.StoreBackend = StoreMongo; c.MongoURI = "http://x" },
			wantErr: "MongoURI",
		},
		{
			name:   "memory backend ignores mongo uri",
			mutate: func(c *Config) { c.MongoURI = "" },
		},
		{name: "secret not base64", mutate: func(c *Config) { c.TokenSecret = "%%%" }, wantErr: "base64"},
		{name: "secret wrong size", mutate: func(c *Config) { c.TokenSecret = "c2hvcnQ=" }, wantErr: "16, 24 or 32"},
		{name: "closing before opening", mutate: func(c *Config) { c.OpeningHour = 10; c.ClosingHour = 9 }, wantErr: "ClosingHour"},
		{name: "opening out of range", mutate: func(c *Config) { c.OpeningHour = 24 }, wantErr: "OpeningHour"},
		{name: "zero lock ttl", mutate: func(c *Config) { c.SlotLockTTL = 0 }, wantErr: "SlotLockTTL"},
		{name: "no phone regions", mutate: func(c *Config) { c.PhoneRegions = nil }, wantErr: "PhoneRegions"},
		{
			name:    "dlq equals topic",
			mutate:  func(c *Config) { c.EventsEnabled = true; c.BookingEventsTopic = "a"; c.BookingEventsDLQTopic = "a" },
			wantErr: "DLQ",
		},
		{name: "negative timeout", mutate: func(c *Config) { c.RequestTimeout = -time.Second }, wantErr: "RequestTimeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %q", tt.wantErr, err.Error())
			}
		})
	}
}

func TestRedactMongoURI(t *testing.T) {
	got := redactMongoURI("mongodb://admin:hunter2@db:27017")
	if strings.Contains(got, "hunter2") {
		t.Errorf("password leaked: %s", got)
	}
	if got != "mongodb://***:***@db:27017" {
		t.Errorf("unexpected redaction: %s", got)
	}
}

func TestGetEnvList(t *testing.T) {
	t.Setenv(EnvPhoneRegions, " bd, in ,,us")
	got := getEnvList(EnvPhoneRegions, DefaultPhoneRegions)
	want := []string{"BD", "IN", "US"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv(EnvEventsEnabled, "true")
	if !getEnvBool(EnvEventsEnabled, false) {
		t.Error("expected true")
	}
	t.Setenv(EnvEventsEnabled, "nope")
	if getEnvBool(EnvEventsEnabled, false) {
		t.Error("unparseable value should fall back")
	}
}
