package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_DSN_PRIMARY", "")
	t.Setenv("PORT", "")
	t.Setenv("CORS_ORIGINS", "")
	t.Setenv("RABBIT_URL", "")
	t.Setenv("SHUTDOWN_GRACE", "")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.DBDSN != "file:shop.db?_pragma=foreign_keys(1)" {
		t.Errorf("DBDSN = %q", cfg.DBDSN)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Errorf("CORSOrigins = %v", cfg.CORSOrigins)
	}
	if cfg.RabbitURL != "" {
		t.Errorf("RabbitURL = %q", cfg.RabbitURL)
	}
	if cfg.ShutdownGrace != 10*time.Second {
		t.Errorf("ShutdownGrace = %v", cfg.ShutdownGrace)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("DB_DSN_PRIMARY", "u:p@tcp(db:3306)/shop?parseTime=true")
	t.Setenv("PORT", "9090")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test ,")
	t.Setenv("SHUTDOWN_GRACE", "3s")

	cfg := Load()
	if cfg.Port != "9090" || cfg.DBDriver != DriverMySQL {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.DBDSN != "u:p@tcp(db:3306)/shop?parseTime=true" {
		t.Errorf("DBDSN = %q", cfg.DBDSN)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "http://b.test" {
		t.Errorf("CORSOrigins = %v", cfg.CORSOrigins)
	}
	if cfg.ShutdownGrace != 3*time.Second {
		t.Errorf("ShutdownGrace = %v", cfg.ShutdownGrace)
	}
}

func TestGetDurationInvalid(t *testing.T) {
	t.Setenv("SOME_GRACE", "soon")
	if d := getDuration("SOME_GRACE", time.Minute); d != time.Minute {
		t.Errorf("got %v, want default", d)
	}
}
