package config_test

import (
	"errors"
	"testing"

	"github.com/okian/quickmed/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
			convey.So(cfg.StoreDriver, convey.ShouldEqual, "sqlite")
			convey.So(cfg.LogFormat, convey.ShouldEqual, config.LogFormatConsole)
			convey.So(cfg.StoreDSN, convey.ShouldBeEmpty)
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})
	})
}

func TestConfig_Validate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
		ok     bool
	}{
		{"memory store", func(c *config.Config) { c.StoreDriver = "memory" }, true},
		{"postgres with dsn", func(c *config.Config) { c.StoreDriver = "postgres"; c.StoreDSN = "host=db" }, true},
		{"postgres without dsn", func(c *config.Config) { c.StoreDriver = "postgres"; c.StoreDSN = "" }, false},
		{"unknown driver", func(c *config.Config) { c.StoreDriver = "mongo" }, false},
		{"empty addr", func(c *config.Config) { c.Addr = "" }, false},
		{"bad level", func(c *config.Config) { c.LogLevel = "loud" }, false},
		{"warn level", func(c *config.Config) { c.LogLevel = "warn" }, true},
		{"panic level", func(c *config.Config) { c.LogLevel = "panic" }, false},
		{"fatal level", func(c *config.Config) { c.LogLevel = "fatal" }, false},
		{"json format", func(c *config.Config) { c.LogFormat = "json" }, true},
		{"xml format", func(c *config.Config) { c.LogFormat = "xml" }, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.New()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.ok && err != nil {
				t.Fatalf("Validate() = %v, want nil", err)
			}
			if !tc.ok && !errors.Is(err, config.ErrInvalidConfig) {
				t.Fatalf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}
