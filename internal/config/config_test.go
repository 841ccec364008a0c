package config_test

import (
	"context"
	"testing"
	"time"

	"github.com/okian/pubgate/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New(context.Background())

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":8000")
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.UpstreamTimeoutMS, convey.ShouldEqual, 5000)
			convey.So(cfg.UpstreamTimeout(), convey.ShouldEqual, 5*time.Second)
			convey.So(cfg.QuotesEnabled, convey.ShouldBeTrue)
			convey.So(cfg.CountryURL, convey.ShouldEqual, config.DefaultCountryURL)
		})

		convey.Convey("And the defaults should validate", func() {
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})
	})
}
