package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/okian/pubgate/internal/config"
	"github.com/okian/pubgate/pkg/logger"
	"github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

func setEnv(vars map[string]string) func() {
	for k, v := range vars {
		_ = os.Setenv(k, v)
	}
	return func() {
		for k := range vars {
			_ = os.Unsetenv(k)
		}
	}
}

func TestMainApplicationIntegration(t *testing.T) {
	convey.Convey("Given a configuration pointing at a fake upstream", t, func() {
		upstreamSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"slip":{"id":1,"advice":"Ship it."}}`))
		}))
		defer upstreamSrv.Close()

		restore := setEnv(map[string]string{
			"PUBGATE_ADDR":                ":9090",
			"PUBGATE_ADVICE_URL":          upstreamSrv.URL,
			"PUBGATE_UPSTREAM_TIMEOUT_MS": "250",
			"PUBGATE_QUOTES_ENABLED":      "false",
		})
		defer restore()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		cfg, err := config.Load(ctx)
		convey.So(err, convey.ShouldBeNil)

		mux, svc := newMux(ctx, cfg, logger.Nop())
		convey.So(svc.Start(ctx), convey.ShouldBeNil)
		defer svc.Stop()

		serve := func(target string) *httptest.ResponseRecorder {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
			return w
		}

		convey.Convey("When the configuration is loaded", func() {
			convey.Convey("Then env overrides are applied", func() {
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.UpstreamTimeout(), convey.ShouldEqual, 250*time.Millisecond)
				convey.So(cfg.QuotesEnabled, convey.ShouldBeFalse)
			})
		})

		convey.Convey("When calling a resource route", func() {
			w := serve("/advice/")

			convey.Convey("Then it is served from the configured upstream", func() {
				convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
				convey.So(strings.TrimSpace(w.Body.String()), convey.ShouldEqual, `{"advice":"Ship it."}`)
			})
		})

		convey.Convey("When calling the operational and docs routes", func() {
			health := serve("/healthz")
			docs := serve("/api-docs")
			spec := serve("/openapi.yaml")
			stats := serve("/stats")

			convey.Convey("Then they are all registered", func() {
				convey.So(health.Code, convey.ShouldEqual, http.StatusOK)
				convey.So(docs.Code, convey.ShouldEqual, http.StatusOK)
				convey.So(spec.Code, convey.ShouldEqual, http.StatusOK)
				convey.So(stats.Code, convey.ShouldEqual, http.StatusOK)
				convey.So(stats.Body.String(), convey.ShouldContainSubstring, `"upstreamTimeoutMs":250`)
			})
		})

		convey.Convey("When quotes are disabled", func() {
			w := serve("/quotes/")

			convey.Convey("Then the route is not registered", func() {
				convey.So(w.Code, convey.ShouldEqual, http.StatusNotFound)
			})
		})
	})
}

func TestMainApplicationComponents(t *testing.T) {
	convey.Convey("Given main application components", t, func() {
		convey.Convey("When the system metrics updater's context ends", func() {
			ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
			defer cancel()

			done := make(chan struct{})
			go func() {
				startSystemMetricsUpdater(ctx)
				close(done)
			}()

			convey.Convey("Then it returns", func() {
				select {
				case <-done:
				case <-time.After(time.Second):
					t.Fatal("system metrics updater did not stop")
				}
			})
		})

		convey.Convey("When testing system metrics update", func() {
			convey.Convey("Then it should update metrics without panicking", func() {
				convey.So(updateSystemMetrics, convey.ShouldNotPanic)
			})
		})
	})
}

func TestMainApplicationErrorHandling(t *testing.T) {
	convey.Convey("Given an invalid upstream timeout", t, func() {
		restore := setEnv(map[string]string{"PUBGATE_UPSTREAM_TIMEOUT_MS": "0"})
		defer restore()

		convey.Convey("Then configuration loading should fail", func() {
			cfg, err := config.Load(context.Background())
			convey.So(err, convey.ShouldNotBeNil)
			convey.So(cfg, convey.ShouldBeNil)
		})
	})
}
