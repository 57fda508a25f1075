package stanza

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Preview serves the built output directory on addr for local authoring.
// This is development tooling only; the deliverable site is the static
// output directory itself.
func Preview(cfg SiteConfig, addr string) error {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			c.Logger().Infof("%s -> %d", v.URI, v.Status)
			return nil
		},
	}))
	e.Static("/", cfg.OutputDir)

	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
