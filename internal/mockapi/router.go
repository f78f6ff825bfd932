package mockapi

import "github.com/labstack/echo/v4"

// registerRoutes wires the mock's endpoints. Paths mirror the hosted
// backend exactly, trailing slashes included.
func registerRoutes(e *echo.Echo, h *handler) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	// Public auth surface.
	e.POST("/token", h.Token)
	e.POST("/users/", h.Register)
	e.POST("/forgot-password-otp", h.ForgotPassword)
	e.POST("/reset-password-otp", h.ResetPassword)
	e.POST("/submit-feedback/", h.SubmitFeedback)

	// Everything else requires a bearer token.
	authed := e.Group("", h.requireAuth)
	{
		authed.GET("/users/me/", h.Me)
		authed.POST("/analyze-plant/", h.AnalyzePlant)
		authed.POST("/log-diagnosis/", h.LogDiagnosis)
		authed.GET("/history/me/", h.History)
		authed.GET("/calculate-impact/", h.CalculateImpact)
		authed.GET("/get-hotspots/", h.Hotspots)
	}
}
