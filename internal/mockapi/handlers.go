package mockapi

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"agrodoctor/internal/domain/entity"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// detail writes the backend's error shape: a single human-readable field.
func detail(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]string{"detail": message})
}

// handler serves all mock endpoints.
type handler struct {
	store    *Store
	tokens   *tokenService
	logger   *slog.Logger
	validate *validator.Validate
}

func newHandler(store *Store, tokens *tokenService, logger *slog.Logger) *handler {
	return &handler{
		store:    store,
		tokens:   tokens,
		logger:   logger,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// requireAuth validates the bearer token and stores the subject username
// on the context.
func (h *handler) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if authHeader == "" || tokenString == authHeader {
			return detail(c, http.StatusUnauthorized, "Not authenticated")
		}

		username, err := h.tokens.Parse(tokenString)
		if err != nil {
			return detail(c, http.StatusUnauthorized, "Could not validate credentials")
		}

		c.Set("username", username)

		return next(c)
	}
}

// Token exchanges form credentials for a bearer token.
func (h *handler) Token(c echo.Context) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	if !h.store.Authenticate(username, password) {
		return detail(c, http.StatusUnauthorized, "Incorrect username or password")
	}

	token, err := h.tokens.Issue(username)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"access_token": token,
		"token_type":   "bearer",
	})
}

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

// Register creates an account.
func (h *handler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return detail(c, http.StatusBadRequest, "Invalid registration input")
	}
	if err := h.validate.Struct(&req); err != nil {
		return detail(c, http.StatusBadRequest, "Invalid registration input")
	}

	if err := h.store.CreateUser(req.Name, req.Email, req.Username, req.Password); err != nil {
		switch {
		case errors.Is(err, errUsernameTaken):
			return detail(c, http.StatusBadRequest, "Username already registered")
		case errors.Is(err, errEmailTaken):
			return detail(c, http.StatusBadRequest, "Email already registered")
		default:
			return errors.WithStack(err)
		}
	}

	return c.JSON(http.StatusCreated, map[string]string{
		"name":     req.Name,
		"email":    req.Email,
		"username": req.Username,
	})
}

// Me returns the authenticated user's profile.
func (h *handler) Me(c echo.Context) error {
	username, _ := c.Get("username").(string)

	profile, err := h.store.Profile(username)
	if err != nil {
		return detail(c, http.StatusNotFound, "User not found")
	}

	return c.JSON(http.StatusOK, profile)
}

// ForgotPassword issues an OTP for the account behind the email query
// parameter. The mock logs the OTP instead of mailing it.
func (h *handler) ForgotPassword(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return detail(c, http.StatusBadRequest, "Email is required")
	}

	otp := fmt.Sprintf("%06d", len(email)*7919%1000000)
	if err := h.store.IssueOTP(email, otp); err != nil {
		return detail(c, http.StatusNotFound, "User with this email does not exist")
	}

	h.logger.Info("issued password reset otp", slog.String("email", email), slog.String("otp", otp))

	return c.JSON(http.StatusOK, map[string]string{"message": "OTP sent to your email"})
}

// ResetPassword consumes the OTP and sets the new password.
func (h *handler) ResetPassword(c echo.Context) error {
	email := c.QueryParam("email")
	otp := c.QueryParam("otp")
	newPassword := c.QueryParam("new_password")

	if email == "" || otp == "" || newPassword == "" {
		return detail(c, http.StatusBadRequest, "Email, OTP and new password are required")
	}

	if err := h.store.ResetPassword(email, otp, newPassword); err != nil {
		return detail(c, http.StatusBadRequest, "Invalid OTP")
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Password reset successful"})
}

// verdicts is the canned model output. The upload's byte sum picks one, so
// the same image always yields the same diagnosis.
var verdicts = []entity.Analysis{
	{DiseaseName: "Tomato Late Blight", Confidence: "97.2%", Severity: 62.5},
	{DiseaseName: "Wheat Leaf Rust", Confidence: "91.8%", Severity: 41.3},
	{DiseaseName: "Rice Blast", Confidence: "88.5%", Severity: 74.9},
	{DiseaseName: "Potato Early Blight", Confidence: "95.1%", Severity: 27.6},
	{DiseaseName: "Healthy Leaf", Confidence: "99.0%", Severity: 2.0},
}

// AnalyzePlant accepts the leaf upload and returns a deterministic verdict.
func (h *handler) AnalyzePlant(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return detail(c, http.StatusBadRequest, "No file uploaded")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "open upload")
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return errors.Wrap(err, "read upload")
	}

	var sum int
	for _, b := range content {
		sum += int(b)
	}
	verdict := verdicts[sum%len(verdicts)]

	h.logger.Info("analyzed leaf image",
		slog.String("filename", fileHeader.Filename),
		slog.String("disease", verdict.DiseaseName))

	return c.JSON(http.StatusOK, verdict)
}

type logDiagnosisRequest struct {
	DiseaseName string  `json:"disease_name" validate:"required"`
	Severity    float64 `json:"severity"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

// LogDiagnosis appends a record to the user's history.
func (h *handler) LogDiagnosis(c echo.Context) error {
	var req logDiagnosisRequest
	if err := c.Bind(&req); err != nil {
		return detail(c, http.StatusBadRequest, "Invalid diagnosis input")
	}
	if err := h.validate.Struct(&req); err != nil {
		return detail(c, http.StatusBadRequest, "Invalid diagnosis input")
	}

	username, _ := c.Get("username").(string)
	record := entity.Diagnosis{
		DiseaseName: req.DiseaseName,
		Severity:    req.Severity,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	}
	if err := h.store.AppendDiagnosis(username, record); err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Diagnosis logged"})
}

// History lists the authenticated user's records.
func (h *handler) History(c echo.Context) error {
	username, _ := c.Get("username").(string)

	records, err := h.store.History(username)
	if err != nil {
		return errors.WithStack(err)
	}
	if records == nil {
		records = []entity.Diagnosis{}
	}

	return c.JSON(http.StatusOK, records)
}

// lossFactors maps disease keywords to yield-loss fractions per severity
// point. Unknown diseases fall back to a moderate factor.
var lossFactors = []struct {
	keyword string
	factor  float64
}{
	{"blight", 0.55},
	{"blast", 0.60},
	{"rust", 0.45},
	{"mildew", 0.40},
	{"healthy", 0.0},
}

const (
	defaultLossFactor = 0.40

	// INR per hectare per yield-loss point, spanning market price spread.
	lossPerPointMin = 350.0
	lossPerPointMax = 520.0
)

// CalculateImpact estimates the economic loss for a verdict.
func (h *handler) CalculateImpact(c echo.Context) error {
	diseaseName := c.QueryParam("disease_name")
	severity, err := strconv.ParseFloat(c.QueryParam("severity"), 64)
	if diseaseName == "" || err != nil {
		return detail(c, http.StatusBadRequest, "Disease name and severity are required")
	}

	factor := defaultLossFactor
	lowered := strings.ToLower(diseaseName)
	for _, entry := range lossFactors {
		if strings.Contains(lowered, entry.keyword) {
			factor = entry.factor

			break
		}
	}

	yieldLoss := severity * factor

	return c.JSON(http.StatusOK, entity.ImpactReport{
		DiseaseName:               diseaseName,
		YieldLossPercentage:       yieldLoss,
		PotentialFinancialLossMin: yieldLoss * lossPerPointMin,
		PotentialFinancialLossMax: yieldLoss * lossPerPointMax,
	})
}

// Hotspots lists the outbreak aggregates.
func (h *handler) Hotspots(c echo.Context) error {
	return c.JSON(http.StatusOK, h.store.Hotspots())
}

type feedbackRequest struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

// SubmitFeedback stores a feedback message.
func (h *handler) SubmitFeedback(c echo.Context) error {
	var req feedbackRequest
	if err := c.Bind(&req); err != nil {
		return detail(c, http.StatusBadRequest, "Invalid feedback input")
	}
	if err := h.validate.Struct(&req); err != nil {
		return detail(c, http.StatusBadRequest, "Invalid feedback input")
	}

	h.store.AddFeedback(req.Name, req.Email, req.Message)

	return c.JSON(http.StatusOK, map[string]string{"message": "Feedback received"})
}
