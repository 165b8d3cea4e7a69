package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	appBilling "github.com/TaskGlass/dreamvault/pkg/app/billing"
	billingMocks "github.com/TaskGlass/dreamvault/pkg/app/billing/mocks"
	appContent "github.com/TaskGlass/dreamvault/pkg/app/content"
	contentMocks "github.com/TaskGlass/dreamvault/pkg/app/content/mocks"
	appDream "github.com/TaskGlass/dreamvault/pkg/app/dream"
	dreamMocks "github.com/TaskGlass/dreamvault/pkg/app/dream/mocks"
	appInterpretation "github.com/TaskGlass/dreamvault/pkg/app/interpretation"
	interpretationMocks "github.com/TaskGlass/dreamvault/pkg/app/interpretation/mocks"
	appUsage "github.com/TaskGlass/dreamvault/pkg/app/usage"
	usageMocks "github.com/TaskGlass/dreamvault/pkg/app/usage/mocks"
	"github.com/TaskGlass/dreamvault/pkg/common"
	"github.com/TaskGlass/dreamvault/pkg/domain"
	domainDream "github.com/TaskGlass/dreamvault/pkg/domain/dream"
	handlers "github.com/TaskGlass/dreamvault/pkg/handlers/http"
	"github.com/TaskGlass/dreamvault/pkg/plan"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// appWithUser routes method+path to handler with an authenticated test user.
func appWithUser(method, path string, handler handlers.Handler) *fiber.App {
	app := fiber.New()
	app.Add(method, path, func(c *fiber.Ctx) error {
		c.Locals(common.UserIDContextKey, "user-1")
		return handler.Handle(c)
	})
	return app
}

func jsonBody(t *testing.T, v interface{}) *bytes.Reader {
	t.Helper()
	raw, err := json.Marshal(v)
	assert.NoError(t, err)
	return bytes.NewReader(raw)
}

func TestCreateDreamHandler(t *testing.T) {
	creator := dreamMocks.NewCreator(t)
	app := appWithUser(fiber.MethodPost, "/api/v1/dreams", handlers.NewCreateDreamHandler(quietLogger(), creator))

	id := uuid.New()
	creator.On("Create", mock.Anything, "user-1", appDream.CreateInput{
		Title:   "Falling",
		Content: "I fell through clouds.",
	}).Return(&domainDream.Dream{ID: id, UserID: "user-1", Title: "Falling"}, nil)

	req := httptest.NewRequest(fiber.MethodPost, "/api/v1/dreams", jsonBody(t, map[string]string{
		"title":   "Falling",
		"content": "I fell through clouds.",
	}))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestCreateDreamHandler_EmptyContent(t *testing.T) {
	creator := dreamMocks.NewCreator(t)
	app := appWithUser(fiber.MethodPost, "/api/v1/dreams", handlers.NewCreateDreamHandler(quietLogger(), creator))

	creator.On("Create", mock.Anything, "user-1", mock.Anything).
		Return(nil, domain.ErrEmptyDreamText)

	req := httptest.NewRequest(fiber.MethodPost, "/api/v1/dreams", jsonBody(t, map[string]string{"content": ""}))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestInterpretDreamHandler_Success(t *testing.T) {
	interpreter := interpretationMocks.NewInterpreter(t)
	app := appWithUser(fiber.MethodPost, "/api/v1/dreams/:dream_id/interpretation",
		handlers.NewInterpretDreamHandler(quietLogger(), interpreter))

	id := uuid.New()
	interpreter.On("Interpret", mock.Anything, "user-1", id).Return(&appInterpretation.Outcome{
		Interpretation: "A symbol of release.",
		Quota:          &appUsage.Result{Allowed: true, Remaining: 3, Plan: plan.DreamLite, Limit: 5},
	}, nil)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/api/v1/dreams/"+id.String()+"/interpretation", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var outcome appInterpretation.Outcome
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&outcome))
	assert.Equal(t, "A symbol of release.", outcome.Interpretation)
	assert.Equal(t, 3, outcome.Quota.Remaining)
}

func TestInterpretDreamHandler_QuotaExhausted(t *testing.T) {
	interpreter := interpretationMocks.NewInterpreter(t)
	app := appWithUser(fiber.MethodPost, "/api/v1/dreams/:dream_id/interpretation",
		handlers.NewInterpretDreamHandler(quietLogger(), interpreter))

	id := uuid.New()
	interpreter.On("Interpret", mock.Anything, "user-1", id).Return(&appInterpretation.Outcome{
		Quota: &appUsage.Result{Allowed: false, Plan: plan.DreamLite, Limit: 5},
	}, domain.ErrQuotaExceeded)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/api/v1/dreams/"+id.String()+"/interpretation", nil))
	assert.NoError(t, err)

	// Quota exhaustion must not share the rate limiter's 429: clients show an
	// upgrade prompt on quota_exceeded and retry on rate limiting.
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	var body map[string]interface{}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, handlers.CodeQuotaExceeded, body["code"])
	assert.NotNil(t, body["quota"])
}

func TestGetMoonPhaseHandler_QuotaExhausted(t *testing.T) {
	moon := contentMocks.NewMoonReader(t)
	app := appWithUser(fiber.MethodGet, "/api/v1/moon-phase",
		handlers.NewGetMoonPhaseHandler(quietLogger(), moon))

	moon.On("CurrentPhase", mock.Anything, "user-1").Return(&appContent.MoonPhase{
		Quota: &appUsage.Result{Allowed: false, Plan: plan.DreamLite, Limit: 30},
	}, domain.ErrQuotaExceeded)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/moon-phase", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	var body map[string]interface{}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, handlers.CodeQuotaExceeded, body["code"])
}

func TestInterpretDreamHandler_BadID(t *testing.T) {
	interpreter := interpretationMocks.NewInterpreter(t)
	app := appWithUser(fiber.MethodPost, "/api/v1/dreams/:dream_id/interpretation",
		handlers.NewInterpretDreamHandler(quietLogger(), interpreter))

	resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/api/v1/dreams/not-a-uuid/interpretation", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	interpreter.AssertNotCalled(t, "Interpret")
}

func TestGetHoroscopeHandler_InvalidSign(t *testing.T) {
	horoscoper := contentMocks.NewHoroscoper(t)
	app := appWithUser(fiber.MethodGet, "/api/v1/horoscope/:sign",
		handlers.NewGetHoroscopeHandler(quietLogger(), horoscoper))

	horoscoper.On("DailyHoroscope", mock.Anything, "user-1", "dragon").
		Return(nil, domain.ErrInvalidZodiac)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/horoscope/dragon", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetMoonPhaseHandler(t *testing.T) {
	moon := contentMocks.NewMoonReader(t)
	app := appWithUser(fiber.MethodGet, "/api/v1/moon-phase",
		handlers.NewGetMoonPhaseHandler(quietLogger(), moon))

	moon.On("CurrentPhase", mock.Anything, "user-1").Return(&appContent.MoonPhase{
		Phase:        "full moon",
		Illumination: 0.996,
		Quota:        &appUsage.Result{Allowed: true, Remaining: 29, Plan: plan.DreamLite, Limit: 30},
	}, nil)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/moon-phase", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestGetUsageHandler(t *testing.T) {
	reader := usageMocks.NewReader(t)
	app := appWithUser(fiber.MethodGet, "/api/v1/usage",
		handlers.NewGetUsageHandler(quietLogger(), reader))

	reader.On("Current", mock.Anything, "user-1").Return(&appUsage.Snapshot{
		Plan: plan.DreamLite,
		Usage: map[plan.Feature]appUsage.FeatureUsage{
			plan.FeatureDreamInterpretation: {Used: 2, Limit: 5, Remaining: 3},
		},
	}, nil)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/usage", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestResetUsageHandler_Forbidden(t *testing.T) {
	resetter := usageMocks.NewResetter(t)
	app := appWithUser(fiber.MethodPost, "/api/v1/usage/reset",
		handlers.NewResetUsageHandler(quietLogger(), resetter))

	resetter.On("Reset", mock.Anything, "user-1").Return(domain.ErrResetForbidden)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/api/v1/usage/reset", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestResetUsageHandler_Development(t *testing.T) {
	resetter := usageMocks.NewResetter(t)
	app := appWithUser(fiber.MethodPost, "/api/v1/usage/reset",
		handlers.NewResetUsageHandler(quietLogger(), resetter))

	resetter.On("Reset", mock.Anything, "user-1").Return(nil)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/api/v1/usage/reset", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestBillingCheckoutHandler_PlanNotPurchasable(t *testing.T) {
	starter := billingMocks.NewCheckoutStarter(t)
	app := appWithUser(fiber.MethodPost, "/api/v1/billing/checkout",
		handlers.NewBillingCheckoutHandler(quietLogger(), starter))

	starter.On("StartCheckout", mock.Anything, "user-1", "Dream Lite").
		Return("", appBilling.ErrPlanNotPurchasable)

	req := httptest.NewRequest(fiber.MethodPost, "/api/v1/billing/checkout",
		jsonBody(t, map[string]string{"plan": "Dream Lite"}))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestStripeWebhookHandler_MissingSignature(t *testing.T) {
	processor := billingMocks.NewWebhookProcessor(t)
	app := fiber.New()
	app.Post("/api/v1/billing/webhook", handlers.NewStripeWebhookHandler(quietLogger(), processor).Handle)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/api/v1/billing/webhook", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	processor.AssertNotCalled(t, "ProcessWebhook")
}

func TestStripeWebhookHandler_ProcessesEvent(t *testing.T) {
	processor := billingMocks.NewWebhookProcessor(t)
	app := fiber.New()
	app.Post("/api/v1/billing/webhook", handlers.NewStripeWebhookHandler(quietLogger(), processor).Handle)

	processor.On("ProcessWebhook", mock.Anything, []byte(`{}`), "sig").Return(nil)

	req := httptest.NewRequest(fiber.MethodPost, "/api/v1/billing/webhook", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Stripe-Signature", "sig")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
