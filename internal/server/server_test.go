package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VNoormal7/NeedsConnectV2/internal/auth"
	"github.com/VNoormal7/NeedsConnectV2/internal/basket"
	"github.com/VNoormal7/NeedsConnectV2/internal/kv"
	"github.com/VNoormal7/NeedsConnectV2/internal/needs"
	"github.com/VNoormal7/NeedsConnectV2/internal/volunteer"
	"github.com/VNoormal7/NeedsConnectV2/pkg/types"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	config := &types.Config{
		Environment:      "development",
		ServerPort:       0,
		CookieName:       "session",
		SessionMaxAgeSec: 3600,
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	store := kv.NewMemory()
	needsRepo := needs.NewRepository(store)
	ledger := needs.NewLedger(needsRepo)
	basketCoordinator := basket.NewCoordinator(store, needsRepo)
	ledger.Subscribe(basketCoordinator.HandleFundingApplied)

	return New(
		config,
		logger,
		auth.NewSessions(store, config),
		needsRepo,
		ledger,
		basketCoordinator,
		volunteer.NewTaskRepository(store),
		volunteer.NewVolunteerRepository(store),
	)
}

type client struct {
	t       *testing.T
	handler http.Handler
	cookie  *http.Cookie
}

func (c *client) do(method, path string, values url.Values) *httptest.ResponseRecorder {
	c.t.Helper()

	var body io.Reader
	if values != nil {
		body = strings.NewReader(values.Encode())
	}

	request := httptest.NewRequest(method, path, body)
	if values != nil {
		request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if c.cookie != nil {
		request.AddCookie(c.cookie)
	}

	recorder := httptest.NewRecorder()
	c.handler.ServeHTTP(recorder, request)
	return recorder
}

func (c *client) login(username string) {
	c.t.Helper()

	recorder := c.do(http.MethodPost, "/login", url.Values{"username": {username}})
	require.Equal(c.t, http.StatusOK, recorder.Code)

	cookies := recorder.Result().Cookies()
	require.Len(c.t, cookies, 1)
	c.cookie = cookies[0]
}

func decodeInto(t *testing.T, recorder *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), out))
}

func createNeedForm() url.Values {
	return url.Values{
		"title":         {"Emergency meals"},
		"description":   {"Provide emergency meals for families in need"},
		"category":      {"Food"},
		"urgency":       {"5"},
		"target_amount": {"1000"},
	}
}

func TestHealthzIsPublic(t *testing.T) {
	c := &client{t: t, handler: newTestService(t).server.Handler}

	recorder := c.do(http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestAuthRequired(t *testing.T) {
	c := &client{t: t, handler: newTestService(t).server.Handler}

	recorder := c.do(http.MethodGet, "/needs", nil)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestHelperCannotCreateNeeds(t *testing.T) {
	c := &client{t: t, handler: newTestService(t).server.Handler}
	c.login("maria")

	recorder := c.do(http.MethodPost, "/needs", createNeedForm())
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestNeedLifecycle(t *testing.T) {
	c := &client{t: t, handler: newTestService(t).server.Handler}
	c.login("admin")

	recorder := c.do(http.MethodPost, "/needs", createNeedForm())
	require.Equal(t, http.StatusCreated, recorder.Code)

	var created types.Need
	decodeInto(t, recorder, &created)
	assert.Equal(t, 1, created.ID)
	assert.Zero(t, created.CurrentAmount)

	recorder = c.do(http.MethodGet, "/needs", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var listed []needView
	decodeInto(t, recorder, &listed)
	require.Len(t, listed, 1)
	assert.Equal(t, 570, listed[0].Priority, "urgency 5, zero days old, no helpers")

	recorder = c.do(http.MethodPut, "/needs/1", url.Values{"urgency": {"2"}})
	require.Equal(t, http.StatusOK, recorder.Code)

	var updated types.Need
	decodeInto(t, recorder, &updated)
	assert.Equal(t, 2, updated.Urgency)
	assert.Equal(t, "Emergency meals", updated.Title)

	recorder = c.do(http.MethodDelete, "/needs/1", nil)
	assert.Equal(t, http.StatusNoContent, recorder.Code)

	recorder = c.do(http.MethodGet, "/needs", nil)
	decodeInto(t, recorder, &listed)
	assert.Empty(t, listed)
}

func TestNeedCreateValidation(t *testing.T) {
	c := &client{t: t, handler: newTestService(t).server.Handler}
	c.login("admin")

	form := createNeedForm()
	form.Set("target_amount", "0")

	recorder := c.do(http.MethodPost, "/needs", form)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestFundingFlow(t *testing.T) {
	c := &client{t: t, handler: newTestService(t).server.Handler}
	c.login("admin")

	recorder := c.do(http.MethodPost, "/needs", createNeedForm())
	require.Equal(t, http.StatusCreated, recorder.Code)

	// Stage it, then fund it: the basket entry goes away with the first
	// transaction, and the second transaction's excess is discarded.
	recorder = c.do(http.MethodPost, "/basket/1", nil)
	require.Equal(t, http.StatusNoContent, recorder.Code)

	recorder = c.do(http.MethodPost, "/needs/1/fund", url.Values{"amount": {"700"}})
	require.Equal(t, http.StatusOK, recorder.Code)

	var funded types.Need
	decodeInto(t, recorder, &funded)
	assert.Equal(t, 700.0, funded.CurrentAmount)

	recorder = c.do(http.MethodGet, "/basket", nil)
	var staged []types.Need
	decodeInto(t, recorder, &staged)
	assert.Empty(t, staged)

	recorder = c.do(http.MethodPost, "/needs/1/fund", url.Values{"amount": {"500"}})
	require.Equal(t, http.StatusOK, recorder.Code)
	decodeInto(t, recorder, &funded)
	assert.Equal(t, 1000.0, funded.CurrentAmount)

	recorder = c.do(http.MethodPost, "/needs/1/fund", url.Values{"amount": {"-5"}})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = c.do(http.MethodPost, "/needs/99/fund", url.Values{"amount": {"10"}})
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestBasketAddIncrementsInterest(t *testing.T) {
	c := &client{t: t, handler: newTestService(t).server.Handler}
	c.login("admin")

	recorder := c.do(http.MethodPost, "/needs", createNeedForm())
	require.Equal(t, http.StatusCreated, recorder.Code)

	require.Equal(t, http.StatusNoContent, c.do(http.MethodPost, "/basket/1", nil).Code)
	require.Equal(t, http.StatusNoContent, c.do(http.MethodPost, "/basket/1", nil).Code)

	recorder = c.do(http.MethodGet, "/needs", nil)
	var listed []needView
	decodeInto(t, recorder, &listed)
	require.Len(t, listed, 1)
	assert.Equal(t, 1, listed[0].InterestedHelpers)
}

func TestImpactEndpoint(t *testing.T) {
	c := &client{t: t, handler: newTestService(t).server.Handler}
	c.login("admin")

	recorder := c.do(http.MethodGet, "/impact", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var stats needs.Stats
	decodeInto(t, recorder, &stats)
	assert.Zero(t, stats.TotalNeeds)

	require.Equal(t, http.StatusCreated, c.do(http.MethodPost, "/needs", createNeedForm()).Code)
	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/needs/1/fund", url.Values{"amount": {"250"}}).Code)

	recorder = c.do(http.MethodGet, "/impact", nil)
	decodeInto(t, recorder, &stats)
	assert.Equal(t, 1, stats.TotalNeeds)
	assert.Equal(t, 250.0, stats.TotalFunded)
	assert.Equal(t, 25.0, stats.PerCategory[types.CategoryFood].Completion)
}

func TestTaskRegistrationUsesSessionUser(t *testing.T) {
	c := &client{t: t, handler: newTestService(t).server.Handler}
	c.login("maria")

	recorder := c.do(http.MethodPost, "/tasks", url.Values{
		"title":               {"Food bank shift"},
		"description":         {"Sort and pack donations"},
		"location":            {"Community center"},
		"date":                {"2025-07-01"},
		"required_volunteers": {"3"},
	})
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = c.do(http.MethodPost, "/tasks/1/register", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var task types.VolunteerTask
	decodeInto(t, recorder, &task)
	require.Len(t, task.RegisteredVolunteers, 1)
	assert.Equal(t, "maria", task.RegisteredVolunteers[0].Username)
}
