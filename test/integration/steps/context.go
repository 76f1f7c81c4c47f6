// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/profit-tracker/backend/config"
	"github.com/profit-tracker/backend/internal/infra/dependency"
	"github.com/profit-tracker/backend/internal/integration/persistence/model"
	"github.com/profit-tracker/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

// defaultNow is the instant every scenario starts at unless it sets its own time.
var defaultNow = time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)

// suiteResources are shared by every scenario. Scenarios run sequentially and reset them
// in their Before hook.
type suiteResources struct {
	db       *mock.Db
	redis    *redis.Client
	clock    *mock.Time
	resend   *mock.ApiMock
	injector *dependency.Injector
	server   *httptest.Server
}

var suite *suiteResources

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		suite = startSuite()
	})

	ctx.AfterSuite(func() {
		if suite == nil {
			return
		}
		suite.server.Close()
		suite.resend.Close()
	})
}

func startSuite() *suiteResources {
	resend := mock.NewApiServer()
	resend.Start()

	s := &suiteResources{
		db:     mock.NewDb("profit_tracker", model.All()),
		redis:  mock.NewRedis(),
		clock:  mock.NewTime(),
		resend: resend,
	}

	cfg := config.Load()
	cfg.Server.Environment = "test"
	cfg.JWT.Secret = testJWTSecret
	cfg.Email.ResendAPIKey = "re_test_key"
	cfg.Email.ResendBaseURL = resend.GetUrl()
	cfg.Email.AppBaseURL = "http://app.test"
	cfg.RateLimit.Enabled = false

	injector, err := dependency.NewInjector(context.Background(), cfg, s.db.DbConn, dependency.Options{
		Redis: s.redis,
		Clock: s.clock,
	})
	if err != nil {
		panic("failed to build dependencies. err: " + err.Error())
	}
	s.injector = injector
	s.server = httptest.NewServer(injector.Router.Setup(cfg.Server.Environment))

	return s
}

type testContext struct {
	uri                string
	headers            map[string]string
	client             *http.Client
	response           *response
	accessToken        string
	refreshToken       string
	currentUserID      uuid.UUID
	currentUserEmail   string
	currentDashboardID uuid.UUID
	currentGoalID      uuid.UUID
}

type response struct {
	status  int
	headers http.Header
	raw     string
	body    any
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		client: &http.Client{Timeout: 10 * time.Second},
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Given(`^the current time is "([^"]*)"$`, test.theCurrentTimeIs)

	// User setup steps
	ctx.Given(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, test.aUserExistsWithEmailAndPassword)
	ctx.Given(`^I am logged in as "([^"]*)"$`, test.iAmLoggedInAs)

	// Dashboard setup steps
	ctx.Given(`^I have a dashboard named "([^"]*)"$`, test.iHaveADashboardNamed)
	ctx.Given(`^another user owns a dashboard named "([^"]*)"$`, test.anotherUserOwnsADashboardNamed)
	ctx.Given(`^the dashboard has an initial balance of "([^"]*)" in "([^"]*)"$`, test.theDashboardHasAnInitialBalanceOf)
	ctx.Given(`^the dashboard has the entries:$`, test.theDashboardHasTheEntries)
	ctx.Given(`^the dashboard has a "([^"]*)" goal of "([^"]*)" for "([^"]*)"$`, test.theDashboardHasAGoal)
	ctx.Given(`^the dashboard sends reminders at "([^"]*)"$`, test.theDashboardSendsRemindersAt)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Background job steps
	ctx.When(`^the reminder scheduler runs$`, test.theReminderSchedulerRuns)
	ctx.When(`^the email worker runs$`, test.theEmailWorkerRuns)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response header "([^"]*)" should be "([^"]*)"$`, test.theResponseHeaderShouldBe)
	ctx.Then(`^the response body should contain "([^"]*)"$`, test.theResponseBodyShouldContain)
	ctx.Then(`^the response body should have (\d+) lines$`, test.theResponseBodyShouldHaveLines)

	// Email API assertion steps
	ctx.Then(`^the email API should have received (\d+) requests?$`, test.theEmailAPIShouldHaveReceivedRequests)
	ctx.Then(`^the email API request (\d+) field "([^"]*)" should be "([^"]*)"$`, test.theEmailAPIRequestFieldShouldBe)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func (t *testContext) before() error {
	t.uri = suite.server.URL
	t.headers = make(map[string]string)
	t.response = nil
	t.accessToken = ""
	t.refreshToken = ""
	t.currentUserID = uuid.Nil
	t.currentUserEmail = ""
	t.currentDashboardID = uuid.Nil
	t.currentGoalID = uuid.Nil

	suite.clock.SetCurrentTime(defaultNow)
	suite.resend.Reset()
	suite.resend.SetResponse(http.MethodPost, "/emails", http.StatusOK, map[string]any{"id": "resend-test-id"})

	if err := mock.ClearRedis(suite.redis); err != nil {
		return err
	}
	return suite.db.ClearDB()
}
