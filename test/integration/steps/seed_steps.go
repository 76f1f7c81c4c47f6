package steps

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/profit-tracker/backend/internal/domain/entity"
	"github.com/profit-tracker/backend/internal/integration/persistence/model"
)

func (t *testContext) theAPIServerIsRunning() error {
	if suite == nil || suite.server == nil {
		return errors.New("test server is not running")
	}
	return nil
}

func (t *testContext) theCurrentTimeIs(value string) error {
	now, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return fmt.Errorf("invalid time '%s': %w", value, err)
	}
	suite.clock.SetCurrentTime(now.UTC())
	return nil
}

func (t *testContext) aUserExistsWithEmailAndPassword(email, password string) error {
	user, err := t.ensureUser(email, password)
	if err != nil {
		return err
	}
	t.currentUserID = user.ID
	t.currentUserEmail = user.Email
	return nil
}

// ensureUser returns the user with email, creating it when missing.
func (t *testContext) ensureUser(email, password string) (*model.UserModel, error) {
	var existing model.UserModel
	err := suite.db.DbConn.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user := model.FromEntity(entity.NewUser(email, "", hashPassword(password)))
	if err := suite.db.DbConn.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func hashPassword(password string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashedBytes)
}

// iAmLoggedInAs switches the current user to email, creating it when needed, and signs a
// token pair for it.
func (t *testContext) iAmLoggedInAs(email string) error {
	user, err := t.ensureUser(email, "SecurePass123!")
	if err != nil {
		return err
	}
	t.currentUserID = user.ID
	t.currentUserEmail = user.Email

	now := time.Now().UTC()
	t.accessToken, err = signToken(user.ID, email, "access", now, 15*time.Minute)
	if err != nil {
		return fmt.Errorf("failed to generate access token: %w", err)
	}
	t.refreshToken, err = signToken(user.ID, email, "refresh", now, 7*24*time.Hour)
	if err != nil {
		return fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return suite.db.DbConn.Create(&model.RefreshTokenModel{
		ID:        uuid.New(),
		Token:     t.refreshToken,
		UserID:    user.ID,
		ExpiresAt: now.Add(7 * 24 * time.Hour),
		CreatedAt: now,
	}).Error
}

func signToken(userID uuid.UUID, email, tokenType string, now time.Time, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id":    userID.String(),
		"email":      email,
		"token_type": tokenType,
		"exp":        jwt.NewNumericDate(now.Add(ttl)),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"iss":        "profit-tracker",
		"sub":        userID.String(),
		"jti":        uuid.NewString(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
}

func (t *testContext) iHaveADashboardNamed(name string) error {
	if t.currentUserID == uuid.Nil {
		return errors.New("no user is logged in")
	}
	return t.createDashboard(t.currentUserID, name)
}

// anotherUserOwnsADashboardNamed makes a dashboard of a different user the current one.
func (t *testContext) anotherUserOwnsADashboardNamed(name string) error {
	owner, err := t.ensureUser("owner-"+uuid.NewString()[:8]+"@example.com", "SecurePass123!")
	if err != nil {
		return err
	}
	return t.createDashboard(owner.ID, name)
}

func (t *testContext) createDashboard(userID uuid.UUID, name string) error {
	dashboard := entity.NewDashboard(userID, name)
	if err := suite.db.DbConn.Create(model.DashboardFromEntity(dashboard)).Error; err != nil {
		return err
	}
	t.currentDashboardID = dashboard.ID
	return nil
}

// currentDashboard loads the dashboard the scenario is working on.
func (t *testContext) currentDashboard() (*entity.Dashboard, error) {
	if t.currentDashboardID == uuid.Nil {
		return nil, errors.New("no dashboard was created in this scenario")
	}
	var m model.DashboardModel
	if err := suite.db.DbConn.First(&m, "id = ?", t.currentDashboardID).Error; err != nil {
		return nil, fmt.Errorf("dashboard not found: %w", err)
	}
	return m.ToEntity(), nil
}

func (t *testContext) theDashboardHasAnInitialBalanceOf(amount, currency string) error {
	dashboard, err := t.currentDashboard()
	if err != nil {
		return err
	}
	balance, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid balance '%s': %w", amount, err)
	}

	return suite.db.DbConn.Create(model.InitialBalanceFromEntity(&entity.InitialBalance{
		DashboardID: dashboard.ID,
		UserID:      dashboard.UserID,
		Balance:     balance,
		Currency:    entity.Currency(currency),
		UpdatedAt:   time.Now().UTC(),
	})).Error
}

// theDashboardHasTheEntries seeds entries from a table with the columns date,
// final_balance and an optional comma separated tags column.
func (t *testContext) theDashboardHasTheEntries(table *godog.Table) error {
	dashboard, err := t.currentDashboard()
	if err != nil {
		return err
	}
	if len(table.Rows) < 2 {
		return errors.New("entries table needs a header and at least one row")
	}

	columns := map[string]int{}
	for i, cell := range table.Rows[0].Cells {
		columns[cell.Value] = i
	}
	for _, required := range []string{"date", "final_balance"} {
		if _, ok := columns[required]; !ok {
			return fmt.Errorf("entries table is missing the '%s' column", required)
		}
	}

	for _, row := range table.Rows[1:] {
		cell := func(name string) string {
			i, ok := columns[name]
			if !ok {
				return ""
			}
			return strings.TrimSpace(row.Cells[i].Value)
		}

		balance, err := decimal.NewFromString(cell("final_balance"))
		if err != nil {
			return fmt.Errorf("invalid final balance '%s': %w", cell("final_balance"), err)
		}

		var tags []string
		for _, tag := range strings.Split(cell("tags"), ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				tags = append(tags, tag)
			}
		}

		entry := entity.NewDailyEntry(dashboard.UserID, dashboard.ID, cell("date"), balance, tags, cell("notes"))
		if err := suite.db.DbConn.Create(model.DailyEntryFromEntity(entry)).Error; err != nil {
			return err
		}
	}
	return nil
}

func (t *testContext) theDashboardHasAGoal(goalType, amount, appliesTo string) error {
	dashboard, err := t.currentDashboard()
	if err != nil {
		return err
	}
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid goal amount '%s': %w", amount, err)
	}

	goal := entity.NewGoal(dashboard.UserID, dashboard.ID, entity.GoalType(goalType), value, appliesTo)
	if err := suite.db.DbConn.Create(model.GoalFromEntity(goal)).Error; err != nil {
		return err
	}
	t.currentGoalID = goal.ID
	return nil
}

func (t *testContext) theDashboardSendsRemindersAt(at string) error {
	dashboard, err := t.currentDashboard()
	if err != nil {
		return err
	}

	settings := entity.DefaultAppSettings(dashboard.UserID, dashboard.ID)
	settings.EnableNotifications = true
	settings.NotificationTime = at
	settings.UpdatedAt = time.Now().UTC()
	return suite.db.DbConn.Save(model.AppSettingsFromEntity(settings)).Error
}
