package signalController_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"botapi/config"
	"botapi/database"
	"botapi/middleware"
	"botapi/models"
	"botapi/routers/signalRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type envelope struct {
	Status  string          `json:"status"`
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type fixture struct {
	app        *fiber.App
	db         *gorm.DB
	bot        *models.Bot
	adminToken string
	userToken  string
	userID     uint
}

func setup(t *testing.T) *fixture {
	config.LoadConfig()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler})
	signalRoutes.SetupSignalRoutes(app)

	group := &models.Group{Name: "Forex"}
	require.NoError(t, db.Create(group).Error)

	bot := &models.Bot{Name: "Scalper", Strategy: "scalping", GroupID: group.ID, IsActive: true}
	require.NoError(t, db.Create(bot).Error)

	admin := &models.User{Name: "Admin", Email: "admin@example.com", Role: "ADMIN", IsEmailVerified: true}
	require.NoError(t, db.Create(admin).Error)
	adminToken, err := middleware.GenerateJWT(admin.ID, admin.Name, admin.Role, admin.Email, "")
	require.NoError(t, err)

	user := &models.User{Name: "Trader", Email: "trader@example.com", Role: "USER", IsEmailVerified: true}
	require.NoError(t, db.Create(user).Error)
	userToken, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email, "")
	require.NoError(t, err)

	return &fixture{app: app, db: db, bot: bot, adminToken: adminToken, userToken: userToken, userID: user.ID}
}

func (f *fixture) doJSON(t *testing.T, method, path string, body interface{}, token string) (int, envelope) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func (f *fixture) subscribe(t *testing.T) {
	require.NoError(t, f.db.Create(&models.BotSubscription{
		UserID: f.userID, BotID: f.bot.ID,
		Status: models.SubscriptionActive, SubscribedAt: time.Now(),
	}).Error)
}

func TestCreateSignal(t *testing.T) {
	f := setup(t)
	body := fiber.Map{
		"botId":       f.bot.ID,
		"symbol":      "EURUSD",
		"side":        models.SideBuy,
		"entryPrice":  1.0845,
		"targetPrice": 1.0920,
		"stopLoss":    1.0800,
	}

	t.Run("admin only", func(t *testing.T) {
		status, _ := f.doJSON(t, http.MethodPost, "/api/signals/", body, f.userToken)
		assert.Equal(t, http.StatusForbidden, status)
	})

	t.Run("unknown bot", func(t *testing.T) {
		bad := fiber.Map{"botId": 999, "symbol": "EURUSD", "side": "BUY", "entryPrice": 1.0}
		status, env := f.doJSON(t, http.MethodPost, "/api/signals/", bad, f.adminToken)
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "BOT_NOT_FOUND", env.Code)
	})

	t.Run("invalid side", func(t *testing.T) {
		bad := fiber.Map{"botId": f.bot.ID, "symbol": "EURUSD", "side": "HOLD", "entryPrice": 1.0}
		status, env := f.doJSON(t, http.MethodPost, "/api/signals/", bad, f.adminToken)
		assert.Equal(t, http.StatusUnprocessableEntity, status)
		assert.Equal(t, "VALIDATION_FAILED", env.Code)
	})

	t.Run("success", func(t *testing.T) {
		status, env := f.doJSON(t, http.MethodPost, "/api/signals/", body, f.adminToken)
		require.Equal(t, http.StatusCreated, status)

		var signal models.Signal
		require.NoError(t, json.Unmarshal(env.Data, &signal))
		assert.Equal(t, models.SignalOpen, signal.Status)
		assert.Len(t, signal.Reference, 36)
	})
}

func TestCloseSignal(t *testing.T) {
	f := setup(t)

	signal := models.Signal{
		BotID: f.bot.ID, Reference: "11111111-2222-3333-4444-555555555555",
		Symbol: "BTCUSDT", Side: models.SideBuy, EntryPrice: 64000, Status: models.SignalOpen,
	}
	require.NoError(t, f.db.Create(&signal).Error)
	path := "/api/signals/" + strconv.FormatUint(uint64(signal.ID), 10) + "/close"

	t.Run("success", func(t *testing.T) {
		status, env := f.doJSON(t, http.MethodPatch, path, fiber.Map{"result": 2.4}, f.adminToken)
		require.Equal(t, http.StatusOK, status)

		var closed models.Signal
		require.NoError(t, json.Unmarshal(env.Data, &closed))
		assert.Equal(t, models.SignalClosed, closed.Status)
		assert.Equal(t, 2.4, closed.Result)
		assert.NotNil(t, closed.ClosedAt)
	})

	t.Run("already closed", func(t *testing.T) {
		status, env := f.doJSON(t, http.MethodPatch, path, fiber.Map{"result": 1.0}, f.adminToken)
		assert.Equal(t, http.StatusConflict, status)
		assert.Equal(t, "SIGNAL_CLOSED", env.Code)
	})

	t.Run("unknown signal", func(t *testing.T) {
		status, env := f.doJSON(t, http.MethodPatch, "/api/signals/999/close", fiber.Map{"result": 0}, f.adminToken)
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "SIGNAL_NOT_FOUND", env.Code)
	})
}

func TestListBotSignals(t *testing.T) {
	f := setup(t)
	botPath := "/api/signals/bot/" + strconv.FormatUint(uint64(f.bot.ID), 10)

	for _, s := range []models.Signal{
		{BotID: f.bot.ID, Reference: "ref-open-1", Symbol: "BTCUSDT", Side: models.SideBuy, EntryPrice: 64000, Status: models.SignalOpen},
		{BotID: f.bot.ID, Reference: "ref-closed-1", Symbol: "ETHUSDT", Side: models.SideSell, EntryPrice: 3200, Status: models.SignalClosed},
	} {
		require.NoError(t, f.db.Create(&s).Error)
	}

	t.Run("non subscriber is refused", func(t *testing.T) {
		status, env := f.doJSON(t, http.MethodGet, botPath, nil, f.userToken)
		assert.Equal(t, http.StatusForbidden, status)
		assert.Equal(t, "NOT_SUBSCRIBED", env.Code)
	})

	t.Run("admin bypasses the subscription gate", func(t *testing.T) {
		status, env := f.doJSON(t, http.MethodGet, botPath, nil, f.adminToken)
		require.Equal(t, http.StatusOK, status)

		var data struct {
			Signals []models.Signal `json:"signals"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Len(t, data.Signals, 2)
	})

	t.Run("active subscriber sees signals", func(t *testing.T) {
		f.subscribe(t)

		status, env := f.doJSON(t, http.MethodGet, botPath+"?status=OPEN", nil, f.userToken)
		require.Equal(t, http.StatusOK, status)

		var data struct {
			Signals []models.Signal `json:"signals"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &data))
		require.Len(t, data.Signals, 1)
		assert.Equal(t, models.SignalOpen, data.Signals[0].Status)
	})

	t.Run("cancelled subscription is refused", func(t *testing.T) {
		require.NoError(t, f.db.Model(&models.BotSubscription{}).
			Where("user_id = ? AND bot_id = ?", f.userID, f.bot.ID).
			Update("status", models.SubscriptionCancelled).Error)

		status, env := f.doJSON(t, http.MethodGet, botPath, nil, f.userToken)
		assert.Equal(t, http.StatusForbidden, status)
		assert.Equal(t, "NOT_SUBSCRIBED", env.Code)
	})
}
