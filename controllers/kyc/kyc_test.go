package kycController_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"botapi/config"
	"botapi/database"
	"botapi/middleware"
	"botapi/models"
	"botapi/routers/kycRoutes"

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
	user       *models.User
	userToken  string
	adminToken string
}

func setup(t *testing.T) *fixture {
	config.LoadConfig()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler})
	kycRoutes.SetupKYCRoutes(app)

	user := &models.User{Name: "Applicant", Email: "applicant@example.com", Role: "USER", IsEmailVerified: true}
	require.NoError(t, db.Create(user).Error)
	userToken, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email, "")
	require.NoError(t, err)

	admin := &models.User{Name: "Reviewer", Email: "reviewer@example.com", Role: "ADMIN", IsEmailVerified: true}
	require.NoError(t, db.Create(admin).Error)
	adminToken, err := middleware.GenerateJWT(admin.ID, admin.Name, admin.Role, admin.Email, "")
	require.NoError(t, err)

	return &fixture{app: app, db: db, user: user, userToken: userToken, adminToken: adminToken}
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

func panBody() fiber.Map {
	return fiber.Map{
		"country": "IN",
		"pan":     fiber.Map{"panNumber": "ABCDE1234F", "name": "Applicant Kumar"},
	}
}

func TestSubmitKYC(t *testing.T) {
	f := setup(t)

	t.Run("needs at least one section", func(t *testing.T) {
		status, env := f.doJSON(t, http.MethodPost, "/api/kyc/", fiber.Map{"country": "IN"}, f.userToken)
		assert.Equal(t, http.StatusUnprocessableEntity, status)
		assert.Equal(t, "VALIDATION_FAILED", env.Code)
	})

	t.Run("pan section lands pending", func(t *testing.T) {
		status, env := f.doJSON(t, http.MethodPost, "/api/kyc/", panBody(), f.userToken)
		require.Equal(t, http.StatusOK, status)

		var kyc models.UserKYC
		require.NoError(t, json.Unmarshal(env.Data, &kyc))
		assert.Equal(t, models.KycPending, kyc.PanProof.Status)
		assert.False(t, kyc.IsVerified)
	})

	t.Run("duplicate pan across users", func(t *testing.T) {
		other := &models.User{Name: "Other", Email: "other@example.com", Role: "USER"}
		require.NoError(t, f.db.Create(other).Error)
		otherToken, err := middleware.GenerateJWT(other.ID, other.Name, other.Role, other.Email, "")
		require.NoError(t, err)

		status, env := f.doJSON(t, http.MethodPost, "/api/kyc/", panBody(), otherToken)
		assert.Equal(t, http.StatusConflict, status)
		assert.Equal(t, "PAN_EXISTS", env.Code)
	})

	t.Run("duplicate aadhar across users", func(t *testing.T) {
		status, _ := f.doJSON(t, http.MethodPost, "/api/kyc/", fiber.Map{
			"aadhar": fiber.Map{
				"aadharNumber": "123412341234",
				"name":         "Applicant Kumar",
				"dob":          "1992-04-15",
				"address":      "12 MG Road, Bengaluru",
			},
		}, f.userToken)
		require.Equal(t, http.StatusOK, status)

		other := &models.User{Name: "Copycat", Email: "copycat@example.com", Role: "USER"}
		require.NoError(t, f.db.Create(other).Error)
		otherToken, err := middleware.GenerateJWT(other.ID, other.Name, other.Role, other.Email, "")
		require.NoError(t, err)

		status, env := f.doJSON(t, http.MethodPost, "/api/kyc/", fiber.Map{
			"aadhar": fiber.Map{
				"aadharNumber": "123412341234",
				"name":         "Copycat Kumar",
				"dob":          "1990-01-01",
				"address":      "99 Brigade Road, Bengaluru",
			},
		}, otherToken)
		assert.Equal(t, http.StatusConflict, status)
		assert.Equal(t, "AADHAR_EXISTS", env.Code)
	})

	t.Run("resubmitting own pan is allowed", func(t *testing.T) {
		status, _ := f.doJSON(t, http.MethodPost, "/api/kyc/", panBody(), f.userToken)
		assert.Equal(t, http.StatusOK, status)
	})

	t.Run("adding sections keeps earlier ones", func(t *testing.T) {
		status, env := f.doJSON(t, http.MethodPost, "/api/kyc/", fiber.Map{
			"aadhar": fiber.Map{
				"aadharNumber": "123412341234",
				"name":         "Applicant Kumar",
				"dob":          "1992-04-15",
				"address":      "12 MG Road, Bengaluru",
			},
			"bank": fiber.Map{"accountNumber": "123456789012", "ifsc": "HDFC0001234"},
		}, f.userToken)
		require.Equal(t, http.StatusOK, status)

		var kyc models.UserKYC
		require.NoError(t, json.Unmarshal(env.Data, &kyc))
		assert.Equal(t, models.KycPending, kyc.PanProof.Status)
		assert.Equal(t, models.KycPending, kyc.AadharProof.Status)
		assert.Equal(t, models.KycPending, kyc.BankProof.Status)
	})
}

func TestGetMyKYC(t *testing.T) {
	f := setup(t)

	t.Run("nothing submitted", func(t *testing.T) {
		status, env := f.doJSON(t, http.MethodGet, "/api/kyc/", nil, f.userToken)
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "KYC_NOT_FOUND", env.Code)
	})

	t.Run("after submission", func(t *testing.T) {
		status, _ := f.doJSON(t, http.MethodPost, "/api/kyc/", panBody(), f.userToken)
		require.Equal(t, http.StatusOK, status)

		status, env := f.doJSON(t, http.MethodGet, "/api/kyc/", nil, f.userToken)
		require.Equal(t, http.StatusOK, status)

		var kyc models.UserKYC
		require.NoError(t, json.Unmarshal(env.Data, &kyc))
		assert.Equal(t, f.user.ID, kyc.UserID)
	})
}

func TestVerifySection(t *testing.T) {
	f := setup(t)

	// Submit everything up front
	status, _ := f.doJSON(t, http.MethodPost, "/api/kyc/", fiber.Map{
		"country": "IN",
		"pan":     fiber.Map{"panNumber": "ABCDE1234F", "name": "Applicant Kumar"},
		"aadhar": fiber.Map{
			"aadharNumber": "123412341234",
			"name":         "Applicant Kumar",
			"dob":          "1992-04-15",
			"address":      "12 MG Road, Bengaluru",
		},
		"bank": fiber.Map{"accountNumber": "123456789012", "ifsc": "HDFC0001234"},
	}, f.userToken)
	require.Equal(t, http.StatusOK, status)

	verify := func(t *testing.T, section string, approve bool, remarks string) envelope {
		status, env := f.doJSON(t, http.MethodPatch, "/api/kyc/verify", fiber.Map{
			"userId":  f.user.ID,
			"section": section,
			"approve": approve,
			"remarks": remarks,
		}, f.adminToken)
		require.Equal(t, http.StatusOK, status)
		return env
	}

	t.Run("admin only", func(t *testing.T) {
		status, _ := f.doJSON(t, http.MethodPatch, "/api/kyc/verify", fiber.Map{
			"userId":  f.user.ID,
			"section": models.KycSectionPan,
			"approve": true,
		}, f.userToken)
		assert.Equal(t, http.StatusForbidden, status)
	})

	t.Run("rejection carries remarks", func(t *testing.T) {
		env := verify(t, models.KycSectionBank, false, "Account name mismatch")

		var kyc models.UserKYC
		require.NoError(t, json.Unmarshal(env.Data, &kyc))
		assert.Equal(t, models.KycRejected, kyc.BankProof.Status)
		assert.Equal(t, "Account name mismatch", kyc.BankProof.Remarks)
		assert.False(t, kyc.IsVerified)
	})

	t.Run("overall verified only when all sections pass", func(t *testing.T) {
		verify(t, models.KycSectionPan, true, "")
		verify(t, models.KycSectionAadhar, true, "")

		env := verify(t, models.KycSectionBank, true, "")
		var kyc models.UserKYC
		require.NoError(t, json.Unmarshal(env.Data, &kyc))
		assert.True(t, kyc.IsVerified)
	})

	t.Run("unknown user", func(t *testing.T) {
		status, env := f.doJSON(t, http.MethodPatch, "/api/kyc/verify", fiber.Map{
			"userId":  999,
			"section": models.KycSectionPan,
			"approve": true,
		}, f.adminToken)
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "KYC_NOT_FOUND", env.Code)
	})
}

func TestListKYC(t *testing.T) {
	f := setup(t)

	status, _ := f.doJSON(t, http.MethodPost, "/api/kyc/", panBody(), f.userToken)
	require.Equal(t, http.StatusOK, status)

	t.Run("pending filter", func(t *testing.T) {
		status, env := f.doJSON(t, http.MethodGet, "/api/kyc/list?status=PENDING", nil, f.adminToken)
		require.Equal(t, http.StatusOK, status)

		var data struct {
			Records []models.UserKYC `json:"records"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Len(t, data.Records, 1)
	})

	t.Run("verified filter is empty", func(t *testing.T) {
		status, env := f.doJSON(t, http.MethodGet, "/api/kyc/list?status=VERIFIED", nil, f.adminToken)
		require.Equal(t, http.StatusOK, status)

		var data struct {
			Records []models.UserKYC `json:"records"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Empty(t, data.Records)
	})

	t.Run("admin only", func(t *testing.T) {
		status, _ := f.doJSON(t, http.MethodGet, "/api/kyc/list", nil, f.userToken)
		assert.Equal(t, http.StatusForbidden, status)
	})
}
