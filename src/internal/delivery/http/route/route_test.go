package route_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"wallet-service/src/internal/config"
	"wallet-service/src/internal/repository"
	"wallet-service/src/pkg/clock"
	"wallet-service/src/pkg/databases"
	"wallet-service/src/pkg/log"
	"wallet-service/src/pkg/token"

	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Code    int             `json:"code"`
}

type mutationBody struct {
	Applied bool            `json:"applied"`
	Reason  string          `json:"reason"`
	Record  json.RawMessage `json:"record"`
}

func newApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := databases.Open(databases.Cfg{Driver: databases.DriverSQLite})
	require.NoError(t, err)
	require.NoError(t, repository.Migrate(db))

	v := viper.New()
	v.Set("app.seed_demo", true)
	v.Set("token.encoder", "base64")
	v.Set("rate.default", 1000)

	app := fiber.New(fiber.Config{ErrorHandler: config.NewErrorHandler()})
	_, err = config.Bootstrap(&config.BootstrapConfig{
		Store:     repository.NewSnapshotRepository(db),
		App:       app,
		Log:       log.Log{},
		Validate:  config.NewValidator(v),
		Config:    v,
		Clock:     clock.NewManual(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)),
		Generator: token.NewSequenceGenerator("r"),
		Async:     asynq.NewServeMux(),
	})
	require.NoError(t, err)
	return app
}

func call(t *testing.T, app *fiber.App, method, path, body string) (int, envelope) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env envelope
	if resp.Header.Get("Content-Type") == fiber.MIMEApplicationJSON {
		require.NoError(t, json.Unmarshal(raw, &env))
	}
	return resp.StatusCode, env
}

func decodeMutation(t *testing.T, env envelope) mutationBody {
	t.Helper()
	var m mutationBody
	require.NoError(t, json.Unmarshal(env.Data, &m))
	return m
}

func TestHealth(t *testing.T) {
	app := newApp(t)
	req := httptest.NewRequest(fiber.MethodGet, "/health", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", string(body))
}

func TestWalletRoutes(t *testing.T) {
	app := newApp(t)

	status, env := call(t, app, fiber.MethodGet, "/api/v1/wallet", "")
	require.Equal(t, fiber.StatusOK, status)
	var wallet struct {
		Wallet struct {
			CMD string `json:"cmd"`
			KRW string `json:"krw"`
		} `json:"wallet"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &wallet))
	assert.Equal(t, "1650", wallet.Wallet.CMD)
	assert.Equal(t, "50000", wallet.Wallet.KRW)

	t.Run("overdraft is unprocessable", func(t *testing.T) {
		status, env := call(t, app, fiber.MethodPost, "/api/v1/wallet/spend", `{"category":"px","amountCMD":"99999"}`)
		assert.Equal(t, fiber.StatusUnprocessableEntity, status)
		assert.False(t, env.Success)
	})

	t.Run("non-positive amount is a reported no-op", func(t *testing.T) {
		status, env := call(t, app, fiber.MethodPost, "/api/v1/wallet/convert", `{"amountCMD":"0"}`)
		require.Equal(t, fiber.StatusOK, status)
		m := decodeMutation(t, env)
		assert.False(t, m.Applied)
		assert.Equal(t, "invalid amount", m.Reason)
	})

	t.Run("unknown category fails validation", func(t *testing.T) {
		status, _ := call(t, app, fiber.MethodPost, "/api/v1/wallet/income", `{"category":"lottery","amountCMD":"5"}`)
		assert.Equal(t, fiber.StatusBadRequest, status)
	})

	t.Run("malformed body", func(t *testing.T) {
		status, _ := call(t, app, fiber.MethodPost, "/api/v1/wallet/qr/send", `{"amountCMD":`)
		assert.Equal(t, fiber.StatusBadRequest, status)
	})

	t.Run("receive applies", func(t *testing.T) {
		status, env := call(t, app, fiber.MethodPost, "/api/v1/wallet/qr/receive", `{"amountCMD":"50","peerWalletId":"0xPEER"}`)
		require.Equal(t, fiber.StatusOK, status)
		assert.True(t, decodeMutation(t, env).Applied)

		status, env = call(t, app, fiber.MethodGet, "/api/v1/wallet/audit", "")
		require.Equal(t, fiber.StatusOK, status)
		var audit struct {
			Consistent bool `json:"consistent"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &audit))
		assert.True(t, audit.Consistent)
	})
}

func TestVoucherRoutes(t *testing.T) {
	app := newApp(t)

	status, env := call(t, app, fiber.MethodPost, "/api/v1/vouchers/missing/approve", "")
	require.Equal(t, fiber.StatusOK, status)
	m := decodeMutation(t, env)
	assert.False(t, m.Applied)
	assert.Equal(t, "not found", m.Reason)

	status, env = call(t, app, fiber.MethodPost, "/api/v1/vouchers", `{"mode":"rail","origin":"BASE","destination":"SEOUL","departDate":"2026-03-05"}`)
	require.Equal(t, fiber.StatusOK, status)
	m = decodeMutation(t, env)
	require.True(t, m.Applied)
	var voucher struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(m.Record, &voucher))
	assert.Equal(t, "requested", voucher.Status)

	// printing before approval is not an edge of the lifecycle
	status, env = call(t, app, fiber.MethodPost, "/api/v1/vouchers/"+voucher.ID+"/print", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "illegal transition", decodeMutation(t, env).Reason)

	status, env = call(t, app, fiber.MethodPost, "/api/v1/vouchers/"+voucher.ID+"/approve", `{"officerName":"중대장"}`)
	require.Equal(t, fiber.StatusOK, status)
	assert.True(t, decodeMutation(t, env).Applied)

	status, env = call(t, app, fiber.MethodGet, "/api/v1/vouchers?status=approved", "")
	require.Equal(t, fiber.StatusOK, status)
	var list struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Equal(t, 1, list.Count)
}

func TestNotFoundRoute(t *testing.T) {
	app := newApp(t)
	status, env := call(t, app, fiber.MethodGet, "/api/v1/nowhere", "")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.False(t, env.Success)
}
