package controller_test

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrack/backend/config"
	domainerror "github.com/fintrack/backend/internal/domain/error"
	"github.com/fintrack/backend/internal/infra/dependency"
	"github.com/fintrack/backend/internal/integration/entrypoint/controller"
	"github.com/fintrack/backend/internal/integration/entrypoint/dto"
)

var fixedNow = time.Date(2025, 7, 4, 10, 0, 0, 0, time.UTC)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Environment: "test"},
		Store: config.StoreConfig{
			RecentLimit:           5,
			SeedDefaultCategories: true,
		},
		RateLimit: config.RateLimitConfig{
			Enabled:     false,
			MaxRequests: 60,
			Window:      time.Minute,
		},
	}
}

func newTestEngine(t *testing.T, cfg *config.Config) *gin.Engine {
	t.Helper()
	injector, err := dependency.NewInjector(cfg, dependency.WithClock(func() time.Time { return fixedNow }))
	require.NoError(t, err)
	return injector.Router.Setup(cfg.Server.Environment)
}

func doRequest(t *testing.T, engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	req.RemoteAddr = "192.0.2.1:5555"
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), "body: %s", w.Body.String())
	return v
}

func createTxn(t *testing.T, engine *gin.Engine, body string) dto.TransactionResponse {
	t.Helper()
	w := doRequest(t, engine, http.MethodPost, "/api/v1/transactions", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[dto.TransactionResponse](t, w)
}

func TestHealthController_Check(t *testing.T) {
	engine := newTestEngine(t, testConfig())
	createTxn(t, engine, `{"type":"expense","amount":5,"category":"Comida"}`)

	w := doRequest(t, engine, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[controller.HealthResponse](t, w)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "in-memory", resp.Store)
	assert.Equal(t, 1, resp.Transactions)
}

func TestTransactionController_Create(t *testing.T) {
	engine := newTestEngine(t, testConfig())

	t.Run("accepts numeric and string amounts", func(t *testing.T) {
		numeric := createTxn(t, engine, `{"type":"expense","amount":50.25,"category":"Comida","date":"2025-07-01","note":"market"}`)
		assert.Equal(t, "50.25", numeric.Amount)
		assert.Equal(t, "2025-07-01", numeric.Date)
		assert.Equal(t, "market", numeric.Note)
		require.NotNil(t, numeric.Category.ID)
		assert.Equal(t, 1, *numeric.Category.ID)
		assert.Equal(t, "food", numeric.Category.Icon)

		str := createTxn(t, engine, `{"type":"income","amount":"1000.10","category":"Salario"}`)
		assert.Equal(t, "1000.1", str.Amount)
		assert.Equal(t, "2025-07-04", str.Date)
		assert.Equal(t, fixedNow, str.CreatedAt)
	})

	t.Run("unknown category falls back to defaults", func(t *testing.T) {
		resp := createTxn(t, engine, `{"type":"expense","amount":3,"category":"Mascotas"}`)
		assert.Nil(t, resp.Category.ID)
		assert.Equal(t, "#6b7280", resp.Category.Color)
		assert.Equal(t, "cash", resp.Category.Icon)
	})

	tests := []struct {
		name    string
		body    string
		code    string
		details string
	}{
		{"zero amount", `{"type":"expense","amount":0,"category":"Comida"}`, string(domainerror.ErrCodeInvalidTransactionAmount), "amount"},
		{"negative amount", `{"type":"expense","amount":-4,"category":"Comida"}`, string(domainerror.ErrCodeInvalidTransactionAmount), "amount"},
		{"missing amount", `{"type":"expense","category":"Comida"}`, string(domainerror.ErrCodeInvalidTransactionAmount), "amount"},
		{"missing category", `{"type":"expense","amount":4}`, string(domainerror.ErrCodeMissingCategory), "category"},
		{"invalid type", `{"type":"transfer","amount":4,"category":"Comida"}`, string(domainerror.ErrCodeInvalidTransactionType), "type"},
		{"invalid date", `{"type":"expense","amount":4,"category":"Comida","date":"04/07/2025"}`, string(domainerror.ErrCodeInvalidTransactionDate), "date"},
		{"malformed body", `{"type":`, string(domainerror.ErrCodeMissingTransactionFields), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, engine, http.MethodPost, "/api/v1/transactions", tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code)

			resp := decode[dto.ErrorResponse](t, w)
			assert.Equal(t, tt.code, resp.Code)
			assert.Equal(t, tt.details, resp.Details)
		})
	}
}

func TestTransactionController_GetUpdateDelete(t *testing.T) {
	engine := newTestEngine(t, testConfig())
	created := createTxn(t, engine, `{"type":"expense","amount":20,"category":"Hogar"}`)
	path := "/api/v1/transactions/" + created.ID

	w := doRequest(t, engine, http.MethodGet, path, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, created, decode[dto.TransactionResponse](t, w))

	w = doRequest(t, engine, http.MethodPatch, path, `{"amount":"35.5","category":"Compras","date":"2025-06-30"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode[dto.TransactionResponse](t, w)
	assert.Equal(t, "35.5", updated.Amount)
	assert.Equal(t, "Compras", updated.Category.Name)
	assert.Equal(t, "2025-06-30", updated.Date)
	assert.Equal(t, created.ID, updated.ID)

	w = doRequest(t, engine, http.MethodPatch, path, `{}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, string(domainerror.ErrCodeMissingTransactionFields), decode[dto.ErrorResponse](t, w).Code)

	w = doRequest(t, engine, http.MethodPatch, path, `{"amount":0}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "amount", decode[dto.ErrorResponse](t, w).Details)

	w = doRequest(t, engine, http.MethodDelete, path, "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(t, engine, http.MethodDelete, path, "")
	assert.Equal(t, http.StatusNoContent, w.Code, "delete is idempotent")

	w = doRequest(t, engine, http.MethodGet, path, "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, string(domainerror.ErrCodeTransactionNotFound), decode[dto.ErrorResponse](t, w).Code)

	w = doRequest(t, engine, http.MethodPatch, "/api/v1/transactions/"+uuid.NewString(), `{"note":"x"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, engine, http.MethodGet, "/api/v1/transactions/not-a-uuid", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, string(domainerror.ErrCodeInvalidTransactionID), decode[dto.ErrorResponse](t, w).Code)
}

func TestTransactionController_ListRecentAndClear(t *testing.T) {
	engine := newTestEngine(t, testConfig())
	createTxn(t, engine, `{"type":"expense","amount":50,"category":"Comida"}`)
	salary := createTxn(t, engine, `{"type":"income","amount":1000,"category":"Salario"}`)
	transport := createTxn(t, engine, `{"type":"expense","amount":30,"category":"Transporte"}`)

	w := doRequest(t, engine, http.MethodGet, "/api/v1/transactions", "")
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[dto.TransactionListResponse](t, w)
	assert.Equal(t, 3, list.Count)
	assert.Equal(t, "920", list.Totals.NetTotal)
	assert.Equal(t, transport.ID, list.Transactions[0].ID)

	w = doRequest(t, engine, http.MethodGet, "/api/v1/transactions?type=income", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, decode[dto.TransactionListResponse](t, w).Count)

	w = doRequest(t, engine, http.MethodGet, "/api/v1/transactions?type=transfer", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, string(domainerror.ErrCodeInvalidQuery), decode[dto.ErrorResponse](t, w).Code)

	w = doRequest(t, engine, http.MethodGet, "/api/v1/transactions/recent?limit=2", "")
	require.Equal(t, http.StatusOK, w.Code)
	recent := decode[dto.RecentTransactionsResponse](t, w)
	require.Len(t, recent.Transactions, 2)
	assert.Equal(t, transport.ID, recent.Transactions[0].ID)
	assert.Equal(t, salary.ID, recent.Transactions[1].ID)

	w = doRequest(t, engine, http.MethodGet, "/api/v1/transactions/recent?limit=0", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[dto.RecentTransactionsResponse](t, w).Transactions)

	w = doRequest(t, engine, http.MethodGet, "/api/v1/transactions/recent?limit=abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, engine, http.MethodDelete, "/api/v1/transactions", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3, decode[dto.ClearTransactionsResponse](t, w).DeletedCount)

	w = doRequest(t, engine, http.MethodGet, "/api/v1/transactions", "")
	assert.Zero(t, decode[dto.TransactionListResponse](t, w).Count)
}

func TestTransactionController_Export(t *testing.T) {
	engine := newTestEngine(t, testConfig())
	created := createTxn(t, engine, `{"type":"expense","amount":"9.99","category":"Salud","date":"2025-07-02"}`)

	w := doRequest(t, engine, http.MethodGet, "/api/v1/transactions/export", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="transactions-20250704.csv"`, w.Header().Get("Content-Disposition"))

	records, err := csv.NewReader(bytes.NewReader(w.Body.Bytes())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{created.ID, "2025-07-02", "expense", "Salud", "9.99", "", "2025-07-04T10:00:00Z"}, records[1])
}

func TestTransactionController_Import(t *testing.T) {
	engine := newTestEngine(t, testConfig())

	w := doRequest(t, engine, http.MethodPost, "/api/v1/transactions/import",
		"date,type,category,amount,note\n2025-07-03,expense,Comida,12.40,cena\n2025-07-01,income,Salario,500,\n")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, 2, decode[dto.ImportTransactionsResponse](t, w).Imported)

	w = doRequest(t, engine, http.MethodGet, "/api/v1/transactions", "")
	list := decode[dto.TransactionListResponse](t, w)
	require.Len(t, list.Transactions, 2)
	assert.Equal(t, "Comida", list.Transactions[0].Category.Name)
	assert.Equal(t, "cena", list.Transactions[0].Note)
	assert.Equal(t, "487.6", list.Totals.NetTotal)

	t.Run("rejects a bad row with its line", func(t *testing.T) {
		w := doRequest(t, engine, http.MethodPost, "/api/v1/transactions/import",
			"type,amount,category\nexpense,abc,Comida\n")
		require.Equal(t, http.StatusBadRequest, w.Code)
		resp := decode[dto.ErrorResponse](t, w)
		assert.Equal(t, string(domainerror.ErrCodeInvalidTransactionAmount), resp.Code)
		assert.Equal(t, "amount", resp.Details)
		assert.True(t, strings.HasPrefix(resp.Error, "line 2: "), resp.Error)
	})

	t.Run("rejects a file without required columns", func(t *testing.T) {
		w := doRequest(t, engine, http.MethodPost, "/api/v1/transactions/import", "note\nhello\n")
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, string(domainerror.ErrCodeInvalidImportFile), decode[dto.ErrorResponse](t, w).Code)
	})

	t.Run("rejects a file over the size limit", func(t *testing.T) {
		row := "expense,1,Comida\n"
		body := "type,amount,category\n" + strings.Repeat(row, controller.MaxImportBodyBytes/len(row)+1)

		w := doRequest(t, engine, http.MethodPost, "/api/v1/transactions/import", body)
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		assert.Equal(t, string(domainerror.ErrCodeInvalidImportFile), decode[dto.ErrorResponse](t, w).Code)

		w = doRequest(t, engine, http.MethodGet, "/api/v1/transactions", "")
		assert.Len(t, decode[dto.TransactionListResponse](t, w).Transactions, 2)
	})
}

func TestDashboardController(t *testing.T) {
	engine := newTestEngine(t, testConfig())
	createTxn(t, engine, `{"type":"expense","amount":50,"category":"Comida"}`)
	salary := createTxn(t, engine, `{"type":"income","amount":1000,"category":"Salario"}`)
	createTxn(t, engine, `{"type":"expense","amount":30,"category":"Transporte"}`)

	w := doRequest(t, engine, http.MethodGet, "/api/v1/dashboard/summary?recent=2", "")
	require.Equal(t, http.StatusOK, w.Code)
	summary := decode[dto.DashboardSummaryResponse](t, w)
	assert.Equal(t, "920", summary.Balance)
	assert.Equal(t, "80", summary.TotalExpenses)
	assert.Equal(t, "1000", summary.TotalIncome)
	assert.Equal(t, 3, summary.TransactionCount)
	require.Len(t, summary.Recent, 2)

	w = doRequest(t, engine, http.MethodDelete, "/api/v1/transactions/"+salary.ID, "")
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(t, engine, http.MethodGet, "/api/v1/dashboard/summary", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "-80", decode[dto.DashboardSummaryResponse](t, w).Balance)

	w = doRequest(t, engine, http.MethodGet, "/api/v1/dashboard/categories", "")
	require.Equal(t, http.StatusOK, w.Code)
	breakdown := decode[dto.CategoryBreakdownResponse](t, w)
	require.Len(t, breakdown.Categories, 2)
	assert.Equal(t, "Comida", breakdown.Categories[0].CategoryName)
	assert.Equal(t, 62.5, breakdown.Categories[0].Percentage)
	assert.Equal(t, "40.00", breakdown.AverageExpense)
	assert.Empty(t, breakdown.Incomes)
}

func TestCategoryController_List(t *testing.T) {
	engine := newTestEngine(t, testConfig())

	w := doRequest(t, engine, http.MethodGet, "/api/v1/categories", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[dto.CategoryListResponse](t, w).Categories, 12)

	w = doRequest(t, engine, http.MethodGet, "/api/v1/categories?type=income", "")
	require.Equal(t, http.StatusOK, w.Code)
	income := decode[dto.CategoryListResponse](t, w).Categories
	require.Len(t, income, 4)
	assert.Equal(t, "Salario", income[0].Name)

	w = doRequest(t, engine, http.MethodGet, "/api/v1/categories?type=other", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, string(domainerror.ErrCodeInvalidCategoryType), decode[dto.ErrorResponse](t, w).Code)
}

func TestTransactionController_RateLimited(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit = config.RateLimitConfig{Enabled: true, MaxRequests: 2, Window: time.Hour}
	engine := newTestEngine(t, cfg)

	createTxn(t, engine, `{"type":"expense","amount":1,"category":"Comida"}`)
	createTxn(t, engine, `{"type":"expense","amount":1,"category":"Comida"}`)

	w := doRequest(t, engine, http.MethodPost, "/api/v1/transactions", `{"type":"expense","amount":1,"category":"Comida"}`)
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, string(domainerror.ErrCodeRateLimited), decode[dto.ErrorResponse](t, w).Code)

	w = doRequest(t, engine, http.MethodGet, "/api/v1/transactions", "")
	assert.Equal(t, http.StatusOK, w.Code, "reads are not rate limited")
}
