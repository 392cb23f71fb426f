package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"cortado/database"
	"cortado/internal/config"
	"cortado/internal/router"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func testConfig() *config.Config {
	return &config.Config{
		HTTPPort:       8080,
		CORSOrigins:    []string{"http://localhost:3000"},
		RateLimitRPS:   100,
		RateLimitBurst: 100,
		CacheTTL:       5 * time.Minute,
	}
}

func setupRouter(t *testing.T, cfg *config.Config) *gin.Engine {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	discard := slog.New(slog.NewTextHandler(io.Discard, nil))
	return router.Setup(cfg, db, nil, discard)
}

func submitBody() map[string]any {
	return map[string]any{
		"restaurant": map[string]any{
			"name":            "Vovo Telo",
			"google_place_id": "ABC123",
			"latitude":        -26.02,
			"longitude":       28.09,
		},
		"user": map[string]any{"name": "johan"},
		"rating": map[string]any{
			"stars":     2,
			"price_zar": 10.3,
			"notes":     "Very lekker",
			"cookie":    true,
		},
	}
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubmitRating(t *testing.T) {
	r := setupRouter(t, testConfig())

	w := doJSON(r, http.MethodPost, "/api/ratings", submitBody())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["id"])
	assert.NotEmpty(t, resp["restaurant_id"])
	assert.NotEmpty(t, resp["user_id"])
	assert.EqualValues(t, 2, resp["stars"])
	assert.Equal(t, true, resp["cookie"])
}

func TestSubmitRatingFromPlaceResult(t *testing.T) {
	r := setupRouter(t, testConfig())

	body := submitBody()
	delete(body, "restaurant")
	body["place"] = map[string]any{
		"place_name":        "Vovo Telo Bakery & Café",
		"formatted_address": "Waterfall Dr, Midrand",
		"place_id":          "ChIJ5ceK_tFzlR4RBOSyaD4YaHo",
		"latitude":          -26.0195134,
		"longitude":         28.0892369,
		"website":           "https://vovotelo.co.za",
		"rating":            3.9,
	}

	w := doJSON(r, http.MethodPost, "/api/ratings", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestSubmitRatingValidation(t *testing.T) {
	r := setupRouter(t, testConfig())

	tests := []struct {
		name   string
		mutate func(body map[string]any)
	}{
		{"no restaurant or place", func(body map[string]any) { delete(body, "restaurant") }},
		{"stars out of range", func(body map[string]any) {
			body["rating"].(map[string]any)["stars"] = 6
		}},
		{"missing stars", func(body map[string]any) {
			delete(body["rating"].(map[string]any), "stars")
		}},
		{"missing price", func(body map[string]any) {
			delete(body["rating"].(map[string]any), "price_zar")
		}},
		{"missing user name", func(body map[string]any) {
			delete(body["user"].(map[string]any), "name")
		}},
		{"place without a name", func(body map[string]any) {
			delete(body, "restaurant")
			body["place"] = map[string]any{"place_id": "ABC123"}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := submitBody()
			tt.mutate(body)
			w := doJSON(r, http.MethodPost, "/api/ratings", body)
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		})
	}
}

func TestSubmitDuplicateEmailConflicts(t *testing.T) {
	r := setupRouter(t, testConfig())

	body := submitBody()
	body["user"] = map[string]any{"name": "johan", "email": "johan@example.com"}
	w := doJSON(r, http.MethodPost, "/api/ratings", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body["user"] = map[string]any{"name": "someone else", "email": "johan@example.com"}
	w = doJSON(r, http.MethodPost, "/api/ratings", body)
	assert.Equal(t, http.StatusConflict, w.Code, w.Body.String())
}

func TestDashboardEndpoints(t *testing.T) {
	r := setupRouter(t, testConfig())

	w := doJSON(r, http.MethodPost, "/api/ratings", submitBody())
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodGet, "/api/ratings", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Count int `json:"count"`
		Data  []struct {
			Stars          int    `json:"stars"`
			RestaurantName string `json:"restaurant_name"`
			UserName       string `json:"user_name"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Equal(t, 1, list.Count)
	assert.Equal(t, "Vovo Telo", list.Data[0].RestaurantName)
	assert.Equal(t, "johan", list.Data[0].UserName)

	w = doJSON(r, http.MethodGet, "/api/ratings/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var stats struct {
		TotalRatings  int     `json:"total_ratings"`
		AverageRating float64 `json:"average_rating"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 1, stats.TotalRatings)
	assert.InDelta(t, 2.0, stats.AverageRating, 0.001)

	w = doJSON(r, http.MethodGet, "/api/ratings/leaderboard", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestHealthz(t *testing.T) {
	r := setupRouter(t, testConfig())

	w := doJSON(r, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestIDHeader(t *testing.T) {
	r := setupRouter(t, testConfig())

	w := doJSON(r, http.MethodGet, "/healthz", nil)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "caller-supplied")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "caller-supplied", w.Header().Get("X-Request-ID"))
}

func TestRateLimitExceeded(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitRPS = 1
	cfg.RateLimitBurst = 1
	r := setupRouter(t, cfg)

	first := doJSON(r, http.MethodGet, "/api/ratings", nil)
	require.Equal(t, http.StatusOK, first.Code)

	second := doJSON(r, http.MethodGet, "/api/ratings", nil)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}
