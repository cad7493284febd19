package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"biztrack/models"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/olahol/melody"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newRouterUnderTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.WorkReport{},
		&models.TargetWorkingTime{},
		&models.Transaction{},
		&models.CashHistory{},
		&models.FreelancerBid{},
		&models.FreelancerChat{},
		&models.UpworkBid{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	router := gin.New()
	SetupRoutes(router, db, nil, melody.New())
	return router
}

// Route đã đăng ký thì request thiếu token trả 401, route không tồn tại trả 404
func TestRegisteredPaths(t *testing.T) {
	router := newRouterUnderTest(t)

	protected := []string{
		"/api/freelancer/freelancer_bids/1",
		"/api/freelancer/freelancer_chat/1",
		"/api/upwork/upwork_bids/1",
		"/api/upwork/countries",
		"/api/freelancer/countries",
		"/api/bids/stats/weekly",
		"/api/dashboard/stats",
		"/api/dashboard/weekly-bids",
		"/api/reports",
		"/api/transactions",
		"/api/cash-history",
		"/api/target-times",
		"/api/users",
	}

	for _, path := range protected {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, path, nil)
			router.ServeHTTP(w, req)
			if w.Code != http.StatusUnauthorized {
				t.Errorf("GET %s = %d, want 401 (route must exist and require auth)", path, w.Code)
			}
		})
	}

	t.Run("/api/health", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Errorf("GET /api/health = %d, want 200", w.Code)
		}
	})

	t.Run("đường dẫn lạ trả 404", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/upwork/upwork_offers/1", nil)
		router.ServeHTTP(w, req)
		if w.Code != http.StatusNotFound {
			t.Errorf("unknown path = %d, want 404", w.Code)
		}
	})
}
