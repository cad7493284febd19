package controllers

import (
	"net/http"
	"strconv"
	"testing"
	"time"

	"biztrack/models"

	"github.com/gin-gonic/gin"
)

func TestCreateReport(t *testing.T) {
	db := newControllerTestDB(t)
	user := createTestUser(t, db, "Alice", "alice@example.com")

	ctl := NewReportController(db)
	router := gin.New()
	router.POST("/reports", asUser(user), ctl.CreateReport)

	t.Run("tạo báo cáo mới trả 201", func(t *testing.T) {
		w := performJSON(t, router, http.MethodPost, "/reports", gin.H{
			"reportDate":   "2026-08-19",
			"workingHours": 8,
			"description":  "feature work",
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("status = %d, want 201, body %s", w.Code, w.Body.String())
		}
	})

	t.Run("trùng ngày trả 409", func(t *testing.T) {
		w := performJSON(t, router, http.MethodPost, "/reports", gin.H{
			"reportDate":   "2026-08-19",
			"workingHours": 4,
		})
		if w.Code != http.StatusConflict {
			t.Errorf("status = %d, want 409", w.Code)
		}

		var count int64
		db.Model(&models.WorkReport{}).Where("user_id = ?", user.ID).Count(&count)
		if count != 1 {
			t.Errorf("report count = %d, want 1", count)
		}
	})

	t.Run("user khác cùng ngày vẫn tạo được", func(t *testing.T) {
		other := createTestUser(t, db, "Bob", "bob@example.com")
		otherRouter := gin.New()
		otherRouter.POST("/reports", asUser(other), ctl.CreateReport)

		w := performJSON(t, otherRouter, http.MethodPost, "/reports", gin.H{
			"reportDate":   "2026-08-19",
			"workingHours": 6,
		})
		if w.Code != http.StatusCreated {
			t.Errorf("status = %d, want 201, body %s", w.Code, w.Body.String())
		}
	})

	t.Run("update sang ngày đã có báo cáo trả 409", func(t *testing.T) {
		var second models.WorkReport
		if err := db.Create(&models.WorkReport{
			UserID:       user.ID,
			ReportDate:   time.Date(2026, time.August, 21, 0, 0, 0, 0, time.UTC),
			WorkingHours: 5,
		}).Error; err != nil {
			t.Fatalf("seed second report: %v", err)
		}

		updateRouter := gin.New()
		updateRouter.PUT("/reports/:id", asUser(user), ctl.UpdateReport)

		if err := db.Where("user_id = ? AND report_date = ?", user.ID, time.Date(2026, time.August, 21, 0, 0, 0, 0, time.UTC)).
			First(&second).Error; err != nil {
			t.Fatalf("reload second report: %v", err)
		}

		w := performJSON(t, updateRouter, http.MethodPut,
			"/reports/"+strconv.Itoa(int(second.ID)), gin.H{"reportDate": "2026-08-19"})
		if w.Code != http.StatusConflict {
			t.Errorf("status = %d, want 409, body %s", w.Code, w.Body.String())
		}

		var unchanged models.WorkReport
		if err := db.First(&unchanged, second.ID).Error; err != nil {
			t.Fatalf("reload report: %v", err)
		}
		if unchanged.ReportDate.Format("2006-01-02") != "2026-08-21" {
			t.Errorf("reportDate = %v, row must stay unchanged", unchanged.ReportDate)
		}
	})

	t.Run("giờ làm ngoài khoảng trả 400", func(t *testing.T) {
		w := performJSON(t, router, http.MethodPost, "/reports", gin.H{
			"reportDate":   "2026-08-20",
			"workingHours": 25,
		})
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})
}
