// file: internals/features/attendance/controller/attendance_controller_test.go
package controller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newAttendanceApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	stmts := []string{
		`CREATE TABLE attendances (
			attendance_id INTEGER PRIMARY KEY AUTOINCREMENT,
			attendance_partition_id INTEGER NOT NULL,
			attendance_lesson_id INTEGER NOT NULL,
			attendance_student_id INTEGER NOT NULL,
			attendance_status TEXT NOT NULL,
			attendance_note TEXT,
			attendance_created_at DATETIME NOT NULL,
			attendance_updated_at DATETIME NOT NULL
		)`,
		`CREATE TABLE lessons (
			lesson_id INTEGER PRIMARY KEY AUTOINCREMENT,
			lesson_partition_id INTEGER NOT NULL
		)`,
		`CREATE TABLE students (
			student_id INTEGER PRIMARY KEY AUTOINCREMENT,
			student_partition_id INTEGER NOT NULL
		)`,
		`INSERT INTO lessons (lesson_id, lesson_partition_id) VALUES (1, 7)`,
		`INSERT INTO students (student_id, student_partition_id) VALUES (1, 7)`,
		`INSERT INTO students (student_id, student_partition_id) VALUES (2, 7)`,
	}
	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("exec: %v", err)
		}
	}

	app := fiber.New()
	// token sudah divalidasi middleware auth di app asli; di sini cukup
	// isi Locals-nya langsung
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("partition_id", int64(7))
		c.Locals("user_id", int64(1))
		c.Locals("role", "admin")
		return c.Next()
	})
	ctl := NewAttendanceController(db)
	app.Post("/attendance", ctl.Create)
	return app
}

func postAttendance(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/attendance", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

func TestCreateAttendanceDuplikat(t *testing.T) {
	app := newAttendanceApp(t)

	body := `{"attendance_lesson_id":1,"attendance_student_id":1,"attendance_status":"present"}`

	if resp := postAttendance(t, app, body); resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("create pertama = %d, want 201", resp.StatusCode)
	}
	// student yang sama di lesson yang sama: ditolak
	if resp := postAttendance(t, app, body); resp.StatusCode != fiber.StatusConflict {
		t.Fatalf("create kedua = %d, want 409", resp.StatusCode)
	}
	// student lain di lesson yang sama: boleh
	other := `{"attendance_lesson_id":1,"attendance_student_id":2,"attendance_status":"absent"}`
	if resp := postAttendance(t, app, other); resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("student lain = %d, want 201", resp.StatusCode)
	}
}
