// file: internals/features/reports/service/report_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"lesprivat_backend/internals/helpers/errs"
)

func newReportTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	stmts := []string{
		`CREATE TABLE teachers (
			teacher_id INTEGER PRIMARY KEY,
			teacher_partition_id INTEGER NOT NULL,
			teacher_name TEXT NOT NULL,
			teacher_hourly_rate_idr INTEGER
		)`,
		`CREATE TABLE lessons (
			lesson_id INTEGER PRIMARY KEY AUTOINCREMENT,
			lesson_partition_id INTEGER NOT NULL,
			lesson_teacher_id INTEGER NOT NULL,
			lesson_start_time INTEGER NOT NULL,
			lesson_length_minutes INTEGER NOT NULL
		)`,
		`INSERT INTO teachers VALUES (100, 1, 'Budi', 120000)`,
		`INSERT INTO teachers VALUES (200, 1, 'Sari', NULL)`,
		`INSERT INTO teachers VALUES (100, 2, 'Budi Tenant Lain', 90000)`,
		// partition 1: Budi 2 les (60 + 90 menit), Sari 1 les
		`INSERT INTO lessons (lesson_partition_id, lesson_teacher_id, lesson_start_time, lesson_length_minutes)
		 VALUES (1, 100, 1000, 60), (1, 100, 50000000, 90), (1, 200, 2000, 45)`,
		// di luar window
		`INSERT INTO lessons (lesson_partition_id, lesson_teacher_id, lesson_start_time, lesson_length_minutes)
		 VALUES (1, 100, 999999999999, 60)`,
		// partition lain
		`INSERT INTO lessons (lesson_partition_id, lesson_teacher_id, lesson_start_time, lesson_length_minutes)
		 VALUES (2, 100, 1000, 60)`,
	}
	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("exec: %v", err)
		}
	}
	return db
}

func TestTeacherBilling(t *testing.T) {
	db := newReportTestDB(t)
	svc := NewReportService(db)
	ctx := context.Background()

	rows, err := svc.TeacherBilling(ctx, 1, 0, 100000000)
	if err != nil {
		t.Fatalf("TeacherBilling: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len = %d, want 2: %+v", len(rows), rows)
	}

	budi, sari := rows[0], rows[1]
	if budi.TeacherID != 100 || budi.LessonCount != 2 || budi.TotalMinutes != 150 {
		t.Fatalf("budi = %+v", budi)
	}
	// 150 menit * 120000/jam = 300000
	if budi.TotalFeeIDR != 300000 {
		t.Fatalf("fee budi = %d, want 300000", budi.TotalFeeIDR)
	}
	if sari.TeacherID != 200 || sari.LessonCount != 1 || sari.TotalFeeIDR != 0 {
		t.Fatalf("tarif NULL harus dihitung 0: %+v", sari)
	}
}

func TestTeacherBillingRentangTidakValid(t *testing.T) {
	svc := NewReportService(newReportTestDB(t))
	_, err := svc.TeacherBilling(context.Background(), 1, 100, 100)
	if errs.KindOf(err) != errs.KindInvalidInput {
		t.Fatalf("kind = %v, want InvalidInput", errs.KindOf(err))
	}
}

func TestTeacherBillingCache(t *testing.T) {
	db := newReportTestDB(t)
	svc := NewReportService(db)
	ctx := context.Background()

	before, err := svc.TeacherBilling(ctx, 1, 0, 100000000)
	if err != nil {
		t.Fatalf("TeacherBilling: %v", err)
	}

	// tambah les baru langsung di storage; hasil lama masih dari cache
	err = db.Exec(`INSERT INTO lessons (lesson_partition_id, lesson_teacher_id, lesson_start_time, lesson_length_minutes)
		VALUES (1, 200, 3000, 45)`).Error
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	cached, _ := svc.TeacherBilling(ctx, 1, 0, 100000000)
	if cached[1].LessonCount != before[1].LessonCount {
		t.Fatalf("hasil harus masih dari cache: %+v", cached)
	}

	// invalidation per partition: partition lain tidak tersentuh
	svc.InvalidatePartition(1)

	fresh, _ := svc.TeacherBilling(ctx, 1, 0, 100000000)
	if fresh[1].LessonCount != before[1].LessonCount+1 {
		t.Fatalf("setelah invalidation harus baca ulang: %+v", fresh)
	}
}
