// file: internals/platform/usagecheck/checker_test.go
package usagecheck

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	for _, stmt := range []string{
		`CREATE TABLE loans (loan_id INTEGER PRIMARY KEY, loan_book_id INTEGER NOT NULL)`,
		`CREATE TABLE reviews (review_id INTEGER PRIMARY KEY, review_book_id INTEGER NOT NULL)`,
	} {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("exec %q: %v", stmt, err)
		}
	}
	return db
}

func TestNewTanpaRefPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("New tanpa ref harus panic")
		}
	}()
	New()
}

func TestIsUsed(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	checker := New(
		Ref{Table: "loans", Column: "loan_book_id"},
		Ref{Table: "reviews", Column: "review_book_id"},
	)

	used, err := checker.IsUsed(ctx, db, 10)
	if err != nil {
		t.Fatalf("IsUsed: %v", err)
	}
	if used {
		t.Fatal("tidak ada referensi, harusnya false")
	}

	// referensi hanya di tabel kedua
	if err := db.Exec(`INSERT INTO reviews (review_book_id) VALUES (10)`).Error; err != nil {
		t.Fatalf("insert: %v", err)
	}

	used, err = checker.IsUsed(ctx, db, 10)
	if err != nil {
		t.Fatalf("IsUsed: %v", err)
	}
	if !used {
		t.Fatal("ada referensi di reviews, harusnya true")
	}

	used, _ = checker.IsUsed(ctx, db, 11)
	if used {
		t.Fatal("id lain tidak boleh ikut terhitung")
	}
}
