// file: internals/platform/crudstore/store_test.go
package crudstore

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"lesprivat_backend/internals/helpers/dbtime"
	"lesprivat_backend/internals/platform/fieldmodel"
)

type noteRow struct {
	NoteID          int64   `gorm:"column:note_id"`
	NotePartitionID int64   `gorm:"column:note_partition_id"`
	NoteTitle       string  `gorm:"column:note_title"`
	NoteBody        *string `gorm:"column:note_body"`
}

type noteInput struct {
	id       *int64
	title    *string
	body     *string // pointer-ke-pointer tidak perlu: body selalu ter-set kalau != nil
	bodyNull bool    // body ter-set ke NULL eksplisit
}

var noteFields = fieldmodel.Model[*noteInput]{
	PKName:   "note_id",
	PKColumn: "note_id",
	PK: func(in *noteInput) (int64, bool) {
		if in.id == nil {
			return 0, false
		}
		return *in.id, true
	},
	Fields: []fieldmodel.Descriptor[*noteInput]{
		{
			Name: "note_title", Column: "note_title", Mandatory: true,
			Value: func(in *noteInput) (any, bool) {
				if in.title == nil {
					return nil, false
				}
				return *in.title, true
			},
		},
		{
			Name: "note_body", Column: "note_body",
			Value: func(in *noteInput) (any, bool) {
				if in.bodyNull {
					return nil, true
				}
				if in.body == nil {
					return nil, false
				}
				return *in.body, true
			},
		},
	},
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	err = db.Exec(`CREATE TABLE notes (
		note_id INTEGER PRIMARY KEY AUTOINCREMENT,
		note_partition_id INTEGER NOT NULL,
		note_title TEXT NOT NULL,
		note_body TEXT,
		note_created_at DATETIME NOT NULL,
		note_updated_at DATETIME NOT NULL
	)`).Error
	if err != nil {
		t.Fatalf("create table: %v", err)
	}
	return db
}

func newNoteStore(t *testing.T, db *gorm.DB) *Store[noteRow, *noteInput] {
	t.Helper()
	s := New[noteRow](db, Config{
		Table:           "notes",
		PKColumn:        "note_id",
		PartitionColumn: "note_partition_id",
		CreatedAtColumn: "note_created_at",
		UpdatedAtColumn: "note_updated_at",
	}, noteFields)
	return s.WithClock(dbtime.FixedClock{T: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)})
}

func sp(s string) *string { return &s }

func TestCreateAndRead(t *testing.T) {
	db := openTestDB(t)
	store := newNoteStore(t, db)
	ctx := context.Background()

	created, err := store.Create(ctx, 1, &noteInput{title: sp("pertama")})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created == nil {
		t.Fatalf("Create harus mengembalikan entity hasil read-back")
	}
	if created.NoteID == 0 || created.NoteTitle != "pertama" || created.NotePartitionID != 1 {
		t.Fatalf("hasil read-back tidak cocok: %+v", created)
	}
	if created.NoteBody != nil {
		t.Fatalf("body tidak ter-set harusnya NULL, dapat %v", *created.NoteBody)
	}

	got, err := store.Read(ctx, 1, created.NoteID)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got == nil || got.NoteTitle != "pertama" {
		t.Fatalf("Read = %+v", got)
	}
}

func TestReadScopedKePartition(t *testing.T) {
	db := openTestDB(t)
	store := newNoteStore(t, db)
	ctx := context.Background()

	created, err := store.Create(ctx, 1, &noteInput{title: sp("milik partition 1")})
	if err != nil || created == nil {
		t.Fatalf("Create: %v / %v", created, err)
	}

	got, err := store.Read(ctx, 2, created.NoteID)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got != nil {
		t.Fatalf("partition lain tidak boleh melihat row: %+v", got)
	}
}

func TestReadTidakAda(t *testing.T) {
	db := openTestDB(t)
	store := newNoteStore(t, db)

	got, err := store.Read(context.Background(), 1, 999)
	if err != nil {
		t.Fatalf("Read harus (nil, nil), err = %v", err)
	}
	if got != nil {
		t.Fatalf("Read = %+v, want nil", got)
	}
}

func TestUpdateParsial(t *testing.T) {
	db := openTestDB(t)
	store := newNoteStore(t, db)
	ctx := context.Background()

	created, _ := store.Create(ctx, 1, &noteInput{title: sp("judul"), body: sp("isi")})
	if created == nil {
		t.Fatal("Create gagal")
	}

	id := created.NoteID
	rows, err := store.Update(ctx, 1, id, &noteInput{id: &id, body: sp("isi baru")})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if rows != 1 {
		t.Fatalf("rows = %d, want 1", rows)
	}

	got, _ := store.Read(ctx, 1, id)
	if got.NoteTitle != "judul" {
		t.Fatalf("field yang tidak ter-set ikut berubah: %+v", got)
	}
	if got.NoteBody == nil || *got.NoteBody != "isi baru" {
		t.Fatalf("body tidak ter-update: %+v", got)
	}
}

func TestUpdatePartitionLain(t *testing.T) {
	db := openTestDB(t)
	store := newNoteStore(t, db)
	ctx := context.Background()

	created, _ := store.Create(ctx, 1, &noteInput{title: sp("judul")})
	id := created.NoteID

	rows, err := store.Update(ctx, 2, id, &noteInput{id: &id, title: sp("diubah")})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if rows != 0 {
		t.Fatalf("update lintas partition harusnya 0 rows, dapat %d", rows)
	}
}

func TestDeleteDanExists(t *testing.T) {
	db := openTestDB(t)
	store := newNoteStore(t, db)
	ctx := context.Background()

	created, _ := store.Create(ctx, 1, &noteInput{title: sp("judul")})
	id := created.NoteID

	ok, _ := store.Exists(ctx, 1, id)
	if !ok {
		t.Fatal("Exists harusnya true")
	}

	rows, err := store.Delete(ctx, 1, id)
	if err != nil || rows != 1 {
		t.Fatalf("Delete rows=%d err=%v", rows, err)
	}

	ok, _ = store.Exists(ctx, 1, id)
	if ok {
		t.Fatal("Exists setelah delete harusnya false")
	}
}

func TestFirstIDForKey(t *testing.T) {
	db := openTestDB(t)
	store := newNoteStore(t, db)
	ctx := context.Background()

	a, _ := store.Create(ctx, 1, &noteInput{title: sp("kembar")})
	_, _ = store.Create(ctx, 1, &noteInput{title: sp("kembar")})

	id, found, err := store.FirstIDForKey(ctx, 1, "note_title", "kembar")
	if err != nil {
		t.Fatalf("FirstIDForKey: %v", err)
	}
	if !found || id != a.NoteID {
		t.Fatalf("id=%d found=%v, want id pk terkecil %d", id, found, a.NoteID)
	}

	_, found, _ = store.FirstIDForKey(ctx, 2, "note_title", "kembar")
	if found {
		t.Fatal("partition lain tidak boleh menemukan row")
	}
}

func TestReadAllPaging(t *testing.T) {
	db := openTestDB(t)
	store := newNoteStore(t, db)
	ctx := context.Background()

	titles := []string{"a", "b", "c", "d", "e"}
	for _, title := range titles {
		if _, err := store.Create(ctx, 1, &noteInput{title: sp(title)}); err != nil {
			t.Fatalf("Create %s: %v", title, err)
		}
	}
	// noise di partition lain
	_, _ = store.Create(ctx, 2, &noteInput{title: sp("z")})

	page0, err := store.ReadAll(ctx, 1, 0, 2)
	if err != nil {
		t.Fatalf("ReadAll page0: %v", err)
	}
	page1, _ := store.ReadAll(ctx, 1, 1, 2)
	page2, _ := store.ReadAll(ctx, 1, 2, 2)

	if len(page0) != 2 || len(page1) != 2 || len(page2) != 1 {
		t.Fatalf("ukuran halaman = %d/%d/%d", len(page0), len(page1), len(page2))
	}

	var got []string
	for _, rows := range [][]noteRow{page0, page1, page2} {
		for _, r := range rows {
			got = append(got, r.NoteTitle)
		}
	}
	for i, title := range titles {
		if got[i] != title {
			t.Fatalf("urutan paging salah: %v", got)
		}
	}

	total, _ := store.CountAll(ctx, 1)
	if total != 5 {
		t.Fatalf("CountAll = %d, want 5", total)
	}
}

func TestExistsForKey(t *testing.T) {
	db := openTestDB(t)
	store := newNoteStore(t, db)
	ctx := context.Background()

	if _, err := store.Create(ctx, 1, &noteInput{title: sp("unik")}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	found, err := store.ExistsForKey(ctx, 1, "note_title", "unik")
	if err != nil {
		t.Fatalf("ExistsForKey: %v", err)
	}
	if !found {
		t.Fatalf("harus ketemu di partition pemiliknya")
	}

	found, _ = store.ExistsForKey(ctx, 1, "note_title", "lain")
	if found {
		t.Fatalf("judul yang tidak ada tidak boleh ketemu")
	}

	found, _ = store.ExistsForKey(ctx, 2, "note_title", "unik")
	if found {
		t.Fatalf("key tidak boleh bocor lintas partition")
	}
}

func TestExistsByExample(t *testing.T) {
	db := openTestDB(t)
	store := newNoteStore(t, db)
	ctx := context.Background()

	withBody, err := store.Create(ctx, 1, &noteInput{title: sp("a"), body: sp("isi")})
	if err != nil {
		t.Fatalf("Create a: %v", err)
	}
	nullBody, err := store.Create(ctx, 1, &noteInput{title: sp("b"), bodyNull: true})
	if err != nil {
		t.Fatalf("Create b: %v", err)
	}

	t.Run("match semua field ter-set", func(t *testing.T) {
		id, found, err := store.ExistsByExample(ctx, 1, &noteInput{title: sp("a"), body: sp("isi")})
		if err != nil {
			t.Fatalf("ExistsByExample: %v", err)
		}
		if !found || id != withBody.NoteID {
			t.Fatalf("id = %d found = %v, want %d", id, found, withBody.NoteID)
		}
	})

	t.Run("null eksplisit berarti IS NULL", func(t *testing.T) {
		id, found, err := store.ExistsByExample(ctx, 1, &noteInput{bodyNull: true})
		if err != nil {
			t.Fatalf("ExistsByExample: %v", err)
		}
		if !found || id != nullBody.NoteID {
			t.Fatalf("id = %d found = %v, want %d (row ber-body NULL)", id, found, nullBody.NoteID)
		}
	})

	t.Run("kombinasi tidak cocok", func(t *testing.T) {
		_, found, _ := store.ExistsByExample(ctx, 1, &noteInput{title: sp("a"), bodyNull: true})
		if found {
			t.Fatalf("title a punya body, tidak boleh match IS NULL")
		}
	})

	t.Run("scoped ke partition", func(t *testing.T) {
		_, found, _ := store.ExistsByExample(ctx, 2, &noteInput{title: sp("a")})
		if found {
			t.Fatalf("example tidak boleh bocor lintas partition")
		}
	})
}

func TestCountForForeignKey(t *testing.T) {
	db := openTestDB(t)
	store := newNoteStore(t, db)
	ctx := context.Background()

	for _, title := range []string{"x", "x", "y"} {
		if _, err := store.Create(ctx, 1, &noteInput{title: sp(title)}); err != nil {
			t.Fatalf("Create %s: %v", title, err)
		}
	}
	if _, err := store.Create(ctx, 2, &noteInput{title: sp("x")}); err != nil {
		t.Fatalf("Create partition 2: %v", err)
	}

	n, err := store.CountForForeignKey(ctx, 1, "note_title", "x")
	if err != nil {
		t.Fatalf("CountForForeignKey: %v", err)
	}
	if n != 2 {
		t.Fatalf("n = %d, want 2 (hanya partition 1)", n)
	}
}
