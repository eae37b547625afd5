// file: internals/platform/crudstore/store.go
package crudstore

import (
	"context"
	"errors"
	"sort"

	"gorm.io/gorm"

	"lesprivat_backend/internals/helpers/dbtime"
	"lesprivat_backend/internals/platform/fieldmodel"
	"lesprivat_backend/internals/platform/scope"
)

// Config mengikat satu Store ke satu tabel partition-scoped.
type Config struct {
	Table           string
	PKColumn        string
	PartitionColumn string

	// Audit columns; kosongkan kalau tabel tidak punya.
	CreatedAtColumn string
	UpdatedAtColumn string
}

// Store adalah lapisan CRUD generik untuk satu tabel ber-partition,
// diparameterkan fieldmodel.Model. Semua operasi selalu menambahkan predikat
// partition; tidak ada jalur tanpa scope.
//
// M = struct row hasil mapping storage, I = input terisi-sebagian.
type Store[M any, I any] struct {
	db    *gorm.DB
	cfg   Config
	model fieldmodel.Model[I]
	clock dbtime.Clock
}

func New[M any, I any](db *gorm.DB, cfg Config, model fieldmodel.Model[I]) *Store[M, I] {
	return &Store[M, I]{db: db, cfg: cfg, model: model, clock: dbtime.SystemClock{}}
}

// WithTx mengembalikan salinan store yang jalan di atas transaksi tx.
func (s *Store[M, I]) WithTx(tx *gorm.DB) *Store[M, I] {
	cp := *s
	cp.db = tx
	return &cp
}

func (s *Store[M, I]) WithClock(c dbtime.Clock) *Store[M, I] {
	cp := *s
	cp.clock = c
	return &cp
}

func (s *Store[M, I]) Model() fieldmodel.Model[I] { return s.model }

// whereExample menambahkan predikat per kolom; nilai nil berarti IS NULL
// (bukan "= NULL"). Kolom diurutkan supaya SQL yang dihasilkan stabil.
func whereExample(q *gorm.DB, values map[string]any) *gorm.DB {
	cols := make([]string, 0, len(values))
	for col := range values {
		cols = append(cols, col)
	}
	sort.Strings(cols)
	for _, col := range cols {
		if values[col] == nil {
			q = q.Where(col + " IS NULL")
		} else {
			q = q.Where(col+" = ?", values[col])
		}
	}
	return q
}

// Create menulis satu row dari create-field-set input (field optional yang
// tidak ter-set jatuh ke default/null storage), lalu membaca kembali entity
// yang baru masuk. (nil, nil) kalau read-back tidak menemukan row.
//
// Input yang belum lolos IsCreatable adalah pelanggaran prekondisi pemanggil,
// bukan kegagalan domain; store tidak memvalidasi ulang.
func (s *Store[M, I]) Create(ctx context.Context, partitionID int64, in I) (*M, error) {
	values := s.model.CreateValues(in)
	values[s.cfg.PartitionColumn] = partitionID
	now := s.clock.Now()
	if s.cfg.CreatedAtColumn != "" {
		values[s.cfg.CreatedAtColumn] = now
	}
	if s.cfg.UpdatedAtColumn != "" {
		values[s.cfg.UpdatedAtColumn] = now
	}

	if err := s.db.WithContext(ctx).Table(s.cfg.Table).Create(values).Error; err != nil {
		return nil, err
	}

	var m M
	q := whereExample(s.db.WithContext(ctx).Table(s.cfg.Table), values)
	err := q.Order(s.cfg.PKColumn + " DESC").Limit(1).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Read mengembalikan (nil, nil) kalau tidak ada row id+partition.
func (s *Store[M, I]) Read(ctx context.Context, partitionID, id int64) (*M, error) {
	var m M
	err := s.db.WithContext(ctx).Table(s.cfg.Table).
		Scopes(scope.ByIDAndPartition(s.cfg.PKColumn, id, s.cfg.PartitionColumn, partitionID)).
		Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Update menulis hanya update-field-set input (tanpa pk, tanpa immutable)
// dengan where id+partition. 0 rows = tidak ada row yang cocok; terjemahan
// ke not-found urusan service.
func (s *Store[M, I]) Update(ctx context.Context, partitionID, id int64, in I) (int64, error) {
	values := s.model.UpdateValues(in)
	if len(values) == 0 {
		return 0, nil
	}
	if s.cfg.UpdatedAtColumn != "" {
		values[s.cfg.UpdatedAtColumn] = s.clock.Now()
	}
	res := s.db.WithContext(ctx).Table(s.cfg.Table).
		Scopes(scope.ByIDAndPartition(s.cfg.PKColumn, id, s.cfg.PartitionColumn, partitionID)).
		Updates(values)
	return res.RowsAffected, res.Error
}

func (s *Store[M, I]) Delete(ctx context.Context, partitionID, id int64) (int64, error) {
	var m M
	res := s.db.WithContext(ctx).Table(s.cfg.Table).
		Scopes(scope.ByIDAndPartition(s.cfg.PKColumn, id, s.cfg.PartitionColumn, partitionID)).
		Delete(&m)
	return res.RowsAffected, res.Error
}

func (s *Store[M, I]) Exists(ctx context.Context, partitionID, id int64) (bool, error) {
	var n int64
	err := s.db.WithContext(ctx).Table(s.cfg.Table).
		Scopes(scope.ByIDAndPartition(s.cfg.PKColumn, id, s.cfg.PartitionColumn, partitionID)).
		Count(&n).Error
	return n > 0, err
}

// FirstIDForKey: id pertama (pk terkecil) yang cocok untuk satu kolom unik
// di dalam partition; dipakai deteksi duplikat saat update (match boleh saja
// row itu sendiri).
func (s *Store[M, I]) FirstIDForKey(ctx context.Context, partitionID int64, column string, value any) (int64, bool, error) {
	var ids []int64
	err := s.db.WithContext(ctx).Table(s.cfg.Table).
		Scopes(scope.ByPartition(s.cfg.PartitionColumn, partitionID)).
		Where(column+" = ?", value).
		Order(s.cfg.PKColumn + " ASC").Limit(1).
		Pluck(s.cfg.PKColumn, &ids).Error
	if err != nil {
		return 0, false, err
	}
	if len(ids) == 0 {
		return 0, false, nil
	}
	return ids[0], true, nil
}

// ExistsForKey: cek keberadaan berdasarkan satu kolom unik (mis. deteksi
// email duplikat) di dalam partition.
func (s *Store[M, I]) ExistsForKey(ctx context.Context, partitionID int64, column string, value any) (bool, error) {
	_, found, err := s.FirstIDForKey(ctx, partitionID, column, value)
	return found, err
}

// ExistsByExample mencocokkan semua field yang ter-set pada input dan
// mengembalikan id match pertama (pk terkecil), kalau ada.
func (s *Store[M, I]) ExistsByExample(ctx context.Context, partitionID int64, in I) (int64, bool, error) {
	cond := s.model.ConditionFields(in)
	q := s.db.WithContext(ctx).Table(s.cfg.Table).
		Scopes(scope.ByPartition(s.cfg.PartitionColumn, partitionID))
	q = whereExample(q, cond)

	var ids []int64
	if err := q.Order(s.cfg.PKColumn + " ASC").Limit(1).Pluck(s.cfg.PKColumn, &ids).Error; err != nil {
		return 0, false, err
	}
	if len(ids) == 0 {
		return 0, false, nil
	}
	return ids[0], true, nil
}

func (s *Store[M, I]) CountAll(ctx context.Context, partitionID int64) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Table(s.cfg.Table).
		Scopes(scope.ByPartition(s.cfg.PartitionColumn, partitionID)).
		Count(&n).Error
	return n, err
}

// ReadAll: halaman zero-indexed, urut pk ascending.
func (s *Store[M, I]) ReadAll(ctx context.Context, partitionID int64, page, pageSize int) ([]M, error) {
	var ms []M
	err := s.db.WithContext(ctx).Table(s.cfg.Table).
		Scopes(scope.ByPartition(s.cfg.PartitionColumn, partitionID)).
		Order(s.cfg.PKColumn + " ASC").
		Limit(pageSize).Offset(page * pageSize).
		Find(&ms).Error
	return ms, err
}

// CountForForeignKey: pasangan ReadForForeignKey untuk pagination; predikat
// harus sama dengan listing-nya.
func (s *Store[M, I]) CountForForeignKey(ctx context.Context, partitionID int64, column string, value any) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Table(s.cfg.Table).
		Scopes(scope.ByPartition(s.cfg.PartitionColumn, partitionID)).
		Where(column+" = ?", value).
		Count(&n).Error
	return n, err
}

func (s *Store[M, I]) ReadForForeignKey(ctx context.Context, partitionID int64, column string, value any, page, pageSize int) ([]M, error) {
	var ms []M
	err := s.db.WithContext(ctx).Table(s.cfg.Table).
		Scopes(scope.ByPartition(s.cfg.PartitionColumn, partitionID)).
		Where(column+" = ?", value).
		Order(s.cfg.PKColumn + " ASC").
		Limit(pageSize).Offset(page * pageSize).
		Find(&ms).Error
	return ms, err
}
