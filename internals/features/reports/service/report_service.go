// file: internals/features/reports/service/report_service.go
package service

import (
	"context"
	"sync"

	"gorm.io/gorm"

	"lesprivat_backend/internals/helpers/errs"
)

// TeacherBillingRow: satu baris rekap per guru dalam satu periode tagihan.
// Fee dihitung dari menit lesson dikali tarif per jam guru.
type TeacherBillingRow struct {
	TeacherID    int64  `json:"teacher_id" gorm:"column:teacher_id"`
	TeacherName  string `json:"teacher_name" gorm:"column:teacher_name"`
	LessonCount  int64  `json:"lesson_count" gorm:"column:lesson_count"`
	TotalMinutes int64  `json:"total_minutes" gorm:"column:total_minutes"`
	TotalFeeIDR  int64  `json:"total_fee_idr" gorm:"column:total_fee_idr"`
}

type cacheKey struct {
	PartitionID int64
	Start       int64
	End         int64
}

// reportCache: cache hasil rekap, dibatasi jumlah entri supaya memori tidak
// tumbuh tanpa batas. Saat penuh, seluruh isi dibuang; rekap murah dihitung
// ulang.
type reportCache struct {
	mu      sync.Mutex
	entries map[cacheKey][]TeacherBillingRow
	max     int
}

func newReportCache(max int) *reportCache {
	return &reportCache{entries: make(map[cacheKey][]TeacherBillingRow), max: max}
}

func (rc *reportCache) get(k cacheKey) ([]TeacherBillingRow, bool) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rows, ok := rc.entries[k]
	return rows, ok
}

func (rc *reportCache) put(k cacheKey, rows []TeacherBillingRow) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	if len(rc.entries) >= rc.max {
		rc.entries = make(map[cacheKey][]TeacherBillingRow)
	}
	rc.entries[k] = rows
}

// invalidatePartition membuang semua entri milik satu partition. Dipanggil
// dari hook mutasi lesson.
func (rc *reportCache) invalidatePartition(partitionID int64) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	for k := range rc.entries {
		if k.PartitionID == partitionID {
			delete(rc.entries, k)
		}
	}
}

type ReportService struct {
	db    *gorm.DB
	cache *reportCache
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db, cache: newReportCache(256)}
}

// InvalidatePartition dipasang sebagai OnMutate hook di lesson service.
func (s *ReportService) InvalidatePartition(partitionID int64) {
	s.cache.invalidatePartition(partitionID)
}

// TeacherBilling merekap lesson per guru dalam rentang [startMillis, endMillis).
func (s *ReportService) TeacherBilling(ctx context.Context, partitionID, startMillis, endMillis int64) ([]TeacherBillingRow, error) {
	if endMillis <= startMillis {
		return nil, errs.New(errs.KindInvalidInput, "rentang periode tidak valid: end harus > start")
	}

	key := cacheKey{PartitionID: partitionID, Start: startMillis, End: endMillis}
	if rows, ok := s.cache.get(key); ok {
		return rows, nil
	}

	var rows []TeacherBillingRow
	err := s.db.WithContext(ctx).Raw(`
		SELECT t.teacher_id                                           AS teacher_id,
		       t.teacher_name                                         AS teacher_name,
		       COUNT(*)                                               AS lesson_count,
		       SUM(l.lesson_length_minutes)                           AS total_minutes,
		       SUM(l.lesson_length_minutes * COALESCE(t.teacher_hourly_rate_idr, 0) / 60) AS total_fee_idr
		FROM lessons l
		JOIN teachers t
		  ON t.teacher_id = l.lesson_teacher_id
		 AND t.teacher_partition_id = l.lesson_partition_id
		WHERE l.lesson_partition_id = ?
		  AND l.lesson_start_time >= ?
		  AND l.lesson_start_time < ?
		GROUP BY t.teacher_id, t.teacher_name
		ORDER BY t.teacher_id ASC`,
		partitionID, startMillis, endMillis,
	).Scan(&rows).Error
	if err != nil {
		return nil, errs.Storage(err)
	}

	s.cache.put(key, rows)
	return rows, nil
}
