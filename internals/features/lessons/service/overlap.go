// file: internals/features/lessons/service/overlap.go
package service

import (
	"context"

	"gorm.io/gorm"

	"lesprivat_backend/internals/platform/scope"
)

// IntervalsConflict adalah predikat bentrok dua interval [start, end) pada
// timeline yang sama, dalam tiga kondisi:
//  1. start existing jatuh di dalam kandidat, atau
//  2. end existing jatuh di dalam kandidat, atau
//  3. start kandidat jatuh di dalam existing.
//
// Kondisi "end kandidat jatuh di dalam existing" sudah tercakup oleh tiga
// kondisi di atas (redundansi turunan, bukan celah). Batas dihitung half-open
// sehingga dua les yang persis back-to-back (end == start berikutnya) TIDAK
// bentrok, sedangkan dua interval identik tetap bentrok.
func IntervalsConflict(candStart, candEnd, exStart, exEnd int64) bool {
	switch {
	case exStart >= candStart && exStart < candEnd:
		return true
	case exEnd > candStart && exEnd <= candEnd:
		return true
	case candStart >= exStart && candStart < exEnd:
		return true
	}
	return false
}

// OverlapPolicy: invariant penjadwalan — satu teacher tidak boleh punya dua
// les yang intervalnya beririsan, per partition. Murni read-then-decide;
// atomisitas terhadap request concurrent bergantung pada transaksi yang
// membungkus check + write (lihat LessonService).
type OverlapPolicy struct {
	db *gorm.DB
}

func NewOverlapPolicy(db *gorm.DB) *OverlapPolicy {
	return &OverlapPolicy{db: db}
}

func (p *OverlapPolicy) WithTx(tx *gorm.DB) *OverlapPolicy {
	return &OverlapPolicy{db: tx}
}

// IsOverlapping true kalau ada les lain milik teacher di partition yang sama
// yang bentrok dengan [start, end). excludeLessonID > 0 mengeluarkan les itu
// sendiri dari himpunan pembanding (dipakai saat update).
func (p *OverlapPolicy) IsOverlapping(ctx context.Context, partitionID, teacherID, start, end, excludeLessonID int64) (bool, error) {
	q := p.db.WithContext(ctx).Table("lessons").
		Scopes(scope.ByPartition("lesson_partition_id", partitionID)).
		Where("lesson_teacher_id = ?", teacherID)
	if excludeLessonID > 0 {
		q = q.Where("lesson_id <> ?", excludeLessonID)
	}
	// tiga kondisi IntervalsConflict dalam SQL, batas half-open
	q = q.Where(
		"(lesson_start_time >= ? AND lesson_start_time < ?)"+
			" OR (lesson_end_time > ? AND lesson_end_time <= ?)"+
			" OR (lesson_start_time <= ? AND lesson_end_time > ?)",
		start, end, start, end, start, start,
	)

	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
