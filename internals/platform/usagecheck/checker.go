// file: internals/platform/usagecheck/checker.go
package usagecheck

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Ref menunjuk satu kolom foreign key di satu tabel.
type Ref struct {
	Table  string
	Column string
}

// Checker menjawab "apakah id ini masih direferensikan di mana pun?" dan
// dipakai sebagai guard sebelum delete. Sengaja TIDAK partition-scoped:
// referensi struktural dicek global, satu-satunya pengecualian terdokumentasi
// atas invariant isolasi partition.
//
// Immutable setelah konstruksi; aman dipakai concurrent.
type Checker struct {
	refs []Ref
}

func New(refs ...Ref) *Checker {
	if len(refs) == 0 {
		panic("usagecheck: minimal satu (table, column) ref")
	}
	return &Checker{refs: refs}
}

// IsUsed true kalau ada row di salah satu ref dengan nilai foreign key = id.
func (ch *Checker) IsUsed(ctx context.Context, db *gorm.DB, id int64) (bool, error) {
	for _, ref := range ch.refs {
		var n int64
		err := db.WithContext(ctx).Table(ref.Table).
			Where(fmt.Sprintf("%s = ?", ref.Column), id).
			Count(&n).Error
		if err != nil {
			return false, err
		}
		if n > 0 {
			return true, nil
		}
	}
	return false, nil
}
