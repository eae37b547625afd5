// file: internals/platform/scope/scope.go
package scope

import "gorm.io/gorm"

// Semua query data bisnis WAJIB lewat salah satu scope di sini — tidak ada
// varian tanpa partition. Kolom di-pass eksplisit karena tiap tabel memakai
// prefix nama entitasnya (lesson_partition_id, customer_partition_id, dst).

// ByPartition membatasi query ke satu partition.
func ByPartition(column string, partitionID int64) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" = ?", partitionID)
	}
}

// ByIDAndPartition = konjungsi primary key + partition.
func ByIDAndPartition(pkColumn string, id int64, partitionColumn string, partitionID int64) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(pkColumn+" = ? AND "+partitionColumn+" = ?", id, partitionID)
	}
}
