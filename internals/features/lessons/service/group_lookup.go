// file: internals/features/lessons/service/group_lookup.go
package service

import (
	"context"

	"gorm.io/gorm"

	"lesprivat_backend/internals/platform/scope"
)

// GroupLookup meresolve teacher pemilik sebuah group. Lesson tidak pernah
// menerima teacher_id dari caller; selalu lewat sini.
type GroupLookup interface {
	// TeacherIDFor: (teacherID, ketemu?, error) untuk group di partition caller.
	TeacherIDFor(ctx context.Context, tx *gorm.DB, partitionID, groupID int64) (int64, bool, error)
	Exists(ctx context.Context, tx *gorm.DB, partitionID, groupID int64) (bool, error)
}

type gormGroupLookup struct{}

func NewGroupLookup() GroupLookup { return gormGroupLookup{} }

func (gormGroupLookup) TeacherIDFor(ctx context.Context, tx *gorm.DB, partitionID, groupID int64) (int64, bool, error) {
	var ids []int64
	err := tx.WithContext(ctx).Table("groups").
		Scopes(scope.ByIDAndPartition("group_id", groupID, "group_partition_id", partitionID)).
		Limit(1).
		Pluck("group_teacher_id", &ids).Error
	if err != nil {
		return 0, false, err
	}
	if len(ids) == 0 {
		return 0, false, nil
	}
	return ids[0], true, nil
}

func (g gormGroupLookup) Exists(ctx context.Context, tx *gorm.DB, partitionID, groupID int64) (bool, error) {
	_, ok, err := g.TeacherIDFor(ctx, tx, partitionID, groupID)
	return ok, err
}
