// file: internals/features/lessons/model/lesson_model.go
package model

import "time"

// LessonModel: satu pertemuan les untuk satu group. Teacher selalu diturunkan
// dari group pemiliknya, tidak pernah disuplai langsung — invariant anti
// bentrok per teacher hanya bermakna kalau sumber teacher-nya satu.
type LessonModel struct {
	LessonID int64 `gorm:"column:lesson_id;primaryKey;autoIncrement" json:"lesson_id"`

	// tenant scope
	LessonPartitionID int64 `gorm:"column:lesson_partition_id;not null" json:"lesson_partition_id"`

	LessonGroupID   int64 `gorm:"column:lesson_group_id;not null"   json:"lesson_group_id"`
	LessonTeacherID int64 `gorm:"column:lesson_teacher_id;not null" json:"lesson_teacher_id"`

	// epoch millis; end = start + length*60000
	LessonStartTime     int64 `gorm:"column:lesson_start_time;not null"     json:"lesson_start_time"`
	LessonEndTime       int64 `gorm:"column:lesson_end_time;not null"       json:"lesson_end_time"`
	LessonLengthMinutes int   `gorm:"column:lesson_length_minutes;not null" json:"lesson_length_minutes"`

	LessonComment *string `gorm:"column:lesson_comment;type:varchar(500)" json:"lesson_comment,omitempty"`

	// audit (ditulis store, bukan autoCreateTime, supaya clock bisa diinject)
	LessonCreatedAt time.Time `gorm:"column:lesson_created_at;not null" json:"lesson_created_at"`
	LessonUpdatedAt time.Time `gorm:"column:lesson_updated_at;not null" json:"lesson_updated_at"`
}

func (LessonModel) TableName() string { return "lessons" }
