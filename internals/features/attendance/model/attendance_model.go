// file: internals/features/attendance/model/attendance_model.go
package model

import "time"

// AttendanceModel mencatat kehadiran satu siswa di satu lesson.
type AttendanceModel struct {
	AttendanceID          int64  `json:"attendance_id" gorm:"column:attendance_id;primaryKey;autoIncrement"`
	AttendancePartitionID int64  `json:"attendance_partition_id" gorm:"column:attendance_partition_id;not null;index"`
	AttendanceLessonID    int64  `json:"attendance_lesson_id" gorm:"column:attendance_lesson_id;not null;index"`
	AttendanceStudentID   int64  `json:"attendance_student_id" gorm:"column:attendance_student_id;not null;index"`

	// present | absent | excused
	AttendanceStatus string  `json:"attendance_status" gorm:"column:attendance_status;type:varchar(20);not null"`
	AttendanceNote   *string `json:"attendance_note,omitempty" gorm:"column:attendance_note;type:varchar(500)"`

	AttendanceCreatedAt time.Time `json:"attendance_created_at" gorm:"column:attendance_created_at;not null"`
	AttendanceUpdatedAt time.Time `json:"attendance_updated_at" gorm:"column:attendance_updated_at;not null"`
}

func (AttendanceModel) TableName() string { return "attendances" }
