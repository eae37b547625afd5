// file: internals/features/masters/model/teacher_model.go
package model

import "time"

type TeacherModel struct {
	TeacherID int64 `gorm:"column:teacher_id;primaryKey;autoIncrement" json:"teacher_id"`

	// tenant scope
	TeacherPartitionID int64 `gorm:"column:teacher_partition_id;not null" json:"teacher_partition_id"`

	TeacherName string `gorm:"column:teacher_name;type:varchar(200);not null" json:"teacher_name"`
	// unik per partition (index di migration); duplikat dicek dulu lewat
	// FirstIDForKey supaya jadi 409 yang rapi, constraint DB tinggal backstop
	TeacherEmail string  `gorm:"column:teacher_email;type:varchar(120);not null" json:"teacher_email"`
	TeacherPhone *string `gorm:"column:teacher_phone;type:varchar(30)" json:"teacher_phone,omitempty"`

	TeacherHourlyRateIDR *int64    `gorm:"column:teacher_hourly_rate_idr" json:"teacher_hourly_rate_idr,omitempty"`
	TeacherStartDate     time.Time `gorm:"column:teacher_start_date;type:date;not null" json:"teacher_start_date"`

	// audit
	TeacherCreatedAt time.Time `gorm:"column:teacher_created_at;not null" json:"teacher_created_at"`
	TeacherUpdatedAt time.Time `gorm:"column:teacher_updated_at;not null" json:"teacher_updated_at"`
}

func (TeacherModel) TableName() string { return "teachers" }
