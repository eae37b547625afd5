// file: internals/features/masters/model/student_model.go
package model

import "time"

type StudentModel struct {
	StudentID int64 `gorm:"column:student_id;primaryKey;autoIncrement" json:"student_id"`

	// tenant scope
	StudentPartitionID int64 `gorm:"column:student_partition_id;not null" json:"student_partition_id"`

	StudentCustomerID int64  `gorm:"column:student_customer_id;not null" json:"student_customer_id"`
	StudentGroupID    *int64 `gorm:"column:student_group_id" json:"student_group_id,omitempty"`

	StudentName  string  `gorm:"column:student_name;type:varchar(200);not null" json:"student_name"`
	StudentEmail *string `gorm:"column:student_email;type:varchar(120)" json:"student_email,omitempty"`

	// audit
	StudentCreatedAt time.Time `gorm:"column:student_created_at;not null" json:"student_created_at"`
	StudentUpdatedAt time.Time `gorm:"column:student_updated_at;not null" json:"student_updated_at"`
}

func (StudentModel) TableName() string { return "students" }
