// file: internals/features/masters/model/group_model.go
package model

import "time"

// GroupModel: rombongan belajar milik satu customer, diajar satu teacher.
// Teacher sebuah lesson selalu diturunkan dari sini.
type GroupModel struct {
	GroupID int64 `gorm:"column:group_id;primaryKey;autoIncrement" json:"group_id"`

	// tenant scope
	GroupPartitionID int64 `gorm:"column:group_partition_id;not null" json:"group_partition_id"`

	GroupCustomerID int64  `gorm:"column:group_customer_id;not null" json:"group_customer_id"`
	GroupTeacherID  int64  `gorm:"column:group_teacher_id;not null"  json:"group_teacher_id"`
	GroupName       string `gorm:"column:group_name;type:varchar(200);not null" json:"group_name"`

	// audit
	GroupCreatedAt time.Time `gorm:"column:group_created_at;not null" json:"group_created_at"`
	GroupUpdatedAt time.Time `gorm:"column:group_updated_at;not null" json:"group_updated_at"`
}

func (GroupModel) TableName() string { return "groups" }
