// file: internals/features/users/model/user_model.go
package model

import "time"

type UserModel struct {
	UserID          int64  `json:"user_id" gorm:"column:user_id;primaryKey;autoIncrement"`
	UserPartitionID int64  `json:"user_partition_id" gorm:"column:user_partition_id;not null;index"`
	UserName        string `json:"user_name" gorm:"column:user_name;type:varchar(100);not null"`

	// unik global: email dipakai untuk login lintas partition
	UserEmail    string `json:"user_email" gorm:"column:user_email;type:varchar(255);uniqueIndex;not null"`
	UserPassword string `json:"-" gorm:"column:user_password;type:varchar(100);not null"`

	// owner | admin | teacher | viewer
	UserRole string `json:"user_role" gorm:"column:user_role;type:varchar(20);not null;default:viewer"`

	UserIsActive  bool      `json:"user_is_active" gorm:"column:user_is_active;not null;default:true"`
	UserCreatedAt time.Time `json:"user_created_at" gorm:"column:user_created_at;autoCreateTime"`
	UserUpdatedAt time.Time `json:"user_updated_at" gorm:"column:user_updated_at;autoUpdateTime"`
}

func (UserModel) TableName() string { return "users" }
