// file: internals/features/masters/model/customer_model.go
package model

import (
	"time"

	"gorm.io/datatypes"
)

// CustomerModel: perusahaan klien pemilik group & student.
type CustomerModel struct {
	CustomerID int64 `gorm:"column:customer_id;primaryKey;autoIncrement" json:"customer_id"`

	// tenant scope
	CustomerPartitionID int64 `gorm:"column:customer_partition_id;not null" json:"customer_partition_id"`

	CustomerName  string  `gorm:"column:customer_name;type:varchar(200);not null" json:"customer_name"`
	CustomerEmail string  `gorm:"column:customer_email;type:varchar(120);not null" json:"customer_email"`
	CustomerPhone *string `gorm:"column:customer_phone;type:varchar(30)" json:"customer_phone,omitempty"`

	// tanggal gajian 1-31; kalau kosong, billing period di-anchor start_date
	CustomerPaymentDay *int      `gorm:"column:customer_payment_day" json:"customer_payment_day,omitempty"`
	CustomerStartDate  time.Time `gorm:"column:customer_start_date;type:date;not null" json:"customer_start_date"`

	// preferensi bebas per customer (JSONB)
	CustomerSettings datatypes.JSON `gorm:"column:customer_settings" json:"customer_settings,omitempty"`

	// audit
	CustomerCreatedAt time.Time `gorm:"column:customer_created_at;not null" json:"customer_created_at"`
	CustomerUpdatedAt time.Time `gorm:"column:customer_updated_at;not null" json:"customer_updated_at"`
}

func (CustomerModel) TableName() string { return "customers" }
