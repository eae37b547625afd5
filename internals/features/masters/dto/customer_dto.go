// file: internals/features/masters/dto/customer_dto.go
package dto

import (
	"gorm.io/datatypes"

	m "lesprivat_backend/internals/features/masters/model"
	"lesprivat_backend/internals/helpers/patch"
	"lesprivat_backend/internals/platform/fieldmodel"
)

/* =========================
   INPUT (create & partial update)
   ========================= */

type CustomerInput struct {
	CustomerID         patch.Patch[int64]          `json:"customer_id"`
	CustomerName       patch.Patch[string]         `json:"customer_name"`
	CustomerEmail      patch.Patch[string]         `json:"customer_email"`
	CustomerPhone      patch.PatchNullable[string] `json:"customer_phone"`
	CustomerPaymentDay patch.PatchNullable[int]    `json:"customer_payment_day"`
	CustomerStartDate  patch.Patch[string]         `json:"customer_start_date"` // YYYY-MM-DD
	CustomerSettings   patch.PatchNullable[datatypes.JSON] `json:"customer_settings"`
}

// Validate memeriksa NILAI field yang ter-set; kelengkapan/presence urusan
// field model.
func (in *CustomerInput) Validate() error {
	if in.CustomerName.Set {
		if err := requireMaxLen("customer_name", in.CustomerName.Value, 200); err != nil {
			return err
		}
	}
	if in.CustomerEmail.Set {
		if err := requireEmailish("customer_email", in.CustomerEmail.Value); err != nil {
			return err
		}
	}
	if in.CustomerPaymentDay.Set && in.CustomerPaymentDay.Valid {
		if err := requireRange("customer_payment_day", in.CustomerPaymentDay.Value, 1, 31); err != nil {
			return err
		}
	}
	if in.CustomerStartDate.Set {
		if err := requireDate("customer_start_date", in.CustomerStartDate.Value); err != nil {
			return err
		}
	}
	return nil
}

var CustomerFields = fieldmodel.Model[*CustomerInput]{
	PKName:   "customer_id",
	PKColumn: "customer_id",
	PK: func(in *CustomerInput) (int64, bool) {
		return in.CustomerID.Value, in.CustomerID.Set
	},
	Fields: []fieldmodel.Descriptor[*CustomerInput]{
		{
			Name: "customer_name", Column: "customer_name", Mandatory: true,
			Value: func(in *CustomerInput) (any, bool) { return in.CustomerName.Value, in.CustomerName.Set },
		},
		{
			Name: "customer_email", Column: "customer_email", Mandatory: true,
			Value: func(in *CustomerInput) (any, bool) { return in.CustomerEmail.Value, in.CustomerEmail.Set },
		},
		{
			Name: "customer_phone", Column: "customer_phone",
			Value: func(in *CustomerInput) (any, bool) { return nullableValue(in.CustomerPhone) },
		},
		{
			Name: "customer_payment_day", Column: "customer_payment_day",
			Value: func(in *CustomerInput) (any, bool) { return nullableValue(in.CustomerPaymentDay) },
		},
		{
			Name: "customer_start_date", Column: "customer_start_date", Mandatory: true,
			Value: func(in *CustomerInput) (any, bool) {
				if !in.CustomerStartDate.Set {
					return nil, false
				}
				t, _ := parseDate(in.CustomerStartDate.Value)
				return t, true
			},
		},
		{
			Name: "customer_settings", Column: "customer_settings",
			Value: func(in *CustomerInput) (any, bool) { return nullableValue(in.CustomerSettings) },
		},
	},
}

/* =========================
   RESPONSE
   ========================= */

type CustomerResponse struct {
	CustomerID         int64          `json:"customer_id"`
	CustomerName       string         `json:"customer_name"`
	CustomerEmail      string         `json:"customer_email"`
	CustomerPhone      *string        `json:"customer_phone,omitempty"`
	CustomerPaymentDay *int           `json:"customer_payment_day,omitempty"`
	CustomerStartDate  string         `json:"customer_start_date"`
	CustomerSettings   datatypes.JSON `json:"customer_settings,omitempty"`
	CustomerCreatedAt  int64          `json:"customer_created_at"`
	CustomerUpdatedAt  int64          `json:"customer_updated_at"`
}

func FromCustomer(c *m.CustomerModel) *CustomerResponse {
	if c == nil {
		return nil
	}
	return &CustomerResponse{
		CustomerID:         c.CustomerID,
		CustomerName:       c.CustomerName,
		CustomerEmail:      c.CustomerEmail,
		CustomerPhone:      c.CustomerPhone,
		CustomerPaymentDay: c.CustomerPaymentDay,
		CustomerStartDate:  c.CustomerStartDate.Format(dateLayout),
		CustomerSettings:   c.CustomerSettings,
		CustomerCreatedAt:  c.CustomerCreatedAt.UnixMilli(),
		CustomerUpdatedAt:  c.CustomerUpdatedAt.UnixMilli(),
	}
}

func FromCustomers(cs []m.CustomerModel) []*CustomerResponse {
	out := make([]*CustomerResponse, 0, len(cs))
	for i := range cs {
		out = append(out, FromCustomer(&cs[i]))
	}
	return out
}
