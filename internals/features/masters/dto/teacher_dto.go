// file: internals/features/masters/dto/teacher_dto.go
package dto

import (
	m "lesprivat_backend/internals/features/masters/model"
	"lesprivat_backend/internals/helpers/errs"
	"lesprivat_backend/internals/helpers/patch"
	"lesprivat_backend/internals/platform/fieldmodel"
)

type TeacherInput struct {
	TeacherID            patch.Patch[int64]          `json:"teacher_id"`
	TeacherName          patch.Patch[string]         `json:"teacher_name"`
	TeacherEmail         patch.Patch[string]         `json:"teacher_email"`
	TeacherPhone         patch.PatchNullable[string] `json:"teacher_phone"`
	TeacherHourlyRateIDR patch.PatchNullable[int64]  `json:"teacher_hourly_rate_idr"`
	TeacherStartDate     patch.Patch[string]         `json:"teacher_start_date"` // YYYY-MM-DD
}

func (in *TeacherInput) Validate() error {
	if in.TeacherName.Set {
		if err := requireMaxLen("teacher_name", in.TeacherName.Value, 200); err != nil {
			return err
		}
	}
	if in.TeacherEmail.Set {
		if err := requireEmailish("teacher_email", in.TeacherEmail.Value); err != nil {
			return err
		}
	}
	if in.TeacherHourlyRateIDR.Set && in.TeacherHourlyRateIDR.Valid && in.TeacherHourlyRateIDR.Value < 0 {
		return errs.New(errs.KindInvalidInput, "teacher_hourly_rate_idr harus >= 0")
	}
	if in.TeacherStartDate.Set {
		if err := requireDate("teacher_start_date", in.TeacherStartDate.Value); err != nil {
			return err
		}
	}
	return nil
}

var TeacherFields = fieldmodel.Model[*TeacherInput]{
	PKName:   "teacher_id",
	PKColumn: "teacher_id",
	PK: func(in *TeacherInput) (int64, bool) {
		return in.TeacherID.Value, in.TeacherID.Set
	},
	Fields: []fieldmodel.Descriptor[*TeacherInput]{
		{
			Name: "teacher_name", Column: "teacher_name", Mandatory: true,
			Value: func(in *TeacherInput) (any, bool) { return in.TeacherName.Value, in.TeacherName.Set },
		},
		{
			Name: "teacher_email", Column: "teacher_email", Mandatory: true,
			Value: func(in *TeacherInput) (any, bool) { return in.TeacherEmail.Value, in.TeacherEmail.Set },
		},
		{
			Name: "teacher_phone", Column: "teacher_phone",
			Value: func(in *TeacherInput) (any, bool) { return nullableValue(in.TeacherPhone) },
		},
		{
			Name: "teacher_hourly_rate_idr", Column: "teacher_hourly_rate_idr",
			Value: func(in *TeacherInput) (any, bool) { return nullableValue(in.TeacherHourlyRateIDR) },
		},
		{
			Name: "teacher_start_date", Column: "teacher_start_date", Mandatory: true,
			Value: func(in *TeacherInput) (any, bool) {
				if !in.TeacherStartDate.Set {
					return nil, false
				}
				t, _ := parseDate(in.TeacherStartDate.Value)
				return t, true
			},
		},
	},
}

type TeacherResponse struct {
	TeacherID            int64   `json:"teacher_id"`
	TeacherName          string  `json:"teacher_name"`
	TeacherEmail         string  `json:"teacher_email"`
	TeacherPhone         *string `json:"teacher_phone,omitempty"`
	TeacherHourlyRateIDR *int64  `json:"teacher_hourly_rate_idr,omitempty"`
	TeacherStartDate     string  `json:"teacher_start_date"`
	TeacherCreatedAt     int64   `json:"teacher_created_at"`
	TeacherUpdatedAt     int64   `json:"teacher_updated_at"`
}

func FromTeacher(t *m.TeacherModel) *TeacherResponse {
	if t == nil {
		return nil
	}
	return &TeacherResponse{
		TeacherID:            t.TeacherID,
		TeacherName:          t.TeacherName,
		TeacherEmail:         t.TeacherEmail,
		TeacherPhone:         t.TeacherPhone,
		TeacherHourlyRateIDR: t.TeacherHourlyRateIDR,
		TeacherStartDate:     t.TeacherStartDate.Format(dateLayout),
		TeacherCreatedAt:     t.TeacherCreatedAt.UnixMilli(),
		TeacherUpdatedAt:     t.TeacherUpdatedAt.UnixMilli(),
	}
}

func FromTeachers(ts []m.TeacherModel) []*TeacherResponse {
	out := make([]*TeacherResponse, 0, len(ts))
	for i := range ts {
		out = append(out, FromTeacher(&ts[i]))
	}
	return out
}
