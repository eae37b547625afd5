// file: internals/features/masters/dto/student_dto.go
package dto

import (
	m "lesprivat_backend/internals/features/masters/model"
	"lesprivat_backend/internals/helpers/errs"
	"lesprivat_backend/internals/helpers/patch"
	"lesprivat_backend/internals/platform/fieldmodel"
)

type StudentInput struct {
	StudentID         patch.Patch[int64]          `json:"student_id"`
	StudentCustomerID patch.Patch[int64]          `json:"student_customer_id"`
	StudentGroupID    patch.PatchNullable[int64]  `json:"student_group_id"`
	StudentName       patch.Patch[string]         `json:"student_name"`
	StudentEmail      patch.PatchNullable[string] `json:"student_email"`
}

func (in *StudentInput) Validate() error {
	if in.StudentCustomerID.Set && in.StudentCustomerID.Value <= 0 {
		return errs.New(errs.KindInvalidInput, "student_customer_id harus positif")
	}
	if in.StudentGroupID.Set && in.StudentGroupID.Valid && in.StudentGroupID.Value <= 0 {
		return errs.New(errs.KindInvalidInput, "student_group_id harus positif")
	}
	if in.StudentName.Set {
		if err := requireMaxLen("student_name", in.StudentName.Value, 200); err != nil {
			return err
		}
	}
	if in.StudentEmail.Set && in.StudentEmail.Valid {
		if err := requireEmailish("student_email", in.StudentEmail.Value); err != nil {
			return err
		}
	}
	return nil
}

var StudentFields = fieldmodel.Model[*StudentInput]{
	PKName:   "student_id",
	PKColumn: "student_id",
	PK: func(in *StudentInput) (int64, bool) {
		return in.StudentID.Value, in.StudentID.Set
	},
	Fields: []fieldmodel.Descriptor[*StudentInput]{
		{
			Name: "student_customer_id", Column: "student_customer_id", Mandatory: true,
			Value: func(in *StudentInput) (any, bool) { return in.StudentCustomerID.Value, in.StudentCustomerID.Set },
		},
		{
			Name: "student_group_id", Column: "student_group_id",
			Value: func(in *StudentInput) (any, bool) { return nullableValue(in.StudentGroupID) },
		},
		{
			Name: "student_name", Column: "student_name", Mandatory: true,
			Value: func(in *StudentInput) (any, bool) { return in.StudentName.Value, in.StudentName.Set },
		},
		{
			Name: "student_email", Column: "student_email",
			Value: func(in *StudentInput) (any, bool) { return nullableValue(in.StudentEmail) },
		},
	},
}

type StudentResponse struct {
	StudentID         int64   `json:"student_id"`
	StudentCustomerID int64   `json:"student_customer_id"`
	StudentGroupID    *int64  `json:"student_group_id,omitempty"`
	StudentName       string  `json:"student_name"`
	StudentEmail      *string `json:"student_email,omitempty"`
	StudentCreatedAt  int64   `json:"student_created_at"`
	StudentUpdatedAt  int64   `json:"student_updated_at"`
}

func FromStudent(s *m.StudentModel) *StudentResponse {
	if s == nil {
		return nil
	}
	return &StudentResponse{
		StudentID:         s.StudentID,
		StudentCustomerID: s.StudentCustomerID,
		StudentGroupID:    s.StudentGroupID,
		StudentName:       s.StudentName,
		StudentEmail:      s.StudentEmail,
		StudentCreatedAt:  s.StudentCreatedAt.UnixMilli(),
		StudentUpdatedAt:  s.StudentUpdatedAt.UnixMilli(),
	}
}

func FromStudents(ss []m.StudentModel) []*StudentResponse {
	out := make([]*StudentResponse, 0, len(ss))
	for i := range ss {
		out = append(out, FromStudent(&ss[i]))
	}
	return out
}
