// file: internals/features/attendance/dto/attendance_dto.go
package dto

import (
	m "lesprivat_backend/internals/features/attendance/model"
	"lesprivat_backend/internals/helpers/errs"
	"lesprivat_backend/internals/helpers/patch"
	"lesprivat_backend/internals/platform/fieldmodel"
)

var validStatuses = map[string]bool{
	"present": true,
	"absent":  true,
	"excused": true,
}

type AttendanceInput struct {
	AttendanceID        patch.Patch[int64]          `json:"attendance_id"`
	AttendanceLessonID  patch.Patch[int64]          `json:"attendance_lesson_id"`
	AttendanceStudentID patch.Patch[int64]          `json:"attendance_student_id"`
	AttendanceStatus    patch.Patch[string]         `json:"attendance_status"`
	AttendanceNote      patch.PatchNullable[string] `json:"attendance_note"`
}

func (in *AttendanceInput) Validate() error {
	if in.AttendanceLessonID.Set && in.AttendanceLessonID.Value <= 0 {
		return errs.New(errs.KindInvalidInput, "attendance_lesson_id harus positif")
	}
	if in.AttendanceStudentID.Set && in.AttendanceStudentID.Value <= 0 {
		return errs.New(errs.KindInvalidInput, "attendance_student_id harus positif")
	}
	if in.AttendanceStatus.Set && !validStatuses[in.AttendanceStatus.Value] {
		return errs.Newf(errs.KindInvalidInput, "attendance_status tidak dikenal: %q", in.AttendanceStatus.Value)
	}
	if in.AttendanceNote.Set && in.AttendanceNote.Valid && len(in.AttendanceNote.Value) > 500 {
		return errs.New(errs.KindInvalidInput, "attendance_note maksimal 500 karakter")
	}
	return nil
}

var AttendanceFields = fieldmodel.Model[*AttendanceInput]{
	PKName:   "attendance_id",
	PKColumn: "attendance_id",
	PK: func(in *AttendanceInput) (int64, bool) {
		return in.AttendanceID.Value, in.AttendanceID.Set
	},
	Fields: []fieldmodel.Descriptor[*AttendanceInput]{
		{
			Name: "attendance_lesson_id", Column: "attendance_lesson_id", Mandatory: true, Immutable: true,
			Value: func(in *AttendanceInput) (any, bool) { return in.AttendanceLessonID.Value, in.AttendanceLessonID.Set },
		},
		{
			Name: "attendance_student_id", Column: "attendance_student_id", Mandatory: true, Immutable: true,
			Value: func(in *AttendanceInput) (any, bool) { return in.AttendanceStudentID.Value, in.AttendanceStudentID.Set },
		},
		{
			Name: "attendance_status", Column: "attendance_status", Mandatory: true,
			Value: func(in *AttendanceInput) (any, bool) { return in.AttendanceStatus.Value, in.AttendanceStatus.Set },
		},
		{
			Name: "attendance_note", Column: "attendance_note",
			Value: func(in *AttendanceInput) (any, bool) {
				if !in.AttendanceNote.Set {
					return nil, false
				}
				if !in.AttendanceNote.Valid {
					return nil, true
				}
				return in.AttendanceNote.Value, true
			},
		},
	},
}

type AttendanceResponse struct {
	AttendanceID        int64   `json:"attendance_id"`
	AttendanceLessonID  int64   `json:"attendance_lesson_id"`
	AttendanceStudentID int64   `json:"attendance_student_id"`
	AttendanceStatus    string  `json:"attendance_status"`
	AttendanceNote      *string `json:"attendance_note,omitempty"`
	AttendanceCreatedAt int64   `json:"attendance_created_at"`
	AttendanceUpdatedAt int64   `json:"attendance_updated_at"`
}

func FromAttendance(a *m.AttendanceModel) *AttendanceResponse {
	if a == nil {
		return nil
	}
	return &AttendanceResponse{
		AttendanceID:        a.AttendanceID,
		AttendanceLessonID:  a.AttendanceLessonID,
		AttendanceStudentID: a.AttendanceStudentID,
		AttendanceStatus:    a.AttendanceStatus,
		AttendanceNote:      a.AttendanceNote,
		AttendanceCreatedAt: a.AttendanceCreatedAt.UnixMilli(),
		AttendanceUpdatedAt: a.AttendanceUpdatedAt.UnixMilli(),
	}
}

func FromAttendances(as []m.AttendanceModel) []*AttendanceResponse {
	out := make([]*AttendanceResponse, 0, len(as))
	for i := range as {
		out = append(out, FromAttendance(&as[i]))
	}
	return out
}
