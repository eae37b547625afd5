// file: internals/features/lessons/dto/lesson_dto.go
package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"lesprivat_backend/internals/features/lessons/model"
	"lesprivat_backend/internals/helpers/errs"
	"lesprivat_backend/internals/helpers/patch"
	"lesprivat_backend/internals/platform/fieldmodel"
)

/* =========================================================
   1) INPUT (create & partial update, tri-state)
   ========================================================= */

// LessonInput dibangun dari body request; field waktu boleh berupa epoch
// langsung (lesson_start_time) atau wall-clock (timezone + tanggal + jam +
// menit) yang diresolve service. Field ber-json:"-" diisi service setelah
// resolusi, tidak pernah dari body.
type LessonInput struct {
	LessonID      patch.Patch[int64] `json:"lesson_id"`
	LessonGroupID patch.Patch[int64] `json:"lesson_group_id"`

	LessonStartTime     patch.Patch[int64]          `json:"lesson_start_time"`
	LessonTimezone      patch.Patch[string]         `json:"lesson_timezone"`
	LessonStartDate     patch.Patch[string]         `json:"lesson_start_date"` // YYYY-MM-DD
	LessonStartHour     patch.Patch[int]            `json:"lesson_start_hour"`
	LessonStartMinute   patch.Patch[int]            `json:"lesson_start_minute"`
	LessonLengthMinutes patch.Patch[int]            `json:"lesson_length_minutes"`
	LessonComment       patch.PatchNullable[string] `json:"lesson_comment"`

	// hasil resolusi service (turunan, bukan input user)
	LessonTeacherID patch.Patch[int64] `json:"-"`
	LessonEndTime   patch.Patch[int64] `json:"-"`
}

/* =========================================================
   2) FIELD MODEL (kolom yang dipersist)
   ========================================================= */

var LessonFields = fieldmodel.Model[*LessonInput]{
	PKName:   "lesson_id",
	PKColumn: "lesson_id",
	PK: func(in *LessonInput) (int64, bool) {
		return in.LessonID.Value, in.LessonID.Set
	},
	Fields: []fieldmodel.Descriptor[*LessonInput]{
		{
			Name: "lesson_group_id", Column: "lesson_group_id", Mandatory: true,
			Value: func(in *LessonInput) (any, bool) { return in.LessonGroupID.Value, in.LessonGroupID.Set },
		},
		{
			Name: "lesson_teacher_id", Column: "lesson_teacher_id", Mandatory: true,
			Value: func(in *LessonInput) (any, bool) { return in.LessonTeacherID.Value, in.LessonTeacherID.Set },
		},
		{
			Name: "lesson_start_time", Column: "lesson_start_time", Mandatory: true,
			Value: func(in *LessonInput) (any, bool) { return in.LessonStartTime.Value, in.LessonStartTime.Set },
		},
		{
			Name: "lesson_end_time", Column: "lesson_end_time", Mandatory: true,
			Value: func(in *LessonInput) (any, bool) { return in.LessonEndTime.Value, in.LessonEndTime.Set },
		},
		{
			Name: "lesson_length_minutes", Column: "lesson_length_minutes", Mandatory: true,
			Value: func(in *LessonInput) (any, bool) { return in.LessonLengthMinutes.Value, in.LessonLengthMinutes.Set },
		},
		{
			Name: "lesson_comment", Column: "lesson_comment",
			Value: func(in *LessonInput) (any, bool) {
				if !in.LessonComment.Set {
					return nil, false
				}
				if !in.LessonComment.Valid {
					return nil, true // explicit null
				}
				return in.LessonComment.Value, true
			},
		},
	},
}

/* =========================================================
   3) VALIDASI NILAI
   ========================================================= */

// ValidateWith menjalankan batasan NILAI field yang ter-set lewat validator;
// kelengkapan (presence) dan resolusi waktu tetap urusan service.
func (in *LessonInput) ValidateWith(v *validator.Validate) error {
	if in.LessonGroupID.Set {
		if err := v.Var(in.LessonGroupID.Value, "gt=0"); err != nil {
			return errs.New(errs.KindInvalidInput, "lesson_group_id harus positif")
		}
	}
	if in.LessonLengthMinutes.Set {
		if err := v.Var(in.LessonLengthMinutes.Value, "gt=0"); err != nil {
			return errs.New(errs.KindInvalidInput, "lesson_length_minutes harus positif")
		}
	}
	if in.LessonStartDate.Set {
		if err := v.Var(strings.TrimSpace(in.LessonStartDate.Value), "required,datetime=2006-01-02"); err != nil {
			return errs.New(errs.KindInvalidInput, "lesson_start_date tidak valid (format YYYY-MM-DD)")
		}
	}
	if in.LessonStartHour.Set {
		if err := v.Var(in.LessonStartHour.Value, "min=0,max=23"); err != nil {
			return errs.Newf(errs.KindInvalidInput, "lesson_start_hour di luar rentang 0-23: %d", in.LessonStartHour.Value)
		}
	}
	if in.LessonStartMinute.Set {
		if err := v.Var(in.LessonStartMinute.Value, "min=0,max=59"); err != nil {
			return errs.Newf(errs.KindInvalidInput, "lesson_start_minute di luar rentang 0-59: %d", in.LessonStartMinute.Value)
		}
	}
	if in.LessonComment.Set && in.LessonComment.Valid {
		if err := v.Var(in.LessonComment.Value, "max=500"); err != nil {
			return errs.New(errs.KindInvalidInput, "lesson_comment maksimal 500 karakter")
		}
	}
	return nil
}

/* =========================================================
   4) RESPONSE
   ========================================================= */

type LessonResponse struct {
	LessonID            int64   `json:"lesson_id"`
	LessonGroupID       int64   `json:"lesson_group_id"`
	LessonTeacherID     int64   `json:"lesson_teacher_id"`
	LessonStartTime     int64   `json:"lesson_start_time"`
	LessonEndTime       int64   `json:"lesson_end_time"`
	LessonLengthMinutes int     `json:"lesson_length_minutes"`
	LessonComment       *string `json:"lesson_comment,omitempty"`
	LessonCreatedAt     int64   `json:"lesson_created_at"`
	LessonUpdatedAt     int64   `json:"lesson_updated_at"`
}

func FromModel(m *model.LessonModel) *LessonResponse {
	if m == nil {
		return nil
	}
	return &LessonResponse{
		LessonID:            m.LessonID,
		LessonGroupID:       m.LessonGroupID,
		LessonTeacherID:     m.LessonTeacherID,
		LessonStartTime:     m.LessonStartTime,
		LessonEndTime:       m.LessonEndTime,
		LessonLengthMinutes: m.LessonLengthMinutes,
		LessonComment:       m.LessonComment,
		LessonCreatedAt:     m.LessonCreatedAt.UnixMilli(),
		LessonUpdatedAt:     m.LessonUpdatedAt.UnixMilli(),
	}
}

func FromModels(ms []model.LessonModel) []*LessonResponse {
	out := make([]*LessonResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
