// file: internals/features/lessons/dto/lesson_dto_test.go
package dto

import (
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"

	"lesprivat_backend/internals/helpers/errs"
	"lesprivat_backend/internals/helpers/patch"
)

func TestLessonInputValidateWith(t *testing.T) {
	v := validator.New()

	cases := []struct {
		name    string
		in      LessonInput
		wantErr bool
	}{
		{
			name: "epoch langsung lolos",
			in: LessonInput{
				LessonGroupID:       patch.Of(int64(1)),
				LessonStartTime:     patch.Of(int64(1000)),
				LessonLengthMinutes: patch.Of(45),
			},
		},
		{
			name: "wall-clock valid lolos",
			in: LessonInput{
				LessonTimezone:    patch.Of("Asia/Jakarta"),
				LessonStartDate:   patch.Of("2026-03-02"),
				LessonStartHour:   patch.Of(9),
				LessonStartMinute: patch.Of(30),
			},
		},
		{
			name:    "group_id nol ditolak",
			in:      LessonInput{LessonGroupID: patch.Of(int64(0))},
			wantErr: true,
		},
		{
			name:    "length negatif ditolak",
			in:      LessonInput{LessonLengthMinutes: patch.Of(-5)},
			wantErr: true,
		},
		{
			name:    "tanggal bukan YYYY-MM-DD ditolak",
			in:      LessonInput{LessonStartDate: patch.Of("02/03/2026")},
			wantErr: true,
		},
		{
			name:    "jam 24 ditolak",
			in:      LessonInput{LessonStartHour: patch.Of(24)},
			wantErr: true,
		},
		{
			name:    "menit 60 ditolak",
			in:      LessonInput{LessonStartMinute: patch.Of(60)},
			wantErr: true,
		},
		{
			name:    "comment lebih dari 500 karakter ditolak",
			in:      LessonInput{LessonComment: patch.NullableOf(strings.Repeat("k", 501))},
			wantErr: true,
		},
		{
			name: "comment null eksplisit lolos",
			in:   LessonInput{LessonComment: patch.Null[string]()},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.in.ValidateWith(v)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("harus ditolak")
				}
				if errs.KindOf(err) != errs.KindInvalidInput {
					t.Fatalf("kind = %v, want KindInvalidInput", errs.KindOf(err))
				}
				return
			}
			if err != nil {
				t.Fatalf("harus lolos: %v", err)
			}
		})
	}
}
