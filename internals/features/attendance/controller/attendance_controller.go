// file: internals/features/attendance/controller/attendance_controller.go
package controller

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lesprivat_backend/internals/features/attendance/dto"
	m "lesprivat_backend/internals/features/attendance/model"
	helper "lesprivat_backend/internals/helpers"
	helperAuth "lesprivat_backend/internals/helpers/auth"
	"lesprivat_backend/internals/helpers/errs"
	"lesprivat_backend/internals/platform/crudstore"
	"lesprivat_backend/internals/platform/entityhttp"
	"lesprivat_backend/internals/platform/scope"
)

type AttendanceController struct {
	*entityhttp.Controller[m.AttendanceModel, *dto.AttendanceInput]
}

func rowExists(ctx context.Context, tx *gorm.DB, table, pkCol, partCol string, id, partitionID int64) (bool, error) {
	var n int64
	err := tx.WithContext(ctx).Table(table).
		Scopes(scope.ByIDAndPartition(pkCol, id, partCol, partitionID)).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	store := crudstore.New[m.AttendanceModel](db, crudstore.Config{
		Table:           "attendances",
		PKColumn:        "attendance_id",
		PartitionColumn: "attendance_partition_id",
		CreatedAtColumn: "attendance_created_at",
		UpdatedAtColumn: "attendance_updated_at",
	}, dto.AttendanceFields)

	base := &entityhttp.Controller[m.AttendanceModel, *dto.AttendanceInput]{
		DB:       db,
		Store:    store,
		Name:     "attendance",
		NewInput: func() *dto.AttendanceInput { return &dto.AttendanceInput{} },
		SetID: func(in *dto.AttendanceInput, id int64) {
			in.AttendanceID.Set = true
			in.AttendanceID.Value = id
		},
		PreWrite: func(ctx context.Context, tx *gorm.DB, partitionID int64, in *dto.AttendanceInput) error {
			if in.AttendanceLessonID.Set {
				ok, err := rowExists(ctx, tx, "lessons", "lesson_id", "lesson_partition_id", in.AttendanceLessonID.Value, partitionID)
				if err != nil {
					return errs.Storage(err)
				}
				if !ok {
					return errs.Newf(errs.KindInvalidInput, "lesson %d tidak ditemukan", in.AttendanceLessonID.Value)
				}
			}
			if in.AttendanceStudentID.Set {
				ok, err := rowExists(ctx, tx, "students", "student_id", "student_partition_id", in.AttendanceStudentID.Value, partitionID)
				if err != nil {
					return errs.Storage(err)
				}
				if !ok {
					return errs.Newf(errs.KindInvalidInput, "student %d tidak ditemukan", in.AttendanceStudentID.Value)
				}
			}
			// satu student satu record per lesson; lesson+student immutable,
			// jadi cukup dijaga saat create
			if _, pkSet := dto.AttendanceFields.PK(in); !pkSet && in.AttendanceLessonID.Set && in.AttendanceStudentID.Set {
				example := &dto.AttendanceInput{
					AttendanceLessonID:  in.AttendanceLessonID,
					AttendanceStudentID: in.AttendanceStudentID,
				}
				_, found, err := store.WithTx(tx).ExistsByExample(ctx, partitionID, example)
				if err != nil {
					return errs.Storage(err)
				}
				if found {
					return errs.Newf(errs.KindDuplicate, "attendance untuk lesson %d dan student %d sudah ada",
						in.AttendanceLessonID.Value, in.AttendanceStudentID.Value)
				}
			}
			return nil
		},
		Response:  func(a *m.AttendanceModel) any { return dto.FromAttendance(a) },
		Responses: func(as []m.AttendanceModel) any { return dto.FromAttendances(as) },
	}
	return &AttendanceController{Controller: base}
}

// ListByLesson: semua kehadiran untuk satu lesson.
func (ctl *AttendanceController) ListByLesson(c *fiber.Ctx) error {
	partitionID, err := helperAuth.GetPartitionID(c)
	if err != nil {
		return helper.JsonErrorFrom(c, err)
	}
	lessonID, err := entityhttp.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonErrorFrom(c, err)
	}
	paging := helper.ResolvePaging(c, 25, 200)

	as, err := ctl.Store.ReadForForeignKey(c.UserContext(), partitionID, "attendance_lesson_id", lessonID, paging.Page, paging.PerPage)
	if err != nil {
		return helper.JsonErrorFrom(c, errs.Storage(err))
	}
	total, err := ctl.Store.CountForForeignKey(c.UserContext(), partitionID, "attendance_lesson_id", lessonID)
	if err != nil {
		return helper.JsonErrorFrom(c, errs.Storage(err))
	}
	return helper.JsonOK(c, "OK", fiber.Map{
		"attendances": dto.FromAttendances(as),
		"pagination":  helper.BuildPagination(total, paging, len(as)),
	})
}
