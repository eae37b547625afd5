// file: internals/features/masters/controller/masters_controller.go
package controller

import (
	"context"

	"gorm.io/gorm"

	"lesprivat_backend/internals/features/masters/dto"
	m "lesprivat_backend/internals/features/masters/model"
	"lesprivat_backend/internals/helpers/errs"
	"lesprivat_backend/internals/platform/crudstore"
	"lesprivat_backend/internals/platform/entityhttp"
	"lesprivat_backend/internals/platform/scope"
	"lesprivat_backend/internals/platform/usagecheck"
)

// rowExists: cek FK master lain masih ada di partition yang sama.
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

func NewCustomerController(db *gorm.DB) *entityhttp.Controller[m.CustomerModel, *dto.CustomerInput] {
	store := crudstore.New[m.CustomerModel](db, crudstore.Config{
		Table:           "customers",
		PKColumn:        "customer_id",
		PartitionColumn: "customer_partition_id",
		CreatedAtColumn: "customer_created_at",
		UpdatedAtColumn: "customer_updated_at",
	}, dto.CustomerFields)

	return &entityhttp.Controller[m.CustomerModel, *dto.CustomerInput]{
		DB:       db,
		Store:    store,
		Name:     "customer",
		NewInput: func() *dto.CustomerInput { return &dto.CustomerInput{} },
		SetID: func(in *dto.CustomerInput, id int64) {
			in.CustomerID.Set = true
			in.CustomerID.Value = id
		},
		Usage: usagecheck.New(
			usagecheck.Ref{Table: "groups", Column: "group_customer_id"},
			usagecheck.Ref{Table: "students", Column: "student_customer_id"},
		),
		Response:  func(c *m.CustomerModel) any { return dto.FromCustomer(c) },
		Responses: func(cs []m.CustomerModel) any { return dto.FromCustomers(cs) },
	}
}

func NewTeacherController(db *gorm.DB) *entityhttp.Controller[m.TeacherModel, *dto.TeacherInput] {
	store := crudstore.New[m.TeacherModel](db, crudstore.Config{
		Table:           "teachers",
		PKColumn:        "teacher_id",
		PartitionColumn: "teacher_partition_id",
		CreatedAtColumn: "teacher_created_at",
		UpdatedAtColumn: "teacher_updated_at",
	}, dto.TeacherFields)

	return &entityhttp.Controller[m.TeacherModel, *dto.TeacherInput]{
		DB:       db,
		Store:    store,
		Name:     "teacher",
		NewInput: func() *dto.TeacherInput { return &dto.TeacherInput{} },
		SetID: func(in *dto.TeacherInput, id int64) {
			in.TeacherID.Set = true
			in.TeacherID.Value = id
		},
		UniqueColumn: "teacher_email",
		UniqueValue: func(in *dto.TeacherInput) (any, bool) {
			return in.TeacherEmail.Value, in.TeacherEmail.Set
		},
		Usage: usagecheck.New(
			usagecheck.Ref{Table: "groups", Column: "group_teacher_id"},
			usagecheck.Ref{Table: "lessons", Column: "lesson_teacher_id"},
		),
		Response:  func(t *m.TeacherModel) any { return dto.FromTeacher(t) },
		Responses: func(ts []m.TeacherModel) any { return dto.FromTeachers(ts) },
	}
}

func NewGroupController(db *gorm.DB) *entityhttp.Controller[m.GroupModel, *dto.GroupInput] {
	store := crudstore.New[m.GroupModel](db, crudstore.Config{
		Table:           "groups",
		PKColumn:        "group_id",
		PartitionColumn: "group_partition_id",
		CreatedAtColumn: "group_created_at",
		UpdatedAtColumn: "group_updated_at",
	}, dto.GroupFields)

	return &entityhttp.Controller[m.GroupModel, *dto.GroupInput]{
		DB:       db,
		Store:    store,
		Name:     "group",
		NewInput: func() *dto.GroupInput { return &dto.GroupInput{} },
		SetID: func(in *dto.GroupInput, id int64) {
			in.GroupID.Set = true
			in.GroupID.Value = id
		},
		PreWrite: func(ctx context.Context, tx *gorm.DB, partitionID int64, in *dto.GroupInput) error {
			if in.GroupCustomerID.Set {
				ok, err := rowExists(ctx, tx, "customers", "customer_id", "customer_partition_id", in.GroupCustomerID.Value, partitionID)
				if err != nil {
					return errs.Storage(err)
				}
				if !ok {
					return errs.Newf(errs.KindInvalidInput, "customer %d tidak ditemukan", in.GroupCustomerID.Value)
				}
			}
			if in.GroupTeacherID.Set {
				ok, err := rowExists(ctx, tx, "teachers", "teacher_id", "teacher_partition_id", in.GroupTeacherID.Value, partitionID)
				if err != nil {
					return errs.Storage(err)
				}
				if !ok {
					return errs.Newf(errs.KindInvalidInput, "teacher %d tidak ditemukan", in.GroupTeacherID.Value)
				}
			}
			return nil
		},
		Usage: usagecheck.New(
			usagecheck.Ref{Table: "lessons", Column: "lesson_group_id"},
			usagecheck.Ref{Table: "students", Column: "student_group_id"},
		),
		Response:  func(g *m.GroupModel) any { return dto.FromGroup(g) },
		Responses: func(gs []m.GroupModel) any { return dto.FromGroups(gs) },
	}
}

func NewStudentController(db *gorm.DB) *entityhttp.Controller[m.StudentModel, *dto.StudentInput] {
	store := crudstore.New[m.StudentModel](db, crudstore.Config{
		Table:           "students",
		PKColumn:        "student_id",
		PartitionColumn: "student_partition_id",
		CreatedAtColumn: "student_created_at",
		UpdatedAtColumn: "student_updated_at",
	}, dto.StudentFields)

	return &entityhttp.Controller[m.StudentModel, *dto.StudentInput]{
		DB:       db,
		Store:    store,
		Name:     "student",
		NewInput: func() *dto.StudentInput { return &dto.StudentInput{} },
		SetID: func(in *dto.StudentInput, id int64) {
			in.StudentID.Set = true
			in.StudentID.Value = id
		},
		PreWrite: func(ctx context.Context, tx *gorm.DB, partitionID int64, in *dto.StudentInput) error {
			if in.StudentCustomerID.Set {
				ok, err := rowExists(ctx, tx, "customers", "customer_id", "customer_partition_id", in.StudentCustomerID.Value, partitionID)
				if err != nil {
					return errs.Storage(err)
				}
				if !ok {
					return errs.Newf(errs.KindInvalidInput, "customer %d tidak ditemukan", in.StudentCustomerID.Value)
				}
			}
			if in.StudentGroupID.Set && in.StudentGroupID.Valid {
				ok, err := rowExists(ctx, tx, "groups", "group_id", "group_partition_id", in.StudentGroupID.Value, partitionID)
				if err != nil {
					return errs.Storage(err)
				}
				if !ok {
					return errs.Newf(errs.KindInvalidInput, "group %d tidak ditemukan", in.StudentGroupID.Value)
				}
			}
			return nil
		},
		Usage: usagecheck.New(
			usagecheck.Ref{Table: "attendances", Column: "attendance_student_id"},
		),
		Response:  func(s *m.StudentModel) any { return dto.FromStudent(s) },
		Responses: func(ss []m.StudentModel) any { return dto.FromStudents(ss) },
	}
}
