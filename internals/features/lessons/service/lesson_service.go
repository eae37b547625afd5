// file: internals/features/lessons/service/lesson_service.go
package service

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"lesprivat_backend/internals/features/lessons/dto"
	"lesprivat_backend/internals/features/lessons/model"
	"lesprivat_backend/internals/helpers/dbtime"
	"lesprivat_backend/internals/helpers/errs"
	"lesprivat_backend/internals/helpers/patch"
	"lesprivat_backend/internals/platform/crudstore"
	"lesprivat_backend/internals/platform/scope"
	"lesprivat_backend/internals/platform/usagecheck"
)

const maxCommentLen = 500

// LessonService mengorkestrasi lifecycle satu lesson: validasi field,
// resolusi waktu & teacher, cek bentrok, lalu persist.
//
// Cek bentrok + write jalan dalam SATU transaksi per mutasi. Itu satu-satunya
// pagar terhadap double-booking concurrent; tanpa isolasi memadai (atau
// EXCLUDE constraint di migration yang sengaja dibiarkan opsional), dua
// request bersamaan untuk teacher yang sama secara teori masih bisa lolos
// dua-duanya. Risiko ini dipertahankan apa adanya, bukan "diperbaiki" diam-
// diam dengan lock per teacher.
type LessonService struct {
	db       *gorm.DB
	store    *crudstore.Store[model.LessonModel, *dto.LessonInput]
	overlap  *OverlapPolicy
	groups   GroupLookup
	usage    *usagecheck.Checker
	resolver TimeResolver

	// dipanggil setiap mutasi sukses (invalidation hook cache report)
	onMutate func(partitionID int64)
}

func NewLessonService(db *gorm.DB, clock dbtime.Clock) *LessonService {
	if clock == nil {
		clock = dbtime.SystemClock{}
	}
	store := crudstore.New[model.LessonModel, *dto.LessonInput](db, crudstore.Config{
		Table:           "lessons",
		PKColumn:        "lesson_id",
		PartitionColumn: "lesson_partition_id",
		CreatedAtColumn: "lesson_created_at",
		UpdatedAtColumn: "lesson_updated_at",
	}, dto.LessonFields).WithClock(clock)

	return &LessonService{
		db:      db,
		store:   store,
		overlap: NewOverlapPolicy(db),
		groups:  NewGroupLookup(),
		// lesson tidak boleh dihapus selama masih dipegang attendance
		usage:    usagecheck.New(usagecheck.Ref{Table: "attendances", Column: "attendance_lesson_id"}),
		resolver: NewTimeResolver(clock),
		onMutate: func(int64) {},
	}
}

// OnMutate memasang hook yang dipanggil setelah create/update/delete sukses.
func (s *LessonService) OnMutate(fn func(partitionID int64)) {
	if fn != nil {
		s.onMutate = fn
	}
}

func (s *LessonService) Resolver() TimeResolver { return s.resolver }

// resolveStart menghitung epoch start dari input: epoch langsung kalau ada,
// kalau tidak dari keempat field wall-clock. (0, false, nil) berarti tidak
// ada field waktu sama sekali (valid untuk update tanpa pindah jadwal).
func (s *LessonService) resolveStart(in *dto.LessonInput) (int64, bool, error) {
	if in.LessonStartTime.Set {
		if in.LessonStartTime.Value < 0 {
			return 0, false, errs.New(errs.KindInvalidInput, "lesson_start_time harus >= 0")
		}
		return in.LessonStartTime.Value, true, nil
	}
	anyWall := in.LessonTimezone.Set || in.LessonStartDate.Set || in.LessonStartHour.Set || in.LessonStartMinute.Set
	if !anyWall {
		return 0, false, nil
	}
	allWall := in.LessonTimezone.Set && in.LessonStartDate.Set && in.LessonStartHour.Set && in.LessonStartMinute.Set
	if !allWall {
		return 0, false, errs.New(errs.KindInvalidInput,
			"wall-clock tidak lengkap: lesson_timezone, lesson_start_date, lesson_start_hour, lesson_start_minute wajib bersama")
	}
	start, err := s.resolver.ResolveWallClock(
		in.LessonTimezone.Value, in.LessonStartDate.Value,
		in.LessonStartHour.Value, in.LessonStartMinute.Value,
	)
	if err != nil {
		return 0, false, err
	}
	return start, true, nil
}

func validateComment(in *dto.LessonInput) error {
	if in.LessonComment.Set && in.LessonComment.Valid && len(in.LessonComment.Value) > maxCommentLen {
		return errs.Newf(errs.KindInvalidInput, "lesson_comment maksimal %d karakter", maxCommentLen)
	}
	return nil
}

// Create: Proposed → Validated → {Created | Rejected}.
func (s *LessonService) Create(ctx context.Context, partitionID int64, in *dto.LessonInput) (*model.LessonModel, error) {
	if in == nil {
		// prekondisi programmer, bukan kegagalan domain
		panic("LessonService.Create: input nil")
	}
	if in.LessonID.Set {
		return nil, errs.New(errs.KindInvalidInput, "lesson_id tidak boleh diisi saat create")
	}
	if !in.LessonGroupID.Set || in.LessonGroupID.Value <= 0 {
		return nil, errs.New(errs.KindInvalidInput, "lesson_group_id wajib diisi dan positif")
	}
	if !in.LessonLengthMinutes.Set || in.LessonLengthMinutes.Value <= 0 {
		return nil, errs.New(errs.KindInvalidInput, "lesson_length_minutes wajib diisi dan positif")
	}
	if err := validateComment(in); err != nil {
		return nil, err
	}

	start, hasStart, err := s.resolveStart(in)
	if err != nil {
		return nil, err
	}
	if !hasStart {
		return nil, errs.New(errs.KindInvalidInput,
			"lesson_start_time atau (lesson_timezone, lesson_start_date, lesson_start_hour, lesson_start_minute) wajib diisi")
	}
	in.LessonStartTime = patch.Of(start)
	in.LessonEndTime = patch.Of(EndFor(start, in.LessonLengthMinutes.Value))

	var created *model.LessonModel
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		teacherID, found, er := s.groups.TeacherIDFor(ctx, tx, partitionID, in.LessonGroupID.Value)
		if er != nil {
			return errs.Storage(er)
		}
		if !found {
			return errs.Newf(errs.KindNotFound, "group %d tidak ditemukan", in.LessonGroupID.Value)
		}
		in.LessonTeacherID = patch.Of(teacherID)

		if !dto.LessonFields.IsCreatable(in) {
			missing := strings.Join(dto.LessonFields.MissingMandatory(in), ", ")
			return errs.Newf(errs.KindInvalidInput, "field wajib belum lengkap: %s", missing)
		}

		conflict, er := s.overlap.WithTx(tx).IsOverlapping(ctx, partitionID, teacherID,
			in.LessonStartTime.Value, in.LessonEndTime.Value, 0)
		if er != nil {
			return errs.Storage(er)
		}
		if conflict {
			return errs.Newf(errs.KindOverlap, "teacher %d sudah punya les di rentang waktu itu", teacherID)
		}

		created, er = s.store.WithTx(tx).Create(ctx, partitionID, in)
		if er != nil {
			return errs.Storage(er)
		}
		if created == nil {
			return errs.New(errs.KindStorage, "les tersimpan tapi gagal dibaca kembali")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.onMutate(partitionID)
	return created, nil
}

// Update: Existing → Validated → {Updated | Rejected}. Field yang tidak
// disuplai mengikuti nilai tersimpan; start/end/teacher efektif dihitung
// ulang dari gabungan keduanya, dan cek bentrok mengecualikan les ini.
func (s *LessonService) Update(ctx context.Context, partitionID, lessonID int64, in *dto.LessonInput) (*model.LessonModel, error) {
	if in == nil {
		panic("LessonService.Update: input nil")
	}
	if lessonID <= 0 {
		return nil, errs.New(errs.KindInvalidInput, "lesson_id path tidak valid")
	}
	if in.LessonGroupID.Set && in.LessonGroupID.Value <= 0 {
		return nil, errs.New(errs.KindInvalidInput, "lesson_group_id harus positif")
	}
	if in.LessonLengthMinutes.Set && in.LessonLengthMinutes.Value <= 0 {
		return nil, errs.New(errs.KindInvalidInput, "lesson_length_minutes harus positif")
	}
	if err := validateComment(in); err != nil {
		return nil, err
	}

	newStart, hasNewStart, err := s.resolveStart(in)
	if err != nil {
		return nil, err
	}

	var updated *model.LessonModel
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txStore := s.store.WithTx(tx)

		existing, er := txStore.Read(ctx, partitionID, lessonID)
		if er != nil {
			return errs.Storage(er)
		}
		if existing == nil {
			return errs.Newf(errs.KindNotFound, "lesson %d tidak ditemukan", lessonID)
		}

		// efektif = supplied over existing
		effGroup := existing.LessonGroupID
		if in.LessonGroupID.Set {
			effGroup = in.LessonGroupID.Value
		}
		effTeacher := existing.LessonTeacherID
		if in.LessonGroupID.Set && effGroup != existing.LessonGroupID {
			teacherID, found, e := s.groups.TeacherIDFor(ctx, tx, partitionID, effGroup)
			if e != nil {
				return errs.Storage(e)
			}
			if !found {
				return errs.Newf(errs.KindNotFound, "group %d tidak ditemukan", effGroup)
			}
			effTeacher = teacherID
			in.LessonTeacherID = patch.Of(teacherID)
		}

		effStart := existing.LessonStartTime
		if hasNewStart {
			effStart = newStart
			in.LessonStartTime = patch.Of(newStart)
		}
		effLength := existing.LessonLengthMinutes
		if in.LessonLengthMinutes.Set {
			effLength = in.LessonLengthMinutes.Value
		}
		effEnd := EndFor(effStart, effLength)
		if hasNewStart || in.LessonLengthMinutes.Set {
			in.LessonEndTime = patch.Of(effEnd)
		}

		in.LessonID = patch.Of(lessonID)
		if !dto.LessonFields.IsUpdatable(in) {
			return errs.New(errs.KindInvalidInput, "tidak ada field yang bisa di-update")
		}

		conflict, er := s.overlap.WithTx(tx).IsOverlapping(ctx, partitionID, effTeacher, effStart, effEnd, lessonID)
		if er != nil {
			return errs.Storage(er)
		}
		if conflict {
			return errs.Newf(errs.KindOverlap, "teacher %d sudah punya les di rentang waktu itu", effTeacher)
		}

		rows, er := txStore.Update(ctx, partitionID, lessonID, in)
		if er != nil {
			return errs.Storage(er)
		}
		if rows == 0 {
			return errs.Newf(errs.KindNotFound, "lesson %d tidak ditemukan", lessonID)
		}

		updated, er = txStore.Read(ctx, partitionID, lessonID)
		if er != nil {
			return errs.Storage(er)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.onMutate(partitionID)
	return updated, nil
}

// Delete: Existing → CheckUsage → {Deleted | Rejected}.
func (s *LessonService) Delete(ctx context.Context, partitionID, lessonID int64) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txStore := s.store.WithTx(tx)

		ok, er := txStore.Exists(ctx, partitionID, lessonID)
		if er != nil {
			return errs.Storage(er)
		}
		if !ok {
			return errs.Newf(errs.KindNotFound, "lesson %d tidak ditemukan", lessonID)
		}

		used, er := s.usage.IsUsed(ctx, tx, lessonID)
		if er != nil {
			return errs.Storage(er)
		}
		if used {
			return errs.Newf(errs.KindStillReferenced, "lesson %d masih direferensikan attendance", lessonID)
		}

		if _, er := txStore.Delete(ctx, partitionID, lessonID); er != nil {
			return errs.Storage(er)
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.onMutate(partitionID)
	return nil
}

func (s *LessonService) GetByID(ctx context.Context, partitionID, lessonID int64) (*model.LessonModel, error) {
	m, err := s.store.Read(ctx, partitionID, lessonID)
	if err != nil {
		return nil, errs.Storage(err)
	}
	if m == nil {
		return nil, errs.Newf(errs.KindNotFound, "lesson %d tidak ditemukan", lessonID)
	}
	return m, nil
}

// ListFilter membatasi listing lesson: satu kolom FK langsung di tabel
// lessons (group/teacher), atau lewat relasi (customer via groups, student
// via group yang dipegangnya), plus window waktu [start, end) opsional.
type ListFilter struct {
	FKColumn   string
	FKValue    int64
	CustomerID int64
	StudentID  int64
	Start      *int64
	End        *int64
}

func (s *LessonService) filteredQuery(ctx context.Context, partitionID int64, f ListFilter) *gorm.DB {
	q := s.db.WithContext(ctx).Table("lessons").
		Scopes(scope.ByPartition("lesson_partition_id", partitionID))
	if f.FKColumn != "" {
		q = q.Where(f.FKColumn+" = ?", f.FKValue)
	}
	if f.CustomerID != 0 {
		q = q.Where("lesson_group_id IN (SELECT group_id FROM groups WHERE group_partition_id = ? AND group_customer_id = ?)",
			partitionID, f.CustomerID)
	}
	if f.StudentID != 0 {
		q = q.Where("lesson_group_id IN (SELECT student_group_id FROM students WHERE student_partition_id = ? AND student_id = ? AND student_group_id IS NOT NULL)",
			partitionID, f.StudentID)
	}
	if f.Start != nil {
		q = q.Where("lesson_start_time >= ?", *f.Start)
	}
	if f.End != nil {
		q = q.Where("lesson_end_time <= ?", *f.End)
	}
	return q
}

// Count menghitung dengan predikat yang sama persis dengan List; pagination
// listing ter-filter tidak boleh pakai total seluruh partition.
func (s *LessonService) Count(ctx context.Context, partitionID int64, f ListFilter) (int64, error) {
	var n int64
	if err := s.filteredQuery(ctx, partitionID, f).Count(&n).Error; err != nil {
		return 0, errs.Storage(err)
	}
	return n, nil
}

// List mengambil satu halaman les sesuai filter, urut lesson_id.
func (s *LessonService) List(ctx context.Context, partitionID int64, f ListFilter, page, pageSize int) ([]model.LessonModel, error) {
	var ms []model.LessonModel
	err := s.filteredQuery(ctx, partitionID, f).
		Order("lesson_id ASC").Limit(pageSize).Offset(page * pageSize).
		Find(&ms).Error
	if err != nil {
		return nil, errs.Storage(err)
	}
	return ms, nil
}
