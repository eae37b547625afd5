// file: internals/features/lessons/controller/lesson_controller.go
package controller

import (
	"log"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	d "lesprivat_backend/internals/features/lessons/dto"
	svc "lesprivat_backend/internals/features/lessons/service"
	helper "lesprivat_backend/internals/helpers"
	helperAuth "lesprivat_backend/internals/helpers/auth"
)

/* =========================
   Controller & Constructor
   ========================= */

type LessonController struct {
	Service  *svc.LessonService
	Validate *validator.Validate
}

func New(service *svc.LessonService, v *validator.Validate) *LessonController {
	return &LessonController{Service: service, Validate: v}
}

/* =========================
   Helpers
   ========================= */

func parseIDParam(c *fiber.Ctx, name string) (int64, error) {
	raw := strings.TrimSpace(c.Params(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, name+" tidak valid")
	}
	return id, nil
}

// window waktu opsional ?start=&end= (epoch millis)
func parseWindow(c *fiber.Ctx) (*int64, *int64, error) {
	var start, end *int64
	if raw := strings.TrimSpace(c.Query("start")); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, nil, fiber.NewError(fiber.StatusBadRequest, "start tidak valid")
		}
		start = &v
	}
	if raw := strings.TrimSpace(c.Query("end")); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, nil, fiber.NewError(fiber.StatusBadRequest, "end tidak valid")
		}
		end = &v
	}
	return start, end, nil
}

/* =========================
   Create
   ========================= */

func (ctl *LessonController) Create(c *fiber.Ctx) error {
	partitionID, err := helperAuth.GetPartitionID(c)
	if err != nil {
		return helper.JsonErrorFrom(c, err)
	}

	var req d.LessonInput
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[Lesson.Create] BodyParser error: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := req.ValidateWith(ctl.Validate); err != nil {
		return helper.JsonErrorFrom(c, err)
	}

	created, err := ctl.Service.Create(c.UserContext(), partitionID, &req)
	if err != nil {
		log.Printf("[Lesson.Create] error: %v", err)
		return helper.JsonErrorFrom(c, err)
	}
	return helper.JsonCreated(c, "Lesson berhasil dibuat", d.FromModel(created))
}

/* =========================
   Update (partial)
   ========================= */

func (ctl *LessonController) Update(c *fiber.Ctx) error {
	partitionID, err := helperAuth.GetPartitionID(c)
	if err != nil {
		return helper.JsonErrorFrom(c, err)
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return helper.JsonErrorFrom(c, err)
	}

	var req d.LessonInput
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[Lesson.Update] BodyParser error: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := req.ValidateWith(ctl.Validate); err != nil {
		return helper.JsonErrorFrom(c, err)
	}

	updated, err := ctl.Service.Update(c.UserContext(), partitionID, id, &req)
	if err != nil {
		log.Printf("[Lesson.Update] error: %v", err)
		return helper.JsonErrorFrom(c, err)
	}
	return helper.JsonOK(c, "Lesson berhasil di-update", d.FromModel(updated))
}

/* =========================
   Delete
   ========================= */

func (ctl *LessonController) Delete(c *fiber.Ctx) error {
	partitionID, err := helperAuth.GetPartitionID(c)
	if err != nil {
		return helper.JsonErrorFrom(c, err)
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return helper.JsonErrorFrom(c, err)
	}

	if err := ctl.Service.Delete(c.UserContext(), partitionID, id); err != nil {
		log.Printf("[Lesson.Delete] error: %v", err)
		return helper.JsonErrorFrom(c, err)
	}
	return helper.JsonOK(c, "Lesson berhasil dihapus", fiber.Map{"lesson_id": id})
}

/* =========================
   Queries
   ========================= */

func (ctl *LessonController) GetByID(c *fiber.Ctx) error {
	partitionID, err := helperAuth.GetPartitionID(c)
	if err != nil {
		return helper.JsonErrorFrom(c, err)
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return helper.JsonErrorFrom(c, err)
	}

	m, err := ctl.Service.GetByID(c.UserContext(), partitionID, id)
	if err != nil {
		return helper.JsonErrorFrom(c, err)
	}
	return helper.JsonOK(c, "OK", d.FromModel(m))
}

func (ctl *LessonController) List(c *fiber.Ctx) error {
	return ctl.list(c, svc.ListFilter{})
}

func (ctl *LessonController) ListByGroup(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return helper.JsonErrorFrom(c, err)
	}
	return ctl.list(c, svc.ListFilter{FKColumn: "lesson_group_id", FKValue: id})
}

func (ctl *LessonController) ListByTeacher(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return helper.JsonErrorFrom(c, err)
	}
	return ctl.list(c, svc.ListFilter{FKColumn: "lesson_teacher_id", FKValue: id})
}

// ListByCustomer: semua les milik group-group customer itu.
func (ctl *LessonController) ListByCustomer(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return helper.JsonErrorFrom(c, err)
	}
	return ctl.list(c, svc.ListFilter{CustomerID: id})
}

// ListByStudent: les dari group yang sedang dipegang student itu.
func (ctl *LessonController) ListByStudent(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return helper.JsonErrorFrom(c, err)
	}
	return ctl.list(c, svc.ListFilter{StudentID: id})
}

func (ctl *LessonController) list(c *fiber.Ctx, f svc.ListFilter) error {
	partitionID, err := helperAuth.GetPartitionID(c)
	if err != nil {
		return helper.JsonErrorFrom(c, err)
	}
	f.Start, f.End, err = parseWindow(c)
	if err != nil {
		return helper.JsonErrorFrom(c, err)
	}
	paging := helper.ResolvePaging(c, 25, 200)

	ms, err := ctl.Service.List(c.UserContext(), partitionID, f, paging.Page, paging.PerPage)
	if err != nil {
		log.Printf("[Lesson.List] error: %v", err)
		return helper.JsonErrorFrom(c, err)
	}
	// total dihitung dengan filter yang sama, bukan seluruh partition
	total, err := ctl.Service.Count(c.UserContext(), partitionID, f)
	if err != nil {
		return helper.JsonErrorFrom(c, err)
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"lessons":    d.FromModels(ms),
		"pagination": helper.BuildPagination(total, paging, len(ms)),
	})
}
