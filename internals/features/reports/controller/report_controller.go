// file: internals/features/reports/controller/report_controller.go
package controller

import (
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lesprivat_backend/internals/configs"
	lessonsvc "lesprivat_backend/internals/features/lessons/service"
	m "lesprivat_backend/internals/features/masters/model"
	"lesprivat_backend/internals/features/reports/service"
	helper "lesprivat_backend/internals/helpers"
	helperAuth "lesprivat_backend/internals/helpers/auth"
	"lesprivat_backend/internals/platform/scope"
)

type ReportController struct {
	DB       *gorm.DB
	Service  *service.ReportService
	Resolver lessonsvc.TimeResolver
}

func NewReportController(db *gorm.DB, svc *service.ReportService, resolver lessonsvc.TimeResolver) *ReportController {
	return &ReportController{DB: db, Service: svc, Resolver: resolver}
}

func parseMillisQuery(c *fiber.Ctx, name string) (int64, bool, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false, fiber.NewError(fiber.StatusBadRequest, name+" tidak valid")
	}
	return v, true, nil
}

// periodFor menentukan rentang tagihan. Prioritas: start/end eksplisit,
// kalau tidak ada pakai payment_day customer (fallback: tanggal mulai).
func (ctl *ReportController) periodFor(c *fiber.Ctx, partitionID int64) (int64, int64, error) {
	start, hasStart, err := parseMillisQuery(c, "start")
	if err != nil {
		return 0, 0, err
	}
	end, hasEnd, err := parseMillisQuery(c, "end")
	if err != nil {
		return 0, 0, err
	}
	if hasStart != hasEnd {
		return 0, 0, fiber.NewError(fiber.StatusBadRequest, "start dan end harus diisi berpasangan")
	}
	if hasStart {
		return start, end, nil
	}

	customerID, err := strconv.ParseInt(c.Query("customer_id"), 10, 64)
	if err != nil || customerID <= 0 {
		return 0, 0, fiber.NewError(fiber.StatusBadRequest, "isi start+end atau customer_id")
	}

	var customer m.CustomerModel
	err = ctl.DB.WithContext(c.UserContext()).
		Scopes(scope.ByIDAndPartition("customer_id", customerID, "customer_partition_id", partitionID)).
		First(&customer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, 0, fiber.NewError(fiber.StatusNotFound, "Customer tidak ditemukan")
	}
	if err != nil {
		return 0, 0, err
	}

	loc, err := time.LoadLocation(configs.AppTimezone)
	if err != nil {
		loc = time.UTC
	}

	var from, to time.Time
	if customer.CustomerPaymentDay != nil {
		from, to, err = ctl.Resolver.BillingPeriod(*customer.CustomerPaymentDay, loc)
	} else {
		from, to, err = ctl.Resolver.BillingPeriodFromStartDate(customer.CustomerStartDate, loc)
	}
	if err != nil {
		return 0, 0, err
	}
	return from.UnixMilli(), to.UnixMilli(), nil
}

// GetTeacherBilling: rekap fee guru untuk satu periode tagihan.
func (ctl *ReportController) GetTeacherBilling(c *fiber.Ctx) error {
	partitionID, err := helperAuth.GetPartitionID(c)
	if err != nil {
		return helper.JsonErrorFrom(c, err)
	}

	start, end, err := ctl.periodFor(c, partitionID)
	if err != nil {
		return helper.JsonErrorFrom(c, err)
	}

	rows, err := ctl.Service.TeacherBilling(c.UserContext(), partitionID, start, end)
	if err != nil {
		log.Printf("[Report.TeacherBilling] error: %v", err)
		return helper.JsonErrorFrom(c, err)
	}
	return helper.JsonOK(c, "OK", fiber.Map{
		"period_start": start,
		"period_end":   end,
		"rows":         rows,
	})
}
