// file: internals/features/masters/dto/dto_common.go
package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"lesprivat_backend/internals/helpers/errs"
	"lesprivat_backend/internals/helpers/patch"
)

// satu instance untuk semua DTO master; batasan NILAI dicek lewat sini,
// presence/kelengkapan tetap urusan field model.
var validate = validator.New()

// nullableValue menerjemahkan PatchNullable ke (nilai, ter-set?) milik field
// model; set-null eksplisit jadi (nil, true).
func nullableValue[T any](p patch.PatchNullable[T]) (any, bool) {
	if !p.Set {
		return nil, false
	}
	if !p.Valid {
		return nil, true
	}
	return p.Value, true
}

const dateLayout = "2006-01-02"

// parseDate: "YYYY-MM-DD" → time.Time (UTC midnight). Accessor field model
// memanggil ulang setelah Validate meloloskan formatnya.
func parseDate(s string) (time.Time, bool) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	return t, err == nil
}

func requireDate(name, value string) error {
	if err := validate.Var(strings.TrimSpace(value), "required,datetime="+dateLayout); err != nil {
		return errs.Newf(errs.KindInvalidInput, "%s tidak valid (format YYYY-MM-DD)", name)
	}
	return nil
}

func requireEmailish(name, value string) error {
	if err := validate.Var(strings.TrimSpace(value), "required,email,max=120"); err != nil {
		return errs.Newf(errs.KindInvalidInput, "%s bukan email yang valid", name)
	}
	return nil
}

func requireMaxLen(name, value string, max int) error {
	if err := validate.Var(value, fmt.Sprintf("max=%d", max)); err != nil {
		return errs.Newf(errs.KindInvalidInput, "%s maksimal %d karakter", name, max)
	}
	return nil
}

func requireRange(name string, value, min, max int) error {
	if err := validate.Var(value, fmt.Sprintf("min=%d,max=%d", min, max)); err != nil {
		return errs.Newf(errs.KindInvalidInput, "%s di luar rentang %d-%d: %d", name, min, max, value)
	}
	return nil
}
