// file: internals/platform/entityhttp/controller.go
package entityhttp

import (
	"context"
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "lesprivat_backend/internals/helpers"
	helperAuth "lesprivat_backend/internals/helpers/auth"
	"lesprivat_backend/internals/helpers/errs"
	"lesprivat_backend/internals/platform/crudstore"
	"lesprivat_backend/internals/platform/usagecheck"
)

// CRUD per entitas semuanya lewat satu controller generik: validasi nilai
// per-input, kelayakan create/update dari field model, duplikat dari unique
// key, delete guard dari usage checker. Controller per entitas tinggal
// konfigurasi.

type validatable interface {
	Validate() error
}

type Controller[M any, I validatable] struct {
	DB    *gorm.DB
	Store *crudstore.Store[M, I]
	Name  string // untuk log & pesan error, mis. "customer"

	NewInput func() I
	SetID    func(in I, id int64)

	// optional: kolom unik per partition (mis. teacher_email)
	UniqueColumn string
	UniqueValue  func(in I) (any, bool)

	// optional: cek referensial sebelum tulis (FK harus ada di partition)
	PreWrite func(ctx context.Context, tx *gorm.DB, partitionID int64, in I) error

	// optional: delete guard
	Usage *usagecheck.Checker

	Response  func(*M) any
	Responses func([]M) any
}

func titled(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

func ParseIDParam(c *fiber.Ctx, name string) (int64, error) {
	raw := strings.TrimSpace(c.Params(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, name+" tidak valid")
	}
	return id, nil
}

func (ctl *Controller[M, I]) checkDuplicate(ctx context.Context, tx *gorm.DB, partitionID, selfID int64, in I) error {
	if ctl.UniqueColumn == "" || ctl.UniqueValue == nil {
		return nil
	}
	v, set := ctl.UniqueValue(in)
	if !set {
		return nil
	}
	id, found, err := ctl.Store.WithTx(tx).FirstIDForKey(ctx, partitionID, ctl.UniqueColumn, v)
	if err != nil {
		return errs.Storage(err)
	}
	if found && id != selfID {
		return errs.Newf(errs.KindDuplicate, "%s dengan %s itu sudah ada", ctl.Name, ctl.UniqueColumn)
	}
	return nil
}

func (ctl *Controller[M, I]) Create(c *fiber.Ctx) error {
	partitionID, err := helperAuth.GetPartitionID(c)
	if err != nil {
		return helper.JsonErrorFrom(c, err)
	}

	in := ctl.NewInput()
	if err := c.BodyParser(in); err != nil {
		log.Printf("[%s.Create] BodyParser error: %v", ctl.Name, err)
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := in.Validate(); err != nil {
		return helper.JsonErrorFrom(c, err)
	}

	model := ctl.Store.Model()
	if !model.IsCreatable(in) {
		if _, set := model.PK(in); set {
			return helper.JsonError(c, fiber.StatusBadRequest, model.PKName+" tidak boleh diisi saat create")
		}
		missing := strings.Join(model.MissingMandatory(in), ", ")
		return helper.JsonError(c, fiber.StatusBadRequest, "Field wajib belum lengkap: "+missing)
	}

	var created *M
	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if ctl.PreWrite != nil {
			if er := ctl.PreWrite(c.UserContext(), tx, partitionID, in); er != nil {
				return er
			}
		}
		if er := ctl.checkDuplicate(c.UserContext(), tx, partitionID, 0, in); er != nil {
			return er
		}
		var er error
		created, er = ctl.Store.WithTx(tx).Create(c.UserContext(), partitionID, in)
		if er != nil {
			return errs.Storage(er)
		}
		if created == nil {
			return errs.Newf(errs.KindStorage, "%s tersimpan tapi gagal dibaca kembali", ctl.Name)
		}
		return nil
	})
	if err != nil {
		log.Printf("[%s.Create] error: %v", ctl.Name, err)
		return helper.JsonErrorFrom(c, err)
	}
	return helper.JsonCreated(c, titled(ctl.Name)+" berhasil dibuat", ctl.Response(created))
}

func (ctl *Controller[M, I]) Update(c *fiber.Ctx) error {
	partitionID, err := helperAuth.GetPartitionID(c)
	if err != nil {
		return helper.JsonErrorFrom(c, err)
	}
	id, err := ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonErrorFrom(c, err)
	}

	in := ctl.NewInput()
	if err := c.BodyParser(in); err != nil {
		log.Printf("[%s.Update] BodyParser error: %v", ctl.Name, err)
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := in.Validate(); err != nil {
		return helper.JsonErrorFrom(c, err)
	}
	ctl.SetID(in, id)

	model := ctl.Store.Model()
	if !model.IsUpdatable(in) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang bisa di-update")
	}

	var updated *M
	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		txStore := ctl.Store.WithTx(tx)

		exists, er := txStore.Exists(c.UserContext(), partitionID, id)
		if er != nil {
			return errs.Storage(er)
		}
		if !exists {
			return errs.Newf(errs.KindNotFound, "%s %d tidak ditemukan", ctl.Name, id)
		}
		if ctl.PreWrite != nil {
			if er := ctl.PreWrite(c.UserContext(), tx, partitionID, in); er != nil {
				return er
			}
		}
		if er := ctl.checkDuplicate(c.UserContext(), tx, partitionID, id, in); er != nil {
			return er
		}

		rows, er := txStore.Update(c.UserContext(), partitionID, id, in)
		if er != nil {
			return errs.Storage(er)
		}
		if rows == 0 {
			return errs.Newf(errs.KindNotFound, "%s %d tidak ditemukan", ctl.Name, id)
		}
		updated, er = txStore.Read(c.UserContext(), partitionID, id)
		if er != nil {
			return errs.Storage(er)
		}
		return nil
	})
	if err != nil {
		log.Printf("[%s.Update] error: %v", ctl.Name, err)
		return helper.JsonErrorFrom(c, err)
	}
	return helper.JsonOK(c, titled(ctl.Name)+" berhasil di-update", ctl.Response(updated))
}

func (ctl *Controller[M, I]) Delete(c *fiber.Ctx) error {
	partitionID, err := helperAuth.GetPartitionID(c)
	if err != nil {
		return helper.JsonErrorFrom(c, err)
	}
	id, err := ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonErrorFrom(c, err)
	}

	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		txStore := ctl.Store.WithTx(tx)

		exists, er := txStore.Exists(c.UserContext(), partitionID, id)
		if er != nil {
			return errs.Storage(er)
		}
		if !exists {
			return errs.Newf(errs.KindNotFound, "%s %d tidak ditemukan", ctl.Name, id)
		}
		if ctl.Usage != nil {
			used, er := ctl.Usage.IsUsed(c.UserContext(), tx, id)
			if er != nil {
				return errs.Storage(er)
			}
			if used {
				return errs.Newf(errs.KindStillReferenced, "%s %d masih direferensikan data lain", ctl.Name, id)
			}
		}
		_, er = txStore.Delete(c.UserContext(), partitionID, id)
		if er != nil {
			return errs.Storage(er)
		}
		return nil
	})
	if err != nil {
		log.Printf("[%s.Delete] error: %v", ctl.Name, err)
		return helper.JsonErrorFrom(c, err)
	}
	return helper.JsonOK(c, titled(ctl.Name)+" berhasil dihapus", fiber.Map{ctl.Name + "_id": id})
}

func (ctl *Controller[M, I]) GetByID(c *fiber.Ctx) error {
	partitionID, err := helperAuth.GetPartitionID(c)
	if err != nil {
		return helper.JsonErrorFrom(c, err)
	}
	id, err := ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonErrorFrom(c, err)
	}

	m, err := ctl.Store.Read(c.UserContext(), partitionID, id)
	if err != nil {
		return helper.JsonErrorFrom(c, errs.Storage(err))
	}
	if m == nil {
		return helper.JsonError(c, fiber.StatusNotFound, titled(ctl.Name)+" tidak ditemukan")
	}
	return helper.JsonOK(c, "OK", ctl.Response(m))
}

func (ctl *Controller[M, I]) List(c *fiber.Ctx) error {
	partitionID, err := helperAuth.GetPartitionID(c)
	if err != nil {
		return helper.JsonErrorFrom(c, err)
	}
	paging := helper.ResolvePaging(c, 25, 200)

	ms, err := ctl.Store.ReadAll(c.UserContext(), partitionID, paging.Page, paging.PerPage)
	if err != nil {
		return helper.JsonErrorFrom(c, errs.Storage(err))
	}
	total, err := ctl.Store.CountAll(c.UserContext(), partitionID)
	if err != nil {
		return helper.JsonErrorFrom(c, errs.Storage(err))
	}
	return helper.JsonOK(c, "OK", fiber.Map{
		ctl.Name + "s": ctl.Responses(ms),
		"pagination":   helper.BuildPagination(total, paging, len(ms)),
	})
}
