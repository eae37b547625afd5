// file: internals/features/users/controller/auth_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"lesprivat_backend/internals/features/users/dto"
	m "lesprivat_backend/internals/features/users/model"
	helper "lesprivat_backend/internals/helpers"
	helperAuth "lesprivat_backend/internals/helpers/auth"
)

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Validate: validator.New()}
}

// Login: email + password -> JWT berisi partition_id, user_id, role.
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user m.UserModel
	err := ctl.DB.WithContext(c.UserContext()).
		Where("user_email = ?", strings.ToLower(strings.TrimSpace(req.Email))).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}
	if err != nil {
		log.Printf("[Auth.Login] query error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
	}
	if !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Akun tidak aktif")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.Password)) != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	token, expiresAt, err := helperAuth.CreateToken(user.UserID, user.UserPartitionID, user.UserRole)
	if err != nil {
		log.Printf("[Auth.Login] sign token error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
	}

	return helper.JsonOK(c, "Login berhasil", dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.UnixMilli(),
		User:      dto.FromUser(&user),
	})
}

// Register: buat user baru di partition milik pemanggil (khusus owner/admin).
func (ctl *AuthController) Register(c *fiber.Ctx) error {
	partitionID, err := helperAuth.GetPartitionID(c)
	if err != nil {
		return helper.JsonErrorFrom(c, err)
	}

	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	if err := ctl.DB.WithContext(c.UserContext()).Model(&m.UserModel{}).
		Where("user_email = ?", email).Count(&count).Error; err != nil {
		log.Printf("[Auth.Register] query error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[Auth.Register] hash error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
	}

	user := m.UserModel{
		UserPartitionID: partitionID,
		UserName:        req.Name,
		UserEmail:       email,
		UserPassword:    string(hashed),
		UserRole:        req.Role,
		UserIsActive:    true,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&user).Error; err != nil {
		log.Printf("[Auth.Register] create error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat user")
	}

	return helper.JsonCreated(c, "User berhasil dibuat", dto.FromUser(&user))
}

// Me: profil user dari token.
func (ctl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		return helper.JsonErrorFrom(c, err)
	}
	partitionID, err := helperAuth.GetPartitionID(c)
	if err != nil {
		return helper.JsonErrorFrom(c, err)
	}

	var user m.UserModel
	err = ctl.DB.WithContext(c.UserContext()).
		Where("user_id = ? AND user_partition_id = ?", userID, partitionID).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}
	if err != nil {
		log.Printf("[Auth.Me] query error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
	}
	return helper.JsonOK(c, "OK", dto.FromUser(&user))
}
