// file: internals/features/masters/dto/customer_dto_test.go
package dto

import (
	"strings"
	"testing"

	"lesprivat_backend/internals/helpers/errs"
	"lesprivat_backend/internals/helpers/patch"
)

func TestCustomerInputValidate(t *testing.T) {
	cases := []struct {
		name    string
		in      CustomerInput
		wantErr bool
	}{
		{
			name: "lengkap dan valid",
			in: CustomerInput{
				CustomerName:      patch.Of("PT Maju"),
				CustomerEmail:     patch.Of("admin@maju.co.id"),
				CustomerStartDate: patch.Of("2026-01-15"),
			},
		},
		{
			name:    "email tanpa @ ditolak",
			in:      CustomerInput{CustomerEmail: patch.Of("bukan-email")},
			wantErr: true,
		},
		{
			name:    "email dengan spasi di tengah ditolak",
			in:      CustomerInput{CustomerEmail: patch.Of("a b@maju.co.id")},
			wantErr: true,
		},
		{
			name:    "nama lebih dari 200 karakter ditolak",
			in:      CustomerInput{CustomerName: patch.Of(strings.Repeat("x", 201))},
			wantErr: true,
		},
		{
			name:    "tanggal bukan YYYY-MM-DD ditolak",
			in:      CustomerInput{CustomerStartDate: patch.Of("15-01-2026")},
			wantErr: true,
		},
		{
			name:    "tanggal mustahil ditolak",
			in:      CustomerInput{CustomerStartDate: patch.Of("2026-02-31")},
			wantErr: true,
		},
		{
			name:    "payment_day 0 ditolak",
			in:      CustomerInput{CustomerPaymentDay: patch.NullableOf(0)},
			wantErr: true,
		},
		{
			name:    "payment_day 32 ditolak",
			in:      CustomerInput{CustomerPaymentDay: patch.NullableOf(32)},
			wantErr: true,
		},
		{
			name: "payment_day 31 diterima",
			in:   CustomerInput{CustomerPaymentDay: patch.NullableOf(31)},
		},
		{
			name: "payment_day null eksplisit diterima",
			in:   CustomerInput{CustomerPaymentDay: patch.Null[int]()},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.in.Validate()
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

func TestTeacherInputValidate(t *testing.T) {
	t.Run("email valid lolos", func(t *testing.T) {
		in := TeacherInput{TeacherEmail: patch.Of("budi@lesprivat.id")}
		if err := in.Validate(); err != nil {
			t.Fatalf("harus lolos: %v", err)
		}
	})
	t.Run("email tanpa domain ditolak", func(t *testing.T) {
		in := TeacherInput{TeacherEmail: patch.Of("budi@")}
		err := in.Validate()
		if err == nil || errs.KindOf(err) != errs.KindInvalidInput {
			t.Fatalf("harus KindInvalidInput, dapat %v", err)
		}
	})
}
