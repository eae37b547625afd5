// file: internals/helpers/errs/errs_test.go
package errs

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	err := New(KindOverlap, "jadwal bentrok")
	if KindOf(err) != KindOverlap {
		t.Fatalf("KindOf = %v", KindOf(err))
	}

	// kind tetap terbaca walau dibungkus
	wrapped := fmt.Errorf("lapisan luar: %w", err)
	if KindOf(wrapped) != KindOverlap {
		t.Fatalf("KindOf wrapped = %v", KindOf(wrapped))
	}

	if KindOf(errors.New("bukan errs")) != KindStorage {
		t.Fatalf("error asing harus jatuh ke Storage")
	}
	if KindOf(nil) != KindStorage {
		t.Fatalf("nil harus jatuh ke Storage")
	}
}

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		kind Kind
		want int
	}{
		{KindInvalidInput, 400},
		{KindNotFound, 404},
		{KindOverlap, 409},
		{KindDuplicate, 409},
		{KindStillReferenced, 409},
		{KindStorage, 500},
	}
	for _, tc := range cases {
		if got := HTTPStatus(New(tc.kind, "x")); got != tc.want {
			t.Fatalf("HTTPStatus(%v) = %d, want %d", tc.kind, got, tc.want)
		}
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("akar masalah")
	err := Wrap(KindNotFound, "tidak ketemu", cause)
	if !errors.Is(err, cause) {
		t.Fatal("Wrap harus mempertahankan chain")
	}
}
