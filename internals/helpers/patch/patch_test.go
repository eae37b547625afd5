// file: internals/helpers/patch/patch_test.go
package patch

import (
	"encoding/json"
	"testing"
)

type payload struct {
	Title string                `json:"title"`
	Note  PatchNullable[string] `json:"note"`
	Pages Patch[int]            `json:"pages"`
}

func TestPatchTriState(t *testing.T) {
	t.Run("absen", func(t *testing.T) {
		var p payload
		if err := json.Unmarshal([]byte(`{"title":"x"}`), &p); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if p.Pages.Set || p.Note.Set {
			t.Fatalf("field absen tidak boleh ter-set: %+v", p)
		}
	})

	t.Run("nilai", func(t *testing.T) {
		var p payload
		if err := json.Unmarshal([]byte(`{"pages":0,"note":"n"}`), &p); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if !p.Pages.Set || p.Pages.Value != 0 {
			t.Fatalf("nilai nol eksplisit harus ter-set: %+v", p.Pages)
		}
		if !p.Note.Set || !p.Note.Valid || p.Note.Value != "n" {
			t.Fatalf("note = %+v", p.Note)
		}
	})

	t.Run("null eksplisit", func(t *testing.T) {
		var p payload
		if err := json.Unmarshal([]byte(`{"note":null}`), &p); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if !p.Note.Set || p.Note.Valid {
			t.Fatalf("null eksplisit harus Set tanpa Valid: %+v", p.Note)
		}
	})
}
