// file: internals/platform/fieldmodel/fieldmodel_test.go
package fieldmodel

import (
	"reflect"
	"testing"
)

type bookInput struct {
	id     *int64
	title  *string
	author *string
	note   *string
}

func strPtr(s string) *string { return &s }
func i64Ptr(v int64) *int64   { return &v }

func bookModel() Model[*bookInput] {
	return Model[*bookInput]{
		PKName:   "book_id",
		PKColumn: "book_id",
		PK: func(in *bookInput) (int64, bool) {
			if in.id == nil {
				return 0, false
			}
			return *in.id, true
		},
		Fields: []Descriptor[*bookInput]{
			{
				Name: "book_title", Column: "book_title", Mandatory: true,
				Value: func(in *bookInput) (any, bool) {
					if in.title == nil {
						return nil, false
					}
					return *in.title, true
				},
			},
			{
				Name: "book_author", Column: "book_author", Mandatory: true, Immutable: true,
				Value: func(in *bookInput) (any, bool) {
					if in.author == nil {
						return nil, false
					}
					return *in.author, true
				},
			},
			{
				Name: "book_note", Column: "book_note",
				Value: func(in *bookInput) (any, bool) {
					if in.note == nil {
						return nil, false
					}
					return *in.note, true
				},
			},
		},
	}
}

func TestIsCreatable(t *testing.T) {
	m := bookModel()

	t.Run("semua mandatory terisi tanpa id", func(t *testing.T) {
		in := &bookInput{title: strPtr("Laskar Pelangi"), author: strPtr("Andrea")}
		if !m.IsCreatable(in) {
			t.Fatalf("harusnya creatable")
		}
	})

	t.Run("mandatory kurang", func(t *testing.T) {
		in := &bookInput{title: strPtr("Laskar Pelangi")}
		if m.IsCreatable(in) {
			t.Fatalf("author kosong, harusnya tidak creatable")
		}
		missing := m.MissingMandatory(in)
		if !reflect.DeepEqual(missing, []string{"book_author"}) {
			t.Fatalf("MissingMandatory = %v", missing)
		}
	})

	t.Run("id ikut terisi", func(t *testing.T) {
		in := &bookInput{id: i64Ptr(7), title: strPtr("X"), author: strPtr("Y")}
		if m.IsCreatable(in) {
			t.Fatalf("pk terisi, harusnya tidak creatable")
		}
	})

	t.Run("optional boleh kosong", func(t *testing.T) {
		in := &bookInput{title: strPtr("X"), author: strPtr("Y")}
		if !m.IsCreatable(in) {
			t.Fatalf("field optional kosong tidak menghalangi create")
		}
	})
}

func TestIsUpdatable(t *testing.T) {
	m := bookModel()

	t.Run("id plus satu field", func(t *testing.T) {
		in := &bookInput{id: i64Ptr(3), title: strPtr("Edisi Revisi")}
		if !m.IsUpdatable(in) {
			t.Fatalf("harusnya updatable")
		}
	})

	t.Run("tanpa id", func(t *testing.T) {
		in := &bookInput{title: strPtr("Edisi Revisi")}
		if m.IsUpdatable(in) {
			t.Fatalf("tanpa pk harusnya tidak updatable")
		}
	})

	t.Run("id saja", func(t *testing.T) {
		in := &bookInput{id: i64Ptr(3)}
		if m.IsUpdatable(in) {
			t.Fatalf("tidak ada field yang di-update")
		}
	})

	t.Run("hanya field immutable", func(t *testing.T) {
		in := &bookInput{id: i64Ptr(3), author: strPtr("Orang Lain")}
		if m.IsUpdatable(in) {
			t.Fatalf("field immutable tidak dihitung untuk update")
		}
	})
}

func TestValues(t *testing.T) {
	m := bookModel()

	t.Run("CreateValues memuat semua field ter-set", func(t *testing.T) {
		in := &bookInput{title: strPtr("X"), author: strPtr("Y"), note: strPtr("catatan")}
		got := m.CreateValues(in)
		want := map[string]any{"book_title": "X", "book_author": "Y", "book_note": "catatan"}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("CreateValues = %v, want %v", got, want)
		}
	})

	t.Run("UpdateValues melewati immutable dan pk", func(t *testing.T) {
		in := &bookInput{id: i64Ptr(3), title: strPtr("X"), author: strPtr("Y")}
		got := m.UpdateValues(in)
		want := map[string]any{"book_title": "X"}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("UpdateValues = %v, want %v", got, want)
		}
	})
}
