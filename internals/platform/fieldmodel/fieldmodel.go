// file: internals/platform/fieldmodel/fieldmodel.go
package fieldmodel

// Package fieldmodel memodelkan metadata field per entitas secara deklaratif:
// satu tabel Descriptor statis per entitas, bukan wrapper per field. Dari
// tabel ini diturunkan kelayakan create/update, daftar mandatory yang hilang,
// dan field-set untuk query "exists by example" — tanpa kode validasi khusus
// per entitas.

// Descriptor mendeskripsikan satu atribut entitas.
type Descriptor[I any] struct {
	Name      string // nama field untuk pesan error
	Column    string // binding kolom storage
	Mandatory bool   // wajib ada saat create
	Immutable bool   // ikut create, tidak pernah ikut update (mis. created_at)

	// Value membaca input yang terisi sebagian: (nilai, ter-set?).
	// Untuk field nullable yang di-set null secara eksplisit, kembalikan
	// (nil, true).
	Value func(in I) (any, bool)
}

// Model adalah daftar descriptor tetap untuk satu entitas. Konfigurasi,
// bukan state: tidak pernah berubah setelah konstruksi.
type Model[I any] struct {
	PKName   string
	PKColumn string
	PK       func(in I) (int64, bool)
	Fields   []Descriptor[I]
}

// IsCreatable: semua field mandatory ter-set DAN primary key tidak ter-set
// (id di-assign storage, bukan caller).
func (m Model[I]) IsCreatable(in I) bool {
	if _, set := m.PK(in); set {
		return false
	}
	for _, d := range m.Fields {
		if !d.Mandatory {
			continue
		}
		if _, set := d.Value(in); !set {
			return false
		}
	}
	return true
}

// IsUpdatable: primary key ter-set DAN minimal satu field non-key ter-set.
func (m Model[I]) IsUpdatable(in I) bool {
	if _, set := m.PK(in); !set {
		return false
	}
	for _, d := range m.Fields {
		if d.Immutable {
			continue
		}
		if _, set := d.Value(in); set {
			return true
		}
	}
	return false
}

// MissingMandatory mengembalikan nama field mandatory yang belum ter-set,
// urut sesuai deklarasi; dipakai apa adanya di pesan error.
func (m Model[I]) MissingMandatory(in I) []string {
	var missing []string
	for _, d := range m.Fields {
		if !d.Mandatory {
			continue
		}
		if _, set := d.Value(in); !set {
			missing = append(missing, d.Name)
		}
	}
	return missing
}

// CreateValues: kolom→nilai untuk semua field yang ter-set (mandatory +
// optional). Field optional yang tidak ter-set dibiarkan ke default/null
// storage.
func (m Model[I]) CreateValues(in I) map[string]any {
	values := make(map[string]any)
	for _, d := range m.Fields {
		if v, set := d.Value(in); set {
			values[d.Column] = v
		}
	}
	return values
}

// UpdateValues: kolom→nilai untuk field yang ter-set, tanpa primary key dan
// tanpa field immutable.
func (m Model[I]) UpdateValues(in I) map[string]any {
	values := make(map[string]any)
	for _, d := range m.Fields {
		if d.Immutable {
			continue
		}
		if v, set := d.Value(in); set {
			values[d.Column] = v
		}
	}
	return values
}

// ConditionFields: kolom→nilai untuk setiap field ter-set; dasar query
// "exists by example" (field yang tidak ter-set diabaikan).
func (m Model[I]) ConditionFields(in I) map[string]any {
	return m.CreateValues(in)
}
