// file: internals/helpers/patch/patch.go
package patch

import "encoding/json"

/* =========================================================
   Patch types (tri-state)
   - Patch[T]           : not-set | set(value)
   - PatchNullable[T]   : not-set | set(null) | set(value)
   ========================================================= */

type Patch[T any] struct {
	Set   bool
	Value T
}

func (p *Patch[T]) UnmarshalJSON(b []byte) error {
	// Any presence in JSON means Set=true (even if zero value)
	p.Set = true
	return json.Unmarshal(b, &p.Value)
}

func (p Patch[T]) MarshalJSON() ([]byte, error) {
	if !p.Set {
		return []byte("null"), nil
	}
	return json.Marshal(p.Value)
}

func (p Patch[T]) IsSet() bool { return p.Set }

// Of membungkus nilai sebagai Patch yang sudah ter-set (untuk test & seed).
func Of[T any](v T) Patch[T] { return Patch[T]{Set: true, Value: v} }

type PatchNullable[T any] struct {
	Set   bool // field key present?
	Valid bool // true => has Value, false => explicit null
	Value T
}

func (p *PatchNullable[T]) UnmarshalJSON(b []byte) error {
	p.Set = true
	if string(b) == "null" {
		p.Valid = false
		return nil
	}
	p.Valid = true
	return json.Unmarshal(b, &p.Value)
}

func (p PatchNullable[T]) MarshalJSON() ([]byte, error) {
	if !p.Set || !p.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(p.Value)
}

func (p PatchNullable[T]) IsSet() bool { return p.Set }

func NullableOf[T any](v T) PatchNullable[T] {
	return PatchNullable[T]{Set: true, Valid: true, Value: v}
}

func Null[T any]() PatchNullable[T] {
	return PatchNullable[T]{Set: true, Valid: false}
}
