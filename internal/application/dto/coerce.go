package dto

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Value campo JSON de tipo laxo. El front manda números como texto, listas como
// "rojo, azul" y flags ausentes; las reglas de coerción viven aquí y no en cada endpoint:
//
//   - Present: la clave vino en el cuerpo (aunque sea null).
//   - Truthy: veracidad estilo JavaScript ("" / 0 / false / null son falsos).
//   - Decimal / Int: coerción numérica; lo no numérico o fuera de rango vale 0.
//   - Bool: solo si el valor es un booleano JSON real.
//   - StringList: lista JSON o texto separado por comas, recortado y sin vacíos.
type Value struct {
	raw json.RawMessage
	set bool
}

// UnmarshalJSON guarda el valor crudo; se llama también para null.
func (v *Value) UnmarshalJSON(b []byte) error {
	v.raw = append(v.raw[:0], b...)
	v.set = true
	return nil
}

// MarshalJSON reescribe el valor crudo (null si no vino).
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.set {
		return []byte("null"), nil
	}
	return v.raw, nil
}

// V construye un Value desde un valor Go (tests y llamadas internas).
func V(x any) Value {
	b, err := json.Marshal(x)
	if err != nil {
		return Value{}
	}
	return Value{raw: b, set: true}
}

type valueKind int

const (
	kindAbsent valueKind = iota
	kindNull
	kindString
	kindNumber
	kindBool
	kindArray
	kindObject
)

func (v Value) kind() valueKind {
	if !v.set {
		return kindAbsent
	}
	b := bytes.TrimSpace(v.raw)
	if len(b) == 0 {
		return kindAbsent
	}
	switch b[0] {
	case 'n':
		return kindNull
	case '"':
		return kindString
	case 't', 'f':
		return kindBool
	case '[':
		return kindArray
	case '{':
		return kindObject
	default:
		return kindNumber
	}
}

// Present indica si la clave vino en el cuerpo.
func (v Value) Present() bool { return v.set }

// IsEmptyString indica si el valor es exactamente "".
func (v Value) IsEmptyString() bool {
	return v.kind() == kindString && v.String() == ""
}

// String devuelve el texto para strings y números; vacío para el resto.
func (v Value) String() string {
	switch v.kind() {
	case kindString:
		var s string
		if err := json.Unmarshal(v.raw, &s); err != nil {
			return ""
		}
		return s
	case kindNumber:
		return string(bytes.TrimSpace(v.raw))
	default:
		return ""
	}
}

// Bool devuelve (valor, true) solo si el campo es un booleano JSON.
func (v Value) Bool() (bool, bool) {
	if v.kind() != kindBool {
		return false, false
	}
	var b bool
	if err := json.Unmarshal(v.raw, &b); err != nil {
		return false, false
	}
	return b, true
}

// Truthy veracidad estilo JavaScript.
func (v Value) Truthy() bool {
	switch v.kind() {
	case kindString:
		return v.String() != ""
	case kindNumber:
		d, ok := parseDecimal(string(v.raw))
		return ok && !d.IsZero()
	case kindBool:
		b, _ := v.Bool()
		return b
	case kindArray, kindObject:
		return true
	default:
		return false
	}
}

// Decimal coerción numérica: números y textos numéricos; true = 1; el resto 0.
func (v Value) Decimal() decimal.Decimal {
	switch v.kind() {
	case kindString, kindNumber:
		if d, ok := parseDecimal(v.String()); ok {
			return d
		}
	case kindBool:
		if b, _ := v.Bool(); b {
			return decimal.NewFromInt(1)
		}
	}
	return decimal.Zero
}

var (
	minInt = decimal.NewFromInt(math.MinInt)
	maxInt = decimal.NewFromInt(math.MaxInt)
	minI64 = decimal.NewFromInt(math.MinInt64)
	maxI64 = decimal.NewFromInt(math.MaxInt64)
)

// Int coerción numérica truncada a entero; fuera del rango de int vale 0.
func (v Value) Int() int {
	d := v.Decimal().Truncate(0)
	if d.LessThan(minInt) || d.GreaterThan(maxInt) {
		return 0
	}
	return int(d.IntPart())
}

// Int64 igual que Int para ids.
func (v Value) Int64() int64 {
	d := v.Decimal().Truncate(0)
	if d.LessThan(minI64) || d.GreaterThan(maxI64) {
		return 0
	}
	return d.IntPart()
}

// OptionalID devuelve nil si el valor es falso o no es un id positivo.
func (v Value) OptionalID() *int64 {
	if !v.Truthy() {
		return nil
	}
	id := v.Int64()
	if id <= 0 {
		return nil
	}
	return &id
}

// StringList normaliza lista JSON o texto "a, b, c" a elementos recortados y no vacíos.
func (v Value) StringList() []string {
	out := []string{}
	switch v.kind() {
	case kindArray:
		var items []json.RawMessage
		if err := json.Unmarshal(v.raw, &items); err != nil {
			return out
		}
		for _, it := range items {
			if s := strings.TrimSpace(Value{raw: it, set: true}.String()); s != "" {
				out = append(out, s)
			}
		}
	case kindString, kindNumber:
		for _, part := range strings.Split(v.String(), ",") {
			if s := strings.TrimSpace(part); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

func parseDecimal(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, true
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
