package message

import (
	"strconv"
)

// EnumConstant is a single named value of an enum.
type EnumConstant struct {
	Name  string
	Value int64
}

// EnumType is the descriptor of an integer enum with named constants.
type EnumType struct {
	name    string
	consts  []EnumConstant
	byName  map[string]int64
	byValue map[int64]string
}

// NewEnumType declares an enum. When several names share a value, the first
// one declared is used as its symbol.
func NewEnumType(name string, consts ...EnumConstant) *EnumType {
	e := &EnumType{
		name:    name,
		consts:  consts,
		byName:  make(map[string]int64, len(consts)),
		byValue: make(map[int64]string, len(consts)),
	}
	for _, c := range consts {
		e.byName[c.Name] = c.Value
		if _, ok := e.byValue[c.Value]; !ok {
			e.byValue[c.Value] = c.Name
		}
	}
	return e
}

func (e *EnumType) Name() string { return e.name }

// Constants returns the constants in declaration order.
func (e *EnumType) Constants() []EnumConstant { return e.consts }

// Lookup resolves a symbolic name.
func (e *EnumType) Lookup(symbol string) (int64, bool) {
	v, ok := e.byName[symbol]
	return v, ok
}

// Has reports whether v is a declared value.
func (e *EnumType) Has(v int64) bool {
	_, ok := e.byValue[v]
	return ok
}

// Symbol returns the name for v, or its decimal form if v is not declared.
func (e *EnumType) Symbol(v int64) string {
	if s, ok := e.byValue[v]; ok {
		return s
	}
	return strconv.FormatInt(v, 10)
}
