package itype

// builtinByName maps the spelling a NamedType carries to its storage
// class, for the primitive names spec.md §3 enumerates. Named types that
// aren't builtins (structs, enums, aliases, ...) are resolved by the
// checker against the unit scope instead (spec.md §4.2 "lookup_atype").
var builtinByName = map[string]Storage{
	"void":    Void,
	"bool":    Bool,
	"null":    NullType,
	"i8":      Int8,
	"i16":     Int16,
	"i32":     Int32,
	"i64":     Int64,
	"u8":      Uint8,
	"u16":     Uint16,
	"u32":     Uint32,
	"u64":     Uint64,
	"int":     Int,
	"uint":    Uint,
	"rune":    Rune,
	"f32":     F32,
	"f64":     F64,
	"char":    Char,
	"uintptr": Uintptr,
	"size":    Size,
	"string":  String,
}

// LookupBuiltinName reports the storage class for a builtin primitive
// spelling, if any.
func LookupBuiltinName(name string) (Storage, bool) {
	s, ok := builtinByName[name]
	return s, ok
}
