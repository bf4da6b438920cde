package c

// Source type names that have a direct C spelling. Every other name is
// emitted as int.
var typeMap = map[string]string{
	"int":  "int",
	"void": "void",
	"word": "size_t",
	"ptr":  "void*",
}

const fallbackType = "int"

func CType(name string) string {
	if ty, ok := typeMap[name]; ok {
		return ty
	}
	return fallbackType
}

// Imports that map to declarations of the prebuilt runtime object.
var runtimeImports = map[string][]string{
	"std.io": {"void std_io_print(const char* msg);"},
}
