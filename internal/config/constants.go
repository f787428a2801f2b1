package config

const SourceFileExt = ".fe"

// SourceFileExtensions are all recognized source file extensions
var SourceFileExtensions = []string{".fe", ".ferro"}

// ProjectConfigFile is the optional per-project configuration file name.
const ProjectConfigFile = "ferro.yaml"

// IsTestMode indicates if the program is running in test mode.
// This is set once at startup in main.go.
var IsTestMode = false

// StaticLifetimeName is the reserved lifetime naming the global region.
const StaticLifetimeName = "static"

// PrimitiveTypes are the built-in scalar type names.
var PrimitiveTypes = map[string]bool{
	"bool":  true,
	"char":  true,
	"str":   true,
	"u8":    true,
	"u16":   true,
	"u32":   true,
	"u64":   true,
	"u128":  true,
	"usize": true,
	"i8":    true,
	"i16":   true,
	"i32":   true,
	"i64":   true,
	"i128":  true,
	"isize": true,
	"f32":   true,
	"f64":   true,
}
