// # internal/parser/types.go
package parser

// Kind classifies an exported declaration.
type Kind int

const (
	KindUnknown Kind = iota
	KindClass
	KindEnum
	KindTypeAlias
	KindInterface
	KindFunction
	KindConst
)

func (k Kind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindEnum:
		return "enum"
	case KindTypeAlias:
		return "type"
	case KindInterface:
		return "interface"
	case KindFunction:
		return "function"
	case KindConst:
		return "const"
	default:
		return "unknown"
	}
}

// Declaration is one exported declaration recognized in a file.
type Declaration struct {
	Name string
	Kind Kind
	// Used is set when the name occurs more than once, as a whole word,
	// in the file's raw text (the declaration itself counts as one).
	Used bool
}

// ImportRef is one imported name together with the resolved path of the
// module it was imported from. External package imports never produce refs.
type ImportRef struct {
	Name string
	Path string
}

// File holds everything extracted from a single source file. Imports are
// shared by every declaration in the file.
type File struct {
	Path         string
	Declarations []Declaration
	Imports      []ImportRef
}

// PathResolver maps a raw module specifier, relative to the importing file,
// to a concrete target path. ok is false for external packages.
type PathResolver interface {
	Resolve(importingFile, spec string) (path string, ok bool)
}
