// # internal/parser/parser.go
package parser

import (
	"os"
	"regexp"
)

// Parser extracts exported declarations and import references from
// TypeScript source files. It is a text heuristic, not a grammar parser:
// see ExtractDeclarations for the recognition rules.
type Parser struct {
	resolver PathResolver
}

func NewParser(res PathResolver) *Parser {
	return &Parser{resolver: res}
}

// ParseFile reads and parses a single file. Imports are extracted first and
// shared by every declaration; declarations are then checked for local
// re-reference in the raw text.
func (p *Parser) ParseFile(path string) (*File, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return p.Parse(path, content), nil
}

// Parse is ParseFile over in-memory content.
func (p *Parser) Parse(path string, content []byte) *File {
	raw := string(content)
	stripped := StripComments(raw)

	file := &File{
		Path:         path,
		Imports:      ExtractImports(stripped, path, p.resolver),
		Declarations: ExtractDeclarations(stripped),
	}

	// The raw text is scanned on purpose: a name inside a comment or string
	// still counts toward "used". Under-reporting dead code is preferred
	// over over-reporting it.
	for i := range file.Declarations {
		if usedLocally(raw, file.Declarations[i].Name) {
			file.Declarations[i].Used = true
		}
	}

	return file
}

// usedLocally reports whether name occurs more than once as a whole word.
// The declaration itself accounts for the first occurrence.
func usedLocally(content, name string) bool {
	re, err := regexp.Compile(`\b` + regexp.QuoteMeta(name) + `\b`)
	if err != nil {
		return false
	}
	return len(re.FindAllStringIndex(content, 2)) > 1
}
