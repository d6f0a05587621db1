package parser

import "strings"

// ExtractDeclarations scans comment-stripped text line by line for exported
// declarations. The tests are deliberately line-oriented keyword heuristics:
// a declaration whose keyword and name are not on the same line is not
// recognized, and a keyword with no extractable name emits nothing.
func ExtractDeclarations(stripped string) []Declaration {
	var decls []Declaration

	for _, line := range strings.Split(stripped, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if strings.Contains(trimmed, "export") && strings.Contains(trimmed, "class") {
			if name, ok := nameAfterKeyword(trimmed, "class"); ok {
				decls = append(decls, Declaration{Name: name, Kind: KindClass})
			}
		}

		if strings.Contains(trimmed, "export") && strings.Contains(trimmed, "enum") {
			if name, ok := nameAfterKeyword(trimmed, "enum"); ok {
				decls = append(decls, Declaration{Name: name, Kind: KindEnum})
			}
		}

		// "typeof" would otherwise satisfy the "type" substring test.
		if strings.Contains(trimmed, "export") && strings.Contains(trimmed, "type") &&
			!strings.Contains(trimmed, "typeof") {
			if name, ok := nameAfterKeyword(trimmed, "type"); ok {
				decls = append(decls, Declaration{Name: name, Kind: KindTypeAlias})
			}
		}

		if strings.Contains(trimmed, "export") && strings.Contains(trimmed, "interface") {
			if name, ok := nameAfterKeyword(trimmed, "interface"); ok {
				decls = append(decls, Declaration{Name: name, Kind: KindInterface})
			}
		}

		if strings.Contains(trimmed, "export") && strings.Contains(trimmed, "function") {
			if name, ok := nameAfterKeyword(trimmed, "function"); ok {
				decls = append(decls, Declaration{Name: name, Kind: KindFunction})
			}
		}

		if strings.HasPrefix(trimmed, "export const") ||
			strings.HasPrefix(trimmed, "export let") ||
			strings.HasPrefix(trimmed, "export var") {
			keyword := "var"
			if strings.HasPrefix(trimmed, "export const") {
				keyword = "const"
			} else if strings.HasPrefix(trimmed, "export let") {
				keyword = "let"
			}

			if name, ok := nameAfterKeyword(trimmed, keyword); ok {
				kind := KindConst
				if strings.Contains(trimmed, "=>") || strings.Contains(trimmed, "= function") {
					kind = KindFunction
				}
				decls = append(decls, Declaration{Name: name, Kind: kind})
			}
		}
	}

	return decls
}

// nameAfterKeyword takes the maximal identifier run following the first
// occurrence of keyword in line, skipping leading whitespace.
func nameAfterKeyword(line, keyword string) (string, bool) {
	pos := strings.Index(line, keyword)
	if pos < 0 {
		return "", false
	}

	rest := strings.TrimLeft(line[pos+len(keyword):], " \t")
	end := 0
	for end < len(rest) && isIdentChar(rest[end]) {
		end++
	}
	if end == 0 {
		return "", false
	}
	return rest[:end], true
}

func isIdentChar(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}
