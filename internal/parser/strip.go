package parser

// StripComments removes // and /* */ comments from source text while leaving
// string literals untouched, so comment-looking content inside single, double
// or backtick quotes survives. An unterminated block comment runs to the end
// of the input. Output is never longer than the input.
func StripComments(content string) string {
	out := make([]byte, 0, len(content))
	src := []byte(content)
	var quote byte

	for i := 0; i < len(src); i++ {
		c := src[i]

		if quote == 0 && (c == '"' || c == '\'' || c == '`') {
			quote = c
			out = append(out, c)
			continue
		}

		if quote != 0 {
			out = append(out, c)
			if c == '\\' && i+1 < len(src) {
				// Escaped character, including an escaped quote.
				out = append(out, src[i+1])
				i++
			} else if c == quote {
				quote = 0
			}
			continue
		}

		if c == '/' && i+1 < len(src) {
			switch src[i+1] {
			case '/':
				i++
				for i+1 < len(src) && src[i+1] != '\n' {
					i++
				}
				continue
			case '*':
				i++
				for i+1 < len(src) {
					i++
					if src[i] == '*' && i+1 < len(src) && src[i+1] == '/' {
						i++
						break
					}
				}
				continue
			}
		}

		out = append(out, c)
	}

	return string(out)
}
