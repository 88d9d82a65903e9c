package mdll

import "strings"

// StripFrontMatter removes a leading YAML (---), TOML (+++) or JSON (;;;)
// front matter block. The block is only recognized when its first content
// line looks like metadata and a closing delimiter exists; otherwise text is
// returned unchanged.
func StripFrontMatter(text string) string {
	first, rest, ok := strings.Cut(text, "\n")
	if !ok {
		return text
	}
	delim, isFrontMatter := openingFrontMatterDelimiter(first)
	if !isFrontMatter {
		return text
	}
	second, _, _ := strings.Cut(rest, "\n")
	if !frontMatterMetadataLikely(second) {
		return text
	}
	for offset := 0; offset < len(rest); {
		line, next, found := strings.Cut(rest[offset:], "\n")
		if strings.TrimSpace(strings.TrimSuffix(line, "\r")) == delim {
			if !found {
				return ""
			}
			return next
		}
		if !found {
			break
		}
		offset += len(line) + 1
	}
	return text
}

func openingFrontMatterDelimiter(line string) (string, bool) {
	line = strings.TrimSpace(strings.TrimPrefix(line, "\ufeff"))
	switch line {
	case "---", "+++", ";;;":
		return line, true
	default:
		return "", false
	}
}

func frontMatterMetadataLikely(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return true
	}
	return strings.ContainsAny(trimmed, ":=")
}
