package filesystem

import "strings"

// SplitPath tokenizes a slash delimited pathname into its non-empty segments.
// Leading, trailing and repeated slashes act only as delimiters.
func SplitPath(p string) []string {
	return strings.FieldsFunc(p, func(r rune) bool { return r == '/' })
}

// IsAbs reports whether p resolves from the root
func IsAbs(p string) bool {
	return strings.HasPrefix(p, "/")
}

// escapeMeta quotes glob metacharacters so p matches only itself
func escapeMeta(p string) string {
	var b strings.Builder
	for _, r := range p {
		if strings.ContainsRune(`*?[]{}\`, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// joinPath builds an absolute path from a directory path and a name
func joinPath(dir, name string) string {
	if dir == "/" {
		return dir + name
	}
	return dir + "/" + name
}
