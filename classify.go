package epubcc

import "strings"

// Classification describes how one archive entry is handled.
type Classification int

const (
	// Directory entries become converted-name folder markers.
	Directory Classification = iota
	// TextTarget entries are decoded, script-converted, and re-encoded.
	TextTarget
	// BinaryPassthrough entries keep their bytes; only the name converts.
	BinaryPassthrough
)

func (c Classification) String() string {
	switch c {
	case Directory:
		return "directory"
	case TextTarget:
		return "text"
	case BinaryPassthrough:
		return "binary"
	}
	return "unknown"
}

// targetExtensions lists the extensions whose content is script-converted:
// HTML-family documents, NCX navigation, and the OPF package document.
var targetExtensions = map[string]struct{}{
	"htm":   {},
	"html":  {},
	"xhtml": {},
	"ncx":   {},
	"opf":   {},
}

// Classify decides how an entry is processed from its path alone. The rule
// is purely syntactic: directories first, then a case-insensitive extension
// match on the final path segment. Paths without a dot are binary.
func Classify(path string, isDir bool) Classification {
	if isDir {
		return Directory
	}
	if _, ok := targetExtensions[extensionOf(path)]; ok {
		return TextTarget
	}
	return BinaryPassthrough
}

// extensionOf returns the lowercased extension of the final path segment,
// without the dot, or "" if the segment has none.
func extensionOf(path string) string {
	base := path
	if i := strings.LastIndexByte(base, '/'); i >= 0 {
		base = base[i+1:]
	}
	i := strings.LastIndexByte(base, '.')
	if i < 0 || i == len(base)-1 {
		return ""
	}
	return strings.ToLower(base[i+1:])
}
