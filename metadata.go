package epubcc

import "strings"

// The OPF language declaration is rewritten by exact literal match only.
// A tag split across lines or written with different whitespace, quoting,
// or attributes will not match and keeps its original code; broadening
// this to real XML handling is an intentional non-feature.
const (
	sourceLanguageTag = "<dc:language>zh-CN</dc:language>"
	targetLanguageTag = "<dc:language>zh-TW</dc:language>"
)

// PatchLanguage rewrites the package language declaration from zh-CN to
// zh-TW in OPF documents. Text for any other extension, or OPF text without
// the exact literal tag, is returned unchanged.
func PatchLanguage(text, ext string) string {
	if ext != "opf" {
		return text
	}
	return strings.ReplaceAll(text, sourceLanguageTag, targetLanguageTag)
}
