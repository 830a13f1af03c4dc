package epubcc

import "fmt"

// archiveEntry is one enumerated member of an input archive.
type archiveEntry struct {
	path  string
	isDir bool
	data  []byte
}

// transformEntry produces an entry's output name and content from its
// classification. It performs no archive I/O, so it can run for many
// entries concurrently; the classification is computed once by the caller
// and passed down unchanged.
func transformEntry(e archiveEntry, class Classification, conv Converter) (string, []byte, error) {
	newPath, err := conv.ConvertName(e.path)
	if err != nil {
		return "", nil, fmt.Errorf("convert name: %w", err)
	}

	switch class {
	case Directory:
		return newPath, nil, nil
	case TextTarget:
		text, err := decodeText(e.data)
		if err != nil {
			return "", nil, fmt.Errorf("decode text: %w", err)
		}
		converted, err := conv.Convert(text)
		if err != nil {
			return "", nil, fmt.Errorf("convert text: %w", err)
		}
		converted = PatchLanguage(converted, extensionOf(e.path))
		return newPath, []byte(converted), nil
	default:
		return newPath, e.data, nil
	}
}
