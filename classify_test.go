package epubcc

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		path  string
		isDir bool
		want  Classification
	}{
		{"chapter1.html", false, TextTarget},
		{"chapter1.htm", false, TextTarget},
		{"OEBPS/chapter1.xhtml", false, TextTarget},
		{"toc.ncx", false, TextTarget},
		{"content.opf", false, TextTarget},
		{"COVER.HTML", false, TextTarget},
		{"OEBPS/Styles/main.CSS", false, BinaryPassthrough},
		{"cover.jpg", false, BinaryPassthrough},
		{"mimetype", false, BinaryPassthrough},
		{"OEBPS/", true, Directory},
		// a directory named like a text target is still a directory
		{"notes.html", true, Directory},
		// dot in a folder name does not give the file an extension
		{"v1.2/README", false, BinaryPassthrough},
		{"trailing.", false, BinaryPassthrough},
	}
	for _, tt := range tests {
		if got := Classify(tt.path, tt.isDir); got != tt.want {
			t.Errorf("Classify(%q, %v) = %v, want %v", tt.path, tt.isDir, got, tt.want)
		}
		// purity: a second call must agree
		if got := Classify(tt.path, tt.isDir); got != tt.want {
			t.Errorf("Classify(%q, %v) second call = %v, want %v", tt.path, tt.isDir, got, tt.want)
		}
	}
}

func TestExtensionOf(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"a/b/c.XHTML", "xhtml"},
		{"mimetype", ""},
		{"archive.tar.gz", "gz"},
		{"dir.with.dots/file", ""},
		{"file.", ""},
	}
	for _, tt := range tests {
		if got := extensionOf(tt.path); got != tt.want {
			t.Errorf("extensionOf(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
