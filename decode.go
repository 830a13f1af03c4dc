package epubcc

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

// decodeText decodes an entry's bytes to a UTF-8 string. Valid UTF-8 is
// returned directly; anything else goes through chardet candidate detection
// with the decoded results scored, since chardet alone often mislabels CJK
// byte sequences. An error means no candidate produced usable text.
func decodeText(data []byte) (string, error) {
	if utf8.Valid(data) {
		s := string(data)
		if !strings.ContainsRune(s, '�') {
			return s, nil
		}
	}

	results, err := chardet.NewTextDetector().DetectAll(data)
	if err != nil {
		return "", fmt.Errorf("detect charset: %w", err)
	}
	best, ok := pickCandidate(results, data)
	if !ok {
		return "", fmt.Errorf("no usable charset among %d candidates", len(results))
	}
	return best, nil
}

// pickCandidate decodes data under every detected charset and keeps the
// highest-scoring result, even a poorly scoring one: ok is false only when
// no candidate decodes at all.
func pickCandidate(results []chardet.Result, data []byte) (best string, ok bool) {
	bestScore := 0
	for _, r := range results {
		enc := lookupEncoding(r.Charset)
		if enc == nil {
			continue
		}
		decoded, err := enc.NewDecoder().Bytes(data)
		if err != nil {
			continue
		}
		text := string(decoded)
		if score := scoreDecoded(text, r.Confidence); !ok || score > bestScore {
			best, bestScore, ok = text, score, true
		}
	}
	return best, ok
}

// scoreDecoded rates a decoding candidate. Replacement and control
// characters sink a candidate, and so do halfwidth katakana: Big5 and GBK
// double-byte sequences decode under Shift-JIS into long runs of them, so
// that block marks a misdecode far more often than genuine text. CJK
// ideographs and kana lift a candidate, and chardet's confidence anchors
// the score so per-rune noise alone cannot overturn a confident detection.
func scoreDecoded(text string, confidence int) int {
	score := confidence * 3
	for _, r := range text {
		switch {
		case r == '�':
			score -= 10
		case r < 0x20 && r != '\n' && r != '\r' && r != '\t':
			score -= 5
		case r >= 0xFF61 && r <= 0xFF9F:
			score -= 3
		case r >= 0x4E00 && r <= 0x9FFF:
			score += 3
		case r >= 0x3040 && r <= 0x30FF:
			score += 2
		case r >= 0xFF00 && r <= 0xFF60:
			score++
		case r >= 'A' && r <= 'z':
			score++
		}
	}
	return score
}

// lookupEncoding maps chardet charset names to x/text decoders.
func lookupEncoding(charset string) encoding.Encoding {
	normalized := strings.ToLower(strings.NewReplacer("-", "", "_", "").Replace(charset))
	switch normalized {
	case "utf8", "utf8bom", "ascii", "usascii":
		return unicode.UTF8
	case "utf16le":
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	case "utf16be":
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	case "gb2312", "gbk", "cp936", "gb18030":
		return simplifiedchinese.GB18030
	case "big5", "cp950":
		return traditionalchinese.Big5
	case "shiftjis", "sjis", "cp932":
		return japanese.ShiftJIS
	case "eucjp":
		return japanese.EUCJP
	case "euckr", "cp949":
		return korean.EUCKR
	case "iso88591", "latin1":
		return charmap.ISO8859_1
	case "windows1252", "cp1252":
		return charmap.Windows1252
	}
	return nil
}
