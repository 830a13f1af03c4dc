package epubcc

import (
	"strings"
	"testing"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

func TestDecodeTextUTF8(t *testing.T) {
	for _, s := range []string{"plain ascii", "简体中文测试", ""} {
		got, err := decodeText([]byte(s))
		if err != nil {
			t.Fatalf("decodeText(%q): %v", s, err)
		}
		if got != s {
			t.Errorf("decodeText(%q) = %q", s, got)
		}
	}
}

func TestDecodeTextLegacyEncodings(t *testing.T) {
	// Repetition gives chardet enough signal for short fixtures.
	const text = "汉字转换测试，简体与繁体。"
	sample := strings.Repeat(text, 20)

	gbk, err := simplifiedchinese.GBK.NewEncoder().Bytes([]byte(sample))
	if err != nil {
		t.Fatalf("encode GBK: %v", err)
	}
	got, err := decodeText(gbk)
	if err != nil {
		t.Fatalf("decodeText(gbk): %v", err)
	}
	if got != sample {
		t.Errorf("GBK round trip mismatch:\n got %q\nwant %q", got, sample)
	}

	const traditional = "漢字轉換測試，簡體與繁體。"
	big5, err := traditionalchinese.Big5.NewEncoder().Bytes([]byte(strings.Repeat(traditional, 20)))
	if err != nil {
		t.Fatalf("encode Big5: %v", err)
	}
	got, err = decodeText(big5)
	if err != nil {
		t.Fatalf("decodeText(big5): %v", err)
	}
	if got != strings.Repeat(traditional, 20) {
		t.Errorf("Big5 round trip mismatch")
	}
}

func TestScoreDecodedPrefersIdeographsOverHalfwidthKatakana(t *testing.T) {
	// Big5 bytes read as Shift-JIS come out as runs of halfwidth katakana;
	// that mojibake must never outscore the genuine decode, even with a
	// large per-rune count advantage over chardet's confidence gap.
	genuine := strings.Repeat("漢字轉換測試，簡體與繁體。", 20)
	big5, err := traditionalchinese.Big5.NewEncoder().Bytes([]byte(genuine))
	if err != nil {
		t.Fatalf("encode Big5: %v", err)
	}
	misread, err := japanese.ShiftJIS.NewDecoder().Bytes(big5)
	if err != nil {
		t.Fatalf("decode as Shift-JIS: %v", err)
	}

	genuineScore := scoreDecoded(genuine, 89)
	misreadScore := scoreDecoded(string(misread), 10)
	if misreadScore >= genuineScore {
		t.Errorf("Shift-JIS misread scored %d, genuine Big5 decode %d", misreadScore, genuineScore)
	}
}

func TestPickCandidateKeepsNegativeScores(t *testing.T) {
	// control-heavy content can push even the correct decode below zero;
	// it must still win over returning nothing
	text := "\x01\x02\x03\x04\x05\x06\x07\x08\x0b\x0c 简"
	data, err := simplifiedchinese.GBK.NewEncoder().Bytes([]byte(text))
	if err != nil {
		t.Fatalf("encode GBK: %v", err)
	}

	got, ok := pickCandidate([]chardet.Result{{Charset: "GB-18030", Confidence: 0}}, data)
	if !ok {
		t.Fatal("candidate rejected despite decoding cleanly")
	}
	if got != text {
		t.Errorf("pickCandidate = %q, want %q", got, text)
	}

	if _, ok := pickCandidate([]chardet.Result{{Charset: "IBM424_rtl", Confidence: 50}}, data); ok {
		t.Error("expected no candidate when no detected charset has a decoder")
	}
}

func TestDecodeTextUTF16(t *testing.T) {
	enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	data, err := enc.Bytes([]byte("hello 简体 world"))
	if err != nil {
		t.Fatalf("encode UTF-16: %v", err)
	}
	got, err := decodeText(data)
	if err != nil {
		t.Fatalf("decodeText(utf16): %v", err)
	}
	if !strings.Contains(got, "简体") {
		t.Errorf("decoded UTF-16 lost content: %q", got)
	}
}
