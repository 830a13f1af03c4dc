package epubcc

import (
	"fmt"

	"github.com/longbridgeapp/opencc"
)

// Converter maps text from one writing system to another. Implementations
// must be deterministic within a run (the same input always yields the same
// output) and safe for concurrent use: the pipeline calls both methods from
// many goroutines at once, one per in-flight entry and archive. Convert
// handles document text; ConvertName handles entry and archive names
// (slashes and ASCII pass through untouched by any sensible
// implementation).
type Converter interface {
	Convert(text string) (string, error)
	ConvertName(name string) (string, error)
}

// OpenCCConverter converts scripts with the OpenCC dictionary set embedded
// in github.com/longbridgeapp/opencc.
type OpenCCConverter struct {
	cc *opencc.OpenCC
}

// NewOpenCCConverter loads the dictionaries for the given conversion
// profile, e.g. "s2tw" for Simplified to Taiwan-standard Traditional.
func NewOpenCCConverter(profile string) (*OpenCCConverter, error) {
	cc, err := opencc.New(profile)
	if err != nil {
		return nil, fmt.Errorf("load opencc profile %q: %w", profile, err)
	}
	return &OpenCCConverter{cc: cc}, nil
}

func (c *OpenCCConverter) Convert(text string) (string, error) {
	return c.cc.Convert(text)
}

// ConvertName converts a path or file name. OpenCC leaves path separators
// and Latin characters alone, so the whole name is converted in one pass.
func (c *OpenCCConverter) ConvertName(name string) (string, error) {
	return c.cc.Convert(name)
}
