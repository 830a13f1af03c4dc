// Copyright 2026 The epubcc Authors
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.

// Package epubcc transcodes EPUB archives between Chinese writing systems.
//
// A Transcoder rewrites every text entry of an EPUB (HTML, XHTML, NCX, OPF)
// through a script converter, converts entry and folder names the same way,
// patches the package language declaration, and repackages the result.
// Batches of archives are processed concurrently and delivered as a single
// outer ZIP bundle.
package epubcc

import (
	"fmt"
	"io"
	"log/slog"
	"runtime"
)

// DefaultProfile is the OpenCC conversion profile used when no custom
// Converter is supplied (Simplified to Taiwan-standard Traditional).
const DefaultProfile = "s2tw"

// Input is one named archive supplied to the pipeline. Data holds the raw
// ZIP bytes; Name is the display name used for output naming and error
// reporting.
type Input struct {
	Name string
	Data []byte
}

// Transcoder is the batch EPUB script-conversion engine.
type Transcoder struct {
	conv    Converter
	workers int
	profile string
	logger  *slog.Logger
}

// New creates a Transcoder. Without options it converts with the embedded
// OpenCC dictionaries using DefaultProfile and runs one worker per CPU.
func New(opts ...Option) (*Transcoder, error) {
	t := &Transcoder{
		workers: runtime.GOMAXPROCS(0),
		profile: DefaultProfile,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.workers < 1 {
		t.workers = 1
	}
	if t.logger == nil {
		t.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if t.conv == nil {
		conv, err := NewOpenCCConverter(t.profile)
		if err != nil {
			return nil, fmt.Errorf("initialize %s converter: %w", t.profile, err)
		}
		t.conv = conv
	}
	return t, nil
}
