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

package epubcc

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

// convertedSuffix marks output archives as transcoded copies.
const convertedSuffix = "-converted"

// ProcessBatch transcodes every input archive and bundles the results into
// one outer ZIP. Archives run concurrently; the bundle lists them in input
// order regardless of completion order. The batch is atomic: any archive
// failing aborts the whole batch and no bundle is produced.
func (t *Transcoder) ProcessBatch(ctx context.Context, inputs []Input) ([]byte, error) {
	if len(inputs) == 0 {
		return nil, &EmptyBatchError{}
	}

	start := time.Now()
	names := make([]string, len(inputs))
	outputs := make([][]byte, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	for i, in := range inputs {
		i, in := i, in
		g.Go(func() error {
			name, err := t.outputName(in.Name)
			if err != nil {
				return &ArchiveError{Name: in.Name, Err: err}
			}
			out, err := t.Transcode(ctx, in)
			if err != nil {
				return err
			}
			names[i] = name
			outputs[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for i, out := range outputs {
		w, err := zw.CreateHeader(&zip.FileHeader{Name: names[i], Method: zip.Deflate})
		if err != nil {
			return nil, &BundleError{Err: err}
		}
		if _, err := w.Write(out); err != nil {
			return nil, &BundleError{Err: err}
		}
	}
	if err := zw.Close(); err != nil {
		return nil, &BundleError{Err: err}
	}

	t.logger.Info("batch processed",
		"archives", len(inputs),
		"bundle_bytes", buf.Len(),
		"elapsed", time.Since(start))
	return buf.Bytes(), nil
}

// outputName derives the bundle entry name for an input archive: the
// display name minus its extension, script-converted, plus the converted
// suffix and the original extension. A name without an extension gets
// ".epub".
func (t *Transcoder) outputName(display string) (string, error) {
	ext := path.Ext(display)
	base := strings.TrimSuffix(display, ext)
	if ext == "" {
		ext = ".epub"
	}
	converted, err := t.conv.ConvertName(base)
	if err != nil {
		return "", fmt.Errorf("convert output name: %w", err)
	}
	return converted + convertedSuffix + ext, nil
}
