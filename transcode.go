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
	"io"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

// transformed is one entry's finished output, held until the sequential
// write pass.
type transformed struct {
	path  string
	isDir bool
	data  []byte
}

// Transcode converts one archive and returns the rewritten ZIP bytes.
// Entries are transformed concurrently but written in their original
// enumeration order; the output always has exactly one entry per input
// entry. Failures surface as *ArchiveError or *EntryError and no partial
// output is returned.
func (t *Transcoder) Transcode(ctx context.Context, in Input) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(in.Data), int64(len(in.Data)))
	if err != nil {
		return nil, &ArchiveError{Name: in.Name, Err: fmt.Errorf("open zip: %w", err)}
	}

	start := time.Now()
	results := make([]transformed, len(zr.File))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(t.workers)
	for i, f := range zr.File {
		i, f := i, f
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			entry := archiveEntry{path: f.Name, isDir: f.FileInfo().IsDir()}
			if !entry.isDir {
				data, err := readZipEntry(f)
				if err != nil {
					return &EntryError{Archive: in.Name, Path: f.Name, Err: err}
				}
				entry.data = data
			}
			class := Classify(entry.path, entry.isDir)
			path, data, err := transformEntry(entry, class, t.conv)
			if err != nil {
				return &EntryError{Archive: in.Name, Path: f.Name, Err: err}
			}
			results[i] = transformed{path: path, isDir: entry.isDir, data: data}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, r := range results {
		if err := writeZipEntry(zw, r); err != nil {
			return nil, &ArchiveError{Name: in.Name, Err: err}
		}
	}
	if err := zw.Close(); err != nil {
		return nil, &ArchiveError{Name: in.Name, Err: fmt.Errorf("close zip: %w", err)}
	}

	t.logger.Debug("archive transcoded",
		"archive", in.Name,
		"entries", len(zr.File),
		"bytes_in", len(in.Data),
		"bytes_out", buf.Len(),
		"elapsed", time.Since(start))
	return buf.Bytes(), nil
}

func readZipEntry(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("open entry: %w", err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read entry: %w", err)
	}
	return data, nil
}

// writeZipEntry appends one transformed entry. Directories become
// zero-byte stored headers with a trailing slash, which is how archive/zip
// readers recognize folder markers; files are deflated.
func writeZipEntry(zw *zip.Writer, r transformed) error {
	if r.isDir {
		name := r.path
		if !strings.HasSuffix(name, "/") {
			name += "/"
		}
		if _, err := zw.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Store}); err != nil {
			return fmt.Errorf("write directory %q: %w", name, err)
		}
		return nil
	}
	w, err := zw.CreateHeader(&zip.FileHeader{Name: r.path, Method: zip.Deflate})
	if err != nil {
		return fmt.Errorf("write entry %q: %w", r.path, err)
	}
	if _, err := w.Write(r.data); err != nil {
		return fmt.Errorf("write entry %q: %w", r.path, err)
	}
	return nil
}
