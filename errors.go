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
	"errors"
	"fmt"
)

// ArchiveError means an input archive could not be parsed or its output
// could not be serialized. Fatal for that archive.
type ArchiveError struct {
	Name string
	Err  error
}

func (e *ArchiveError) Error() string {
	return fmt.Sprintf("archive %q: %v", e.Name, e.Err)
}

func (e *ArchiveError) Unwrap() error { return e.Err }

// EntryError means one entry's text could not be decoded or the script
// converter failed on it. Fatal for the whole archive: a partially
// converted book would silently mislead the reader.
type EntryError struct {
	Archive string
	Path    string
	Err     error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("archive %q entry %q: %v", e.Archive, e.Path, e.Err)
}

func (e *EntryError) Unwrap() error { return e.Err }

// EmptyBatchError is returned when no input archives were supplied.
type EmptyBatchError struct{}

func (e *EmptyBatchError) Error() string { return "no input archives supplied" }

// BundleError means the outer bundle could not be serialized.
type BundleError struct {
	Err error
}

func (e *BundleError) Error() string {
	return fmt.Sprintf("write bundle: %v", e.Err)
}

func (e *BundleError) Unwrap() error { return e.Err }

// IsEmptyBatch reports whether the error is an EmptyBatchError.
func IsEmptyBatch(err error) bool {
	var target *EmptyBatchError
	return errors.As(err, &target)
}

// IsEntryError reports whether the error is an EntryError.
func IsEntryError(err error) bool {
	var target *EntryError
	return errors.As(err, &target)
}
