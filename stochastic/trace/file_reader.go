// Copyright 2025 Sonic Labs
// This file is part of Aida Testing Infrastructure for Sonic
//
// Aida is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Aida is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Aida. If not, see <http://www.gnu.org/licenses/>.

package trace

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/klauspost/compress/gzip"
)

// NewFileReader opens a trace file written by a FileWriter.
func NewFileReader(filename string) (FileReader, error) {
	stat, err := os.Stat(filename)
	if err != nil {
		return nil, fmt.Errorf("could not stat file: %s, does it exist? %w", filename, err)
	}
	if stat.IsDir() {
		return nil, errors.New("given path to trace file is a directory")
	}
	if stat.Size() == 0 {
		return nil, errors.New("given trace file is empty")
	}
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("could not open trace file: %s, %w", filename, err)
	}
	gzipReader, err := gzip.NewReader(file)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("could not create gzip reader for trace file: %s, %w", filename, err), file.Close())
	}
	return &fileReader{
		reader: bufio.NewReader(gzipReader),
		closer: multiCloser{gzipReader, file},
	}, nil
}

// FileReader reads back a sequence of outcomes.
type FileReader interface {
	// ReadOutcome returns the next outcome, or io.EOF at the end of the trace.
	ReadOutcome() (int, error)
	Close() error
}

type fileReader struct {
	reader io.ByteReader
	closer io.Closer
}

func (f *fileReader) ReadOutcome() (int, error) {
	v, err := binary.ReadVarint(f.reader)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, io.EOF
		}
		return 0, fmt.Errorf("cannot read outcome: %w", err)
	}
	return int(v), nil
}

func (f *fileReader) Close() error {
	return f.closer.Close()
}

// ForEach calls consume for every outcome of the trace until the end of
// the trace or the first error.
func ForEach(r FileReader, consume func(v int)) error {
	for {
		v, err := r.ReadOutcome()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		consume(v)
	}
}
