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

// NewFileWriter creates a new FileWriter that writes drawn outcomes to a
// gzip-compressed file using a buffer. An existing file is not overwritten.
func NewFileWriter(filename string) (FileWriter, error) {
	_, err := os.Stat(filename)
	if err == nil {
		return nil, fmt.Errorf("file %s already exists", filename)
	}

	file, err := os.Create(filename)
	if err != nil {
		return nil, err
	}

	gzipWriter := gzip.NewWriter(file)
	return &fileWriter{
		buffer: bufio.NewWriter(gzipWriter),
		closer: multiCloser{gzipWriter, file},
	}, nil
}

//go:generate mockgen -source file_writer.go -destination file_writer_mock.go -package trace

// FileWriter records a sequence of outcomes.
type FileWriter interface {
	// WriteOutcome appends a single outcome as signed varint.
	WriteOutcome(v int) error
	Close() error
}

// WriteBuffer is a wrapper around necessary interfaces for writing data to a file for mocking purposes.
type WriteBuffer interface {
	io.Writer
	Flush() error
}

type fileWriter struct {
	buffer  WriteBuffer
	closer  io.Closer
	scratch [binary.MaxVarintLen64]byte
}

func (f *fileWriter) WriteOutcome(v int) error {
	n := binary.PutVarint(f.scratch[:], int64(v))
	if _, err := f.buffer.Write(f.scratch[:n]); err != nil {
		return fmt.Errorf("error writing outcome %d to buffer: %w", v, err)
	}
	return nil
}

func (f *fileWriter) Close() error {
	// Flush the buffer to ensure all data is compressed,
	// then close the gzip stream and the file
	return errors.Join(f.buffer.Flush(), f.closer.Close())
}

// multiCloser closes its closers in order.
type multiCloser []io.Closer

func (m multiCloser) Close() error {
	var err error
	for _, c := range m {
		err = errors.Join(err, c.Close())
	}
	return err
}
