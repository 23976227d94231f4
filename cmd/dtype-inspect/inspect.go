// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/apache/arrow-dtypes/dtypes"
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet/file"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"
	"golang.org/x/xerrors"
)

var parquetMagic = []byte("PAR1")

type columnReport struct {
	Name               string   `json:"name"`
	Type               string   `json:"type"`
	Categories         []string `json:"categories"`
	NullableEquivalent string   `json:"nullable_equivalent,omitempty"`
	Accepted           bool     `json:"accepted"`
}

type fileReport struct {
	File    string         `json:"file"`
	Columns []columnReport `json:"columns"`
}

func inspectSchema(fname string, sc *arrow.Schema, filter dtypes.Filter) fileReport {
	report := fileReport{File: fname, Columns: make([]columnReport, 0, sc.NumFields())}
	for _, f := range sc.Fields() {
		dt := dtypes.FieldDescriptor(f)
		col := columnReport{
			Name:       f.Name,
			Type:       dtypes.TypeName(dt),
			Categories: []string{},
			Accepted:   filter.Accepts(dt),
		}
		for _, k := range dtypes.Categories(dt) {
			col.Categories = append(col.Categories, k.String())
		}
		if n, err := dtypes.NullableEquivalent(dt); err == nil && !arrow.TypeEqual(n, dt) {
			col.NullableEquivalent = dtypes.TypeName(n)
		}
		report.Columns = append(report.Columns, col)
	}
	return report
}

// readSchema returns the Arrow schema of a Parquet file, an Arrow IPC file
// or an Arrow IPC stream, told apart by their leading magic bytes.
func readSchema(fname string) (*arrow.Schema, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	hdr := make([]byte, len(ipc.Magic))
	if _, err := io.ReadFull(f, hdr); err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, xerrors.Errorf("could not read file header: %w", err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, xerrors.Errorf("could not rewind file: %w", err)
	}

	switch {
	case bytes.HasPrefix(hdr, parquetMagic):
		return readParquetSchema(f)
	case bytes.Equal(hdr, ipc.Magic):
		r, err := ipc.NewFileReader(f, ipc.WithAllocator(memory.NewGoAllocator()))
		if err != nil {
			return nil, xerrors.Errorf("could not open arrow file: %w", err)
		}
		defer r.Close()
		return r.Schema(), nil
	default:
		r, err := ipc.NewReader(f, ipc.WithAllocator(memory.NewGoAllocator()))
		if err != nil {
			return nil, xerrors.Errorf("could not open arrow stream: %w", err)
		}
		defer r.Release()
		return r.Schema(), nil
	}
}

func readParquetSchema(f *os.File) (*arrow.Schema, error) {
	rdr, err := file.NewParquetReader(f)
	if err != nil {
		return nil, xerrors.Errorf("could not open parquet file: %w", err)
	}
	defer rdr.Close()

	md := rdr.MetaData()
	sc, err := pqarrow.FromParquet(md.Schema, &pqarrow.ArrowReadProperties{}, md.KeyValueMetadata())
	if err != nil {
		return nil, xerrors.Errorf("could not convert parquet schema: %w", err)
	}
	return sc, nil
}
