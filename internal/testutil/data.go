// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package testutil

import (
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/ianlewis/go-dictzip"

	"github.com/ianlewis/go-hanzi/char"
	"github.com/ianlewis/go-hanzi/word"
)

// MakeCompositionData renders records as composition data.
func MakeCompositionData(t *testing.T, records []*char.Record) []byte {
	t.Helper()

	var b strings.Builder
	for _, r := range records {
		b.WriteString(strings.Join([]string{
			r.Hanzi,
			strconv.Itoa(r.Strokes),
			r.Kind.Code(),
			r.First.Hanzi,
			strconv.Itoa(r.First.Strokes),
			r.Second.Hanzi,
			strconv.Itoa(r.Second.Strokes),
			r.Cangjie,
			r.Verification,
			r.Radical,
		}, "\t"))
		b.WriteString("\n")
	}
	return []byte(b.String())
}

// MakeWordList renders records as a word list.
func MakeWordList(t *testing.T, records []*word.Record) []byte {
	t.Helper()

	var b strings.Builder
	for _, r := range records {
		b.WriteString(strings.Join([]string{
			r.Simplified,
			r.Traditional,
			r.Pinyin,
			r.PinyinUnicode,
			r.Translation,
		}, "\t"))
		b.WriteString("\n")
	}
	return []byte(b.String())
}

// Compression is a compression format for data files.
type Compression string

const (
	// None writes files as is.
	None Compression = ""

	// Gzip writes gzip compressed files with a '.gz' extension.
	Gzip Compression = "gz"

	// DictZip writes dictzip compressed files with a '.dz' extension.
	DictZip Compression = "dz"
)

// MakeDataDir writes the given files to a temporary directory and returns
// its path. Files are compressed with c.
func MakeDataDir(t *testing.T, files map[string][]byte, c Compression) string {
	t.Helper()

	dir := t.TempDir()
	for name, data := range files {
		path := filepath.Join(dir, name)
		if c != None {
			path += "." + string(c)
		}
		writeFile(t, path, data, c)
	}
	return dir
}

func writeFile(t *testing.T, path string, data []byte, c Compression) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	var w io.WriteCloser
	switch c {
	case Gzip:
		w = gzip.NewWriter(f)
	case DictZip:
		z, err := dictzip.NewWriter(f)
		if err != nil {
			t.Fatal(err)
		}
		w = z
	default:
		w = nopWriteCloser{f}
	}

	if _, err := w.Write(data); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
