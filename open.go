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

package hanzi

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/ianlewis/go-dictzip"
	"golang.org/x/sync/errgroup"

	"github.com/ianlewis/go-hanzi/char"
	"github.com/ianlewis/go-hanzi/word"
)

var (
	// ErrNoSource indicates a data file could not be found.
	ErrNoSource = errors.New("data file not found")

	// ErrFetch indicates a data file could not be fetched over HTTP.
	ErrFetch = errors.New("fetching data file")
)

// Options are options for loading a Catalog.
type Options struct {
	// CharacterFile is the name of the composition data file.
	CharacterFile string

	// WordFiles are the names of the word list files, in tier order.
	WordFiles []string

	// Logger receives load diagnostics. If nil, slog.Default() is used.
	Logger *slog.Logger

	// HTTPClient is used when loading from an http(s) URL. If nil,
	// http.DefaultClient is used.
	HTTPClient *http.Client
}

// DefaultOptions is the default options for loading a Catalog.
var DefaultOptions = &Options{
	CharacterFile: "ccd.tsv",
	WordFiles: []string{
		"hsk1.tsv",
		"hsk2.tsv",
		"hsk3.tsv",
		"hsk4.tsv",
		"hsk5.tsv",
		"hsk6.tsv",
	},
}

func (o *Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

func (o *Options) characterFile() string {
	if o.CharacterFile != "" {
		return o.CharacterFile
	}
	return DefaultOptions.CharacterFile
}

func (o *Options) wordFiles() []string {
	if o.WordFiles != nil {
		return o.WordFiles
	}
	return DefaultOptions.WordFiles
}

func (o *Options) httpClient() *http.Client {
	if o.HTTPClient != nil {
		return o.HTTPClient
	}
	return http.DefaultClient
}

// Open loads a Catalog from location. location is either a directory or an
// http(s) base URL. The composition data is fully loaded and resolved before
// the word lists are fetched. Word lists are fetched concurrently.
//
// In a directory, files compressed with gzip ('.gz') or dictzip ('.dz') are
// also found.
func Open(ctx context.Context, location string, options *Options) (*Catalog, error) {
	if options == nil {
		options = DefaultOptions
	}
	logger := options.logger()
	src := newSource(location, options.httpClient())

	name := options.characterFile()
	r, err := src.open(ctx, name)
	if err != nil {
		return nil, err
	}
	g, err := char.New(r, &char.Options{Logger: logger})
	r.Close()
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", name, err)
	}
	logger.Info("characters loaded",
		slog.String("file", name),
		slog.Int("count", g.Len()),
		slog.Int("unresolved", len(g.Unresolved())),
	)

	files := options.wordFiles()
	lists := make([][]*word.Word, len(files))
	eg, egctx := errgroup.WithContext(ctx)
	for i, name := range files {
		eg.Go(func() error {
			r, err := src.open(egctx, name)
			if err != nil {
				return err
			}
			defer r.Close()

			words, err := word.Parse(r, g)
			if err != nil {
				return fmt.Errorf("loading %s: %w", name, err)
			}
			logger.Debug("word list loaded",
				slog.String("file", name),
				slog.Int("count", len(words)),
			)
			lists[i] = words
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		//nolint:wrapcheck // errors are wrapped by each loader
		return nil, err
	}

	c := newCatalog(g, word.NewIndex(lists...))
	logger.Info("catalog loaded", slog.String("stats", c.Stats().String()))
	return c, nil
}

// source opens data files by name.
type source interface {
	open(ctx context.Context, name string) (io.ReadCloser, error)
}

func newSource(location string, client *http.Client) source {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return &httpSource{base: location, client: client}
	}
	return dirSource(location)
}

// dirSource opens files in a directory.
type dirSource string

var compressedExts = []string{"", ".gz", ".GZ", ".dz", ".DZ"}

func (d dirSource) open(_ context.Context, name string) (io.ReadCloser, error) {
	base := filepath.Join(string(d), name)
	var f *os.File
	var err error
	for _, ext := range compressedExts {
		f, err = os.Open(base + ext)
		if err == nil {
			break
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("opening %q: %w", base+ext, err)
		}
	}
	// Catch the case when no file was found.
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNoSource, base)
	}

	return decompress(f, f.Name())
}

// httpSource fetches files relative to a base URL.
type httpSource struct {
	base   string
	client *http.Client
}

func (h *httpSource) open(ctx context.Context, name string) (io.ReadCloser, error) {
	u, err := url.JoinPath(h.base, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFetch, name, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFetch, u, err)
	}
	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFetch, u, err)
	}
	if resp.StatusCode == http.StatusNotFound {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: %s", ErrNoSource, u)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: %s: %s", ErrFetch, u, resp.Status)
	}

	ext := strings.ToLower(filepath.Ext(name))
	if ext != ".dz" {
		return decompress(resp.Body, name)
	}

	// dictzip needs random access.
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFetch, u, err)
	}
	return decompress(nopSeekCloser{bytes.NewReader(b)}, name)
}

type nopSeekCloser struct {
	io.ReadSeeker
}

func (nopSeekCloser) Close() error { return nil }

// decompress wraps r according to the extension of name. The returned
// ReadCloser closes r.
func decompress(r io.ReadCloser, name string) (io.ReadCloser, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz":
		z, err := gzip.NewReader(r)
		if err != nil {
			r.Close()
			return nil, fmt.Errorf("opening %q: %w", name, err)
		}
		return &readCloser{Reader: z, closers: []io.Closer{z, r}}, nil
	case ".dz":
		rs, ok := r.(io.ReadSeeker)
		if !ok {
			r.Close()
			return nil, fmt.Errorf("opening %q: dictzip requires a seekable reader", name)
		}
		z, err := dictzip.NewReader(rs)
		if err != nil {
			r.Close()
			return nil, fmt.Errorf("opening %q: %w", name, err)
		}
		return &readCloser{Reader: z, closers: []io.Closer{z, r}}, nil
	default:
		return r, nil
	}
}

type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (r *readCloser) Close() error {
	var errs []error
	for _, c := range r.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}
