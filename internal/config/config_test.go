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

package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// Tests in this file set environment variables and cannot run in parallel.

func TestLoad_defaults(t *testing.T) {
	t.Setenv("HZUTIL_DATA", "")
	t.Setenv("HZUTIL_LOG_LEVEL", "")
	t.Setenv("HZUTIL_LOG_FORMAT", "")
	os.Unsetenv("HZUTIL_DATA")
	os.Unsetenv("HZUTIL_LOG_LEVEL")
	os.Unsetenv("HZUTIL_LOG_FORMAT")

	cfg, err := Load("")
	require.NoError(t, err)

	expected := &Config{
		Log: LogConfig{Level: "warn", Format: "text"},
	}
	if diff := cmp.Diff(expected, cfg); diff != "" {
		t.Fatalf("Load (-want, +got):\n%s", diff)
	}
}

func TestLoad_env(t *testing.T) {
	t.Setenv("HZUTIL_DATA", "https://example.com/data")
	t.Setenv("HZUTIL_LOG_LEVEL", "debug")
	t.Setenv("HZUTIL_LOG_FORMAT", "json")

	cfg, err := Load("")
	require.NoError(t, err)

	expected := &Config{
		Data: "https://example.com/data",
		Log:  LogConfig{Level: "debug", Format: "json"},
	}
	if diff := cmp.Diff(expected, cfg); diff != "" {
		t.Fatalf("Load (-want, +got):\n%s", diff)
	}
}

func TestLoad_file(t *testing.T) {
	t.Setenv("HZUTIL_DATA", "")
	t.Setenv("HZUTIL_LOG_LEVEL", "error")
	os.Unsetenv("HZUTIL_DATA")
	t.Setenv("HZUTIL_LOG_FORMAT", "")
	os.Unsetenv("HZUTIL_LOG_FORMAT")

	path := filepath.Join(t.TempDir(), "hzutil.yaml")
	data := "data: /usr/share/hanzi\nlog:\n  level: info\n  format: json\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	// The environment wins over the file.
	expected := &Config{
		Data: "/usr/share/hanzi",
		Log:  LogConfig{Level: "error", Format: "json"},
	}
	if diff := cmp.Diff(expected, cfg); diff != "" {
		t.Fatalf("Load (-want, +got):\n%s", diff)
	}
}

func TestLoad_invalid(t *testing.T) {
	t.Setenv("HZUTIL_LOG_LEVEL", "verbose")

	_, err := Load("")
	require.ErrorIs(t, err, ErrInvalid)
}

func TestLoad_missingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLogConfig_Logger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := LogConfig{Level: "warn", Format: "json"}.Logger(&buf)
	logger.Info("hidden")
	logger.Warn("shown", "ref", "小")

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, `"msg":"shown"`)
	require.Contains(t, out, `"ref":"小"`)
}
