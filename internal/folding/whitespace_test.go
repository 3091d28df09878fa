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

package folding

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/transform"
)

func TestWhitespaceTrimmer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty", input: "", expected: ""},
		{name: "only space", input: " \t\n", expected: ""},
		{name: "leading", input: "  好", expected: "好"},
		{name: "trailing", input: "好\t\n", expected: "好"},
		{name: "ideographic space", input: "　你好　", expected: "你好"},
		{name: "internal kept", input: " 你  好 ", expected: "你  好"},
		{name: "no space", input: "你好", expected: "你好"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, _, err := transform.String(&WhitespaceTrimmer{}, test.input)
			require.NoError(t, err)
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Fatalf("Transform (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestWhitespaceTrimmer_smallBuffers(t *testing.T) {
	t.Parallel()

	input := "  " + strings.Repeat("你 好　", 2000) + "  "
	expected := strings.TrimRight(strings.Repeat("你 好　", 2000), "　")

	r := transform.NewReader(strings.NewReader(input), &WhitespaceTrimmer{})
	var b strings.Builder
	buf := make([]byte, 7)
	for {
		n, err := r.Read(buf)
		b.Write(buf[:n])
		if err != nil {
			break
		}
	}
	if diff := cmp.Diff(expected, b.String()); diff != "" {
		t.Fatalf("Transform (-want, +got):\n%s", diff)
	}
}

func TestTerm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "trimmed", input: " 你好\u3000", expected: "你好"},
		// U+F900 must not be replaced by its canonical equivalent U+8C48.
		{name: "compatibility ideograph", input: "\uf900", expected: "\uf900"},
		{name: "decomposed kept", input: " cafe\u0301 ", expected: "cafe\u0301"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, err := Term(test.input)
			require.NoError(t, err)
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Fatalf("Term (-want, +got):\n%s", diff)
			}
		})
	}
}
