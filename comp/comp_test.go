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

package comp

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestByCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code     string
		expected Kind
	}{
		{code: "一", expected: Primitive},
		{code: "吅", expected: Horizontal},
		{code: "吕", expected: Vertical},
		{code: "回", expected: Inclusion},
		{code: "咒", expected: VerticalTopRepetition},
		{code: "弼", expected: HorizontalLeftRightRepetition},
		{code: "品", expected: ThreeRepetition},
		{code: "叕", expected: FourRepetition},
		{code: "冖", expected: VerticalSeparated},
		{code: "+", expected: Superposition},
		{code: "*", expected: Unknown},
	}

	for _, test := range tests {
		t.Run(test.expected.String(), func(t *testing.T) {
			t.Parallel()

			k, err := ByCode(test.code)
			require.NoError(t, err)
			if diff := cmp.Diff(test.expected, k); diff != "" {
				t.Fatalf("ByCode (-want, +got):\n%s", diff)
			}
			if diff := cmp.Diff(test.code, k.Code()); diff != "" {
				t.Fatalf("Code (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestByCode_unknown(t *testing.T) {
	t.Parallel()

	for _, code := range []string{"?", "", "一一", "x"} {
		_, err := ByCode(code)
		require.ErrorIs(t, err, ErrUnknownKind, "code %q", code)
	}
}

func TestKinds(t *testing.T) {
	t.Parallel()

	all := Kinds()
	if got, want := len(all), 11; got != want {
		t.Fatalf("len(Kinds()) = %d, want %d", got, want)
	}

	seen := map[string]bool{}
	for _, k := range all {
		if !k.Valid() {
			t.Errorf("%v is not valid", k)
		}
		if seen[k.Code()] {
			t.Errorf("duplicate code %q", k.Code())
		}
		seen[k.Code()] = true

		got, err := ByCode(k.Code())
		require.NoError(t, err)
		if got != k {
			t.Errorf("ByCode(%q) = %v, want %v", k.Code(), got, k)
		}
	}
}

func TestKind_invalid(t *testing.T) {
	t.Parallel()

	var k Kind
	if k.Valid() {
		t.Fatalf("zero Kind is valid")
	}
	if diff := cmp.Diff("", k.Code()); diff != "" {
		t.Fatalf("Code (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff("Kind(12)", Kind(12).String()); diff != "" {
		t.Fatalf("String (-want, +got):\n%s", diff)
	}
}
