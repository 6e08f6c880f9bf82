package drc

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
)

func TestParseToolVersion(t *testing.T) {
	t.Parallel()
	data := []struct {
		name   string
		output string
		exp    string
		isErr  bool
	}{
		{name: "normal", output: "KLayout 0.28.12\n", exp: "0.28.12"},
		{name: "with a v prefix", output: "KLayout v0.29.0", exp: "0.29.0"},
		{name: "lower case", output: "klayout 0.27", exp: "0.27.0"},
		{name: "no version", output: "command not found", isErr: true},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			v, err := ParseToolVersion(d.output)
			if err != nil {
				if d.isErr {
					return
				}
				t.Fatal(err)
			}
			if d.isErr {
				t.Fatal("error must be returned")
			}
			if v.String() != d.exp {
				t.Fatalf("wanted %s, got %s", d.exp, v.String())
			}
		})
	}
}

func TestRunner_CheckMinVersion(t *testing.T) {
	t.Parallel()
	data := []struct {
		name       string
		output     string
		constraint string
		isErr      bool
		expCalls   [][]string
	}{
		{
			name:       "empty constraint",
			constraint: "",
		},
		{
			name:       "satisfied",
			output:     "KLayout 0.28.12",
			constraint: ">= 0.28",
			expCalls:   [][]string{{"klayout", "-v"}},
		},
		{
			name:       "too old",
			output:     "KLayout 0.26.1",
			constraint: ">= 0.28",
			isErr:      true,
			expCalls:   [][]string{{"klayout", "-v"}},
		},
		{
			name:       "invalid constraint",
			constraint: "latest",
			isErr:      true,
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			executor := &fakeExecutor{output: d.output}
			runner := NewRunner(afero.NewMemMapFs(), executor, "")
			err := runner.CheckMinVersion(context.Background(), d.constraint)
			if d.isErr != (err != nil) {
				t.Fatalf("isErr: wanted %v, got %v", d.isErr, err)
			}
			if diff := cmp.Diff(d.expCalls, executor.calls); diff != "" {
				t.Fatal(diff)
			}
		})
	}
}
