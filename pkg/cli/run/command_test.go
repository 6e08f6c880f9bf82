package run_test

import (
	"testing"

	"github.com/precheck-tools/kdrc/pkg/cli/run"
)

func TestFlags_Validate(t *testing.T) {
	t.Parallel()
	full := func() *run.Flags {
		return &run.Flags{
			GDSInputFilePath: "gds/user_project_wrapper.gds",
			OutputDirectory:  "precheck_results",
			PDKRoot:          "/pdk",
			DesignName:       "user_project_wrapper",
		}
	}
	data := []struct {
		name  string
		edit  func(f *run.Flags)
		isErr bool
	}{
		{name: "all set", edit: func(*run.Flags) {}},
		{name: "gds", edit: func(f *run.Flags) { f.GDSInputFilePath = "" }, isErr: true},
		{name: "output", edit: func(f *run.Flags) { f.OutputDirectory = "" }, isErr: true},
		{name: "pdk", edit: func(f *run.Flags) { f.PDKRoot = "" }, isErr: true},
		{name: "design", edit: func(f *run.Flags) { f.DesignName = "" }, isErr: true},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			f := full()
			d.edit(f)
			if err := f.Validate(); d.isErr != (err != nil) {
				t.Fatalf("isErr: wanted %v, got %v", d.isErr, err)
			}
		})
	}
}
