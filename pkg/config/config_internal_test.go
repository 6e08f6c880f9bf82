package config

import (
	"testing"

	"github.com/spf13/afero"
)

func Test_getConfigPath(t *testing.T) {
	t.Parallel()
	data := []struct {
		name  string
		paths []string
		exp   string
	}{
		{
			name:  "no config",
			paths: []string{},
			exp:   "",
		},
		{
			name:  "primary",
			paths: []string{".kdrc.yaml"},
			exp:   ".kdrc.yaml",
		},
		{
			name:  "yml",
			paths: []string{".kdrc.yml"},
			exp:   ".kdrc.yml",
		},
		{
			name:  "both",
			paths: []string{".kdrc.yml", ".kdrc.yaml"},
			exp:   ".kdrc.yaml",
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			fs := afero.NewMemMapFs()
			for _, path := range d.paths {
				if err := afero.WriteFile(fs, path, []byte(""), 0o644); err != nil {
					t.Fatal(err)
				}
			}
			got, err := getConfigPath(fs)
			if err != nil {
				t.Fatal(err)
			}
			if got != d.exp {
				t.Fatalf(`wanted %s, got %s`, d.exp, got)
			}
		})
	}
}
