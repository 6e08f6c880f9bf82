package initcmd_test

import (
	"testing"

	"github.com/precheck-tools/kdrc/pkg/config"
	"github.com/precheck-tools/kdrc/pkg/controller/initcmd"
	"github.com/spf13/afero"
)

func TestController_Init(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	ctrl := initcmd.New(fs)
	if err := ctrl.Init(".kdrc.yaml"); err != nil {
		t.Fatal(err)
	}
	cfg := &config.Config{}
	if err := config.NewReader(fs).Read(cfg, ".kdrc.yaml"); err != nil {
		t.Fatalf("the template must be a valid configuration: %v", err)
	}
}

func TestController_Init_exists(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, ".kdrc.yaml", []byte("script_dir: /opt\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := initcmd.New(fs).Init(".kdrc.yaml"); err != nil {
		t.Fatal(err)
	}
	b, err := afero.ReadFile(fs, ".kdrc.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "script_dir: /opt\n" {
		t.Fatalf("an existing file must not be overwritten: %s", string(b))
	}
}
