package initcmd_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/stylefmt/pkg/config"
	"github.com/suzuki-shunsuke/stylefmt/pkg/controller/initcmd"
)

func TestController_Init(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	ctrl := initcmd.New(fs)
	if err := ctrl.Init(".stylefmt.yaml"); err != nil {
		t.Fatal(err)
	}
	// the template must be a valid configuration file
	cfg := &config.Config{}
	if err := config.NewReader(fs).Read(cfg, ".stylefmt.yaml"); err != nil {
		t.Fatal(err)
	}
	if len(cfg.IgnoreSources) != 0 {
		t.Fatalf("wanted no ignore_sources, got %d", len(cfg.IgnoreSources))
	}
}

func TestController_Init_exist(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, ".stylefmt.yaml", []byte("format: sarif\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := initcmd.New(fs).Init(".stylefmt.yaml"); err != nil {
		t.Fatal(err)
	}
	b, err := afero.ReadFile(fs, ".stylefmt.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "format: sarif\n" {
		t.Fatalf("the existing file must not be overwritten: %s", string(b))
	}
}
