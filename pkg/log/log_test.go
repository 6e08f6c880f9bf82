package log_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/precheck-tools/kdrc/pkg/log"
	"github.com/sirupsen/logrus"
)

func TestNew(t *testing.T) {
	t.Parallel()
	buf := &bytes.Buffer{}
	logE := log.New(buf, "v1.0.0")
	logE.Info("hello")
	out := buf.String()
	for _, want := range []string{"hello", "version=v1.0.0", "program=kdrc"} {
		if !strings.Contains(out, want) {
			t.Errorf("output doesn't contain %q: %s", want, out)
		}
	}
}

func TestSetLevel(t *testing.T) {
	t.Parallel()
	data := []struct {
		name  string
		level string
		exp   logrus.Level
		isErr bool
	}{
		{name: "empty keeps the default", level: "", exp: logrus.InfoLevel},
		{name: "debug", level: "debug", exp: logrus.DebugLevel},
		{name: "warn", level: "warn", exp: logrus.WarnLevel},
		{name: "invalid", level: "verbose", exp: logrus.InfoLevel, isErr: true},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			logE := log.New(&bytes.Buffer{}, "")
			err := log.SetLevel(d.level, logE)
			if d.isErr != (err != nil) {
				t.Fatalf("isErr: wanted %v, got %v", d.isErr, err)
			}
			if logE.Logger.GetLevel() != d.exp {
				t.Fatalf("wanted %s, got %s", d.exp, logE.Logger.GetLevel())
			}
		})
	}
}

func TestSetColor_invalid(t *testing.T) {
	t.Parallel()
	logE := log.New(&bytes.Buffer{}, "")
	if err := log.SetColor("rainbow", logE); err == nil {
		t.Fatal("error must be returned")
	}
	if err := log.SetColor("auto", logE); err != nil {
		t.Fatal(err)
	}
}
