package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	logrus "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func writeEnv(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg := Load(filepath.Join(t.TempDir(), "missing.env"))
	if cfg.DataDir != "utms_data" {
		t.Fatalf("DataDir=%q", cfg.DataDir)
	}
	if cfg.Log.File != "./logs/utms.log" || cfg.Log.Level != "info" {
		t.Fatalf("log defaults=%+v", cfg.Log)
	}
	if cfg.Log.MaxSizeMB != 10 || cfg.Log.MaxBackups != 7 || cfg.Log.MaxAgeDays != 7 || !cfg.Log.Compress {
		t.Fatalf("rotation defaults=%+v", cfg.Log)
	}
}

func TestLoadFromEnvFile(t *testing.T) {
	path := writeEnv(t, "UTMS_DATA_DIR=/srv/utms\nUTMS_LOG_LEVEL=debug\nUTMS_LOG_MAX_BACKUPS=3\nUTMS_LOG_COMPRESS=false\n")
	cfg := Load(path)
	if cfg.DataDir != "/srv/utms" {
		t.Fatalf("DataDir=%q", cfg.DataDir)
	}
	if cfg.Log.Level != "debug" || cfg.Log.MaxBackups != 3 || cfg.Log.Compress {
		t.Fatalf("log=%+v", cfg.Log)
	}
	if _, set := os.LookupEnv("UTMS_DATA_DIR"); set {
		t.Fatalf("Load must not export .env values into the process environment")
	}
}

func TestEnvironmentWinsOverFile(t *testing.T) {
	path := writeEnv(t, "UTMS_DATA_DIR=/from/file\n")
	t.Setenv("UTMS_DATA_DIR", "/from/env")
	if cfg := Load(path); cfg.DataDir != "/from/env" {
		t.Fatalf("DataDir=%q want /from/env", cfg.DataDir)
	}
}

func TestInvalidNumbersFallBack(t *testing.T) {
	t.Setenv("UTMS_LOG_MAX_SIZE_MB", "lots")
	t.Setenv("UTMS_LOG_COMPRESS", "maybe")
	cfg := Load(filepath.Join(t.TempDir(), "missing.env"))
	if cfg.Log.MaxSizeMB != 10 || !cfg.Log.Compress {
		t.Fatalf("log=%+v", cfg.Log)
	}
}

func TestMissingEnvFileIsLoggedBeforeSetup(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	Load(filepath.Join(t.TempDir(), "missing.env"))

	for _, e := range hook.AllEntries() {
		if strings.Contains(e.Message, "No .env file found") {
			if e.Level != logrus.InfoLevel {
				t.Fatalf("level=%s want=info", e.Level)
			}
			return
		}
	}
	t.Fatalf("missing .env file was not logged at the default level")
}
