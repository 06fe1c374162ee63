package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.PreviewLines != defaultPreviewLines {
		t.Fatalf("preview_lines = %d", cfg.PreviewLines)
	}
	if cfg.LogLevel != defaultLogLevel {
		t.Fatalf("log_level = %s", cfg.LogLevel)
	}
	if cfg.LogFile == "" {
		t.Fatal("log_file empty")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("RUNTREE_PREVIEW_LINES", "12")
	t.Setenv("RUNTREE_LOG_LEVEL", "debug")
	t.Setenv("RUNTREE_LOG_FILE", "/tmp/rt.log")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.PreviewLines != 12 {
		t.Fatalf("preview_lines = %d, want 12", cfg.PreviewLines)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("log_level = %s", cfg.LogLevel)
	}
	if cfg.LogFile != "/tmp/rt.log" {
		t.Fatalf("log_file = %s", cfg.LogFile)
	}
}

func TestLoadRejectsBadPreviewLines(t *testing.T) {
	t.Setenv("RUNTREE_PREVIEW_LINES", "-3")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.PreviewLines != defaultPreviewLines {
		t.Fatalf("preview_lines = %d, want default", cfg.PreviewLines)
	}
}
