package main

import (
	"os"
	"path/filepath"
	"testing"
)

// resetFlags restores global flag state after each test.
func resetFlags(t *testing.T) {
	t.Helper()
	orig := struct {
		url, fmt, lvl string
		quality       *float64
	}{flagURL, flagFmt, flagLogLvl, fileQuality}
	t.Cleanup(func() {
		flagURL = orig.url
		flagFmt = orig.fmt
		flagLogLvl = orig.lvl
		fileQuality = orig.quality
	})
	flagURL = defaultURL
	flagLogLvl = ""
	fileQuality = nil
}

// unsetEnv temporarily unsets an environment variable and restores it on cleanup.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	prev, exists := os.LookupEnv(key)
	os.Unsetenv(key)
	t.Cleanup(func() {
		if exists {
			os.Setenv(key, prev)
		} else {
			os.Unsetenv(key)
		}
	})
}

// homeWithConfig points HOME at a temp dir holding the given config file
// content. An empty content writes no file.
func homeWithConfig(t *testing.T, content string) {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)

	if content == "" {
		return
	}
	cfgDir := filepath.Join(tmp, ".genenet")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(cfgDir, "config.yaml"), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestResolveConfigEnvURL(t *testing.T) {
	resetFlags(t)
	unsetEnv(t, "LOG_LEVEL")
	t.Setenv("GENENET_URL", "http://env-server:9090")
	homeWithConfig(t, "")

	resolveConfig()

	if flagURL != "http://env-server:9090" {
		t.Errorf("flagURL: got %q, want %q", flagURL, "http://env-server:9090")
	}
}

func TestResolveConfigFlagTakesPrecedenceOverEnv(t *testing.T) {
	resetFlags(t)
	t.Setenv("GENENET_URL", "http://env-server:9090")
	homeWithConfig(t, "url: http://file:1\n")

	flagURL = "http://flag-server:7070"
	resolveConfig()

	if flagURL != "http://flag-server:7070" {
		t.Errorf("flag should win: got %q", flagURL)
	}
}

func TestResolveConfigFlatYAML(t *testing.T) {
	resetFlags(t)
	unsetEnv(t, "GENENET_URL")
	unsetEnv(t, "LOG_LEVEL")
	homeWithConfig(t, "url: http://from-file:8080\nlog_level: debug\nquality: 0.55\n")

	resolveConfig()

	if flagURL != "http://from-file:8080" {
		t.Errorf("flagURL: got %q", flagURL)
	}
	if flagLogLvl != "debug" {
		t.Errorf("flagLogLvl: got %q", flagLogLvl)
	}
	if fileQuality == nil || *fileQuality != 0.55 {
		t.Errorf("fileQuality: got %v", fileQuality)
	}
}

func TestResolveConfigProfileYAML(t *testing.T) {
	resetFlags(t)
	unsetEnv(t, "GENENET_URL")
	homeWithConfig(t, `
active_profile: staging
quality: 0.3
profiles:
  default:
    url: http://default:3030
  staging:
    url: http://staging:4040
    quality: 0.7
`)

	resolveConfig()

	if flagURL != "http://staging:4040" {
		t.Errorf("flagURL from profile: got %q", flagURL)
	}
	if fileQuality == nil || *fileQuality != 0.7 {
		t.Errorf("profile quality should override flat value: got %v", fileQuality)
	}
}

func TestResolveConfigDefaultProfile(t *testing.T) {
	resetFlags(t)
	unsetEnv(t, "GENENET_URL")
	homeWithConfig(t, `
profiles:
  default:
    url: http://default-profile:5050
`)

	resolveConfig()

	if flagURL != "http://default-profile:5050" {
		t.Errorf("flagURL from default profile: got %q", flagURL)
	}
	if fileQuality != nil {
		t.Errorf("fileQuality should stay unset, got %v", *fileQuality)
	}
}

func TestResolveConfigMissingOrInvalidFile(t *testing.T) {
	for name, content := range map[string]string{"missing": "", "invalid": ":::not-yaml:::"} {
		t.Run(name, func(t *testing.T) {
			resetFlags(t)
			unsetEnv(t, "GENENET_URL")
			unsetEnv(t, "LOG_LEVEL")
			homeWithConfig(t, content)

			resolveConfig() // must not panic

			if flagURL != defaultURL {
				t.Errorf("flagURL should stay default; got %q", flagURL)
			}
			if flagLogLvl != "" {
				t.Errorf("flagLogLvl should stay empty; got %q", flagLogLvl)
			}
		})
	}
}

func TestResolveConfigEnvLogLevelNotOverriddenByFile(t *testing.T) {
	resetFlags(t)
	t.Setenv("LOG_LEVEL", "warn")
	homeWithConfig(t, "log_level: debug\n")

	resolveConfig()

	if flagLogLvl != "warn" {
		t.Errorf("env should win over file: got %q", flagLogLvl)
	}
}

func TestResolveQuality(t *testing.T) {
	resetFlags(t)
	unsetEnv(t, "QUALITY")

	if got := resolveQuality(false, 0.4, 0.4); got != 0.4 {
		t.Errorf("default: got %v", got)
	}

	q := 0.8
	fileQuality = &q
	if got := resolveQuality(false, 0.4, 0.4); got != 0.8 {
		t.Errorf("file should apply without flag or env: got %v", got)
	}

	t.Setenv("QUALITY", "0.6")
	if got := resolveQuality(false, 0.4, 0.6); got != 0.6 {
		t.Errorf("env should beat file: got %v", got)
	}

	if got := resolveQuality(true, 0.9, 0.6); got != 0.9 {
		t.Errorf("flag should beat env: got %v", got)
	}
}

func TestNewLogger(t *testing.T) {
	resetFlags(t)

	flagLogLvl = "debug"
	log, err := newLogger()
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	if log.GetLevel().String() != "debug" {
		t.Errorf("level = %s", log.GetLevel())
	}

	flagLogLvl = "chatty"
	if _, err := newLogger(); err == nil {
		t.Error("expected error for unknown level")
	}
}
