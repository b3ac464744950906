package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/llehouerou/dropwidgets/internal/config"
	"github.com/llehouerou/dropwidgets/internal/errmsg"
)

func TestLoadConfig_ExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "widgets.toml")
	if err := os.WriteFile(path, []byte("[popup]\nduration_ms = 350\ndrop_up = true\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	configPath = path
	t.Cleanup(func() { configPath = "" })

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if got := cfg.GetPopupConfig(); got.DurationMS != 350 || !got.DropUp {
		t.Errorf("popup config = %+v, want 350ms drop-up", got)
	}
}

func TestLoadConfig_MissingExplicitPath(t *testing.T) {
	configPath = filepath.Join(t.TempDir(), "missing.toml")
	t.Cleanup(func() { configPath = "" })

	if _, err := loadConfig(); err == nil {
		t.Error("loadConfig() succeeded for a missing file")
	}
}

func TestOpenHistory_Disabled(t *testing.T) {
	disabled := false
	tests := []struct {
		name      string
		noHistory bool
		cfg       *config.Config
	}{
		{"flag", true, &config.Config{}},
		{"config", false, &config.Config{History: config.HistoryConfig{Enabled: &disabled}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			noHistory = tt.noHistory
			t.Cleanup(func() { noHistory = false })

			h, err := openHistory(tt.cfg, nil)
			if err != nil {
				t.Fatalf("openHistory() error = %v", err)
			}
			if _, ok := h.(nopHistory); !ok {
				t.Errorf("openHistory() = %T, want nopHistory", h)
			}
		})
	}
}

func TestRootFlags(t *testing.T) {
	for _, name := range []string{"config", "log-file", "drop-up", "duration", "no-history"} {
		if rootCmd.Flags().Lookup(name) == nil {
			t.Errorf("flag --%s not registered", name)
		}
	}
}

func TestConfigOp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.toml")
	if err := os.WriteFile(path, []byte("[popup\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	configPath = path
	t.Cleanup(func() { configPath = "" })

	_, err := loadConfig()
	if got := configOp(err); got != errmsg.OpConfigParse {
		t.Errorf("configOp(broken file) = %q, want %q", got, errmsg.OpConfigParse)
	}

	configPath = filepath.Join(t.TempDir(), "missing.toml")
	_, err = loadConfig()
	if got := configOp(err); got != errmsg.OpConfigLoad {
		t.Errorf("configOp(missing file) = %q, want %q", got, errmsg.OpConfigLoad)
	}
}
