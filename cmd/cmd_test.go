package cmd

import (
	"slices"
	"testing"

	"github.com/kozaktomas/beauty-advisor/internal/classify"
	"github.com/kozaktomas/beauty-advisor/internal/config"
	"github.com/spf13/cobra"
)

func TestResolveServeHostPort(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantHost string
		wantPort int
	}{
		{"environment", nil, "0.0.0.0", 8080},
		{"flags override", []string{"--port", "9000", "--host", "127.0.0.1"}, "127.0.0.1", 9000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cobra.Command{}
			cmd.Flags().Int("port", 0, "")
			cmd.Flags().String("host", "", "")
			if err := cmd.Flags().Parse(tt.args); err != nil {
				t.Fatalf("parsing flags: %v", err)
			}

			cfg := &config.Config{Web: config.WebConfig{Host: "0.0.0.0", Port: 8080}}
			resolveServeHostPort(cmd, cfg)

			if cfg.Web.Host != tt.wantHost || cfg.Web.Port != tt.wantPort {
				t.Errorf("got %s:%d, want %s:%d", cfg.Web.Host, cfg.Web.Port, tt.wantHost, tt.wantPort)
			}
		})
	}
}

func TestNewMapper_Seeded(t *testing.T) {
	newCmd := func() *cobra.Command {
		cmd := &cobra.Command{}
		addMapperFlags(cmd)
		if err := cmd.Flags().Parse([]string{"--seed", "42"}); err != nil {
			t.Fatalf("parsing flags: %v", err)
		}
		return cmd
	}

	a := newMapper(newCmd()).HairHighlights(classify.UndertoneWarm, classify.FaceRound)
	b := newMapper(newCmd()).HairHighlights(classify.UndertoneWarm, classify.FaceRound)
	if !slices.Equal(a, b) {
		t.Errorf("same seed gave different highlights: %v vs %v", a, b)
	}
}
