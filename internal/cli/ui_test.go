package cli

import (
	"bytes"
	"strings"
	"testing"
)

func captureStdout(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = prev })
	return &buf
}

func TestStatusLines(t *testing.T) {
	tests := []struct {
		name  string
		print func()
		want  []string
	}{
		{"success", func() { printSuccess("Rendered %s", "revenue.toml") }, []string{"✓", "Rendered revenue.toml"}},
		{"error", func() { printError("no series") }, []string{"✗", "no series"}},
		{"warning", func() { printWarning("cache disabled") }, []string{"!", "cache disabled"}},
		{"info", func() { printInfo("Removed %d entries", 3) }, []string{"›", "Removed 3 entries"}},
		{"detail", func() { printDetail("from %s", "/tmp") }, []string{"  ", "from /tmp"}},
		{"file", func() { printFile("out/revenue.svg") }, []string{"→", "out/revenue.svg"}},
		{"key value", func() { printKeyValue("cache.ttl", "24h0m0s") }, []string{"cache.ttl", "24h0m0s"}},
		{"next step", func() { printNextStep("Browse the regions", "cartesian inspect revenue.toml") }, []string{"Browse the regions:", "cartesian inspect"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureStdout(t)
			tt.print()
			got := buf.String()
			if !strings.HasSuffix(got, "\n") {
				t.Errorf("output %q is not a full line", got)
			}
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("output %q, missing %q", got, want)
				}
			}
		})
	}
}
