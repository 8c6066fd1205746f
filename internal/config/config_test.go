package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "4G", cfg.Input.Dir4G)
	assert.Equal(t, "5G", cfg.Input.Dir5G)
	assert.Equal(t, "report.pdf", cfg.Output.PDF)
	assert.Equal(t, "normalized_4g.xlsx", cfg.Output.Intermediate)
	assert.Empty(t, cfg.Report.Groups)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadYAMLOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.yaml")
	yaml := `
input:
  dir_4g: data/lte
output:
  pdf: out/relatorio.pdf
report:
  groups: [GARANHUNS, CARUARU]
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "data/lte", cfg.Input.Dir4G)
	assert.Equal(t, "5G", cfg.Input.Dir5G, "unset keys keep defaults")
	assert.Equal(t, "out/relatorio.pdf", cfg.Output.PDF)
	assert.Equal(t, []string{"GARANHUNS", "CARUARU"}, cfg.Report.Groups)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"output not a pdf", "output:\n  pdf: report.txt\n"},
		{"bad log level", "logging:\n  level: loud\n"},
		{"missing input dir", "input:\n  dir_4g: \"\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestTechSpecs(t *testing.T) {
	s4 := Spec4G()
	assert.Equal(t, "4G", s4.Tech)
	assert.Equal(t, "Site", s4.Rename["eNodeB"])
	assert.Equal(t, "VolumeGB", s4.Rename["TIM_VOLUME_TOTAL_DLUL_ALLOP (KB)"])
	assert.Contains(t, s4.Drop, "Vendor")

	s5 := Spec5G()
	assert.Equal(t, "5G", s5.Tech)
	assert.Equal(t, "Site", s5.Rename["gNodeB"])
	assert.Equal(t, "TputDLMB", s5.Rename["TIM_THROU_USER_DL (Kbps)"])
	assert.Contains(t, s5.Drop, "gNodeB Name")
}
