package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/hr-screener/internal/types"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"output_dir": "runs",
		"max_shortlist": 3,
		"min_score_threshold": 75,
		"score_weights": {"skills": 0.5, "experience": 0.3, "education": 0.1, "cultural_fit": 0.1}
	}`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "runs", cfg.OutputDir)
	assert.Equal(t, 3, cfg.MaxShortlist)
	require.NotNil(t, cfg.MinScoreThreshold)
	assert.Equal(t, 75.0, *cfg.MinScoreThreshold)
	require.NotNil(t, cfg.ScoreWeights)
	assert.Equal(t, 0.5, cfg.ScoreWeights.Skills)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load("")
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestValidate_WeightSum(t *testing.T) {
	cfg := Defaults()
	assert.NoError(t, cfg.Validate())

	cfg.ScoreWeights = &types.ScoreWeights{Skills: 0.5, Experience: 0.5, Education: 0.5, CulturalFit: 0.5}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sum to 1.0")
}

func TestValidate_Ranges(t *testing.T) {
	cfg := Defaults()
	bad := 150.0
	cfg.MinScoreThreshold = &bad
	assert.Error(t, cfg.Validate())

	cfg = Defaults()
	cfg.MaxShortlist = -1
	assert.Error(t, cfg.Validate())
}

func TestValidate_MissingFiles(t *testing.T) {
	cfg := Defaults()
	cfg.Job = filepath.Join(t.TempDir(), "absent.json")
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "job file not found")

	cfg = Defaults()
	cfg.CVDir = filepath.Join(t.TempDir(), "absent-dir")
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cv_dir not found")
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Job: "job.json", MaxShortlist: 2}
	merged := cfg.MergeWithDefaults(Defaults())

	assert.Equal(t, "job.json", merged.Job)
	assert.Equal(t, 2, merged.MaxShortlist)
	assert.Equal(t, "output", merged.OutputDir)
	assert.Equal(t, 60.0, merged.Threshold())
	require.NotNil(t, merged.ScoreWeights)
}

func TestMergeWithDefaults_ExplicitZeroThreshold(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"min_score_threshold": 0}`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.MinScoreThreshold)

	// A deliberate 0 ("shortlist everyone") must survive the defaults merge.
	merged := cfg.MergeWithDefaults(Defaults())
	assert.Equal(t, 0.0, merged.Threshold())
	assert.NoError(t, merged.Validate())
}

func TestThreshold_Default(t *testing.T) {
	cfg := Config{}
	assert.Equal(t, 60.0, cfg.Threshold())
}

func TestWeights_Default(t *testing.T) {
	cfg := Config{}
	assert.Equal(t, types.DefaultScoreWeights(), cfg.Weights())

	custom := types.ScoreWeights{Skills: 0.7, Experience: 0.1, Education: 0.1, CulturalFit: 0.1}
	cfg.ScoreWeights = &custom
	assert.Equal(t, custom, cfg.Weights())
}
