package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultExamConfig(t *testing.T) {
	cfg := DefaultExamConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 100, cfg.TotalQuestions())
	assert.Len(t, cfg.Areas, 5)
	assert.Equal(t, 65.0, cfg.PassingScore)
	assert.Equal(t, DefaultMasteryThreshold, cfg.MasteryThreshold)
}

func TestParseAreaQuotas(t *testing.T) {
	areas, err := ParseAreaQuotas("Applied Mathematics:10, Machine Learning:25,Deep Learning: 30")
	require.NoError(t, err)
	assert.Equal(t, []AreaQuota{
		{Area: "Applied Mathematics", Count: 10},
		{Area: "Machine Learning", Count: 25},
		{Area: "Deep Learning", Count: 30},
	}, areas)

	for _, raw := range []string{"", "NoCount", "Area:", ":10", "Area:0", "Area:x"} {
		_, err := ParseAreaQuotas(raw)
		assert.Error(t, err, raw)
	}
}

func TestExamConfigValidateRejectsDuplicateArea(t *testing.T) {
	cfg := DefaultExamConfig()
	cfg.Areas = append(cfg.Areas, AreaQuota{Area: "Machine Learning", Count: 5})

	assert.Error(t, cfg.Validate())
}

func TestExamConfigCopiesAreIndependent(t *testing.T) {
	cfg := DefaultExamConfig()
	areas := cfg.AreaQuotas()
	areas[0].Count = 99

	assert.Equal(t, 10, cfg.Areas[0].Count)

	bands := cfg.GradeBands()
	assert.Equal(t, "S", bands[0].Grade)
	assert.Equal(t, "D", bands[len(bands)-1].Grade)
}
