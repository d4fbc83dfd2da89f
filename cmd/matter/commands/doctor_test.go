package commands

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jthorne/matter/internal/errors"
)

func TestRunDoctorHealthyConfig(t *testing.T) {
	cmd, out, _ := setupTest(t)
	t.Setenv("EDITOR", "sh")

	require.NoError(t, runDoctor(cmd, nil))
	assert.Contains(t, out.String(), "config")
	assert.Contains(t, out.String(), "configuration is valid")
}

func TestRunDoctorInvalidConfigExitsNonZero(t *testing.T) {
	cmd, _, _ := setupTest(t)
	cfg.Fields.Created = ""

	err := runDoctor(cmd, nil)
	require.Error(t, err)

	var exitErr *errors.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, errors.ExitUser, exitErr.Code)
}

func TestRunDoctorJSON(t *testing.T) {
	cmd, out, _ := setupTest(t)
	doctorJSON = true
	t.Cleanup(func() { doctorJSON = false })

	require.NoError(t, runDoctor(cmd, nil))

	var report struct {
		Results []struct {
			Name string `json:"name"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))
	names := make([]string, 0, len(report.Results))
	for _, r := range report.Results {
		names = append(names, r.Name)
	}
	assert.Contains(t, names, "config")
	assert.Contains(t, names, "date-format")
	assert.Contains(t, names, "taxonomy")
	assert.Contains(t, names, "editor")
}
