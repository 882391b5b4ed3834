package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler/internal/core"
)

func TestLoadCSV(t *testing.T) {
	input := "id,arrival,burst,priority\n1,0,5,2\n2, 1, 3\n# trailing comment\n"

	request, err := LoadCSV(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []core.Process{
		{ID: 1, ArrivalTime: 0, BurstTime: 5, Priority: 2},
		{ID: 2, ArrivalTime: 1, BurstTime: 3, Priority: 1},
	}, request.Processes())
}

func TestLoadCSVWithoutHeader(t *testing.T) {
	request, err := LoadCSV(strings.NewReader("4,2,1\n"))
	require.NoError(t, err)

	assert.Equal(t, []core.Process{{ID: 4, ArrivalTime: 2, BurstTime: 1, Priority: 1}}, request.Processes())
}

func TestLoadCSVErrors(t *testing.T) {
	tests := map[string]string{
		"too few fields":  "1,2\n",
		"too many fields": "1,2,3,4,5\n",
		"not a number":    "1,0,5\n2,x,1\n",
		"bad quoting":     "1,\"0,5\n",
	}

	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadCSV(strings.NewReader(input))
			assert.ErrorIs(t, err, ErrMalformedInput)
		})
	}
}

func TestLoadYAML(t *testing.T) {
	input := `
algorithm: roundRobin
quantum: 3
processes:
  - id: 1
    arrivalTime: 0
    burstTime: 5
  - arrivalTime: 2
    burstTime: 4
    priority: 0
`

	request, err := LoadYAML(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, "roundRobin", request.Algorithm)
	assert.Equal(t, 3, request.Quantum)
	assert.Equal(t, []core.Process{
		{ID: 1, ArrivalTime: 0, BurstTime: 5, Priority: 1},
		{ID: 2, ArrivalTime: 2, BurstTime: 4, Priority: 0},
	}, request.Processes())
}

func TestLoadYAMLMalformed(t *testing.T) {
	_, err := LoadYAML(strings.NewReader("processes: [\n"))

	assert.ErrorIs(t, err, ErrMalformedInput)
}

func TestLoadByExtension(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "set.csv")
	yamlPath := filepath.Join(dir, "set.yml")
	txtPath := filepath.Join(dir, "set.txt")
	require.NoError(t, os.WriteFile(csvPath, []byte("1,0,2\n"), 0o644))
	require.NoError(t, os.WriteFile(yamlPath, []byte("processes:\n  - burstTime: 2\n"), 0o644))
	require.NoError(t, os.WriteFile(txtPath, []byte("1,0,2\n"), 0o644))

	fromCSV, err := Load(csvPath)
	require.NoError(t, err)
	fromYAML, err := Load(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, fromCSV.Processes(), fromYAML.Processes())

	_, err = Load(txtPath)
	assert.ErrorIs(t, err, ErrMalformedInput)

	_, err = Load(filepath.Join(dir, "missing.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
