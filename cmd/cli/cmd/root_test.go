package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"power-cost/core/types"
)

const testCatalog = `
effects:
  - id: blast
    name: Blast
    baseCostPerGrade: 2
    defaultParameters: {action: 0, range: 1, duration: 0}
modifiers:
  - id: area
    name: Area
    kind: extra
    costPerGrade: 1
    grade: {min: 1, max: 3}
  - id: focus
    name: Focus
    kind: flaw
    costPerGrade: -1
    configuration:
      kind: single
      options:
        - id: worn
        - id: held
resources:
  - {grade: 1, energy: 1, slots: 1}
  - {grade: 3, energy: 2, slots: 1}
`

const testRecord = `{
  "id": "p1",
  "name": "Fire Bolt",
  "description": "",
  "version": "2.0.0",
  "domain": "natural",
  "effects": [
    {"id": "e1", "baseEffectId": "blast", "grade": 3, "localModifiers": [
      {"id": "m1", "baseModifierId": "area", "scope": "local", "appliedGrade": 1}
    ]},
    {"id": "e2", "baseEffectId": "retired", "grade": 2, "localModifiers": []}
  ],
  "globalModifiers": [],
  "action": 0,
  "range": 1,
  "duration": 0
}`

// execute runs the root command with fresh flag state
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	t.Cleanup(func() { resetFlags(rootCmd) })

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(append(args, "--config", filepath.Join(t.TempDir(), "config.json")))

	err := rootCmd.Execute()
	return buf.String(), err
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.PersistentFlags().VisitAll(reset)
	c.Flags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func writeFixtures(t *testing.T) (catalogFile, recordFile string) {
	t.Helper()
	dir := t.TempDir()
	catalogFile = filepath.Join(dir, "catalog.yaml")
	recordFile = filepath.Join(dir, "power.json")
	require.NoError(t, os.WriteFile(catalogFile, []byte(testCatalog), 0644))
	require.NoError(t, os.WriteFile(recordFile, []byte(testRecord), 0644))
	return catalogFile, recordFile
}

func TestCostJSON(t *testing.T) {
	catalogFile, recordFile := writeFixtures(t)

	out, err := execute(t, "cost", "--catalog", catalogFile, "--format", "json", recordFile)
	require.NoError(t, err)

	var report struct {
		Breakdown struct {
			TotalCost   int `json:"totalCost"`
			EnergyTotal int `json:"energyTotal"`
		} `json:"breakdown"`
		Warnings []string `json:"warnings"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))

	// (2 + 1) x 3
	assert.Equal(t, 9, report.Breakdown.TotalCost)
	assert.Equal(t, 2, report.Breakdown.EnergyTotal)
	require.Len(t, report.Warnings, 1)
	assert.Contains(t, report.Warnings[0], "retired")
}

func TestCostTable(t *testing.T) {
	catalogFile, recordFile := writeFixtures(t)

	out, err := execute(t, "cost", "-c", catalogFile, recordFile)
	require.NoError(t, err)
	assert.Contains(t, out, "FIRE BOLT")
	assert.Contains(t, out, "Blast (grade 3)")
	assert.Contains(t, out, "100.0%")
}

func TestCostMissingRecord(t *testing.T) {
	catalogFile, _ := writeFixtures(t)

	_, err := execute(t, "cost", "-c", catalogFile, filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestCostUnknownFormat(t *testing.T) {
	catalogFile, recordFile := writeFixtures(t)

	_, err := execute(t, "cost", "-c", catalogFile, "-f", "html", recordFile)
	require.Error(t, err)
}

func TestHydrateWritesRepairedPower(t *testing.T) {
	catalogFile, recordFile := writeFixtures(t)
	target := filepath.Join(t.TempDir(), "repaired.json")

	_, err := execute(t, "hydrate", "-c", catalogFile, "-o", target, recordFile)
	require.NoError(t, err)

	data, err := os.ReadFile(target)
	require.NoError(t, err)

	var power types.Power
	require.NoError(t, json.Unmarshal(data, &power))
	require.Len(t, power.Effects, 1)
	assert.Equal(t, "blast", power.Effects[0].BaseEffectID)
	assert.Equal(t, "2.0.0", power.Version)
}

func TestHydrateStrict(t *testing.T) {
	catalogFile, recordFile := writeFixtures(t)

	_, err := execute(t, "hydrate", "-c", catalogFile, "--strict", recordFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 warnings")
}

func TestCatalogValidate(t *testing.T) {
	catalogFile, _ := writeFixtures(t)

	out, err := execute(t, "catalog", "validate", catalogFile)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "ok"))

	broken := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("effects:\n  - id: blast\n  - id: blast\n"), 0644))

	out, err = execute(t, "catalog", "validate", broken)
	require.Error(t, err)
	assert.Contains(t, out, "duplicate id")
}

func TestCatalogShow(t *testing.T) {
	catalogFile, _ := writeFixtures(t)

	out, err := execute(t, "catalog", "show", catalogFile)
	require.NoError(t, err)
	assert.Contains(t, out, "Effects: 1")
	assert.Contains(t, out, "1 extras, 1 flaws")
	assert.Contains(t, out, "Resource grades: 2")

	out, err = execute(t, "catalog", "show", "-f", "json", catalogFile)
	require.NoError(t, err)
	var file struct {
		Modifiers []types.ModifierDefinition `json:"modifiers"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &file))
	assert.Len(t, file.Modifiers, 2)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "powercost version "+Version)
}
