package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI runs the command and returns exit code, stdout and stderr.
func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func writeScenario(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestRun_AbstractFactory(t *testing.T) {
	t.Parallel()

	code, out, errOut := runCLI(t, "abstract-factory", "--plain")
	require.Equal(t, 0, code, errOut)

	assert.Equal(t, "== Abstract Factory ==\n"+
		"Max speed of Car Ford is 220\n"+
		"Max speed of Car Audi with body sports car is 250\n", out)
}

func TestRun_FactoryMethod(t *testing.T) {
	t.Parallel()

	code, out, _ := runCLI(t, "factory-method", "--plain")
	require.Equal(t, 0, code)

	assert.Contains(t, out, "Company Taxi Service, tariff 1\nCost: 15.5")
	assert.Contains(t, out, "Company Freight Service, tariff 2\nCost: 301")
	assert.Contains(t, out, "Company Ride Sharing, shared car for 4 people\nCost: 468.75")
}

func TestRun_AdapterSeedIsReproducible(t *testing.T) {
	t.Parallel()

	code1, out1, _ := runCLI(t, "adapter", "--plain", "--seed", "12345")
	code2, out2, _ := runCLI(t, "adapter", "--plain", "--seed", "12345")

	require.Equal(t, 0, code1)
	require.Equal(t, 0, code2)
	assert.Equal(t, out1, out2)
	assert.Contains(t, out1, "points for player")
	assert.Contains(t, out1, "My sensors show")
}

func TestRun_RootRunsEverything(t *testing.T) {
	t.Parallel()

	code, out, _ := runCLI(t, "--plain", "--seed", "1")
	require.Equal(t, 0, code)

	for _, section := range []string{"== Abstract Factory ==", "== Factory Method ==", "== Adapter =="} {
		assert.Contains(t, out, section)
	}

	_, allOut, _ := runCLI(t, "all", "--plain", "--seed", "1")
	assert.Equal(t, out, allOut)
}

func TestRun_Metrics(t *testing.T) {
	t.Parallel()

	code, out, _ := runCLI(t, "abstract-factory", "--plain", "--metrics")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "products created: {car.audi=1, car.ford=1, engine.audi=1, engine.ford=1}")
}

func TestRun_Debug(t *testing.T) {
	t.Parallel()

	code, _, errOut := runCLI(t, "abstract-factory", "--plain", "--debug")
	require.Equal(t, 0, code)
	assert.Contains(t, errOut, "product.created")
	assert.Contains(t, errOut, "family.built")
}

func TestRun_ConfigFile(t *testing.T) {
	t.Parallel()

	path := writeScenario(t, "abstract_factory:\n  families: [audi]\n")

	code, out, _ := runCLI(t, "abstract-factory", "--plain", "--config", path)
	require.Equal(t, 0, code)
	assert.NotContains(t, out, "Ford")
	assert.Contains(t, out, "Audi")
}

func TestRun_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		args    []string
		wantErr string
	}{
		{
			name:    "unknown family",
			body:    "abstract_factory:\n  families: [bmw]\n",
			args:    []string{"abstract-factory"},
			wantErr: `unknown name "bmw"`,
		},
		{
			name:    "empty carpool",
			body:    "factory_method:\n  orders:\n    - {company: carpool, name: Pool, param: 0, distance: 10}\n",
			args:    []string{"factory-method"},
			wantErr: "invalid argument",
		},
		{
			name:    "die without edges",
			body:    "adapter:\n  die_edges: 0\n",
			args:    []string{"adapter"},
			wantErr: "adapter.die_edges",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writeScenario(t, tc.body)
			code, _, errOut := runCLI(t, append(tc.args, "--plain", "--config", path)...)

			assert.Equal(t, 1, code)
			assert.Contains(t, errOut, "error:")
			assert.Contains(t, errOut, tc.wantErr)
		})
	}
}

func TestRun_RejectsArgs(t *testing.T) {
	t.Parallel()

	code, _, errOut := runCLI(t, "adapter", "extra")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "error:")
}
