package app

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/extport/internal/config"
	"github.com/specialistvlad/extport/internal/hcl"
	"github.com/specialistvlad/extport/internal/testutil"
)

const counterHCL = `
external "counter" {
  label   = "Counter"
  inputs  = ["clk", "d:8:unsigned"]
  outputs = "q:8"
}

external "and2" {
  inputs  = "a,b"
  outputs = ["y"]
}
`

func TestNewConfig(t *testing.T) {
	t.Parallel()

	_, err := NewConfig(Config{})
	require.Error(t, err)

	_, err = NewConfig(Config{ConfigPaths: []string{"x"}, LogFormat: "xml"})
	require.Error(t, err)

	_, err = NewConfig(Config{ConfigPaths: []string{"x"}, LogLevel: "trace"})
	require.Error(t, err)

	cfg, err := NewConfig(Config{ConfigPaths: []string{"x"}, LogFormat: "json", LogLevel: "debug"})
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, cfg.ConfigPaths)
}

func TestRun_ListsPorts(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := testutil.WriteFiles(t, map[string]string{"main.hcl": counterHCL})
	out := &bytes.Buffer{}
	logs := &testutil.SafeBuffer{}
	cfg := &Config{ConfigPaths: []string{dir}, LogLevel: "debug"}

	// --- Act ---
	a, err := NewApp(context.Background(), out, logs, cfg, hcl.NewLoader())
	require.NoError(t, err)
	err = a.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, "and2: inputs=a,b outputs=y\ncounter: inputs=clk,d:8 outputs=q:8\n", out.String())
	assert.Contains(t, logs.String(), "Externals processed.")
	assert.Len(t, a.Model().Externals, 2)
}

func TestRun_RendersTemplate(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := testutil.WriteFiles(t, map[string]string{
		"cfg/main.hcl": counterHCL,
		"port.tmpl":    "${label}:%{ for p in inputs.ports } ${p.name}/${p.bits}/${p.type}%{ endfor }",
	})
	out := &bytes.Buffer{}
	cfg := &Config{ConfigPaths: []string{filepath.Join(dir, "cfg")}, TemplatePath: filepath.Join(dir, "port.tmpl")}

	// --- Act ---
	a, err := NewApp(context.Background(), out, &testutil.SafeBuffer{}, cfg, hcl.NewLoader())
	require.NoError(t, err)
	err = a.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, "and2: a/1/1 b/1/1\nCounter: clk/1/1 d/8/3\n", out.String())
}

func TestRun_TemplateErrors(t *testing.T) {
	t.Parallel()

	dir := testutil.WriteFiles(t, map[string]string{
		"main.hcl": counterHCL,
		"bad.tmpl": "${missing}",
	})
	cfg := &Config{ConfigPaths: []string{filepath.Join(dir, "main.hcl")}, TemplatePath: filepath.Join(dir, "bad.tmpl")}
	a, err := NewApp(context.Background(), &bytes.Buffer{}, &testutil.SafeBuffer{}, cfg, hcl.NewLoader())
	require.NoError(t, err)

	err = a.Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), `external "and2"`)
}

func TestRun_MissingTemplateFile(t *testing.T) {
	t.Parallel()

	dir := testutil.WriteFiles(t, map[string]string{"main.hcl": counterHCL})
	cfg := &Config{ConfigPaths: []string{dir}, TemplatePath: filepath.Join(dir, "nope.tmpl")}
	a, err := NewApp(context.Background(), &bytes.Buffer{}, &testutil.SafeBuffer{}, cfg, hcl.NewLoader())
	require.NoError(t, err)

	err = a.Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read template")
}

type stubLoader struct {
	model *config.Model
	err   error
}

func (s stubLoader) Load(context.Context, ...string) (*config.Model, error) {
	return s.model, s.err
}

func TestNewApp_LoaderError(t *testing.T) {
	t.Parallel()

	cfg := &Config{ConfigPaths: []string{"x"}}

	_, err := NewApp(context.Background(), &bytes.Buffer{}, &testutil.SafeBuffer{}, cfg, stubLoader{err: errors.New("boom")})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration: boom")
}

func TestRun_EmptyModelWarns(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	logs := &testutil.SafeBuffer{}
	cfg := &Config{ConfigPaths: []string{"x"}, LogFormat: "json"}
	a, err := NewApp(context.Background(), out, logs, cfg, stubLoader{model: config.NewModel()})
	require.NoError(t, err)

	require.NoError(t, a.Run(context.Background()))

	assert.Empty(t, out.String())
	assert.Contains(t, logs.String(), `"msg":"No external components configured."`)
}

func TestRun_ExampleEntityTemplate(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	examples := filepath.Join("..", "..", "examples")
	out := &bytes.Buffer{}
	cfg := &Config{
		ConfigPaths:  []string{filepath.Join(examples, "counter.hcl")},
		TemplatePath: filepath.Join(examples, "entity.tmpl"),
	}

	// --- Act ---
	a, err := NewApp(context.Background(), out, &testutil.SafeBuffer{}, cfg, hcl.NewLoader())
	require.NoError(t, err)
	err = a.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	got := out.String()
	for _, want := range []string{
		"-- and2 (generic)\nentity and2 is\n",
		"    a : in std_logic;\n    b : in std_logic;\n    y : out std_logic\n  );\nend and2;",
		"-- Counter (ghdl)\nentity counter is\n",
		"    d : in unsigned(7 downto 0);\n",
		"    q : out std_logic_vector(7 downto 0);\n    ovf : out std_logic\n  );\nend counter;",
	} {
		assert.Contains(t, got, want)
	}
}
