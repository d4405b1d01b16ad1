package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/signadot/jsonlit/encode"
	"github.com/signadot/jsonlit/ir"
	"github.com/signadot/jsonlit/parse"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvFunc(t *testing.T) {
	env := map[string]any{}
	require.NoError(t, envFunc(env, "width=4.5"))
	require.NoError(t, envFunc(env, "a.b.c=[1, x]"))
	require.NoError(t, envFunc(env, "a.d=hi"))
	assert.Equal(t, 4.5, env["width"])
	a := env["a"].(map[string]any)
	assert.Equal(t, "hi", a["d"])
	assert.Len(t, a["b"].(map[string]any)["c"], 2)

	assert.Error(t, envFunc(env, "novalue"))
	assert.Error(t, envFunc(env, "width.x=1"))
}

func TestBuildLiterals(t *testing.T) {
	cfg := &BuildConfig{MainConfig: &MainConfig{}, Env: map[string]any{}}
	require.NoError(t, envFunc(cfg.Env, "width=4.0"))
	var buf bytes.Buffer
	err := buildLiterals(cfg, &buf, [][]byte{
		[]byte(`{"width": width, "height": (width * 9.0 / 4.0)}`),
		[]byte(`[null, true]`),
	})
	require.NoError(t, err)
	assert.Equal(t, "{\"height\": 9, \"width\": 4}\n[null, true]\n", buf.String())

	err = buildLiterals(cfg, &buf, [][]byte{[]byte(`[1,,2]`)})
	assert.ErrorIs(t, err, parse.ErrParse)
}

func TestBuildLiteralsFormat(t *testing.T) {
	f := encode.JSONFormat
	cfg := &BuildConfig{MainConfig: &MainConfig{OutFormat: &f}}
	var buf bytes.Buffer
	require.NoError(t, buildLiterals(cfg, &buf, [][]byte{[]byte(`{"a": [1]}`)}))
	assert.JSONEq(t, `{"a": [1]}`, buf.String())
}

func TestMaxDepthFromConfig(t *testing.T) {
	cfg := &BuildConfig{MainConfig: &MainConfig{Config: &FileConfig{MaxDepth: 1}}}
	var buf bytes.Buffer
	err := buildLiterals(cfg, &buf, [][]byte{[]byte(`[[1]]`)})
	assert.ErrorIs(t, err, parse.ErrDepthExceeded)

	cfg.MaxDepth = 2
	assert.NoError(t, buildLiterals(cfg, &buf, [][]byte{[]byte(`[[1]]`)}))
}

func TestEqNodes(t *testing.T) {
	a, err := parse.Parse([]byte(`{"a": 1, "b": [1, 2]}`))
	require.NoError(t, err)
	b, err := parse.Parse([]byte(`{"b": [1, 2], "a": 1}`))
	require.NoError(t, err)
	c, err := parse.Parse([]byte(`{"a": 2, "b": [1, 2]}`))
	require.NoError(t, err)

	var buf bytes.Buffer
	differs, err := eqNodes(&buf, a, b, false)
	require.NoError(t, err)
	assert.False(t, differs)
	assert.Empty(t, buf.String())

	differs, err = eqNodes(&buf, a, c, false)
	require.NoError(t, err)
	assert.True(t, differs)
	assert.Equal(t, "~ $.a: 1 -> 2\n", buf.String())

	buf.Reset()
	_, err = eqNodes(&buf, a, c, true)
	require.NoError(t, err)
	assert.Equal(t, "~ $.a: 2 -> 1\n", buf.String())
}

func TestEqInput(t *testing.T) {
	dir := t.TempDir()
	jsonFile := filepath.Join(dir, "a.json")
	yamlFile := filepath.Join(dir, "a.yaml")
	litFile := filepath.Join(dir, "a.jlit")
	require.NoError(t, os.WriteFile(jsonFile, []byte(`{"a": [1, 2.5, null]}`), 0644))
	require.NoError(t, os.WriteFile(yamlFile, []byte("a:\n- 1\n- 2.5\n- null\n"), 0644))
	require.NoError(t, os.WriteFile(litFile, []byte(`{"a": [1, (5.0 / 2), null]}`), 0644))

	cfg := &EqConfig{MainConfig: &MainConfig{}}
	want, err := cfg.eqInput(nil, jsonFile)
	require.NoError(t, err)
	for _, f := range []string{yamlFile, litFile} {
		got, err := cfg.eqInput(nil, f)
		require.NoError(t, err)
		assert.True(t, got.Equal(want), "%s: %s != %s", f, got, want)
	}
	got, err := cfg.eqInput(strings.NewReader(`{"a": [1, 2.5, null]}`), "-")
	require.NoError(t, err)
	assert.True(t, got.Equal(want))

	cfg.String = true
	got, err = cfg.eqInput(nil, `{"a": [1, 2.5, null]}`)
	require.NoError(t, err)
	assert.True(t, got.Equal(want))
}

func TestLoadReader(t *testing.T) {
	cfg := &LoadConfig{MainConfig: &MainConfig{}}
	var buf bytes.Buffer
	in := "name: box\nsize: [4, 4.5]\n---\n- true\n- null\n"
	require.NoError(t, loadReader(cfg, &buf, strings.NewReader(in), encode.YAMLFormat))
	assert.Equal(t, "{\"name\": \"box\", \"size\": [4, 4.5]}\n---\n[true, null]\n", buf.String())

	buf.Reset()
	in = `{"n": 12345678901234567890} [1]`
	require.NoError(t, loadReader(cfg, &buf, strings.NewReader(in), encode.JSONFormat))
	assert.Equal(t, "{\"n\": 12345678901234567000}\n---\n[1]\n", buf.String())
}

func TestReadFileConfig(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	require.NoError(t, os.WriteFile(good, []byte("format: json\ncolor: false\nmaxDepth: 8\nenv:\n  width: 4\n"), 0644))
	fc, err := readFileConfig(good)
	require.NoError(t, err)
	assert.Equal(t, "json", fc.Format)
	require.NotNil(t, fc.Color)
	assert.False(t, *fc.Color)
	assert.Equal(t, 8, fc.MaxDepth)

	mc := &MainConfig{Config: fc}
	assert.Equal(t, encode.JSONFormat, mc.format())

	for name, body := range map[string]string{
		"badformat.yaml": "format: xml\n",
		"negative.yaml":  "maxDepth: -1\n",
		"unknown.yaml":   "colour: true\n",
	} {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(body), 0644))
		_, err := readFileConfig(p)
		assert.Error(t, err, name)
	}
	_, err = readFileConfig(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestEncOptsColor(t *testing.T) {
	var buf bytes.Buffer
	on := true
	cfg := &MainConfig{Config: &FileConfig{Color: &on}}
	assert.Len(t, cfg.encOpts(&buf), 2)
	cfg.Config.Color = nil
	assert.Len(t, cfg.encOpts(&buf), 1)
	cfg.Color = true
	assert.Len(t, cfg.encOpts(&buf), 2)
	f := encode.YAMLFormat
	cfg.OutFormat = &f
	assert.Len(t, cfg.encOpts(&buf), 1)
}

func TestGetArg(t *testing.T) {
	cfg := &GetConfig{MainConfig: &MainConfig{}}
	p, err := ir.ParsePath("$.a[1]")
	require.NoError(t, err)
	var buf bytes.Buffer
	in := "a: [1, {b: c}]\n---\na: [0, 2]\n"
	require.NoError(t, getArg(cfg, &buf, strings.NewReader(in), "-", p))
	assert.Equal(t, "{\"b\": \"c\"}\n2\n", buf.String())

	err = getArg(cfg, &buf, strings.NewReader("a: []\n"), "-", p)
	assert.ErrorIs(t, err, ir.ErrIndex)
}

func TestEnvPrecedence(t *testing.T) {
	t.Setenv(EnvEnv, `{"a": 2, "b": 2}`)
	envEnv, err := loadEnvEnv()
	require.NoError(t, err)
	cfg := &BuildConfig{
		MainConfig: &MainConfig{
			Config: &FileConfig{Env: map[string]any{"a": 1, "b": 1, "c": 1}},
			EnvEnv: envEnv,
		},
		Env: map[string]any{},
	}
	require.NoError(t, envFunc(cfg.Env, "b=3"))
	var buf bytes.Buffer
	require.NoError(t, buildLiterals(cfg, &buf, [][]byte{[]byte(`[a, b, c]`)}))
	assert.Equal(t, "[2, 3, 1]\n", buf.String())

	t.Setenv(EnvEnv, `[1]`)
	_, err = loadEnvEnv()
	assert.Error(t, err)
	t.Setenv(EnvEnv, "")
	envEnv, err = loadEnvEnv()
	require.NoError(t, err)
	assert.Nil(t, envEnv)
}
