package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func runKeys(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCommand("test")
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"keys"}, args...))
	require.NoError(t, root.Execute())
	return out.String()
}

func setupProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "src", "app.vue"), `<template>
  <p>{{ $t('nav.home') }}</p>
  <span v-t="'greet.hi'"></span>
</template>

<script>
export default {
  methods: {
    hello() {
      return this.$t('hello.world')
    },
  },
}
</script>
`)
	writeFile(t, filepath.Join(dir, "src", "util.js"), `t('nav.home'); tc('cart.items', 2)`)
	t.Chdir(dir)
	return dir
}

func TestKeysCommandPrintsSortedKeys(t *testing.T) {
	setupProject(t)

	out := runKeys(t, "src")
	want := "cart.items\ngreet.hi\nhello.world\nnav.home\n"
	require.Equal(t, want, out)
}

func TestKeysCommandJSONOutput(t *testing.T) {
	setupProject(t)

	out := runKeys(t, "src", "--json")
	var keys []string
	require.NoError(t, json.Unmarshal([]byte(out), &keys))
	require.Equal(t, []string{"cart.items", "greet.hi", "hello.world", "nav.home"}, keys)
}

func TestKeysCommandExtensionFilter(t *testing.T) {
	setupProject(t)

	out := runKeys(t, "src", "--ext", ".vue")
	want := "greet.hi\nhello.world\nnav.home\n"
	require.Equal(t, want, out)
}

func TestKeysCommandHonorsConfigOverrides(t *testing.T) {
	dir := setupProject(t)
	writeFile(t, filepath.Join(dir, configFileName), "ignore:\n  - \"src/util.js\"\n")

	out := runKeys(t, "src")
	want := "greet.hi\nhello.world\nnav.home\n"
	require.Equal(t, want, out)
}

func TestKeysCommandDefaultsToWorkingDirectory(t *testing.T) {
	setupProject(t)

	out := runKeys(t)
	require.Contains(t, out, "nav.home")
	require.Contains(t, out, "cart.items")
}
