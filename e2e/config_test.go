//go:build e2e && unix

package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigKeyBindings(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err)
	deck, err := tf.WriteDeck()
	require.NoError(t, err)

	// The working directory config is picked up automatically
	_, err = tf.WriteFile(".slidereel.toml", `[keys]
next = ["n"]
prev = ["p"]

[transition]
enabled = false
`)
	require.NoError(t, err)

	require.NoError(t, tf.StartApp(deck))
	require.True(t, tf.Ready())

	mark := tf.Mark()
	require.NoError(t, tf.Next())
	require.False(t, tf.SeePlainSince(mark, "2/3"), "Right arrow is no longer bound")

	require.NoError(t, tf.SendKeys("n"))
	require.True(t, tf.SeePlainSince(mark, "2/3"), "Configured key should advance")

	mark = tf.Mark()
	require.NoError(t, tf.SendKeys("p"))
	require.True(t, tf.SeePlainSince(mark, "1/3"), "Configured key should retreat")
}

func TestInvalidConfig(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[swipe]\nthreshold = -1\n"), 0644))

	out, err := exec.Command(binPath, "--config", path, "outline").CombinedOutput()
	require.Error(t, err, "Invalid config should fail")
	require.Contains(t, string(out), "swipe.threshold")
}

func TestInitConfig(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	out, err := exec.Command(binPath, "init-config", path).CombinedOutput()
	require.NoError(t, err, string(out))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "transition:")
}
