//go:build e2e && unix

package main

import (
	"os"
	"path/filepath"
)

// testDeck has short distinct slides so every position is recognisable on screen
const testDeck = `---
title: E2E Deck
author: Tester
---
# Alpha Slide

first

---

# Bravo Slide

second

---

# Charlie Slide

` + "```text\ncopy me\n```" + `
`

// CreateTestWorkspace creates an isolated home and working directory
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	dir, err := os.MkdirTemp("", "slidereel-e2e-*")
	if err != nil {
		return "", err
	}
	tf.workspace = dir
	return dir, nil
}

// WriteFile writes a file relative to the workspace
func (tf *TUITestFramework) WriteFile(name, content string) (string, error) {
	path := filepath.Join(tf.workspace, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}
	return path, os.WriteFile(path, []byte(content), 0644)
}

// WriteDeck writes the standard three slide deck
func (tf *TUITestFramework) WriteDeck() (string, error) {
	return tf.WriteFile("talk.md", testDeck)
}
