package classify

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeExecutable(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o700))
	return path
}

func TestFileCommandProbe(t *testing.T) {
	dir := t.TempDir()
	fakeFile := writeExecutable(t, dir, "fake-file", "#!/bin/sh\necho \"described: $*\"\n")
	target := filepath.Join(dir, "-target")

	hint, err := NewFileCommandProbe(fakeFile).Detect(context.Background(), target)
	require.NoError(t, err)
	assert.Equal(t, TypeHint("described: --brief -- "+target), hint)
}

func TestFileCommandProbeFailure(t *testing.T) {
	dir := t.TempDir()
	failing := writeExecutable(t, dir, "failing-file", "#!/bin/sh\necho 'cannot open' >&2\nexit 3\n")

	_, err := NewFileCommandProbe(failing).Detect(context.Background(), "/nonexistent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "code 3")
	assert.Contains(t, err.Error(), "cannot open")

	_, err = NewFileCommandProbe(filepath.Join(dir, "missing")).Detect(context.Background(), "/nonexistent")
	assert.Error(t, err)
}

func TestMimeProbe(t *testing.T) {
	dir := t.TempDir()

	elfHeader := make([]byte, 64)
	copy(elfHeader, "\x7fELF\x02\x01\x01")
	elfPath := filepath.Join(dir, "tool")
	require.NoError(t, os.WriteFile(elfPath, elfHeader, 0o600))

	probe := NewMimeProbe()

	hint, err := probe.Detect(context.Background(), elfPath)
	require.NoError(t, err)
	assert.True(t, hint.ContainsAny(DefaultBinaryIndicators), string(hint))
	assert.False(t, hint.ContainsAny(DefaultScriptIndicators), string(hint))

	_, err = probe.Detect(context.Background(), filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestMimeProbeShellScripts(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		isScript bool
	}{
		{name: "sh", content: "#!/bin/sh\necho hello\n", isScript: true},
		{name: "bash", content: "#!/bin/bash\nset -e\n", isScript: true},
		{name: "env bash", content: "#!/usr/bin/env bash\necho hi\n", isScript: true},
		{name: "env with flags", content: "#!/usr/bin/env -S zsh -f\necho hi\n", isScript: true},
		{name: "spaced shebang", content: "#! /bin/ksh\n", isScript: true},
		{name: "shebang only", content: "#!/bin/dash", isScript: true},
		{name: "python", content: "#!/usr/bin/env python3\nprint(1)\n", isScript: false},
		{name: "plain text", content: "echo not a script\n", isScript: false},
		{name: "empty shebang", content: "#!\n", isScript: false},
		{name: "empty file", content: "", isScript: false},
	}

	dir := t.TempDir()
	probe := NewMimeProbe()
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, fmt.Sprintf("script-%d", i))
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			hint, err := probe.Detect(context.Background(), path)
			require.NoError(t, err)
			assert.Equal(t, tt.isScript, hint.ContainsAny(DefaultScriptIndicators), string(hint))
			assert.False(t, hint.ContainsAny(DefaultBinaryIndicators), string(hint))
		})
	}
}

func TestClassifyWithMimeProbe(t *testing.T) {
	dir := t.TempDir()
	script := writeExecutable(t, dir, "run", "#!/usr/bin/env bash\necho collected\n")
	text := writeExecutable(t, dir, "notes", "just some words\n")

	classifier := NewClassifier(nil, NewMimeProbe())
	assert.Equal(t, TypeMatchScript, classifier.Classify(context.Background(), script))
	assert.Equal(t, NotInteresting, classifier.Classify(context.Background(), text))
}

func TestFileCommandProbeStaticElf(t *testing.T) {
	dir := t.TempDir()
	fakeFile := writeExecutable(t, dir, "fake-file",
		"#!/bin/sh\necho 'ELF 64-bit LSB executable, x86-64, version 1 (SYSV), statically linked, Go BuildID=abc, not stripped'\n")

	classifier := NewClassifier(nil, NewFileCommandProbe(fakeFile))
	assert.Equal(t, TypeMatchBinary, classifier.Classify(context.Background(), filepath.Join(dir, "server")))
}

func TestNewTypeProbe(t *testing.T) {
	probe, err := NewTypeProbe("", "")
	require.NoError(t, err)
	assert.IsType(t, &FileCommandProbe{}, probe)

	probe, err = NewTypeProbe(MimeProbeName, "")
	require.NoError(t, err)
	assert.IsType(t, &MimeProbe{}, probe)

	_, err = NewTypeProbe("magic", "")
	assert.Error(t, err)
}
