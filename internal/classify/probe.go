package classify

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

const (
	FileCommandProbeName = "file"
	MimeProbeName        = "mime"

	DefaultFileCommand = "file"
)

// TypeHint is the textual description a probe gives for a file's content.
type TypeHint string

func (h TypeHint) ContainsAny(indicators []string) bool {
	for _, indicator := range indicators {
		if strings.Contains(string(h), indicator) {
			return true
		}
	}
	return false
}

//go:generate mockgen -source probe.go -destination probe_mock.go -package classify
type TypeProbe interface {
	Detect(ctx context.Context, path string) (TypeHint, error)
}

// FileCommandProbe asks the `file` utility to describe the content.
type FileCommandProbe struct {
	command string
	args    []string
}

func NewFileCommandProbe(command string) *FileCommandProbe {
	if command == "" {
		command = DefaultFileCommand
	}
	return &FileCommandProbe{
		command: command,
		args:    []string{"--brief"},
	}
}

func (p *FileCommandProbe) Detect(ctx context.Context, path string) (TypeHint, error) {
	args := append(append([]string{}, p.args...), "--", path)
	cmd := exec.CommandContext(ctx, p.command, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return "", errors.Wrapf(err, "%s exited with code %d: %s",
			p.command, exitCode, strings.TrimSpace(stderr.String()))
	}
	return TypeHint(strings.TrimSpace(stdout.String())), nil
}

// NewTypeProbe builds a probe by its configured name.
func NewTypeProbe(name, fileCommand string) (TypeProbe, error) {
	switch name {
	case "", FileCommandProbeName:
		return NewFileCommandProbe(fileCommand), nil
	case MimeProbeName:
		return NewMimeProbe(), nil
	default:
		return nil, errors.Errorf("unknown type probe '%s', expected one of: [%s %s]",
			name, FileCommandProbeName, MimeProbeName)
	}
}
