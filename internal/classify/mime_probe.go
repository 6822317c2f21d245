package classify

import (
	"bytes"
	"context"
	"io"
	"os"
	"path"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"
	"github.com/swell-scan/swell/utility"
)

// ShellScriptMIME is reported for files starting with a shell shebang.
const ShellScriptMIME = "text/x-shellscript"

// sniffLength matches the amount of data mimetype inspects by default.
const sniffLength = 3072

var shellInterpreters = map[string]bool{
	"sh": true, "ash": true, "bash": true, "dash": true, "ksh": true, "mksh": true, "zsh": true,
}

// MimeProbe sniffs the leading bytes of a file in-process. Its hint lists
// the detected MIME type followed by every parent type, so an ELF
// executable reads "application/x-executable; application/x-elf; application/octet-stream".
// mimetype reports shebang scripts as plain text, so a shell shebang puts
// ShellScriptMIME in front of the chain.
type MimeProbe struct{}

func NewMimeProbe() *MimeProbe {
	return &MimeProbe{}
}

func (p *MimeProbe) Detect(ctx context.Context, filePath string) (TypeHint, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	header, err := readHeader(filePath)
	if err != nil {
		return "", errors.Wrapf(err, "failed to detect content type of %s", filePath)
	}

	var chain []string
	if shellInterpreters[shebangInterpreter(header)] {
		chain = append(chain, ShellScriptMIME)
	}
	for m := mimetype.Detect(header); m != nil; m = m.Parent() {
		chain = append(chain, m.String())
	}
	return TypeHint(strings.Join(chain, "; ")), nil
}

func readHeader(filePath string) ([]byte, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer utility.LoggedClose(file, "failed to close sniffed file")

	header := make([]byte, sniffLength)
	n, err := io.ReadFull(file, header)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, err
	}
	return header[:n], nil
}

// shebangInterpreter returns the interpreter name of a "#!" line,
// looking through "/usr/bin/env [-flags] name".
func shebangInterpreter(header []byte) string {
	if !bytes.HasPrefix(header, []byte("#!")) {
		return ""
	}
	line := header[2:]
	if end := bytes.IndexByte(line, '\n'); end >= 0 {
		line = line[:end]
	}
	fields := strings.Fields(string(line))
	if len(fields) == 0 {
		return ""
	}
	interpreter := path.Base(fields[0])
	if interpreter != "env" {
		return interpreter
	}
	for _, field := range fields[1:] {
		if !strings.HasPrefix(field, "-") && !strings.Contains(field, "=") {
			return path.Base(field)
		}
	}
	return ""
}
