// Package prettier pipes generated code through an external Prettier
// install so the output matches each frontend's formatting rules.
package prettier

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/rotisserie/eris"
)

// DefaultCmd is the formatter invocation used when none is configured.
const DefaultCmd = "npx prettier"

// Formatter runs a Prettier command over stdin/stdout.
type Formatter struct {
	args []string
}

// New creates a Formatter from a space-separated command line such as
// "npx prettier". An empty cmd falls back to DefaultCmd.
func New(cmd string) *Formatter {
	if strings.TrimSpace(cmd) == "" {
		cmd = DefaultCmd
	}
	return &Formatter{args: strings.Fields(cmd)}
}

// Format feeds code to the formatter as if it were a file named
// filename and returns the formatted result. configPath, when
// non-empty, is passed as --config. Any failure is returned to the
// caller, which is expected to fall back to the unformatted text.
func (f *Formatter) Format(ctx context.Context, code, filename, configPath string) (string, error) {
	args := append([]string(nil), f.args[1:]...)
	if configPath != "" {
		args = append(args, "--config", configPath)
	}
	args = append(args, "--stdin-filepath", filename)

	cmd := exec.CommandContext(ctx, f.args[0], args...)
	cmd.Stdin = strings.NewReader(code)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", eris.Wrapf(err, "prettier: format %s: %s", filename, stderr.String())
	}

	return stdout.String(), nil
}
