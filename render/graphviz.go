package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrGraphvizNotFound is returned by Render when the dot binary is not on PATH.
var ErrGraphvizNotFound = errors.New("graphviz dot binary not found")

// Render Runs Graphviz on DOT source and writes the image to path. format is any output format
// dot understands, such as png, svg or pdf.
func Render(ctx context.Context, source, path, format string) error {
	bin, err := exec.LookPath("dot")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrGraphvizNotFound, err)
	}

	cmd := exec.CommandContext(ctx, bin, "-T"+format, "-o", path)
	cmd.Stdin = strings.NewReader(source)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("dot -T%s: %w: %s", format, err, strings.TrimSpace(stderr.String()))
	}
	return nil
}
