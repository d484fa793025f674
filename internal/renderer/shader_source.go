package renderer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrMalformedShaderSource is returned when a shader file cannot be split
// into stages: content before the first marker, a marker naming no known
// stage, or no marker at all.
var ErrMalformedShaderSource = errors.New("malformed shader source")

const shaderMarker = "#shader"

type shaderStage int

const (
	stageNone shaderStage = iota
	stageVertex
	stageFragment
)

// ShaderProgramSource holds the per-stage sources of a combined shader file.
type ShaderProgramSource struct {
	VertexSource   string
	FragmentSource string
}

// ParseShaderFile reads path and splits it with ParseShaderSource.
func ParseShaderFile(path string) (ShaderProgramSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return ShaderProgramSource{}, fmt.Errorf("open shader %q: %w", path, err)
	}
	defer f.Close()

	src, err := ParseShaderSource(f)
	if err != nil {
		return ShaderProgramSource{}, fmt.Errorf("parse shader %q: %w", path, err)
	}
	return src, nil
}

// ParseShaderSource splits r into vertex and fragment sources. A line
// containing "#shader" selects the stage for the lines that follow it and is
// itself dropped. Every other line is copied, newline terminated, to the
// selected stage. Blank lines before the first marker are ignored.
func ParseShaderSource(r io.Reader) (ShaderProgramSource, error) {
	var sections [3]strings.Builder
	stage := stageNone
	markers := 0

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		if strings.Contains(line, shaderMarker) {
			switch {
			case strings.Contains(line, "vertex"):
				stage = stageVertex
			case strings.Contains(line, "fragment"):
				stage = stageFragment
			default:
				return ShaderProgramSource{}, fmt.Errorf("%w: line %d: unknown stage in %q", ErrMalformedShaderSource, lineNo, line)
			}
			markers++
			continue
		}

		if stage == stageNone {
			if strings.TrimSpace(line) == "" {
				continue
			}
			return ShaderProgramSource{}, fmt.Errorf("%w: line %d: content before first %s marker", ErrMalformedShaderSource, lineNo, shaderMarker)
		}

		sections[stage].WriteString(line)
		sections[stage].WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return ShaderProgramSource{}, err
	}
	if markers == 0 {
		return ShaderProgramSource{}, fmt.Errorf("%w: no %s marker", ErrMalformedShaderSource, shaderMarker)
	}

	return ShaderProgramSource{
		VertexSource:   sections[stageVertex].String(),
		FragmentSource: sections[stageFragment].String(),
	}, nil
}
