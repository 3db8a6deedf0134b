package domain

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io/fs"
	"slices"

	"github.com/cespare/xxhash/v2"
)

// Invocation is the normalized view of a translation unit handed to downstream stages.
type Invocation struct {
	CompilerPath     string        `json:"compiler"                 yaml:"compiler"`
	CommonArguments  []string      `json:"commonArguments"          yaml:"commonArguments"`
	WorkingDirectory string        `json:"directory"                yaml:"directory"`
	InputPath        string        `json:"input"                    yaml:"input"`
	InputRealpath    string        `json:"inputRealpath"            yaml:"inputRealpath"`
	OutputPath       string        `json:"output"                   yaml:"output"`
	OutputRealpath   string        `json:"outputRealpath,omitempty" yaml:"outputRealpath,omitempty"`
	Source           CommandSource `json:"source"                   yaml:"source"`
	FlagsDigest      string        `json:"flagsDigest"              yaml:"flagsDigest"`
}

// NewInvocation derives the invocation of a unit.
// OutputRealpath stays empty when the output file has not been built yet;
// every other resolution failure is returned.
func NewInvocation(t *TranslationUnit, c Canonicalizer) (Invocation, error) {
	common, err := t.CommonArguments()
	if err != nil {
		return Invocation{}, err
	}

	outPath, err := t.OutputFullpath()
	if err != nil {
		return Invocation{}, err
	}

	inReal, err := t.InputRealpath(c)
	if err != nil {
		return Invocation{}, err
	}

	outReal, err := t.OutputRealpath(c)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Invocation{}, err
	}

	return Invocation{
		CompilerPath:     t.CompilerPath,
		CommonArguments:  slices.Clone(common),
		WorkingDirectory: t.WorkingDirectory,
		InputPath:        t.Fullpath(t.InputFilename),
		InputRealpath:    inReal,
		OutputPath:       outPath,
		OutputRealpath:   outReal,
		Source:           t.Source,
		FlagsDigest:      FlagsDigest(t.CompilerPath, common),
	}, nil
}

// Rebuild returns a full argument vector: compiler, common arguments, extra, then the input.
func (i Invocation) Rebuild(extra ...string) []string {
	args := make([]string, 0, len(i.CommonArguments)+len(extra)+2)
	args = append(args, i.CompilerPath)
	args = append(args, i.CommonArguments...)
	args = append(args, extra...)
	return append(args, i.InputPath)
}

// FlagsDigest returns a stable hash of a compiler and its common arguments.
// Units with identical flags share a digest.
func FlagsDigest(compilerPath string, common []string) string {
	d := xxhash.New()
	var buf []byte
	for _, s := range slices.Concat([]string{compilerPath}, common) {
		// Each string is length-prefixed.
		buf = binary.AppendUvarint(buf[:0], uint64(len(s)))
		buf = append(buf, s...)
		_, _ = d.Write(buf)
	}
	return fmt.Sprintf("%016x", d.Sum64())
}
