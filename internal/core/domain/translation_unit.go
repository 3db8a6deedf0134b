// Package domain contains the core model of a compilation database and the
// normalization rules applied to each of its translation units.
package domain

import (
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

// CommandSource records which compilation database field a unit's arguments came from.
type CommandSource uint8

const (
	// SourceArguments means the record carried a pre-tokenized "arguments" array.
	SourceArguments CommandSource = iota
	// SourceCommand means the arguments were unescaped from the "command" string.
	SourceCommand
)

// String returns the JSON field name the arguments were read from.
func (s CommandSource) String() string {
	if s == SourceCommand {
		return "command"
	}
	return "arguments"
}

// MarshalText implements encoding.TextMarshaler.
func (s CommandSource) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Canonicalizer resolves a path to its canonical absolute form with symlinks resolved.
type Canonicalizer interface {
	Realpath(path string) (string, error)
}

// TranslationUnit is one source file plus the compiler invocation used to build it.
//
// Paths in Arguments, InputFilename and the derived output filename may be
// relative to WorkingDirectory. Derived values are computed on first access
// and cached; a TranslationUnit must therefore not be copied.
type TranslationUnit struct {
	CompilerPath     string
	Arguments        []string
	WorkingDirectory string
	InputFilename    string
	Source           CommandSource

	derived        Cell[derivedArgs]
	inputRealpath  Cell[string]
	outputFullpath Cell[string]
	outputRealpath Cell[string]
}

type derivedArgs struct {
	outputFilename  string
	commonArguments []string
}

// NewTranslationUnit creates a unit from its raw compilation database fields.
// No validation happens here; the invariants are checked when derived values are requested.
func NewTranslationUnit(compilerPath string, args []string, workingDir, inputFilename string, source CommandSource) *TranslationUnit {
	return &TranslationUnit{
		CompilerPath:     compilerPath,
		Arguments:        args,
		WorkingDirectory: workingDir,
		InputFilename:    inputFilename,
		Source:           source,
	}
}

// OutputFilename returns the object file the invocation writes, possibly relative.
// It is the value of the last -o option or, without one, the input filename
// with its source suffix replaced by ObjectSuffix.
func (t *TranslationUnit) OutputFilename() (string, error) {
	d, err := t.derived.Get(t.scanArguments)
	return d.outputFilename, err
}

// CommonArguments returns the arguments without -c, -o <file> and the input file.
// The returned slice is shared by every caller and must not be modified.
func (t *TranslationUnit) CommonArguments() ([]string, error) {
	d, err := t.derived.Get(t.scanArguments)
	return d.commonArguments, err
}

func (t *TranslationUnit) scanArguments() (derivedArgs, error) {
	n := len(t.Arguments)
	if n == 0 || t.Arguments[n-1] != t.InputFilename {
		last := ""
		if n > 0 {
			last = t.Arguments[n-1]
		}
		err := zerr.Wrap(ErrUnsupportedTranslationUnit, "last compiler argument is not the input file")
		err = zerr.With(err, "file", t.InputFilename)
		return derivedArgs{}, zerr.With(err, "last_argument", last)
	}
	if !strings.HasSuffix(t.InputFilename, SourceSuffix) {
		err := zerr.Wrap(ErrUnsupportedTranslationUnit, "only C source files are supported")
		return derivedArgs{}, zerr.With(err, "file", t.InputFilename)
	}

	d := derivedArgs{
		// Overwritten by the last -o, if any.
		outputFilename:  strings.TrimSuffix(t.InputFilename, SourceSuffix) + ObjectSuffix,
		commonArguments: make([]string, 0, n-1),
	}

	args := t.Arguments[:n-1]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-c":
		case "-o":
			if i+1 >= len(args) {
				err := zerr.Wrap(ErrUnsupportedTranslationUnit, "-o is missing its value")
				return derivedArgs{}, zerr.With(err, "file", t.InputFilename)
			}
			i++
			d.outputFilename = args[i]
		default:
			d.commonArguments = append(d.commonArguments, args[i])
		}
	}

	return d, nil
}

// Fullpath lexically normalizes path against the working directory.
// It never touches the filesystem.
func (t *TranslationUnit) Fullpath(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(t.WorkingDirectory, path)
}

// Realpath returns the canonical form of path, resolved against the working directory.
// The joined path is handed to c unnormalized so that ".." after a symlink is resolved
// against the link target rather than lexically.
func (t *TranslationUnit) Realpath(c Canonicalizer, path string) (string, error) {
	return c.Realpath(t.joinPath(path))
}

func (t *TranslationUnit) joinPath(path string) string {
	if filepath.IsAbs(path) || t.WorkingDirectory == "" {
		return path
	}
	return t.WorkingDirectory + string(filepath.Separator) + path
}

// InputRealpath returns the canonical path of the input file.
func (t *TranslationUnit) InputRealpath(c Canonicalizer) (string, error) {
	return t.inputRealpath.Get(func() (string, error) {
		return t.Realpath(c, t.InputFilename)
	})
}

// OutputFullpath returns the lexically normalized path of the output file.
func (t *TranslationUnit) OutputFullpath() (string, error) {
	return t.outputFullpath.Get(func() (string, error) {
		out, err := t.OutputFilename()
		if err != nil {
			return "", err
		}
		return t.Fullpath(out), nil
	})
}

// OutputRealpath returns the canonical path of the output file.
// It fails when the output does not exist on disk.
func (t *TranslationUnit) OutputRealpath(c Canonicalizer) (string, error) {
	return t.outputRealpath.Get(func() (string, error) {
		out, err := t.OutputFilename()
		if err != nil {
			return "", err
		}
		return t.Realpath(c, out)
	})
}
