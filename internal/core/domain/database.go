package domain

import (
	"iter"

	"go.trai.ch/zerr"
)

// CompilationDatabase is the ordered set of translation units read from one database file.
// Order follows the input records and is kept for deterministic output only.
type CompilationDatabase struct {
	units []*TranslationUnit
}

// NewCompilationDatabase creates a database owning the given units.
func NewCompilationDatabase(units ...*TranslationUnit) *CompilationDatabase {
	return &CompilationDatabase{units: units}
}

// Len returns the number of translation units.
func (db *CompilationDatabase) Len() int {
	return len(db.units)
}

// Units returns an iterator over the units in input order.
func (db *CompilationDatabase) Units() iter.Seq2[int, *TranslationUnit] {
	return func(yield func(int, *TranslationUnit) bool) {
		for i, u := range db.units {
			if !yield(i, u) {
				return
			}
		}
	}
}

// Filter returns a new database holding the units for which keep reports true.
// The units themselves are shared, not copied, so cached derived values carry over.
func (db *CompilationDatabase) Filter(keep func(*TranslationUnit) (bool, error)) (*CompilationDatabase, error) {
	kept := make([]*TranslationUnit, 0, len(db.units))
	for _, u := range db.units {
		ok, err := keep(u)
		if err != nil {
			return nil, err
		}
		if ok {
			kept = append(kept, u)
		}
	}
	return NewCompilationDatabase(kept...), nil
}

// ValidateOutputs checks that no two units write the same output path.
// Output paths are compared after lexical normalization against each unit's working directory.
func (db *CompilationDatabase) ValidateOutputs() error {
	seen := make(map[string]*TranslationUnit, len(db.units))
	for _, u := range db.units {
		out, err := u.OutputFullpath()
		if err != nil {
			return err
		}
		if first, exists := seen[out]; exists {
			err := zerr.Wrap(ErrDuplicateOutput, "output file is written by more than one entry")
			err = zerr.With(err, "path", out)
			err = zerr.With(err, "first_input", first.Fullpath(first.InputFilename))
			return zerr.With(err, "duplicate_input", u.Fullpath(u.InputFilename))
		}
		seen[out] = u
	}
	return nil
}
