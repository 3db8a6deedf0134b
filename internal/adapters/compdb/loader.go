// Package compdb reads JSON compilation databases into the domain model.
package compdb

import (
	"encoding/json"
	"errors"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.trai.ch/compdb/internal/core/domain"
	"go.trai.ch/compdb/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DatabaseLoader = (*Loader)(nil)

// Loader implements ports.DatabaseLoader for JSON compilation databases.
type Loader struct {
	validate *validator.Validate
}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report JSON field names rather than Go field names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		return name
	})
	return &Loader{validate: v}
}

// Load reads and parses the compilation database at path.
func (l *Loader) Load(path string) (*domain.CompilationDatabase, error) {
	//nolint:gosec // Path comes from the user's configuration
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrDatabaseReadFailed, err), "path", path)
	}

	db, err := l.Parse(data)
	if err != nil {
		return nil, zerr.With(err, "database", path)
	}
	return db, nil
}

// Parse decodes a JSON array of records and builds the database from it.
func (l *Loader) Parse(data []byte) (*domain.CompilationDatabase, error) {
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, errors.Join(domain.ErrDatabaseParseFailed, err)
	}
	return l.FromRecords(records)
}

// FromRecords builds a database with one translation unit per record, in order.
func (l *Loader) FromRecords(records []Record) (*domain.CompilationDatabase, error) {
	units := make([]*domain.TranslationUnit, 0, len(records))
	for i := range records {
		unit, err := l.unitFromRecord(&records[i])
		if err != nil {
			return nil, zerr.With(err, "entry", i)
		}
		units = append(units, unit)
	}
	return domain.NewCompilationDatabase(units...), nil
}

func (l *Loader) unitFromRecord(r *Record) (*domain.TranslationUnit, error) {
	if err := l.validate.Struct(r); err != nil {
		return nil, invalidRecordError(err)
	}

	var (
		args   []string
		source domain.CommandSource
	)

	switch {
	case r.Arguments != nil:
		args, source = r.Arguments, domain.SourceArguments
	case r.Command != "":
		tokens, err := Unescape(r.Command)
		if err != nil {
			return nil, err
		}
		args, source = tokens, domain.SourceCommand
	}

	if len(args) == 0 {
		err := zerr.Wrap(domain.ErrMissingCommand, "neither arguments nor command given")
		return nil, zerr.With(err, "file", r.File)
	}

	return domain.NewTranslationUnit(args[0], args[1:], r.Directory, r.File, source), nil
}

func invalidRecordError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errors.Join(domain.ErrInvalidRecord, err)
	}

	missing := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		missing = append(missing, fe.Field())
	}
	return zerr.With(zerr.Wrap(domain.ErrInvalidRecord, "missing required field"), "fields", strings.Join(missing, ", "))
}
