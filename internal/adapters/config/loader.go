// Package config loads seed files and environment settings.
package config

import (
	"errors"
	"os"

	"github.com/go-playground/validator/v10"
	"go.trai.ch/roster/internal/core/domain"
	"go.trai.ch/roster/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.SeedLoader for YAML seed files.
type Loader struct {
	Logger   ports.Logger
	validate *validator.Validate
}

// NewLoader creates a Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{
		Logger:   logger,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Load reads the seed file at path and returns a Directory holding its entries
// in file order. Departments listed twice are merged.
func (l *Loader) Load(path string) (*domain.Directory, error) {
	//nolint:gosec // Path is provided by the user on the command line
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSeedReadFailed.Error()), "path", path)
	}

	var seed Seedfile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSeedParseFailed.Error()), "path", path)
	}

	if err := l.validate.Struct(&seed); err != nil {
		return nil, zerr.With(zerr.Wrap(describe(err), domain.ErrSeedInvalid.Error()), "path", path)
	}

	dir := domain.NewDirectory()
	for _, department := range seed.Departments {
		for _, name := range department.Employees {
			dir.Add(department.Name, name)
		}
	}

	if l.Logger != nil {
		l.Logger.Debug("loaded seed " + path)
	}
	return dir, nil
}

// describe turns validator output into one line per failing field.
func describe(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	msgs := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, errors.New(fe.Namespace()+": failed '"+fe.Tag()+"' rule"))
	}
	return errors.Join(msgs...)
}
