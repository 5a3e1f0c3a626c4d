// Package library loads component definitions from YAML sources so teams can
// extend the built-in set: a local directory of definition files, or a git
// repository cloned on demand.
package library

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pageforge/pageforge/internal/components"
	pferrors "github.com/pageforge/pageforge/internal/errors"
	"github.com/pageforge/pageforge/internal/logfields"
)

// definitionFile is the multi-definition file shape. Files may instead hold a
// single definition at the top level.
type definitionFile struct {
	Components []components.Definition `yaml:"components"`
}

// LoadDir reads every definition file (.yaml or .yml) under dir, recursively.
// Hidden files and directories are skipped, as are non-YAML files. A file
// holds either one definition or a `components:` list.
func LoadDir(dir string) ([]components.Definition, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("definition directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("definition path %s is not a directory", dir)
	}

	var defs []components.Definition
	err = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if path != dir && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(info.Name(), ".") || !isDefinitionFile(path) {
			return nil
		}

		fileDefs, err := loadFile(path)
		if err != nil {
			return err
		}
		defs = append(defs, fileDefs...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Component definitions loaded", logfields.Path(dir), logfields.Count(len(defs)))
	return defs, nil
}

// RegisterAll registers every definition into the library and returns the
// registered ids in order.
func RegisterAll(lib *components.Library, defs []components.Definition) []string {
	ids := make([]string, 0, len(defs))
	for _, def := range defs {
		lib.Register(def)
		ids = append(ids, def.ID)
	}
	return ids
}

func loadFile(path string) ([]components.Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read definition file %s: %w", path, err)
	}

	var file definitionFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, pferrors.NewParseError("yaml", "definition file "+path, err)
	}

	defs := file.Components
	if len(defs) == 0 {
		var single components.Definition
		if err := yaml.Unmarshal(data, &single); err != nil {
			return nil, pferrors.NewParseError("yaml", "definition file "+path, err)
		}
		if single.ID == "" {
			slog.Warn("Definition file holds no definitions", logfields.Path(path))
			return nil, nil
		}
		defs = []components.Definition{single}
	}

	for _, def := range defs {
		if err := checkDefinition(def); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		slog.Debug("Loaded component definition",
			logfields.ComponentID(def.ID),
			slog.String("category", def.Category),
			logfields.Path(path))
	}
	return defs, nil
}

// checkDefinition enforces the minimum shape a loadable definition must have.
func checkDefinition(def components.Definition) error {
	var fields []pferrors.FieldError
	if def.ID == "" {
		fields = append(fields, pferrors.FieldError{
			Path: "id", Message: "definition id is required", Code: "required",
		})
	}
	if def.Name == "" {
		fields = append(fields, pferrors.FieldError{
			Path: "name", Message: "definition name is required", Code: "required",
		})
	}
	if def.Template == "" {
		fields = append(fields, pferrors.FieldError{
			Path: "template", Message: "definition template is required", Code: "required",
		})
	}
	for _, spec := range def.Props {
		switch spec.Type {
		case components.PropString, components.PropNumber, components.PropBoolean,
			components.PropArray, components.PropObject:
		default:
			fields = append(fields, pferrors.FieldError{
				Path:    "props." + spec.Name + ".type",
				Message: fmt.Sprintf("unknown prop type %q", spec.Type),
				Code:    "invalid-value",
			})
		}
	}
	if len(fields) > 0 {
		return pferrors.NewValidationError(fields...)
	}
	return nil
}

func isDefinitionFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
