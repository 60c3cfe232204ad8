package locals

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"apprepl/pkg/repltypes"
)

// ModuleName is the scope name a module file is injected under.
const ModuleName = "api"

// LoadModule reads a data module and returns its top-level keys as a
// namespace. YAML (.yaml, .yml), JSON (.json) and dotenv (.env) files are
// supported; nested mappings stay addressable as api.a.b.
func LoadModule(fs afero.Fs, path string) (repltypes.Namespace, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read module %s: %w", path, err)
	}

	ns := repltypes.Namespace{}
	switch ext := strings.ToLower(filepath.Ext(path)); {
	case ext == ".yaml" || ext == ".yml" || ext == ".json":
		var doc map[string]any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse module %s: %w", path, err)
		}
		for key, value := range doc {
			ns[key] = value
		}
	case ext == ".env" || filepath.Base(path) == ".env":
		env, err := godotenv.Unmarshal(string(data))
		if err != nil {
			return nil, fmt.Errorf("failed to parse module %s: %w", path, err)
		}
		for key, value := range env {
			ns[key] = value
		}
	default:
		return nil, fmt.Errorf("unsupported module type %q: %s", ext, path)
	}
	return ns, nil
}
