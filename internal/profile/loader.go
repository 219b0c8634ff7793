package profile

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// profilesFile is the on-disk shape of a user profile collection.
type profilesFile struct {
	Profiles []Profile `yaml:"profiles"`
}

// Load reads user-defined profiles from path and appends them after the
// builtins. A missing file is not an error; the builtins alone are returned.
func Load(path string) ([]Profile, error) {
	profiles := Builtins()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return profiles, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read profiles %s: %w", path, err)
	}

	var file profilesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse profiles %s: %w", path, err)
	}
	for _, p := range file.Profiles {
		if p.Name == "" {
			return nil, fmt.Errorf("parse profiles %s: profile without profile_name", path)
		}
	}
	return append(profiles, file.Profiles...), nil
}
