package leadbook

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// draftsDirName is the directory, under the data path, holding the draft
// cache files. Profile discovery skips it.
const draftsDirName = ".drafts"

// FindProfile returns the unique broker profile matching the name.
// If the name is empty and exactly one profile exists, that one is returned.
// In any other case it returns an error.
func FindProfile(path, name string) (*BrokerProfile, error) {
	profilePaths, err := findProfilePaths(path, name)
	if err != nil {
		return nil, err
	}
	switch len(profilePaths) {
	case 0:
		return nil, fmt.Errorf("could not find broker profile %q: %w", name, fs.ErrNotExist)
	case 1:
		return loadProfileFile(profilePaths[0])
	default:
		return nil, fmt.Errorf("multiple broker profiles found for %q", name)
	}
}

// FindProfiles discovers and loads profile files from a given data path.
// If name is empty, all profiles (.jsonl files) in the path are loaded.
// A profile name is its file name without the .jsonl extension.
func FindProfiles(path, name string) ([]*BrokerProfile, error) {
	profilePaths, err := findProfilePaths(path, name)
	if err != nil {
		return nil, err
	}

	var loaded []*BrokerProfile
	for _, fullPath := range profilePaths {
		p, err := loadProfileFile(fullPath)
		if err != nil {
			// In a multi-file load we fail fast.
			return nil, err
		}
		loaded = append(loaded, p)
	}
	return loaded, nil
}

// loadProfileFile opens and decodes a broker profile from a given file path.
func loadProfileFile(fullPath string) (*BrokerProfile, error) {
	f, err := os.Open(fullPath)
	if err != nil {
		return nil, fmt.Errorf("could not open profile file %q: %w", fullPath, err)
	}
	defer f.Close()

	p, err := DecodeProfile(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode profile file %q: %w", fullPath, err)
	}
	return p, nil
}

// SaveProfile saves a broker profile to its corresponding file within the
// data path. A profile named "maria" is saved to "<path>/maria.jsonl".
func SaveProfile(path string, p *BrokerProfile) error {
	if p.BrokerName == "" {
		return fmt.Errorf("cannot save profile with an empty broker name")
	}

	filePath := filepath.Join(path, p.BrokerName+".jsonl")
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("could not create directory for profile %q: %w", filePath, err)
	}

	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("error opening profile file %q for writing: %w", filePath, err)
	}
	defer file.Close()

	return EncodeProfile(file, p)
}

// findProfilePaths scans the data path and returns the profile files whose
// name matches the query.
func findProfilePaths(path, name string) ([]string, error) {
	var profiles []string

	err := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == draftsDirName {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(p, ".jsonl") {
			return nil
		}
		profileName := strings.TrimSuffix(filepath.Base(p), ".jsonl")
		if name == "" || profileName == name {
			profiles = append(profiles, p)
		}
		return nil
	})

	return profiles, err
}
