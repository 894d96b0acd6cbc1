package cli

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// maxFolderDepth bounds how deep the folder subcommand descends from its
// root directory, so a mapping workspace can't accidentally pull in an
// entire unrelated source tree.
const maxFolderDepth = 4

// FolderManifest is the optional .mapc.yaml file at a folder's root that
// overrides the default "every *.ttl file" filter with explicit glob
// patterns, matched against each candidate file's base name.
type FolderManifest struct {
	Include []string `yaml:"include"`
	Exclude []string `yaml:"exclude"`
}

func loadManifest(dir string) (*FolderManifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, ".mapc.yaml"))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var m FolderManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// FindMappingFiles walks dir up to maxFolderDepth levels deep, returning
// every file that matches the directory's manifest (or, absent one, every
// *.ttl file), in the order filepath.Walk visits them.
func FindMappingFiles(dir string) ([]string, error) {
	manifest, err := loadManifest(dir)
	if err != nil {
		return nil, err
	}

	rootDepth := strings.Count(filepath.Clean(dir), string(os.PathSeparator))

	var files []string
	err = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			depth := strings.Count(filepath.Clean(path), string(os.PathSeparator)) - rootDepth
			if depth > maxFolderDepth {
				return filepath.SkipDir
			}
			return nil
		}
		if matchesManifest(path, manifest) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

func matchesManifest(path string, m *FolderManifest) bool {
	base := filepath.Base(path)
	if m != nil {
		for _, pat := range m.Exclude {
			if ok, _ := filepath.Match(pat, base); ok {
				return false
			}
		}
	}
	if m == nil || len(m.Include) == 0 {
		return filepath.Ext(path) == ".ttl"
	}
	for _, pat := range m.Include {
		if ok, _ := filepath.Match(pat, base); ok {
			return true
		}
	}
	return false
}
