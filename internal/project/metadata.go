package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

const (
	// DefaultVersion is written when a template's package.json has none.
	DefaultVersion = "0.0.1"

	// ExtensionDependency is the devDependency every project gets.
	ExtensionDependency = "extension"

	// ExtensionDependencyVersion is used when the template does not pin one.
	ExtensionDependencyVersion = "latest"
)

var extensionScripts = []struct{ name, command string }{
	{"dev", "extension dev"},
	{"start", "extension start"},
	{"build", "extension build"},
}

// manifestLocations are checked for a manifest.json, in order.
var manifestLocations = []string{
	"manifest.json",
	filepath.Join("src", "manifest.json"),
}

// WritePackageJSON sets the project metadata in package.json, creating the
// file if the template has none. Keys the template defines are kept unless
// they are part of the extension metadata.
func WritePackageJSON(projectPath, projectName string) error {
	path := filepath.Join(projectPath, "package.json")

	data, created, err := readJSON(path)
	if err != nil {
		return err
	}

	set := func(key string, value interface{}) {
		if err == nil {
			data, err = sjson.SetBytes(data, key, value)
		}
	}

	set("name", projectName)
	if !gjson.GetBytes(data, "version").Exists() {
		set("version", DefaultVersion)
	}
	set("private", true)
	for _, script := range extensionScripts {
		set("scripts."+script.name, script.command)
	}
	if !gjson.GetBytes(data, "devDependencies."+ExtensionDependency).Exists() {
		set("devDependencies."+ExtensionDependency, ExtensionDependencyVersion)
	}
	if err != nil {
		return fmt.Errorf("updating %s: %w", path, err)
	}

	return writeJSON(path, data, created)
}

// WriteManifestJSON sets the name of every manifest.json the template ships.
// It returns the paths it updated.
func WriteManifestJSON(projectPath, projectName string) ([]string, error) {
	var updated []string
	for _, rel := range manifestLocations {
		path := filepath.Join(projectPath, rel)
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			continue
		}

		data, _, err := readJSON(path)
		if err != nil {
			return updated, err
		}
		data, err = sjson.SetBytes(data, "name", projectName)
		if err != nil {
			return updated, fmt.Errorf("updating %s: %w", path, err)
		}
		if err := writeJSON(path, data, false); err != nil {
			return updated, err
		}
		updated = append(updated, path)
	}
	return updated, nil
}

// readJSON returns the file's contents or an empty object when the file does
// not exist. created reports the latter.
func readJSON(path string) (data []byte, created bool, err error) {
	data, err = os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return []byte("{}"), true, nil
	}
	if err != nil {
		return nil, false, err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return []byte("{}"), false, nil
	}
	if !gjson.ValidBytes(data) {
		return nil, false, fmt.Errorf("%s is not valid JSON", path)
	}
	return data, false, nil
}

func writeJSON(path string, data []byte, pretty bool) error {
	if pretty {
		data = []byte(gjson.GetBytes(data, "@pretty").Raw)
	}
	if len(data) == 0 || data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}
	return os.WriteFile(path, data, 0o644)
}
