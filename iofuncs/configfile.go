package iofuncs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	eperrors "github.com/FanaticExplorer/EmojiesParser/errors"
)

type ConfigFile struct {
	OutputDir string `json:"output_directory"`
}

var configFilePath = filepath.Join(APP_PATH, "config.json")

// Returns the output directory path from the config file
//
// Falls back to "output" in the current working directory
// when no config file has been saved yet.
func GetDefaultOutputPath() string {
	if !PathExists(configFilePath) {
		return "output"
	}

	configFile, err := os.ReadFile(configFilePath)
	if err != nil {
		os.Remove(configFilePath)
		return "output"
	}

	var config ConfigFile
	err = json.Unmarshal(configFile, &config)
	if err != nil {
		os.Remove(configFilePath)
		return "output"
	}

	if config.OutputDir == "" {
		return "output"
	}
	return config.OutputDir
}

// saves the new output path to the config file if it does not exist
func saveConfig(newOutputPath, configFilePath string) error {
	config := ConfigFile{
		OutputDir: newOutputPath,
	}
	configFile, err := json.MarshalIndent(config, "", "    ")
	if err != nil {
		return fmt.Errorf(
			"error %d: failed to marshal config file, more info => %w",
			eperrors.JSON_ERROR,
			err,
		)
	}

	err = os.WriteFile(configFilePath, configFile, 0666)
	if err != nil {
		return fmt.Errorf(
			"error %d: failed to write config file, more info => %w",
			eperrors.OS_ERROR,
			err,
		)
	}
	return nil
}

// saves the new output path to the config file and overwrites the old one
func overwriteConfig(newOutputPath, configFilePath string) error {
	configFile, err := os.ReadFile(configFilePath)
	if err != nil {
		return fmt.Errorf(
			"error %d: failed to read config file, more info => %w",
			eperrors.OS_ERROR,
			err,
		)
	}

	var config ConfigFile
	err = json.Unmarshal(configFile, &config)
	if err != nil {
		return fmt.Errorf(
			"error %d: failed to unmarshal config file, more info => %w",
			eperrors.JSON_ERROR,
			err,
		)
	}

	if config.OutputDir == newOutputPath {
		return nil
	}

	config.OutputDir = newOutputPath
	configFile, err = json.MarshalIndent(config, "", "    ")
	if err != nil {
		return fmt.Errorf(
			"error %d: failed to marshal config file, more info => %w",
			eperrors.JSON_ERROR,
			err,
		)
	}

	err = os.WriteFile(configFilePath, configFile, 0666)
	if err != nil {
		return fmt.Errorf(
			"error %d: failed to write config file, more info => %w",
			eperrors.OS_ERROR,
			err,
		)
	}
	return nil
}

// Configure and saves the config file with the updated output directory path
func SetDefaultOutputPath(newOutputPath string) error {
	if newOutputPath == "" {
		return fmt.Errorf(
			"error %d: output path cannot be empty",
			eperrors.INPUT_ERROR,
		)
	}

	os.MkdirAll(filepath.Dir(configFilePath), 0755)
	if !PathExists(configFilePath) {
		return saveConfig(newOutputPath, configFilePath)
	}
	return overwriteConfig(newOutputPath, configFilePath)
}
