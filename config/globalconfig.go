// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package config

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const AppName = "stockcharts"
const configFileName = "globalconfig.yaml"
const configFileVersion = 1

var log = logrus.WithField("component", "config")

// GlobalConfig is the YAML backed configuration of the viewer and the CLI.
type GlobalConfig struct {
	fileName  string
	loaded    bool
	version   VersionConfig
	appConfig AppConfig
	mutex     sync.Mutex
}

type VersionConfig struct {
	FileVersion int
}

// NewGlobalConfig uses the configuration file in the user config dir.
func NewGlobalConfig() Config {
	return NewGlobalConfigFile("")
}

// NewGlobalConfigFile uses fileName, or the default location if it is empty.
func NewGlobalConfigFile(fileName string) Config {
	return &GlobalConfig{
		fileName:  fileName,
		version:   VersionConfig{FileVersion: configFileVersion},
		appConfig: NewAppConfig(),
	}
}

func (g *GlobalConfig) GetAppName() string {
	return AppName
}

// Locks access to the configuration and returns a copy which can be modified.
// Unlock needs to be called afterwards, if no error was returned.
func (g *GlobalConfig) Lock() (*AppConfig, error) {
	g.mutex.Lock()
	if err := g.ensureLoaded(false); err != nil {
		g.mutex.Unlock()
		return nil, err
	}
	c := g.appConfig.deepCopy()
	return &c, nil
}

// Unlock stores c and releases the lock. The file is only written if c
// differs from the current configuration or forceWriting is set.
func (g *GlobalConfig) Unlock(c *AppConfig, forceWriting bool) error {
	defer g.mutex.Unlock()
	if !forceWriting && cmp.Equal(g.appConfig, *c) {
		return nil
	}
	g.appConfig = *c
	return g.write()
}

// Copy returns a copy of the configuration, reading the file again if forceReading is set.
func (g *GlobalConfig) Copy(forceReading bool) (AppConfig, error) {
	g.mutex.Lock()
	defer g.mutex.Unlock()
	if err := g.ensureLoaded(forceReading); err != nil {
		return AppConfig{}, err
	}
	return g.appConfig.deepCopy(), nil
}

func (g *GlobalConfig) ensureLoaded(force bool) error {
	if g.loaded && !force {
		return nil
	}
	fileName, err := g.configFile()
	if err != nil {
		return err
	}
	appConfig, err := readConfigFile(fileName)
	if err != nil {
		return err
	}
	g.appConfig = appConfig
	g.loaded = true
	return nil
}

func (g *GlobalConfig) configFile() (string, error) {
	if g.fileName != "" {
		return g.fileName, nil
	}
	userConfigDir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "unable to determine configuration path")
	}
	return filepath.Join(userConfigDir, AppName, configFileName), nil
}

func readConfigFile(fileName string) (AppConfig, error) {
	appConfig := NewAppConfig()
	file, err := os.ReadFile(fileName)
	if os.IsNotExist(err) {
		log.Infof("Configuration file \"%s\" does not yet exist, using defaults.", fileName)
		return appConfig, nil
	}
	if err != nil {
		return appConfig, errors.Wrap(err, "failed to read configuration file")
	}
	var version VersionConfig
	if err := yaml.Unmarshal(file, &version); err != nil {
		return appConfig, errors.Wrap(err, "failed to parse configuration version")
	}
	// Settings unknown to this release would be lost on the next write.
	if version.FileVersion > configFileVersion {
		return appConfig, errors.Errorf(
			"invalid configuration file version %d instead of %d, probably from a newer release",
			version.FileVersion,
			configFileVersion)
	}
	if err := yaml.Unmarshal(file, &appConfig); err != nil {
		return appConfig, errors.Wrapf(err, "failed to parse configuration file %s", fileName)
	}
	appConfig.Sanitize()
	return appConfig, nil
}

func (g *GlobalConfig) write() error {
	fileName, err := g.configFile()
	if err != nil {
		return err
	}
	g.appConfig.Sanitize()
	g.appConfig.RemoveDefaults()
	fileVersion, err := yaml.Marshal(&g.version)
	if err != nil {
		g.appConfig.RestoreDefaults()
		return errors.Wrap(err, "error generating configuration version")
	}
	fileAppConfig, err := yaml.Marshal(&g.appConfig)
	g.appConfig.RestoreDefaults()
	if err != nil {
		return errors.Wrap(err, "error generating app configuration")
	}
	return writeFileReplacing(fileName, append(fileVersion, fileAppConfig...))
}

// writeFileReplacing writes to a temporary file first, so that a failed
// write keeps the previous configuration.
func writeFileReplacing(fileName string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(fileName), 0700); err != nil {
		return errors.Wrap(err, "failed to create configuration directory")
	}
	tmpFileName := fileName + ".tmp"
	if err := os.WriteFile(tmpFileName, content, 0600); err != nil {
		return errors.Wrap(err, "failed to write configuration file")
	}
	return errors.Wrap(os.Rename(tmpFileName, fileName), "failed to replace configuration file")
}
