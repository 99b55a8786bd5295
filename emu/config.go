package emu

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config describes a machine: where the firmware images come from and
// which patches apply at boot.
type Config struct {
	ROM   ROMConfig   `toml:"rom"`
	Patch PatchConfig `toml:"patch"`
}

type ROMConfig struct {
	Basic   string `toml:"basic"`
	Chargen string `toml:"chargen"`
	Kernal  string `toml:"kernal"`
}

type PatchConfig struct {
	Keyboard   bool   `toml:"keyboard"`
	DriverHook bool   `toml:"driver_hook"`
	LoadHook   bool   `toml:"load_hook"`
	Payload    string `toml:"payload"`
	Monitor    string `toml:"monitor"`
}

func DefaultConfig() Config {
	return Config{
		Patch: PatchConfig{Keyboard: true},
	}
}

// LoadConfig reads a machine config file. Fields absent from the file
// keep their default value.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// SaveConfig writes cfg to path.
func SaveConfig(path string, cfg Config) error {
	buf, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, buf, 0644)
}
