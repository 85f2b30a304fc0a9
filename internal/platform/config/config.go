package config

import (
	"strings"

	"github.com/spf13/viper"
)

const (
	DefaultOutput     = "qrcode.png"
	DefaultModuleSize = 10
	EnvPrefix         = "QRGEN"
)

type Config struct {
	Output  string        `mapstructure:"output"`
	Image   ImageConfig   `mapstructure:"image"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type ImageConfig struct {
	// Size is the fixed width and height in pixels. 0 derives the size
	// from ModuleSize and the symbol version.
	Size          int  `mapstructure:"size"`
	ModuleSize    int  `mapstructure:"module_size"`
	DisableBorder bool `mapstructure:"disable_border"`
}

type LoggingConfig struct {
	Level    string `mapstructure:"level"`
	Format   string `mapstructure:"format"`
	Output   string `mapstructure:"output"`
	FilePath string `mapstructure:"file_path"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("output", DefaultOutput)
	v.SetDefault("image.size", 0)
	v.SetDefault("image.module_size", DefaultModuleSize)
	v.SetDefault("image.disable_border", false)
	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "text")
	v.SetDefault("logging.output", "stderr")
	v.SetDefault("logging.file_path", "")
}

// Load reads defaults, the optional config file at path and QRGEN_*
// environment overrides, in increasing order of precedence.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if config.Output == "" {
		config.Output = DefaultOutput
	}
	if config.Image.ModuleSize <= 0 {
		config.Image.ModuleSize = DefaultModuleSize
	}

	return &config, nil
}
