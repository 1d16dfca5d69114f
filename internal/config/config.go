// Package config loads dashboard settings from defaults, an optional YAML
// file, a .env file and DASHBOARD_ prefixed environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the full dashboard configuration.
type Config struct {
	Data     DataConfig     `mapstructure:"data"`
	Analysis AnalysisConfig `mapstructure:"analysis"`
	Server   ServerConfig   `mapstructure:"server"`
	Store    StoreConfig    `mapstructure:"store"`
	Log      LogConfig      `mapstructure:"log"`
}

// DataConfig says where the snapshot tables are read from. File paths are
// used for csv, sheet names inside Workbook for xlsx.
type DataConfig struct {
	Format     string       `mapstructure:"format" validate:"oneof=csv xlsx"`
	Delimiter  string       `mapstructure:"delimiter" validate:"len=1"`
	Sections   string       `mapstructure:"sections" validate:"required_if=Format csv"`
	Programs   string       `mapstructure:"programs"`
	Classrooms string       `mapstructure:"classrooms"`
	Students   string       `mapstructure:"students"`
	Registered string       `mapstructure:"registered"`
	Workbook   string       `mapstructure:"workbook" validate:"required_if=Format xlsx"`
	Sheets     SheetsConfig `mapstructure:"sheets"`
}

type SheetsConfig struct {
	Sections   string `mapstructure:"sections"`
	Programs   string `mapstructure:"programs"`
	Classrooms string `mapstructure:"classrooms"`
	Students   string `mapstructure:"students"`
	Registered string `mapstructure:"registered"`
}

// DelimiterRune is the first character of Delimiter.
func (d DataConfig) DelimiterRune() rune {
	for _, r := range d.Delimiter {
		return r
	}
	return ','
}

type AnalysisConfig struct {
	CapacityBonus       int `mapstructure:"capacity_bonus" validate:"min=0"`
	LowStudentThreshold int `mapstructure:"low_student_threshold" validate:"min=0"`
	LatestAdmitted      int `mapstructure:"latest_admitted" validate:"min=0"`
}

type ServerConfig struct {
	Port         int      `mapstructure:"port" validate:"min=1,max=65535"`
	AllowOrigins []string `mapstructure:"allow_origins"`
}

type StoreConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required"`
	Format string `mapstructure:"format" validate:"oneof=json console"`
}

// Load reads the configuration. path may name a config file; when blank,
// config.yaml is looked up in ./config and the working directory.
// Precedence: environment > config file > defaults.
func Load(path string) (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	v := viper.New()

	v.SetDefault("data.format", "csv")
	v.SetDefault("data.delimiter", ",")
	v.SetDefault("data.sections", "./res/private/sections.csv")
	v.SetDefault("data.programs", "./res/private/programs.csv")
	v.SetDefault("data.classrooms", "./res/private/classrooms.csv")
	v.SetDefault("data.students", "./res/private/students.csv")
	v.SetDefault("data.registered", "./res/private/registered.csv")
	v.SetDefault("data.workbook", "")
	v.SetDefault("data.sheets.sections", "Sections")
	v.SetDefault("data.sheets.programs", "Programs")
	v.SetDefault("data.sheets.classrooms", "Classrooms")
	v.SetDefault("data.sheets.students", "Students")
	v.SetDefault("data.sheets.registered", "Registered")

	v.SetDefault("analysis.capacity_bonus", 0)
	v.SetDefault("analysis.low_student_threshold", 10)
	v.SetDefault("analysis.latest_admitted", 3)

	v.SetDefault("server.port", 3001)
	v.SetDefault("server.allow_origins", []string{"*"})

	v.SetDefault("store.path", "db/reports.db")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("DASHBOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the struct tags of the configuration.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func loadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}
