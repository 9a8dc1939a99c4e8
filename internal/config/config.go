package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	// Source column names for the four registration fields.
	ColumnFullName  string `mapstructure:"column_full_name" yaml:"column_full_name"`
	ColumnCourse    string `mapstructure:"column_course" yaml:"column_course"`
	ColumnTimestamp string `mapstructure:"column_timestamp" yaml:"column_timestamp"`
	ColumnEmail     string `mapstructure:"column_email" yaml:"column_email"`

	// XLSX worksheet to read; empty means the first sheet.
	SheetName string `mapstructure:"sheet_name" yaml:"sheet_name"`

	// Document rendering.
	ReportTitle    string `mapstructure:"report_title" yaml:"report_title"`
	Attribution    string `mapstructure:"attribution" yaml:"attribution"`
	PageSize       string `mapstructure:"page_size" yaml:"page_size"`
	DateFormat     string `mapstructure:"date_format" yaml:"date_format"`
	DateTimeFormat string `mapstructure:"datetime_format" yaml:"datetime_format"`

	// Default directory for generated reports; empty means the working dir.
	OutputDir string `mapstructure:"output_dir" yaml:"output_dir"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is
// empty, it writes to ~/.enrolldeck/config.yaml, creating the directory if
// necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".enrolldeck")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("ENROLLDECK")
	v.AutomaticEnv()

	// Defaults match the form export the tool was built around.
	v.SetDefault("column_full_name", "Nombre y apellidos completos")
	v.SetDefault("column_course", "Curso de interés")
	v.SetDefault("column_timestamp", "Hora de inicio")
	v.SetDefault("column_email", "Correo de contacto")
	v.SetDefault("sheet_name", "")
	v.SetDefault("report_title", "REPORTE DE INSCRIPCIONES A CURSOS")
	v.SetDefault("attribution", "Elaborado por: enrolldeck")
	v.SetDefault("page_size", "Letter")
	v.SetDefault("date_format", "02/01/2006")
	v.SetDefault("datetime_format", "02/01/2006 15:04")
	v.SetDefault("output_dir", "")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".enrolldeck")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
