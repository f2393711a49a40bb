// Package config предоставляет структуры и функции для загрузки конфига.
package config

import (
	"fmt"
	"log"
	"os"

	"github.com/go-playground/validator"
	"github.com/ilyakaznacheev/cleanenv"
)

// Config общая структура для хранения настроек
type Config struct {
	Env          string `yaml:"env" env:"ENV" env-default:"local" validate:"required,oneof=local dev prod test"`
	SampleUser   `yaml:"sample_user"`
	Verification `yaml:"verification"`
	Metrics      `yaml:"metrics"`
}

// SampleUser исходные данные пользователя, которого регистрирует точка входа.
// Значения не проверяются здесь: это задача доменных валидаторов.
type SampleUser struct {
	Email      string `yaml:"email" env:"SAMPLE_EMAIL" env-default:"foo@ok.com"`
	Age        int    `yaml:"age" env:"SAMPLE_AGE" env-default:"22"`
	Name       string `yaml:"name" env:"SAMPLE_NAME" env-default:"Luca"`
	MiddleName string `yaml:"middle_name" env:"SAMPLE_MIDDLE_NAME"`
	Surname    string `yaml:"surname" env:"SAMPLE_SURNAME" env-default:"Rossi"`
}

// Verification настройки заглушки подтверждения почты
type Verification struct {
	Marker string `yaml:"marker" env:"VERIFICATION_MARKER" env-default:"ok" validate:"required"`
}

// Metrics настройки выгрузки метрик; пустой путь отключает выгрузку
type Metrics struct {
	TextfilePath string `yaml:"textfile_path" env:"METRICS_TEXTFILE_PATH"`
}

// MiddleNamePtr возвращает второе имя или nil, если оно не задано.
func (s SampleUser) MiddleNamePtr() *string {
	if s.MiddleName == "" {
		return nil
	}
	middle := s.MiddleName
	return &middle
}

// Load читает конфиг из файла CONFIG_PATH. Если переменная не задана,
// конфиг собирается из окружения и значений по умолчанию.
func Load() (*Config, error) {
	const op = "config.Load"
	var cfg Config

	configPath := os.Getenv("CONFIG_PATH")
	if configPath != "" {
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: file %s does not exist", op, configPath)
		}
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			return nil, fmt.Errorf("%s: cannot read config: %w", op, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("%s: cannot read env: %w", op, err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("%s: invalid config: %w", op, err)
	}
	return &cfg, nil
}

// MustLoad загружает конфиг и завершает процесс, если это не удалось.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"SampleUser:\n"+
			"  Email: %s\n"+
			"  Age: %d\n"+
			"  Name: %s\n"+
			"  MiddleName: %s\n"+
			"  Surname: %s\n"+
			"Verification:\n"+
			"  Marker: %s\n"+
			"Metrics:\n"+
			"  TextfilePath: %s\n",
		c.Env,
		c.Email,
		c.Age,
		c.Name,
		c.MiddleName,
		c.Surname,
		c.Marker,
		c.TextfilePath,
	)
}
