package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"resume-filter-go/internal/logger"
)

// Config 应用程序配置
type Config struct {
	// 日志配置
	Logger logger.Config `yaml:"logger"`

	// 规则目录配置
	Catalog CatalogConfig `yaml:"catalog"`

	// 排名流程配置
	Ranking RankingConfig `yaml:"ranking"`
}

// CatalogConfig 规则表配置
type CatalogConfig struct {
	// OverrideDir 规则表覆盖目录，空则只使用内置规则表
	OverrideDir string `yaml:"override_dir"`
}

// RankingConfig 两阶段排名配置
type RankingConfig struct {
	// 第一阶段粗筛保留的候选人数量
	ShortlistSize int `yaml:"shortlist_size"`
	// 第二阶段精筛后最终输出的候选人数量
	FinalSize int `yaml:"final_size"`
}

// Default 返回默认配置
func Default() *Config {
	return &Config{
		Logger: logger.DefaultConfig(),
		Ranking: RankingConfig{
			ShortlistSize: 10,
			FinalSize:     5,
		},
	}
}

// LoadConfig 从YAML文件加载配置，文件不存在时返回默认配置
func LoadConfig(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	if cfg.Ranking.ShortlistSize <= 0 {
		cfg.Ranking.ShortlistSize = 10
	}
	if cfg.Ranking.FinalSize <= 0 {
		cfg.Ranking.FinalSize = 5
	}

	return cfg, nil
}
