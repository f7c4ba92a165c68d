package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// AppConfig 应用配置
type AppConfig struct {
	Data    DataConfig    `toml:"data"`
	Report  ReportConfig  `toml:"report"`
	Columns ColumnsConfig `toml:"columns"`
}

// DataConfig 输入输出配置
type DataConfig struct {
	Input   string `toml:"input"`
	Output  string `toml:"output"`
	DataDir string `toml:"data_dir"`
}

// ReportConfig 报告配置
type ReportConfig struct {
	Title      string `toml:"title"`
	StorageKey string `toml:"storage_key"`
}

// ColumnsConfig 各逻辑字段对应的表头列名；默认为报名系统导出的原始列名
type ColumnsConfig struct {
	School      string `toml:"school"`
	Team        string `toml:"team"`
	Gender      string `toml:"gender"`
	Category    string `toml:"category"`
	Player      string `toml:"player"`
	DateOfBirth string `toml:"date_of_birth"`
	Jersey      string `toml:"jersey"`
	Grade       string `toml:"grade"`
	Certificate string `toml:"certificate"`
	Waiver      string `toml:"waiver"`
}

// DefaultConfig 默认配置
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Data: DataConfig{
			Input:   "registrations.csv",
			Output:  "Tournament_Manager_Dashboard.html",
			DataDir: "data",
		},
		Report: ReportConfig{
			Title: "Buzzer Beater Tournament",
			// 浏览器端沿用该键读取历史标注，换键等于丢弃旧标注
			StorageKey: "bb_review_state_v1",
		},
		Columns: ColumnsConfig{
			School:      "Nombre del Colegio",
			Team:        "x_studio_teams/x_name",
			Gender:      "x_studio_teams/x_studio_sex",
			Category:    "x_studio_teams/x_studio_category",
			Player:      "x_studio_teams/x_studio_players/x_name",
			DateOfBirth: "x_studio_teams/x_studio_players/x_studio_date_of_birth",
			Jersey:      "x_studio_teams/x_studio_players/x_studio_jersey_number",
			Grade:       "x_studio_teams/x_studio_players/x_studio_grade",
			Certificate: "x_studio_teams/x_studio_players/x_studio_certificado_de_nacimiento_html",
			Waiver:      "x_studio_teams/x_studio_players/x_waiver_html",
		},
	}
}

// GetExeDir 获取可执行文件所在目录
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// Load 加载配置；path 为空时读取可执行文件同目录下的 courtside.toml
// 配置文件不存在时返回默认配置；解析失败时报错
func Load(path string) (*AppConfig, error) {
	config := DefaultConfig()

	if path == "" {
		exeDir, err := GetExeDir()
		if err != nil {
			exeDir = "."
		}
		path = filepath.Join(exeDir, "courtside.toml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnvOverrides(config)
			return config, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, err
	}

	applyEnvOverrides(config)
	return config, nil
}

// applyEnvOverrides 环境变量覆盖（用于 E2E / 本地运行）
func applyEnvOverrides(config *AppConfig) {
	if v := os.Getenv("COURTSIDE_INPUT"); v != "" {
		config.Data.Input = v
	}
	if v := os.Getenv("COURTSIDE_OUTPUT"); v != "" {
		config.Data.Output = v
	}
	if v := os.Getenv("COURTSIDE_DATA_DIR"); v != "" {
		config.Data.DataDir = v
	}
}

// EnsureDataDir 确保数据目录存在（终端评审状态文件落在这里）
func EnsureDataDir(config *AppConfig) (string, error) {
	dataDir := config.Data.DataDir
	if !filepath.IsAbs(dataDir) {
		exeDir, err := GetExeDir()
		if err != nil {
			exeDir = "."
		}
		dataDir = filepath.Join(exeDir, dataDir)
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}
	return dataDir, nil
}
