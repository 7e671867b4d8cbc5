package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"dentrack/internal/parser"
)

// AppConfig 애플리케이션 설정
type AppConfig struct {
	Server ServerConfig `toml:"server"`
	Data   DataConfig   `toml:"data"`
	Clinic ClinicConfig `toml:"clinic"`
}

// ServerConfig 서버 설정
type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

// DataConfig 데이터 설정
type DataConfig struct {
	DataDir string `toml:"data_dir"`
}

// ClinicConfig 지점/시트 설정
type ClinicConfig struct {
	Branch          string                 `toml:"branch"`          // 기본 지점명
	PrimarySheet    string                 `toml:"primary_sheet"`   // 수술기록 시트 이름
	InsuranceSheet  string                 `toml:"insurance_sheet"` // 보험 임플란트 시트 이름
	SupplierAliases []parser.SupplierAlias `toml:"supplier_alias"`  // 기본 별칭 표 뒤에 덧붙는 추가 항목
}

// DefaultConfig 기본 설정
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:    20317,
			DevMode: false,
		},
		Data: DataConfig{
			DataDir: "data",
		},
		Clinic: ClinicConfig{
			Branch:         "본점",
			PrimarySheet:   "수술기록",
			InsuranceSheet: "보험임플란트",
		},
	}
}

// GetExeDir 실행 파일이 있는 디렉터리
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfig 실행 파일 옆 config.toml 에서 설정을 읽는다
// 파일이 없으면 기본 설정을 쓴다
func LoadConfig() (*AppConfig, error) {
	config := DefaultConfig()

	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	configPath := filepath.Join(exeDir, "config.toml")

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, err
	}

	// 환경 변수 우선 (로컬 실행/E2E 용)
	if v := os.Getenv("DENTRACK_DATA_DIR"); v != "" {
		config.Data.DataDir = v
	}

	return config, nil
}

// SaveConfig 설정을 config.toml 에 저장한다
func SaveConfig(config *AppConfig) error {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	configPath := filepath.Join(exeDir, "config.toml")

	data, err := toml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// EnsureDataDir 데이터 디렉터리와 하위 디렉터리를 만든다
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

	subdirs := []string{"uploads", "exports", "backups"}
	for _, subdir := range subdirs {
		if err := os.MkdirAll(filepath.Join(dataDir, subdir), 0755); err != nil {
			return "", err
		}
	}

	return dataDir, nil
}
