package review

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Storage 字符串键值存储能力；localStorage 的 Go 侧等价物
type Storage interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Clear(key string) error
}

// FileStore 落在单个 JSON 文件上的 Storage 实现
type FileStore struct {
	path string
}

// NewFileStore 创建文件存储；文件不存在视为空存储
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Get 读取键值；缺失返回空串，不报错
func (s *FileStore) Get(key string) (string, error) {
	values, err := s.load()
	if err != nil {
		return "", err
	}
	return values[key], nil
}

// Set 写入键值并立即落盘
func (s *FileStore) Set(key, value string) error {
	values, err := s.load()
	if err != nil {
		// 文件损坏时按空存储覆盖，标注不能因此不可用
		values = map[string]string{}
	}
	values[key] = value
	return s.flush(values)
}

// Clear 删除键并立即落盘
func (s *FileStore) Clear(key string) error {
	values, err := s.load()
	if err != nil {
		values = map[string]string{}
	}
	delete(values, key)
	return s.flush(values)
}

func (s *FileStore) load() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, err
	}

	values := map[string]string{}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("corrupt store file %s: %w", s.path, err)
	}
	return values, nil
}

func (s *FileStore) flush(values map[string]string) error {
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(s.path, data, 0644)
}

// MemStore 内存实现，测试用
type MemStore struct {
	values map[string]string
}

// NewMemStore 创建内存存储
func NewMemStore() *MemStore {
	return &MemStore{values: map[string]string{}}
}

// Get 读取键值
func (s *MemStore) Get(key string) (string, error) {
	return s.values[key], nil
}

// Set 写入键值
func (s *MemStore) Set(key, value string) error {
	s.values[key] = value
	return nil
}

// Clear 删除键
func (s *MemStore) Clear(key string) error {
	delete(s.values, key)
	return nil
}
