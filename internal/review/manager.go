package review

import (
	"encoding/json"
	"strings"
	"time"
)

// Counts 标注汇总
type Counts struct {
	Tagged  int
	Review  int
	Correct int
}

// Manager 标注状态机：内存映射 + 持久化镜像
// 每次变更同步落盘，内存与持久化之间不存在不一致窗口
type Manager struct {
	storage Storage
	key     string
	entries map[string]Entry
	now     func() time.Time
}

// NewManager 创建管理器并加载既有状态
// 存储缺失或内容损坏一律按空状态处理，不报错
func NewManager(storage Storage, key string) *Manager {
	m := &Manager{
		storage: storage,
		key:     key,
		entries: map[string]Entry{},
		now:     time.Now,
	}

	raw, err := storage.Get(key)
	if err != nil || raw == "" {
		return m
	}
	entries := map[string]Entry{}
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return m
	}
	m.entries = entries
	return m
}

// Get 按 record_id 取标注；没有则返回零值
func (m *Manager) Get(recordID string) Entry {
	return m.entries[recordID]
}

// Save 标注写入的唯一路径
// 备注仅在状态为 review 时生效；状态与备注都为空时整条删除；
// 每次保存都盖新的时间戳（last-write-wins，无合并无版本）
func (m *Manager) Save(recordID, status, note string) error {
	if recordID == "" {
		return nil
	}

	if status != StatusReview {
		note = ""
	}
	note = strings.TrimSpace(note)

	if status == "" && note == "" {
		delete(m.entries, recordID)
	} else {
		m.entries[recordID] = Entry{
			Status:    status,
			Note:      note,
			UpdatedAt: m.now().UTC().Format(time.RFC3339Nano),
		}
	}
	return m.persist()
}

// Counts 汇总标注数
func (m *Manager) Counts() Counts {
	c := Counts{}
	for _, e := range m.entries {
		if e.Status != "" {
			c.Tagged++
		}
		if e.Status == StatusReview {
			c.Review++
		}
		if e.Status == StatusCorrect {
			c.Correct++
		}
	}
	return c
}

// Len 标注条数
func (m *Manager) Len() int {
	return len(m.entries)
}

func (m *Manager) persist() error {
	if len(m.entries) == 0 {
		return m.storage.Clear(m.key)
	}
	data, err := json.Marshal(m.entries)
	if err != nil {
		return err
	}
	return m.storage.Set(m.key, string(data))
}
