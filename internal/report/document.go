package report

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"time"

	"github.com/google/uuid"

	"courtside/internal/model"
)

//go:embed web/template.html
var templateFS embed.FS

// documentData 模板替换用的数据
type documentData struct {
	Title       string
	BuildID     string
	GeneratedAt string
	StorageKey  template.JS
	TeamsJSON   template.JS
	TableRows   template.HTML
}

// WriteDocument 组装自包含的仪表盘文档并写入 path
// 先在内存里渲染完成，再一次性落盘，避免留下半成品文件
func WriteDocument(path, title, storageKey string, teams []*model.Team) error {
	payload, err := MarshalTeams(teams)
	if err != nil {
		return fmt.Errorf("failed to serialize teams: %w", err)
	}

	keyJSON, err := json.Marshal(storageKey)
	if err != nil {
		return fmt.Errorf("failed to serialize storage key: %w", err)
	}

	tmpl, err := template.ParseFS(templateFS, "web/template.html")
	if err != nil {
		return fmt.Errorf("failed to parse document template: %w", err)
	}

	data := documentData{
		Title:       title,
		BuildID:     uuid.New().String(),
		GeneratedAt: time.Now().Format("2006-01-02 15:04:05"),
		StorageKey:  template.JS(keyJSON),
		TeamsJSON:   template.JS(payload),
		TableRows:   template.HTML(TableRows(teams)),
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("failed to render document: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
