package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"courtside/internal/model"
)

func TestWriteDocument_SelfContained(t *testing.T) {
	t.Parallel()

	teams := []*model.Team{{
		Team: "Tigres", School: "Colegio A", Gender: "Masculino", Category: "U12",
		Players: []*model.Player{{
			RecordID: "player_0001", Name: "Juan", Jersey: "7", DOBDisplay: "March 05, 2014",
		}},
	}}

	path := filepath.Join(t.TempDir(), "dashboard.html")
	if err := WriteDocument(path, "Buzzer Beater Tournament", "bb_review_state_v1", teams); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	doc := string(data)

	for _, want := range []string{
		"Buzzer Beater Tournament",
		"bb_review_state_v1",
		`"record_id": "player_0001"`,
		"player-name",
		"TEAMS_DATA",
	} {
		if !strings.Contains(doc, want) {
			t.Fatalf("document missing %q", want)
		}
	}

	// 文档必须自包含，不引用任何外部脚本或样式
	if strings.Contains(doc, `<script src=`) || strings.Contains(doc, `<link rel="stylesheet"`) {
		t.Fatalf("document references external assets")
	}
}

func TestWriteDocument_EmptyTeams(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "dashboard.html")
	if err := WriteDocument(path, "Title", "key", nil); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), "TEAMS_DATA") {
		t.Fatalf("payload binding missing")
	}
}

func TestWriteDocument_BadPath(t *testing.T) {
	t.Parallel()

	err := WriteDocument(filepath.Join(t.TempDir(), "missing", "out.html"), "T", "k", nil)
	if err == nil {
		t.Fatalf("expected error")
	}
}
