package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"courtside/internal/config"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return path
}

func testColumns() config.ColumnsConfig {
	return config.ColumnsConfig{
		School:      "School",
		Team:        "Team",
		Gender:      "Gender",
		Category:    "Category",
		Player:      "Player",
		DateOfBirth: "DOB",
		Jersey:      "Jersey",
		Grade:       "Grade",
		Certificate: "Cert",
		Waiver:      "Waiver",
	}
}

func TestReadSource_CSV(t *testing.T) {
	t.Parallel()

	path := writeCSV(t, strings.Join([]string{
		"School,Team,Gender,Category,Player,DOB,Jersey,Grade,Cert,Waiver",
		`Colegio A,Tigres,Masculino,U12,Juan,2014-03-05,7,6th,"<a href=""https://drive.google.com/file/d/ABC/view"">c</a>",`,
		`,,,,Pedro,2014-07-01,12.0,6th,,`,
	}, "\n"))

	rows, err := ReadSource(path, testColumns())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("want 2 rows got=%d", len(rows))
	}

	if rows[0].RowNo != 2 || rows[1].RowNo != 3 {
		t.Fatalf("row numbers wrong: %d %d", rows[0].RowNo, rows[1].RowNo)
	}
	if rows[0].School != "Colegio A" || rows[0].PlayerName != "Juan" {
		t.Fatalf("row 2 mapping wrong: %+v", rows[0])
	}
	if !strings.Contains(rows[0].CertHTML, "drive.google.com") {
		t.Fatalf("rich cell lost: %q", rows[0].CertHTML)
	}
	if rows[1].School != "" || rows[1].Jersey != "12.0" {
		t.Fatalf("row 3 mapping wrong: %+v", rows[1])
	}
}

func TestReadSource_RichCellWithCommaAndNewline(t *testing.T) {
	t.Parallel()

	path := writeCSV(t, strings.Join([]string{
		"School,Team,Gender,Category,Player,DOB,Jersey,Grade,Cert,Waiver",
		"Colegio A,Tigres,Masculino,U12,Juan,2014-03-05,7,6th,\"<p>line1,\nline2</p>\",",
	}, "\n"))

	rows, err := ReadSource(path, testColumns())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.Contains(rows[0].CertHTML, "line1,\nline2") {
		t.Fatalf("quoted cell broken: %q", rows[0].CertHTML)
	}
}

func TestReadSource_MissingColumnsNamed(t *testing.T) {
	t.Parallel()

	path := writeCSV(t, "School,Team,Gender,Category,Player,DOB,Jersey,Grade\nx,x,x,x,x,x,x,x")

	_, err := ReadSource(path, testColumns())
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "Cert") || !strings.Contains(err.Error(), "Waiver") {
		t.Fatalf("error should name missing columns: %v", err)
	}
}

func TestReadSource_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := ReadSource(filepath.Join(t.TempDir(), "nope.csv"), testColumns())
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestReadSource_HeaderOnly(t *testing.T) {
	t.Parallel()

	path := writeCSV(t, "School,Team,Gender,Category,Player,DOB,Jersey,Grade,Cert,Waiver")
	rows, err := ReadSource(path, testColumns())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("want 0 rows got=%d", len(rows))
	}
}

func TestReadSource_HeaderWhitespaceTolerated(t *testing.T) {
	t.Parallel()

	path := writeCSV(t, " School ,Team,Gender,Category,Player,DOB,Jersey,Grade,Cert,Waiver\nA,B,M,U12,P,,,,,")
	rows, err := ReadSource(path, testColumns())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if rows[0].School != "A" {
		t.Fatalf("got=%s", rows[0].School)
	}
}
