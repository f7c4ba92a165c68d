package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"courtside/internal/config"
	"courtside/internal/model"
)

// columnIndex 表头列名到列下标的解析结果
type columnIndex struct {
	school      int
	team        int
	gender      int
	category    int
	player      int
	dateOfBirth int
	jersey      int
	grade       int
	certificate int
	waiver      int
}

// ReadSource 读取输入表并映射为 SourceRow 序列
// 支持 .xlsx（取第一个工作表）与 .csv；文件缺失或必需列缺失直接报错
func ReadSource(path string, cols config.ColumnsConfig) ([]model.SourceRow, error) {
	rows, err := loadTable(path)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errors.New("input file has no header row")
	}

	idx, err := mapColumns(rows[0], cols)
	if err != nil {
		return nil, err
	}

	out := make([]model.SourceRow, 0, len(rows)-1)
	for i, row := range rows[1:] {
		out = append(out, model.SourceRow{
			RowNo:       i + 2,
			School:      getCell(row, idx.school),
			Team:        getCell(row, idx.team),
			Gender:      getCell(row, idx.gender),
			Category:    getCell(row, idx.category),
			PlayerName:  getCell(row, idx.player),
			DateOfBirth: getCell(row, idx.dateOfBirth),
			Jersey:      getCell(row, idx.jersey),
			Grade:       getCell(row, idx.grade),
			CertHTML:    rawCell(row, idx.certificate),
			WaiverHTML:  rawCell(row, idx.waiver),
		})
	}

	return out, nil
}

// loadTable 按扩展名选择读取方式，统一返回字符串矩阵
func loadTable(path string) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return loadWorkbook(path)
	default:
		return loadCSV(path)
	}
}

func loadWorkbook(path string) ([][]string, error) {
	wb, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel %s: %w", path, err)
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}

	rows, err := wb.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	return rows, nil
}

func loadCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	// 富文本单元格内可能带逗号和换行，按引号规则读取即可；列数不做强校验
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv %s: %w", path, err)
	}
	return rows, nil
}

// mapColumns 解析表头；任一必需列缺失即报错并点名
func mapColumns(header []string, cols config.ColumnsConfig) (columnIndex, error) {
	find := func(name string) int {
		for i, h := range header {
			if strings.TrimSpace(h) == name {
				return i
			}
		}
		return -1
	}

	idx := columnIndex{
		school:      find(cols.School),
		team:        find(cols.Team),
		gender:      find(cols.Gender),
		category:    find(cols.Category),
		player:      find(cols.Player),
		dateOfBirth: find(cols.DateOfBirth),
		jersey:      find(cols.Jersey),
		grade:       find(cols.Grade),
		certificate: find(cols.Certificate),
		waiver:      find(cols.Waiver),
	}

	missing := make([]string, 0)
	for _, c := range []struct {
		name string
		idx  int
	}{
		{cols.School, idx.school},
		{cols.Team, idx.team},
		{cols.Gender, idx.gender},
		{cols.Category, idx.category},
		{cols.Player, idx.player},
		{cols.DateOfBirth, idx.dateOfBirth},
		{cols.Jersey, idx.jersey},
		{cols.Grade, idx.grade},
		{cols.Certificate, idx.certificate},
		{cols.Waiver, idx.waiver},
	} {
		if c.idx < 0 {
			missing = append(missing, c.name)
		}
	}
	if len(missing) > 0 {
		return idx, fmt.Errorf("required columns missing: %s", strings.Join(missing, ", "))
	}

	return idx, nil
}

func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// rawCell 富文本单元格保留原始内容，链接提取自己处理空白
func rawCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
