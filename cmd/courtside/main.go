package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"courtside/internal/config"
	"courtside/internal/model"
	"courtside/internal/parser"
	"courtside/internal/report"
	"courtside/internal/review"
	"courtside/internal/tui"
)

var (
	configPath string
	inputPath  string
	outputPath string
)

func main() {
	root := &cobra.Command{
		Use:   "courtside",
		Short: "赛事报名数据仪表盘生成器",
		Long:  "读取报名系统导出的表格，生成自包含的交互式球队仪表盘",
		// 不带子命令时默认执行生成
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate()
		},
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "配置文件路径 (默认为可执行文件同目录下的 courtside.toml)")
	root.PersistentFlags().StringVarP(&inputPath, "input", "i", "", "报名数据文件 (.csv / .xlsx，覆盖配置)")

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "生成仪表盘 HTML 文档",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate()
		},
	}
	generateCmd.Flags().StringVarP(&outputPath, "output", "o", "", "输出 HTML 路径 (覆盖配置)")

	reviewCmd := &cobra.Command{
		Use:   "review",
		Short: "在终端里评审球员记录",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReview()
		},
	}

	root.AddCommand(generateCmd, reviewCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadTeams 生成与评审共用的装载链：读取 -> 归一化 -> 建组
func loadTeams(cfg *config.AppConfig) ([]*model.Team, error) {
	input := cfg.Data.Input
	if inputPath != "" {
		input = inputPath
	}

	rows, err := parser.ReadSource(input, cfg.Columns)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", input, err)
	}

	rows, err = parser.Normalize(rows)
	if err != nil {
		return nil, err
	}

	return report.BuildTeams(rows), nil
}

func runGenerate() error {
	fmt.Println("==========================================")
	fmt.Println("  Courtside - Tournament Dashboard")
	fmt.Println("==========================================")

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	teams, err := loadTeams(cfg)
	if err != nil {
		return err
	}

	output := cfg.Data.Output
	if outputPath != "" {
		output = outputPath
	}

	if err := report.WriteDocument(output, cfg.Report.Title, cfg.Report.StorageKey, teams); err != nil {
		return err
	}

	stats := report.CountStats(teams)
	fmt.Println("Dashboard generated.")
	fmt.Printf("  Output:             %s\n", output)
	fmt.Printf("  Teams:              %d\n", stats.Teams)
	fmt.Printf("  Players:            %d\n", stats.Players)
	fmt.Printf("  Schools:            %d\n", stats.Schools)
	fmt.Printf("  Players with photo: %d\n", stats.WithPhoto)
	fmt.Printf("  Players with cert:  %d\n", stats.WithCert)
	return nil
}

func runReview() error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	teams, err := loadTeams(cfg)
	if err != nil {
		return err
	}

	dataDir, err := config.EnsureDataDir(cfg)
	if err != nil {
		return fmt.Errorf("failed to create data dir: %w", err)
	}

	// 终端评审的标注与浏览器端各自独立，但共用同一个存储键
	store := review.NewFileStore(filepath.Join(dataDir, "review_state.json"))
	manager := review.NewManager(store, cfg.Report.StorageKey)

	program := tea.NewProgram(tui.New(teams, manager), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.Printf("terminal review exited with error: %v", err)
		return err
	}

	counts := manager.Counts()
	fmt.Printf("Review session saved: %d tagged (%d review, %d correct)\n",
		counts.Tagged, counts.Review, counts.Correct)
	return nil
}
