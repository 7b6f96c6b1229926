// 简历筛选命令行工具。
// 从需求单目录读取岗位要求和简历文本，执行去重、评分与两阶段排名，
// 输出JSON格式的筛选报告。
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/spf13/pflag"

	"resume-filter-go/internal/catalog"
	"resume-filter-go/internal/config"
	"resume-filter-go/internal/logger"
	"resume-filter-go/internal/processor"
	"resume-filter-go/internal/ticket"
	"resume-filter-go/internal/types"
)

// 需求单目录中岗位JSON的候选文件名，按优先级排列
var jobFileNames = []string{"job_details.json", "job-data.json", "job.json"}

// 岗位描述的补充文本文件
const jobDescriptionFile = "job-description.txt"

// Report 写入输出文件的完整筛选报告
type Report struct {
	RunID       string            `json:"run_id"`
	GeneratedAt time.Time         `json:"generated_at"`
	Ticket      string            `json:"ticket"`
	Result      *processor.Result `json:"result"`
}

func main() {
	var (
		ticketDir  string
		configPath string
		asOfFlag   string
		outPath    string
	)

	pflag.StringVar(&ticketDir, "ticket", "", "需求单目录，包含岗位JSON和简历文本文件")
	pflag.StringVar(&configPath, "config", "config.yaml", "配置文件路径")
	pflag.StringVar(&asOfFlag, "asof", "", "评分基准时间（RFC3339），默认当前时间")
	pflag.StringVar(&outPath, "out", "", "报告输出路径，默认写到标准输出")
	pflag.Parse()

	if ticketDir == "" {
		fmt.Fprintln(os.Stderr, "用法: resumefilter --ticket <目录> [--config <文件>] [--asof <时间>] [--out <文件>]")
		os.Exit(2)
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}
	logger.Init(cfg.Logger)

	asOf := time.Now()
	if asOfFlag != "" {
		asOf, err = time.Parse(time.RFC3339, asOfFlag)
		if err != nil {
			logger.Fatal().Err(err).Str("asof", asOfFlag).Msg("解析基准时间失败")
		}
	}

	cat, err := catalog.LoadDir(cfg.Catalog.OverrideDir)
	if err != nil {
		logger.Fatal().Err(err).Msg("加载规则表失败")
	}

	req, err := loadRequirements(ticketDir)
	if err != nil {
		logger.Fatal().Err(err).Str("ticket", ticketDir).Msg("解析岗位要求失败")
	}

	submissions, err := loadSubmissions(ticketDir)
	if err != nil {
		logger.Fatal().Err(err).Str("ticket", ticketDir).Msg("读取简历失败")
	}
	if len(submissions) == 0 {
		logger.Fatal().Str("ticket", ticketDir).Msg("需求单目录中没有可用的简历文本")
	}

	proc, err := processor.New(cat,
		processor.WithShortlistSize(cfg.Ranking.ShortlistSize),
		processor.WithFinalSize(cfg.Ranking.FinalSize),
	)
	if err != nil {
		logger.Fatal().Err(err).Msg("创建处理器失败")
	}

	result, err := proc.Run(context.Background(), submissions, req, asOf)
	if err != nil {
		logger.Fatal().Err(err).Msg("筛选流程失败")
	}

	runID, err := uuid.NewV4()
	if err != nil {
		logger.Fatal().Err(err).Msg("生成运行ID失败")
	}

	report := Report{
		RunID:       runID.String(),
		GeneratedAt: asOf,
		Ticket:      filepath.Base(ticketDir),
		Result:      result,
	}

	if err := writeReport(report, outPath); err != nil {
		logger.Fatal().Err(err).Str("out", outPath).Msg("写入报告失败")
	}

	logger.Info().
		Str("run_id", report.RunID).
		Str("position", req.Position).
		Int("finalists", len(result.Finalists)).
		Msg("筛选报告生成完成")
}

// loadRequirements 按优先级查找岗位JSON并解析岗位要求，
// 存在补充描述文件时将其内容并入岗位描述。
func loadRequirements(dir string) (types.JobRequirements, error) {
	var req types.JobRequirements
	found := false

	for _, name := range jobFileNames {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return req, fmt.Errorf("读取岗位文件 %s 失败: %w", name, err)
		}

		req, err = ticket.Resolve(data)
		if err != nil {
			return req, err
		}
		found = true
		logger.Info().Str("file", name).Str("position", req.Position).Msg("岗位要求解析完成")
		break
	}

	if !found {
		return req, fmt.Errorf("目录 %s 中未找到岗位JSON（%s）", dir, strings.Join(jobFileNames, "、"))
	}

	if data, err := os.ReadFile(filepath.Join(dir, jobDescriptionFile)); err == nil {
		text := strings.TrimSpace(string(data))
		if text != "" {
			if req.Description != "" {
				req.Description += "\n\n"
			}
			req.Description += text
		}
	}

	return req, nil
}

// loadSubmissions 读取目录下全部简历文本文件（.txt，排除岗位描述文件）。
// 按文件名排序保证注册顺序稳定，空文件跳过并告警。
func loadSubmissions(dir string) ([]processor.Submission, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("读取需求单目录失败: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".txt") || name == jobDescriptionFile {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	var submissions []processor.Submission
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("读取简历 %s 失败: %w", name, err)
		}
		text := strings.TrimSpace(string(data))
		if text == "" {
			logger.Warn().Str("filename", name).Msg("简历内容为空，跳过")
			continue
		}
		submissions = append(submissions, processor.Submission{Filename: name, Text: text})
	}

	return submissions, nil
}

// writeReport 输出JSON报告，未指定输出路径时写到标准输出
func writeReport(report Report, outPath string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("序列化报告失败: %w", err)
	}

	if outPath == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("写入 %s 失败: %w", outPath, err)
	}
	return nil
}
