package builders

import (
	"fmt"
	"time"

	"github.com/rushteam/triagekit/config"
	"github.com/rushteam/triagekit/filter"
	"github.com/rushteam/triagekit/pipeline"
	"github.com/rushteam/triagekit/pkg/conv"
	"github.com/rushteam/triagekit/rank"
	"github.com/rushteam/triagekit/report"
	"github.com/rushteam/triagekit/rerank"
	"github.com/rushteam/triagekit/source"
)

func init() {
	config.Register("source.json", BuildJSONSourceNode)
	config.Register("source.fanout", BuildFanoutSourceNode)
	config.Register("filter", BuildFilterNode)
	config.Register("rank.complexity", BuildComplexityNode)
	config.Register("rerank.topn", BuildTopNNode)
	config.Register("rerank.diversity", BuildDiversityNode)
	config.Register("report.text", BuildTextReportNode)
}

func BuildJSONSourceNode(cfg map[string]any) (pipeline.Node, error) {
	path := conv.ConfigGet(cfg, "path", "")
	if path == "" {
		return nil, fmt.Errorf("path not found")
	}
	return &source.SourceNode{Source: &source.JSONFileSource{Path: path}}, nil
}

func BuildFanoutSourceNode(cfg map[string]any) (pipeline.Node, error) {
	sourcesConfig, ok := cfg["sources"].([]any)
	if !ok {
		return nil, fmt.Errorf("sources not found or invalid")
	}
	sources := make([]source.Source, 0, len(sourcesConfig))
	for _, sc := range sourcesConfig {
		sourceMap, ok := sc.(map[string]any)
		if !ok {
			continue
		}
		sourceType := conv.ConfigGet(sourceMap, "type", "")
		switch sourceType {
		case "json":
			path := conv.ConfigGet(sourceMap, "path", "")
			if path == "" {
				return nil, fmt.Errorf("fanout json source: path not found")
			}
			sources = append(sources, &source.JSONFileSource{Path: path})
		case "store":
			// store 源需要注入 core.Store 实例，暂未从配置构建
			return nil, fmt.Errorf("store source requires an injected core.Store, assemble it in code")
		default:
			return nil, fmt.Errorf("unknown source type: %s", sourceType)
		}
	}
	fanout := &source.Fanout{Sources: sources}
	if sec := conv.ConfigGetInt(cfg, "timeout", 0); sec > 0 {
		fanout.Timeout = time.Duration(sec) * time.Second
	}
	if n := conv.ConfigGetInt(cfg, "max_concurrent", 0); n > 0 {
		fanout.MaxConcurrent = n
	}
	return &source.SourceNode{Source: fanout}, nil
}

// BuildFilterNode 组装过滤节点。默认启用全部五个内置谓词，可按 key 关闭
// 或覆盖词表；expr 追加一个 CEL 表达式过滤器。
//
//	filter:
//	  passing: true
//	  database_terms: [database, postgresql]
//	  complexity_allowed: [simple, medium]
//	  dependencies: true
//	  keywords: [ui, button, ...]
//	  expr: 'cand.category != "Deployment"'
func BuildFilterNode(cfg map[string]any) (pipeline.Node, error) {
	filters := make([]filter.Filter, 0, 6)

	if conv.ConfigGet(cfg, "passing", true) {
		filters = append(filters, &filter.PassingFilter{})
	}
	if conv.ConfigGet(cfg, "database", true) {
		filters = append(filters, &filter.DatabaseFilter{
			Terms: conv.SliceAnyToString(cfg["database_terms"]),
		})
	}
	if conv.ConfigGet(cfg, "complexity", true) {
		filters = append(filters, &filter.ComplexityFilter{
			Allowed: conv.SliceAnyToString(cfg["complexity_allowed"]),
		})
	}
	if conv.ConfigGet(cfg, "dependencies", true) {
		filters = append(filters, &filter.DependencyFilter{})
	}
	if conv.ConfigGet(cfg, "keyword", true) {
		filters = append(filters, &filter.KeywordFilter{
			Keywords: conv.SliceAnyToString(cfg["keywords"]),
		})
	}
	if expr := conv.ConfigGet(cfg, "expr", ""); expr != "" {
		ef, err := filter.NewExprFilter(expr)
		if err != nil {
			return nil, fmt.Errorf("filter expr: %w", err)
		}
		filters = append(filters, ef)
	}

	return &filter.FilterNode{Filters: filters}, nil
}

func BuildComplexityNode(cfg map[string]any) (pipeline.Node, error) {
	return &rank.ComplexityNode{
		Heavy: conv.ConfigGet(cfg, "heavy", ""),
	}, nil
}

func BuildTopNNode(cfg map[string]any) (pipeline.Node, error) {
	return &rerank.TopNNode{
		N: conv.ConfigGetInt(cfg, "n", 0),
	}, nil
}

func BuildDiversityNode(cfg map[string]any) (pipeline.Node, error) {
	return &rerank.Diversity{}, nil
}

func BuildTextReportNode(cfg map[string]any) (pipeline.Node, error) {
	// 输出流不从配置构建，默认标准输出；需要定制时在代码里组装 report.TextNode
	return &report.TextNode{
		TopN: conv.ConfigGetInt(cfg, "top_n", 0),
	}, nil
}
