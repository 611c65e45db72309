package triagekit

import (
	"io"

	"github.com/rushteam/triagekit/filter"
	"github.com/rushteam/triagekit/pipeline"
	"github.com/rushteam/triagekit/rank"
	"github.com/rushteam/triagekit/report"
	"github.com/rushteam/triagekit/rerank"
	"github.com/rushteam/triagekit/source"
)

// Default 组装标准分诊链路：
//
//	source → filter（五个内置谓词）→ rank.complexity → rerank.topn → report.text
//
// topN <= 0 时使用 report.DefaultTopN。需要定制链路时直接组装 pipeline.Pipeline 即可。
func Default(src source.Source, w io.Writer, topN int) *pipeline.Pipeline {
	if topN <= 0 {
		topN = report.DefaultTopN
	}
	return &pipeline.Pipeline{
		Nodes: []pipeline.Node{
			&source.SourceNode{Source: src},
			filter.DefaultNode(),
			&rank.ComplexityNode{},
			&rerank.TopNNode{N: topN},
			&report.TextNode{W: w, TopN: topN},
		},
	}
}
