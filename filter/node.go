package filter

import (
	"context"

	"github.com/rushteam/triagekit/core"
	"github.com/rushteam/triagekit/pipeline"
	"github.com/rushteam/triagekit/pkg/utils"
)

// FilterNode 是过滤 Node，可以组合多个过滤器进行过滤。
// 如果任何一个过滤器返回 true，该候选就会被过滤掉；存活候选保持输入顺序。
type FilterNode struct {
	Filters []Filter
}

// DefaultNode 返回标准资格过滤节点：五个内置谓词按固定顺序组合
// （未通过 → 非数据库 → 复杂度受限 → 依赖已满足 → 前端相关）。
func DefaultNode() *FilterNode {
	return &FilterNode{
		Filters: []Filter{
			&PassingFilter{},
			&DatabaseFilter{},
			&ComplexityFilter{},
			&DependencyFilter{},
			&KeywordFilter{},
		},
	}
}

func (n *FilterNode) Name() string {
	return "filter.node"
}

func (n *FilterNode) Kind() pipeline.Kind {
	return pipeline.KindFilter
}

func (n *FilterNode) Process(
	ctx context.Context,
	tctx *core.TriageContext,
	cands []*core.Candidate,
) ([]*core.Candidate, error) {
	if len(n.Filters) == 0 || len(cands) == 0 {
		return cands, nil
	}

	out := make([]*core.Candidate, 0, len(cands))

	for _, cand := range cands {
		if cand == nil {
			continue
		}

		shouldFilter := false
		filterReason := ""

		// 依次检查每个过滤器
		for _, f := range n.Filters {
			ok, err := f.ShouldFilter(ctx, tctx, cand)
			if err != nil {
				// 过滤器错误时记录但不中断流程
				continue
			}
			if ok {
				shouldFilter = true
				filterReason = f.Name()
				break
			}
		}

		if shouldFilter {
			// 记录过滤原因（可选，用于调试/观测）
			cand.PutLabel("filtered", utils.Label{
				Value:  "true",
				Source: filterReason,
			})
			continue
		}

		out = append(out, cand)
	}

	return out, nil
}
