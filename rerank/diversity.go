package rerank

import (
	"context"

	"github.com/rushteam/triagekit/core"
	"github.com/rushteam/triagekit/pipeline"
)

// Diversity 是一个简单的多样性 ReRank：按 category 去重，保留每个分类
// 首个出现的候选。不在默认链路上：标准报告要求完整的排序结果，此节点
// 用于"每个领域先挑一件事做"的分诊模式。
// 分类为空的候选不参与去重，原样保留。
type Diversity struct{}

func (n *Diversity) Name() string {
	return "rerank.diversity"
}

func (n *Diversity) Kind() pipeline.Kind {
	return pipeline.KindReRank
}

func (n *Diversity) Process(
	_ context.Context,
	_ *core.TriageContext,
	cands []*core.Candidate,
) ([]*core.Candidate, error) {
	if len(cands) == 0 {
		return cands, nil
	}

	seen := make(map[string]bool, 32)
	out := make([]*core.Candidate, 0, len(cands))

	for _, c := range cands {
		if c == nil {
			continue
		}

		if c.Category == "" {
			out = append(out, c)
			continue
		}
		if seen[c.Category] {
			continue
		}
		seen[c.Category] = true
		out = append(out, c)
	}

	return out, nil
}
