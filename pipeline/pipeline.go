package pipeline

import (
	"context"

	"github.com/rushteam/triagekit/core"
)

// Pipeline 是 triagekit 的核心抽象：把分诊逻辑拆成可组合的 Node 链。
type Pipeline struct {
	Nodes []Node
}

func (p *Pipeline) Run(
	ctx context.Context,
	tctx *core.TriageContext,
	cands []*core.Candidate,
) ([]*core.Candidate, error) {
	cur := cands
	for _, node := range p.Nodes {
		next, err := node.Process(ctx, tctx, cur)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}
