package source

import (
	"context"

	"github.com/rushteam/triagekit/core"
	"github.com/rushteam/triagekit/pipeline"
	"github.com/rushteam/triagekit/pkg/utils"
)

// SourceNode 把 Source 包装为 Pipeline 节点：读入全部记录，先构建通过集，
// 再按输入顺序逐条生成候选（编号 = 位置 + 1）。
//
// 通过集必须在任何过滤开始之前建好：后续的依赖满足性谓词查询的是
// "这条功能是否已经完成"，与当前过滤轮次中正在评估哪条记录无关。
type SourceNode struct {
	Source Source
}

func (n *SourceNode) Name() string        { return "source.node" }
func (n *SourceNode) Kind() pipeline.Kind { return pipeline.KindSource }

func (n *SourceNode) Process(
	ctx context.Context,
	tctx *core.TriageContext,
	_ []*core.Candidate,
) ([]*core.Candidate, error) {
	if n.Source == nil {
		return nil, core.NewDomainError(core.ModuleSource, core.ErrorCodeInvalidInput,
			"source: no source configured")
	}

	feats, err := n.Source.Load(ctx, tctx)
	if err != nil {
		return nil, err
	}

	// 调用方预先填好的通过集优先（例如测试或多阶段运行）
	if tctx != nil && tctx.Passing == nil {
		tctx.Passing = core.BuildPassingSet(feats)
	}

	out := make([]*core.Candidate, 0, len(feats))
	for i, f := range feats {
		c := core.NewCandidate(i+1, f)
		c.PutLabel("source", utils.Label{Value: n.Source.Name(), Source: "source"})
		out = append(out, c)
	}
	return out, nil
}
