package rerank

import (
	"context"

	"github.com/rushteam/triagekit/core"
	"github.com/rushteam/triagekit/pipeline"
)

// TopNNode 是一个 Top-N 截断节点，用于在排序后截取前 N 个候选。
// 通常在排序（Rank）节点之后使用，用于限制进入报告的候选数量。
//
// 示例：
//
//	pipeline := &pipeline.Pipeline{
//	    Nodes: []pipeline.Node{
//	        &rank.ComplexityNode{},    // 排序
//	        &rerank.TopNNode{N: 10},   // 截取 Top 10
//	        &report.TextNode{},        // 渲染报告
//	    },
//	}
type TopNNode struct {
	// N 要保留的候选数量（Top N）
	// 如果 N <= 0，则返回所有候选（不截断）
	// 如果 N > len(cands)，则返回所有候选（候选不足不是错误，结果只是更短）
	N int
}

func (n *TopNNode) Name() string {
	return "rerank.topn"
}

func (n *TopNNode) Kind() pipeline.Kind {
	return pipeline.KindReRank
}

func (n *TopNNode) Process(
	_ context.Context,
	_ *core.TriageContext,
	cands []*core.Candidate,
) ([]*core.Candidate, error) {
	if n.N <= 0 {
		return cands, nil
	}

	if len(cands) <= n.N {
		return cands, nil
	}

	return cands[:n.N], nil
}
