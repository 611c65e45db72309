package pipeline

import (
	"context"

	"github.com/rushteam/triagekit/core"
)

// Kind 用于标记 Node 类型，方便观测/治理/编排（例如按阶段打点）。
type Kind string

const (
	KindSource Kind = "source" // 数据源阶段：读入记录并生成候选集
	KindFilter Kind = "filter" // 过滤阶段：剔除不符合资格谓词的候选
	KindRank   Kind = "rank"   // 排序阶段：按组合键对候选稳定排序
	KindReRank Kind = "rerank" // 重排阶段：在排序结果上做截断/多样性调整
	KindReport Kind = "report" // 报告阶段：渲染结果，候选原样透传
)

// Node 是 Pipeline 的最小可扩展单元。
// 统一采用"输入 candidates -> 输出 candidates"的形态，方便 Source 生成、
// Filter 截断、ReRank 重排、Report 透传等操作。
type Node interface {
	Name() string
	Kind() Kind

	Process(
		ctx context.Context,
		tctx *core.TriageContext,
		cands []*core.Candidate,
	) ([]*core.Candidate, error)
}
