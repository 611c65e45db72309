package filter

import (
	"context"

	"github.com/rushteam/triagekit/core"
)

// Filter 是资格谓词的抽象接口，用于判断一个候选是否应该被过滤掉。
// 返回 true 表示应该过滤（移除），false 表示保留。
//
// 各内置谓词互相独立，逐个检查、任一命中即移除（逻辑 AND 的否定形式），
// 因此 FilterNode 可以安全地短路。
type Filter interface {
	// Name 返回过滤器名称
	Name() string

	// ShouldFilter 判断候选是否应该被过滤
	ShouldFilter(ctx context.Context, tctx *core.TriageContext, cand *core.Candidate) (bool, error)
}
