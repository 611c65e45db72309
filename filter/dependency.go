package filter

import (
	"context"

	"github.com/rushteam/triagekit/core"
)

// DependencyFilter 过滤掉依赖未满足的候选：dependencies 非空时，每一个
// 依赖编号都必须在运行开始时构建的通过集中；空/缺省的依赖列表视为满足。
//
// 查询的是 tctx.Passing，即"这条功能是否在本轮运行开始时已完成"，
// 与过滤过程中谁被保留、谁被移除无关。
type DependencyFilter struct{}

func (f *DependencyFilter) Name() string {
	return "filter.dependency"
}

func (f *DependencyFilter) ShouldFilter(
	_ context.Context,
	tctx *core.TriageContext,
	cand *core.Candidate,
) (bool, error) {
	if cand == nil {
		return true, nil
	}
	if len(cand.Dependencies) == 0 {
		return false, nil
	}
	if tctx == nil || tctx.Passing == nil {
		// 没有通过集时无法证明依赖已完成，按未满足处理
		return true, nil
	}

	for _, dep := range cand.Dependencies {
		if !tctx.Passing.Contains(dep) {
			return true, nil
		}
	}
	return false, nil
}
