package filter

import (
	"context"

	"github.com/rushteam/triagekit/core"
)

// PassingFilter 过滤掉已通过的候选：只有 passes 字段存在且为 false 的记录
// 才需要进一步处理。
//
// 注意缺省语义的不对称：这里 passes 缺省视为已通过（直接排除），
// 而 core.BuildPassingSet 把缺省视为未通过（不进通过集）。两个默认值
// 服务于两个不同目的："通过状态未知的记录不需要再排期"和"通过状态
// 未知的依赖不算已完成"。属于既有行为，不要统一。
type PassingFilter struct{}

func (f *PassingFilter) Name() string {
	return "filter.passing"
}

func (f *PassingFilter) ShouldFilter(
	_ context.Context,
	_ *core.TriageContext,
	cand *core.Candidate,
) (bool, error) {
	if cand == nil {
		return true, nil
	}
	if cand.Passes == nil || *cand.Passes {
		return true, nil
	}
	return false, nil
}
