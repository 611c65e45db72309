package core

import "sort"

// PassingSet 是"本轮运行开始时已通过"的记录编号集合（1-based）。
// 它在任何过滤开始之前一次性构建，构建后只读，仅用于依赖满足性查询。
type PassingSet map[int]struct{}

// BuildPassingSet 从完整记录序列构建通过集：passes 字段存在且为 true 的记录
// 进入集合；字段缺省按未通过处理（与资格过滤的缺省解释相反，见 Feature.PassesOr）。
func BuildPassingSet(features []*Feature) PassingSet {
	set := make(PassingSet, len(features))
	for i, f := range features {
		if f.PassesOr(false) {
			set[i+1] = struct{}{}
		}
	}
	return set
}

// Contains 判断编号是否在通过集中。
func (s PassingSet) Contains(testNum int) bool {
	_, ok := s[testNum]
	return ok
}

// Sorted 返回升序编号列表，用于报告输出。
func (s PassingSet) Sorted() []int {
	out := make([]int, 0, len(s))
	for n := range s {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}
