package filter

import (
	"context"

	"github.com/rushteam/triagekit/core"
)

// DefaultAllowedComplexities 是默认允许的复杂度档位。
var DefaultAllowedComplexities = []string{"simple", "medium"}

// ComplexityFilter 过滤掉复杂度超限的候选：complexity 必须精确等于允许档位
// 之一；其他值（包括缺省解析出的空串、"complex" 等）一律移除。
// 非预期的档位值不是错误，只是正常的过滤排除。
type ComplexityFilter struct {
	// Allowed 是允许的档位列表；为空时使用 DefaultAllowedComplexities
	Allowed []string
}

func (f *ComplexityFilter) Name() string {
	return "filter.complexity"
}

func (f *ComplexityFilter) ShouldFilter(
	_ context.Context,
	_ *core.TriageContext,
	cand *core.Candidate,
) (bool, error) {
	if cand == nil {
		return true, nil
	}

	allowed := f.Allowed
	if len(allowed) == 0 {
		allowed = DefaultAllowedComplexities
	}

	for _, a := range allowed {
		if cand.Complexity == a {
			return false, nil
		}
	}
	return true, nil
}
