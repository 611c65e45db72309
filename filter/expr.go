package filter

import (
	"context"

	"github.com/rushteam/triagekit/core"
	"github.com/rushteam/triagekit/pkg/dsl"
)

// ExprFilter 是表达式过滤器：CEL 表达式求值为 true 时过滤掉候选。
// 用于内置谓词之外的临时分诊规则，例如：
//
//	cand.category == "Deployment"            → 排除指定分类
//	size(cand.dependencies) > 2              → 排除依赖过多的候选
//	cand.description.contains("experiment")  → 排除实验性功能
type ExprFilter struct {
	Expr string

	prog *dsl.Program
}

// NewExprFilter 创建表达式过滤器，表达式在此时编译并缓存。
func NewExprFilter(expr string) (*ExprFilter, error) {
	prog, err := dsl.Compile(expr)
	if err != nil {
		return nil, err
	}
	return &ExprFilter{Expr: expr, prog: prog}, nil
}

func (f *ExprFilter) Name() string {
	return "filter.expr"
}

func (f *ExprFilter) ShouldFilter(
	_ context.Context,
	tctx *core.TriageContext,
	cand *core.Candidate,
) (bool, error) {
	if cand == nil {
		return true, nil
	}
	// 空表达式等价于无过滤
	if f.Expr == "" {
		return false, nil
	}
	if f.prog == nil {
		prog, err := dsl.Compile(f.Expr)
		if err != nil {
			return false, err
		}
		f.prog = prog
	}
	return f.prog.Evaluate(cand, tctx)
}
