package dsl

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/rushteam/triagekit/core"
)

var (
	// celEnv 是全局的 CEL 环境，线程安全，可复用
	celEnv     *cel.Env
	celEnvErr  error
	celEnvOnce sync.Once
)

// getCELEnv 获取或创建 CEL 环境，定义变量
func getCELEnv() (*cel.Env, error) {
	celEnvOnce.Do(func() {
		celEnv, celEnvErr = cel.NewEnv(
			cel.Variable("cand", cel.DynType),
			cel.Variable("label", cel.DynType),
			cel.Variable("tctx", cel.DynType),
		)
	})
	return celEnv, celEnvErr
}

// Program 是编译后的谓词表达式，使用 CEL (Common Expression Language) 实现。
// CEL 是 Google 开发的表达式语言，具有类型安全、高性能、线程安全等特性。
// 编译一次后可对任意多个候选重复求值。
//
// 表达式语法（CEL 标准语法）：
//   - 基础：cand.complexity == "simple" / cand.category != "UI"
//   - 数值：cand.test_num > 10 / size(cand.dependencies) == 0
//   - 逻辑：cand.complexity == "medium" && cand.test_num < 50
//   - 包含：cand.description.contains("modal")
//   - 标签：label.source == "source.json"
//
// 注意：has(label.key) 可以用 label.key != null 替代。
type Program struct {
	expr string
	prg  cel.Program
}

// Compile 编译 DSL 表达式。空表达式返回恒真的 Program。
func Compile(expr string) (*Program, error) {
	if expr == "" {
		return &Program{}, nil
	}

	env, err := getCELEnv()
	if err != nil {
		return nil, fmt.Errorf("cel env: %w", err)
	}

	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compile error: %v", issues.Err())
	}

	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("program error: %v", err)
	}

	return &Program{expr: expr, prg: prg}, nil
}

// Expr 返回原始表达式文本。
func (p *Program) Expr() string { return p.expr }

// Evaluate 对单个候选执行表达式，返回布尔结果。
func (p *Program) Evaluate(cand *core.Candidate, tctx *core.TriageContext) (bool, error) {
	if p == nil || p.prg == nil {
		return true, nil
	}

	out, _, err := p.prg.Eval(buildInput(cand, tctx))
	if err != nil {
		// 对于不存在的 key，CEL 会返回错误
		// 应该使用 label.key != null 来检查存在性，而不是直接访问
		return false, fmt.Errorf("eval error: %v", err)
	}

	result, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("expression must return boolean, got %T", out.Value())
	}

	return result, nil
}

// buildInput 构建 CEL 表达式的输入数据
func buildInput(cand *core.Candidate, tctx *core.TriageContext) map[string]any {
	// 构建 label map
	labels := make(map[string]any)
	labelAccessor := make(map[string]any)
	if cand != nil {
		for k, v := range cand.Labels {
			labels[k] = map[string]any{
				"value":  v.Value,
				"source": v.Source,
			}
			// label.filtered 直接返回 value，兼容简写
			labelAccessor[k] = v.Value
		}
	}

	// 构建 cand map
	candMap := map[string]any{}
	if cand != nil {
		deps := make([]any, 0, len(cand.Dependencies))
		for _, d := range cand.Dependencies {
			deps = append(deps, int64(d))
		}

		var passes any
		if cand.Passes != nil {
			passes = *cand.Passes
		}

		candMap = map[string]any{
			"test_num":     int64(cand.TestNum),
			"passes":       passes,
			"description":  cand.Description,
			"complexity":   cand.Complexity,
			"dependencies": deps,
			"category":     cand.Category,
			"labels":       labels,
		}
	}

	// 构建 tctx map
	tctxMap := map[string]any{}
	if tctx != nil {
		passing := make([]any, 0, len(tctx.Passing))
		for _, n := range tctx.Passing.Sorted() {
			passing = append(passing, int64(n))
		}
		tctxMap = map[string]any{
			"scene":   tctx.Scene,
			"passing": passing,
			"params":  tctx.Params,
		}
	}

	return map[string]any{
		"cand":  candMap,
		"label": labelAccessor,
		"tctx":  tctxMap,
	}
}
