// Package report 负责分诊结果的人类可读渲染：通过集清单 + Top-N 候选报告。
// 纯展示层，不修改任何候选状态。
package report

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rushteam/triagekit/core"
	"github.com/rushteam/triagekit/pipeline"
)

// DefaultTopN 是报告默认展示的候选块数量上限。
const DefaultTopN = 10

// TextNode 把通过集与排序后的候选渲染为文本并写入 W，候选原样透传给下游。
// 输出分两段：已通过编号的升序清单；最多 TopN 个候选块（排名、编号、描述、
// 复杂度、分类、依赖）。候选不足 TopN 不是错误，输出只是更短。
type TextNode struct {
	// W 是输出流；为 nil 时写到标准输出
	W io.Writer

	// TopN 是候选块数量上限；<= 0 时使用 DefaultTopN
	TopN int
}

func (n *TextNode) Name() string        { return "report.text" }
func (n *TextNode) Kind() pipeline.Kind { return pipeline.KindReport }

func (n *TextNode) Process(
	_ context.Context,
	tctx *core.TriageContext,
	cands []*core.Candidate,
) ([]*core.Candidate, error) {
	w := n.W
	if w == nil {
		w = os.Stdout
	}
	topN := n.TopN
	if topN <= 0 {
		topN = DefaultTopN
	}

	if _, err := io.WriteString(w, Render(tctx, cands, topN)); err != nil {
		return nil, fmt.Errorf("write report: %w", err)
	}
	return cands, nil
}

// Render 渲染完整报告文本。纯函数，便于单测与二次加工。
func Render(tctx *core.TriageContext, cands []*core.Candidate, topN int) string {
	var b strings.Builder

	b.WriteString("=== PASSING TESTS ===\n")
	var passing []int
	if tctx != nil {
		passing = tctx.Passing.Sorted()
	}
	b.WriteString(formatInts(passing))
	b.WriteString("\n\n")

	b.WriteString("=== ELIGIBLE FEATURES (passes=false, simple/medium, no DB, dependencies met) ===\n\n")

	if topN > 0 && len(cands) > topN {
		cands = cands[:topN]
	}
	rank := 0
	for _, c := range cands {
		if c == nil {
			continue
		}
		rank++
		fmt.Fprintf(&b, "%d. TEST %d: %s\n", rank, c.TestNum, c.Description)
		fmt.Fprintf(&b, "   Complexity: %s\n", c.Complexity)
		fmt.Fprintf(&b, "   Category: %s\n", c.Category)
		fmt.Fprintf(&b, "   Dependencies: %s\n", formatDeps(c.Dependencies))
		b.WriteString("\n")
	}

	return b.String()
}

// formatInts 渲染整数列表，形如 [1, 2, 3]；空列表渲染为 []。
func formatInts(nums []int) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, n := range nums {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(n))
	}
	b.WriteByte(']')
	return b.String()
}

// formatDeps 渲染依赖列表；空列表渲染为字面量 None。
func formatDeps(deps []int) string {
	if len(deps) == 0 {
		return "None"
	}
	return formatInts(deps)
}
