package core

import "github.com/rushteam/triagekit/pkg/utils"

// Candidate 是分诊链路中的统一承载结构：一条功能记录在链路中的视图。
// TestNum 是对外的 1-based 编号（存储位置 + 1）；Labels 用于解释与策略驱动。
//
// Description / Complexity / Category 在构造时已按记录缺省规则解析为具体值；
// Passes 保留原始三态（nil = 输入缺省），因为通过性谓词对缺省有独立的解释。
type Candidate struct {
	TestNum      int
	Passes       *bool
	Description  string
	Complexity   string
	Dependencies []int
	Category     string
	Labels       map[string]utils.Label
}

// NewCandidate 从原始记录构造候选，按文档化的缺省规则解析各可选字段。
func NewCandidate(testNum int, f *Feature) *Candidate {
	c := &Candidate{
		TestNum:     testNum,
		Description: f.DescriptionOr(""),
		Complexity:  f.ComplexityOr(""),
		Category:    f.CategoryOr(""),
		Labels:      make(map[string]utils.Label),
	}
	if f != nil {
		c.Passes = f.Passes
		c.Dependencies = f.Dependencies
	}
	return c
}

// PutLabel 写入 Label；若已存在同名 key，则按默认 Merge 规则累积。
func (c *Candidate) PutLabel(key string, lbl utils.Label) {
	if c.Labels == nil {
		c.Labels = make(map[string]utils.Label)
	}
	if old, ok := c.Labels[key]; ok {
		c.Labels[key] = utils.MergeLabel(old, lbl)
		return
	}
	c.Labels[key] = lbl
}
