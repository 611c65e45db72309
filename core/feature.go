package core

// Feature 是一条原始的功能记录（由外部数据源提供，本系统只读）。
// 可选字段用指针建模：nil 表示输入中缺省。解析阶段不做任何隐式填充，
// 缺省值统一由各 Or 访问器在使用点显式解析，不同环节对缺省的解释并不相同。
type Feature struct {
	Passes       *bool   `json:"passes,omitempty" yaml:"passes,omitempty"`
	Description  *string `json:"description,omitempty" yaml:"description,omitempty"`
	Complexity   *string `json:"complexity,omitempty" yaml:"complexity,omitempty"`
	Dependencies []int   `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
	Category     *string `json:"category,omitempty" yaml:"category,omitempty"`
}

// PassesOr 返回 passes 字段，缺省时返回 def。
//
// 注意缺省语义的不对称：构建 PassingSet 时 def 取 false（缺省视为未通过），
// 资格过滤时 def 取 true（缺省视为已通过、被排除）。两处默认值服务于两个
// 不同目的，属于既有行为，不要"修正"成统一默认。
func (f *Feature) PassesOr(def bool) bool {
	if f == nil || f.Passes == nil {
		return def
	}
	return *f.Passes
}

// DescriptionOr 返回 description 字段，缺省时返回 def。
func (f *Feature) DescriptionOr(def string) string {
	if f == nil || f.Description == nil {
		return def
	}
	return *f.Description
}

// ComplexityOr 返回 complexity 字段，缺省时返回 def。
func (f *Feature) ComplexityOr(def string) string {
	if f == nil || f.Complexity == nil {
		return def
	}
	return *f.Complexity
}

// CategoryOr 返回 category 字段，缺省时返回 def。
func (f *Feature) CategoryOr(def string) string {
	if f == nil || f.Category == nil {
		return def
	}
	return *f.Category
}
