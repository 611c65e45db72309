package filter

import (
	"context"
	"strings"

	"github.com/rushteam/triagekit/core"
)

// DefaultFrontendKeywords 是默认的前端相关关键词集合。
var DefaultFrontendKeywords = []string{
	"ui", "page", "navigate", "button", "display", "viewer", "interface",
	"layout", "design", "responsive", "dark mode", "logout", "settings",
	"loading", "error", "form", "input", "modal", "dialog",
}

// KeywordFilter 是保留型过滤器：描述（小写化后）必须包含至少一个关键词，
// 否则移除。匹配是纯子串匹配、不感知词边界："container" 会因为包含
// "ui" 的情况之外的子串（如 "in" 系关键词）而意外命中，这是子串匹配的
// 固有属性，不是要修的 bug；升级成分词匹配会改变哪些候选入围。
type KeywordFilter struct {
	// Keywords 是关键词列表；为空时使用 DefaultFrontendKeywords
	Keywords []string
}

func (f *KeywordFilter) Name() string {
	return "filter.keyword"
}

func (f *KeywordFilter) ShouldFilter(
	_ context.Context,
	_ *core.TriageContext,
	cand *core.Candidate,
) (bool, error) {
	if cand == nil {
		return true, nil
	}

	keywords := f.Keywords
	if len(keywords) == 0 {
		keywords = DefaultFrontendKeywords
	}

	desc := strings.ToLower(cand.Description)
	for _, kw := range keywords {
		if strings.Contains(desc, kw) {
			return false, nil
		}
	}
	return true, nil
}
