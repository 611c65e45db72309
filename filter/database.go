package filter

import (
	"context"
	"strings"

	"github.com/rushteam/triagekit/core"
)

// DefaultDatabaseTerms 是默认的数据库相关排除词。
var DefaultDatabaseTerms = []string{"database", "postgresql"}

// DatabaseFilter 过滤掉数据库相关的候选：描述（小写化后）包含任一排除词
// 即移除。匹配是纯子串匹配，即使描述同时包含前端关键词也照样排除。
type DatabaseFilter struct {
	// Terms 是排除词列表；为空时使用 DefaultDatabaseTerms
	Terms []string
}

func (f *DatabaseFilter) Name() string {
	return "filter.database"
}

func (f *DatabaseFilter) ShouldFilter(
	_ context.Context,
	_ *core.TriageContext,
	cand *core.Candidate,
) (bool, error) {
	if cand == nil {
		return true, nil
	}

	terms := f.Terms
	if len(terms) == 0 {
		terms = DefaultDatabaseTerms
	}

	desc := strings.ToLower(cand.Description)
	for _, term := range terms {
		if strings.Contains(desc, term) {
			return true, nil
		}
	}
	return false, nil
}
