package source

import (
	"context"

	"github.com/rushteam/triagekit/core"
)

// Source 表示一个可复用的功能清单数据源（本地 JSON / Store / 多源 fan-out / ...）。
// Load 返回按存储顺序排列的原始记录；顺序即身份（test_num = 位置 + 1），
// 实现必须保持输入顺序，不得重排或去重。
//
// 清单不可读或不可解析属于致命错误：直接返回 error，调用方不产生任何部分输出。
type Source interface {
	Name() string
	Load(ctx context.Context, tctx *core.TriageContext) ([]*core.Feature, error)
}
