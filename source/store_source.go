package source

import (
	"context"
	"fmt"

	"github.com/rushteam/triagekit/core"
)

// StoreSource 从 core.Store 读取功能清单快照（value 为 JSON 记录数组）。
// 通常由离线任务定期写入快照，分诊运行时读取；生产环境配合 store.RedisStore
// 在多个运行方之间共享同一份 backlog。
type StoreSource struct {
	Store core.Store
	Key   string // 例如 "triage:feature_list"
}

func (s *StoreSource) Name() string { return "source.store" }

func (s *StoreSource) Load(
	ctx context.Context,
	_ *core.TriageContext,
) ([]*core.Feature, error) {
	if s.Store == nil || s.Key == "" {
		return nil, core.NewDomainError(core.ModuleSource, core.ErrorCodeInvalidInput,
			"source: store or key not configured")
	}

	data, err := s.Store.Get(ctx, s.Key)
	if err != nil {
		return nil, fmt.Errorf("load feature list from %s key %s: %w", s.Store.Name(), s.Key, err)
	}
	return decodeFeatureList(data, s.Key)
}
