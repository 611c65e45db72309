package core

import "github.com/rushteam/triagekit/pkg/utils"

// TriageContext 承载单次分诊运行的全局信息，贯穿整个 Pipeline 透传。
type TriageContext struct {
	// Scene 标记运行场景（例如 "backlog" / "regression"），用于观测与多场景配置
	Scene string

	// Passing 是本轮运行的通过集。通常由 SourceNode 在读入全部记录后、
	// 任何过滤开始之前构建；若调用方预先填好，SourceNode 不再覆盖。
	Passing PassingSet

	// Labels 是运行级标签，可驱动整个 Pipeline 行为
	Labels map[string]utils.Label

	// Params 请求级上下文参数（自定义关键词、阈值等）
	Params map[string]any
}

// PutLabel 写入运行级 Label。
func (tctx *TriageContext) PutLabel(key string, lbl utils.Label) {
	if tctx.Labels == nil {
		tctx.Labels = make(map[string]utils.Label)
	}
	if old, ok := tctx.Labels[key]; ok {
		tctx.Labels[key] = utils.MergeLabel(old, lbl)
		return
	}
	tctx.Labels[key] = lbl
}

// GetLabel 获取运行级 Label。
func (tctx *TriageContext) GetLabel(key string) (utils.Label, bool) {
	if tctx.Labels == nil {
		return utils.Label{}, false
	}
	lbl, ok := tctx.Labels[key]
	return lbl, ok
}
