package source

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rushteam/triagekit/core"
)

// JSONFileSource 从本地 JSON 文件读取功能清单（顶层为记录数组）。
// 单条记录的可选字段缺省不是错误（由 core.Feature 的 Or 访问器解析）；
// 文件不存在或整体不可解析则直接失败。
type JSONFileSource struct {
	Path string
}

func (s *JSONFileSource) Name() string { return "source.json" }

func (s *JSONFileSource) Load(
	_ context.Context,
	_ *core.TriageContext,
) ([]*core.Feature, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read feature list %s: %w", s.Path, err)
	}
	return decodeFeatureList(data, s.Path)
}

// decodeFeatureList 解析顶层 JSON 数组。数组中的 null 元素按空记录处理，
// 以保持位置编号不漂移。
func decodeFeatureList(data []byte, name string) ([]*core.Feature, error) {
	var feats []*core.Feature
	if err := json.Unmarshal(data, &feats); err != nil {
		return nil, fmt.Errorf("parse feature list %s: %w", name, err)
	}
	for i, f := range feats {
		if f == nil {
			feats[i] = &core.Feature{}
		}
	}
	return feats, nil
}
