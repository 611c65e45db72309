package rank

import (
	"context"
	"sort"

	"github.com/rushteam/triagekit/core"
	"github.com/rushteam/triagekit/pipeline"
	"github.com/rushteam/triagekit/pkg/utils"
)

// ComplexityNode 按组合键对候选做稳定排序：
//   - 主键：complexity 是否等于重档位（默认 "medium"），轻档在前
//   - 次键：test_num 升序
//
// 即所有 "simple" 候选按编号升序排在前面，随后是按编号升序的 "medium" 候选。
// 使用 sort.SliceStable：test_num 唯一时不会出现平局，但排序算法的稳定性
// 本身是节点契约的一部分，自定义键扩展时同序元素保持原相对顺序。
// - 写入 labels：rank_key
type ComplexityNode struct {
	// Heavy 是排在后面的重档位；为空时默认 "medium"
	Heavy string
}

func (n *ComplexityNode) Name() string        { return "rank.complexity" }
func (n *ComplexityNode) Kind() pipeline.Kind { return pipeline.KindRank }

func (n *ComplexityNode) Process(
	_ context.Context,
	_ *core.TriageContext,
	cands []*core.Candidate,
) ([]*core.Candidate, error) {
	if len(cands) == 0 {
		return cands, nil
	}

	heavy := n.Heavy
	if heavy == "" {
		heavy = "medium"
	}

	for _, c := range cands {
		if c == nil {
			continue
		}
		c.PutLabel("rank_key", utils.Label{Value: "complexity," + heavy + "-last", Source: "rank"})
	}

	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i] == nil {
			return false
		}
		if cands[j] == nil {
			return true
		}
		hi := cands[i].Complexity == heavy
		hj := cands[j].Complexity == heavy
		if hi != hj {
			return !hi
		}
		return cands[i].TestNum < cands[j].TestNum
	})
	return cands, nil
}
