package source

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rushteam/triagekit/core"
)

// Fanout 并发加载多个数据源，并按声明顺序拼接结果。
// 拼接顺序决定全局编号（test_num 跨源连续递增），因此结果与并发调度无关，
// 始终是确定性的。任何一个源失败则整体失败，清单读入没有部分成功模式。
type Fanout struct {
	Sources       []Source
	Timeout       time.Duration // 每个数据源的超时时间（0 表示不限制）
	MaxConcurrent int           // 最大并发数（0 表示无限制）
}

func (f *Fanout) Name() string { return "source.fanout" }

func (f *Fanout) Load(
	ctx context.Context,
	tctx *core.TriageContext,
) ([]*core.Feature, error) {
	if len(f.Sources) == 0 {
		return nil, nil
	}

	// 每个源的结果落在自己的槽位里，最后按源声明顺序拼接
	results := make([][]*core.Feature, len(f.Sources))

	eg, egctx := errgroup.WithContext(ctx)
	if f.MaxConcurrent > 0 {
		eg.SetLimit(f.MaxConcurrent)
	}

	for i, src := range f.Sources {
		i, src := i, src
		eg.Go(func() error {
			loadCtx := egctx
			if f.Timeout > 0 {
				var cancel context.CancelFunc
				loadCtx, cancel = context.WithTimeout(egctx, f.Timeout)
				defer cancel()
			}

			feats, err := src.Load(loadCtx, tctx)
			if err != nil {
				return fmt.Errorf("source %s: %w", src.Name(), err)
			}
			results[i] = feats
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, feats := range results {
		total += len(feats)
	}
	out := make([]*core.Feature, 0, total)
	for _, feats := range results {
		out = append(out, feats...)
	}
	return out, nil
}
