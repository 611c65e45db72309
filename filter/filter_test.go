package filter

import (
	"context"
	"testing"

	"github.com/rushteam/triagekit/core"
)

func boolp(b bool) *bool { return &b }

func cand(testNum int, passes *bool, desc, complexity string, deps []int, category string) *core.Candidate {
	c := core.NewCandidate(testNum, &core.Feature{
		Passes:       passes,
		Dependencies: deps,
	})
	c.Description = desc
	c.Complexity = complexity
	c.Category = category
	return c
}

func TestPassingFilter(t *testing.T) {
	f := &PassingFilter{}

	tests := []struct {
		name   string
		passes *bool
		want   bool // true = 过滤掉
	}{
		{name: "passes false kept", passes: boolp(false), want: false},
		{name: "passes true dropped", passes: boolp(true), want: true},
		// 缺省视为已通过、排除，与 BuildPassingSet 的缺省解释相反，见谓词文档
		{name: "passes absent dropped", passes: nil, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.ShouldFilter(context.Background(), nil, cand(1, tt.passes, "ui tweak", "simple", nil, ""))
			if err != nil {
				t.Fatalf("ShouldFilter() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ShouldFilter() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDatabaseFilter(t *testing.T) {
	f := &DatabaseFilter{}

	tests := []struct {
		name string
		desc string
		want bool
	}{
		{name: "plain ui description kept", desc: "Add dark mode toggle button", want: false},
		{name: "database term dropped", desc: "Database migration runner", want: true},
		{name: "postgresql term dropped", desc: "PostgreSQL integration test", want: true},
		// 数据库排除优先于关键词命中：描述同时包含 "ui" 也照样排除
		{name: "db term wins over ui keyword", desc: "postgresql admin ui", want: true},
		{name: "case insensitive", desc: "DATABASE cleanup", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.ShouldFilter(context.Background(), nil, cand(1, boolp(false), tt.desc, "simple", nil, ""))
			if err != nil {
				t.Fatalf("ShouldFilter() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ShouldFilter(%q) = %v, want %v", tt.desc, got, tt.want)
			}
		})
	}
}

func TestComplexityFilter(t *testing.T) {
	f := &ComplexityFilter{}

	tests := []struct {
		name       string
		complexity string
		want       bool
	}{
		{name: "simple kept", complexity: "simple", want: false},
		{name: "medium kept", complexity: "medium", want: false},
		{name: "complex dropped", complexity: "complex", want: true},
		{name: "absent dropped", complexity: "", want: true},
		{name: "unknown tier dropped", complexity: "Simple", want: true}, // 精确匹配，不做大小写归一
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.ShouldFilter(context.Background(), nil, cand(1, boolp(false), "ui", tt.complexity, nil, ""))
			if err != nil {
				t.Fatalf("ShouldFilter() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ShouldFilter(complexity=%q) = %v, want %v", tt.complexity, got, tt.want)
			}
		})
	}
}

func TestDependencyFilter(t *testing.T) {
	f := &DependencyFilter{}
	tctx := &core.TriageContext{Passing: core.PassingSet{1: {}, 6: {}}}

	tests := []struct {
		name string
		deps []int
		want bool
	}{
		{name: "no dependencies trivially satisfied", deps: nil, want: false},
		{name: "all dependencies passing", deps: []int{1, 6}, want: false},
		{name: "one dependency not passing", deps: []int{1, 3}, want: true},
		{name: "dependency on failing test", deps: []int{3}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.ShouldFilter(context.Background(), tctx, cand(9, boolp(false), "modal dialog", "medium", tt.deps, ""))
			if err != nil {
				t.Fatalf("ShouldFilter() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ShouldFilter(deps=%v) = %v, want %v", tt.deps, got, tt.want)
			}
		})
	}
}

func TestDependencyFilter_NoPassingSet(t *testing.T) {
	f := &DependencyFilter{}

	got, err := f.ShouldFilter(context.Background(), &core.TriageContext{}, cand(2, boolp(false), "ui", "simple", []int{1}, ""))
	if err != nil {
		t.Fatalf("ShouldFilter() error = %v", err)
	}
	if !got {
		t.Errorf("缺少通过集时依赖应按未满足处理")
	}
}

func TestKeywordFilter(t *testing.T) {
	f := &KeywordFilter{}

	tests := []struct {
		name string
		desc string
		want bool
	}{
		{name: "button keyword kept", desc: "Add dark mode toggle button", want: false},
		{name: "dark mode phrase kept", desc: "dark mode everywhere", want: false},
		{name: "no keyword dropped", desc: "Refactor job scheduler", want: true},
		{name: "substring match not word aware", desc: "fix builtin counter", want: false}, // "ui" 命中 "builtin"
		{name: "case insensitive", desc: "SETTINGS cleanup", want: false},
		{name: "empty description dropped", desc: "", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.ShouldFilter(context.Background(), nil, cand(1, boolp(false), tt.desc, "simple", nil, ""))
			if err != nil {
				t.Fatalf("ShouldFilter() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ShouldFilter(%q) = %v, want %v", tt.desc, got, tt.want)
			}
		})
	}
}

func TestFilterNode_DefaultPredicates(t *testing.T) {
	tctx := &core.TriageContext{Passing: core.PassingSet{1: {}}}

	cands := []*core.Candidate{
		cand(1, boolp(true), "User login page", "medium", nil, "Auth"),                      // 已通过
		cand(2, boolp(false), "Add dark mode toggle button", "simple", []int{1}, "UI"),      // 入围
		cand(3, boolp(false), "postgresql integration test ui", "simple", nil, "Storage"),   // 场景 B：数据库排除优先
		cand(4, boolp(false), "Full page designer rewrite", "complex", []int{1}, "UI"),      // 场景 C：复杂度排除
		cand(5, boolp(false), "Settings page polish", "simple", []int{3}, "UI"),             // 场景 D：依赖未通过
		cand(6, nil, "Error banner styling", "simple", nil, "UI"),                           // passes 缺省排除
		cand(7, boolp(false), "Rewrite scheduler internals", "simple", nil, "Infra"),        // 无关键词
		cand(8, boolp(false), "Responsive layout for settings", "medium", []int{1}, "UI"),   // 入围
	}

	node := DefaultNode()
	out, err := node.Process(context.Background(), tctx, cands)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if len(out) != 2 {
		t.Fatalf("Process() kept %d candidates, want 2: %+v", len(out), out)
	}
	if out[0].TestNum != 2 || out[1].TestNum != 8 {
		t.Errorf("存活候选 = [%d %d]，want [2 8]（保持输入顺序）", out[0].TestNum, out[1].TestNum)
	}

	// 被过滤的候选要带上过滤原因 label
	reasons := map[int]string{
		1: "filter.passing",
		3: "filter.database",
		4: "filter.complexity",
		5: "filter.dependency",
		6: "filter.passing",
		7: "filter.keyword",
	}
	for _, c := range cands {
		want, dropped := reasons[c.TestNum]
		lbl, ok := c.Labels["filtered"]
		if dropped && (!ok || lbl.Source != want) {
			t.Errorf("test %d filtered label = %+v, want source %q", c.TestNum, lbl, want)
		}
		if !dropped && ok {
			t.Errorf("test %d 不应带 filtered label: %+v", c.TestNum, lbl)
		}
	}
}

func TestFilterNode_EmptyFilters(t *testing.T) {
	node := &FilterNode{}
	in := []*core.Candidate{cand(1, boolp(false), "ui", "simple", nil, "")}

	out, err := node.Process(context.Background(), nil, in)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if len(out) != 1 {
		t.Errorf("无过滤器时应原样返回，got %d", len(out))
	}
}
