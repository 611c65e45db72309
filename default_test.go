package triagekit_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	triagekit "github.com/rushteam/triagekit"
	"github.com/rushteam/triagekit/core"
	"github.com/rushteam/triagekit/source"
)

func TestDefaultPipeline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feature_list.json")
	data := `[
		{"passes": true, "description": "User login flow", "complexity": "medium"},
		{"passes": false, "description": "Add dark mode toggle button", "complexity": "simple", "dependencies": [1], "category": "UI"},
		{"passes": false, "description": "Migrate database schema", "complexity": "simple"},
		{"passes": false, "description": "Background worker refactor", "complexity": "complex"},
		{"description": "Settings page", "complexity": "simple", "category": "UI"},
		{"passes": false, "description": "Modal dialog for errors", "complexity": "medium", "dependencies": [3], "category": "UI"},
		{"passes": false, "description": "Loading spinner for page", "complexity": "medium", "category": "UI"}
	]`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	var buf bytes.Buffer
	p := triagekit.Default(&source.JSONFileSource{Path: path}, &buf, 10)

	tctx := &core.TriageContext{Scene: "backlog"}
	out, err := p.Run(context.Background(), tctx, nil)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	// 存活：2 号（simple）与 7 号（medium）。
	// 1 号已通过；3 号数据库词；4 号复杂度；5 号缺省按通过处理；6 号依赖未满足。
	want := []int{2, 7}
	if len(out) != len(want) {
		t.Fatalf("Run() kept %d candidates, want %d", len(out), len(want))
	}
	for i, n := range want {
		if out[i].TestNum != n {
			t.Errorf("out[%d].TestNum = %d, want %d", i, out[i].TestNum, n)
		}
	}

	report := buf.String()
	if !strings.Contains(report, "=== PASSING TESTS ===\n[1]\n") {
		t.Errorf("通过集输出不符:\n%s", report)
	}
	if !strings.Contains(report, "1. TEST 2: Add dark mode toggle button\n") {
		t.Errorf("第一块应是 2 号候选:\n%s", report)
	}
	if !strings.Contains(report, "2. TEST 7: Loading spinner for page\n") {
		t.Errorf("第二块应是 7 号候选:\n%s", report)
	}
	if strings.Contains(report, "TEST 5:") {
		t.Errorf("缺省 passes 的记录不应出现在候选里:\n%s", report)
	}
}

func TestDefaultTopNFallback(t *testing.T) {
	p := triagekit.Default(&source.JSONFileSource{Path: "unused.json"}, nil, 0)
	if len(p.Nodes) != 5 {
		t.Fatalf("Default() assembled %d nodes, want 5", len(p.Nodes))
	}
}
