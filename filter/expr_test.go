package filter

import (
	"context"
	"testing"

	"github.com/rushteam/triagekit/core"
)

func TestExprFilter(t *testing.T) {
	tests := []struct {
		name string
		expr string
		cand *core.Candidate
		want bool
	}{
		{
			name: "filter by category",
			expr: `cand.category == "Deployment"`,
			cand: cand(1, boolp(false), "deploy page", "simple", nil, "Deployment"),
			want: true,
		},
		{
			name: "keep other category",
			expr: `cand.category == "Deployment"`,
			cand: cand(1, boolp(false), "settings page", "simple", nil, "UI"),
			want: false,
		},
		{
			name: "filter by dependency count",
			expr: `size(cand.dependencies) > 2`,
			cand: cand(1, boolp(false), "modal", "simple", []int{1, 2, 3}, "UI"),
			want: true,
		},
		{
			name: "description contains",
			expr: `cand.description.contains("experiment")`,
			cand: cand(1, boolp(false), "experimental ui", "simple", nil, "UI"),
			want: true, // "experiment" 是 "experimental" 的子串，contains 命中
		},
		{
			name: "empty expression is a no-op",
			expr: "",
			cand: cand(1, boolp(false), "ui", "simple", nil, ""),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewExprFilter(tt.expr)
			if err != nil {
				t.Fatalf("NewExprFilter(%q) error = %v", tt.expr, err)
			}
			got, err := f.ShouldFilter(context.Background(), &core.TriageContext{}, tt.cand)
			if err != nil {
				t.Fatalf("ShouldFilter() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ShouldFilter() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewExprFilter_CompileError(t *testing.T) {
	if _, err := NewExprFilter(`cand.category ==`); err == nil {
		t.Fatal("期望编译错误，got nil")
	}
}
