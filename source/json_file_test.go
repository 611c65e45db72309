package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rushteam/triagekit/core"
)

func writeList(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "feature_list.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestJSONFileSource_Load(t *testing.T) {
	path := writeList(t, `[
		{"passes": true, "description": "login", "complexity": "medium"},
		{"passes": false, "description": "dark mode button", "complexity": "simple", "dependencies": [1], "category": "UI"},
		{"description": "no passes field"}
	]`)

	src := &JSONFileSource{Path: path}
	feats, err := src.Load(context.Background(), nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(feats) != 3 {
		t.Fatalf("Load() returned %d records, want 3", len(feats))
	}
	if feats[0].Passes == nil || !*feats[0].Passes {
		t.Errorf("feats[0].Passes = %v, want true", feats[0].Passes)
	}
	if feats[1].Dependencies[0] != 1 || feats[1].CategoryOr("") != "UI" {
		t.Errorf("feats[1] = %+v", feats[1])
	}
	// 缺省字段保持 nil，三态不丢失
	if feats[2].Passes != nil {
		t.Errorf("feats[2].Passes = %v, want nil", feats[2].Passes)
	}
	if feats[2].Complexity != nil {
		t.Errorf("feats[2].Complexity = %v, want nil", feats[2].Complexity)
	}
}

func TestJSONFileSource_NullElement(t *testing.T) {
	path := writeList(t, `[null, {"passes": false}]`)

	src := &JSONFileSource{Path: path}
	feats, err := src.Load(context.Background(), nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(feats) != 2 || feats[0] == nil {
		t.Fatalf("null 元素应解析为空记录以保持编号: %+v", feats)
	}
}

func TestJSONFileSource_FileNotFound(t *testing.T) {
	src := &JSONFileSource{Path: filepath.Join(t.TempDir(), "missing.json")}
	if _, err := src.Load(context.Background(), nil); err == nil {
		t.Fatal("期望读取错误，got nil")
	}
}

func TestJSONFileSource_MalformedJSON(t *testing.T) {
	path := writeList(t, `{"not": "an array"`)

	src := &JSONFileSource{Path: path}
	if _, err := src.Load(context.Background(), nil); err == nil {
		t.Fatal("期望解析错误，got nil")
	}
}

func TestStoreSource_NotConfigured(t *testing.T) {
	src := &StoreSource{}
	_, err := src.Load(context.Background(), nil)
	if !core.IsInvalidInput(err) {
		t.Fatalf("err = %v, want INVALID_INPUT", err)
	}
}
