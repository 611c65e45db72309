// Package triagekit 是一个功能清单分诊工具包（Feature Triage Kit）。
//
// 设计要点：
// - Pipeline-first: 所有分诊逻辑通过 Node 串联（Source → Filter → Rank → ReRank → Report）
// - Labels-first: labels 全链路透传与标准化 merge，支持 explain / 观测 / 策略驱动
// - Node 可扩展: 自定义 Node 即可插拔扩展（内置谓词或 CEL 表达式均可）
package triagekit

import "github.com/rushteam/triagekit/pipeline"

// 轻量 facade：便于用户直接 import "triagekit" 使用核心抽象。
type Pipeline = pipeline.Pipeline
type Node = pipeline.Node
type Kind = pipeline.Kind

const (
	KindSource = pipeline.KindSource
	KindFilter = pipeline.KindFilter
	KindRank   = pipeline.KindRank
	KindReRank = pipeline.KindReRank
	KindReport = pipeline.KindReport
)
