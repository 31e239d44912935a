// Package combin is your in-memory toolkit for exhaustive, constraint-pruned
// enumeration of integer vectors — from the generic backtracking engine to
// ready-made sum-bounded search and schedule planning.
//
// 🚀 What is combin?
//
//	A small, deterministic combinatorial-search library that brings together:
//		• Backtracking core: depth-first enumeration with predicate pruning
//		• Pluggable feasibility: any partial-assignment predicate, fail-fast
//		• Lazy streams: pull one solution at a time, abandon the rest for free
//		• Sum-bounded search: all n-vectors over a candidate set with sum ≤ K
//		• Schedule planning: "events per day across n days, total ≤ K"
//
// ✨ Why choose combin?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – candidate order fixes solution order, run after run
//   - Exact – complete enumeration, no sampling, no heuristics
//   - Extensible – functional options (context, hooks, solution budgets)
//
// Under the hood, everything is organized under three subpackages:
//
//	backtrack/ — the generic constraint-pruned depth-first enumerator
//	sumbound/  — the sum-bounded feasibility predicate and its drivers
//	schedule/  — a discrete event-schedule planner built on sumbound
//
// Quick ASCII example (candidates {0,1}, 2 slots, sum ≤ 1):
//
//	    [_ _] ─0→ [0 _] ─0→ [0 0] ✓
//	               └──1→ [0 1] ✓
//	          ─1→ [1 _] ─0→ [1 0] ✓
//	               └──1→ [1 1] ✗ (sum 2 > 1, pruned)
//
// Dive into the per-package docs for contracts, complexity and examples.
//
//	go get github.com/katalvlaran/combin
package combin
