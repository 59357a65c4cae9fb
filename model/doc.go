// Package model defines the budget tree and the geometric primitives shared
// by the extraction stages.
//
// # Budget tree
//
// [BudgetItem] is a single-rooted ownership tree: every node owns its
// children, which appear in document order, and owns an insertion-ordered
// list of [FiscalYearBudget] records (committed multi-year allocations).
// An amount of nil means the document states no amount for the node, which
// is distinct from a stated amount of zero.
//
// Amount consistency is a diagnostic, not a construction-time constraint:
// [BudgetItem.CheckSum] verifies a node against its direct children and
// [BudgetItem.Diagnostic] renders the result as a message. A tree that
// fails the check is still fully usable.
//
// # Serialized forms
//
// Two projections are supported:
//
//   - the nested JSON form ([MarshalTree] / [UnmarshalTree]), which rejects
//     any document whose top-level value is not a well-formed object;
//   - the flattened row form ([BudgetItem.ToRows] / [BuildTreeByRows]),
//     where each node carries a depth-tagged name_<depth> key and
//     fiscal-year records interleave directly after their owner's row.
//
// Both round-trip: unflattening the flattened form, or reparsing the
// serialized form, reproduces the original tree.
//
// # Geometry
//
// [Rect] represents both drawn line segments and word bounding boxes, with
// the top-left origin convention used by the upstream text provider.
package model
