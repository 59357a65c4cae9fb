// Package tables detects ruled tables from the line and rectangle segments
// drawn on a page.
//
// Unlike text-driven table detection, this detector works purely on
// geometry: it never sees page text. The input is the set of drawing
// primitives the upstream provider reports for a page, each represented as
// a [thbudget/model.Rect].
//
// # Algorithm
//
// Detection runs in three steps:
//
//  1. Connectivity. Segment B is connected to segment A when either corner
//     of B's diagonal lies on the line through A's diagonal, within a small
//     perpendicular tolerance, and inside A's span (a point on the infinite
//     extension does not connect).
//  2. Grouping. A depth-first traversal collects each segment's connected
//     component; components that do not close back on their starting
//     segment (isolated strokes, open polylines) are dropped. The bounding
//     rectangle of a surviving component is a candidate region. Candidates
//     are de-duplicated by containment against the final retained set: a
//     region inside a retained region is discarded, and a new region
//     absorbs retained regions it fully contains.
//  3. Grid. Each retained region becomes a [Table]: distinct y positions
//     of wide segments form the horizontal supports, distinct x positions
//     of tall segments the vertical supports (near-duplicates within the
//     support tolerance merge), and consecutive support pairs delimit the
//     cell grid. The region's own top and left edges are injected as
//     implicit supports when no drawn segment lies close to them.
//
// The downstream classifier only consumes table presence per page
// ([Detector.ContainsTable]); cell assignment ([Table.AddWord]) is
// available for callers that need cell contents.
package tables
