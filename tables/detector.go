package tables

import (
	"math"

	"thbudget/model"
)

// Config holds detector configuration.
type Config struct {
	// Perpendicular tolerance, in page units, for a segment endpoint to
	// count as lying on another segment.
	ConnectTolerance float64

	// Tolerance, in page units, for merging near-duplicate support-line
	// positions and for injecting the table's own bounding edges.
	SupportTolerance float64
}

// DefaultConfig returns default configuration.
func DefaultConfig() Config {
	return Config{
		ConnectTolerance: 10.0,
		SupportTolerance: 5.0,
	}
}

// Detector groups the drawn line and rectangle segments of one page into
// ruled-table regions. Two segments are connected when an endpoint of one
// lies on the diagonal of the other within ConnectTolerance; a maximal
// connected cluster that closes back on itself is a candidate table region.
type Detector struct {
	config Config
}

// NewDetector creates a detector with default configuration.
func NewDetector() *Detector {
	return &Detector{config: DefaultConfig()}
}

// Configure sets the detector configuration.
func (d *Detector) Configure(config Config) {
	d.config = config
}

// Detect groups a page's segments into tables. A page with no segments
// yields no tables; that is not an error.
func (d *Detector) Detect(segments []model.Rect) []*Table {
	if len(segments) == 0 {
		return nil
	}

	adjacency := d.connectivity(segments)

	var regions []model.Rect
	for i := range segments {
		component := collectComponent(adjacency, i)
		if !closesLoop(adjacency, component, i) {
			continue
		}

		region := segments[component[0]]
		for _, j := range component[1:] {
			region = region.Union(segments[j])
		}
		regions = retainRegion(regions, region)
	}

	tables := make([]*Table, 0, len(regions))
	for _, region := range regions {
		var members []model.Rect
		for _, seg := range segments {
			if region.Contains(seg) {
				members = append(members, seg)
			}
		}
		tables = append(tables, newTable(members, d.config.SupportTolerance))
	}
	return tables
}

// ContainsTable reports whether the page's segments form at least one
// table. This boolean presence signal is what the entry classifier
// consumes.
func (d *Detector) ContainsTable(segments []model.Rect) bool {
	return len(d.Detect(segments)) > 0
}

// connectivity builds the adjacency relation over segments: j is adjacent
// to i when either corner of j's diagonal lies on i's diagonal.
func (d *Detector) connectivity(segments []model.Rect) [][]int {
	adjacency := make([][]int, len(segments))
	for i, seg := range segments {
		start := seg.TopLeft()
		end := seg.BottomRight()
		for j, other := range segments {
			if j == i {
				continue
			}
			if isOnSegment(other.TopLeft(), start, end, d.config.ConnectTolerance) ||
				isOnSegment(other.BottomRight(), start, end, d.config.ConnectTolerance) {
				adjacency[i] = append(adjacency[i], j)
			}
		}
	}
	return adjacency
}

// isOnSegment reports whether p lies on the segment from a to b, within a
// perpendicular tolerance. Points on the infinite extension of the segment
// do not count.
func isOnSegment(p, a, b model.Point, tolerance float64) bool {
	dx := b.X - a.X
	dy := b.Y - a.Y
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist == 0 {
		return false
	}

	distToA := math.Sqrt((p.X-a.X)*(p.X-a.X) + (p.Y-a.Y)*(p.Y-a.Y))
	distToB := math.Sqrt((p.X-b.X)*(p.X-b.X) + (p.Y-b.Y)*(p.Y-b.Y))

	// Projection of p onto the segment must fall within the span.
	dot := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / (dist * dist)
	if dot < 0 || dot > 1 || distToA > dist || distToB > dist {
		return false
	}

	perpendicular := math.Abs(dy*p.X-dx*p.Y+b.X*a.Y-b.Y*a.X) / dist
	return perpendicular < tolerance
}

// collectComponent returns the connected component of node in depth-first
// visit order.
func collectComponent(adjacency [][]int, node int) []int {
	var visited []int
	seen := make(map[int]bool)

	var walk func(int)
	walk = func(n int) {
		if seen[n] {
			return
		}
		seen[n] = true
		visited = append(visited, n)
		for _, neighbour := range adjacency[n] {
			walk(neighbour)
		}
	}
	walk(node)
	return visited
}

// closesLoop reports whether a component forms a closed shape: the last
// segment visited must connect back to the starting segment. Isolated
// strokes and open polylines are not tables.
func closesLoop(adjacency [][]int, component []int, start int) bool {
	if len(component) == 0 {
		return false
	}
	last := component[len(component)-1]
	for _, neighbour := range adjacency[last] {
		if neighbour == start {
			return true
		}
	}
	return false
}

// retainRegion resolves containment against the retained set: a candidate
// contained in any retained region is discarded, and a candidate absorbs
// every retained region it fully contains.
func retainRegion(regions []model.Rect, candidate model.Rect) []model.Rect {
	for _, existing := range regions {
		if existing.Contains(candidate) {
			return regions
		}
	}
	out := regions[:0]
	for _, existing := range regions {
		if !candidate.Contains(existing) {
			out = append(out, existing)
		}
	}
	return append(out, candidate)
}
