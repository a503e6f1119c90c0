package chunk

// ProjectionKind distinguishes which column family an ordinal id in a
// Projection refers to.
type ProjectionKind int

const (
	ProjectLabel ProjectionKind = iota
	ProjectField
)

// Projection names the label and field column ids a scan should emit,
// already resolved to ordinals by the query/mir layer.
//
// spec.md section 9 Open Question (b): the original's Projection::insert has
// a bug where its field branch appends to self.labels instead of
// self.fields. Insert below implements the intended behavior directly.
type Projection struct {
	Labels []int
	Fields []int
}

// Insert appends id to the list selected by kind.
func (p *Projection) Insert(kind ProjectionKind, id int) {
	switch kind {
	case ProjectLabel:
		p.Labels = append(p.Labels, id)
	case ProjectField:
		p.Fields = append(p.Fields, id)
	}
}
