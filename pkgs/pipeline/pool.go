package pipeline

// CommentPool collects comments from every processed video for the single
// sentiment pass at the end of a run.
type CommentPool struct {
	comments []string
	drained  bool
}

func (p *CommentPool) Add(comments ...string) {
	if p.drained {
		panic("pipeline: comment added after pool was drained")
	}
	p.comments = append(p.comments, comments...)
}

func (p *CommentPool) Len() int {
	return len(p.comments)
}

// Drain hands the pooled comments to the caller exactly once.
func (p *CommentPool) Drain() []string {
	if p.drained {
		panic("pipeline: comment pool drained twice")
	}
	p.drained = true
	if p.comments == nil {
		return []string{}
	}
	return p.comments
}
