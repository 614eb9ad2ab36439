// Package dot renders multi-attribute graphs to Graphviz DOT, for
// inspecting instances and search results visually.
//
// Export walks the graph in node-index order and emits one DOT node per
// graph node and one directed edge per arc, so the output is
// deterministic for a given graph. Options select an arc attribute to
// print as the edge label and a path (typically a pulse.Result) to
// highlight:
//
//	out, err := dot.Export(g,
//	    dot.WithName("corridor"),
//	    dot.WithArcLabel("cost"),
//	    dot.WithHighlight(res.Path),
//	)
//
// The returned string feeds straight into Graphviz:
//
//	dot -Tsvg corridor.dot -o corridor.svg
package dot
