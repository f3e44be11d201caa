// File: methods_scratch.go
// Role: the store's shared scratch space — the work stack (sized
// 2*arcCapacity so every iterative descent in this module fits without
// growing) and the bucket-sort arrays dfsprep uses once, globally, to
// build every separatedDFSChildList in O(N).

package core

// PushWork pushes v onto the shared work stack.
func (g *Graph) PushWork(v int) { g.workStack = append(g.workStack, v) }

// PopWork pops and returns the top of the work stack, or NIL if empty.
func (g *Graph) PopWork() int {
	n := len(g.workStack)
	if n == 0 {
		return NIL
	}
	v := g.workStack[n-1]
	g.workStack = g.workStack[:n-1]
	return v
}

// WorkStackEmpty reports whether the shared work stack is empty.
func (g *Graph) WorkStackEmpty() bool { return len(g.workStack) == 0 }

// WorkStackReset truncates the work stack to empty without releasing its
// backing array, ready for the next iterative traversal to reuse it.
func (g *Graph) WorkStackReset() { g.workStack = g.workStack[:0] }

// BucketPush appends vertex v to bucket index b (0..N-1) of the shared
// bucket-sort arrays.
func (g *Graph) BucketPush(b, v int) {
	g.bucketNext[v] = g.bucketHead[b]
	g.bucketHead[b] = v
}

// BucketDrain calls fn(v) for every vertex in bucket b, in the reverse of
// push order (bucket b is a LIFO chain), and empties the bucket.
func (g *Graph) BucketDrain(b int, fn func(v int)) {
	for v := g.bucketHead[b]; v != NIL; {
		next := g.bucketNext[v]
		fn(v)
		v = next
	}
	g.bucketHead[b] = NIL
}
