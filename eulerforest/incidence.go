package eulerforest

// incidenceNode is one entry in a vertex's incidence list: the other
// endpoint of one currently-incident edge. It is an intrusive doubly
// linked list node — not container/list.Element — so a saved *incidenceNode
// handle is a plain pointer, giving O(1) removal without an interface-boxed
// handle, matching the address-stability design note in spec.md section 9.
type incidenceNode struct {
	vertex     int
	prev, next *incidenceNode
}

// incidenceList is a vertex's list of currently incident neighbors, most
// recently linked first.
type incidenceList struct {
	head, tail *incidenceNode
}

// pushFront records vertex as a new front-of-list neighbor and returns the
// handle needed to remove it later in O(1).
func (l *incidenceList) pushFront(vertex int) *incidenceNode {
	n := &incidenceNode{vertex: vertex, next: l.head}
	if l.head != nil {
		l.head.prev = n
	} else {
		l.tail = n
	}
	l.head = n
	return n
}

// remove detaches n from the list in O(1).
func (l *incidenceList) remove(n *incidenceNode) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.prev, n.next = nil, nil
}

// front returns the most recently linked neighbor, or ok=false if the
// list is empty (the vertex is isolated).
func (l *incidenceList) front() (vertex int, ok bool) {
	if l.head == nil {
		return 0, false
	}
	return l.head.vertex, true
}
