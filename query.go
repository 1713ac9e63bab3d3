// Package archway provides query mechanisms for component-based entity systems.
package archway

// QueryID identifies a query registered on an Instance. Query handles are
// stable for the instance's lifetime (spec.md §3).
type QueryID uint32

// query is the pre-resolved list of archetypes matching a requested
// component set (spec.md §3/§4.6). componentIDs preserves the caller's
// order: iteration yields component pointers in that order, not sorted
// order.
type query struct {
	componentIDs  []ComponentKind
	archetypeRefs []ArchetypeID

	// predicate is nil for a plain spec.md §4.6 subset-match query. When
	// set (via CreateQueryFromPredicate), it overrides matchesArchetype
	// with the composite And/Or/Not evaluation.
	predicate QueryNode
}

// matchesArchetype reports whether sig satisfies the query: the subset-
// match algorithm of spec.md §4.6 for a plain query, or the composite
// predicate's Evaluate for one built from a QueryNode.
func (q *query) matchesArchetype(sig Signature) bool {
	if q.predicate != nil {
		return q.predicate.Evaluate(sig)
	}
	return sig.ContainsAll(q.componentIDs)
}

// sameComponentSet reports whether kinds names the same multiset of kinds
// as q, order-insensitive — used for create_query's deduplication check.
func (q *query) sameComponentSet(kinds []ComponentKind) bool {
	if len(kinds) != len(q.componentIDs) {
		return false
	}
	seen := make(map[ComponentKind]int, len(kinds))
	for _, k := range q.componentIDs {
		seen[k]++
	}
	for _, k := range kinds {
		if seen[k] == 0 {
			return false
		}
		seen[k]--
	}
	return true
}

// QueryOperation names the logical operation a composite predicate node
// applies — a small boolean algebra layered on top of spec.md's plain
// subset-match query, grounded on the teacher library's And/Or/Not query
// combinators.
type QueryOperation int

const (
	OpAnd QueryOperation = iota
	OpOr
	OpNot
)

// QueryNode is one node of a composite query predicate tree, evaluated
// against a single archetype's signature.
type QueryNode interface {
	Evaluate(sig Signature) bool
}

// compositeNode implements a compound predicate with child nodes.
type compositeNode struct {
	op         QueryOperation
	components []ComponentKind
	children   []QueryNode
}

func (n *compositeNode) Evaluate(sig Signature) bool {
	switch n.op {
	case OpAnd:
		if !sig.ContainsAll(n.components) {
			return false
		}
		for _, c := range n.children {
			if !c.Evaluate(sig) {
				return false
			}
		}
		return true
	case OpOr:
		if sig.ContainsAny(n.components) {
			return true
		}
		for _, c := range n.children {
			if c.Evaluate(sig) {
				return true
			}
		}
		return false
	case OpNot:
		if len(n.components) > 0 && !sig.ContainsNone(n.components) {
			return false
		}
		for _, c := range n.children {
			if c.Evaluate(sig) {
				return false
			}
		}
		return true
	}
	return false
}

// QueryBuilder composes QueryNode trees out of component kinds and
// sub-predicates, mirroring the teacher library's Query.And/Or/Not.
type QueryBuilder struct{}

// NewQueryBuilder returns a fresh composite-query builder.
func NewQueryBuilder() QueryBuilder { return QueryBuilder{} }

func splitItems(items []any) ([]ComponentKind, []QueryNode) {
	var kinds []ComponentKind
	var children []QueryNode
	for _, item := range items {
		switch v := item.(type) {
		case ComponentKind:
			kinds = append(kinds, v)
		case []ComponentKind:
			kinds = append(kinds, v...)
		case QueryNode:
			children = append(children, v)
		}
	}
	return kinds, children
}

// And builds a node requiring every named kind and every child predicate.
func (QueryBuilder) And(items ...any) QueryNode {
	kinds, children := splitItems(items)
	return &compositeNode{op: OpAnd, components: kinds, children: children}
}

// Or builds a node requiring at least one named kind or satisfied child.
func (QueryBuilder) Or(items ...any) QueryNode {
	kinds, children := splitItems(items)
	return &compositeNode{op: OpOr, components: kinds, children: children}
}

// Not builds a node requiring none of the named kinds and no satisfied
// child.
func (QueryBuilder) Not(items ...any) QueryNode {
	kinds, children := splitItems(items)
	return &compositeNode{op: OpNot, components: kinds, children: children}
}

// CreateQuery registers a query over the given component kinds —
// create_query in spec.md §4.6/§6. At creation time every archetype
// already in the index is scanned once; archetypes created afterward are
// retroactively tested and appended by onArchetypeCreated, so a query's
// match set stays current without the hot iteration path doing any work.
//
// A query with the same (order-insensitive) component set as an existing
// query returns that query's id instead of creating a new one, and warns
// via Config.Logger — spec.md §4.6/§9's deduplication policy.
//
// If no archetype currently matches, the query is still created; the
// returned error is ErrNoMatchingArchetype, a benign warning, not a
// failure (spec.md §7).
func (ins *Instance) CreateQuery(kinds ...ComponentKind) (QueryID, error) {
	if len(kinds) > MaxQueryComponents {
		return 0, assertOrError(ErrTooManyKinds{Limit: MaxQueryComponents})
	}

	for i, existing := range ins.queries {
		if existing.predicate == nil && existing.sameComponentSet(kinds) {
			Config.warnf("archway: query %v duplicates existing query %d, reusing it", kinds, i)
			return QueryID(i), nil
		}
	}

	q := &query{componentIDs: append([]ComponentKind(nil), kinds...)}
	for _, a := range ins.archetypes.all {
		if q.matchesArchetype(a.signature) {
			q.archetypeRefs = append(q.archetypeRefs, a.id)
		}
	}
	id := QueryID(len(ins.queries))
	ins.queries = append(ins.queries, q)

	if len(q.archetypeRefs) == 0 {
		Config.warnf("archway: query %v has no matching archetype yet", kinds)
		return id, ErrNoMatchingArchetype{Components: kinds}
	}
	return id, nil
}

// CreateQueryFromPredicate registers a query driven by a composite
// QueryNode instead of a plain required-kind list. It behaves like
// CreateQuery for broadcast/matching purposes, but iteration over it only
// yields the kinds named in iterKinds (the predicate itself may reference
// kinds purely for filtering, e.g. Not(dead)).
func (ins *Instance) CreateQueryFromPredicate(node QueryNode, iterKinds []ComponentKind) (QueryID, error) {
	if len(iterKinds) > MaxQueryComponents {
		return 0, assertOrError(ErrTooManyKinds{Limit: MaxQueryComponents})
	}
	q := &query{componentIDs: append([]ComponentKind(nil), iterKinds...), predicate: node}
	for _, a := range ins.archetypes.all {
		if q.matchesArchetype(a.signature) {
			q.archetypeRefs = append(q.archetypeRefs, a.id)
		}
	}
	id := QueryID(len(ins.queries))
	ins.queries = append(ins.queries, q)
	if len(q.archetypeRefs) == 0 {
		Config.warnf("archway: predicate query has no matching archetype yet")
		return id, ErrNoMatchingArchetype{Components: iterKinds}
	}
	return id, nil
}

// onArchetypeCreated implements spec.md §4.6's mandated option (a):
// archetype creation retroactively tests the new archetype against every
// live query and appends a reference where it matches.
func (ins *Instance) onArchetypeCreated(a *archetype) {
	for _, q := range ins.queries {
		if q.matchesArchetype(a.signature) {
			q.archetypeRefs = append(q.archetypeRefs, a.id)
		}
	}
}
