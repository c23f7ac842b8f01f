// Package composite implements the Composite structural pattern: individual
// objects and whole hierarchies behind one uniform capability.
//
// What:
//
//   - Employee: the component interface both leaves and composites satisfy,
//     with a single ShowDetails(w) operation.
//   - Developer, Designer: leaf participants holding a name and a position,
//     immutable after construction.
//   - Manager: the composite participant; owns an ordered team of Employee
//     references and recurses ShowDetails into it.
//
// Why:
//   - Model part-whole hierarchies (org charts, file systems, UI trees)
//   - Let client code treat a single employee and an entire department the
//     same way
//   - Demonstrate depth-first, pre-order traversal over an ownership tree
//
// Traversal contract:
//
//   - ShowDetails visits the receiver first, then every team member in
//     insertion order, depth-first (pre-order). Each node emits exactly one
//     line.
//   - Ownership is exclusive top-down: a parent owns its children and no
//     back-references exist. Cycles are not detected; building a cyclic team
//     is a caller error and recurses forever.
//
// Complexity:
//
//   - ShowDetails: Time O(n) over n reachable nodes, Memory O(d) recursion
//     depth for a tree of depth d.
package composite
