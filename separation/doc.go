// Package separation provides the block/variable machinery for separation
// constraints of the form pos(left) + gap ≤ pos(right), after the
// IPSEP-COLA projection scheme. It is the hook for non-overlap and
// alignment constraints on one axis of a drawing.
//
// A Variable is one coordinate to place; it always belongs to exactly one
// Block and sits at a fixed Offset from the block's reference position. A
// Block is a maximal set of variables glued together by active constraints
// (a spanning tree); its position is the average of its variables' desired
// positions minus their offsets, which minimizes the squared displacement
// of the whole block.
//
// Project runs the merge pass: scan for the most violated constraint,
// merge the two blocks it spans (recording it as active), reposition, and
// repeat until no constraint is violated. The result satisfies every
// constraint while staying as close to the desired positions as the block
// structure allows.
//
// Errors (sentinel):
//
//	– ErrBadConstraint if a constraint references a variable out of range
//	  or both sides of one variable.
package separation
