// Package menu implements the selectable action tree and the interactive
// navigator that walks it.
//
// A [Menu] is an ordered list of [Item]s. Each item carries a selection key
// and an [Entry], which is either an [*Action] (a leaf unit of work) or a
// nested [*Menu]. The [Navigator] renders one menu at a time, reads a line
// of input, and dispatches: sub-menus are entered with a nested loop, and
// actions run through their confirmation and execution contract.
//
// Actions never abort navigation. Every failure inside an action is turned
// into an [Outcome] with Succeeded set to false.
package menu
