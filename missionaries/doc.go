// Package missionaries models the missionaries-and-cannibals river crossing
// as a core.Problem over State values.
//
// Equal numbers of missionaries and cannibals start on the west bank with a
// two-seat boat. Every crossing carries one or two people in the direction
// the boat sits. On neither bank may cannibals outnumber missionaries while
// any missionary is present there. The puzzle is solved once everyone has
// reached the east bank.
//
// Successors are generated in a fixed move order (two missionaries, one
// missionary, two cannibals, one cannibal, one of each) and filtered by the
// legality predicate, so searches are reproducible.
package missionaries
