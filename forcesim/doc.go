// Package forcesim is the force-directed layout runtime: a densely indexed
// buffer of points with velocities, an ordered list of force kernels, and a
// cooling integrator in the d3-force tradition.
//
// Per tick, the Simulation:
//
//  1. cools: alpha approaches AlphaTarget by the per-tick decay derived
//     from AlphaMin and the tick budget;
//  2. applies every force in insertion order — forces accumulate impulses
//     on (VX, VY) only, except CenterForce, which recenters positions, and
//     CollideForce, which pushes overlapping points apart positionally;
//  3. integrates: v ← v·decay, x ← x + v.
//
// Run loops Step until alpha < AlphaMin; the caller can observe or cancel
// between ticks via the OnTick hook. The lifecycle is Ready → Running →
// Done: once Run returns, build a fresh point buffer to lay out again.
//
// Kernels:
//
//	– CenterForce    — positional centring; keep it first in the force list.
//	– LinkForce      — per-edge spring with degree-derived bias and strength.
//	– ManyBodyForce  — Barnes–Hut approximated n-body charge (default −30).
//	– CollideForce   — circle collision resolution by caller radius.
//	– PositionForce  — per-node pull toward optional (x, y) targets.
//	– RadialForce    — per-node pull toward a circle.
//	– Group*         — link/many-body/position/center variants keyed by a
//	  node→group accessor: strong inside a group, weak across groups.
//
// Initial placement is the phyllotaxis spiral (drawing.Phyllotaxis):
// deterministic and collision-free, so identical inputs yield identical
// layouts.
package forcesim
