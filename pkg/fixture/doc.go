// Package fixture builds random graph fixtures.
//
// # Parameters
//
// A fixture is described by [Options]:
//
//	NodeCount      number of nodes, at least 2 (default 50)
//	NumLimit       upper bound of every "num" and pie value (default 50)
//	ClusterCount   clusters to draw from; 0 disables clustering (default 0)
//	PieChartCount  leading nodes that carry pie values (default 0)
//
// On the command line the four parameters are positional and cascade: a
// missing position keeps its default together with every later position.
// [ParseArgs] turns such an argument list into Options once, at the boundary.
//
// # Topology
//
// [Generate] emits N-1 links. Link x (1 <= x < N) starts at node x and ends at
// a node drawn uniformly from the other half of the id range: [1, x-1] when
// x > N/2, otherwise [x+1, N]. Self-loops are impossible by construction;
// repeated pairs are not excluded.
//
// # Simple Form
//
// With Options.Simple set, "num" equals the node id, no clusters or pie values
// are drawn, and [Filename] embeds the generation time instead of the
// parameters so repeated runs do not collide.
package fixture
