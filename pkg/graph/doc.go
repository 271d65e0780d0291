// Package graph provides the serialization format for shader node graphs.
//
// This package defines the canonical wire format for shadegraph's graph
// data, used for JSON files, store backends, and handoff to editing
// surfaces.
//
// # Architecture
//
// The package sits at the serialization boundary between the internal
// representation and external formats:
//
//   - [Document], [Node], [Value]: serialization types (this package)
//   - pkg/core/shader.Graph: internal graph representation
//
// Use [FromGraph]/[ToGraph] to convert between them.
//
// # Format
//
// Graphs use a node-link JSON document. Nodes carry their id, archetype,
// editor position, and a map of slot values addressed by stable internal
// key — never by slot position. Only stored values cross the wire; slot
// layout, bounds, and precision hints are catalog data and are
// reconstructed from the archetype on load.
//
//	{
//	  "nodes": [
//	    {
//	      "id": "6a3db1f2-...",
//	      "type": "diffuse_bsdf",
//	      "position": [0, 0],
//	      "values": {"roughness": {"type": "float", "number": 0.25}}
//	    }
//	  ],
//	  "connections": [
//	    {"from": "6a3db1f2-...", "from_slot": "BSDF", "to": "...", "to_slot": "surface"}
//	  ]
//	}
//
// Unknown archetypes load as nodes with empty slot lists and unknown value
// keys are dropped, so documents survive catalog growth in both
// directions.
//
// Common operations:
//
//	g, _ := graph.ReadGraphFile("material.json")  // File → shader.Graph
//	graph.WriteGraphFile(g, "out.json")           // shader.Graph → File
//	data, _ := graph.MarshalGraph(g)              // shader.Graph → []byte
//	g2, _ := graph.UnmarshalGraph(data)           // []byte → shader.Graph
package graph
