// Package shader defines the core data model for physically-based shader
// node graphs: node archetypes, their typed input/output slots, parameter
// default values with numeric bounds, and the color ramp curve type used by
// curve-shaped parameters.
//
// # Architecture
//
// The package is a pure data model. It does not evaluate or render shaders;
// it describes their structure so that editing surfaces and persistence
// layers can be built on top of it:
//
//   - [Node]: identity + archetype + position + ordered [Slot] list
//   - [SlotValue]: closed set of typed parameter payloads
//   - [ColorRamp]: always-sorted keyframe curve
//   - [Graph]: editable container of nodes and typed connections
//
// Node construction is a pure lookup into a static catalog: every archetype
// maps to a fixed, ordered slot layout, so two nodes of the same archetype
// always agree on slot count, order, names, keys, directions, and types.
//
// # Equality
//
// Equality throughout this package is strict and structural. Floats are
// compared exactly; [ColorRamp.Similar] is the only tolerance-based
// comparison offered. Node equality includes identity, which makes it a
// change-detection primitive ("has the graph changed since last sync"),
// not an isomorphism test.
//
// # Concurrency
//
// All operations work on owned data and are safe for concurrent reads.
// The only shared mutable state is the process-wide node id generator,
// which serializes access internally. Nodes themselves are not safe for
// concurrent mutation; the editing surface is responsible for single-writer
// access per node.
package shader
