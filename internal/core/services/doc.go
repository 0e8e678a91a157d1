// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The scope rule engine, the document assembler and the version allocator
// live here; the agreement service wires them into a single generation.
package services
