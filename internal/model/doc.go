package model

// Package model defines the domain data structures shared by the CLI and the
// GUI: gallery jobs and their status enum. Structures are designed for direct
// rendering and explicit one-directional state transitions.
