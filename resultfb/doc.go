// Package resultfb encodes simulation results as FlatBuffers.
//
// The accessors in GameType.go, PlayerResult.go and Result.go are
// generated from result.fbs; Encode and Decode convert between the
// buffers and simulation.Result.
package resultfb
