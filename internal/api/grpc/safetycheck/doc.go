// Package safetycheck exposes the safety-check controller over gRPC.
//
// The Server translates protobuf requests into controller operations and
// session snapshots back into protobuf; WatchSession streams a snapshot on
// every state change.
package safetycheck
