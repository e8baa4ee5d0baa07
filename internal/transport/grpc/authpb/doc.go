// Package authpb holds the wire types for the token verification gRPC
// surface. The generated code is checked in; regenerate after editing
// auth.proto.
//
//go:generate protoc --go_out=plugins=grpc,paths=source_relative:. auth.proto
package authpb
