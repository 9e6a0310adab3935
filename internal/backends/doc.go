// Package backends defines the closed set of supported sync source backends
// and the contracts their implementations satisfy.
//
// A backend pairs a synchronization implementation (SyncSource) with its
// configuration shape (SourceConfig). The set of backend types is closed:
// quantify, qCoDeS, Core-tools and fileBase. Resolution between a type
// identifier and its implementation pair lives in the registry subpackage.
package backends
