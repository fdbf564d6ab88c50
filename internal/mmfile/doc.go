// Package mmfile provides platform-specific helpers for memory-mapping input files.
package mmfile
