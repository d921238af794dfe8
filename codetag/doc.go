// Package codetag normalizes generated code into the <execute_python> block
// convention that downstream executors look for.
//
// The tags are case-sensitive literals. Ensure wraps text at most once: any text
// that already contains OpenTag is treated as wrapped, even if the tag only
// appears as a substring.
package codetag
