// Package resolve locates schemes and templates inside the config and data
// roots. Every call is a fresh, read-only filesystem scan; nothing is cached
// and nothing is logged except through Resolver.
package resolve
