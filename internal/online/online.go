// Package online decides whether the package registry is reachable.
package online

import "context"

// RegistryHost is the host probed for reachability.
const RegistryHost = "registry.yarnpkg.com"

// Resolver looks up host names; *net.Resolver satisfies it.
type Resolver interface {
	LookupHost(ctx context.Context, host string) ([]string, error)
}

// Probe reports whether RegistryHost resolves. Any lookup failure means offline.
func Probe(ctx context.Context, r Resolver) bool {
	addrs, err := r.LookupHost(ctx, RegistryHost)
	return err == nil && len(addrs) > 0
}
