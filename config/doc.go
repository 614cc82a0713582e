/*
Package config resolves one Config for a run of the simulator by layering
three sources in increasing priority: the shipped defaults (params.Default),
an optional TOML file (params.LoadOverrides), and command-line flags parsed
by cmd/binary-rstdpd's cobra layer. A malformed override at any layer is a
configuration fault — Load returns an error rather than silently falling
back, per §7's error taxonomy.
*/
package config
