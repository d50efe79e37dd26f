package config

// CLI verbosity values accepted by ConfigOverride.LogLvl, from least to most verbose
const (
	ErrorVerbose = iota + 1
	WarnVerbose
	InfoVerbose
	DebugVerbose
	TraceVerbose
)
