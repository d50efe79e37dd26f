package config

// ShellOptions holds settings for the interactive command shell.
type ShellOptions struct {
	Prompt       bool   // print "<pwd><PromptSuffix>" before reading each command
	PromptSuffix string // text printed after the current directory in the prompt
}
