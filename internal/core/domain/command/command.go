package command

// Parsed is raw user input split into its shortcut token and arguments.
type Parsed struct {
	Command  string // first space-delimited word, never contains a space
	Argument string // everything after the first space, trimmed
	Original string // the whole input, trimmed
}
