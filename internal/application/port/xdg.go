package port

// XDGPaths resolves the directories sash reads from and writes to.
type XDGPaths interface {
	ConfigDir() (string, error)
	DataDir() (string, error)
	StateDir() (string, error)
	LayoutsDir() (string, error)
	LogDir() (string, error)
	// ManDir is the user man page directory, shared with other programs.
	ManDir() (string, error)
}
