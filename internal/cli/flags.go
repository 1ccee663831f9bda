package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile    string
	OutputDir  string
	BatchFile  string
	SkipExport bool
	ListModels bool
	History    bool
	GUIMode    bool

	// Completion endpoint flags
	Provider string
	Model    string
	BaseURL  string

	// History flags
	HistoryLimit int

	// Logging flags
	LogDir   string
	LogLevel string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		OutputDir:    ".",
		Provider:     "together",
		HistoryLimit: 20,
		LogDir:       "logs",
		LogLevel:     "info",
	}
}
