package cli

var (
	verbose bool

	// all commands
	configPath  string
	displayName string
	apiSize     string
	screenSize  string

	// for screenshot command
	screenshotOutputPath  string
	screenshotFormat      string
	screenshotJpegQuality int
	screenshotNative      bool

	// for io commands
	ioModifier string
	ioAmount   int
	ioAt       string

	// for action command
	actionJSON string
)
