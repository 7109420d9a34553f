package litezip

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error (including validation failures)
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess          = 0  // Command completed successfully
	ExitGeneralError     = 1  // Unknown error or validation diagnostics reported
	ExitUsageError       = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic            = 3  // Internal panic (unexpected crash)
	ExitConfigError      = 10 // Invalid litezip.yaml or environment
	ExitMissingFile      = 14 // Required content file not found
	ExitMalformedXML     = 15 // Content file is not well-formed XML
	ExitUnsupportedField = 16 // Metadata update names an immutable field
)

const (
	// ModuleFileName is the content file every module directory must contain.
	ModuleFileName = "index.cnxml"

	// CollectionFileName is the content file at the root of a litezip tree.
	CollectionFileName = "collection.xml"

	// ConfigFileName is the optional per-tree configuration file.
	ConfigFileName = "litezip.yaml"
)

// XML namespaces of the content vocabularies.
const (
	NamespaceCNXML   = "http://cnx.rice.edu/cnxml"
	NamespaceCollXML = "http://cnx.rice.edu/collxml"
	NamespaceMDML    = "http://cnx.rice.edu/mdml"
)
