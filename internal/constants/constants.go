package constants

// Line prefixes for listing output on stdout.
const (
	InfoPrefix  = "INFO: "
	ErrorPrefix = "ERROR: "
)

// DefaultBucket is listed when neither the command line nor the config file
// names a bucket.
const DefaultBucket = "rstests3nonpublic"
