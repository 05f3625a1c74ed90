package transfer

const (
	// OriginFTP fetches the snapshot from an FTP server.
	OriginFTP = "ftp"
	// OriginObject fetches the snapshot from S3-compatible object storage.
	OriginObject = "object"
)

// Config holds configuration for the snapshot transfer origin.
type Config struct {
	// Origin selects the snapshot source (ftp, object).
	Origin string `mapstructure:"origin" default:"ftp"`
	// Host is the FTP host, with an optional port (defaults to 21).
	Host string `mapstructure:"host" default:""`
	// User is the FTP login user.
	User string `mapstructure:"user" default:""`
	// Password is the FTP login password.
	Password string `mapstructure:"password" default:""`
	// FilePath is the path of the snapshot file on the origin.
	// For the object origin this is the object key within the bucket.
	FilePath string `mapstructure:"file_path" default:""`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// IsValidOrigin checks if the configured origin is recognized.
func (c Config) IsValidOrigin() bool {
	switch c.Origin {
	case OriginFTP, OriginObject:
		return true
	default:
		return false
	}
}
