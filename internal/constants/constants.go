package constants

const (
	AppName            = "haebit"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/haebit/haebit.db"
	Version            = "v0.2.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "haebit-"
	BackupFileSuffix = ".db"

	// QRSize is the side length in pixels of generated friend-invite QR codes
	QRSize = 256

	// QRScheme prefixes friend-invite payloads so scanners can recognize them
	QRScheme = "haebit://friend"
)
