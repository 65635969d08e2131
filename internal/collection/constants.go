package collection

const (
	// KeyOwned holds the JSON-encoded sequence of collectibles the
	// user currently holds.
	KeyOwned = "collected"
	// KeyListed holds the JSON-encoded sequence of collectibles
	// currently offered for sale.
	KeyListed = "listed"

	blobFileExt  = ".json"
	blobFileMode = 0644
	blobDirMode  = 0755
)

// Error message constants
const (
	ErrMsgEncodeBlobFailed = "failed to encode collection blob %q: %w"
	ErrMsgWriteBlobFailed  = "failed to write collection blob %q: %w"
	ErrMsgReadBlobFailed   = "failed to read collection blob %q: %w"
)
