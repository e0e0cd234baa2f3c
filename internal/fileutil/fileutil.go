// Package fileutil holds file mode constants for files restshape writes.
package fileutil

import "os"

// OwnerReadWrite is the mode of CLI output files. Schemas and samples can
// describe private APIs, so only the owner may read them.
const OwnerReadWrite os.FileMode = 0o600
