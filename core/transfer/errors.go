package transfer

import "errors"

// ErrTransfer marks any failure while acquiring the snapshot: connection,
// authentication, or retrieval. Callers match it with errors.Is.
var ErrTransfer = errors.New("snapshot transfer failed")
