// Package transfer acquires the raw inventory snapshot bytes from the
// configured origin.
//
// Two origins are supported behind the same Source interface:
//
//   - ftp: the snapshot is downloaded from an FTP drop folder, matching the
//     export process most suppliers use.
//   - object: the snapshot is read from an S3-compatible bucket via
//     core/storage, for deployments that mirror the export into object storage.
//
// A fetch either returns the complete snapshot bytes or fails with an error
// wrapping ErrTransfer; there is no partial result. FTP sessions are torn down
// on every exit path, and a teardown failure is logged rather than masking a
// prior fetch error.
package transfer
