// Package corpus selects the files a scan searches for GUID references.
//
// Collect walks the project's Assets root once and keeps the paths of files
// whose extension is on the configured allow-list, whose relative path
// matches no exclude glob, and whose contents decode as text. Binary files
// that share an allowed extension (common for .asset blobs) are expected and
// dropped without diagnostics. Only paths are retained; contents are re-read
// during resolution so the whole corpus never has to fit in memory at once.
package corpus
