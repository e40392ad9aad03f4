// Package assetindex builds the candidate index for a scan: a mapping from
// Unity GUID to the asset path the GUID names.
//
// Unity stores each asset's GUID in a sidecar .meta file next to the asset.
// Build walks the target directory once, pairs every .meta file with the
// asset it describes, and extracts the GUID line. Assets without a readable
// sidecar or a well-formed GUID are skipped; duplicate GUIDs overwrite the
// earlier entry, matching Unity's own last-import-wins behavior.
package assetindex
