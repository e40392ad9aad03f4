// Command cluttercutter finds Unity assets that no other asset references.
//
// It indexes the GUIDs declared in .meta sidecar files under the target
// directory, collects every searchable text asset in the project, and
// reports assets whose GUID appears nowhere in that corpus. Results are
// candidates for deletion, not verdicts: references made from code at
// runtime are invisible to this tool.
package main
