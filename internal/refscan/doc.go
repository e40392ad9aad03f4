// Package refscan answers the question at the heart of cluttercutter: is a
// given GUID mentioned anywhere in the searchable corpus?
//
// FindReferences is a pure function over immutable inputs, which makes it the
// unit of parallel work. Pool fans the per-GUID checks out across a fixed
// number of workers, surfaces completion-order results, and reports progress
// once per finished check. A panic inside a worker fails the whole run; a
// partially searched corpus would make the unused-asset report untrustworthy.
package refscan
