// Package project locates the Unity project root for a scan.
//
// Unity projects keep every importable asset under a single Assets directory
// at the project root. Given any path inside the project, FindAssetsRoot
// walks upward until it finds the directory that owns Assets, so callers can
// search the whole project for references regardless of which subtree they
// asked to analyze.
package project
