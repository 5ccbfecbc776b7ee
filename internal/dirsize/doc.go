// Package dirsize computes the apparent disk usage of a directory tree.
//
// It walks the tree without following symbolic links, sums the sizes of
// regular files and symbolic links, and counts content reachable through
// several hard links only once. Entries that cannot be inspected are left
// out of the result without aborting the walk.
package dirsize
