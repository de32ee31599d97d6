// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"strings"

	arclist "github.com/arclist/go-arclist"
)

// renderListing drains the listing and prints it flat or as a tree. Entries
// already printed stay on screen if a later entry fails; the error is
// reported once by the caller.
func renderListing(w io.Writer, archivePath string, listing *arclist.Listing, accessible bool) error {
	options := listing.Options()

	var root *treeNode
	if options.Tree {
		root = newTreeNode(archivePath)
	}

	for {
		entry, err := listing.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		if options.Tree {
			root.insert(entry)
			continue
		}
		printEntry(w, entry, options.ShowMetadata)
	}

	if listing.Declined() {
		return nil
	}
	if options.Tree {
		root.print(w, accessible)
	}
	return nil
}

// printEntry renders one flat line.
func printEntry(w io.Writer, entry arclist.FileInArchive, showMetadata bool) {
	name := entryLabel(entry)
	if !showMetadata {
		fmt.Fprintln(w, name)
		return
	}

	modTime := "-"
	if !entry.ModTime.IsZero() {
		modTime = entry.ModTime.Format("2006-01-02 15:04")
	}
	fmt.Fprintf(w, "%-7s %10d  %s  %s\n", entry.Kind, entry.Size, modTime, name)
}

// entryLabel is the display name of an entry: directories keep a trailing
// slash, encrypted entries are marked.
func entryLabel(entry arclist.FileInArchive) string {
	name := entry.Path
	if entry.Kind == arclist.KindDir && !strings.HasSuffix(name, "/") {
		name += "/"
	}
	if entry.Kind == arclist.KindSymlink && entry.Linkname != "" {
		name += " -> " + entry.Linkname
	}
	if entry.Encrypted {
		name += " [encrypted]"
	}
	return name
}

// treeNode accumulates entries into their directory structure. Child order
// follows insertion order, which is the archive's native entry order.
type treeNode struct {
	name     string
	entry    *arclist.FileInArchive
	children []*treeNode
	index    map[string]*treeNode
}

func newTreeNode(name string) *treeNode {
	return &treeNode{name: name, index: make(map[string]*treeNode)}
}

// insert places entry at its path, creating intermediate directories that
// the archive did not list explicitly.
func (t *treeNode) insert(entry arclist.FileInArchive) {
	parts := strings.Split(strings.Trim(entry.Path, "/"), "/")
	node := t
	for _, part := range parts {
		if part == "" {
			continue
		}
		child, ok := node.index[part]
		if !ok {
			child = newTreeNode(part)
			node.index[part] = child
			node.children = append(node.children, child)
		}
		node = child
	}
	e := entry
	node.entry = &e
}

// print renders the tree. Accessible mode uses plain indentation instead of
// box-drawing characters.
func (t *treeNode) print(w io.Writer, accessible bool) {
	fmt.Fprintln(w, t.name)
	t.printChildren(w, "", accessible)
}

func (t *treeNode) printChildren(w io.Writer, prefix string, accessible bool) {
	for i, child := range t.children {
		last := i == len(t.children)-1

		branch, nested := "├── ", "│   "
		if last {
			branch, nested = "└── ", "    "
		}
		if accessible {
			branch, nested = "", "    "
		}

		label := child.name
		if child.entry != nil {
			label = entryLabel(withBaseName(*child.entry, child.name))
		} else if len(child.children) > 0 {
			label += "/"
		}

		fmt.Fprintf(w, "%s%s%s\n", prefix, branch, label)
		child.printChildren(w, prefix+nested, accessible)
	}
}

// withBaseName rewrites the entry path to its final component for tree
// display, where the parents are already drawn.
func withBaseName(entry arclist.FileInArchive, name string) arclist.FileInArchive {
	entry.Path = name
	return entry
}
